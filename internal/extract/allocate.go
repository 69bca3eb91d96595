package extract

// AllocateWeights distributes each HS code's summary weight across the
// rows sharing that code, proportional to quantity. The customs table
// reports one aggregate weight per code, not per line item, so
// proportional allocation is the only way to attribute weight to rows.
// Rows whose code is absent from the index, or whose code has zero
// total quantity, get zero weights.
func AllocateWeights(rows []Row, index WeightIndex) {
	quantityByCode := make(map[string]float64)
	for _, r := range rows {
		quantityByCode[r.HSCode] += r.Quantity
	}

	for i := range rows {
		r := &rows[i]
		total := quantityByCode[r.HSCode]
		weight, ok := index[r.HSCode]
		if !ok || total == 0 {
			r.UnitWeight = 0
			r.TotalWeight = 0
			continue
		}
		r.UnitWeight = weight / total
		r.TotalWeight = r.Quantity * r.UnitWeight
	}
}
