package extract

// mergeKey identifies a group of near-duplicate rows. Price compares
// exactly, including the float value.
type mergeKey struct {
	poNumber string
	itemCode string
	price    float64
}

// MergeRows consolidates rows sharing (PO number, item code, price) by
// summing quantity, amount and total weight; every other field keeps
// the value from the first row of the group. Groups are emitted in
// first-seen input order.
func MergeRows(rows []Row) []Row {
	groups := make(map[mergeKey]*Row, len(rows))
	order := make([]mergeKey, 0, len(rows))

	for _, r := range rows {
		key := mergeKey{poNumber: r.PONumber, itemCode: r.ItemCode, price: r.Price}
		if g, ok := groups[key]; ok {
			g.Quantity += r.Quantity
			g.Amount += r.Amount
			g.TotalWeight += r.TotalWeight
			continue
		}
		first := r
		groups[key] = &first
		order = append(order, key)
	}

	merged := make([]Row, 0, len(order))
	for _, key := range order {
		merged = append(merged, *groups[key])
	}
	return merged
}
