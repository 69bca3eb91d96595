package extract

import (
	"math"
	"testing"
)

func TestAllocateWeights_ProportionalSplit(t *testing.T) {
	rows := []Row{
		{HSCode: "84818019", Quantity: 3},
		{HSCode: "84818019", Quantity: 7},
	}
	index := WeightIndex{"84818019": 20.0}

	AllocateWeights(rows, index)

	if rows[0].UnitWeight != 2.0 || rows[1].UnitWeight != 2.0 {
		t.Errorf("unit weights = %v, %v, want 2.0 each", rows[0].UnitWeight, rows[1].UnitWeight)
	}
	if rows[0].TotalWeight != 6.0 {
		t.Errorf("first row total weight = %v, want 6.0", rows[0].TotalWeight)
	}
	if rows[1].TotalWeight != 14.0 {
		t.Errorf("second row total weight = %v, want 14.0", rows[1].TotalWeight)
	}

	// The allocated weights must add back up to the indexed figure.
	sum := rows[0].TotalWeight + rows[1].TotalWeight
	if math.Abs(sum-20.0) > 1e-9 {
		t.Errorf("allocated weights sum to %v, want 20.0", sum)
	}
}

func TestAllocateWeights_SoleContributor(t *testing.T) {
	rows := []Row{{HSCode: "84818019", Quantity: 10}}
	index := WeightIndex{"84818019": 12.0}

	AllocateWeights(rows, index)

	if rows[0].UnitWeight != 1.2 {
		t.Errorf("unit weight = %v, want 1.2", rows[0].UnitWeight)
	}
	if rows[0].TotalWeight != 12.0 {
		t.Errorf("total weight = %v, want 12.0", rows[0].TotalWeight)
	}
}

func TestAllocateWeights_ZeroQuantity(t *testing.T) {
	rows := []Row{
		{HSCode: "84818019", Quantity: 0},
		{HSCode: "84818019", Quantity: 0},
	}
	index := WeightIndex{"84818019": 12.0}

	AllocateWeights(rows, index)

	for i, r := range rows {
		if r.UnitWeight != 0 || r.TotalWeight != 0 {
			t.Errorf("row %d: weights = %v/%v, want 0/0 on zero total quantity", i, r.UnitWeight, r.TotalWeight)
		}
	}
}

func TestAllocateWeights_CodeMissingFromIndex(t *testing.T) {
	rows := []Row{{HSCode: "99999999", Quantity: 5, TotalWeight: 123.0}}

	AllocateWeights(rows, WeightIndex{})

	if rows[0].UnitWeight != 0 || rows[0].TotalWeight != 0 {
		t.Errorf("weights = %v/%v, want 0/0 for unindexed code", rows[0].UnitWeight, rows[0].TotalWeight)
	}
}
