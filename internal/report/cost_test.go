package report

import "testing"

func TestEstimateCosts(t *testing.T) {
	rows := []*ScopedItem{
		{VendorRegion: "Middle East"},
		{VendorRegion: "Western Europe"},
		{VendorRegion: "Antarctica"},
		{VendorRegion: ""},
	}

	EstimateCosts(rows, nil)

	if rows[0].EstimatedCostUSD != 1000 {
		t.Fatalf("Middle East: want 1000, got %f", rows[0].EstimatedCostUSD)
	}
	if rows[1].EstimatedCostUSD != 1100 {
		t.Fatalf("expected a substring region match, got %f", rows[1].EstimatedCostUSD)
	}
	if rows[2].EstimatedCostUSD != 1000 {
		t.Fatalf("unknown region: want the base cost, got %f", rows[2].EstimatedCostUSD)
	}
	if rows[3].EstimatedCostUSD != 1000 {
		t.Fatalf("empty region: want the base cost, got %f", rows[3].EstimatedCostUSD)
	}
}

func TestEstimateCostsCustomFactors(t *testing.T) {
	factors := &CostFactors{
		BaseCostPerItem:   250,
		RegionMultipliers: map[string]float64{"Asia": 0.5},
	}
	rows := []*ScopedItem{{VendorRegion: "South Asia"}}

	EstimateCosts(rows, factors)

	if rows[0].EstimatedCostUSD != 125 {
		t.Fatalf("want 125, got %f", rows[0].EstimatedCostUSD)
	}
}
