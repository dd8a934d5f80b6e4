package report

import (
	"math"
	"sort"
	"strings"
)

// CostFactors drives the rough cost estimate attached to each row.
type CostFactors struct {
	BaseCostPerItem   float64
	RegionMultipliers map[string]float64
}

// DefaultCostFactors returns the built-in estimate parameters.
func DefaultCostFactors() *CostFactors {
	return &CostFactors{
		BaseCostPerItem: 1000,
		RegionMultipliers: map[string]float64{
			"USA":         1.2,
			"Europe":      1.1,
			"Asia":        0.9,
			"Middle East": 1.0,
		},
	}
}

// EstimateCosts sets EstimatedCostUSD on every row: base cost scaled by
// the first region multiplier whose key appears in the vendor region,
// checked in sorted key order so reruns pick the same multiplier.
func EstimateCosts(rows []*ScopedItem, factors *CostFactors) {
	if factors == nil {
		factors = DefaultCostFactors()
	}

	regions := make([]string, 0, len(factors.RegionMultipliers))
	for region := range factors.RegionMultipliers {
		regions = append(regions, region)
	}
	sort.Strings(regions)

	for _, row := range rows {
		multiplier := 1.0
		rowRegion := strings.ToLower(row.VendorRegion)
		for _, region := range regions {
			if strings.Contains(rowRegion, strings.ToLower(region)) {
				multiplier = factors.RegionMultipliers[region]
				break
			}
		}
		row.EstimatedCostUSD = math.Round(factors.BaseCostPerItem*multiplier*100) / 100
	}
}
