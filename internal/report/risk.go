package report

// Risk bands assigned by the assessment.
const (
	RiskLow    = "Low"
	RiskMedium = "Medium"
	RiskHigh   = "High"
)

// Lead-time and similarity bounds separating the risk bands.
const (
	timeRiskHighDays   = 60
	timeRiskMediumDays = 30

	vendorRiskLowScore    = 0.7
	vendorRiskMediumScore = 0.4
)

// AssessRisk fills the risk fields on every row: time risk from the
// vendor's lead time, vendor risk from the similarity score, overall risk
// as the worse of the two.
func AssessRisk(rows []*ScopedItem) {
	for _, row := range rows {
		row.TimeRisk = timeRisk(row.LeadTimeDays)
		row.VendorRisk = vendorRisk(row.SimilarityScore)
		row.OverallRisk = worseRisk(row.TimeRisk, row.VendorRisk)
	}
}

func timeRisk(leadTimeDays int) string {
	switch {
	case leadTimeDays > timeRiskHighDays:
		return RiskHigh
	case leadTimeDays > timeRiskMediumDays:
		return RiskMedium
	default:
		return RiskLow
	}
}

func vendorRisk(score float64) string {
	switch {
	case score > vendorRiskLowScore:
		return RiskLow
	case score > vendorRiskMediumScore:
		return RiskMedium
	default:
		return RiskHigh
	}
}

func worseRisk(a, b string) string {
	if a == RiskHigh || b == RiskHigh {
		return RiskHigh
	}
	if a == RiskMedium || b == RiskMedium {
		return RiskMedium
	}
	return RiskLow
}
