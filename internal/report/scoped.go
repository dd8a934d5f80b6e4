package report

import (
	"fmt"
	"strings"

	"github.com/SUDHERSAN-K/AI-Automation-Procurement/internal/matching"
	"github.com/SUDHERSAN-K/AI-Automation-Procurement/internal/procurement"
)

const noMatchPlaceholder = "No optimal match found"

// ScopedItem is one output row of the final scope document: the match
// result merged with the recommended specification and vendor details.
type ScopedItem struct {
	ItemName           string  `json:"item_name"`
	FinalSpecification string  `json:"final_specification"`
	Category           string  `json:"category,omitempty"`
	Quantity           float64 `json:"quantity,omitempty"`
	Unit               string  `json:"unit,omitempty"`
	DeliveryDate       string  `json:"delivery_date,omitempty"`
	DrawingRef         string  `json:"drawing_ref,omitempty"`
	Urgent             bool    `json:"urgent"`

	RecommendedVendor    string  `json:"recommended_vendor"`
	VendorRegion         string  `json:"vendor_region,omitempty"`
	VendorContact        string  `json:"vendor_contact,omitempty"`
	VendorEmail          string  `json:"vendor_email,omitempty"`
	LeadTimeDays         int     `json:"lead_time_days"`
	VendorCertifications string  `json:"vendor_certifications,omitempty"`
	SimilarityScore      float64 `json:"similarity_score"`

	TimeRisk    string `json:"time_risk,omitempty"`
	VendorRisk  string `json:"vendor_risk,omitempty"`
	OverallRisk string `json:"overall_risk,omitempty"`

	EstimatedCostUSD float64 `json:"estimated_cost_usd,omitempty"`

	// Justification is the narrated prose for matched rows, filled in by
	// the narration step when one is configured.
	Justification string `json:"justification,omitempty"`
}

// BuildScopedItems merges the match results with the historical
// specification recommendations into the final output rows, one per
// processed item. Items skipped as invalid are omitted; unmatched items
// get a placeholder row so the scope document stays complete.
func BuildScopedItems(results []*matching.MatchResult, items *procurement.Items, vendors *procurement.Vendors, specs []*procurement.SpecRecommendation) []*ScopedItem {
	rows := make([]*ScopedItem, 0, len(results))

	for _, result := range results {
		if result.Outcome == matching.OutcomeInvalidItem {
			continue
		}

		item := items.FindByID(result.ItemID)
		if item == nil {
			continue
		}

		row := &ScopedItem{
			ItemName:           item.Name,
			FinalSpecification: item.Specification,
			Category:           item.Category,
			Quantity:           item.Quantity,
			Unit:               item.Unit,
			DeliveryDate:       item.DeliveryDate,
			DrawingRef:         item.DrawingRef,
			Urgent:             result.Urgency.IsUrgent,
			RecommendedVendor:  noMatchPlaceholder,
			SimilarityScore:    result.RecommendedScore,
		}

		if rec := procurement.FindRecommendation(specs, item.Name); rec != nil {
			row.FinalSpecification = rec.RecommendedSpec
		}

		if result.Outcome == matching.OutcomeMatched {
			if vendor := vendors.FindByID(result.RecommendedVendorID); vendor != nil {
				row.RecommendedVendor = vendor.Name
				row.VendorRegion = vendor.Region
				row.VendorContact = vendor.ContactName
				row.VendorEmail = vendor.ContactEmail
				row.LeadTimeDays = vendor.LeadTimeDays
				row.VendorCertifications = strings.Join(vendor.CertificationNames(), ", ")
			}
		}

		rows = append(rows, row)
	}

	return rows
}

// ByVendor groups the matched results for reporting, keyed by vendor name
// and ID.
func ByVendor(results []*matching.MatchResult, vendors *procurement.Vendors) map[string][]map[string]string {
	report := make(map[string][]map[string]string)
	for _, result := range results {
		if result.Outcome != matching.OutcomeMatched {
			continue
		}

		vendor := vendors.FindByID(result.RecommendedVendorID)
		if vendor == nil {
			continue
		}

		key := fmt.Sprintf("%s (%s)", vendor.Name, vendor.ID)
		entry := map[string]string{
			"item":      result.ItemName,
			"score":     fmt.Sprintf("%.3f", result.RecommendedScore),
			"urgent":    fmt.Sprintf("%t", result.Urgency.IsUrgent),
			"lead_time": fmt.Sprintf("%d days", vendor.LeadTimeDays),
			"region":    vendor.Region,
		}
		if result.Facts != nil && len(result.Facts.ExpertiseOverlap) > 0 {
			entry["expertise_overlap"] = strings.Join(result.Facts.ExpertiseOverlap, ", ")
		}
		report[key] = append(report[key], entry)
	}
	return report
}
