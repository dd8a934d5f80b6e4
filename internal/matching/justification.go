package matching

import (
	"github.com/SUDHERSAN-K/AI-Automation-Procurement/internal/procurement"
)

// JustificationFacts is the structured evidence record handed to the
// external narration step. It carries facts only; turning them into prose
// is the narrator's job.
type JustificationFacts struct {
	ItemID   string `json:"item_id"`
	ItemName string `json:"item_name,omitempty"`

	VendorID   string `json:"vendor_id"`
	VendorName string `json:"vendor_name,omitempty"`

	Certifications []string `json:"certifications,omitempty"`

	LeadTimeDays int `json:"lead_time_days"`
	// LeadTimeCeilingDays is the bound the lead time was held against.
	// Meaningful only when LeadTimeGoverned is true; far-out non-urgent
	// items are not gated on lead time at all.
	LeadTimeCeilingDays int  `json:"lead_time_ceiling_days,omitempty"`
	LeadTimeGoverned    bool `json:"lead_time_governed"`

	ExpertiseOverlap []string `json:"expertise_overlap,omitempty"`
	ReliabilityNotes string   `json:"reliability_notes,omitempty"`

	RelevanceScore float64 `json:"relevance_score"`
	WeakMatch      bool    `json:"weak_match,omitempty"`

	Urgent            bool   `json:"urgent"`
	DaysUntilDelivery int    `json:"days_until_delivery"`
	Region            string `json:"region,omitempty"`
	PreferredRegion   bool   `json:"preferred_region,omitempty"`
}

// BuildJustificationFacts assembles the evidence record for a matched
// candidate.
func BuildJustificationFacts(item *procurement.Item, urgency Urgency, c *Candidate, policy *Policy) *JustificationFacts {
	facts := &JustificationFacts{
		ItemID:            item.ID,
		ItemName:          item.Name,
		VendorID:          c.Vendor.ID,
		VendorName:        c.Vendor.Name,
		Certifications:    c.Vendor.CertificationNames(),
		LeadTimeDays:      c.Vendor.LeadTimeDays,
		ExpertiseOverlap:  OverlapTerms(item.Specification, c.Vendor.Expertise),
		ReliabilityNotes:  c.Vendor.Reliability,
		RelevanceScore:    c.Score,
		WeakMatch:         c.BelowRelevanceThreshold,
		Urgent:            urgency.IsUrgent,
		DaysUntilDelivery: urgency.DaysUntilDelivery,
		Region:            c.Vendor.Region,
		PreferredRegion:   c.PreferredRegion,
	}

	switch {
	case urgency.IsUrgent:
		facts.LeadTimeGoverned = true
		facts.LeadTimeCeilingDays = policy.UrgentLeadTimeCeiling
	case urgency.DaysUntilDelivery <= nearTermWindowDays:
		facts.LeadTimeGoverned = true
		facts.LeadTimeCeilingDays = policy.LeadTimeThreshold
	}

	return facts
}
