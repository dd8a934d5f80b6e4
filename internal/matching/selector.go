package matching

import (
	"sort"

	"github.com/SUDHERSAN-K/AI-Automation-Procurement/internal/procurement"
)

// Outcome is the terminal state of one item's matching run.
type Outcome string

const (
	// OutcomeMatched: an eligible vendor was recommended.
	OutcomeMatched Outcome = "Matched"
	// OutcomeNoEligibleVendor: every vendor failed at least one hard rule.
	// This is a valid result, not an error.
	OutcomeNoEligibleVendor Outcome = "NoEligibleVendor"
	// OutcomeInvalidItem: the item itself could not be processed, e.g. an
	// unparsable delivery date. The rest of the batch is unaffected.
	OutcomeInvalidItem Outcome = "InvalidItem"
)

// scoreEpsilon bounds the raw-score comparison: scores closer than this
// are ties and fall through to the soft preferences. The region bonus is
// never allowed to overtake a materially higher score.
const scoreEpsilon = 1e-9

// MatchResult is the decision record for one item. Created once per item
// per run and never mutated afterwards.
type MatchResult struct {
	ItemID   string  `json:"item_id"`
	ItemName string  `json:"item_name,omitempty"`
	Urgency  Urgency `json:"urgency"`
	Outcome  Outcome `json:"outcome"`

	// RecommendedVendorID is empty when no eligible vendor was found. The
	// vendor record itself is referenced, never duplicated.
	RecommendedVendorID string  `json:"recommended_vendor_id,omitempty"`
	RecommendedScore    float64 `json:"recommended_score,omitempty"`

	// Ranking lists every considered vendor with score and eligibility
	// outcome for auditability: eligible vendors first in rank order,
	// then rejected vendors ordered by ID.
	Ranking []RankedVendor `json:"ranking,omitempty"`

	// RejectionReasons is the union of all candidates' rejection reasons,
	// populated only for NoEligibleVendor.
	RejectionReasons []Reason `json:"rejection_reasons,omitempty"`

	Diagnostics []string            `json:"diagnostics,omitempty"`
	Facts       *JustificationFacts `json:"facts,omitempty"`
	Error       string              `json:"error,omitempty"`
}

// RankedVendor is one audit row of a match result.
type RankedVendor struct {
	VendorID                string   `json:"vendor_id"`
	VendorName              string   `json:"vendor_name,omitempty"`
	Score                   float64  `json:"score"`
	Eligible                bool     `json:"eligible"`
	IneligibleReasons       []Reason `json:"ineligible_reasons,omitempty"`
	BelowRelevanceThreshold bool     `json:"below_relevance_threshold,omitempty"`
	PreferredRegion         bool     `json:"preferred_region,omitempty"`
	LeadTimeDays            int      `json:"lead_time_days"`
}

// Select picks the best vendor for the item from the scored candidates.
// Deterministic and idempotent: identical inputs produce byte-identical
// results, with no randomness or wall-clock dependency.
func Select(item *procurement.Item, urgency Urgency, candidates []*Candidate, policy *Policy) *MatchResult {
	result := &MatchResult{
		ItemID:   item.ID,
		ItemName: item.Name,
		Urgency:  urgency,
	}

	eligible := eligibleOf(candidates)
	sort.Slice(eligible, func(i, j int) bool { return rankLess(eligible[i], eligible[j]) })

	rejected := make([]*Candidate, 0, len(candidates)-len(eligible))
	for _, c := range candidates {
		if !c.Eligible() {
			rejected = append(rejected, c)
		}
	}
	sort.Slice(rejected, func(i, j int) bool { return rejected[i].Vendor.ID < rejected[j].Vendor.ID })

	for _, c := range append(eligible, rejected...) {
		result.Ranking = append(result.Ranking, RankedVendor{
			VendorID:                c.Vendor.ID,
			VendorName:              c.Vendor.Name,
			Score:                   c.Score,
			Eligible:                c.Eligible(),
			IneligibleReasons:       c.IneligibleReasons,
			BelowRelevanceThreshold: c.BelowRelevanceThreshold,
			PreferredRegion:         c.PreferredRegion,
			LeadTimeDays:            c.Vendor.LeadTimeDays,
		})
	}

	if len(eligible) == 0 {
		result.Outcome = OutcomeNoEligibleVendor
		result.RejectionReasons = unionReasons(candidates)
		return result
	}

	best := eligible[0]
	result.Outcome = OutcomeMatched
	result.RecommendedVendorID = best.Vendor.ID
	result.RecommendedScore = best.Score
	return result
}

// rankLess orders candidates best-first: raw relevance score, then within
// a score tie the soft preferences (strong match over weak, preferred
// region, lower lead time) and finally the vendor ID as the deterministic
// last resort.
func rankLess(a, b *Candidate) bool {
	if diff := a.Score - b.Score; diff > scoreEpsilon || diff < -scoreEpsilon {
		return a.Score > b.Score
	}
	if a.BelowRelevanceThreshold != b.BelowRelevanceThreshold {
		return !a.BelowRelevanceThreshold
	}
	if a.PreferredRegion != b.PreferredRegion {
		return a.PreferredRegion
	}
	if a.Vendor.LeadTimeDays != b.Vendor.LeadTimeDays {
		return a.Vendor.LeadTimeDays < b.Vendor.LeadTimeDays
	}
	return a.Vendor.ID < b.Vendor.ID
}
