package matching

import (
	"sort"

	"github.com/SUDHERSAN-K/AI-Automation-Procurement/internal/procurement"
)

// Reason identifies a hard eligibility rule a vendor failed. Reasons are
// independent: a vendor may carry several for one item.
type Reason string

const (
	// ReasonMissingCertification: the vendor holds no known certification at all.
	ReasonMissingCertification Reason = "MissingCertification"
	// ReasonLowTierCertOnly: the vendor holds only low-tier certifications,
	// e.g. a bare Material Test Report.
	ReasonLowTierCertOnly Reason = "LowTierCertOnly"
	// ReasonExpertiseMismatch: the vendor's expertise categories do not
	// intersect the item's category.
	ReasonExpertiseMismatch Reason = "ExpertiseMismatch"
	// ReasonLeadTimeExceeded: the vendor's lead time fails the applicable bound.
	ReasonLeadTimeExceeded Reason = "LeadTimeExceeded"
	// ReasonRedFlagLeadTime: the lead time exceeds the maximum tolerable
	// bound for an urgent item, excluding the vendor unconditionally.
	ReasonRedFlagLeadTime Reason = "RedFlagLeadTime"
)

// nearTermWindowDays is the "required within 60 days" window. Outside it a
// non-urgent item's lead time does not gate eligibility.
const nearTermWindowDays = 60

// Candidate carries one vendor's evaluation against one item. An empty
// IneligibleReasons set means the vendor is eligible; the scoring fields
// are filled in by the relevance scorer.
type Candidate struct {
	Vendor            *procurement.Vendor
	IneligibleReasons []Reason

	Score                   float64
	BelowRelevanceThreshold bool
	PreferredRegion         bool
}

// Eligible reports whether the vendor passed every hard rule.
func (c *Candidate) Eligible() bool {
	return len(c.IneligibleReasons) == 0
}

func (c *Candidate) fail(reason Reason) {
	c.IneligibleReasons = append(c.IneligibleReasons, reason)
}

// EvaluateVendors applies the hard eligibility rules for one item to every
// vendor, returning one candidate per vendor in input order. Rules are
// applied independently so every rejection can be explained in full.
func EvaluateVendors(item *procurement.Item, urgency Urgency, vendors *procurement.Vendors, policy *Policy) []*Candidate {
	candidates := make([]*Candidate, 0, vendors.Len())

	for _, vendor := range vendors.Records {
		c := &Candidate{
			Vendor:          vendor,
			PreferredRegion: policy.PrefersRegion(vendor.Region),
		}

		if !vendor.HasQualifyingCertification() {
			if vendor.HasLowTierCertification() {
				c.fail(ReasonLowTierCertOnly)
			} else {
				c.fail(ReasonMissingCertification)
			}
		}

		if !vendor.CoversCategory(item.Category) {
			c.fail(ReasonExpertiseMismatch)
		}

		if urgency.IsUrgent {
			if vendor.LeadTimeDays >= policy.UrgentLeadTimeCeiling {
				c.fail(ReasonLeadTimeExceeded)
			}
			if vendor.LeadTimeDays > policy.RedFlagLeadTimeCeiling {
				c.fail(ReasonRedFlagLeadTime)
			}
		} else if urgency.DaysUntilDelivery <= nearTermWindowDays && vendor.LeadTimeDays > policy.LeadTimeThreshold {
			c.fail(ReasonLeadTimeExceeded)
		}

		candidates = append(candidates, c)
	}

	return candidates
}

// eligibleOf filters the candidate list down to eligible vendors,
// preserving order.
func eligibleOf(candidates []*Candidate) []*Candidate {
	eligible := make([]*Candidate, 0, len(candidates))
	for _, c := range candidates {
		if c.Eligible() {
			eligible = append(eligible, c)
		}
	}
	return eligible
}

// unionReasons collects the distinct rejection reasons across candidates,
// sorted for deterministic output.
func unionReasons(candidates []*Candidate) []Reason {
	seen := make(map[Reason]bool)
	for _, c := range candidates {
		for _, reason := range c.IneligibleReasons {
			seen[reason] = true
		}
	}

	reasons := make([]Reason, 0, len(seen))
	for reason := range seen {
		reasons = append(reasons, reason)
	}
	sort.Slice(reasons, func(i, j int) bool { return reasons[i] < reasons[j] })
	return reasons
}
