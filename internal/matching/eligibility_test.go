package matching

import (
	"testing"

	"github.com/SUDHERSAN-K/AI-Automation-Procurement/internal/procurement"
)

func electricalItem() *procurement.Item {
	return &procurement.Item{
		ID:            "item-1",
		Name:          "Transformer",
		Specification: "high-voltage transformer",
		Category:      "Electrical",
	}
}

func certifiedVendor(id string, leadTime int) *procurement.Vendor {
	return &procurement.Vendor{
		ID:                  id,
		Name:                "Vendor " + id,
		Certifications:      []procurement.Certification{procurement.CertISO9001},
		LeadTimeDays:        leadTime,
		ExpertiseCategories: []string{"Electrical"},
		Expertise:           "transformer and switchgear",
		Region:              "Europe",
	}
}

func reasonsOf(c *Candidate) map[Reason]bool {
	set := make(map[Reason]bool, len(c.IneligibleReasons))
	for _, reason := range c.IneligibleReasons {
		set[reason] = true
	}
	return set
}

func TestEvaluateVendorsLowTierCertOnly(t *testing.T) {
	vendor := certifiedVendor("v1", 5)
	vendor.Certifications = []procurement.Certification{procurement.CertMaterialTestReport}

	// Short lead time and matching expertise must not rescue a vendor with
	// only a low-tier certification.
	candidates := EvaluateVendors(electricalItem(), Urgency{IsUrgent: true, DaysUntilDelivery: 10}, &procurement.Vendors{Records: []*procurement.Vendor{vendor}}, DefaultPolicy())

	if candidates[0].Eligible() {
		t.Fatalf("expected vendor with only Material Test Report to be ineligible")
	}
	if !reasonsOf(candidates[0])[ReasonLowTierCertOnly] {
		t.Fatalf("expected LowTierCertOnly, got %v", candidates[0].IneligibleReasons)
	}
}

func TestEvaluateVendorsMissingCertification(t *testing.T) {
	vendor := certifiedVendor("v1", 5)
	vendor.Certifications = nil

	candidates := EvaluateVendors(electricalItem(), Urgency{DaysUntilDelivery: 90}, &procurement.Vendors{Records: []*procurement.Vendor{vendor}}, DefaultPolicy())

	if !reasonsOf(candidates[0])[ReasonMissingCertification] {
		t.Fatalf("expected MissingCertification, got %v", candidates[0].IneligibleReasons)
	}
}

func TestEvaluateVendorsExpertiseMismatch(t *testing.T) {
	vendor := certifiedVendor("v1", 5)
	vendor.ExpertiseCategories = []string{"Mechanical"}

	candidates := EvaluateVendors(electricalItem(), Urgency{DaysUntilDelivery: 90}, &procurement.Vendors{Records: []*procurement.Vendor{vendor}}, DefaultPolicy())

	if !reasonsOf(candidates[0])[ReasonExpertiseMismatch] {
		t.Fatalf("expected ExpertiseMismatch, got %v", candidates[0].IneligibleReasons)
	}
}

func TestEvaluateVendorsUrgentLeadTimeStrict(t *testing.T) {
	policy := DefaultPolicy()
	urgency := Urgency{IsUrgent: true, DaysUntilDelivery: 10}
	vendors := &procurement.Vendors{Records: []*procurement.Vendor{
		certifiedVendor("v1", 29),
		certifiedVendor("v2", 30),
	}}

	candidates := EvaluateVendors(electricalItem(), urgency, vendors, policy)

	if !candidates[0].Eligible() {
		t.Fatalf("expected lead time 29 to pass the strict urgent ceiling")
	}
	// The bound is strict: exactly 30 days fails a 30-day ceiling.
	if !reasonsOf(candidates[1])[ReasonLeadTimeExceeded] {
		t.Fatalf("expected lead time 30 to fail, got %v", candidates[1].IneligibleReasons)
	}
}

func TestEvaluateVendorsRedFlagLeadTime(t *testing.T) {
	urgency := Urgency{IsUrgent: true, DaysUntilDelivery: 10}
	vendor := certifiedVendor("v1", 50)

	candidates := EvaluateVendors(electricalItem(), urgency, &procurement.Vendors{Records: []*procurement.Vendor{vendor}}, DefaultPolicy())

	reasons := reasonsOf(candidates[0])
	if !reasons[ReasonRedFlagLeadTime] {
		t.Fatalf("expected RedFlagLeadTime, got %v", candidates[0].IneligibleReasons)
	}
	if !reasons[ReasonLeadTimeExceeded] {
		t.Fatalf("expected LeadTimeExceeded alongside the red flag, got %v", candidates[0].IneligibleReasons)
	}
}

func TestEvaluateVendorsNearTermLeadTimeRule(t *testing.T) {
	policy := DefaultPolicy()
	vendor := certifiedVendor("v1", 40)

	// Required within 60 days: the lead-time threshold gates eligibility.
	candidates := EvaluateVendors(electricalItem(), Urgency{DaysUntilDelivery: 55}, &procurement.Vendors{Records: []*procurement.Vendor{vendor}}, policy)
	if !reasonsOf(candidates[0])[ReasonLeadTimeExceeded] {
		t.Fatalf("expected LeadTimeExceeded within the 60-day window, got %v", candidates[0].IneligibleReasons)
	}

	// Outside the window lead time does not gate eligibility at all.
	candidates = EvaluateVendors(electricalItem(), Urgency{DaysUntilDelivery: 90}, &procurement.Vendors{Records: []*procurement.Vendor{vendor}}, policy)
	if !candidates[0].Eligible() {
		t.Fatalf("expected vendor to be eligible outside the 60-day window, got %v", candidates[0].IneligibleReasons)
	}
}

func TestEvaluateVendorsCollectsMultipleReasons(t *testing.T) {
	vendor := &procurement.Vendor{
		ID:                  "v1",
		Certifications:      []procurement.Certification{procurement.CertFactoryAudit},
		LeadTimeDays:        70,
		ExpertiseCategories: []string{"Civil"},
	}

	candidates := EvaluateVendors(electricalItem(), Urgency{IsUrgent: true, DaysUntilDelivery: 5}, &procurement.Vendors{Records: []*procurement.Vendor{vendor}}, DefaultPolicy())

	reasons := reasonsOf(candidates[0])
	for _, want := range []Reason{ReasonLowTierCertOnly, ReasonExpertiseMismatch, ReasonLeadTimeExceeded, ReasonRedFlagLeadTime} {
		if !reasons[want] {
			t.Fatalf("expected reason %s, got %v", want, candidates[0].IneligibleReasons)
		}
	}
}
