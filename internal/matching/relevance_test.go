package matching

import (
	"math"
	"reflect"
	"testing"

	"github.com/SUDHERSAN-K/AI-Automation-Procurement/internal/procurement"
)

func TestTokenize(t *testing.T) {
	tokens := Tokenize("High-Voltage transformer, with switchgear (400kV)")

	want := []string{"high", "voltage", "transformer", "switchgear", "400kv"}
	if !reflect.DeepEqual(tokens, want) {
		t.Fatalf("expected %v, got %v", want, tokens)
	}
}

func TestScoreCandidatesIdenticalText(t *testing.T) {
	item := electricalItem()
	vendor := certifiedVendor("v1", 5)
	vendor.Expertise = item.Specification

	candidates := EvaluateVendors(item, Urgency{DaysUntilDelivery: 90}, &procurement.Vendors{Records: []*procurement.Vendor{vendor}}, DefaultPolicy())
	ScoreCandidates(item, candidates, DefaultPolicy())

	if math.Abs(candidates[0].Score-1.0) > 1e-9 {
		t.Fatalf("expected similarity close to 1.0 for identical text, got %f", candidates[0].Score)
	}
	if candidates[0].BelowRelevanceThreshold {
		t.Fatalf("did not expect identical text to be below the relevance threshold")
	}
}

func TestScoreCandidatesNoSharedVocabulary(t *testing.T) {
	item := electricalItem()
	vendor := certifiedVendor("v1", 5)
	vendor.Expertise = "concrete aggregate rebar"

	candidates := EvaluateVendors(item, Urgency{DaysUntilDelivery: 90}, &procurement.Vendors{Records: []*procurement.Vendor{vendor}}, DefaultPolicy())
	ScoreCandidates(item, candidates, DefaultPolicy())

	if candidates[0].Score != 0 {
		t.Fatalf("expected zero similarity without shared vocabulary, got %f", candidates[0].Score)
	}
	if !candidates[0].BelowRelevanceThreshold {
		t.Fatalf("expected zero score to be flagged below the relevance threshold")
	}
	if !candidates[0].Eligible() {
		t.Fatalf("a weak textual match must not make a compliant vendor ineligible")
	}
}

func TestScoreCandidatesEmptySpecification(t *testing.T) {
	item := electricalItem()
	item.Specification = ""
	vendor := certifiedVendor("v1", 5)

	candidates := EvaluateVendors(item, Urgency{DaysUntilDelivery: 90}, &procurement.Vendors{Records: []*procurement.Vendor{vendor}}, DefaultPolicy())
	diagnostics := ScoreCandidates(item, candidates, DefaultPolicy())

	if candidates[0].Score != 0 {
		t.Fatalf("expected zero similarity for empty specification, got %f", candidates[0].Score)
	}
	if len(diagnostics) == 0 {
		t.Fatalf("expected a diagnostic for the empty specification")
	}
}

func TestScoreCandidatesIgnoresIneligible(t *testing.T) {
	item := electricalItem()
	eligible := certifiedVendor("v1", 5)
	eligible.Expertise = "transformer"
	ineligible := certifiedVendor("v2", 5)
	ineligible.Certifications = nil
	ineligible.Expertise = item.Specification

	candidates := EvaluateVendors(item, Urgency{DaysUntilDelivery: 90}, &procurement.Vendors{Records: []*procurement.Vendor{eligible, ineligible}}, DefaultPolicy())
	ScoreCandidates(item, candidates, DefaultPolicy())

	if candidates[1].Score != 0 {
		t.Fatalf("expected ineligible vendor to stay unscored, got %f", candidates[1].Score)
	}
	if candidates[0].Score <= 0 {
		t.Fatalf("expected eligible vendor to receive a score, got %f", candidates[0].Score)
	}
}

func TestOverlapTerms(t *testing.T) {
	shared := OverlapTerms("high-voltage transformer with bushings", "Transformer and switchgear for high voltage grids")

	want := []string{"high", "transformer", "voltage"}
	if !reflect.DeepEqual(shared, want) {
		t.Fatalf("expected %v, got %v", want, shared)
	}
}
