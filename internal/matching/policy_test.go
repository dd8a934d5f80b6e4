package matching

import (
	"errors"
	"testing"
)

func TestNewPolicyDefaults(t *testing.T) {
	policy, err := NewPolicy(Policy{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if policy.UrgencyWindowDays != DefaultUrgencyWindowDays {
		t.Fatalf("expected default urgency window, got %d", policy.UrgencyWindowDays)
	}
	if policy.UrgentLeadTimeCeiling != DefaultUrgentLeadTimeCeiling {
		t.Fatalf("expected default urgent lead-time ceiling, got %d", policy.UrgentLeadTimeCeiling)
	}
	if policy.MinRelevance != DefaultMinRelevance {
		t.Fatalf("expected default minimum relevance, got %f", policy.MinRelevance)
	}
	if !policy.PrefersRegion("Middle East") || !policy.PrefersRegion("South Asia") {
		t.Fatalf("expected the default preferred regions")
	}
	if policy.PrefersRegion("Europe") {
		t.Fatalf("did not expect Europe to be preferred by default")
	}
}

func TestNewPolicyRejectsOutOfBounds(t *testing.T) {
	tests := []struct {
		name   string
		policy Policy
	}{
		{name: "negative urgency window", policy: Policy{UrgencyWindowDays: -1}},
		{name: "negative urgent ceiling", policy: Policy{UrgentLeadTimeCeiling: -5}},
		{name: "negative lead-time threshold", policy: Policy{LeadTimeThreshold: -1}},
		{name: "negative red-flag ceiling", policy: Policy{RedFlagLeadTimeCeiling: -1}},
		{name: "relevance above one", policy: Policy{MinRelevance: 1.5}},
		{name: "negative relevance", policy: Policy{MinRelevance: -0.1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewPolicy(tt.policy)
			if err == nil {
				t.Fatalf("expected a configuration error")
			}
			var cfgErr *ConfigurationError
			if !errors.As(err, &cfgErr) {
				t.Fatalf("expected ConfigurationError, got %T", err)
			}
		})
	}
}

func TestPrefersRegionNormalizes(t *testing.T) {
	policy, err := NewPolicy(Policy{PreferredRegions: []string{"Middle East"}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !policy.PrefersRegion("  middle   east  ") {
		t.Fatalf("expected region matching to ignore case and whitespace")
	}
	if policy.PrefersRegion("South Asia") {
		t.Fatalf("expected only the configured region to be preferred")
	}
}
