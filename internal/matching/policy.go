package matching

import (
	"fmt"
	"strings"
)

// Default policy values applied when the configuration leaves a field unset.
const (
	DefaultUrgencyWindowDays      = 45
	DefaultUrgentLeadTimeCeiling  = 30
	DefaultLeadTimeThreshold      = 30
	DefaultRedFlagLeadTimeCeiling = 45
	DefaultMinRelevance           = 0.3
)

// DefaultPreferredRegions are the regions ranked ahead of equal-score peers.
var DefaultPreferredRegions = []string{"Middle East", "South Asia"}

// Policy holds the urgency and lead-time rule parameters for one matching
// run. Construct it with NewPolicy; instances are shared read-only across
// all parallel item computations and never mutated mid-run.
type Policy struct {
	UrgencyWindowDays      int
	UrgentLeadTimeCeiling  int
	LeadTimeThreshold      int
	RedFlagLeadTimeCeiling int
	MinRelevance           float64
	PreferredRegions       []string

	preferred map[string]bool
}

// ConfigurationError reports a policy value outside sane bounds. Values are
// rejected at construction time instead of being clamped so a caller
// mistake surfaces immediately.
type ConfigurationError struct {
	Field  string
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("invalid policy configuration: %s: %s", e.Field, e.Reason)
}

// NewPolicy validates the provided parameters and fills unset fields with
// defaults. A zero int or empty region list means "use the default"; only
// out-of-bounds values are errors.
func NewPolicy(p Policy) (*Policy, error) {
	if p.UrgencyWindowDays < 0 {
		return nil, &ConfigurationError{Field: "urgency-window-days", Reason: "must not be negative"}
	}
	if p.UrgentLeadTimeCeiling < 0 {
		return nil, &ConfigurationError{Field: "urgent-lead-time-ceiling", Reason: "must not be negative"}
	}
	if p.LeadTimeThreshold < 0 {
		return nil, &ConfigurationError{Field: "lead-time-threshold", Reason: "must not be negative"}
	}
	if p.RedFlagLeadTimeCeiling < 0 {
		return nil, &ConfigurationError{Field: "red-flag-lead-time-ceiling", Reason: "must not be negative"}
	}
	if p.MinRelevance < 0 || p.MinRelevance > 1 {
		return nil, &ConfigurationError{Field: "min-relevance", Reason: "must be within [0,1]"}
	}

	if p.UrgencyWindowDays == 0 {
		p.UrgencyWindowDays = DefaultUrgencyWindowDays
	}
	if p.UrgentLeadTimeCeiling == 0 {
		p.UrgentLeadTimeCeiling = DefaultUrgentLeadTimeCeiling
	}
	if p.LeadTimeThreshold == 0 {
		p.LeadTimeThreshold = DefaultLeadTimeThreshold
	}
	if p.RedFlagLeadTimeCeiling == 0 {
		p.RedFlagLeadTimeCeiling = DefaultRedFlagLeadTimeCeiling
	}
	if p.MinRelevance == 0 {
		p.MinRelevance = DefaultMinRelevance
	}
	if len(p.PreferredRegions) == 0 {
		p.PreferredRegions = append([]string(nil), DefaultPreferredRegions...)
	}

	p.preferred = make(map[string]bool, len(p.PreferredRegions))
	for _, region := range p.PreferredRegions {
		p.preferred[normalizeRegion(region)] = true
	}

	return &p, nil
}

// DefaultPolicy returns a policy populated with the default parameters.
func DefaultPolicy() *Policy {
	policy, err := NewPolicy(Policy{})
	if err != nil {
		// Defaults are within bounds; reaching this is a programming error.
		panic(err)
	}
	return policy
}

// PrefersRegion reports whether the region is ranked ahead in tie-breaks.
func (p *Policy) PrefersRegion(region string) bool {
	return p.preferred[normalizeRegion(region)]
}

func normalizeRegion(region string) string {
	return strings.Join(strings.Fields(strings.ToLower(region)), " ")
}
