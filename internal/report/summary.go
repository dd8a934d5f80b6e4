package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/SUDHERSAN-K/AI-Automation-Procurement/internal/matching"
)

// RunSummary captures the headline numbers of one matching run.
type RunSummary struct {
	RunID       string    `json:"run_id"`
	TotalItems  int       `json:"total_items"`
	Matched     int       `json:"matched"`
	Unmatched   int       `json:"unmatched"`
	Skipped     int       `json:"skipped"`
	Vendors     int       `json:"vendors"`
	CompletedAt time.Time `json:"completed_at"`
}

// Summarize tallies the run results. An empty runID gets a freshly
// generated one; the ID tags every artifact produced from this run.
func Summarize(runID string, results []*matching.MatchResult, vendorCount int, completedAt time.Time) *RunSummary {
	if runID == "" {
		runID = uuid.NewString()
	}
	summary := &RunSummary{
		RunID:       runID,
		TotalItems:  len(results),
		Vendors:     vendorCount,
		CompletedAt: completedAt,
	}

	for _, result := range results {
		switch result.Outcome {
		case matching.OutcomeMatched:
			summary.Matched++
		case matching.OutcomeNoEligibleVendor:
			summary.Unmatched++
		case matching.OutcomeInvalidItem:
			summary.Skipped++
		}
	}

	return summary
}

// Render formats the summary as the statistics block handed to the scope
// composer.
func (s *RunSummary) Render() string {
	var b strings.Builder
	fmt.Fprintf(&b, "- Items Processed: %d\n", s.TotalItems)
	fmt.Fprintf(&b, "- Vendors Available: %d\n", s.Vendors)
	fmt.Fprintf(&b, "- Matched: %d\n", s.Matched)
	fmt.Fprintf(&b, "- No Eligible Vendor: %d\n", s.Unmatched)
	fmt.Fprintf(&b, "- Skipped (invalid): %d\n", s.Skipped)
	fmt.Fprintf(&b, "- Completed: %s\n", s.CompletedAt.Format(time.RFC3339))
	return b.String()
}
