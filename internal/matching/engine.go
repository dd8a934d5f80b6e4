package matching

import (
	"context"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/SUDHERSAN-K/AI-Automation-Procurement/internal/procurement"
)

const defaultWorkers = 4

// Engine runs the full matching pipeline per item: urgency classification,
// eligibility filtering, relevance scoring, selection and justification
// facts. An engine is safe for concurrent use; all state is read-only.
type Engine struct {
	policy        *Policy
	referenceDate time.Time
	logger        *zap.Logger
	workers       int
}

// NewEngine creates an engine for one run. The reference date anchors the
// urgency computation so reruns over the same inputs stay reproducible.
func NewEngine(policy *Policy, referenceDate time.Time, logger *zap.Logger) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{
		policy:        policy,
		referenceDate: referenceDate,
		logger:        logger,
		workers:       defaultWorkers,
	}
}

// SetWorkers overrides the number of items processed in parallel.
func (e *Engine) SetWorkers(n int) {
	if n > 0 {
		e.workers = n
	}
}

// MatchAll matches every item independently against the vendor snapshot,
// returning one result per item in input order. Item computations fan out
// across a bounded worker group; a malformed item yields an InvalidItem
// result without aborting the batch. Cancellation stops submitting
// remaining items.
func (e *Engine) MatchAll(ctx context.Context, items *procurement.Items, vendors *procurement.Vendors) ([]*MatchResult, error) {
	results := make([]*MatchResult, items.Len())

	group, ctx := errgroup.WithContext(ctx)
	group.SetLimit(e.workers)

	for idx, item := range items.Records {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		group.Go(func() error {
			results[idx] = e.MatchItem(item, vendors)
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}

	matched := 0
	for _, result := range results {
		if result.Outcome == OutcomeMatched {
			matched++
		}
	}
	e.logger.Info("matching completed",
		zap.Int("items", items.Len()),
		zap.Int("vendors", vendors.Len()),
		zap.Int("matched", matched),
		zap.Int("unmatched", items.Len()-matched),
	)

	return results, nil
}

// MatchItem runs the pipeline for a single item. It never mutates the
// item, vendor or policy inputs and is safe to invoke repeatedly with
// identical output.
func (e *Engine) MatchItem(item *procurement.Item, vendors *procurement.Vendors) *MatchResult {
	urgency, err := Classify(item, e.referenceDate, e.policy)
	if err != nil {
		e.logger.Warn("skipping item",
			zap.String("item_id", item.ID),
			zap.Error(err),
		)
		return &MatchResult{
			ItemID:   item.ID,
			ItemName: item.Name,
			Outcome:  OutcomeInvalidItem,
			Error:    err.Error(),
		}
	}

	candidates := EvaluateVendors(item, urgency, vendors, e.policy)
	eligible := eligibleOf(candidates)
	e.logger.Debug("eligibility filter",
		zap.String("item_id", item.ID),
		zap.Bool("urgent", urgency.IsUrgent),
		zap.Int("initial", len(candidates)),
		zap.Int("dropped", len(candidates)-len(eligible)),
		zap.Int("left", len(eligible)),
	)

	diagnostics := ScoreCandidates(item, candidates, e.policy)

	result := Select(item, urgency, candidates, e.policy)
	result.Diagnostics = diagnostics

	if best := findCandidate(candidates, result.RecommendedVendorID); best != nil {
		result.Facts = BuildJustificationFacts(item, urgency, best, e.policy)
		e.logger.Info("item matched",
			zap.String("item_id", item.ID),
			zap.String("vendor_id", result.RecommendedVendorID),
			zap.Float64("score", result.RecommendedScore),
			zap.Bool("urgent", urgency.IsUrgent),
		)
		return result
	}

	e.logger.Info("no eligible vendor for item",
		zap.String("item_id", item.ID),
		zap.Bool("urgent", urgency.IsUrgent),
		zap.Any("rejection_reasons", result.RejectionReasons),
	)
	return result
}

func findCandidate(candidates []*Candidate, vendorID string) *Candidate {
	if vendorID == "" {
		return nil
	}
	for _, c := range candidates {
		if c.Vendor.ID == vendorID {
			return c
		}
	}
	return nil
}
