package ai

import (
	"context"

	"github.com/SUDHERSAN-K/AI-Automation-Procurement/internal/matching"
)

// Narrator turns the structured justification facts of one match into a
// short written justification. The engine treats it as a black box: the
// engine's contract ends at producing the facts.
type Narrator interface {
	Justify(ctx context.Context, facts *matching.JustificationFacts) (string, error)
}

// ScopeRequest carries everything the scope-document composer needs: the
// project rules text, the user's generation prompt and the processed run
// data rendered as text.
type ScopeRequest struct {
	ProjectID    string
	ProjectRules string
	Prompt       string
	Summary      string
	Rows         string
}

// ScopeComposer produces the full markdown procurement scope document for
// one run.
type ScopeComposer interface {
	ComposeScope(ctx context.Context, req *ScopeRequest) (string, error)
}
