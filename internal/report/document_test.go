package report

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/SUDHERSAN-K/AI-Automation-Procurement/internal/ai"
)

type stubComposer struct {
	req *ai.ScopeRequest
	doc string
	err error
}

func (s *stubComposer) ComposeScope(_ context.Context, req *ai.ScopeRequest) (string, error) {
	s.req = req
	return s.doc, s.err
}

func testSummary() *RunSummary {
	return &RunSummary{
		RunID:       "run-42",
		TotalItems:  1,
		Matched:     1,
		Vendors:     3,
		CompletedAt: time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestComposeScopeDocumentUsesComposer(t *testing.T) {
	composer := &stubComposer{doc: "# Scope\n\nnarrated"}
	rows := []*ScopedItem{{ItemName: "Transformer", RecommendedVendor: "Acme"}}

	doc, err := ComposeScopeDocument(context.Background(), composer, testSummary(), rows, "rules text", "extra prompt")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if doc != "# Scope\n\nnarrated" {
		t.Fatalf("unexpected document: %q", doc)
	}

	if composer.req == nil {
		t.Fatalf("expected the composer to receive a request")
	}
	if composer.req.ProjectID != "run-42" || composer.req.ProjectRules != "rules text" {
		t.Fatalf("unexpected request: %+v", composer.req)
	}
	if !strings.Contains(composer.req.Rows, "Transformer") {
		t.Fatalf("expected the rows table in the request:\n%s", composer.req.Rows)
	}
}

func TestComposeScopeDocumentComposerError(t *testing.T) {
	composer := &stubComposer{err: errors.New("model unavailable")}

	if _, err := ComposeScopeDocument(context.Background(), composer, testSummary(), nil, "", ""); err == nil {
		t.Fatalf("expected the composer error to surface")
	}
}

func TestComposeScopeDocumentFallback(t *testing.T) {
	rows := []*ScopedItem{
		{ItemName: "Transformer", RecommendedVendor: "Acme", Justification: "certified and fast"},
		{ItemName: "Cable Tray", RecommendedVendor: "No optimal match found"},
	}

	doc, err := ComposeScopeDocument(context.Background(), nil, testSummary(), rows, "", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, want := range []string{
		"# Procurement Scope Document",
		"Items Processed: 1",
		"| Transformer |",
		"## Vendor Justifications",
		"certified and fast",
	} {
		if !strings.Contains(doc, want) {
			t.Fatalf("expected %q in the fallback document:\n%s", want, doc)
		}
	}
}

func TestRenderRowsTableEscapesPipes(t *testing.T) {
	rows := []*ScopedItem{{ItemName: "Cable | Tray"}}

	table := RenderRowsTable(rows)
	if !strings.Contains(table, `Cable \| Tray`) {
		t.Fatalf("expected the pipe to be escaped:\n%s", table)
	}
}
