package report

import (
	"context"
	"fmt"
	"strings"

	"github.com/SUDHERSAN-K/AI-Automation-Procurement/internal/ai"
)

// ComposeScopeDocument builds the final markdown scope document. With a
// composer configured the narration model writes the full document from
// the run data; without one a plain tabular document is rendered locally
// so the run still produces a usable artifact.
func ComposeScopeDocument(ctx context.Context, composer ai.ScopeComposer, summary *RunSummary, rows []*ScopedItem, projectRules, prompt string) (string, error) {
	if composer == nil {
		return renderFallback(summary, rows), nil
	}

	req := &ai.ScopeRequest{
		ProjectID:    summary.RunID,
		ProjectRules: projectRules,
		Prompt:       prompt,
		Summary:      summary.Render(),
		Rows:         RenderRowsTable(rows),
	}

	doc, err := composer.ComposeScope(ctx, req)
	if err != nil {
		return "", fmt.Errorf("compose scope document: %w", err)
	}
	return doc, nil
}

// RenderRowsTable renders the scoped items as a markdown table.
func RenderRowsTable(rows []*ScopedItem) string {
	var b strings.Builder
	b.WriteString("| Item | Specification | Qty | UOM | Delivery | Urgent | Vendor | Region | Lead Time | Certs | Score | Risk |\n")
	b.WriteString("| --- | --- | --- | --- | --- | --- | --- | --- | --- | --- | --- | --- |\n")

	for _, row := range rows {
		fmt.Fprintf(&b, "| %s | %s | %g | %s | %s | %s | %s | %s | %d | %s | %.3f | %s |\n",
			escapeCell(row.ItemName),
			escapeCell(row.FinalSpecification),
			row.Quantity,
			escapeCell(row.Unit),
			escapeCell(row.DeliveryDate),
			urgencyFlag(row.Urgent),
			escapeCell(row.RecommendedVendor),
			escapeCell(row.VendorRegion),
			row.LeadTimeDays,
			escapeCell(row.VendorCertifications),
			row.SimilarityScore,
			row.OverallRisk,
		)
	}

	return b.String()
}

func renderFallback(summary *RunSummary, rows []*ScopedItem) string {
	var b strings.Builder
	b.WriteString("# Procurement Scope Document\n\n")
	b.WriteString("## Summary\n\n")
	b.WriteString(summary.Render())
	b.WriteString("\n## Item Specifications and Vendor Recommendations\n\n")
	b.WriteString(RenderRowsTable(rows))

	var justified []*ScopedItem
	for _, row := range rows {
		if row.Justification != "" {
			justified = append(justified, row)
		}
	}
	if len(justified) > 0 {
		b.WriteString("\n## Vendor Justifications\n\n")
		for _, row := range justified {
			fmt.Fprintf(&b, "- **%s**: %s\n", row.ItemName, row.Justification)
		}
	}

	return b.String()
}

func escapeCell(s string) string {
	return strings.ReplaceAll(s, "|", "\\|")
}
