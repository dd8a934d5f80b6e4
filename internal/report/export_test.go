package report

import (
	"encoding/csv"
	"encoding/json"
	"os"
	"strings"
	"testing"
	"time"
)

func TestExport(t *testing.T) {
	dir := t.TempDir()
	rows := []*ScopedItem{
		{
			ItemName:           "Transformer",
			FinalSpecification: "oil-cooled 11kV",
			Quantity:           2,
			Unit:               "EA",
			Urgent:             true,
			RecommendedVendor:  "Acme Electric",
			LeadTimeDays:       21,
			SimilarityScore:    0.8215,
			EstimatedCostUSD:   1100,
		},
	}

	now := time.Date(2025, 3, 1, 9, 30, 0, 0, time.UTC)
	exports, err := Export(dir, "", rows, now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	csvPath, ok := exports["csv"]
	if !ok || !strings.HasSuffix(csvPath, "scope_document_20250301_093000.csv") {
		t.Fatalf("unexpected csv path: %q", csvPath)
	}

	file, err := os.Open(csvPath)
	if err != nil {
		t.Fatalf("opening export: %v", err)
	}
	defer file.Close()

	records, err := csv.NewReader(file).ReadAll()
	if err != nil {
		t.Fatalf("reading export: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected header plus 1 row, got %d records", len(records))
	}
	if len(records[0]) != len(csvHeader) {
		t.Fatalf("expected %d columns, got %d", len(csvHeader), len(records[0]))
	}

	row := records[1]
	if row[0] != "Transformer" || row[7] != "Yes" || row[8] != "Acme Electric" {
		t.Fatalf("unexpected row: %v", row)
	}
	if row[14] != "0.822" {
		t.Fatalf("expected the score rounded to 3 decimals, got %q", row[14])
	}

	data, err := os.ReadFile(exports["json"])
	if err != nil {
		t.Fatalf("reading json export: %v", err)
	}
	var decoded []*ScopedItem
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("decoding json export: %v", err)
	}
	if len(decoded) != 1 || decoded[0].ItemName != "Transformer" {
		t.Fatalf("unexpected json content: %+v", decoded)
	}
}
