package report

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/SUDHERSAN-K/AI-Automation-Procurement/internal/matching"
)

var csvHeader = []string{
	"Item Name", "Final Specification", "Category", "Quantity", "UOM",
	"Delivery Date", "Drawing Ref", "Urgency Flag", "Recommended Vendor",
	"Vendor Region", "Vendor Contact", "Vendor Email", "Lead Time (days)",
	"Vendor Certifications", "Similarity Score", "Time Risk", "Vendor Risk",
	"Overall Risk", "Estimated Cost USD", "Justification",
}

// Export writes the scoped items to CSV and JSON files under dir, using
// timestamped filenames, and returns a format-to-path map.
func Export(dir, baseName string, rows []*ScopedItem, now time.Time) (map[string]string, error) {
	if baseName == "" {
		baseName = "scope_document"
	}

	stamp := now.Format("20060102_150405")
	exports := make(map[string]string, 2)

	csvPath := filepath.Join(dir, fmt.Sprintf("%s_%s.csv", baseName, stamp))
	if err := ExportCSV(csvPath, rows); err != nil {
		return nil, err
	}
	exports["csv"] = csvPath

	jsonPath := filepath.Join(dir, fmt.Sprintf("%s_%s.json", baseName, stamp))
	if err := ExportJSON(jsonPath, rows); err != nil {
		return nil, err
	}
	exports["json"] = jsonPath

	return exports, nil
}

// ExportCSV writes the scoped items as a CSV table.
func ExportCSV(path string, rows []*ScopedItem) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	if err := writer.Write(csvHeader); err != nil {
		return err
	}

	for _, row := range rows {
		record := []string{
			row.ItemName,
			row.FinalSpecification,
			row.Category,
			strconv.FormatFloat(row.Quantity, 'f', -1, 64),
			row.Unit,
			row.DeliveryDate,
			row.DrawingRef,
			urgencyFlag(row.Urgent),
			row.RecommendedVendor,
			row.VendorRegion,
			row.VendorContact,
			row.VendorEmail,
			strconv.Itoa(row.LeadTimeDays),
			row.VendorCertifications,
			strconv.FormatFloat(row.SimilarityScore, 'f', 3, 64),
			row.TimeRisk,
			row.VendorRisk,
			row.OverallRisk,
			strconv.FormatFloat(row.EstimatedCostUSD, 'f', 2, 64),
			row.Justification,
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}

// ExportJSON writes the scoped items as an indented JSON array.
func ExportJSON(path string, rows []*ScopedItem) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	enc := json.NewEncoder(file)
	enc.SetIndent("", "  ")
	return enc.Encode(rows)
}

// DumpResultsToTmpFile writes the raw match results, audit trail included,
// to a temporary JSON file and returns its name.
func DumpResultsToTmpFile(results []*matching.MatchResult) (string, error) {
	file, err := os.CreateTemp("", "match_results_*.json")
	if err != nil {
		return "", err
	}
	defer file.Close()

	enc := json.NewEncoder(file)
	enc.SetIndent("", "  ")
	if err := enc.Encode(results); err != nil {
		return "", err
	}
	return file.Name(), nil
}

func urgencyFlag(urgent bool) string {
	if urgent {
		return "Yes"
	}
	return "No"
}
