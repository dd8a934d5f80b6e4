package procurement

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mitchellh/mapstructure"
)

// Column names expected in the uploaded CSV files. They match the headers
// the procurement team uses in its bill-of-materials and vendor templates.
const (
	ColItemID        = "Item ID"
	ColItemName      = "Item Name"
	ColSpecification = "Specification"
	ColCategory      = "Category"
	ColQuantity      = "Quantity"
	ColUnit          = "UOM"
	ColDeliveryDate  = "Delivery Date"
	ColDrawingRef    = "Drawing Ref"

	ColVendorID       = "Vendor ID"
	ColVendorName     = "Vendor Name"
	ColCertifications = "Certifications"
	ColLeadTime       = "Avg Lead Time (days)"
	ColExpertise      = "Expertise"
	ColCategories     = "Expertise Categories"
	ColRegion         = "Region"
	ColContactName    = "Contact Name"
	ColContactEmail   = "Contact Email"
	ColReliability    = "Past Performance"
)

var (
	requiredItemColumns    = []string{ColItemName, ColSpecification, ColCategory, ColDeliveryDate}
	requiredVendorColumns  = []string{ColVendorName, ColCertifications, ColLeadTime, ColExpertise, ColRegion}
	requiredHistoryColumns = []string{ColItemName, ColSpecification}
)

type itemRow struct {
	ID            string  `mapstructure:"Item ID"`
	Name          string  `mapstructure:"Item Name"`
	Specification string  `mapstructure:"Specification"`
	Category      string  `mapstructure:"Category"`
	Quantity      float64 `mapstructure:"Quantity"`
	Unit          string  `mapstructure:"UOM"`
	DeliveryDate  string  `mapstructure:"Delivery Date"`
	DrawingRef    string  `mapstructure:"Drawing Ref"`
}

type vendorRow struct {
	ID             string `mapstructure:"Vendor ID"`
	Name           string `mapstructure:"Vendor Name"`
	Certifications string `mapstructure:"Certifications"`
	LeadTimeDays   int    `mapstructure:"Avg Lead Time (days)"`
	Expertise      string `mapstructure:"Expertise"`
	Categories     string `mapstructure:"Expertise Categories"`
	Region         string `mapstructure:"Region"`
	ContactName    string `mapstructure:"Contact Name"`
	ContactEmail   string `mapstructure:"Contact Email"`
	Reliability    string `mapstructure:"Past Performance"`
}

// LoadItems reads the bill-of-materials CSV into an Items snapshot.
// Rows missing an explicit Item ID get a positional one so downstream
// results always reference a stable identifier.
func LoadItems(path string) (*Items, error) {
	rows, err := readRows(path, requiredItemColumns)
	if err != nil {
		return nil, fmt.Errorf("loading items: %w", err)
	}

	items := &Items{}
	for idx, row := range rows {
		var decoded itemRow
		if err := decodeRow(row, &decoded); err != nil {
			return nil, fmt.Errorf("loading items: row %d: %w", idx+1, err)
		}

		item := &Item{
			ID:            decoded.ID,
			Name:          decoded.Name,
			Specification: decoded.Specification,
			Category:      decoded.Category,
			Quantity:      decoded.Quantity,
			Unit:          decoded.Unit,
			DeliveryDate:  decoded.DeliveryDate,
			DrawingRef:    decoded.DrawingRef,
		}
		if item.ID == "" {
			item.ID = fmt.Sprintf("item-%d", idx+1)
		}
		items.Records = append(items.Records, item)
	}

	return items, nil
}

// LoadVendors reads the vendor master list CSV into a Vendors snapshot.
func LoadVendors(path string) (*Vendors, error) {
	rows, err := readRows(path, requiredVendorColumns)
	if err != nil {
		return nil, fmt.Errorf("loading vendors: %w", err)
	}

	vendors := &Vendors{}
	for idx, row := range rows {
		var decoded vendorRow
		if err := decodeRow(row, &decoded); err != nil {
			return nil, fmt.Errorf("loading vendors: row %d: %w", idx+1, err)
		}

		if decoded.LeadTimeDays < 0 {
			return nil, fmt.Errorf("loading vendors: row %d: negative lead time %d", idx+1, decoded.LeadTimeDays)
		}

		known, unknown := ParseCertifications(decoded.Certifications)
		vendor := &Vendor{
			ID:                    decoded.ID,
			Name:                  decoded.Name,
			Certifications:        known,
			UnknownCertifications: unknown,
			LeadTimeDays:          decoded.LeadTimeDays,
			ExpertiseCategories:   splitList(decoded.Categories),
			Expertise:             decoded.Expertise,
			Region:                strings.TrimSpace(decoded.Region),
			Reliability:           decoded.Reliability,
			ContactName:           decoded.ContactName,
			ContactEmail:          decoded.ContactEmail,
		}
		if vendor.ID == "" {
			vendor.ID = fmt.Sprintf("vendor-%d", idx+1)
		}
		vendors.Records = append(vendors.Records, vendor)
	}

	return vendors, nil
}

// LoadHistory reads the historical procurement CSV used for specification
// recommendations.
func LoadHistory(path string) (*History, error) {
	rows, err := readRows(path, requiredHistoryColumns)
	if err != nil {
		return nil, fmt.Errorf("loading history: %w", err)
	}

	history := &History{}
	for _, row := range rows {
		history.Records = append(history.Records, &HistoricalRecord{
			ItemName:      row[ColItemName],
			Specification: row[ColSpecification],
		})
	}

	return history, nil
}

// readRows parses a CSV file into header-keyed maps and validates that the
// required columns are present before any row is decoded.
func readRows(path string, required []string) ([]map[string]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("%s: file is empty", path)
	}
	if err != nil {
		return nil, err
	}

	for i, col := range header {
		header[i] = strings.TrimSpace(col)
	}

	if missing := missingColumns(header, required); len(missing) > 0 {
		return nil, fmt.Errorf("%s: missing required columns: %s", path, strings.Join(missing, ", "))
	}

	var rows []map[string]string
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		row := make(map[string]string, len(header))
		for i, col := range header {
			if i < len(record) {
				row[col] = strings.TrimSpace(record[i])
			}
		}
		rows = append(rows, row)
	}

	return rows, nil
}

func missingColumns(header, required []string) []string {
	present := make(map[string]bool, len(header))
	for _, col := range header {
		present[col] = true
	}

	var missing []string
	for _, col := range required {
		if !present[col] {
			missing = append(missing, col)
		}
	}
	return missing
}

func decodeRow(row map[string]string, target any) error {
	cfg := &mapstructure.DecoderConfig{
		Result:           target,
		WeaklyTypedInput: true,
	}
	decoder, err := mapstructure.NewDecoder(cfg)
	if err != nil {
		return err
	}
	return decoder.Decode(row)
}

func splitList(raw string) []string {
	var parts []string
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			parts = append(parts, part)
		}
	}
	return parts
}
