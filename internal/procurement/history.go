package procurement

import (
	"sort"
	"strings"
)

// History holds past procurement records used to recommend specifications.
type History struct {
	Records []*HistoricalRecord
}

type HistoricalRecord struct {
	ItemName      string `json:"item_name,omitempty"`
	Specification string `json:"specification,omitempty"`
}

// SpecRecommendation carries the historically most common specification
// for an item together with a confidence ratio.
type SpecRecommendation struct {
	ItemName          string  `json:"item_name,omitempty"`
	CurrentSpec       string  `json:"current_spec,omitempty"`
	RecommendedSpec   string  `json:"recommended_spec,omitempty"`
	Confidence        float64 `json:"confidence,omitempty"`
	HistoricalMatches int     `json:"historical_matches,omitempty"`
}

// fallbackConfidence is assigned when an item has no historical matches
// and the current specification is kept as-is.
const fallbackConfidence = 0.3

func (h *History) Len() int {
	return len(h.Records)
}

// RecommendSpecs produces one recommendation per item. A historical record
// matches when its item name contains the item's name, ignoring case. With
// matches present the most frequent specification wins; frequency ties are
// broken lexicographically so reruns produce identical output.
func (h *History) RecommendSpecs(items *Items) []*SpecRecommendation {
	recommendations := make([]*SpecRecommendation, 0, items.Len())

	for _, item := range items.Records {
		matches := h.matchesFor(item.Name)

		rec := &SpecRecommendation{
			ItemName:          item.Name,
			CurrentSpec:       item.Specification,
			RecommendedSpec:   item.Specification,
			Confidence:        fallbackConfidence,
			HistoricalMatches: len(matches),
		}

		if len(matches) > 0 {
			spec, count := mostCommonSpec(matches)
			rec.RecommendedSpec = spec
			rec.Confidence = float64(count) / float64(len(matches))
		}

		recommendations = append(recommendations, rec)
	}

	return recommendations
}

// FindRecommendation returns the recommendation for the given item name or nil.
func FindRecommendation(recommendations []*SpecRecommendation, itemName string) *SpecRecommendation {
	for _, rec := range recommendations {
		if rec.ItemName == itemName {
			return rec
		}
	}
	return nil
}

func (h *History) matchesFor(itemName string) []*HistoricalRecord {
	needle := strings.ToLower(strings.TrimSpace(itemName))
	if needle == "" {
		return nil
	}

	var matches []*HistoricalRecord
	for _, record := range h.Records {
		if strings.Contains(strings.ToLower(record.ItemName), needle) {
			matches = append(matches, record)
		}
	}
	return matches
}

func mostCommonSpec(records []*HistoricalRecord) (string, int) {
	counts := make(map[string]int, len(records))
	for _, record := range records {
		counts[record.Specification]++
	}

	specs := make([]string, 0, len(counts))
	for spec := range counts {
		specs = append(specs, spec)
	}
	sort.Strings(specs)

	best, bestCount := "", 0
	for _, spec := range specs {
		if counts[spec] > bestCount {
			best, bestCount = spec, counts[spec]
		}
	}
	return best, bestCount
}
