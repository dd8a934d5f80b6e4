package matching

import (
	"math"
	"sort"
	"strings"
	"unicode"

	"github.com/SUDHERSAN-K/AI-Automation-Procurement/internal/procurement"
)

// stopWords is the fixed list dropped during tokenization. The tokenizer
// (this list, case-folding, splitting on non-alphanumeric runes) is part
// of the scoring contract: changing it changes ranking outcomes.
var stopWords = map[string]bool{
	"a": true, "an": true, "and": true, "are": true, "as": true,
	"at": true, "be": true, "by": true, "for": true, "from": true,
	"in": true, "is": true, "it": true, "of": true, "on": true,
	"or": true, "that": true, "the": true, "to": true, "with": true,
}

// Tokenize lower-cases the text, splits on non-alphanumeric boundaries and
// drops stop-words.
func Tokenize(text string) []string {
	fields := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})

	tokens := make([]string, 0, len(fields))
	for _, field := range fields {
		if !stopWords[field] {
			tokens = append(tokens, field)
		}
	}
	return tokens
}

// ScoreCandidates computes the relevance of every eligible candidate to
// the item's specification text and records it on the candidate. The
// vector space is local to this one item's matching call so rare-term
// weighting reflects only the competitors for this item. Returned
// diagnostics note degenerate inputs such as an empty specification.
func ScoreCandidates(item *procurement.Item, candidates []*Candidate, policy *Policy) []string {
	var diagnostics []string

	eligible := eligibleOf(candidates)
	if len(eligible) == 0 {
		return diagnostics
	}

	itemTokens := Tokenize(item.Specification)
	if len(itemTokens) == 0 {
		diagnostics = append(diagnostics, "empty specification text; similarity is zero for all vendors")
	}

	docs := make([][]string, 0, len(eligible)+1)
	docs = append(docs, itemTokens)
	for _, c := range eligible {
		docs = append(docs, Tokenize(c.Vendor.Expertise))
	}

	vectors := tfidfVectors(docs)
	itemVector := vectors[0]

	for i, c := range eligible {
		c.Score = cosine(itemVector, vectors[i+1])
		c.BelowRelevanceThreshold = c.Score < policy.MinRelevance
	}

	return diagnostics
}

// OverlapTerms returns the sorted distinct tokens shared between the two
// texts. Used for the justification facts.
func OverlapTerms(a, b string) []string {
	inA := make(map[string]bool)
	for _, token := range Tokenize(a) {
		inA[token] = true
	}

	seen := make(map[string]bool)
	var shared []string
	for _, token := range Tokenize(b) {
		if inA[token] && !seen[token] {
			seen[token] = true
			shared = append(shared, token)
		}
	}

	sort.Strings(shared)
	return shared
}

// tfidfVectors builds one tf-idf weighted vector per document. Term
// frequency is the raw count normalized by document length; inverse
// document frequency is smoothed as log((1+N)/(1+df))+1 so a term present
// in every document keeps nonzero weight and a single-document corpus
// never divides by zero.
func tfidfVectors(docs [][]string) []map[string]float64 {
	n := float64(len(docs))

	df := make(map[string]float64)
	for _, doc := range docs {
		seen := make(map[string]bool, len(doc))
		for _, term := range doc {
			if !seen[term] {
				seen[term] = true
				df[term]++
			}
		}
	}

	vectors := make([]map[string]float64, len(docs))
	for i, doc := range docs {
		vector := make(map[string]float64)
		if len(doc) == 0 {
			vectors[i] = vector
			continue
		}

		counts := make(map[string]float64, len(doc))
		for _, term := range doc {
			counts[term]++
		}

		length := float64(len(doc))
		for term, count := range counts {
			tf := count / length
			idf := math.Log((1+n)/(1+df[term])) + 1
			vector[term] = tf * idf
		}
		vectors[i] = vector
	}

	return vectors
}

// cosine computes the cosine similarity of two term-weight vectors. A
// zero-magnitude vector yields 0, not an error.
func cosine(a, b map[string]float64) float64 {
	var dot, magA, magB float64
	for term, weight := range a {
		magA += weight * weight
		if other, ok := b[term]; ok {
			dot += weight * other
		}
	}
	for _, weight := range b {
		magB += weight * weight
	}

	if magA == 0 || magB == 0 {
		return 0
	}
	return dot / (math.Sqrt(magA) * math.Sqrt(magB))
}
