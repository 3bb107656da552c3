package heuristic

import (
	"regexp"
	"strings"

	"github.com/zainab-06-p/linkscout/internal/model"
)

// Contradiction verdicts.
const (
	ContradictionHigh = "HIGH_CONTRADICTION"
	ContradictionSome = "SOME_CONTRADICTIONS"
	ContradictionNone = "CONSISTENT"
)

// Contradiction severities.
const (
	severityHigh   = "high"
	severityMedium = "medium"
	severityLow    = "low"
)

var negationRe = regexp.MustCompile(`(?i)\b(not|never|no longer|isn't|aren't|wasn't|weren't|doesn't|don't|didn't|cannot|can't|won't)\b`)

var falseDichotomyRe = regexp.MustCompile(`(?i)(either\s+\w[^.!?]*\s+or\s+|the\s+only\s+(?:choice|option|way)|there\s+is\s+no\s+(?:other\s+)?(?:choice|option|alternative))`)

var numberRe = regexp.MustCompile(`\b\d[\d,.]*\b`)

// ContradictionDetector finds statements within a single document that
// undercut each other: direct negation pairs, false dichotomies and
// inconsistent numeric claims.
type ContradictionDetector struct{}

// NewContradictionDetector creates a contradiction detector.
func NewContradictionDetector() *ContradictionDetector {
	return &ContradictionDetector{}
}

// Detect analyzes a document for internal contradictions.
func (d *ContradictionDetector) Detect(text string) model.ContradictionResult {
	sentences := splitSentences(text)

	var found []model.Contradiction
	found = append(found, d.directContradictions(sentences)...)
	found = append(found, d.falseDichotomies(sentences)...)
	found = append(found, d.inconsistentNumbers(sentences)...)

	var high, medium, low int
	for _, c := range found {
		switch c.Severity {
		case severityHigh:
			high++
		case severityMedium:
			medium++
		default:
			low++
		}
	}

	score := minf(100, float64(high)*25+float64(medium)*15+float64(low)*5)

	verdict := ContradictionNone
	switch {
	case score >= 60:
		verdict = ContradictionHigh
	case score >= 30:
		verdict = ContradictionSome
	}

	return model.ContradictionResult{
		TotalContradictions: len(found),
		ContradictionScore:  score,
		Contradictions:      found,
		Verdict:             verdict,
	}
}

// directContradictions pairs a sentence with a later negated sentence
// that shares most of its significant words.
func (d *ContradictionDetector) directContradictions(sentences []string) []model.Contradiction {
	var out []model.Contradiction

	type entry struct {
		text    string
		words   map[string]struct{}
		negated bool
	}

	entries := make([]entry, 0, len(sentences))
	for _, s := range sentences {
		entries = append(entries, entry{
			text:    s,
			words:   significantWords(s),
			negated: negationRe.MatchString(s),
		})
	}

	for i := 0; i < len(entries); i++ {
		for j := i + 1; j < len(entries); j++ {
			if entries[i].negated == entries[j].negated {
				continue
			}
			if wordOverlap(entries[i].words, entries[j].words) >= 0.6 {
				out = append(out, model.Contradiction{
					Kind:     "direct_negation",
					First:    entries[i].text,
					Second:   entries[j].text,
					Severity: severityHigh,
				})
			}
		}
	}

	return out
}

func (d *ContradictionDetector) falseDichotomies(sentences []string) []model.Contradiction {
	var out []model.Contradiction
	for _, s := range sentences {
		if falseDichotomyRe.MatchString(s) {
			out = append(out, model.Contradiction{
				Kind:     "false_dichotomy",
				First:    s,
				Severity: severityLow,
			})
		}
	}
	return out
}

// inconsistentNumbers flags sentence pairs that share their wording but
// disagree on the numbers they state.
func (d *ContradictionDetector) inconsistentNumbers(sentences []string) []model.Contradiction {
	var out []model.Contradiction

	for i := 0; i < len(sentences); i++ {
		numsI := numberRe.FindAllString(sentences[i], -1)
		if len(numsI) == 0 {
			continue
		}
		wordsI := significantWords(numberRe.ReplaceAllString(sentences[i], ""))

		for j := i + 1; j < len(sentences); j++ {
			numsJ := numberRe.FindAllString(sentences[j], -1)
			if len(numsJ) == 0 {
				continue
			}
			wordsJ := significantWords(numberRe.ReplaceAllString(sentences[j], ""))

			if wordOverlap(wordsI, wordsJ) >= 0.7 && !sameNumbers(numsI, numsJ) {
				out = append(out, model.Contradiction{
					Kind:     "inconsistent_numbers",
					First:    sentences[i],
					Second:   sentences[j],
					Severity: severityMedium,
				})
			}
		}
	}

	return out
}

var stopWords = map[string]struct{}{
	"the": {}, "a": {}, "an": {}, "and": {}, "or": {}, "but": {},
	"of": {}, "in": {}, "on": {}, "at": {}, "to": {}, "for": {},
	"is": {}, "are": {}, "was": {}, "were": {}, "be": {}, "been": {},
	"that": {}, "this": {}, "it": {}, "with": {}, "as": {}, "by": {},
}

func significantWords(s string) map[string]struct{} {
	words := make(map[string]struct{})
	for _, w := range strings.Fields(strings.ToLower(s)) {
		w = strings.Trim(w, ".,!?;:\"'()")
		if len(w) < 3 {
			continue
		}
		if _, stop := stopWords[w]; stop {
			continue
		}
		words[w] = struct{}{}
	}
	return words
}

// wordOverlap returns |a∩b| over the size of the smaller set.
func wordOverlap(a, b map[string]struct{}) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	small, large := a, b
	if len(b) < len(a) {
		small, large = b, a
	}
	shared := 0
	for w := range small {
		if _, ok := large[w]; ok {
			shared++
		}
	}
	return float64(shared) / float64(len(small))
}

func sameNumbers(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
