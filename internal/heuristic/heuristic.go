package heuristic

import (
	"math"
	"sort"
	"strings"
)

func sortStrings(s []string) {
	sort.Strings(s)
}

func minf(a, b float64) float64 {
	return math.Min(a, b)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func capExamples(examples []string, n int) []string {
	if len(examples) > n {
		return examples[:n]
	}
	return examples
}

// splitSentences splits text into trimmed sentences on terminators,
// keeping only spans long enough to carry a statement.
func splitSentences(text string) []string {
	var sentences []string
	var current []rune

	flush := func() {
		s := strings.TrimSpace(string(current))
		if len(s) >= 10 {
			sentences = append(sentences, s)
		}
		current = current[:0]
	}

	for _, r := range text {
		current = append(current, r)
		if r == '.' || r == '!' || r == '?' {
			flush()
		}
	}
	flush()

	return sentences
}
