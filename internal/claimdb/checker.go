// Package claimdb verifies text against an offline database of known
// false claims. It needs no network access, which keeps claim checking
// available when fact-checking APIs are not.
package claimdb

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/zainab-06-p/linkscout/internal/model"
)

const (
	minClaimLength = 15
	maxClaims      = 10

	confidenceExact   = 95
	confidenceKeyword = 85
	confidencePattern = 70
)

var opinionMarkers = []string{
	"i think", "i believe", "maybe", "perhaps", "possibly", "in my opinion",
}

// Checker matches document text against the known false claims table
// and the misinformation phrase patterns.
type Checker struct{}

// NewChecker creates a claim checker.
func NewChecker() *Checker {
	return &Checker{}
}

// Check extracts verifiable claims from text and reports how many of
// them match known misinformation.
func (c *Checker) Check(text string) model.ClaimResult {
	claims := c.ExtractClaims(text)
	matches := c.matchText(text)

	falseCount := 0
	for _, m := range matches {
		if m.Verdict == VerdictFalse || m.Verdict == VerdictLikelyFalse {
			falseCount++
		}
	}

	total := len(claims)
	var pct float64
	if total > 0 {
		pct = float64(falseCount) / float64(total) * 100
		if pct > 100 {
			pct = 100
		}
	} else if falseCount > 0 {
		pct = 100
	}

	return model.ClaimResult{
		TotalClaims:     total,
		FalseClaims:     falseCount,
		FalsePercentage: pct,
		Matches:         matches,
		Summary:         summarize(falseCount, total),
	}
}

// KnownClaimMatches counts database phrases that appear verbatim in the
// text. It is the cheap substring pass used by the quick risk check.
func (c *Checker) KnownClaimMatches(text string) int {
	lower := strings.ToLower(text)
	count := 0
	for phrase := range knownFalseClaims {
		if strings.Contains(lower, phrase) {
			count++
		}
	}
	return count
}

// ExtractClaims picks out declarative sentences that carry verifiable
// information, such as numbers, dates or named subjects. Questions and
// opinion statements are skipped.
func (c *Checker) ExtractClaims(text string) []string {
	var claims []string
	for _, sent := range sentences(text) {
		if len(sent) < minClaimLength {
			continue
		}
		if strings.HasSuffix(sent, "?") {
			continue
		}
		lower := strings.ToLower(sent)
		if containsAny(lower, opinionMarkers) {
			continue
		}
		if !hasSpecificInfo(sent) {
			continue
		}
		claims = append(claims, sent)
		if len(claims) == maxClaims {
			break
		}
	}
	return claims
}

func (c *Checker) matchText(text string) []model.ClaimMatch {
	lower := strings.ToLower(text)
	seen := make(map[string]bool)
	var matches []model.ClaimMatch

	add := func(m model.ClaimMatch) {
		if !seen[m.Claim] {
			seen[m.Claim] = true
			matches = append(matches, m)
		}
	}

	for key, e := range knownFalseClaims {
		if strings.Contains(lower, key) {
			add(model.ClaimMatch{
				Claim:       key,
				Verdict:     e.verdict,
				Source:      e.source,
				Explanation: e.explanation,
				Confidence:  confidenceExact,
			})
			continue
		}
		if containsAllWords(lower, key) {
			add(model.ClaimMatch{
				Claim:       key,
				Verdict:     e.verdict,
				Source:      e.source,
				Explanation: e.explanation,
				Confidence:  confidenceKeyword,
			})
		}
	}

	for _, re := range falseClaimPatterns {
		if re.MatchString(lower) {
			add(model.ClaimMatch{
				Claim:       "pattern: " + readablePattern(re.String()),
				Verdict:     VerdictLikelyFalse,
				Source:      "Pattern matching",
				Explanation: "Matches known misinformation pattern",
				Confidence:  confidencePattern,
			})
		}
	}

	return matches
}

func summarize(falseCount, total int) string {
	if falseCount == 0 {
		if total == 0 {
			return "No verifiable claims found in text."
		}
		return fmt.Sprintf("%d claim(s) appear verifiable; none matched known misinformation.", total)
	}
	return fmt.Sprintf("WARNING: found %d known false claim(s) across %d extracted claim(s). Verify with fact-checking sources.", falseCount, total)
}

func sentences(text string) []string {
	var out []string
	var b strings.Builder
	for _, r := range text {
		b.WriteRune(r)
		if r == '.' || r == '!' || r == '?' {
			if s := strings.TrimSpace(b.String()); s != "" {
				out = append(out, s)
			}
			b.Reset()
		}
	}
	if s := strings.TrimSpace(b.String()); s != "" {
		out = append(out, s)
	}
	return out
}

// hasSpecificInfo reports whether a sentence contains a digit or a
// capitalized word past the first position, a cheap stand-in for named
// entity detection.
func hasSpecificInfo(sent string) bool {
	for _, r := range sent {
		if unicode.IsDigit(r) {
			return true
		}
	}
	words := strings.Fields(sent)
	for i, w := range words {
		if i == 0 {
			continue
		}
		r := []rune(w)[0]
		if unicode.IsUpper(r) {
			return true
		}
	}
	return false
}

func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

func containsAllWords(s, phrase string) bool {
	for _, w := range strings.Fields(phrase) {
		if !strings.Contains(s, w) {
			return false
		}
	}
	return true
}

func readablePattern(pattern string) string {
	r := strings.NewReplacer(`\s+`, " ", ".*", " ", `(?:`, "", `)`, "", `(`, "", `?`, "", `|`, "/")
	return strings.Join(strings.Fields(r.Replace(pattern)), " ")
}
