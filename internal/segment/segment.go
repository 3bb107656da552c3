// Package segment splits a document into scoreable paragraphs, dropping
// spans that cannot carry a claim: headline fragments, captions,
// navigation and other boilerplate.
package segment

import (
	"strings"
	"unicode"

	"github.com/zainab-06-p/linkscout/internal/model"
)

const (
	// minLength is the minimum trimmed length for a paragraph to be scored.
	minLength = 50
	// minAlnumLength is the minimum length after stripping punctuation;
	// shorter spans are headline fragments.
	minAlnumLength = 40
)

// boilerplateMarkers excludes non-content spans by case-insensitive
// substring match: image captions, navigation, subscribe/share prompts,
// copyright notices, ads, cross-references and timestamps.
var boilerplateMarkers = []string{
	"pictured", "shown above", "image shows", "photo shows",
	"related topics", "more on this story", "share this",
	"follow us", "subscribe", "newsletter",
	"copyright", "© ", "all rights reserved",
	"advertisement", "sponsored content",
	"read more:", "also read:", "see also:",
	"updated:", "published:", "minutes ago", "hours ago",
}

// Segment filters a pre-split paragraph list down to scoreable
// paragraphs, preserving original order and indices. Indices are never
// renumbered: dropped paragraphs leave gaps so a flagged chunk can be
// mapped back to the source DOM. Pure function of its input.
func Segment(paragraphs []string) []model.Paragraph {
	var retained []model.Paragraph
	for i, text := range paragraphs {
		if !Retain(text) {
			continue
		}
		trimmed := strings.TrimSpace(text)
		retained = append(retained, model.Paragraph{
			Index:      i,
			Text:       trimmed,
			ByteLength: len(trimmed),
		})
	}
	return retained
}

// SplitText splits raw document text into paragraph-like units on blank
// lines, without filtering. Feed the result to Segment.
func SplitText(text string) []string {
	normalized := strings.ReplaceAll(text, "\r\n", "\n")
	parts := strings.Split(normalized, "\n\n")
	units := make([]string, 0, len(parts))
	for _, p := range parts {
		units = append(units, strings.TrimSpace(p))
	}
	return units
}

// Retain reports whether a paragraph survives the exclusion rules. Rules
// are applied in order and each is a hard exclusion: minimum trimmed
// length, minimum alphanumeric length, boilerplate marker match.
func Retain(text string) bool {
	trimmed := strings.TrimSpace(text)
	if len(trimmed) < minLength {
		return false
	}

	if len(alnumOnly(trimmed)) < minAlnumLength {
		return false
	}

	lower := strings.ToLower(trimmed)
	for _, marker := range boilerplateMarkers {
		if strings.Contains(lower, marker) {
			return false
		}
	}

	return true
}

// alnumOnly strips everything except letters, digits and spaces, then
// trims. Used to detect punctuation-heavy headline fragments.
func alnumOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsSpace(r) {
			b.WriteRune(r)
		}
	}
	return strings.TrimSpace(b.String())
}
