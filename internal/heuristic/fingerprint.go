// Package heuristic implements the pure-Go signal detectors: linguistic
// fingerprinting, propaganda technique detection, contradiction detection
// and network propagation analysis. Each detector is stateless after
// construction and safe for concurrent use.
package heuristic

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/zainab-06-p/linkscout/internal/model"
)

// Fingerprint verdicts.
const (
	FingerprintNormal           = "NORMAL"
	FingerprintSuspicious       = "SUSPICIOUS"
	FingerprintHighlySuspicious = "HIGHLY_SUSPICIOUS"
)

var emotionalKeywords = map[string][]string{
	"high_intensity": {
		"shocking", "breaking", "urgent", "crisis", "disaster",
		"catastrophe", "terrifying", "horrifying", "devastating",
		"explosive", "bombshell", "scandal",
	},
	"fear": {
		"danger", "threat", "deadly", "fatal", "toxic", "poison",
		"kill", "death", "dying", "harmful", "dangerous", "risk",
	},
	"urgency": {
		"now", "immediately", "urgent", "hurry", "quick", "fast",
		"before it's too late", "act now", "limited time", "emergency",
	},
	"outrage": {
		"outrageous", "unbelievable", "insane", "crazy", "ridiculous",
		"absurd", "shocking", "disgusting", "appalling",
	},
}

var certaintyMarkers = []string{
	"absolutely", "definitely", "certainly", "100%", "proven",
	"guaranteed", "undeniable", "indisputable",
	"without a doubt", "no question", "obviously", "clearly",
}

var sourceEvasionRe = regexp.MustCompile(`(?i)\b(studies show|research shows|experts say|scientists claim|doctors warn|sources say|they say|people are saying|many believe|it is known|some say)\b`)

var conspiracyPhrases = []string{
	"they don't want you to know",
	"mainstream media won't tell you",
	"wake up",
	"open your eyes",
	"do your own research",
	"follow the money",
	"big pharma",
	"big tech",
	"the elite",
	"the establishment",
	"cover-up",
	"hidden truth",
	"secret agenda",
	"what they're hiding",
}

var statRe = regexp.MustCompile(`(?i)(\d+%|\d+\s*times|\d+x|increased by \d+|decreased by \d+)`)

var allCapsWordRe = regexp.MustCompile(`\b[A-Z]{4,}\b`)

// Fingerprinter scores linguistic patterns common in misinformation:
// emotional manipulation, certainty abuse, vague sourcing, conspiracy
// phrasing and unsourced statistics.
type Fingerprinter struct{}

// NewFingerprinter creates a fingerprint analyzer.
func NewFingerprinter() *Fingerprinter {
	return &Fingerprinter{}
}

// Analyze computes the linguistic fingerprint for a document.
func (f *Fingerprinter) Analyze(text string) model.FingerprintResult {
	emotional, emotionalEx := f.emotionalManipulation(text)
	certainty, certaintyEx := f.certaintyAbuse(text)
	evasion, evasionEx := f.sourceEvasion(text)
	conspiracy, conspiracyEx := f.conspiracyMarkers(text)
	stats, statsEx := f.statisticalManipulation(text)

	score := emotional*0.25 + certainty*0.20 + evasion*0.20 + conspiracy*0.25 + stats*0.10

	verdict := FingerprintNormal
	switch {
	case score >= 70:
		verdict = FingerprintHighlySuspicious
	case score >= 50:
		verdict = FingerprintSuspicious
	}

	return model.FingerprintResult{
		FingerprintScore:        round2(score),
		EmotionalManipulation:   round2(emotional),
		CertaintyAbuse:          round2(certainty),
		SourceEvasion:           round2(evasion),
		ConspiracyMarkers:       round2(conspiracy),
		StatisticalManipulation: round2(stats),
		Examples: map[string][]string{
			"emotional":   capExamples(emotionalEx, 5),
			"certainty":   capExamples(certaintyEx, 5),
			"evasion":     capExamples(evasionEx, 5),
			"conspiracy":  capExamples(conspiracyEx, 5),
			"statistical": capExamples(statsEx, 5),
		},
		Verdict: verdict,
	}
}

func (f *Fingerprinter) emotionalManipulation(text string) (float64, []string) {
	var score float64
	var examples []string

	exclamations := strings.Count(text, "!")
	if exclamations > 5 {
		score += minf(30, float64(exclamations)*2)
		examples = append(examples, fmt.Sprintf("excessive exclamation marks (%d)", exclamations))
	}

	capsWords := allCapsWordRe.FindAllString(text, -1)
	if len(capsWords) > 3 {
		score += minf(30, float64(len(capsWords))*5)
		for _, w := range capExamples(capsWords, 3) {
			examples = append(examples, "ALL CAPS: "+w)
		}
	}

	lower := strings.ToLower(text)
	for category, keywords := range emotionalKeywords {
		var found []string
		for _, kw := range keywords {
			if strings.Contains(lower, kw) {
				found = append(found, kw)
			}
		}
		if len(found) > 0 {
			score += minf(20, float64(len(found))*4)
			for _, kw := range capExamples(found, 2) {
				examples = append(examples, category+": "+kw)
			}
		}
	}

	return minf(100, score), examples
}

func (f *Fingerprinter) certaintyAbuse(text string) (float64, []string) {
	var score float64
	var examples []string

	lower := strings.ToLower(text)
	for _, marker := range certaintyMarkers {
		if strings.Contains(lower, marker) {
			score += 8
			examples = append(examples, "certainty marker: "+marker)
		}
	}

	return minf(100, score), examples
}

func (f *Fingerprinter) sourceEvasion(text string) (float64, []string) {
	var score float64
	var examples []string

	for _, m := range sourceEvasionRe.FindAllString(text, -1) {
		score += 15
		examples = append(examples, "vague source: "+strings.ToLower(m))
	}

	return minf(100, score), examples
}

func (f *Fingerprinter) conspiracyMarkers(text string) (float64, []string) {
	var score float64
	var examples []string

	lower := strings.ToLower(text)
	for _, phrase := range conspiracyPhrases {
		if strings.Contains(lower, phrase) {
			score += 20
			examples = append(examples, "conspiracy phrase: "+phrase)
		}
	}

	return minf(100, score), examples
}

func (f *Fingerprinter) statisticalManipulation(text string) (float64, []string) {
	var score float64
	var examples []string

	stats := statRe.FindAllString(text, -1)
	if len(stats) > 5 {
		score += 20
		examples = append(examples, fmt.Sprintf("high number of statistics (%d) without sources", len(stats)))
	}

	return minf(100, score), examples
}
