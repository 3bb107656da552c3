package model

import "time"

// DocumentVerdict is the primary document-level scoring result.
// SuspiciousScore is always the sum of Contributions clamped into [0,100],
// and Verdict is a pure monotonic function of SuspiciousScore.
type DocumentVerdict struct {
	SuspiciousScore float64        `json:"suspicious_score"`
	Verdict         string         `json:"verdict"`
	Contributions   []Contribution `json:"contributions"`
}

// CombinedVerdict is the secondary, independently weighted credibility
// score with its own five-tier verdict. It is surfaced alongside the
// primary verdict and is intentionally never reconciled with it.
type CombinedVerdict struct {
	OverallScore  float64        `json:"overall_score"`
	Verdict       string         `json:"verdict"`
	Contributions []Contribution `json:"contributions,omitempty"`
}

// Summary aggregates per-paragraph outcomes for a document.
type Summary struct {
	TotalParagraphs      int `json:"total_paragraphs"`
	FakeParagraphs       int `json:"fake_paragraphs"`
	SuspiciousParagraphs int `json:"suspicious_paragraphs"`
	SafeParagraphs       int `json:"safe_paragraphs"`
}

// Narrative holds the advisory text produced by the analysis agents (or
// the deterministic fallback). It never feeds back into any score.
type Narrative struct {
	Research       string `json:"research,omitempty"`
	Analysis       string `json:"analysis,omitempty"`
	Conclusion     string `json:"conclusion,omitempty"`
	WhatIsRight    string `json:"what_is_right,omitempty"`
	WhatIsWrong    string `json:"what_is_wrong,omitempty"`
	InternetSays   string `json:"internet_says,omitempty"`
	Recommendation string `json:"recommendation,omitempty"`
	WhyMatters     string `json:"why_matters,omitempty"`
}

// Report is the complete result of one analysis request. Everything in it
// is derived from the request input and discarded when the request ends;
// the only cross-request state is the optional result cache.
type Report struct {
	URL        string    `json:"url,omitempty"`
	Title      string    `json:"title,omitempty"`
	AnalyzedAt time.Time `json:"analyzed_at"`

	Document DocumentVerdict `json:"overall"`
	Combined CombinedVerdict `json:"combined_analysis"`
	Summary  Summary         `json:"summary"`

	Chunks  []ParagraphVerdict `json:"chunks"`
	Signals DocumentSignals    `json:"signals"`

	Narrative *Narrative `json:"narrative,omitempty"`
}
