package server

import (
	"math"
	"strings"
	"time"

	"github.com/zainab-06-p/linkscout/internal/model"
)

// overallBlock mirrors the "overall" object the extension reads.
type overallBlock struct {
	Verdict              string  `json:"verdict"`
	SuspiciousScore      float64 `json:"suspicious_score"`
	TotalParagraphs      int     `json:"total_paragraphs"`
	FakeParagraphs       int     `json:"fake_paragraphs"`
	SuspiciousParagraphs int     `json:"suspicious_paragraphs"`
	SafeParagraphs       int     `json:"safe_paragraphs"`
	CredibilityScore     float64 `json:"credibility_score"`
}

type combinedBlock struct {
	OverallScore float64 `json:"overall_score"`
	Verdict      string  `json:"verdict"`
}

// chunkBlock is the wire form of one flagged paragraph. The extension
// reads why_flagged as a single bullet-joined string, not an array.
type chunkBlock struct {
	Index           int            `json:"index"`
	Text            string         `json:"text"`
	TextPreview     string         `json:"text_preview"`
	SuspiciousScore float64        `json:"suspicious_score"`
	Severity        model.Severity `json:"severity"`
	WhyFlagged      string         `json:"why_flagged,omitempty"`
}

func buildChunks(chunks []model.ParagraphVerdict) []chunkBlock {
	out := make([]chunkBlock, len(chunks))
	for i, c := range chunks {
		out[i] = chunkBlock{
			Index:           c.Index,
			Text:            c.Text,
			TextPreview:     c.TextPreview,
			SuspiciousScore: c.SuspicionScore,
			Severity:        c.Severity,
			WhyFlagged:      strings.Join(c.Reasons, " • "),
		}
	}
	return out
}

// analyzeResponse is the wire format of a full analysis. Field names are
// stable; older extension builds read several of them.
type analyzeResponse struct {
	Success                  bool    `json:"success"`
	Timestamp                string  `json:"timestamp"`
	URL                      string  `json:"url"`
	Title                    string  `json:"title"`
	Verdict                  string  `json:"verdict"`
	MisinformationPercentage float64 `json:"misinformation_percentage"`
	CredibilityPercentage    float64 `json:"credibility_percentage"`

	Overall overallBlock `json:"overall"`
	Chunks  []chunkBlock `json:"chunks"`

	LinguisticFingerprint  model.FingerprintResult   `json:"linguistic_fingerprint"`
	ClaimVerification      model.ClaimResult         `json:"claim_verification"`
	SourceCredibility      model.SourceResult        `json:"source_credibility"`
	PropagandaAnalysis     model.PropagandaResult    `json:"propaganda_analysis"`
	ContradictionDetection model.ContradictionResult `json:"contradiction_detection"`
	NetworkAnalysis        model.NetworkResult       `json:"network_analysis"`

	Research       string `json:"research,omitempty"`
	Analysis       string `json:"analysis,omitempty"`
	Conclusion     string `json:"conclusion,omitempty"`
	WhatIsRight    string `json:"what_is_right"`
	WhatIsWrong    string `json:"what_is_wrong"`
	InternetSays   string `json:"internet_says"`
	Recommendation string `json:"recommendation"`
	WhyMatters     string `json:"why_matters"`

	CombinedAnalysis combinedBlock `json:"combined_analysis"`
}

func buildAnalyzeResponse(report *model.Report) analyzeResponse {
	suspicious := round1(report.Document.SuspiciousScore)

	resp := analyzeResponse{
		Success:                  true,
		Timestamp:                report.AnalyzedAt.UTC().Format(time.RFC3339),
		URL:                      report.URL,
		Title:                    report.Title,
		Verdict:                  report.Document.Verdict,
		MisinformationPercentage: suspicious,
		CredibilityPercentage:    round1(100 - suspicious),
		Overall: overallBlock{
			Verdict:              report.Document.Verdict,
			SuspiciousScore:      suspicious,
			TotalParagraphs:      report.Summary.TotalParagraphs,
			FakeParagraphs:       report.Summary.FakeParagraphs,
			SuspiciousParagraphs: report.Summary.SuspiciousParagraphs,
			SafeParagraphs:       report.Summary.SafeParagraphs,
			CredibilityScore:     round1(100 - suspicious),
		},
		Chunks:                 buildChunks(report.Chunks),
		LinguisticFingerprint:  report.Signals.Fingerprint,
		ClaimVerification:      report.Signals.Claims,
		SourceCredibility:      report.Signals.Credibility,
		PropagandaAnalysis:     report.Signals.Propaganda,
		ContradictionDetection: report.Signals.Contradictions,
		NetworkAnalysis:        report.Signals.Network,
		CombinedAnalysis: combinedBlock{
			OverallScore: round1(report.Combined.OverallScore),
			Verdict:      report.Combined.Verdict,
		},
	}

	if n := report.Narrative; n != nil {
		resp.Research = n.Research
		resp.Analysis = n.Analysis
		resp.Conclusion = n.Conclusion
		resp.WhatIsRight = n.WhatIsRight
		resp.WhatIsWrong = n.WhatIsWrong
		resp.InternetSays = n.InternetSays
		resp.Recommendation = n.Recommendation
		resp.WhyMatters = n.WhyMatters
	}

	return resp
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
