package model

// Paragraph is one retained unit of document text. Index is the position
// in the original paragraph list, preserved across filtering so flagged
// chunks can be mapped back to the source DOM.
type Paragraph struct {
	Index      int    `json:"index"`
	Text       string `json:"text"`
	ByteLength int    `json:"byte_length"`
}

// Severity classifies a paragraph's suspicion level.
type Severity string

const (
	SeverityNone   Severity = "none"
	SeverityMedium Severity = "medium"
	SeverityHigh   Severity = "high"
)

// ParagraphVerdict is the per-paragraph scoring result. Only paragraphs
// reaching medium or high severity are surfaced as chunks; the rest are
// summarized in aggregate counts.
type ParagraphVerdict struct {
	Index          int            `json:"index"`
	Text           string         `json:"text"`
	TextPreview    string         `json:"text_preview"`
	SuspicionScore float64        `json:"suspicious_score"`
	Severity       Severity       `json:"severity"`
	Reasons        []string       `json:"why_flagged,omitempty"`
	Contributions  []Contribution `json:"-"`
}
