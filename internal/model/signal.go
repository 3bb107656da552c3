package model

// SignalCategory identifies the detector family a score contribution came from.
type SignalCategory string

const (
	SignalEnsemble      SignalCategory = "ensemble"
	SignalPretrained    SignalCategory = "pretrained"
	SignalCustomModel   SignalCategory = "custom_model"
	SignalEmotion       SignalCategory = "emotion"
	SignalHateSpeech    SignalCategory = "hate_speech"
	SignalClickbait     SignalCategory = "clickbait"
	SignalFingerprint   SignalCategory = "linguistic_fingerprint"
	SignalClaims        SignalCategory = "claim_verification"
	SignalCredibility   SignalCategory = "source_credibility"
	SignalPropaganda    SignalCategory = "propaganda"
	SignalContradiction SignalCategory = "contradiction"
	SignalNetwork       SignalCategory = "network"
)

// Contribution is one independent (category, points, reason) entry in a
// score breakdown. Points may be negative (source-credibility discount).
type Contribution struct {
	Category SignalCategory `json:"category"`
	Points   float64        `json:"points"`
	Reason   string         `json:"reason,omitempty"`
}

// FingerprintResult is the linguistic-fingerprint signal: a heuristic
// style score built from emotional language, vague sourcing, certainty
// abuse, conspiracy phrasing and unsourced statistics.
type FingerprintResult struct {
	FingerprintScore        float64             `json:"fingerprint_score"`
	EmotionalManipulation   float64             `json:"emotional_manipulation"`
	CertaintyAbuse          float64             `json:"certainty_abuse"`
	SourceEvasion           float64             `json:"source_evasion"`
	ConspiracyMarkers       float64             `json:"conspiracy_markers"`
	StatisticalManipulation float64             `json:"statistical_manipulation"`
	Examples                map[string][]string `json:"examples,omitempty"`
	Verdict                 string              `json:"verdict"`
}

// PropagandaResult reports detected rhetorical manipulation techniques.
type PropagandaResult struct {
	PropagandaScore float64  `json:"propaganda_score"`
	Techniques      []string `json:"techniques"`
	TotalInstances  int      `json:"total_instances"`
	Verdict         string   `json:"verdict"`
}

// ClaimMatch is a single hit against the known-false-claims table.
type ClaimMatch struct {
	Claim       string `json:"claim"`
	Verdict     string `json:"verdict"`
	Source      string `json:"source,omitempty"`
	Explanation string `json:"explanation,omitempty"`
	Confidence  int    `json:"confidence"`
}

// ClaimResult summarizes offline claim verification for a document.
type ClaimResult struct {
	TotalClaims     int          `json:"total_claims"`
	FalseClaims     int          `json:"false_claims"`
	FalsePercentage float64      `json:"false_percentage"`
	Matches         []ClaimMatch `json:"matches,omitempty"`
	Summary         string       `json:"summary,omitempty"`
}

// SourceScore is the credibility record for a single domain.
type SourceScore struct {
	Domain   string  `json:"domain"`
	Score    float64 `json:"score"`
	Category string  `json:"category"`
	Name     string  `json:"name,omitempty"`
}

// SourceResult is the source-credibility signal for a document.
type SourceResult struct {
	AverageCredibility float64       `json:"average_credibility"`
	Sources            []SourceScore `json:"sources,omitempty"`
	Verdict            string        `json:"verdict"`
	Explanation        string        `json:"explanation,omitempty"`
}

// Contradiction is a single internally inconsistent statement pair.
type Contradiction struct {
	Kind     string `json:"kind"`
	First    string `json:"first"`
	Second   string `json:"second,omitempty"`
	Severity string `json:"severity"`
}

// ContradictionResult reports internal inconsistencies found in a document.
type ContradictionResult struct {
	TotalContradictions int             `json:"total_contradictions"`
	ContradictionScore  float64         `json:"contradiction_score"`
	Contradictions      []Contradiction `json:"contradictions,omitempty"`
	Verdict             string          `json:"verdict"`
}

// NetworkResult reports bot/astroturf propagation patterns in the text itself.
type NetworkResult struct {
	BotScore          float64  `json:"bot_score"`
	AstroturfScore    float64  `json:"astroturfing_score"`
	ViralScore        float64  `json:"viral_manipulation_score"`
	CoordinationScore float64  `json:"coordination_score"`
	RepetitionScore   float64  `json:"repetition_score"`
	OverallScore      float64  `json:"overall_network_score"`
	RedFlags          []string `json:"red_flags,omitempty"`
	Verdict           string   `json:"verdict"`
}

// PretrainedResult carries the secondary model-backed probabilities.
// Probabilities are in [0,1]; the ensemble score lives in DocumentSignals
// on a 0-100 scale.
type PretrainedResult struct {
	FakeProbability           float64 `json:"fake_probability"`
	CustomModelMisinformation float64 `json:"custom_model_misinformation"`
	Emotion                   string  `json:"emotion,omitempty"`
	EmotionScore              float64 `json:"emotion_score,omitempty"`
	HateSpeech                float64 `json:"hate_speech,omitempty"`
	Clickbait                 float64 `json:"clickbait,omitempty"`
}

// DocumentSignals is the full set of document-level signal outputs the
// aggregator consumes. Zero values are valid neutral defaults for every
// field except Credibility, whose zero average would land in the penalty
// band; NeutralSignals returns a fully neutral value.
type DocumentSignals struct {
	EnsembleScore  float64             `json:"ensemble_score"` // 0-100
	Pretrained     PretrainedResult    `json:"pretrained"`
	Fingerprint    FingerprintResult   `json:"linguistic_fingerprint"`
	Claims         ClaimResult         `json:"claim_verification"`
	Credibility    SourceResult        `json:"source_credibility"`
	Propaganda     PropagandaResult    `json:"propaganda_analysis"`
	Contradictions ContradictionResult `json:"contradiction_detection"`
	Network        NetworkResult       `json:"network_analysis"`
}

// NeutralCredibility is the credibility substituted when the credibility
// signal is unavailable. It sits between the penalty band (<30) and the
// discount band (>=50), so it adjusts the aggregate by zero points.
const NeutralCredibility = 40.0

// NeutralSignals returns a DocumentSignals value in which every signal
// contributes zero points to the aggregate.
func NeutralSignals() DocumentSignals {
	return DocumentSignals{
		Credibility: SourceResult{AverageCredibility: NeutralCredibility, Verdict: "UNKNOWN"},
	}
}
