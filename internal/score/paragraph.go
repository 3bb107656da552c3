package score

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/zainab-06-p/linkscout/internal/model"
	"github.com/zainab-06-p/linkscout/internal/signal"
	"github.com/zainab-06-p/linkscout/internal/worker"
)

// Paragraph severity breakpoints. Paragraphs below the medium breakpoint
// are dropped from the flagged chunks and counted as safe.
const (
	highSeverityThreshold   = 70.0
	mediumSeverityThreshold = 60.0
)

const previewLen = 150

// Emotions that count as manipulative when scored high enough.
var manipulativeEmotions = map[string]bool{
	"anger":   true,
	"fear":    true,
	"disgust": true,
}

// ParagraphScorer scores individual paragraphs from per-paragraph
// classifier signals plus document-level carry-over indicators.
type ParagraphScorer struct {
	registry *signal.Registry
	logger   *zap.Logger
}

// NewParagraphScorer creates a paragraph scorer over the given registry.
func NewParagraphScorer(registry *signal.Registry, logger *zap.Logger) *ParagraphScorer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ParagraphScorer{registry: registry, logger: logger}
}

// Score computes the verdict for one paragraph. Each paragraph starts
// from zero; document-level signals contribute only through the fixed
// carry-over bands, so one bad paragraph never taints another.
func (s *ParagraphScorer) Score(ctx context.Context, para model.Paragraph, doc model.DocumentSignals) model.ParagraphVerdict {
	var contribs []model.Contribution
	var reasons []string
	add := func(cat model.SignalCategory, points float64, reason string) {
		contribs = append(contribs, model.Contribution{Category: cat, Points: points, Reason: reason})
		if reason != "" {
			reasons = append(reasons, reason)
		}
	}

	ensemble := s.registry.Evaluate(ctx, signal.NameEnsemble, para.Text).Score
	switch {
	case ensemble > 85:
		add(model.SignalEnsemble, 60, fmt.Sprintf("Very high fake news probability: %d%%", int(ensemble)))
	case ensemble > 70:
		add(model.SignalEnsemble, 50, fmt.Sprintf("High fake news probability: %d%%", int(ensemble)))
	case ensemble > 55:
		add(model.SignalEnsemble, 35, fmt.Sprintf("Moderate fake news probability: %d%%", int(ensemble)))
	case ensemble > 40:
		add(model.SignalEnsemble, 20, fmt.Sprintf("Some fake news indicators: %d%%", int(ensemble)))
	}

	emotion := s.registry.Evaluate(ctx, signal.NameEmotion, para.Text)
	if manipulativeEmotions[emotion.Label] {
		if emotion.Score > 0.95 {
			add(model.SignalEmotion, 20,
				fmt.Sprintf("Extreme emotional manipulation: %s (%d%%)", emotion.Label, int(emotion.Score*100)))
		} else if emotion.Score > 0.85 {
			add(model.SignalEmotion, 10,
				fmt.Sprintf("High emotional tone: %s (%d%%)", emotion.Label, int(emotion.Score*100)))
		}
	}

	hate := s.registry.Evaluate(ctx, signal.NameHateSpeech, para.Text).Score
	switch {
	case hate > 0.75:
		add(model.SignalHateSpeech, 30, fmt.Sprintf("Hate speech detected: %d%%", int(hate*100)))
	case hate > 0.60:
		add(model.SignalHateSpeech, 20, fmt.Sprintf("Hate speech indicators: %d%%", int(hate*100)))
	case hate > 0.45:
		add(model.SignalHateSpeech, 10, fmt.Sprintf("Potential hate speech: %d%%", int(hate*100)))
	}

	clickbait := s.registry.Evaluate(ctx, signal.NameClickbait, para.Text).Score
	switch {
	case clickbait > 0.75:
		add(model.SignalClickbait, 25, fmt.Sprintf("Clickbait detected: %d%%", int(clickbait*100)))
	case clickbait > 0.60:
		add(model.SignalClickbait, 15, fmt.Sprintf("Clickbait indicators: %d%%", int(clickbait*100)))
	case clickbait > 0.45:
		add(model.SignalClickbait, 8, fmt.Sprintf("Possible clickbait: %d%%", int(clickbait*100)))
	}

	s.addCarryOver(add, doc)

	total := 0.0
	for _, c := range contribs {
		total += c.Points
	}
	if total > 100 {
		total = 100
	}

	return model.ParagraphVerdict{
		Index:          para.Index,
		Text:           para.Text,
		TextPreview:    preview(para.Text),
		SuspicionScore: total,
		Severity:       severity(total),
		Reasons:        reasons,
		Contributions:  contribs,
	}
}

// addCarryOver applies the document-level indicator bands to a paragraph.
// These fire only on strong document signals, and the propaganda 60-80
// band deliberately adds points without a reason string.
func (s *ParagraphScorer) addCarryOver(add func(model.SignalCategory, float64, string), doc model.DocumentSignals) {
	if doc.Fingerprint.FingerprintScore > 70 {
		reason := ""
		if len(doc.Fingerprint.Examples) > 0 {
			reason = "Suspicious language patterns"
		}
		add(model.SignalFingerprint, 8, reason)
	}

	prop := doc.Propaganda.PropagandaScore
	if prop > 80 && len(doc.Propaganda.Techniques) > 0 {
		add(model.SignalPropaganda, 15,
			"Propaganda techniques: "+strings.Join(headStrings(doc.Propaganda.Techniques, 2), ", "))
	} else if prop > 60 {
		add(model.SignalPropaganda, 8, "")
	}

	if doc.Claims.FalseClaims > 2 {
		add(model.SignalClaims, 15, "Multiple false claims detected")
	} else if doc.Claims.FalseClaims > 0 {
		add(model.SignalClaims, 8, "Unverified claims")
	}
}

type paragraphJob struct {
	ctx    context.Context
	scorer *ParagraphScorer
	para   model.Paragraph
	doc    model.DocumentSignals
}

type paragraphResult struct {
	verdict model.ParagraphVerdict
}

// Execute scores against the request context rather than the pool's so
// provider calls stop when the request is canceled.
func (j paragraphJob) Execute(context.Context) worker.Result {
	return paragraphResult{verdict: j.scorer.Score(j.ctx, j.para, j.doc)}
}

func (r paragraphResult) GetError() error { return nil }

// ScoreAll scores paragraphs concurrently over a bounded worker pool and
// returns the flagged chunks in original paragraph order, plus the
// summary counts. totalParagraphs is the pre-filter paragraph count used
// for the safe denominator.
func (s *ParagraphScorer) ScoreAll(ctx context.Context, paras []model.Paragraph, doc model.DocumentSignals, workers, totalParagraphs int) ([]model.ParagraphVerdict, model.Summary) {
	if workers <= 0 {
		workers = 1
	}

	pool := worker.NewPoolSize(workers, len(paras))
	pool.Start()

	for _, p := range paras {
		pool.Submit(paragraphJob{ctx: ctx, scorer: s, para: p, doc: doc})
	}

	chunks := []model.ParagraphVerdict{}
	for _, res := range pool.Wait() {
		pr, ok := res.(paragraphResult)
		if !ok {
			continue
		}
		if pr.verdict.Severity != model.SeverityNone {
			chunks = append(chunks, pr.verdict)
		}
	}

	sort.Slice(chunks, func(i, j int) bool { return chunks[i].Index < chunks[j].Index })

	summary := model.Summary{TotalParagraphs: totalParagraphs}
	for _, c := range chunks {
		if c.Severity == model.SeverityHigh {
			summary.FakeParagraphs++
		} else {
			summary.SuspiciousParagraphs++
		}
	}
	summary.SafeParagraphs = totalParagraphs - len(chunks)

	return chunks, summary
}

func severity(score float64) model.Severity {
	switch {
	case score >= highSeverityThreshold:
		return model.SeverityHigh
	case score >= mediumSeverityThreshold:
		return model.SeverityMedium
	default:
		return model.SeverityNone
	}
}

func preview(text string) string {
	runes := []rune(text)
	if len(runes) <= previewLen {
		return text
	}
	return string(runes[:previewLen]) + "..."
}
