// Package pipeline orchestrates a full analysis: segmentation, document
// signals, aggregation, paragraph scoring and report assembly.
package pipeline

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/zainab-06-p/linkscout/internal/agents"
	"github.com/zainab-06-p/linkscout/internal/cache"
	"github.com/zainab-06-p/linkscout/internal/claimdb"
	"github.com/zainab-06-p/linkscout/internal/credibility"
	"github.com/zainab-06-p/linkscout/internal/heuristic"
	"github.com/zainab-06-p/linkscout/internal/model"
	"github.com/zainab-06-p/linkscout/internal/score"
	"github.com/zainab-06-p/linkscout/internal/segment"
	"github.com/zainab-06-p/linkscout/internal/signal"
)

// ErrInsufficientText is returned when a document has too little content
// to analyze meaningfully.
var ErrInsufficientText = errors.New("insufficient text for analysis")

// minContentLength is the minimum trimmed document length.
const minContentLength = 50

// Narrator produces the advisory narrative for a finished analysis.
type Narrator interface {
	Narrate(ctx context.Context, title, content string, signals model.DocumentSignals, flagged, total int) model.Narrative
}

// Analyzer wires the signal providers, heuristics and scorers into one
// reusable engine. It is safe for concurrent use.
type Analyzer struct {
	cfg      *model.Config
	registry *signal.Registry
	scorer   *score.ParagraphScorer
	fetcher  *Fetcher
	narrator Narrator
	cache    cache.Cache
	logger   *zap.Logger

	fingerprinter  *heuristic.Fingerprinter
	propaganda     *heuristic.PropagandaDetector
	contradictions *heuristic.ContradictionDetector
	network        *heuristic.NetworkAnalyzer
	claims         *claimdb.Checker
	sources        *credibility.Analyzer
}

// NewAnalyzer creates an analyzer. narrator and resultCache may be nil;
// analysis then uses the deterministic fallback narrative and no caching.
func NewAnalyzer(cfg *model.Config, registry *signal.Registry, narrator Narrator, resultCache cache.Cache, logger *zap.Logger) *Analyzer {
	if cfg == nil {
		cfg = model.DefaultConfig()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if registry == nil {
		registry = signal.NewRegistry(logger)
	}

	return &Analyzer{
		cfg:      cfg,
		registry: registry,
		scorer:   score.NewParagraphScorer(registry, logger),
		fetcher:  NewFetcher(cfg.HTTP),
		narrator: narrator,
		cache:    resultCache,
		logger:   logger,

		fingerprinter:  heuristic.NewFingerprinter(),
		propaganda:     heuristic.NewPropagandaDetector(),
		contradictions: heuristic.NewContradictionDetector(),
		network:        heuristic.NewNetworkAnalyzer(),
		claims:         claimdb.NewChecker(),
		sources:        credibility.NewAnalyzer(),
	}
}

// AnalyzeURL fetches an article and analyzes its extracted paragraphs.
func (a *Analyzer) AnalyzeURL(ctx context.Context, rawURL string) (*model.Report, error) {
	article, err := a.fetcher.Fetch(ctx, rawURL)
	if err != nil {
		return nil, err
	}
	return a.AnalyzeParagraphs(ctx, article.Title, article.FinalURL, article.Paragraphs)
}

// AnalyzeText splits free text on blank lines and analyzes it.
func (a *Analyzer) AnalyzeText(ctx context.Context, title, url, text string) (*model.Report, error) {
	return a.AnalyzeParagraphs(ctx, title, url, segment.SplitText(text))
}

// AnalyzeParagraphs runs the full pipeline over a pre-split paragraph
// list. Paragraph indices in the report refer to positions in paragraphs.
func (a *Analyzer) AnalyzeParagraphs(ctx context.Context, title, url string, paragraphs []string) (*model.Report, error) {
	content := strings.TrimSpace(strings.Join(paragraphs, "\n\n"))
	if len(content) < minContentLength {
		return nil, ErrInsufficientText
	}

	key := cache.Key(content)
	if report, ok := a.cached(key); ok {
		a.logger.Debug("analysis cache hit", zap.String("key", key))
		return report, nil
	}

	start := time.Now()
	signals := a.documentSignals(ctx, url, content)

	retained := segment.Segment(paragraphs)
	chunks, summary := a.scorer.ScoreAll(ctx, retained, signals,
		a.cfg.Concurrency.ParagraphWorkers, len(paragraphs))

	report := &model.Report{
		URL:        url,
		Title:      title,
		AnalyzedAt: time.Now().UTC(),
		Document:   score.Aggregate(signals),
		Combined:   score.Combined(signals),
		Summary:    summary,
		Chunks:     chunks,
		Signals:    signals,
	}

	flagged := summary.FakeParagraphs + summary.SuspiciousParagraphs
	narrative := a.narrate(ctx, title, content, signals, flagged, summary.TotalParagraphs)
	report.Narrative = &narrative

	a.logger.Info("analysis complete",
		zap.String("verdict", report.Document.Verdict),
		zap.Float64("suspicious_score", report.Document.SuspiciousScore),
		zap.Int("paragraphs", summary.TotalParagraphs),
		zap.Int("flagged", flagged),
		zap.Duration("elapsed", time.Since(start)))

	a.store(key, report)
	return report, nil
}

// documentSignals evaluates every document-level signal. Heuristics run
// locally and cannot fail; remote classifiers degrade to neutral results
// through the registry. The article's own URL counts as a cited source,
// so a page on a rated domain gets that domain's credibility even when
// the body cites nothing.
func (a *Analyzer) documentSignals(ctx context.Context, url, content string) model.DocumentSignals {
	signals := model.NeutralSignals()

	signals.EnsembleScore = a.registry.Evaluate(ctx, signal.NameEnsemble, content).Score
	signals.Pretrained.FakeProbability = a.registry.Evaluate(ctx, signal.NamePretrained, content).Score
	signals.Pretrained.CustomModelMisinformation = a.registry.Evaluate(ctx, signal.NameCustom, content).Score

	emotion := a.registry.Evaluate(ctx, signal.NameEmotion, content)
	signals.Pretrained.Emotion = emotion.Label
	signals.Pretrained.EmotionScore = emotion.Score
	signals.Pretrained.HateSpeech = a.registry.Evaluate(ctx, signal.NameHateSpeech, content).Score
	signals.Pretrained.Clickbait = a.registry.Evaluate(ctx, signal.NameClickbait, content).Score

	signals.Fingerprint = a.fingerprinter.Analyze(content)
	signals.Propaganda = a.propaganda.Detect(content)
	signals.Contradictions = a.contradictions.Detect(content)
	signals.Network = a.network.Analyze(content)
	signals.Claims = a.claims.Check(content)

	sourceText := content
	if url != "" {
		sourceText = url + "\n" + content
	}
	signals.Credibility = a.sources.Analyze(sourceText)

	return signals
}

func (a *Analyzer) narrate(ctx context.Context, title, content string, signals model.DocumentSignals, flagged, total int) model.Narrative {
	if a.narrator == nil {
		return agents.FallbackNarrative(signals, flagged, total)
	}
	return a.narrator.Narrate(ctx, title, content, signals, flagged, total)
}

func (a *Analyzer) cached(key string) (*model.Report, bool) {
	if a.cache == nil {
		return nil, false
	}
	data, ok := a.cache.Get(key)
	if !ok {
		return nil, false
	}
	var report model.Report
	if err := json.Unmarshal(data, &report); err != nil {
		a.logger.Warn("corrupt cache entry dropped", zap.String("key", key), zap.Error(err))
		_ = a.cache.Delete(key)
		return nil, false
	}
	return &report, true
}

func (a *Analyzer) store(key string, report *model.Report) {
	if a.cache == nil {
		return
	}
	data, err := json.Marshal(report)
	if err != nil {
		a.logger.Warn("marshal report for cache", zap.Error(err))
		return
	}
	if err := a.cache.Set(key, data, 0); err != nil {
		a.logger.Warn("cache store failed", zap.String("key", key), zap.Error(err))
	}
}
