package inference

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/zainab-06-p/linkscout/internal/model"
	"github.com/zainab-06-p/linkscout/internal/signal"
)

// Label aliases across the fake-news models. Some emit FAKE/REAL, some
// the anonymous LABEL_0/LABEL_1 pair with LABEL_0 meaning fake.
var (
	fakeLabels = map[string]bool{"fake": true, "label_0": true}
	realLabels = map[string]bool{"real": true, "true": true, "label_1": true}
)

// fakeProbability extracts the probability of the "fake" class from a
// classifier's label scores.
func fakeProbability(scores []LabelScore) (float64, bool) {
	for _, s := range scores {
		if fakeLabels[strings.ToLower(s.Label)] {
			return s.Score, true
		}
	}
	for _, s := range scores {
		if realLabels[strings.ToLower(s.Label)] {
			return 1 - s.Score, true
		}
	}
	return 0, false
}

func topScore(scores []LabelScore) (LabelScore, bool) {
	if len(scores) == 0 {
		return LabelScore{}, false
	}
	top := scores[0]
	for _, s := range scores[1:] {
		if s.Score > top.Score {
			top = s
		}
	}
	return top, true
}

func labelScore(scores []LabelScore, wanted ...string) (float64, bool) {
	for _, s := range scores {
		for _, w := range wanted {
			if strings.EqualFold(s.Label, w) {
				return s.Score, true
			}
		}
	}
	return 0, false
}

// EnsembleProvider votes several fake-news classifiers and averages
// their fake probabilities onto a 0-100 scale. Individual model failures
// are logged and skipped; the provider errors only when no model at all
// responded.
type EnsembleProvider struct {
	client *Client
	models []string
	logger *zap.Logger
}

// NewEnsembleProvider creates the ensemble over the configured models.
func NewEnsembleProvider(client *Client, models []string, logger *zap.Logger) *EnsembleProvider {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &EnsembleProvider{client: client, models: models, logger: logger}
}

func (p *EnsembleProvider) Name() string { return signal.NameEnsemble }

func (p *EnsembleProvider) Evaluate(ctx context.Context, text string) (signal.Result, error) {
	sub := make(map[string]float64, len(p.models))
	var sum float64
	responded := 0

	for _, id := range p.models {
		scores, err := p.client.Classify(ctx, id, text)
		if err != nil {
			p.logger.Warn("ensemble model failed", zap.String("model", id), zap.Error(err))
			continue
		}
		prob, ok := fakeProbability(scores)
		if !ok {
			p.logger.Warn("ensemble model returned no recognizable label", zap.String("model", id))
			continue
		}
		sub[id] = prob
		sum += prob
		responded++
	}

	if responded == 0 {
		return signal.Result{}, fmt.Errorf("no ensemble model responded (%d configured)", len(p.models))
	}

	avg := sum / float64(responded)
	label := "real"
	if avg >= 0.5 {
		label = "fake"
	}
	return signal.Result{
		Score:     avg * 100,
		Label:     label,
		SubScores: sub,
	}, nil
}

// FakeNewsProvider exposes a single fake-news classifier as a 0-1
// probability signal. Used for both the pretrained and the custom model
// slots.
type FakeNewsProvider struct {
	name   string
	client *Client
	model  string
}

// NewPretrainedProvider wraps the primary pretrained classifier.
func NewPretrainedProvider(client *Client, model string) *FakeNewsProvider {
	return &FakeNewsProvider{name: signal.NamePretrained, client: client, model: model}
}

// NewCustomProvider wraps the optional custom fine-tuned classifier.
func NewCustomProvider(client *Client, model string) *FakeNewsProvider {
	return &FakeNewsProvider{name: signal.NameCustom, client: client, model: model}
}

func (p *FakeNewsProvider) Name() string { return p.name }

func (p *FakeNewsProvider) Evaluate(ctx context.Context, text string) (signal.Result, error) {
	scores, err := p.client.Classify(ctx, p.model, text)
	if err != nil {
		return signal.Result{}, err
	}
	prob, ok := fakeProbability(scores)
	if !ok {
		return signal.Result{}, fmt.Errorf("model %s returned no recognizable label", p.model)
	}
	label := "real"
	if prob >= 0.5 {
		label = "fake"
	}
	return signal.Result{Score: prob, Label: label}, nil
}

// EmotionProvider reports the dominant emotion and its probability.
type EmotionProvider struct {
	client *Client
	model  string
}

// NewEmotionProvider wraps the emotion classifier.
func NewEmotionProvider(client *Client, model string) *EmotionProvider {
	return &EmotionProvider{client: client, model: model}
}

func (p *EmotionProvider) Name() string { return signal.NameEmotion }

func (p *EmotionProvider) Evaluate(ctx context.Context, text string) (signal.Result, error) {
	scores, err := p.client.Classify(ctx, p.model, text)
	if err != nil {
		return signal.Result{}, err
	}
	top, ok := topScore(scores)
	if !ok {
		return signal.Result{}, fmt.Errorf("model %s returned no labels", p.model)
	}
	sub := make(map[string]float64, len(scores))
	for _, s := range scores {
		sub[strings.ToLower(s.Label)] = s.Score
	}
	return signal.Result{
		Score:     top.Score,
		Label:     strings.ToLower(top.Label),
		SubScores: sub,
	}, nil
}

// HateSpeechProvider reports the probability of the hate class.
type HateSpeechProvider struct {
	client *Client
	model  string
}

// NewHateSpeechProvider wraps the hate speech classifier.
func NewHateSpeechProvider(client *Client, model string) *HateSpeechProvider {
	return &HateSpeechProvider{client: client, model: model}
}

func (p *HateSpeechProvider) Name() string { return signal.NameHateSpeech }

func (p *HateSpeechProvider) Evaluate(ctx context.Context, text string) (signal.Result, error) {
	scores, err := p.client.Classify(ctx, p.model, text)
	if err != nil {
		return signal.Result{}, err
	}
	prob, ok := labelScore(scores, "hate", "hateful", "label_1")
	if !ok {
		return signal.Result{}, fmt.Errorf("model %s returned no recognizable label", p.model)
	}
	label := "nothate"
	if prob >= 0.5 {
		label = "hate"
	}
	return signal.Result{Score: prob, Label: label}, nil
}

// ClickbaitProvider reports the probability of the clickbait class.
type ClickbaitProvider struct {
	client *Client
	model  string
}

// NewClickbaitProvider wraps the clickbait classifier.
func NewClickbaitProvider(client *Client, model string) *ClickbaitProvider {
	return &ClickbaitProvider{client: client, model: model}
}

func (p *ClickbaitProvider) Name() string { return signal.NameClickbait }

func (p *ClickbaitProvider) Evaluate(ctx context.Context, text string) (signal.Result, error) {
	scores, err := p.client.Classify(ctx, p.model, text)
	if err != nil {
		return signal.Result{}, err
	}
	prob, ok := labelScore(scores, "clickbait", "label_1")
	if !ok {
		return signal.Result{}, fmt.Errorf("model %s returned no recognizable label", p.model)
	}
	label := "news"
	if prob >= 0.5 {
		label = "clickbait"
	}
	return signal.Result{Score: prob, Label: label}, nil
}

// RegisterProviders wires every configured classifier into the registry.
// Slots with no model configured are simply not registered, which the
// scoring core treats as a missing signal.
func RegisterProviders(reg *signal.Registry, client *Client, models model.InferenceModels, logger *zap.Logger) {
	if len(models.Ensemble) > 0 {
		reg.Register(NewEnsembleProvider(client, models.Ensemble, logger))
	}
	if models.Pretrained != "" {
		reg.Register(NewPretrainedProvider(client, models.Pretrained))
	}
	if models.Custom != "" {
		reg.Register(NewCustomProvider(client, models.Custom))
	}
	if models.Emotion != "" {
		reg.Register(NewEmotionProvider(client, models.Emotion))
	}
	if models.HateSpeech != "" {
		reg.Register(NewHateSpeechProvider(client, models.HateSpeech))
	}
	if models.Clickbait != "" {
		reg.Register(NewClickbaitProvider(client, models.Clickbait))
	}
}
