// Package signal defines the contract between the scoring core and the
// independent signal providers (heuristics and remote classifiers), and
// the registry that isolates the core from provider failures.
package signal

import "context"

// Provider names used by the scoring core. Providers register under these
// names; anything else is ignored by the built-in scorers.
const (
	NameEnsemble   = "ensemble"
	NamePretrained = "pretrained"
	NameCustom     = "custom_model"
	NameEmotion    = "emotion"
	NameHateSpeech = "hate_speech"
	NameClickbait  = "clickbait"
)

// Result is the bounded output of one provider invocation. Score is on
// whatever scale the provider documents (0-100 for the ensemble, 0-1 for
// probability classifiers); the registry clamps it into [0,100] either way.
// Produced fresh per call and owned by the caller.
type Result struct {
	Score     float64
	Label     string
	Evidence  []string
	SubScores map[string]float64
}

// Provider is an independent analyzer: given a text span it returns a
// bounded score plus structured evidence. Implementations may truncate
// the input to their own length limit. An error return is permitted; the
// registry converts it into a neutral result exactly once, so the scoring
// core itself never sees provider errors.
type Provider interface {
	Name() string
	Evaluate(ctx context.Context, text string) (Result, error)
}

// Func adapts a plain function to the Provider interface.
type Func struct {
	ProviderName string
	Fn           func(ctx context.Context, text string) (Result, error)
}

func (f Func) Name() string { return f.ProviderName }

func (f Func) Evaluate(ctx context.Context, text string) (Result, error) {
	return f.Fn(ctx, text)
}
