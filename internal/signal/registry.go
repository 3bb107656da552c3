package signal

import (
	"context"
	"math"

	"go.uber.org/zap"
)

// Registry holds the named signal providers for a process. It is built
// once at startup and passed explicitly into the pipeline; the scoring
// functions hold no global provider state.
//
// Registry is the single fault boundary between providers and the scoring
// core: a provider that errors, panics, or returns an out-of-range score
// yields a neutral result instead. Registration happens before any
// Evaluate call; the map is read-only afterwards, so concurrent analysis
// requests need no locking here.
type Registry struct {
	providers map[string]Provider
	logger    *zap.Logger
}

// NewRegistry creates an empty registry.
func NewRegistry(logger *zap.Logger) *Registry {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Registry{
		providers: make(map[string]Provider),
		logger:    logger,
	}
}

// Register adds a provider under its own name, replacing any previous one.
func (r *Registry) Register(p Provider) {
	r.providers[p.Name()] = p
}

// Has reports whether a provider is registered under name.
func (r *Registry) Has(name string) bool {
	_, ok := r.providers[name]
	return ok
}

// Names returns the registered provider names.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.providers))
	for name := range r.providers {
		names = append(names, name)
	}
	return names
}

// Evaluate runs the named provider and returns its result with the score
// clamped into [0,100]. A missing provider, an error, or a panic all
// degrade to a zero-valued neutral result; the failure is logged and
// never propagated, so no paragraph or document analysis is aborted by a
// single signal.
func (r *Registry) Evaluate(ctx context.Context, name, text string) Result {
	p, ok := r.providers[name]
	if !ok {
		return Result{}
	}

	res, err := r.evaluateSafe(ctx, p, text)
	if err != nil {
		r.logger.Warn("signal provider failed, using neutral default",
			zap.String("provider", name),
			zap.Error(err))
		return Result{}
	}

	res.Score = clampScore(res.Score)
	return res
}

func (r *Registry) evaluateSafe(ctx context.Context, p Provider, text string) (res Result, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			r.logger.Error("signal provider panicked",
				zap.String("provider", p.Name()),
				zap.Any("panic", rec))
			res = Result{}
			err = nil
		}
	}()
	return p.Evaluate(ctx, text)
}

// clampScore enforces the [0,100] invariant on provider scores. NaN and
// infinities collapse to zero rather than poisoning downstream sums.
func clampScore(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
