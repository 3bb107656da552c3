// Package score holds the additive scoring core: the document aggregator,
// the combined credibility blend and the per-paragraph scorer. Every
// score is a clamped sum of independent, explainable contributions; the
// scorers consume signal outputs and never call providers directly except
// through the registry fault boundary.
package score

import (
	"fmt"
	"strings"

	"github.com/zainab-06-p/linkscout/internal/model"
)

// Document aggregation weights and bands.
const (
	ensembleWeight = 0.35

	propagandaHighFactor = 0.6
	propagandaMidFactor  = 0.4
)

// Aggregate folds the document-level signals into the primary verdict.
// The result is a clamped sum of the returned contributions; rebuilding
// the sum from the breakdown always reproduces the score.
func Aggregate(signals model.DocumentSignals) model.DocumentVerdict {
	var contribs []model.Contribution
	add := func(cat model.SignalCategory, points float64, reason string) {
		contribs = append(contribs, model.Contribution{Category: cat, Points: points, Reason: reason})
	}

	if pts := signals.EnsembleScore * ensembleWeight; pts != 0 {
		add(model.SignalEnsemble, pts,
			fmt.Sprintf("Ensemble fake news score %.1f/100 at 35%% weight", signals.EnsembleScore))
	}

	fakeProb := signals.Pretrained.FakeProbability
	if fakeProb > 0.7 {
		add(model.SignalPretrained, 10, fmt.Sprintf("Pretrained model fake probability %d%%", int(fakeProb*100)))
	} else if fakeProb > 0.5 {
		add(model.SignalPretrained, 6, fmt.Sprintf("Pretrained model fake probability %d%%", int(fakeProb*100)))
	}

	custom := signals.Pretrained.CustomModelMisinformation
	if custom > 0.6 {
		add(model.SignalCustomModel, 8, fmt.Sprintf("Custom model misinformation %d%%", int(custom*100)))
	} else if custom > 0.4 {
		add(model.SignalCustomModel, 4, fmt.Sprintf("Custom model misinformation %d%%", int(custom*100)))
	}

	if signals.Fingerprint.FingerprintScore > 60 {
		add(model.SignalFingerprint, 10,
			fmt.Sprintf("Linguistic fingerprint %.0f/100 (%s)", signals.Fingerprint.FingerprintScore, signals.Fingerprint.Verdict))
	}

	if signals.Claims.FalsePercentage > 50 {
		add(model.SignalClaims, 15,
			fmt.Sprintf("%.0f%% of extracted claims are known false", signals.Claims.FalsePercentage))
	} else if signals.Claims.FalseClaims > 0 {
		add(model.SignalClaims, 8,
			fmt.Sprintf("%d known false claim(s) found", signals.Claims.FalseClaims))
	}

	prop := signals.Propaganda.PropagandaScore
	if prop >= 70 {
		add(model.SignalPropaganda, prop*propagandaHighFactor,
			fmt.Sprintf("Heavy propaganda (%.0f/100): %s", prop, strings.Join(headStrings(signals.Propaganda.Techniques, 3), ", ")))
	} else if prop >= 40 {
		add(model.SignalPropaganda, prop*propagandaMidFactor,
			fmt.Sprintf("Moderate propaganda (%.0f/100)", prop))
	}

	// Credibility adjustment goes last so the breakdown reads the way the
	// score was built: evidence first, then the source discount or penalty.
	cred := signals.Credibility.AverageCredibility
	if cred >= 70 {
		add(model.SignalCredibility, -30, fmt.Sprintf("Highly credible sources (%.0f/100)", cred))
	} else if cred >= 50 {
		add(model.SignalCredibility, -15, fmt.Sprintf("Moderately credible sources (%.0f/100)", cred))
	} else if cred < 30 {
		add(model.SignalCredibility, 20, fmt.Sprintf("Low credibility sources (%.0f/100)", cred))
	}

	total := sumContributions(contribs)
	return model.DocumentVerdict{
		SuspiciousScore: total,
		Verdict:         MapVerdict(total),
		Contributions:   contribs,
	}
}

// Combined weight vector. The combined score blends every document signal
// on a fixed scale independent of the primary verdict.
const (
	combinedFingerprintWeight   = 0.15
	combinedClaimsWeight        = 0.20
	combinedCredibilityWeight   = 0.15
	combinedPropagandaWeight    = 0.25
	combinedContradictionWeight = 0.10
	combinedNetworkWeight       = 0.15
)

// Combined computes the secondary weighted credibility blend with its own
// five-tier verdict. It shares inputs with Aggregate but is never
// reconciled with it.
func Combined(signals model.DocumentSignals) model.CombinedVerdict {
	contribs := []model.Contribution{
		{Category: model.SignalFingerprint, Points: signals.Fingerprint.FingerprintScore * combinedFingerprintWeight,
			Reason: "linguistic fingerprint at 15% weight"},
		{Category: model.SignalClaims, Points: signals.Claims.FalsePercentage * combinedClaimsWeight,
			Reason: "false claim percentage at 20% weight"},
		{Category: model.SignalCredibility, Points: (100 - signals.Credibility.AverageCredibility) * combinedCredibilityWeight,
			Reason: "inverse source credibility at 15% weight"},
		{Category: model.SignalPropaganda, Points: signals.Propaganda.PropagandaScore * combinedPropagandaWeight,
			Reason: "propaganda score at 25% weight"},
		{Category: model.SignalContradiction, Points: signals.Contradictions.ContradictionScore * combinedContradictionWeight,
			Reason: "contradiction score at 10% weight"},
		{Category: model.SignalNetwork, Points: signals.Network.BotScore * combinedNetworkWeight,
			Reason: "bot score at 15% weight"},
	}

	total := sumContributions(contribs)
	return model.CombinedVerdict{
		OverallScore:  total,
		Verdict:       MapCombinedVerdict(total),
		Contributions: contribs,
	}
}

// sumContributions adds up a breakdown and clamps into [0,100].
func sumContributions(contribs []model.Contribution) float64 {
	var total float64
	for _, c := range contribs {
		total += c.Points
	}
	if total < 0 {
		return 0
	}
	if total > 100 {
		return 100
	}
	return total
}

func headStrings(s []string, n int) []string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
