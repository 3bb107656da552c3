package score

import (
	"math"
	"testing"

	"github.com/zainab-06-p/linkscout/internal/model"
)

func contributionPoints(contribs []model.Contribution, cat model.SignalCategory) (float64, bool) {
	for _, c := range contribs {
		if c.Category == cat {
			return c.Points, true
		}
	}
	return 0, false
}

func TestAggregate_NeutralSignals(t *testing.T) {
	verdict := Aggregate(model.NeutralSignals())

	if verdict.SuspiciousScore != 0 {
		t.Errorf("expected score 0, got %.1f", verdict.SuspiciousScore)
	}
	if verdict.Verdict != VerdictCredible {
		t.Errorf("expected APPEARS CREDIBLE, got %s", verdict.Verdict)
	}
	if len(verdict.Contributions) != 0 {
		t.Errorf("expected empty breakdown, got %v", verdict.Contributions)
	}
}

func TestAggregate_HighRiskClamped(t *testing.T) {
	signals := model.DocumentSignals{
		EnsembleScore: 90,
		Pretrained: model.PretrainedResult{
			FakeProbability:           0.8,
			CustomModelMisinformation: 0.65,
		},
		Fingerprint: model.FingerprintResult{FingerprintScore: 75, Verdict: "HIGHLY_SUSPICIOUS"},
		Claims:      model.ClaimResult{FalseClaims: 3, FalsePercentage: 60},
		Propaganda:  model.PropagandaResult{PropagandaScore: 80, Techniques: []string{"loaded_language"}},
		Credibility: model.SourceResult{AverageCredibility: 20},
	}

	verdict := Aggregate(signals)

	// 31.5 + 10 + 8 + 10 + 15 + 48 + 20 overflows the scale.
	if verdict.SuspiciousScore != 100 {
		t.Errorf("expected clamped 100, got %.1f", verdict.SuspiciousScore)
	}
	if verdict.Verdict != VerdictFakeNews {
		t.Errorf("expected FAKE NEWS, got %s", verdict.Verdict)
	}
	if pts, ok := contributionPoints(verdict.Contributions, model.SignalPropaganda); !ok || pts != 48 {
		t.Errorf("expected propaganda contribution 48, got %.1f (found=%v)", pts, ok)
	}
	if pts, ok := contributionPoints(verdict.Contributions, model.SignalCredibility); !ok || pts != 20 {
		t.Errorf("expected low-credibility penalty 20, got %.1f (found=%v)", pts, ok)
	}
}

func TestAggregate_MidBands(t *testing.T) {
	signals := model.DocumentSignals{
		Pretrained: model.PretrainedResult{
			FakeProbability:           0.6,
			CustomModelMisinformation: 0.5,
		},
		Claims:      model.ClaimResult{FalseClaims: 1, FalsePercentage: 25},
		Propaganda:  model.PropagandaResult{PropagandaScore: 50},
		Credibility: model.SourceResult{AverageCredibility: 55},
	}

	verdict := Aggregate(signals)

	wantBands := []struct {
		cat    model.SignalCategory
		points float64
	}{
		{model.SignalPretrained, 6},
		{model.SignalCustomModel, 4},
		{model.SignalClaims, 8},
		{model.SignalPropaganda, 20},
		{model.SignalCredibility, -15},
	}
	for _, w := range wantBands {
		pts, ok := contributionPoints(verdict.Contributions, w.cat)
		if !ok {
			t.Errorf("missing %s contribution", w.cat)
			continue
		}
		if pts != w.points {
			t.Errorf("%s: expected %.1f points, got %.1f", w.cat, w.points, pts)
		}
	}
	if verdict.SuspiciousScore != 23 {
		t.Errorf("expected total 23, got %.1f", verdict.SuspiciousScore)
	}
}

func TestAggregate_CredibilityDiscountLast(t *testing.T) {
	signals := model.DocumentSignals{
		EnsembleScore: 50,
		Propaganda:    model.PropagandaResult{PropagandaScore: 50},
		Credibility:   model.SourceResult{AverageCredibility: 80},
	}

	verdict := Aggregate(signals)

	last := verdict.Contributions[len(verdict.Contributions)-1]
	if last.Category != model.SignalCredibility || last.Points != -30 {
		t.Errorf("expected trailing -30 credibility discount, got %+v", last)
	}
	if verdict.SuspiciousScore != 7.5 {
		t.Errorf("expected 17.5+20-30 = 7.5, got %.1f", verdict.SuspiciousScore)
	}
	if verdict.Verdict != VerdictCredible {
		t.Errorf("expected APPEARS CREDIBLE, got %s", verdict.Verdict)
	}
}

func TestAggregate_BreakdownReproducesScore(t *testing.T) {
	signals := model.DocumentSignals{
		EnsembleScore: 60,
		Fingerprint:   model.FingerprintResult{FingerprintScore: 65},
		Credibility:   model.SourceResult{AverageCredibility: 40},
	}

	verdict := Aggregate(signals)

	var sum float64
	for _, c := range verdict.Contributions {
		sum += c.Points
	}
	if math.Abs(sum-verdict.SuspiciousScore) > 1e-9 {
		t.Errorf("breakdown sums to %.4f but score is %.4f", sum, verdict.SuspiciousScore)
	}
}

func TestCombined_WeightedBlend(t *testing.T) {
	signals := model.DocumentSignals{
		Fingerprint:    model.FingerprintResult{FingerprintScore: 80},
		Claims:         model.ClaimResult{FalsePercentage: 50},
		Credibility:    model.SourceResult{AverageCredibility: 30},
		Propaganda:     model.PropagandaResult{PropagandaScore: 60},
		Contradictions: model.ContradictionResult{ContradictionScore: 40},
		Network:        model.NetworkResult{BotScore: 50},
	}

	verdict := Combined(signals)

	want := 80*0.15 + 50*0.20 + 70*0.15 + 60*0.25 + 40*0.10 + 50*0.15
	if math.Abs(verdict.OverallScore-want) > 1e-9 {
		t.Errorf("expected %.2f, got %.2f", want, verdict.OverallScore)
	}
	if verdict.Verdict != CombinedLowCredibility {
		t.Errorf("expected LOW CREDIBILITY, got %s", verdict.Verdict)
	}
	if len(verdict.Contributions) != 6 {
		t.Errorf("expected all six signals in breakdown, got %d", len(verdict.Contributions))
	}
}

func TestCombined_NeutralSignals(t *testing.T) {
	verdict := Combined(model.NeutralSignals())

	// Only the inverse-credibility term contributes: (100-40)*0.15 = 9.
	if math.Abs(verdict.OverallScore-9) > 1e-9 {
		t.Errorf("expected 9, got %.2f", verdict.OverallScore)
	}
	if verdict.Verdict != CombinedHighlyCredible {
		t.Errorf("expected HIGHLY CREDIBLE, got %s", verdict.Verdict)
	}
}

func TestMapVerdict(t *testing.T) {
	cases := []struct {
		score float64
		want  string
	}{
		{0, VerdictCredible},
		{39.9, VerdictCredible},
		{40, VerdictSuspicious},
		{69.9, VerdictSuspicious},
		{70, VerdictFakeNews},
		{100, VerdictFakeNews},
	}
	for _, c := range cases {
		if got := MapVerdict(c.score); got != c.want {
			t.Errorf("MapVerdict(%.1f) = %s, want %s", c.score, got, c.want)
		}
	}
}

func TestMapCombinedVerdict(t *testing.T) {
	cases := []struct {
		score float64
		want  string
	}{
		{0, CombinedHighlyCredible},
		{19.9, CombinedHighlyCredible},
		{20, CombinedMostlyCredible},
		{34.9, CombinedMostlyCredible},
		{35, CombinedQuestionable},
		{49.9, CombinedQuestionable},
		{50, CombinedLowCredibility},
		{69.9, CombinedLowCredibility},
		{70, CombinedNotCredible},
		{100, CombinedNotCredible},
	}
	for _, c := range cases {
		if got := MapCombinedVerdict(c.score); got != c.want {
			t.Errorf("MapCombinedVerdict(%.1f) = %s, want %s", c.score, got, c.want)
		}
	}
}
