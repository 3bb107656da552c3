package score

import (
	"context"
	"testing"

	"github.com/zainab-06-p/linkscout/internal/signal"
)

func TestQuickScorer_NoRegistry(t *testing.T) {
	q := NewQuickScorer(nil, nil, nil)

	result := q.Score(context.Background(), "The library opens at nine on weekdays.")

	if result.RiskScore != 0 {
		t.Errorf("expected 0, got %.1f", result.RiskScore)
	}
	if result.Verdict != VerdictCredible {
		t.Errorf("expected APPEARS CREDIBLE, got %s", result.Verdict)
	}
}

func TestQuickScorer_ModelContribution(t *testing.T) {
	reg := stubRegistry(map[string]signal.Result{
		signal.NamePretrained: {Score: 0.9},
	})
	q := NewQuickScorer(reg, nil, nil)

	result := q.Score(context.Background(), "The council met on Monday to discuss zoning.")

	if result.RiskScore != 36 {
		t.Errorf("expected 0.9*40 = 36, got %.1f", result.RiskScore)
	}
	if result.Verdict != VerdictCredible {
		t.Errorf("expected APPEARS CREDIBLE at 36, got %s", result.Verdict)
	}
}

func TestQuickScorer_ModelBonus(t *testing.T) {
	reg := stubRegistry(map[string]signal.Result{
		signal.NamePretrained: {Score: 0.98},
	})
	q := NewQuickScorer(reg, nil, nil)

	result := q.Score(context.Background(), "The council met on Monday to discuss zoning.")

	// 0.98*40 plus the high-confidence bonus.
	if result.RiskScore != 49.2 {
		t.Errorf("expected 49.2, got %.1f", result.RiskScore)
	}
	if result.Verdict != VerdictSuspicious {
		t.Errorf("expected SUSPICIOUS - VERIFY, got %s", result.Verdict)
	}
}

func TestQuickScorer_ClaimsAndKeywords(t *testing.T) {
	q := NewQuickScorer(nil, nil, nil)

	// Two database phrases (capped at 20) and two topic keywords.
	content := "They say the earth flat crowd is right, the climate change hoax is over, " +
		"and the dominion voting machine record was altered."

	result := q.Score(context.Background(), content)

	if result.RiskScore != 30 {
		t.Errorf("expected 20+10 = 30, got %.1f", result.RiskScore)
	}
}

func TestQuickScorer_LinguisticBands(t *testing.T) {
	q := NewQuickScorer(nil, nil, nil)

	cases := []struct {
		content string
		want    float64
	}{
		{"A routine municipal update on road work.", 0},
		{"This exposed memo changes nothing else here.", 3},
		{"This exposed cover up changes things.", 6},
		{"Wake up sheeple, this exposed cover up was silenced and censored.", 15},
	}
	for _, c := range cases {
		result := q.Score(context.Background(), c.content)
		if result.RiskScore != c.want {
			t.Errorf("content %q: expected %.0f, got %.1f", c.content, c.want, result.RiskScore)
		}
	}
}

func TestQuickScorer_Capped(t *testing.T) {
	reg := stubRegistry(map[string]signal.Result{
		signal.NamePretrained: {Score: 0.99},
	})
	q := NewQuickScorer(reg, nil, nil)

	content := "Wake up sheeple: the earth flat truth and the climate change hoax were exposed, " +
		"a cover up censored and silenced by the dominion voting machine microchip crowd, " +
		"with voter fraud, chemtrail spraying and 5g cause panic on top."

	result := q.Score(context.Background(), content)

	if result.RiskScore != 100 {
		t.Errorf("expected cap at 100, got %.1f", result.RiskScore)
	}
	if result.Verdict != VerdictFakeNews {
		t.Errorf("expected FAKE NEWS, got %s", result.Verdict)
	}
}

func TestRound1(t *testing.T) {
	cases := []struct {
		in   float64
		want float64
	}{
		{0, 0},
		{36.25, 36.3},
		{49.16, 49.2},
		{99.99, 100},
	}
	for _, c := range cases {
		if got := round1(c.in); got != c.want {
			t.Errorf("round1(%v) = %v, want %v", c.in, got, c.want)
		}
	}
}
