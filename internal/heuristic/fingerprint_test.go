package heuristic

import (
	"strings"
	"testing"
)

func TestFingerprinter_NeutralText(t *testing.T) {
	f := NewFingerprinter()

	result := f.Analyze("The city council met on Tuesday to discuss the annual budget. " +
		"Members reviewed the proposal and scheduled a vote for next month.")

	if result.FingerprintScore > 20 {
		t.Errorf("expected low score for neutral text, got %.2f", result.FingerprintScore)
	}
	if result.Verdict != FingerprintNormal {
		t.Errorf("expected NORMAL verdict, got %s", result.Verdict)
	}
}

func TestFingerprinter_LoadedText(t *testing.T) {
	f := NewFingerprinter()

	text := "SHOCKING!!! WAKE UP NOW!!! They don't want you to know the hidden truth! " +
		"Studies show this is absolutely, definitely, 100% proven and undeniable! " +
		"Big pharma and the elite are behind this deadly, toxic cover-up! " +
		"Experts say it's a catastrophe! Sources say it's urgent! Act now!!!"

	result := f.Analyze(text)

	if result.FingerprintScore < 50 {
		t.Errorf("expected high score for loaded text, got %.2f", result.FingerprintScore)
	}
	if result.Verdict == FingerprintNormal {
		t.Error("expected a suspicious verdict")
	}
	if result.EmotionalManipulation == 0 {
		t.Error("expected emotional manipulation to register")
	}
	if result.CertaintyAbuse == 0 {
		t.Error("expected certainty abuse to register")
	}
	if result.ConspiracyMarkers == 0 {
		t.Error("expected conspiracy markers to register")
	}
	if result.SourceEvasion == 0 {
		t.Error("expected source evasion to register")
	}
}

func TestFingerprinter_ScoreIsWeightedBlend(t *testing.T) {
	f := NewFingerprinter()

	result := f.Analyze("Absolutely definitely certainly 100% proven guaranteed undeniable.")

	want := round2(result.EmotionalManipulation*0.25 +
		result.CertaintyAbuse*0.20 +
		result.SourceEvasion*0.20 +
		result.ConspiracyMarkers*0.25 +
		result.StatisticalManipulation*0.10)
	if result.FingerprintScore != want {
		t.Errorf("score %.2f does not match weighted blend %.2f", result.FingerprintScore, want)
	}
}

func TestFingerprinter_ExamplesCapped(t *testing.T) {
	f := NewFingerprinter()

	// Every certainty marker present, so examples must be capped at 5.
	result := f.Analyze(strings.Join(certaintyMarkers, " "))

	if len(result.Examples["certainty"]) > 5 {
		t.Errorf("expected at most 5 certainty examples, got %d", len(result.Examples["certainty"]))
	}
	if result.CertaintyAbuse != minf(100, float64(len(certaintyMarkers))*8) {
		t.Errorf("unexpected certainty score %.2f", result.CertaintyAbuse)
	}
}

func TestFingerprinter_StatisticsThreshold(t *testing.T) {
	f := NewFingerprinter()

	few := f.Analyze("Sales rose 5% last year and 3% the year before.")
	if few.StatisticalManipulation != 0 {
		t.Errorf("expected no statistical score for few numbers, got %.2f", few.StatisticalManipulation)
	}

	many := f.Analyze("It rose 10%, then 20%, then 30%, then 40%, then 50%, then 60% with no citation.")
	if many.StatisticalManipulation == 0 {
		t.Error("expected statistical manipulation score for many unsourced figures")
	}
}

func TestFingerprinter_ScoreBounded(t *testing.T) {
	f := NewFingerprinter()

	var b strings.Builder
	for i := 0; i < 50; i++ {
		b.WriteString("SHOCKING DEADLY URGENT!!! Wake up, they don't want you to know! ")
		b.WriteString("Studies show 100% proven undeniable truth! Big pharma cover-up! ")
	}

	result := f.Analyze(b.String())
	if result.FingerprintScore > 100 {
		t.Errorf("score exceeded 100: %.2f", result.FingerprintScore)
	}
	if result.Verdict != FingerprintHighlySuspicious {
		t.Errorf("expected HIGHLY_SUSPICIOUS, got %s", result.Verdict)
	}
}
