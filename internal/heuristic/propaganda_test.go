package heuristic

import (
	"strings"
	"testing"
)

func TestPropagandaDetector_CleanText(t *testing.T) {
	d := NewPropagandaDetector()

	result := d.Detect("The committee reviewed the quarterly report and agreed to meet again in March.")

	if result.PropagandaScore != 0 {
		t.Errorf("expected zero score, got %.2f", result.PropagandaScore)
	}
	if len(result.Techniques) != 0 {
		t.Errorf("expected no techniques, got %v", result.Techniques)
	}
	if result.Verdict != PropagandaMinimal {
		t.Errorf("expected MINIMAL_PROPAGANDA, got %s", result.Verdict)
	}
}

func TestPropagandaDetector_LoadedText(t *testing.T) {
	d := NewPropagandaDetector()

	text := "This shocking disaster is a deadly threat to our great nation. " +
		"Everyone knows the corrupt, radical traitors are to blame. " +
		"Experts say the only solution is to wake up and question everything. " +
		"Join the movement before it's too late. Real patriots see the truth."

	result := d.Detect(text)

	if result.PropagandaScore < 35 {
		t.Errorf("expected at least moderate score, got %.2f", result.PropagandaScore)
	}
	if len(result.Techniques) < 4 {
		t.Errorf("expected several techniques, got %v", result.Techniques)
	}
	if result.TotalInstances < len(result.Techniques) {
		t.Error("total instances below technique count")
	}
}

func TestPropagandaDetector_TechniquesSorted(t *testing.T) {
	d := NewPropagandaDetector()

	result := d.Detect("The shocking crisis proves the corrupt liar wrong. Everyone knows it. What about the cover story?")

	for i := 1; i < len(result.Techniques); i++ {
		if result.Techniques[i-1] > result.Techniques[i] {
			t.Errorf("techniques not sorted: %v", result.Techniques)
			break
		}
	}
}

func TestPropagandaDetector_Repetition(t *testing.T) {
	d := NewPropagandaDetector()

	text := strings.Repeat("The election was stolen from us. ", 3) +
		"Officials deny any irregularities."

	result := d.Detect(text)

	found := false
	for _, technique := range result.Techniques {
		if technique == "repetition" {
			found = true
		}
	}
	if !found {
		t.Errorf("expected repetition technique, got %v", result.Techniques)
	}
}

func TestPropagandaScore_Bands(t *testing.T) {
	tests := []struct {
		techniques int
		instances  int
		max        float64
	}{
		{0, 0, 0},
		{1, 3, 35},
		{2, 40, 35},
		{3, 10, 55},
		{4, 100, 55},
		{6, 30, 100},
	}

	for _, tt := range tests {
		got := propagandaScore(tt.techniques, tt.instances)
		if got > tt.max {
			t.Errorf("propagandaScore(%d, %d) = %.2f, exceeds cap %.2f",
				tt.techniques, tt.instances, got, tt.max)
		}
		if tt.techniques > 0 && got == 0 {
			t.Errorf("propagandaScore(%d, %d) = 0, expected positive", tt.techniques, tt.instances)
		}
	}
}

func TestRepeatedSentenceCount(t *testing.T) {
	if n := repeatedSentenceCount("One sentence here. Another sentence there."); n != 0 {
		t.Errorf("expected 0 repeated sentences, got %d", n)
	}

	text := "The claim is completely true. The claim is completely true. Something else entirely here."
	if n := repeatedSentenceCount(text); n != 1 {
		t.Errorf("expected 1 repeated sentence, got %d", n)
	}
}
