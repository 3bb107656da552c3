package heuristic

import "testing"

func TestContradictionDetector_ConsistentText(t *testing.T) {
	d := NewContradictionDetector()

	result := d.Detect("The bridge opened in June after two years of construction. " +
		"Traffic volumes have been steady since the opening ceremony.")

	if result.TotalContradictions != 0 {
		t.Errorf("expected no contradictions, got %d", result.TotalContradictions)
	}
	if result.Verdict != ContradictionNone {
		t.Errorf("expected CONSISTENT, got %s", result.Verdict)
	}
}

func TestContradictionDetector_DirectNegation(t *testing.T) {
	d := NewContradictionDetector()

	result := d.Detect("The vaccine program reached every district in the region. " +
		"The vaccine program did not reach every district in the region.")

	if result.TotalContradictions == 0 {
		t.Fatal("expected a direct negation contradiction")
	}
	if result.Contradictions[0].Kind != "direct_negation" {
		t.Errorf("expected direct_negation, got %s", result.Contradictions[0].Kind)
	}
	if result.Contradictions[0].Severity != "high" {
		t.Errorf("expected high severity, got %s", result.Contradictions[0].Severity)
	}
	if result.ContradictionScore < 25 {
		t.Errorf("expected score of at least 25, got %.2f", result.ContradictionScore)
	}
}

func TestContradictionDetector_FalseDichotomy(t *testing.T) {
	d := NewContradictionDetector()

	result := d.Detect("There is no other choice for the voters in this election cycle.")

	found := false
	for _, c := range result.Contradictions {
		if c.Kind == "false_dichotomy" {
			found = true
			if c.Severity != "low" {
				t.Errorf("expected low severity, got %s", c.Severity)
			}
		}
	}
	if !found {
		t.Error("expected a false dichotomy")
	}
}

func TestContradictionDetector_InconsistentNumbers(t *testing.T) {
	d := NewContradictionDetector()

	result := d.Detect("The protest drew 5000 people to the square downtown yesterday. " +
		"The protest drew 500 people to the square downtown yesterday.")

	found := false
	for _, c := range result.Contradictions {
		if c.Kind == "inconsistent_numbers" {
			found = true
			if c.Severity != "medium" {
				t.Errorf("expected medium severity, got %s", c.Severity)
			}
		}
	}
	if !found {
		t.Errorf("expected inconsistent numbers, got %+v", result.Contradictions)
	}
}

func TestWordOverlap(t *testing.T) {
	a := significantWords("the vaccine program reached every district")
	b := significantWords("the vaccine program reached every district")
	if got := wordOverlap(a, b); got != 1.0 {
		t.Errorf("expected full overlap, got %.2f", got)
	}

	c := significantWords("completely unrelated sentence about gardening tips")
	if got := wordOverlap(a, c); got != 0 {
		t.Errorf("expected zero overlap, got %.2f", got)
	}

	if got := wordOverlap(nil, a); got != 0 {
		t.Errorf("expected zero overlap for empty set, got %.2f", got)
	}
}
