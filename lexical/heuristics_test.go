package lexical

import "testing"

func TestHeuristicsDehyphenatesSensePrefixes(t *testing.T) {
	cases := map[string]string{
		"re-cycled":    "recycled",
		"Non-linear":   "Nonlinear",
		"pre-existing": "preexisting",
		"de-hyphenate": "dehyphenate",
	}
	for in, want := range cases {
		got := Heuristics([]string{in})
		if len(got) != 1 || got[0] != want {
			t.Errorf("Heuristics(%q) = %v, want [%q]", in, got, want)
		}
	}
}

func TestHeuristicsLeavesOtherHyphensAlone(t *testing.T) {
	got := Heuristics([]string{"case-based reasoning"})
	want := "case-based reasoning"
	if len(got) != 1 || got[0] != want {
		t.Errorf("Heuristics = %v, want [%q]", got, want)
	}
}

func TestHeuristicsJoinsMultipleInputs(t *testing.T) {
	got := Heuristics([]string{"hello", "world"})
	if len(got) != 1 {
		t.Fatalf("Heuristics must collapse to one string, got %v", got)
	}
}
