package lexical

import (
	"reflect"
	"testing"
)

func TestParseStopListIgnoresCommentsAndBlankLines(t *testing.T) {
	set := ParseStopList("# comment\n\nthe a AN\n")
	want := StopSet{"the": {}, "a": {}, "an": {}}
	if !reflect.DeepEqual(set, want) {
		t.Errorf("got %v, want %v", set, want)
	}
}

func TestStopFilterDropsCaseInsensitively(t *testing.T) {
	set := ParseStopList("the a")
	filter := NewStopFilter(set)
	got := filter([]string{"The", "quick", "a", "fox"})
	want := []string{"quick", "fox"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestStopFilterKeepsEverythingWhenSetEmpty(t *testing.T) {
	filter := NewStopFilter(ParseStopList(""))
	in := []string{"hello", "world"}
	got := filter(in)
	if !reflect.DeepEqual(got, in) {
		t.Errorf("got %v, want %v", got, in)
	}
}
