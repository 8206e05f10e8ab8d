package keys

import "testing"

func TestDocumentKeyRoundTrip(t *testing.T) {
	for _, id := range []uint64{1, 2, 42, 1000000} {
		key := DocumentKey(id)
		got, ok := ParseDocumentID(key)
		if !ok {
			t.Fatalf("ParseDocumentID(%q) returned ok=false", key)
		}
		if got != id {
			t.Errorf("ParseDocumentID(%q) = %d, want %d", key, got, id)
		}
	}
}

func TestParseDocumentIDRejectsGlobalKey(t *testing.T) {
	if _, ok := ParseDocumentID(GlobalKey); ok {
		t.Error("GlobalKey must not parse as a document key")
	}
}

func TestParseDocumentIDRejectsReverseLookupKey(t *testing.T) {
	if _, ok := ParseDocumentID(ReverseLookupKey("caller-1")); ok {
		t.Error("reverse-lookup key must not parse as a document key")
	}
}

func TestParseDocumentIDRejectsTermKey(t *testing.T) {
	if _, ok := ParseDocumentID("world"); ok {
		t.Error("an ordinary term key must not parse as a document key")
	}
}

func TestReverseLookupKeyDistinctFromGlobalKey(t *testing.T) {
	if ReverseLookupKey("") == GlobalKey {
		t.Error("reverse-lookup key space must not collide with the global key")
	}
}
