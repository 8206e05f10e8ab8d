package store

import "testing"

func TestMurmur3Deterministic(t *testing.T) {
	a := Murmur3([]byte("hello"))
	b := Murmur3([]byte("hello"))
	if a != b {
		t.Errorf("Murmur3 not deterministic: %d != %d", a, b)
	}
}

func TestMurmur3DistinguishesInputs(t *testing.T) {
	if Murmur3([]byte("hello")) == Murmur3([]byte("world")) {
		t.Error("Murmur3 produced the same hash for two distinct keys")
	}
}

func TestMurmur3HandlesAllTailLengths(t *testing.T) {
	// Exercise the 0/1/2/3-remaining-byte tail paths.
	for _, s := range []string{"", "a", "ab", "abc", "abcd", "abcde"} {
		_ = Murmur3([]byte(s))
	}
}
