package errs

import (
	"errors"
	"io"
	"strings"
	"testing"
)

func TestStoreUnwrap(t *testing.T) {
	inner := io.ErrUnexpectedEOF
	wrapped := &Store{Op: "get", Key: "k", Err: inner}
	if !errors.Is(wrapped, io.ErrUnexpectedEOF) {
		t.Error("errors.Is must see through Store.Unwrap to the inner error")
	}
	var asStore *Store
	if !errors.As(wrapped, &asStore) {
		t.Error("errors.As must recover the *Store")
	}
}

func TestErrorMessagesNamePayload(t *testing.T) {
	cases := []struct {
		err     error
		payload string
	}{
		{&AlreadyIndexed{CallerKey: "doc-1"}, "doc-1"},
		{&EmptyIndex{}, "empty"},
		{&BadQuery{Got: 42}, "int"},
		{&Corruption{Key: "k", Reason: "bad"}, "bad"},
		{&PreconditionFailure{Reason: "K1 must be >= 0"}, "K1 must be >= 0"},
		{&Store{Op: "put", Key: "k", Err: io.EOF}, "EOF"},
	}
	for _, c := range cases {
		if !strings.Contains(c.err.Error(), c.payload) {
			t.Errorf("%T.Error() = %q, want it to contain %q", c.err, c.err.Error(), c.payload)
		}
	}
}

func TestStoreErrorOmitsKeyWhenEmpty(t *testing.T) {
	err := &Store{Op: "open", Err: io.EOF}
	if got, want := err.Error(), "search: store open: EOF"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
