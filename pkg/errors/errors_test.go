package errors

import (
	stderrors "errors"
	"fmt"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeNoCandidate, "no root candidates within margin %d", 50)

	if err.Code != ErrCodeNoCandidate {
		t.Errorf("Code = %q, want %q", err.Code, ErrCodeNoCandidate)
	}
	want := "NO_CANDIDATE: no root candidates within margin 50"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestWrap(t *testing.T) {
	cause := fmt.Errorf("open words.txt: no such file")
	err := Wrap(ErrCodeInvalidInput, cause, "load taxonomy")

	if !stderrors.Is(err, cause) {
		t.Error("wrapped error should match cause via errors.Is")
	}
	if err.Unwrap() != cause {
		t.Error("Unwrap() should return the cause")
	}
}

func TestIs(t *testing.T) {
	err := New(ErrCodeInvalidMode, "invalid path mode %q", "shortest")

	if !Is(err, ErrCodeInvalidMode) {
		t.Error("Is() should match the error's own code")
	}
	if Is(err, ErrCodeNoCandidate) {
		t.Error("Is() should not match a different code")
	}
	if Is(fmt.Errorf("plain"), ErrCodeInvalidMode) {
		t.Error("Is() should not match a non-structured error")
	}
}

func TestIsThroughWrapping(t *testing.T) {
	inner := New(ErrCodeMissingIDs, "did not find synsets for ids: n01, n02")
	outer := fmt.Errorf("build splits: %w", inner)

	if !Is(outer, ErrCodeMissingIDs) {
		t.Error("Is() should unwrap fmt-wrapped errors")
	}
	if GetCode(outer) != ErrCodeMissingIDs {
		t.Errorf("GetCode() = %q, want %q", GetCode(outer), ErrCodeMissingIDs)
	}
}

func TestUserMessage(t *testing.T) {
	err := New(ErrCodeNoDistinctTestRoot, "every test candidate equals the valid root")
	if got := UserMessage(err); got != "every test candidate equals the valid root" {
		t.Errorf("UserMessage() = %q", got)
	}

	plain := fmt.Errorf("boom")
	if got := UserMessage(plain); got != "boom" {
		t.Errorf("UserMessage(plain) = %q", got)
	}
}
