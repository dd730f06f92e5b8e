package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeMalformedInput, "line %d: unknown type %q", 3, "X")

	if err.Code != ErrCodeMalformedInput {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeMalformedInput)
	}

	if err.Message != `line 3: unknown type "X"` {
		t.Errorf("Message = %v, want %v", err.Message, `line 3: unknown type "X"`)
	}

	expected := `MALFORMED_INPUT: line 3: unknown type "X"`
	if err.Error() != expected {
		t.Errorf("Error() = %v, want %v", err.Error(), expected)
	}
}

func TestWrap(t *testing.T) {
	cause := errors.New("worker exploded")
	err := Wrap(ErrCodeWorkerFailed, cause, "chunk 2")

	if err.Code != ErrCodeWorkerFailed {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeWorkerFailed)
	}

	if err.Cause != cause {
		t.Errorf("Cause = %v, want %v", err.Cause, cause)
	}

	unwrapped := errors.Unwrap(err)
	if unwrapped != cause {
		t.Errorf("Unwrap() = %v, want %v", unwrapped, cause)
	}

	if !errors.Is(err, cause) {
		t.Error("errors.Is(err, cause) = false, want true")
	}
}

func TestIs(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		code     Code
		expected bool
	}{
		{
			name:     "matching code",
			err:      New(ErrCodeInvalidOption, "test"),
			code:     ErrCodeInvalidOption,
			expected: true,
		},
		{
			name:     "non-matching code",
			err:      New(ErrCodeInvalidOption, "test"),
			code:     ErrCodeWorkerFailed,
			expected: false,
		},
		{
			name:     "wrapped error",
			err:      Wrap(ErrCodeWorkerFailed, New(ErrCodeInternal, "inner"), "outer"),
			code:     ErrCodeWorkerFailed,
			expected: true,
		},
		{
			name:     "fmt wrapped",
			err:      fmtWrap(New(ErrCodeMalformedInput, "bad")),
			code:     ErrCodeMalformedInput,
			expected: true,
		},
		{
			name:     "non-Error type",
			err:      errors.New("plain error"),
			code:     ErrCodeInvalidInput,
			expected: false,
		},
		{
			name:     "nil error",
			err:      nil,
			code:     ErrCodeInvalidInput,
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Is(tt.err, tt.code); got != tt.expected {
				t.Errorf("Is() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestGetCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected Code
	}{
		{
			name:     "Error type",
			err:      New(ErrCodeInvalidSolution, "test"),
			expected: ErrCodeInvalidSolution,
		},
		{
			name:     "plain error",
			err:      errors.New("plain"),
			expected: "",
		},
		{
			name:     "nil",
			err:      nil,
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GetCode(tt.err); got != tt.expected {
				t.Errorf("GetCode() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestUserMessage(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{
			name:     "Error type",
			err:      New(ErrCodeInvalidInput, "friendly message"),
			expected: "friendly message",
		},
		{
			name:     "Error with cause",
			err:      Wrap(ErrCodeFileNotFound, errors.New("no such file"), "open in.txt"),
			expected: "open in.txt: no such file",
		},
		{
			name:     "plain error",
			err:      errors.New("plain error"),
			expected: "plain error",
		},
		{
			name: "nested coded cause",
			err: Wrap(ErrCodeInvalidConfig,
				Wrap(ErrCodeInvalidConfig, New(ErrCodeInvalidOption, "window must not be negative (got -3)"), "[solve]"),
				"config c.toml"),
			expected: "config c.toml: [solve]: window must not be negative (got -3)",
		},
		{
			name:     "fmt wrapper keeps context",
			err:      fmt.Errorf("parse: %w", New(ErrCodeMalformedInput, "line 3: unknown type %q", "X")),
			expected: `parse: line 3: unknown type "X"`,
		},
		{
			name:     "coded error behind custom wrapper",
			err:      Wrap(ErrCodeWorkerFailed, fmtWrap(New(ErrCodeInternal, "boom")), "chunk 2"),
			expected: "chunk 2: context: boom",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := UserMessage(tt.err); got != tt.expected {
				t.Errorf("UserMessage() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func fmtWrap(err error) error {
	return &wrapped{err}
}

type wrapped struct{ err error }

func (w *wrapped) Error() string { return "context: " + w.err.Error() }
func (w *wrapped) Unwrap() error { return w.err }
