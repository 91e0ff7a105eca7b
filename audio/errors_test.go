package audio

import (
	"errors"
	"testing"
)

func TestErrors_Messages(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want string
	}{
		{"ErrNotStereo", ErrNotStereo, "audio must have exactly two channels"},
		{"ErrIncompleteFrame", ErrIncompleteFrame, "sample data ends in a partial frame"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if tt.err.Error() != tt.want {
				t.Errorf("%s.Error() = %q, want %q", tt.name, tt.err.Error(), tt.want)
			}
		})
	}
}

func TestErrNotStereo_Wrapping(t *testing.T) {
	t.Parallel()

	// Test that wrapped error can be unwrapped
	wrappedErr := errors.Join(ErrNotStereo, errors.New("additional context"))
	if !errors.Is(wrappedErr, ErrNotStereo) {
		t.Error("errors.Is() failed for wrapped ErrNotStereo")
	}

	if errors.Is(ErrIncompleteFrame, ErrNotStereo) {
		t.Error("errors.Is() should return false for different error")
	}
}
