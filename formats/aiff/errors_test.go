package aiff

import (
	"errors"
	"testing"
)

func TestErrors_Distinct(t *testing.T) {
	t.Parallel()

	errs := []error{ErrNotAiffFile, ErrOnlyPCM16bitSupported, ErrUnsupportedAiffLayout}

	for i, a := range errs {
		for j, b := range errs {
			if i != j && errors.Is(a, b) {
				t.Errorf("errors.Is(%v, %v) = true, want false", a, b)
			}
		}
	}
}
