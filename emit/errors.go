package emit

import "errors"

var (
	ErrSampleLengthMismatch      = errors.New("orientations differ in sample length")
	ErrSampleRateMismatch        = errors.New("orientations differ in sample rate")
	ErrUnknownLiteralStyle       = errors.New("unknown literal style")
	ErrUnknownSampleLengthPolicy = errors.New("unknown sample length policy")
)
