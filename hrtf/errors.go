// SPDX-License-Identifier: EPL-2.0

package hrtf

import (
	"errors"
	"fmt"
)

var (
	// ErrIO indicates a file or directory could not be read.
	ErrIO = errors.New("io error")

	// ErrDecode indicates an audio file is not stereo 16-bit PCM.
	ErrDecode = errors.New("decode error")

	// ErrParse indicates a name carried a marker but no valid integer after it.
	ErrParse = errors.New("parse error")

	// ErrDuplicateOrientation indicates two files map to one (elevation, azimuth).
	ErrDuplicateOrientation = errors.New("duplicate orientation")

	// ErrUnknownDuplicatePolicy is returned for an unrecognized policy name.
	ErrUnknownDuplicatePolicy = errors.New("unknown duplicate policy")
)

// PathError records the failing path alongside the error kind.
// errors.Is matches both Kind and the underlying Err.
type PathError struct {
	Kind error
	Path string
	Err  error
}

func (e *PathError) Error() string {
	return fmt.Sprintf("%v: %s: %v", e.Kind, e.Path, e.Err)
}

func (e *PathError) Unwrap() []error {
	return []error{e.Kind, e.Err}
}

func pathError(kind error, path string, err error) error {
	return &PathError{Kind: kind, Path: path, Err: err}
}
