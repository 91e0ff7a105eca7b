// SPDX-License-Identifier: EPL-2.0

package audio

import "errors"

var (
	ErrNotStereo       = errors.New("audio must have exactly two channels")
	ErrIncompleteFrame = errors.New("sample data ends in a partial frame")
)
