package wav

import "errors"

var (
	ErrNotWavFile            = errors.New("not a WAV file")
	ErrOnlyPCM16bitSupported = errors.New("only PCM 16-bit supported")
	ErrUnsupportedWavChunks  = errors.New("unsupported WAV chunks")
	ErrTruncatedData         = errors.New("WAV data shorter than declared")
	ErrChannelLengthMismatch = errors.New("left and right channels differ in length")
)
