package hrtfgen

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/ik5/hrtfgen/audio"
	"github.com/ik5/hrtfgen/emit"
	"github.com/ik5/hrtfgen/formats/aiff"
	"github.com/ik5/hrtfgen/formats/wav"
	"github.com/ik5/hrtfgen/hrtf"
)

var (
	ErrNoOrientations = errors.New("no orientation files found")
	ErrUnknownFormat  = errors.New("unknown audio format")
)

type options struct {
	registry   *audio.Registry
	logger     *slog.Logger
	emitter    emit.Emitter
	duplicates hrtf.DuplicatePolicy
}

// Option configures Collect and Generate.
type Option func(*options)

// WithRegistry sets the decoders used for orientation files. The default
// decodes WAV only.
func WithRegistry(reg *audio.Registry) Option {
	return func(o *options) { o.registry = reg }
}

// WithLogger sets the logger passed to the scanner.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithEmitter sets the emitter used to render the header.
func WithEmitter(e emit.Emitter) Option {
	return func(o *options) { o.emitter = e }
}

// WithDuplicatePolicy sets how repeated orientations are handled.
// The default is hrtf.DuplicateFail.
func WithDuplicatePolicy(p hrtf.DuplicatePolicy) Option {
	return func(o *options) { o.duplicates = p }
}

// NewRegistry returns a registry holding the decoders for formats.
// Known formats are "wav" and "aiff" (which also claims ".aif").
func NewRegistry(formats ...string) (*audio.Registry, error) {
	reg := audio.NewRegistry()

	for _, f := range formats {
		switch f {
		case "wav":
			reg.Register("wav", wav.Decoder{})
		case "aiff", "aif":
			reg.Register("aiff", aiff.Decoder{})
			reg.Register("aif", aiff.Decoder{})
		default:
			return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, f)
		}
	}

	return reg, nil
}

func buildOptions(opts []Option) options {
	o := options{
		logger:     slog.New(slog.DiscardHandler),
		duplicates: hrtf.DuplicateFail,
	}
	for _, opt := range opts {
		opt(&o)
	}

	if o.registry == nil {
		o.registry, _ = NewRegistry("wav")
	}
	if o.logger == nil {
		o.logger = slog.New(slog.DiscardHandler)
	}

	return o
}

// Collect scans root, applies the duplicate policy and sorts the result.
func Collect(root string, opts ...Option) (hrtf.Catalog, error) {
	o := buildOptions(opts)
	return collect(root, o)
}

func collect(root string, o options) (hrtf.Catalog, error) {
	scanner := hrtf.NewScanner(o.registry, hrtf.WithLogger(o.logger))

	catalog, err := scanner.Scan(root)
	if err != nil {
		return nil, err
	}
	o.logger.Info("scan complete", "root", root, "files", len(catalog), "formats", o.registry.Formats())

	deduped, err := hrtf.Dedupe(catalog, o.duplicates)
	if err != nil {
		return nil, err
	}
	if dropped := len(catalog) - len(deduped); dropped > 0 {
		o.logger.Warn("dropped duplicate orientations", "count", dropped, "policy", o.duplicates)
	}

	return hrtf.Sort(deduped), nil
}

// Generate converts the HRTF tree at root into C array declarations and
// writes them to w. Nothing is written unless the whole tree decodes.
func Generate(root string, w io.Writer, opts ...Option) error {
	o := buildOptions(opts)

	catalog, err := collect(root, o)
	if err != nil {
		return err
	}
	if len(catalog) == 0 {
		return fmt.Errorf("%w under %s", ErrNoOrientations, root)
	}

	rows, length, err := o.emitter.Dimensions(catalog)
	if err != nil {
		return err
	}
	o.logger.Info("emitting header", "orientations", rows, "samples", length)

	return o.emitter.Fprint(w, catalog)
}
