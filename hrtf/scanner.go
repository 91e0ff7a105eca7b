// SPDX-License-Identifier: EPL-2.0

package hrtf

import (
	"io/fs"
	"log/slog"
	"path/filepath"

	"github.com/ik5/hrtfgen/audio"
)

// Scanner walks an HRTF directory tree and decodes every orientation file.
type Scanner struct {
	registry *audio.Registry
	logger   *slog.Logger
}

// ScannerOption configures a Scanner.
type ScannerOption func(*Scanner)

// WithLogger sets the logger used for per-file debug output.
func WithLogger(l *slog.Logger) ScannerOption {
	return func(s *Scanner) {
		if l != nil {
			s.logger = l
		}
	}
}

// NewScanner returns a Scanner that decodes files through reg.
func NewScanner(reg *audio.Registry, opts ...ScannerOption) *Scanner {
	s := &Scanner{
		registry: reg,
		logger:   slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Scan walks root in lexical order. Directories whose name carries the
// elevation marker contribute their orientation files; everything else is
// skipped. Files are decoded one at a time and the returned catalog is in
// walk order. The first error aborts the scan.
func (s *Scanner) Scan(root string) (Catalog, error) {
	var catalog Catalog
	elevations := make(map[string]int)

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return pathError(ErrIO, path, err)
		}

		if d.IsDir() {
			elevation, ok, err := ParseElevationDir(d.Name())
			if err != nil {
				return pathError(ErrParse, path, err)
			}
			if ok {
				s.logger.Debug("elevation directory", "path", path, "elevation", elevation)
				elevations[filepath.Clean(path)] = elevation
			}
			return nil
		}

		elevation, ok := elevations[filepath.Dir(path)]
		if !ok || !d.Type().IsRegular() {
			return nil
		}

		if _, ok := s.registry.Lookup(path); !ok {
			s.logger.Debug("skipping unregistered format", "path", path)
			return nil
		}

		azimuth, ok, err := ParseAzimuthFile(d.Name(), elevation)
		if err != nil {
			return pathError(ErrParse, path, err)
		}
		if !ok {
			return nil
		}

		pcm, err := DecodeFile(s.registry, path)
		if err != nil {
			return err
		}

		s.logger.Debug("decoded orientation",
			"path", path, "elevation", elevation, "azimuth", azimuth, "samples", pcm.Frames())

		catalog = append(catalog, OrientationEntry{
			Elevation:   elevation,
			Azimuth:     azimuth,
			Left:        pcm.Left,
			Right:       pcm.Right,
			SampleCount: pcm.Frames(),
			SampleRate:  pcm.SampleRate,
			Path:        path,
		})

		return nil
	})
	if err != nil {
		return nil, err
	}

	return catalog, nil
}
