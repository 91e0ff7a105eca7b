// SPDX-License-Identifier: EPL-2.0

// Package hrtfgen turns a directory of measured HRTF impulse responses into
// C array declarations that can be compiled into a renderer.
//
// # Quick Start
//
//	f, _ := os.Create("mit_kemar_hrtf_data.h")
//	err := hrtfgen.Generate("MIT-KEMAR/full", f)
//
// The tree is expected in the MIT KEMAR layout: elevation directories named
// elev<degrees> holding stereo 16-bit PCM files named
// H<elevation>e<azimuth>....wav, the azimuth being three zero padded digits.
//
// # Pipeline
//
// Generate chains the subpackages:
//
//   - hrtf.Scanner walks the tree and decodes each file through the
//     audio.Registry (formats/wav, optionally formats/aiff)
//   - hrtf.Dedupe applies the duplicate orientation policy
//   - hrtf.Sort orders by elevation, then azimuth
//   - emit.Emitter renders both tables
//
// Collect stops before emission and returns the sorted catalog.
//
// # Options
//
//	reg, _ := hrtfgen.NewRegistry("wav", "aiff")
//	err := hrtfgen.Generate(root, os.Stdout,
//	    hrtfgen.WithRegistry(reg),
//	    hrtfgen.WithDuplicatePolicy(hrtf.DuplicateFirst),
//	    hrtfgen.WithEmitter(emit.Emitter{Literal: emit.LiteralDec}),
//	    hrtfgen.WithLogger(slog.Default()),
//	)
//
// Every failure is fatal: one unreadable or malformed file aborts the run
// and nothing is written.
package hrtfgen
