package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/ik5/hrtfgen"
	"github.com/ik5/hrtfgen/internal/config"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	exitOK       = 0
	exitFailure  = 1
	exitArgument = 2
)

// argumentError marks failures caused by the command line or config file.
type argumentError struct {
	err error
}

func (e *argumentError) Error() string { return e.err.Error() }
func (e *argumentError) Unwrap() error { return e.err }

// flag name -> viper key
var flagKeys = map[string]string{
	"input":            "input",
	"formats":          "formats",
	"literal":          "literal",
	"sample-length":    "sample_length",
	"duplicates":       "duplicates",
	"constants":        "constants",
	"verbose":          "verbose",
	"orientation-name": "output.orientation_name",
	"data-name":        "output.data_name",
	"element-type":     "output.element_type",
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	v := viper.New()
	config.SetDefaults(v)

	var cfgFile string

	cmd := &cobra.Command{
		Use:   "hrtfgen -i <rootDir>",
		Short: "Convert an HRTF measurement tree into C array declarations",
		Long: `hrtfgen walks a directory of HRTF impulse responses laid out as
elev<degrees>/H<elevation>e<azimuth>*.wav, decodes every stereo 16-bit PCM
file and prints an orientation table and a sample table as C source.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				return &argumentError{fmt.Errorf("unexpected arguments: %v", args)}
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if cfgFile != "" {
				v.SetConfigFile(cfgFile)
				if err := v.ReadInConfig(); err != nil {
					return &argumentError{fmt.Errorf("reading config: %w", err)}
				}
			}

			cfg, err := config.Load(v)
			if err != nil {
				return &argumentError{err}
			}

			return generate(cmd, cfg, stderr)
		},
	}

	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SetFlagErrorFunc(func(c *cobra.Command, err error) error {
		return &argumentError{err}
	})

	d := config.Defaults()
	flags := cmd.Flags()
	flags.StringVar(&cfgFile, "config", "", "YAML config file")
	flags.StringP("input", "i", "", "root directory of the HRTF set (required)")
	flags.StringSlice("formats", d.Formats, "audio formats to decode (wav, aiff)")
	flags.String("literal", d.Literal, "sample literal style: hex or dec")
	flags.String("sample-length", d.SampleLength, "sample table length policy: strict, max or last")
	flags.String("duplicates", d.Duplicates, "duplicate orientation policy: fail, first, last or keep")
	flags.Bool("constants", d.Constants, "emit kHRTFNum, kHRTFFilterLen and kHRTFSampleRate")
	flags.BoolP("verbose", "v", d.Verbose, "log every decoded file to stderr")
	flags.String("orientation-name", d.Output.OrientationName, "name of the orientation table")
	flags.String("data-name", d.Output.DataName, "name of the sample table")
	flags.String("element-type", d.Output.ElementType, "C element type of the sample table")

	for name, key := range flagKeys {
		// Lookup cannot fail for flags defined above
		_ = v.BindPFlag(key, flags.Lookup(name))
	}

	return cmd
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func generate(cmd *cobra.Command, cfg config.Config, stderr io.Writer) error {
	logger := newLogger(stderr, cfg.Verbose)

	reg, err := hrtfgen.NewRegistry(cfg.Formats...)
	if err != nil {
		return &argumentError{err}
	}

	logger.Debug("starting", "input", cfg.Input, "formats", cfg.Formats,
		"literal", cfg.Literal, "sample_length", cfg.SampleLength, "duplicates", cfg.Duplicates)

	return hrtfgen.Generate(cfg.Input, cmd.OutOrStdout(),
		hrtfgen.WithRegistry(reg),
		hrtfgen.WithLogger(logger),
		hrtfgen.WithEmitter(cfg.Emitter()),
		hrtfgen.WithDuplicatePolicy(cfg.DuplicatePolicy()),
	)
}

// run executes the command and maps its error to an exit code.
func run(args []string, stdout, stderr io.Writer) int {
	cmd := newRootCmd(stdout, stderr)
	cmd.SetArgs(args)

	err := cmd.Execute()
	if err == nil {
		return exitOK
	}

	fmt.Fprintln(stderr, "Error:", err)

	var argErr *argumentError
	if errors.As(err, &argErr) {
		fmt.Fprintln(stderr, cmd.UsageString())
		return exitArgument
	}

	return exitFailure
}
