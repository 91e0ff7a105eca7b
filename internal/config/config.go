// Package config provides configuration types and defaults for hrtfgen.
package config

import (
	"errors"
	"fmt"
	"slices"

	"github.com/ik5/hrtfgen/emit"
	"github.com/ik5/hrtfgen/hrtf"

	"github.com/spf13/viper"
)

var (
	ErrMissingInput  = errors.New("input directory is required")
	ErrUnknownFormat = errors.New("unknown audio format")
	ErrNoFormats     = errors.New("at least one audio format is required")
)

// KnownFormats lists the values accepted in Config.Formats.
var KnownFormats = []string{"wav", "aiff", "aif"}

// Config holds all configuration options for hrtfgen.
type Config struct {
	Input        string       `mapstructure:"input"`
	Formats      []string     `mapstructure:"formats"`
	Literal      string       `mapstructure:"literal"`       // "hex" or "dec"
	SampleLength string       `mapstructure:"sample_length"` // "strict", "max" or "last"
	Duplicates   string       `mapstructure:"duplicates"`    // "fail", "first", "last" or "keep"
	Constants    bool         `mapstructure:"constants"`
	Verbose      bool         `mapstructure:"verbose"`
	Output       OutputConfig `mapstructure:"output"`
}

// OutputConfig names the emitted declarations.
type OutputConfig struct {
	OrientationName string `mapstructure:"orientation_name"`
	DataName        string `mapstructure:"data_name"`
	ElementType     string `mapstructure:"element_type"`
}

// Defaults returns the configuration used when nothing is overridden.
func Defaults() Config {
	return Config{
		Formats:      []string{"wav"},
		Literal:      string(emit.LiteralHex),
		SampleLength: string(emit.SampleLengthStrict),
		Duplicates:   string(hrtf.DuplicateFail),
		Output: OutputConfig{
			OrientationName: emit.DefaultOrientationName,
			DataName:        emit.DefaultDataName,
			ElementType:     emit.DefaultElementType,
		},
	}
}

// SetDefaults registers Defaults on v.
func SetDefaults(v *viper.Viper) {
	d := Defaults()
	v.SetDefault("formats", d.Formats)
	v.SetDefault("literal", d.Literal)
	v.SetDefault("sample_length", d.SampleLength)
	v.SetDefault("duplicates", d.Duplicates)
	v.SetDefault("constants", d.Constants)
	v.SetDefault("verbose", d.Verbose)
	v.SetDefault("output.orientation_name", d.Output.OrientationName)
	v.SetDefault("output.data_name", d.Output.DataName)
	v.SetDefault("output.element_type", d.Output.ElementType)
}

// Load decodes v into a Config and validates it.
func Load(v *viper.Viper) (Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decoding config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks every field that has a closed set of values.
func (c Config) Validate() error {
	if c.Input == "" {
		return ErrMissingInput
	}

	if len(c.Formats) == 0 {
		return ErrNoFormats
	}
	for _, f := range c.Formats {
		if !slices.Contains(KnownFormats, f) {
			return fmt.Errorf("%w: %q", ErrUnknownFormat, f)
		}
	}

	if _, err := emit.ParseLiteralStyle(c.Literal); err != nil {
		return err
	}
	if _, err := emit.ParseSampleLengthPolicy(c.SampleLength); err != nil {
		return err
	}
	if _, err := hrtf.ParseDuplicatePolicy(c.Duplicates); err != nil {
		return err
	}

	return nil
}

// Emitter builds the header emitter described by c.
func (c Config) Emitter() emit.Emitter {
	return emit.Emitter{
		OrientationName: c.Output.OrientationName,
		DataName:        c.Output.DataName,
		ElementType:     c.Output.ElementType,
		Literal:         emit.LiteralStyle(c.Literal),
		SampleLength:    emit.SampleLengthPolicy(c.SampleLength),
		Constants:       c.Constants,
	}
}

// DuplicatePolicy returns the configured duplicate orientation policy.
func (c Config) DuplicatePolicy() hrtf.DuplicatePolicy {
	return hrtf.DuplicatePolicy(c.Duplicates)
}
