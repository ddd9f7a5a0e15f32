// Package config loads and validates the run parameters of the gridlab
// solvers from YAML. Every field has a default matching the puzzle rules,
// so a file only needs to name what it overrides.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/gridlab/search"
)

// ErrInvalidConfig indicates a file that does not parse or fails validation.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// validate is shared; validator caches struct metadata per type.
var validate = validator.New(validator.WithRequiredStructEnabled())

// Config is the full run configuration.
type Config struct {
	Crucible Crucible `yaml:"crucible"`
	Platform Platform `yaml:"platform"`
	Beam     Beam     `yaml:"beam"`
	Pulse    Pulse    `yaml:"pulse"`
}

// Crucible holds the straight-run bounds of the two crucible kinds.
type Crucible struct {
	Normal search.RunBounds `yaml:"normal"`
	Ultra  search.RunBounds `yaml:"ultra"`
}

// Platform holds the number of spin cycles to fast-forward.
type Platform struct {
	Cycles uint64 `yaml:"cycles" validate:"gte=1"`
}

// Beam holds the probe concurrency; 0 means runtime.GOMAXPROCS.
type Beam struct {
	Workers int `yaml:"workers" validate:"gte=0"`
}

// Pulse holds the button press counts and the module watched for a low pulse.
type Pulse struct {
	Presses    int    `yaml:"presses" validate:"gte=1"`
	Target     string `yaml:"target" validate:"required"`
	MaxPresses int    `yaml:"max_presses" validate:"gte=1"`
}

// Default returns the canonical puzzle parameters.
func Default() Config {
	return Config{
		Crucible: Crucible{
			Normal: search.RunBounds{Min: 0, Max: 3},
			Ultra:  search.RunBounds{Min: 4, Max: 10},
		},
		Platform: Platform{Cycles: 1_000_000_000},
		Beam:     Beam{Workers: runtime.GOMAXPROCS(0)},
		Pulse:    Pulse{Presses: 1000, Target: "rx", MaxPresses: 1 << 20},
	}
}

// Load reads the YAML file at path over Default and validates the result.
// An empty path yields the defaults. Unknown keys are rejected.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}

	return Parse(raw)
}

// Parse decodes YAML bytes over Default and validates the result.
func Parse(raw []byte) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	// An empty document leaves the defaults in place.
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks every field against its constraints.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	return nil
}
