package fft

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v2"
)

// EnvPrefix is prepended to every environment variable ApplyEnv reads.
const EnvPrefix = "MOONMATH_FFT_"

// Backend selects which Strategy runs a transform.
type Backend uint8

const (
	// BackendAuto picks the accelerator for large transforms when one is
	// available, the parallel strategy for medium ones and the sequential
	// one otherwise.
	BackendAuto Backend = iota
	BackendSequential
	BackendParallel
	BackendAccelerator
)

var backendNames = map[Backend]string{
	BackendAuto:        "auto",
	BackendSequential:  sequentialName,
	BackendParallel:    parallelName,
	BackendAccelerator: acceleratorName,
}

func (b Backend) String() string {
	if name, ok := backendNames[b]; ok {
		return name
	}
	return fmt.Sprintf("backend(%d)", uint8(b))
}

// ParseBackend is the inverse of Backend.String.
func ParseBackend(s string) (Backend, error) {
	for b, name := range backendNames {
		if strings.EqualFold(s, name) {
			return b, nil
		}
	}
	return 0, fmt.Errorf("%w: unknown backend %q", ErrInvalidConfig, s)
}

func (b Backend) MarshalYAML() (interface{}, error) {
	return b.String(), nil
}

func (b *Backend) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var s string
	if err := unmarshal(&s); err != nil {
		return err
	}
	parsed, err := ParseBackend(s)
	if err != nil {
		return err
	}
	*b = parsed
	return nil
}

// RadixPreference decides which radix the engine plans with.
type RadixPreference uint8

const (
	// RadixAuto uses radix-4 passes, with one radix-2 pass when log2 n is odd.
	RadixAuto RadixPreference = iota
	// RadixForce2 uses radix-2 passes only.
	RadixForce2
)

func (r RadixPreference) String() string {
	switch r {
	case RadixAuto:
		return "auto"
	case RadixForce2:
		return "radix2"
	default:
		return fmt.Sprintf("radix(%d)", uint8(r))
	}
}

// ParseRadixPreference is the inverse of RadixPreference.String. "2" is
// accepted for radix2.
func ParseRadixPreference(s string) (RadixPreference, error) {
	switch strings.ToLower(s) {
	case "auto", "4", "radix4":
		return RadixAuto, nil
	case "radix2", "2":
		return RadixForce2, nil
	}
	return 0, fmt.Errorf("%w: unknown radix %q", ErrInvalidConfig, s)
}

func (r RadixPreference) MarshalYAML() (interface{}, error) {
	return r.String(), nil
}

func (r *RadixPreference) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var s string
	if err := unmarshal(&s); err != nil {
		return err
	}
	parsed, err := ParseRadixPreference(s)
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}

func (d Decimation) String() string {
	switch d {
	case NR:
		return "nr"
	case RN:
		return "rn"
	default:
		return fmt.Sprintf("decimation(%d)", uint8(d))
	}
}

// ParseDecimation is the inverse of Decimation.String.
func ParseDecimation(s string) (Decimation, error) {
	switch strings.ToLower(s) {
	case "nr":
		return NR, nil
	case "rn":
		return RN, nil
	}
	return 0, fmt.Errorf("%w: unknown decimation %q", ErrInvalidConfig, s)
}

func (d Decimation) MarshalYAML() (interface{}, error) {
	return d.String(), nil
}

func (d *Decimation) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var s string
	if err := unmarshal(&s); err != nil {
		return err
	}
	parsed, err := ParseDecimation(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Config controls how an Engine schedules transforms. It never changes their
// result.
type Config struct {
	Backend    Backend         `yaml:"backend"`
	Radix      RadixPreference `yaml:"radix"`
	Decimation Decimation      `yaml:"decimation"`
	// Workers bounds the goroutines of the parallel strategy. Values <= 0
	// mean runtime.GOMAXPROCS(0).
	Workers int `yaml:"workers"`
	// Under BackendAuto, transforms of at least ParallelThreshold points run
	// on the parallel strategy and transforms of at least
	// AcceleratorThreshold points on the accelerator.
	ParallelThreshold    uint64 `yaml:"parallel_threshold"`
	AcceleratorThreshold uint64 `yaml:"accelerator_threshold"`

	Logger  *zerolog.Logger `yaml:"-"`
	Metrics *Metrics        `yaml:"-"`
}

// DefaultConfig returns the configuration used when none is given.
func DefaultConfig() Config {
	return Config{
		Backend:              BackendAuto,
		Radix:                RadixAuto,
		Decimation:           NR,
		Workers:              0,
		ParallelThreshold:    1 << 14,
		AcceleratorThreshold: 1 << 16,
	}
}

// Validate reports enum values outside of their range.
func (c Config) Validate() error {
	if _, ok := backendNames[c.Backend]; !ok {
		return fmt.Errorf("%w: backend %d", ErrInvalidConfig, c.Backend)
	}
	if c.Radix != RadixAuto && c.Radix != RadixForce2 {
		return fmt.Errorf("%w: radix preference %d", ErrInvalidConfig, c.Radix)
	}
	if c.Decimation != NR && c.Decimation != RN {
		return fmt.Errorf("%w: decimation %d", ErrInvalidConfig, c.Decimation)
	}
	return nil
}

// LoadConfig reads a YAML document on top of DefaultConfig. Fields that are
// not present keep their default; unknown fields are an error. An empty
// document gives the defaults.
func LoadConfig(r io.Reader) (Config, error) {
	cfg := DefaultConfig()

	decoder := yaml.NewDecoder(r)
	decoder.SetStrict(true)
	if err := decoder.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// ApplyEnv overrides c with the MOONMATH_FFT_* environment variables that are
// set:
//   - MOONMATH_FFT_BACKEND: auto, sequential, parallel or accelerator
//   - MOONMATH_FFT_RADIX: auto or radix2
//   - MOONMATH_FFT_DECIMATION: nr or rn
//   - MOONMATH_FFT_WORKERS: number of goroutines (int)
//   - MOONMATH_FFT_PARALLEL_THRESHOLD: points (uint64)
//   - MOONMATH_FFT_ACCELERATOR_THRESHOLD: points (uint64)
//
// A variable that does not parse is an error and leaves c unchanged.
func (c *Config) ApplyEnv() error {
	updated := *c

	if val, ok := getEnv("BACKEND"); ok {
		b, err := ParseBackend(val)
		if err != nil {
			return err
		}
		updated.Backend = b
	}
	if val, ok := getEnv("RADIX"); ok {
		r, err := ParseRadixPreference(val)
		if err != nil {
			return err
		}
		updated.Radix = r
	}
	if val, ok := getEnv("DECIMATION"); ok {
		d, err := ParseDecimation(val)
		if err != nil {
			return err
		}
		updated.Decimation = d
	}
	if val, ok := getEnv("WORKERS"); ok {
		w, err := strconv.Atoi(val)
		if err != nil {
			return fmt.Errorf("%w: %sWORKERS: %w", ErrInvalidConfig, EnvPrefix, err)
		}
		updated.Workers = w
	}
	if val, ok := getEnv("PARALLEL_THRESHOLD"); ok {
		t, err := strconv.ParseUint(val, 10, 64)
		if err != nil {
			return fmt.Errorf("%w: %sPARALLEL_THRESHOLD: %w", ErrInvalidConfig, EnvPrefix, err)
		}
		updated.ParallelThreshold = t
	}
	if val, ok := getEnv("ACCELERATOR_THRESHOLD"); ok {
		t, err := strconv.ParseUint(val, 10, 64)
		if err != nil {
			return fmt.Errorf("%w: %sACCELERATOR_THRESHOLD: %w", ErrInvalidConfig, EnvPrefix, err)
		}
		updated.AcceleratorThreshold = t
	}

	*c = updated
	return nil
}

// getEnv returns the value of the environment variable with the given key
// (prefixed with EnvPrefix), and whether it is set to a non-empty value.
func getEnv(key string) (string, bool) {
	val := os.Getenv(EnvPrefix + key)
	return val, val != ""
}
