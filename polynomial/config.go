package polynomial

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/lambdaclass/lambda-moon-math/fft"
	"gopkg.in/yaml.v2"
)

// EnvMulFFTThreshold overrides Config.MulFFTThreshold in ApplyEnv.
const EnvMulFFTThreshold = "MOONMATH_POLY_MUL_FFT_THRESHOLD"

type Config struct {
	// MulFFTThreshold is the smallest operand degree for which Context.Mul
	// multiplies through the FFT. Both operands must reach it.
	MulFFTThreshold int `yaml:"mul_fft_threshold"`
}

func DefaultConfig() Config {
	return Config{MulFFTThreshold: 64}
}

func (c Config) Validate() error {
	if c.MulFFTThreshold < 0 {
		return fmt.Errorf("%w: negative mul_fft_threshold %d", fft.ErrInvalidConfig, c.MulFFTThreshold)
	}
	return nil
}

// LoadConfig reads a YAML document over DefaultConfig. An empty document
// yields the defaults.
func LoadConfig(r io.Reader) (Config, error) {
	cfg := DefaultConfig()

	decoder := yaml.NewDecoder(r)
	decoder.SetStrict(true)
	if err := decoder.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("%w: %w", fft.ErrInvalidConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// ApplyEnv overrides the threshold from the environment, if set.
func (c *Config) ApplyEnv() error {
	value, ok := lookupEnv(EnvMulFFTThreshold)
	if !ok {
		return nil
	}
	threshold, err := strconv.Atoi(value)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", fft.ErrInvalidConfig, EnvMulFFTThreshold, err)
	}
	next := *c
	next.MulFFTThreshold = threshold
	if err := next.Validate(); err != nil {
		return err
	}
	*c = next
	return nil
}

func lookupEnv(key string) (string, bool) {
	val := os.Getenv(key)
	return val, val != ""
}
