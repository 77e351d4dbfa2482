package fft

import (
	"encoding/hex"
	"os"
	"strings"
	"testing"

	"github.com/lambdaclass/lambda-moon-math/field"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/sha3"
	"gopkg.in/yaml.v2"
)

const vectorsFile = "testdata/vectors.yaml"

type transformVector struct {
	Name   string   `yaml:"name"`
	Field  string   `yaml:"field"`
	Input  []string `yaml:"input"`
	Output []string `yaml:"output"`
}

type fingerprintVector struct {
	Name    string `yaml:"name"`
	Field   string `yaml:"field"`
	LogSize uint8  `yaml:"log_size"`
	Inverse bool   `yaml:"inverse"`
	SHA3    string `yaml:"sha3"`
}

type vectorFile struct {
	Transforms   []transformVector   `yaml:"transforms"`
	Fingerprints []fingerprintVector `yaml:"fingerprints"`
}

func loadVectors(t *testing.T) vectorFile {
	t.Helper()

	data, err := os.ReadFile(vectorsFile)
	require.NoError(t, err)

	var vectors vectorFile
	require.NoError(t, yaml.UnmarshalStrict(data, &vectors))
	require.NotEmpty(t, vectors.Transforms)
	require.NotEmpty(t, vectors.Fingerprints)
	return vectors
}

// vectorConfigs lists engine configurations that must all reproduce the
// vectors bit for bit.
func vectorConfigs() map[string]Config {
	configs := make(map[string]Config)
	for _, backend := range []Backend{BackendSequential, BackendParallel} {
		for _, radix := range []RadixPreference{RadixAuto, RadixForce2} {
			for _, decimation := range []Decimation{NR, RN} {
				name := strings.Join([]string{backend.String(), radix.String(), decimation.String()}, "/")
				configs[name] = Config{Backend: backend, Radix: radix, Decimation: decimation, Workers: 3}
			}
		}
	}
	return configs
}

func checkTransformVector[E any, P field.Element[E]](t *testing.T, f *field.Field[E, P], v transformVector) {
	input := fromStrings(t, f, v.Input)
	expected := fromStrings(t, f, v.Output)

	for name, cfg := range vectorConfigs() {
		engine := newTestEngine(t, f, cfg)
		values := append([]E(nil), input...)
		require.NoError(t, engine.Evaluate(values, Forward))
		requireEqualVectors[E, P](t, expected, values, "%s with %s", v.Name, name)

		// And back again, after scaling by 1/n.
		domain, err := engine.Registry().Domain(uint64(len(values)))
		require.NoError(t, err)
		require.NoError(t, engine.Evaluate(values, Inverse))
		for i := range values {
			P(&values[i]).Mul(&values[i], &domain.CardinalityInv)
		}
		requireEqualVectors[E, P](t, input, values, "%s inverse with %s", v.Name, name)
	}
}

func TestTransformVectors(t *testing.T) {
	for _, v := range loadVectors(t).Transforms {
		v := v
		t.Run(v.Name, func(t *testing.T) {
			switch v.Field {
			case "f17":
				checkTransformVector(t, field.F17, v)
			case "goldilocks":
				checkTransformVector(t, field.Goldilocks, v)
			case "bn254":
				checkTransformVector(t, field.BN254, v)
			case "bls12-381":
				checkTransformVector(t, field.BLS12381, v)
			default:
				t.Fatalf("unknown field %q", v.Field)
			}
		})
	}
}

// fingerprint hashes the canonical decimal form of values, joined by ",".
func fingerprint[E any, P field.Element[E]](f *field.Field[E, P], values []E) string {
	parts := make([]string, len(values))
	for i := range values {
		parts[i] = canonical(f, values[i])
	}
	digest := sha3.Sum256([]byte(strings.Join(parts, ",")))
	return hex.EncodeToString(digest[:])
}

func checkFingerprint[E any, P field.Element[E]](t *testing.T, f *field.Field[E, P], v fingerprintVector) {
	n := 1 << v.LogSize
	input := make([]E, n)
	for i := range input {
		x := uint64(i)
		P(&input[i]).SetUint64(x*x*x + 5*x + 1)
	}

	direction := Forward
	if v.Inverse {
		direction = Inverse
	}

	for name, cfg := range vectorConfigs() {
		engine := newTestEngine(t, f, cfg)
		values := append([]E(nil), input...)
		require.NoError(t, engine.Evaluate(values, direction))

		if v.Inverse {
			domain, err := engine.Registry().Domain(uint64(n))
			require.NoError(t, err)
			for i := range values {
				P(&values[i]).Mul(&values[i], &domain.CardinalityInv)
			}
		}
		require.Equal(t, v.SHA3, fingerprint(f, values), "%s with %s", v.Name, name)
	}
}

func TestFingerprintVectors(t *testing.T) {
	for _, v := range loadVectors(t).Fingerprints {
		v := v
		t.Run(v.Name, func(t *testing.T) {
			switch v.Field {
			case "goldilocks":
				checkFingerprint(t, field.Goldilocks, v)
			case "bn254":
				checkFingerprint(t, field.BN254, v)
			case "bls12-381":
				checkFingerprint(t, field.BLS12381, v)
			default:
				t.Fatalf("unknown field %q", v.Field)
			}
		})
	}
}
