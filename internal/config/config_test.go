package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/polconv/internal/config"
	"github.com/katalvlaran/polconv/polarization"
)

const jobFile = `precision: 32
jobs:
  - name: circ-to-stokes
    inputs: RR,RL,LR,LL
    outputs: I,Q,U,V
    vectors:
      - ["7", "0.75+0.25i", "0.75-0.25i", "1"]
      - ["1", "0", "0", "1"]
  - name: i-to-linear
    inputs: I
    outputs: XX,YY
    vectors:
      - ["3"]
`

// writeTemp writes content to a temp file and returns the path.
func writeTemp(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "jobs.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	return path
}

func TestLoadJobFile(t *testing.T) {
	cfg, err := config.Load(writeTemp(t, jobFile))
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())
	require.Equal(t, 32, cfg.Precision)
	require.Len(t, cfg.Jobs, 2)

	in, out, err := cfg.Jobs[0].Lists()
	require.NoError(t, err)
	require.Equal(t, polarization.Circular.Types(), in)
	require.Equal(t, polarization.Stokes.Types(), out)

	vals, err := cfg.Jobs[0].Values()
	require.NoError(t, err)
	require.Equal(t, [][]complex128{
		{7, 0.75 + 0.25i, 0.75 - 0.25i, 1},
		{1, 0, 0, 1},
	}, vals)
}

func TestLoadDefaultsAndEmpty(t *testing.T) {
	cfg, err := config.Load(writeTemp(t, "# nothing here\n"))
	require.NoError(t, err)
	require.Equal(t, config.DefaultPrecision, cfg.Precision)
	require.ErrorIs(t, cfg.Validate(), config.ErrInvalidConfig)
}

func TestLoadErrors(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorContains(t, err, "config file not found")

	_, err = config.Load(writeTemp(t, "jobs: [unterminated\n"))
	require.ErrorContains(t, err, "invalid YAML")

	_, err = config.Load(writeTemp(t, "precision: 64\nbogus_key: 1\n"))
	require.ErrorContains(t, err, "bogus_key")
}

func TestLoadExpandsEnv(t *testing.T) {
	t.Setenv("POLCONV_OUT", "XX,YY")
	cfg, err := config.Load(writeTemp(t, `precision: ${POLCONV_PRECISION:-64}
jobs:
  - name: env
    inputs: I
    outputs: ${POLCONV_OUT}
    vectors: [["1"]]
`))
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())
	require.Equal(t, 64, cfg.Precision)
	require.Equal(t, "XX,YY", cfg.Jobs[0].Outputs)
}

func TestValidate(t *testing.T) {
	valid := func() config.Config {
		return config.Config{Precision: 64, Jobs: []config.Job{{
			Name: "a", Inputs: "XX,YY", Outputs: "I", Vectors: [][]string{{"1", "2"}},
		}}}
	}
	for _, tc := range []struct {
		name   string
		mutate func(*config.Config)
		want   string
	}{
		{"ok", func(*config.Config) {}, ""},
		{"precision", func(c *config.Config) { c.Precision = 16 }, "precision must be 32 or 64"},
		{"no jobs", func(c *config.Config) { c.Jobs = nil }, "no jobs"},
		{"no name", func(c *config.Config) { c.Jobs[0].Name = "" }, "has no name"},
		{"duplicate name", func(c *config.Config) { c.Jobs = append(c.Jobs, c.Jobs[0]) }, "duplicate job name"},
		{"bad inputs", func(c *config.Config) { c.Jobs[0].Inputs = "XX,ZZ" }, "inputs"},
		{"bad outputs", func(c *config.Config) { c.Jobs[0].Outputs = "" }, "outputs"},
		{"width", func(c *config.Config) { c.Jobs[0].Vectors = [][]string{{"1"}} }, "1 values for 2 inputs"},
		{"value", func(c *config.Config) { c.Jobs[0].Vectors = [][]string{{"1", "x"}} }, `value "x"`},
	} {
		t.Run(tc.name, func(t *testing.T) {
			cfg := valid()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if tc.want == "" {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, config.ErrInvalidConfig)
			require.ErrorContains(t, err, tc.want)
		})
	}
}

func TestParseValue(t *testing.T) {
	for in, want := range map[string]complex128{
		"1":          1,
		" -2i ":      -2i,
		"0.75+0.25i": 0.75 + 0.25i,
		"(3-1i)":     3 - 1i,
	} {
		got, err := config.ParseValue(in)
		require.NoError(t, err, in)
		require.Equal(t, want, got, in)
	}
	_, err := config.ParseValue("i2")
	require.Error(t, err)
}

// TestValuesWidthFollowsParsedInputs sizes vectors by the parsed input list.
func TestValuesWidthFollowsParsedInputs(t *testing.T) {
	j := config.Job{Name: "w", Inputs: " RR , LL ", Outputs: "I", Vectors: [][]string{{"1", "2i"}}}
	vals, err := j.Values()
	require.NoError(t, err)
	require.Equal(t, [][]complex128{{1, 2i}}, vals)

	j = config.Job{Name: "gap", Inputs: "XX,,YY", Outputs: "I", Vectors: [][]string{{"1", "2", "3"}}}
	_, err = j.Values()
	require.ErrorIs(t, err, polarization.ErrUnknownType)
	require.ErrorContains(t, err, "inputs")
}
