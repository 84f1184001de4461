// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/polconv/internal/config"
	"github.com/katalvlaran/polconv/internal/logging"
	"github.com/katalvlaran/polconv/polarization"
	"github.com/katalvlaran/polconv/stokes"
)

const loggerKey = "logger"

var (
	inFlag = &cli.StringFlag{
		Name:     "in",
		Aliases:  []string{"i"},
		Usage:    "Input types, comma separated (e.g. RR,RL,LR,LL)",
		Required: true,
	}
	outFlag = &cli.StringFlag{
		Name:     "out",
		Aliases:  []string{"o"},
		Usage:    "Output types, comma separated (e.g. I,Q,U,V)",
		Required: true,
	}
	precisionFlag = &cli.IntFlag{
		Name:  "precision",
		Usage: "Arithmetic precision: 32 or 64",
		Value: config.DefaultPrecision,
	}
)

func newApp() *cli.App {
	return &cli.App{
		Name:    "polconv",
		Usage:   "Convert visibilities between Stokes, circular and linear polarization bases",
		Version: version,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "verbose",
				Usage: "Log converter builds at debug level to stderr",
			},
		},
		Before: func(c *cli.Context) error {
			c.App.Metadata = map[string]any{
				loggerKey: logging.New(c.App.ErrWriter, logging.Level(c.Bool("verbose"))),
			}
			return nil
		},
		After: func(c *cli.Context) error {
			_ = loggerFrom(c).Sync()
			return nil
		},
		Commands: []*cli.Command{
			convertCommand(),
			psfCommand(),
			matrixCommand(),
			runCommand(),
		},
	}
}

func loggerFrom(c *cli.Context) *zap.Logger {
	if l, ok := c.App.Metadata[loggerKey].(*zap.Logger); ok {
		return l
	}

	return logging.Nop()
}

func convertCommand() *cli.Command {
	return &cli.Command{
		Name:      "convert",
		Usage:     "Convert one visibility vector",
		ArgsUsage: "VALUE...",
		Flags:     []cli.Flag{inFlag, outFlag, precisionFlag},
		Action: func(c *cli.Context) error {
			in, out, err := parseLists(c.String("in"), c.String("out"))
			if err != nil {
				return cli.Exit(err.Error(), 1)
			}
			values := make([]complex128, c.NArg())
			for k, s := range c.Args().Slice() {
				if values[k], err = config.ParseValue(s); err != nil {
					return cli.Exit(err.Error(), 1)
				}
			}
			if len(values) != len(in) {
				return cli.Exit(fmt.Sprintf("got %d values for %d input types", len(values), len(in)), 1)
			}

			conv, err := stokes.New(in, out, stokes.WithLogger(loggerFrom(c)))
			if err != nil {
				return cli.Exit(err.Error(), 1)
			}
			defer conv.Free()

			res, err := apply(conv, c.Int("precision"), values)
			if err != nil {
				return cli.Exit(err.Error(), 1)
			}
			printVector(c.App.Writer, out, res, c.Int("precision"))

			return nil
		},
	}
}

func psfCommand() *cli.Command {
	return &cli.Command{
		Name:  "psf",
		Usage: "Synthesize point-source visibilities in the requested types",
		Flags: []cli.Flag{
			outFlag,
			&cli.StringFlag{
				Name:  "stokes",
				Usage: "Source Stokes parameters I,Q,U,V",
				Value: "1,0,0,0",
			},
			precisionFlag,
		},
		Action: func(c *cli.Context) error {
			out, err := polarization.ParseList(c.String("out"))
			if err != nil {
				return cli.Exit(fmt.Sprintf("--out: %v", err), 1)
			}
			src, err := parseStokes(c.String("stokes"))
			if err != nil {
				return cli.Exit(fmt.Sprintf("--stokes: %v", err), 1)
			}

			vis := make([]complex128, len(out))
			switch c.Int("precision") {
			case 32:
				vis32 := make([]complex64, len(out))
				if err := stokes.Synthesize32(src, out, vis32); err != nil {
					return cli.Exit(err.Error(), 1)
				}
				for k, v := range vis32 {
					vis[k] = complex128(v)
				}
			case 64:
				if err := stokes.Synthesize64(src, out, vis); err != nil {
					return cli.Exit(err.Error(), 1)
				}
			default:
				return cli.Exit(fmt.Sprintf("--precision must be 32 or 64, got %d", c.Int("precision")), 1)
			}
			printVector(c.App.Writer, out, vis, c.Int("precision"))

			return nil
		},
	}
}

// matrixDoc is the YAML rendering of a built transform.
type matrixDoc struct {
	Inputs  string      `yaml:"inputs"`
	Outputs string      `yaml:"outputs"`
	Method  string      `yaml:"method"`
	Rank    int         `yaml:"rank"`
	Rows    []matrixRow `yaml:"rows"`
}

type matrixRow struct {
	Output string   `yaml:"output"`
	Coeffs []string `yaml:"coeffs,flow"`
}

func matrixCommand() *cli.Command {
	return &cli.Command{
		Name:  "matrix",
		Usage: "Print the transform between two type lists as YAML",
		Flags: []cli.Flag{inFlag, outFlag},
		Action: func(c *cli.Context) error {
			in, out, err := parseLists(c.String("in"), c.String("out"))
			if err != nil {
				return cli.Exit(err.Error(), 1)
			}
			conv, err := stokes.New(in, out, stokes.WithLogger(loggerFrom(c)))
			if err != nil {
				return cli.Exit(err.Error(), 1)
			}
			defer conv.Free()

			m, err := conv.Matrix()
			if err != nil {
				return cli.Exit(err.Error(), 1)
			}
			doc := matrixDoc{
				Inputs:  in.String(),
				Outputs: out.String(),
				Method:  conv.Method().String(),
				Rank:    conv.Rank(),
				Rows:    make([]matrixRow, len(out)),
			}
			for j, t := range out {
				row := m.Row(j)
				coeffs := make([]string, len(row))
				for k, v := range row {
					coeffs[k] = formatValue(v, 64)
				}
				doc.Rows[j] = matrixRow{Output: t.String(), Coeffs: coeffs}
			}

			enc := yaml.NewEncoder(c.App.Writer)
			enc.SetIndent(2)
			if err := enc.Encode(doc); err != nil {
				return cli.Exit(err.Error(), 1)
			}

			return enc.Close()
		},
	}
}

func runCommand() *cli.Command {
	return &cli.Command{
		Name:  "run",
		Usage: "Run every job in a YAML job file",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "config",
				Aliases:  []string{"c"},
				Usage:    "Path to the job file",
				Required: true,
			},
		},
		Action: func(c *cli.Context) error {
			cfg, err := config.Load(c.String("config"))
			if err != nil {
				return cli.Exit(err.Error(), 1)
			}
			if err := cfg.Validate(); err != nil {
				return cli.Exit(err.Error(), 1)
			}

			log := loggerFrom(c)
			for k := range cfg.Jobs {
				if err := runJob(c.App.Writer, log, &cfg.Jobs[k], cfg.Precision); err != nil {
					return cli.Exit(fmt.Sprintf("job %q: %v", cfg.Jobs[k].Name, err), 1)
				}
			}

			return nil
		},
	}
}

func runJob(w io.Writer, log *zap.Logger, job *config.Job, precision int) error {
	in, out, err := job.Lists()
	if err != nil {
		return err
	}
	vectors, err := job.Values()
	if err != nil {
		return err
	}
	conv, err := stokes.New(in, out, stokes.WithLogger(log.With(zap.String("job", job.Name))))
	if err != nil {
		return err
	}
	defer conv.Free()

	fmt.Fprintf(w, "# %s\n", job.Name)
	for _, v := range vectors {
		res, err := apply(conv, precision, v)
		if err != nil {
			return err
		}
		printVector(w, out, res, precision)
	}
	log.Info("job done", zap.String("job", job.Name), zap.Int("vectors", len(vectors)))

	return nil
}

// apply runs one vector through conv at the requested precision.
func apply(conv *stokes.Converter, precision int, in []complex128) ([]complex128, error) {
	out := make([]complex128, conv.OutCount())
	switch precision {
	case 32:
		in32 := make([]complex64, len(in))
		for k, v := range in {
			in32[k] = complex64(v)
		}
		out32 := make([]complex64, len(out))
		conv.Convert32(in32, out32)
		for k, v := range out32 {
			out[k] = complex128(v)
		}
	case 64:
		conv.Convert64(in, out)
	default:
		return nil, fmt.Errorf("precision must be 32 or 64, got %d", precision)
	}

	return out, nil
}

func parseLists(in, out string) (polarization.List, polarization.List, error) {
	inList, err := polarization.ParseList(in)
	if err != nil {
		return nil, nil, fmt.Errorf("--in: %w", err)
	}
	outList, err := polarization.ParseList(out)
	if err != nil {
		return nil, nil, fmt.Errorf("--out: %w", err)
	}

	return inList, outList, nil
}

func parseStokes(s string) ([4]complex128, error) {
	var src [4]complex128
	parts := strings.Split(s, ",")
	if len(parts) != 4 {
		return src, fmt.Errorf("want 4 values I,Q,U,V, got %d", len(parts))
	}
	for k, p := range parts {
		v, err := config.ParseValue(p)
		if err != nil {
			return src, err
		}
		src[k] = v
	}

	return src, nil
}

func printVector(w io.Writer, types polarization.List, vis []complex128, precision int) {
	for k, t := range types {
		fmt.Fprintf(w, "%s = %s\n", t, formatValue(vis[k], precision))
	}
}

func formatValue(v complex128, precision int) string {
	bitSize := 128
	if precision == 32 {
		bitSize = 64
	}

	return strconv.FormatComplex(v, 'g', -1, bitSize)
}
