// SPDX-License-Identifier: MIT

// Package cli parses splinegen flags and runs one solve from a file or stdin.
package cli

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/katalvlaran/splinegen/internal/config"
	"github.com/katalvlaran/splinegen/matrix"
	"github.com/katalvlaran/splinegen/spline"
)

// Output formats.
const (
	FormatPlain = "plain"
	FormatJSON  = "json"
	FormatLaTeX = "latex"
)

// stdinPath selects standard input for -in.
const stdinPath = "-"

// ErrUnknownFormat is returned by ParseConfig for an unsupported -format.
var ErrUnknownFormat = errors.New("cli: format must be plain, json or latex")

// Config holds splinegen command configuration. Sampling defaults come from
// the same SPLINEGEN_DEFAULT_* variables the HTTP service reads.
type Config struct {
	In        string
	Freeform  bool
	List      bool
	Format    string
	Step      float64 `env:"DEFAULT_STEP" envDefault:"0.1"`
	Count     int     `env:"DEFAULT_SAMPLES" envDefault:"100"`
	Precision int     `env:"DEFAULT_PRECISION" envDefault:"5"`
}

// ParseConfig parses environment and flags into Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: config.EnvPrefix}); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	fs.StringVar(&cfg.In, "in", stdinPath, "Input file, - for stdin")
	fs.BoolVar(&cfg.Freeform, "freeform", false, "Read free-form \"t x y [vx vy]\" lines instead of a table")
	fs.BoolVar(&cfg.List, "list", false, "Also sample both axes over [0, rows)")
	fs.Float64Var(&cfg.Step, "step", cfg.Step, "Sampling step for -list")
	fs.IntVar(&cfg.Count, "count", cfg.Count, "Number of samples for -list")
	fs.IntVar(&cfg.Precision, "precision", cfg.Precision, "Decimals in the latex format")
	fs.StringVar(&cfg.Format, "format", FormatPlain, "Output format: plain, json or latex")

	if args == nil {
		args = []string{}
	}
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	cfg.Format = strings.ToLower(cfg.Format)
	switch cfg.Format {
	case FormatPlain, FormatJSON, FormatLaTeX:
	default:
		return Config{}, fmt.Errorf("%w: %q", ErrUnknownFormat, cfg.Format)
	}

	return cfg, nil
}

// Output is the machine-readable result of Run, written as-is by the json
// format.
type Output struct {
	Coefficients []float64 `json:"coefficients"`
	X            []float64 `json:"x"`
	Y            []float64 `json:"y"`
	Equation     string    `json:"equation"`
	Constraints  int       `json:"constraints"`
	Step         float64   `json:"step,omitempty"`
	XList        []float64 `json:"x_list,omitempty"`
	YList        []float64 `json:"y_list,omitempty"`
}

// Run reads the input named by cfg (stdin when cfg.In is "-" or empty),
// solves it and writes the result to out.
func Run(cfg Config, stdin io.Reader, out io.Writer) error {
	text, err := readInput(cfg.In, stdin)
	if err != nil {
		return err
	}

	o, err := solve(cfg, text)
	if err != nil {
		return err
	}

	return write(cfg.Format, o, out)
}

func readInput(path string, stdin io.Reader) (string, error) {
	if path == "" || path == stdinPath {
		b, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(b), nil
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read input: %w", err)
	}

	return string(b), nil
}

func solve(cfg Config, text string) (*Output, error) {
	var (
		res         *spline.Result
		constraints int
	)
	if cfg.Freeform {
		r, in, err := spline.SolveFreeform(text, matrix.WithoutSnapshot())
		if err != nil {
			return nil, err
		}
		res, constraints = r, in.Constraints
	} else {
		r, err := spline.Solve(text, matrix.WithoutSnapshot())
		if err != nil {
			return nil, err
		}
		res, constraints = r, r.Rows
	}

	eq := res.Equation()
	o := &Output{
		Coefficients: res.Coefficients(),
		X:            eq.X,
		Y:            eq.Y,
		Equation:     eq.Format(cfg.Precision),
		Constraints:  constraints,
	}
	if !cfg.List {
		return o, nil
	}

	o.Step = spline.SampleStep(cfg.Step, cfg.Count, constraints)
	xs, ys, err := spline.SampleEquation(eq, o.Step, float64(constraints), cfg.Count)
	if err != nil {
		return nil, err
	}
	o.XList, o.YList = xs, ys

	return o, nil
}

func write(format string, o *Output, out io.Writer) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(o)
	case FormatLaTeX:
		_, err := fmt.Fprintln(out, o.Equation)
		return err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "x: %s\n", joinFloats(o.X))
	fmt.Fprintf(&b, "y: %s\n", joinFloats(o.Y))
	if o.XList != nil {
		fmt.Fprintf(&b, "step: %g\n", o.Step)
		fmt.Fprintf(&b, "x_list: %s\n", joinFloats(o.XList))
		fmt.Fprintf(&b, "y_list: %s\n", joinFloats(o.YList))
	}
	_, err := io.WriteString(out, b.String())

	return err
}

func joinFloats(vs []float64) string {
	parts := make([]string, len(vs))
	for i, v := range vs {
		parts[i] = fmt.Sprintf("%g", v)
	}

	return strings.Join(parts, " ")
}
