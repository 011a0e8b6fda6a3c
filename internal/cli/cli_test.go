// SPDX-License-Identifier: MIT

package cli_test

import (
	"bytes"
	"encoding/json"
	"flag"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/katalvlaran/splinegen/internal/cli"
	"github.com/katalvlaran/splinegen/spline"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const twoPoints = "t,coordinate\n0,\"(0,0)\"\n1,\"(1,1)\"\n"

func parse(t *testing.T, args ...string) cli.Config {
	t.Helper()
	fs := flag.NewFlagSet("splinegen", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	cfg, err := cli.ParseConfig(fs, args)
	require.NoError(t, err)

	return cfg
}

func TestParseConfigDefaults(t *testing.T) {
	cfg := parse(t)
	assert.Equal(t, "-", cfg.In)
	assert.Equal(t, cli.FormatPlain, cfg.Format)
	assert.False(t, cfg.Freeform)
	assert.False(t, cfg.List)
	assert.Equal(t, 0.1, cfg.Step)
	assert.Equal(t, 100, cfg.Count)
	assert.Equal(t, 5, cfg.Precision)
}

func TestParseConfigEnvAndFlags(t *testing.T) {
	t.Setenv("SPLINEGEN_DEFAULT_SAMPLES", "7")
	t.Setenv("SPLINEGEN_DEFAULT_PRECISION", "2")

	cfg := parse(t, "-format", "JSON", "-list", "-step", "0.5", "-precision", "3")
	assert.Equal(t, cli.FormatJSON, cfg.Format)
	assert.True(t, cfg.List)
	assert.Equal(t, 0.5, cfg.Step)
	assert.Equal(t, 7, cfg.Count)
	assert.Equal(t, 3, cfg.Precision)
}

func TestParseConfigErrors(t *testing.T) {
	fs := flag.NewFlagSet("splinegen", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	_, err := cli.ParseConfig(fs, []string{"-format", "xml"})
	require.ErrorIs(t, err, cli.ErrUnknownFormat)

	fs = flag.NewFlagSet("splinegen", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	_, err = cli.ParseConfig(fs, []string{"-nope"})
	require.Error(t, err)
}

func TestRunPlain(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, cli.Run(parse(t), strings.NewReader(twoPoints), &out))
	assert.Equal(t, "x: 0 1\ny: 0 1\n", out.String())
}

func TestRunPlainWithList(t *testing.T) {
	var out bytes.Buffer
	cfg := parse(t, "-list", "-step", "0.5", "-count", "10")
	require.NoError(t, cli.Run(cfg, strings.NewReader(twoPoints), &out))
	assert.Equal(t, "x: 0 1\ny: 0 1\nstep: 0.5\nx_list: 0 0.5 1 1.5\ny_list: 0 0.5 1 1.5\n", out.String())
}

func TestRunLaTeX(t *testing.T) {
	var out bytes.Buffer
	cfg := parse(t, "-format", "latex", "-precision", "1")
	require.NoError(t, cli.Run(cfg, strings.NewReader(twoPoints), &out))
	assert.Equal(t, "(1.0t^1 , 1.0t^1)\n", out.String())
}

func TestRunJSONFreeformFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "points.txt")
	require.NoError(t, os.WriteFile(path, []byte("0 (0, 0)\n1 (1, 1) // end\n"), 0o600))

	var out bytes.Buffer
	cfg := parse(t, "-in", path, "-freeform", "-format", "json")
	require.NoError(t, cli.Run(cfg, strings.NewReader(""), &out))

	var got cli.Output
	require.NoError(t, json.Unmarshal(out.Bytes(), &got))
	assert.Equal(t, []float64{0, 1, 0, 1}, got.Coefficients)
	assert.Equal(t, 2, got.Constraints)
	assert.Nil(t, got.XList)
}

func TestRunErrors(t *testing.T) {
	err := cli.Run(parse(t), strings.NewReader("t,c\n0,\"(1)\""), io.Discard)
	require.Equal(t, spline.KindParse, spline.KindOf(err))

	err = cli.Run(parse(t, "-freeform"), strings.NewReader("0 1"), io.Discard)
	require.Equal(t, spline.KindParse, spline.KindOf(err))

	err = cli.Run(parse(t, "-in", filepath.Join(t.TempDir(), "absent")), nil, io.Discard)
	require.ErrorIs(t, err, os.ErrNotExist)

	err = cli.Run(parse(t, "-list", "-count", "-1"), strings.NewReader(twoPoints), io.Discard)
	require.ErrorIs(t, err, spline.ErrInvalidCount)
}
