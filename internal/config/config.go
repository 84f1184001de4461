// SPDX-License-Identifier: MIT

// Package config loads polconv job files.
//
// A job file lists conversions to run in one invocation:
//
//	precision: 64
//	jobs:
//	  - name: circ-to-stokes
//	    inputs: RR,RL,LR,LL
//	    outputs: I,Q,U,V
//	    vectors:
//	      - ["7", "0.75+0.25i", "0.75-0.25i", "1"]
//
// ${VAR} and ${VAR:-default} are expanded before parsing.
package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/polconv/polarization"
)

// DefaultPrecision is used when the file does not set precision.
const DefaultPrecision = 64

// ErrInvalidConfig is wrapped by every Validate failure.
var ErrInvalidConfig = errors.New("invalid config")

// Config is a parsed job file.
type Config struct {
	Precision int   `yaml:"precision"`
	Jobs      []Job `yaml:"jobs"`
}

// Job is one conversion: every vector is converted from Inputs to Outputs.
type Job struct {
	Name    string     `yaml:"name"`
	Inputs  string     `yaml:"inputs"`
	Outputs string     `yaml:"outputs"`
	Vectors [][]string `yaml:"vectors"`
}

// Validate checks precision, job names and that every job can be built and fed.
func (c *Config) Validate() error {
	if c.Precision != 32 && c.Precision != 64 {
		return fmt.Errorf("%w: precision must be 32 or 64, got %d", ErrInvalidConfig, c.Precision)
	}
	if len(c.Jobs) == 0 {
		return fmt.Errorf("%w: no jobs", ErrInvalidConfig)
	}
	seen := make(map[string]struct{}, len(c.Jobs))
	for k := range c.Jobs {
		j := &c.Jobs[k]
		if j.Name == "" {
			return fmt.Errorf("%w: job %d has no name", ErrInvalidConfig, k)
		}
		if _, dup := seen[j.Name]; dup {
			return fmt.Errorf("%w: duplicate job name %q", ErrInvalidConfig, j.Name)
		}
		seen[j.Name] = struct{}{}
		if _, _, err := j.Lists(); err != nil {
			return fmt.Errorf("%w: job %q: %w", ErrInvalidConfig, j.Name, err)
		}
		if _, err := j.Values(); err != nil {
			return fmt.Errorf("%w: job %q: %w", ErrInvalidConfig, j.Name, err)
		}
	}

	return nil
}

// Lists parses the input and output type lists.
func (j *Job) Lists() (in, out polarization.List, err error) {
	if in, err = polarization.ParseList(j.Inputs); err != nil {
		return nil, nil, fmt.Errorf("inputs: %w", err)
	}
	if out, err = polarization.ParseList(j.Outputs); err != nil {
		return nil, nil, fmt.Errorf("outputs: %w", err)
	}

	return in, out, nil
}

// Values parses every vector; each must have one value per input type.
func (j *Job) Values() ([][]complex128, error) {
	in, _, err := j.Lists()
	if err != nil {
		return nil, err
	}
	width := len(in)
	out := make([][]complex128, len(j.Vectors))
	for r, row := range j.Vectors {
		if len(row) != width {
			return nil, fmt.Errorf("vector %d: %d values for %d inputs", r, len(row), width)
		}
		out[r] = make([]complex128, width)
		for k, s := range row {
			v, err := ParseValue(s)
			if err != nil {
				return nil, fmt.Errorf("vector %d slot %d: %w", r, k, err)
			}
			out[r][k] = v
		}
	}

	return out, nil
}

// ParseValue reads a complex literal such as "1", "-2i" or "0.75+0.25i".
func ParseValue(s string) (complex128, error) {
	v, err := strconv.ParseComplex(strings.TrimSpace(s), 128)
	if err != nil {
		return 0, fmt.Errorf("value %q: %w", s, err)
	}

	return v, nil
}
