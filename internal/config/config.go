// Copyright © 2024 Wei Shen <shenwei356@gmail.com>
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
// THE SOFTWARE.

// Package config is for the settings of the command line tool,
// unmarshalled by Viper from flags and an optional YAML file.
package config

import (
	"fmt"

	"github.com/shenwei356/swalign"
	"github.com/spf13/viper"
)

// Config is the root-level settings struct.
// The keys are the same as the long names of command line flags.
type Config struct {
	// scoring
	MatchBonus    int32  `mapstructure:"match-bonus"`
	MismatchCost  int32  `mapstructure:"mismatch-cost"`
	SmallGapCost  int32  `mapstructure:"small-gap-cost"`
	GapOpenCost   int32  `mapstructure:"gap-open-cost"`
	GapExtendCost int32  `mapstructure:"gap-extend-cost"`
	Matrix        string `mapstructure:"matrix"` // uniform or blosum62
	BlosumScale   int32  `mapstructure:"blosum-scale"`

	// engine
	Model    string `mapstructure:"model"` // affine or linear
	MaxCells int    `mapstructure:"max-cells"`

	// output
	Width      int  `mapstructure:"width"`
	Context    int  `mapstructure:"context"`
	ShowStates bool `mapstructure:"show-states"`
}

// Matrices
const (
	MatrixUniform  = "uniform"
	MatrixBlosum62 = "blosum62"
)

// SetDefaults sets the defaults of all keys.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("match-bonus", swalign.DefaultMatchBonus)
	v.SetDefault("mismatch-cost", swalign.DefaultMismatchCost)
	v.SetDefault("small-gap-cost", swalign.DefaultGapCosts.Small)
	v.SetDefault("gap-open-cost", swalign.DefaultGapCosts.Open)
	v.SetDefault("gap-extend-cost", swalign.DefaultGapCosts.Extend)
	v.SetDefault("matrix", MatrixUniform)
	v.SetDefault("blosum-scale", swalign.DefaultMatchBonus)

	v.SetDefault("model", swalign.ModelAffine.String())
	v.SetDefault("max-cells", swalign.DefaultMaxCells)

	v.SetDefault("width", swalign.DefaultFormatWidth)
	v.SetDefault("context", swalign.DefaultFormatContext)
	v.SetDefault("show-states", false)
}

// Load reads the config file if given, and decodes all settings of v.
func Load(v *viper.Viper, file string) (*Config, error) {
	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %s", file, err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("unable to decode the settings: %s", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Validate checks the values.
func (c *Config) Validate() error {
	for _, v := range []struct {
		name  string
		value int32
	}{
		{"match-bonus", c.MatchBonus},
		{"mismatch-cost", c.MismatchCost},
		{"small-gap-cost", c.SmallGapCost},
		{"gap-open-cost", c.GapOpenCost},
		{"gap-extend-cost", c.GapExtendCost},
	} {
		if v.value < 0 {
			return fmt.Errorf("the value of %s (%d) should be >= 0", v.name, v.value)
		}
	}

	switch c.Matrix {
	case MatrixUniform:
	case MatrixBlosum62:
		if c.BlosumScale <= 0 {
			return fmt.Errorf("the value of blosum-scale (%d) should be > 0", c.BlosumScale)
		}
	default:
		return fmt.Errorf("unknown matrix: %q, available: %s, %s", c.Matrix, MatrixUniform, MatrixBlosum62)
	}

	if _, err := swalign.ParseModel(c.Model); err != nil {
		return err
	}

	if c.Width <= 0 {
		return fmt.Errorf("the value of width (%d) should be > 0", c.Width)
	}
	if c.Context < 0 {
		return fmt.Errorf("the value of context (%d) should be >= 0", c.Context)
	}
	return nil
}

// Scoring returns the scoring of the aligner.
func (c *Config) Scoring() *swalign.Scoring {
	s := &swalign.Scoring{
		Gaps: swalign.GapCosts{
			Small:  c.SmallGapCost,
			Open:   c.GapOpenCost,
			Extend: c.GapExtendCost,
		},
	}
	if c.Matrix == MatrixBlosum62 {
		s.Table = swalign.NewBlosum62ScoreTable(c.BlosumScale, c.MismatchCost)
	} else {
		s.Table = swalign.NewUniformScoreTable(c.MatchBonus, c.MismatchCost)
	}
	return s
}

// Options returns the options of the aligner.
func (c *Config) Options() *swalign.Options {
	model, _ := swalign.ParseModel(c.Model) // checked in Validate
	return &swalign.Options{
		Model:     model,
		MaxCells:  c.MaxCells,
		FillOrder: swalign.FillAntiDiagonal,
	}
}

// Formatter returns the layout of the output.
func (c *Config) Formatter() *swalign.Formatter {
	return &swalign.Formatter{
		Width:         c.Width,
		Context:       c.Context,
		ShowStates:    c.ShowStates,
		ShowPositions: true,
	}
}
