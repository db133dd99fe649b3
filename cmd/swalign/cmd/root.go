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

// Package cmd is for command line interactions with the swalign tool.
package cmd

import (
	"fmt"
	"os"

	"github.com/pkg/profile"
	"github.com/shenwei356/swalign"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/shenwei356/swalign/internal/config"
)

// VERSION is the version of swalign.
const VERSION = "0.1.0"

// profiler is started before a command and stopped after it.
var profiler interface{ Stop() }

// RootCmd represents the base command when called without any subcommands.
var RootCmd = &cobra.Command{
	Use:   "swalign",
	Short: "Local pairwise alignment of short sequences",
	Long: fmt.Sprintf(`swalign -- local pairwise alignment of short sequences

Smith-Waterman style alignment with a persistent (affine) gap model,
for short nucleotide or protein sequences such as PCR primers and probes.

Scores and costs are integers. Costs are positive values subtracted from
the score: a persistent gap of n symbols costs
gap-open-cost + gap-extend-cost*(n-1), a single-step gap small-gap-cost.

 Version: v%s
`, VERSION),
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// go tool pprof -http=:8080 cpu.pprof
		if getFlagBool(cmd, "cpu-pprof") {
			profiler = profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.Quiet)
		} else if getFlagBool(cmd, "mem-pprof") {
			profiler = profile.Start(profile.MemProfile, profile.ProfilePath("."), profile.Quiet)
		}
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if profiler != nil {
			profiler.Stop()
		}
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the RootCmd.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	config.SetDefaults(viper.GetViper())

	pf := RootCmd.PersistentFlags()
	pf.StringP("config", "c", "", "a YAML file of settings, with keys named after the long flags")
	pf.BoolP("verbose", "V", false, "print verbose information")
	pf.Duration("timeout", 0, "give up an alignment after this long, e.g., 10s. 0 for no timeout")
	pf.Bool("cpu-pprof", false, "write cpu.pprof in the current directory")
	pf.Bool("mem-pprof", false, "write mem.pprof in the current directory")

	// scoring
	pf.Int32P("match-bonus", "M", swalign.DefaultMatchBonus, "score of identical symbols (uniform matrix)")
	pf.Int32P("mismatch-cost", "X", swalign.DefaultMismatchCost, "cost of different symbols, or of symbols out of the BLOSUM62 alphabet")
	pf.Int32P("small-gap-cost", "g", swalign.DefaultGapCosts.Small, "cost of a single-step gap")
	pf.Int32P("gap-open-cost", "O", swalign.DefaultGapCosts.Open, "cost of opening a persistent gap, covering its first symbol")
	pf.Int32P("gap-extend-cost", "E", swalign.DefaultGapCosts.Extend, "cost of every further symbol in a persistent gap")
	pf.StringP("matrix", "m", config.MatrixUniform, `substitution matrix: "uniform" or "blosum62"`)
	pf.Int32("blosum-scale", swalign.DefaultMatchBonus, "multiplier of BLOSUM62 scores")

	// engine
	pf.String("model", swalign.ModelAffine.String(), `gap model: "affine" or "linear" (single-step gaps only)`)
	pf.Int("max-cells", swalign.DefaultMaxCells, "maximum grid cells of one alignment, all layers included. negative for no limit")

	// output
	pf.IntP("width", "w", swalign.DefaultFormatWidth, "columns of each alignment block")
	pf.IntP("context", "C", swalign.DefaultFormatContext, "unaligned flanking symbols to show on each side")
	pf.BoolP("show-states", "S", false, "show the state of each aligned pair: M(atch), Q(uery gap), T(arget gap)")

	for _, key := range []string{
		"match-bonus", "mismatch-cost", "small-gap-cost", "gap-open-cost", "gap-extend-cost",
		"matrix", "blosum-scale", "model", "max-cells", "width", "context", "show-states",
	} {
		viper.BindPFlag(key, pf.Lookup(key))
	}

	RootCmd.CompletionOptions.DisableDefaultCmd = true
	RootCmd.SetHelpCommand(&cobra.Command{Hidden: true})
}
