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

package cmd

import (
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/shenwei356/bio/seq"
	"github.com/spf13/cobra"

	"github.com/shenwei356/swalign"
	"github.com/shenwei356/swalign/internal/seqclean"
)

var alignCmd = &cobra.Command{
	Use:   "align [flags] [<query seq> <target seq>]",
	Short: "Align a query and a target sequence",
	Long: `Align a query and a target sequence

Input:
  1. Two sequences from the positional arguments, or
  2. the first records of FASTA/FASTQ files given by -q/--query-file
     and -t/--target-file ("-" for stdin).

  Only letters are kept, everything else is dropped. A pair of parentheses
  in the query, e.g., "ACGT(GGATCC)TTGA", restricts the alignment to the
  marked region.

Output:
  Blocks of query, match indicators ('|' for identical symbols) and target,
  with unaligned flanking context, followed by the score, CIGAR (query as
  the read) and statistics. Positions are 1-based.

`,
	Run: func(cmd *cobra.Command, args []string) {
		opt := getOptions(cmd)
		seq.ValidateSeq = false

		timeStart := time.Now()
		defer func() {
			if opt.Verbose {
				log.Infof("elapsed time: %s", time.Since(timeStart))
			}
		}()

		// ---------------------------------------------------------------
		// input

		queryFile := getFlagString(cmd, "query-file")
		targetFile := getFlagString(cmd, "target-file")

		var qName, tName, qRaw, tRaw []byte
		var err error
		if queryFile == "" && targetFile == "" {
			if len(args) != 2 {
				checkError(fmt.Errorf("if flags -q/--query-file and -t/--target-file are not given, please give me two sequences"))
			}
			qName, tName = []byte("query"), []byte("target")
			qRaw, tRaw = []byte(args[0]), []byte(args[1])
		} else {
			if queryFile == "" || targetFile == "" {
				checkError(fmt.Errorf("flags -q/--query-file and -t/--target-file should be given together"))
			}
			if len(args) > 0 {
				checkError(fmt.Errorf("no positional arguments are allowed along with -q/--query-file and -t/--target-file"))
			}
			qName, qRaw, err = readFirstRecord(queryFile)
			checkError(err)
			tName, tRaw, err = readFirstRecord(targetFile)
			checkError(err)
		}

		qFull, q, offset, err := seqclean.CleanRegion(qRaw)
		checkError(err)
		t := seqclean.Clean(tRaw)

		if opt.Verbose {
			log.Infof("query %s: %s symbols (region offset %d), target %s: %s symbols",
				qName, humanize.Comma(int64(len(q))), offset, tName, humanize.Comma(int64(len(t))))
		}

		// ---------------------------------------------------------------
		// alignment

		cfg := opt.Config
		algn, err := swalign.New(cfg.Scoring(), cfg.Options())
		checkError(err)
		defer swalign.RecycleAligner(algn)

		ctx, cancel := opt.alignContext()
		defer cancel()

		r, err := algn.AlignContext(ctx, q, t)
		checkError(err)
		defer swalign.RecycleAlignmentResult(r)

		// report positions in the whole query, not in the marked region.
		r.ShiftQuery(offset)

		if opt.Verbose {
			g := algn.Grid()
			log.Infof("filled %s cells in %d layers", humanize.Comma(int64(g.Rows()*g.Cols())), g.Layers())
		}

		// ---------------------------------------------------------------
		// output

		outfh, closer, err := outStream(getFlagString(cmd, "out-file"))
		checkError(err)
		defer func() {
			outfh.Flush()
			closer.Close()
		}()

		fmt.Fprintf(outfh, "%s vs %s\n\n", qName, tName)
		checkError(cfg.Formatter().Format(outfh, r, qFull, t))

		if !r.Empty() {
			fmt.Fprintf(outfh, "score:  %d\n", r.Score)
			fmt.Fprintf(outfh, "query:  %d-%d\n", r.QBegin+1, r.QEnd)
			fmt.Fprintf(outfh, "target: %d-%d\n", r.TBegin+1, r.TEnd)
			fmt.Fprintf(outfh, "cigar:  %s\n", r.CIGAR(len(qFull)))
			fmt.Fprintf(outfh, "length: %d, matches: %d (%.2f%%), mismatches: %d, gaps: %d, gap regions: %d\n",
				r.AlignLen, r.Matches, float64(r.Matches)/float64(r.AlignLen)*100,
				r.Mismatches, r.Gaps, r.GapRegions)
		}

		if getFlagBool(cmd, "highlight") {
			fmt.Fprintf(outfh, "highlighted query: %s\n", r.HighlightQuery(qFull))
		}

		if getFlagBool(cmd, "plot") {
			fmt.Fprintln(outfh)
			for l := 0; l < algn.Grid().Layers(); l++ {
				checkError(algn.Plot(outfh, swalign.Layer(l)))
				fmt.Fprintln(outfh)
			}
		}
	},
}

func init() {
	RootCmd.AddCommand(alignCmd)

	alignCmd.Flags().StringP("query-file", "q", "", "FASTA/FASTQ file of the query, only the first record is used")
	alignCmd.Flags().StringP("target-file", "t", "", "FASTA/FASTQ file of the target, only the first record is used")
	alignCmd.Flags().StringP("out-file", "o", "-", `output file, "-" for stdout`)
	alignCmd.Flags().Bool("highlight", false, "print the query in lower case with the aligned region in upper case")
	alignCmd.Flags().Bool("plot", false, "print the grid of every layer, for debugging")
}
