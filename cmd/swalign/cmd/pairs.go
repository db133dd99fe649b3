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
	"bufio"
	"fmt"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"github.com/vbauerster/mpb/v8"
	"github.com/vbauerster/mpb/v8/decor"

	"github.com/shenwei356/swalign"
	"github.com/shenwei356/swalign/internal/seqclean"
)

var pairsCmd = &cobra.Command{
	Use:   "pairs",
	Short: "Align sequence pairs from a file",
	Long: `Align sequence pairs from a file

Input file format:
  A query line starting with '>', followed by a target line starting with '<'.
  Example:
  >ATTGGAAAATAGGATTGGGGTTTGTTTATATTTGGGTTGAGGGATGTCCCACC
  <GATTGGAAAATAGGATGGGGTTTGTTTATATTTGGGTTGAGGGATGTCCCACC
  >CCGTAGAGTTAGACACTCGACCGTGGTGAATCCGCGACCACCGCTTTGACGG
  <CCTAGAGTTAGACACTCGACCGTGGTGAATCCGCGATCTACCGCTTTGACGG

Output:
  The query, match-indicator and target rows of every local alignment,
  followed by the CIGAR and statistics.

`,
	Run: func(cmd *cobra.Command, args []string) {
		opt := getOptions(cmd)

		timeStart := time.Now()
		defer func() {
			if opt.Verbose {
				log.Infof("elapsed time: %s", time.Since(timeStart))
			}
		}()

		infile := getFlagString(cmd, "infile")
		if infile == "" {
			checkError(fmt.Errorf("flag -i/--infile needed"))
		}
		noOutput := getFlagBool(cmd, "no-output")
		showProgress := getFlagBool(cmd, "progress")

		pairs, err := readPairs(infile)
		checkError(err)
		if opt.Verbose {
			log.Infof("%s sequence pairs loaded from %s", humanize.Comma(int64(len(pairs))), infile)
		}

		cfg := opt.Config
		algn, err := swalign.New(cfg.Scoring(), cfg.Options())
		checkError(err)

		outfh, closer, err := outStream(getFlagString(cmd, "out-file"))
		checkError(err)

		defer func() {
			swalign.RecycleAligner(algn)
			outfh.Flush()
			closer.Close()
		}()

		// process bar
		var pbs *mpb.Progress
		var bar *mpb.Bar
		if showProgress {
			pbs = mpb.New(mpb.WithWidth(40), mpb.WithOutput(os.Stderr))
			bar = pbs.AddBar(int64(len(pairs)),
				mpb.PrependDecorators(
					decor.Name("aligned pairs: ", decor.WC{W: len("aligned pairs: "), C: decor.DindentRight}),
					decor.Name("", decor.WCSyncSpaceR),
					decor.CountersNoUnit("%d / %d", decor.WCSyncWidth),
				),
				mpb.AppendDecorators(
					decor.Name("ETA: ", decor.WC{W: len("ETA: ")}),
					decor.AverageETA(decor.ET_STYLE_GO),
					decor.OnComplete(decor.Name(""), ". done"),
				),
			)
		}

		var aligned, empty int
		for i, p := range pairs {
			q, t := seqclean.Clean(p[0]), seqclean.Clean(p[1])

			ctx, cancel := opt.alignContext()
			r, err := algn.AlignContext(ctx, q, t)
			cancel()
			if err != nil {
				checkError(fmt.Errorf("pair #%d: %s", i+1, err))
			}

			if r.Empty() {
				empty++
			} else {
				aligned++
			}

			if !noOutput {
				writePair(outfh, r, len(q))
			}
			swalign.RecycleAlignmentResult(r)

			if showProgress {
				bar.Increment()
			}
		}

		if showProgress {
			pbs.Wait()
		}
		if opt.Verbose {
			log.Infof("%s pairs aligned, %s without local alignments",
				humanize.Comma(int64(aligned)), humanize.Comma(int64(empty)))
		}
	},
}

// writePair writes the alignment of one pair.
func writePair(outfh *bufio.Writer, r *swalign.AlignmentResult, queryLen int) {
	if r.Empty() {
		fmt.Fprintf(outfh, "no local alignment found\n\n")
		return
	}

	Q, A, T := r.AlignmentText()
	fmt.Fprintf(outfh, "query   %s\n", Q)
	fmt.Fprintf(outfh, "        %s\n", A)
	fmt.Fprintf(outfh, "target  %s\n", T)
	fmt.Fprintf(outfh, "score   %d\n", r.Score)
	fmt.Fprintf(outfh, "cigar   %s\n", r.CIGAR(queryLen))
	fmt.Fprintf(outfh, "length: %d, matches: %d (%.2f%%), gaps: %d, gap regions: %d\n",
		r.AlignLen, r.Matches, float64(r.Matches)/float64(r.AlignLen)*100,
		r.Gaps, r.GapRegions)
	fmt.Fprintln(outfh)
}

// readPairs reads query and target lines.
func readPairs(file string) ([][2][]byte, error) {
	fh, err := os.Open(file)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %s", file)
	}
	defer fh.Close()

	pairs := make([][2][]byte, 0, 128)
	scanner := bufio.NewScanner(fh)
	scanner.Buffer(make([]byte, 0, 64<<10), 16<<20)
	var q, line []byte
	var n int
	for scanner.Scan() {
		n++
		line = scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		switch line[0] {
		case '>':
			if q != nil {
				return nil, fmt.Errorf("line %d: a query line should be followed by a target line", n)
			}
			q = append(make([]byte, 0, len(line)-1), line[1:]...) // non-nil even if empty
		case '<':
			if q == nil {
				return nil, fmt.Errorf("line %d: a target line should follow a query line", n)
			}
			pairs = append(pairs, [2][]byte{q, append([]byte(nil), line[1:]...)})
			q = nil
		default:
			return nil, fmt.Errorf("line %d: a line should start with '>' or '<'", n)
		}
	}
	if err = scanner.Err(); err != nil {
		return nil, fmt.Errorf("something wrong in reading file: %s", file)
	}
	if q != nil {
		return nil, fmt.Errorf("the last query has no target")
	}
	return pairs, nil
}

func init() {
	RootCmd.AddCommand(pairsCmd)

	pairsCmd.Flags().StringP("infile", "i", "", "input file")
	pairsCmd.Flags().StringP("out-file", "o", "-", `output file, "-" for stdout`)
	pairsCmd.Flags().BoolP("no-output", "N", false, "do not output alignments (for benchmark)")
	pairsCmd.Flags().BoolP("progress", "p", false, "show a progress bar")
}
