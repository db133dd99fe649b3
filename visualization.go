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

package swalign

import (
	"bufio"
	"fmt"
	"io"
)

// Plot plots one layer of the grid of the last alignment as a text table.
//
// A table cell contains the direction of its parent and the score.
// Symbols:
//
//	.    Score 0, a local-alignment start point
//	↘    From (i-1, j-1)
//	↓    From (i-1, j), gap in the target
//	→    From (i, j-1), gap in the query
//
// The layer of the parent is not shown.
func (algn *Aligner) Plot(wtr io.Writer, l Layer) error {
	g := algn.grid
	if g == nil {
		return fmt.Errorf("swalign: no alignment to plot")
	}
	if int(l) >= g.layers {
		return fmt.Errorf("swalign: layer %s is not filled by model %s", l, algn.opt.Model)
	}

	bw := bufio.NewWriter(wtr)

	// sequence t
	fmt.Fprintf(bw, "%s\t ", l)
	for j := range algn.t {
		fmt.Fprintf(bw, "\t%5d", j+1)
	}
	fmt.Fprintln(bw)
	fmt.Fprintf(bw, "   \t ")
	for _, b := range algn.t {
		fmt.Fprintf(bw, "\t%5c", b)
	}
	fmt.Fprintln(bw)

	var k int
	var p uint8
	var di, dj int
	for i, b := range algn.q {
		fmt.Fprintf(bw, "%3d\t%c", i+1, b) // a base in seq q
		for j := 1; j < g.cols; j++ {      // a row of the matrix
			k = g.idx(l, i+1, j)
			p = g.parents[k]
			if p == noParent {
				fmt.Fprintf(bw, "\t    .")
				continue
			}
			_, di, dj = unpackParent(p)
			fmt.Fprintf(bw, "\t%c%4d", parentArrows[di<<1|dj], g.scores[k])
		}
		fmt.Fprintln(bw)
	}

	return bw.Flush()
}
