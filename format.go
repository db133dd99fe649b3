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

// Default layout of formatted alignments.
const (
	DefaultFormatWidth   = 50
	DefaultFormatContext = 25
)

// Formatter renders an alignment into fixed-width text blocks.
//
// Each block has a query row, a match-indicator row ('|' for identical symbols),
// a target row and optionally a state row, followed by a blank line.
// Up to Context unaligned symbols of each sequence are shown before and after
// the aligned region, padded with spaces where a sequence runs out.
type Formatter struct {
	Width         int  // columns per block
	Context       int  // flanking symbols on each side, 0 for none
	ShowStates    bool // add a row with the state label of each pair
	ShowPositions bool // add a gutter with the 1-based position of the first symbol in a row
}

// DefaultFormatter is the default layout, 50 columns with 25 flanking symbols.
var DefaultFormatter = Formatter{
	Width:         DefaultFormatWidth,
	Context:       DefaultFormatContext,
	ShowStates:    false,
	ShowPositions: true,
}

// column is one column of the output.
type column struct {
	qi, ti     int // 0-based indexes, -1 for none
	q, a, t, s byte
}

// Format writes the formatted alignment of r, computed from query and target.
// An empty alignment writes a single line saying so.
func (f *Formatter) Format(w io.Writer, r *AlignmentResult, query, target []byte) error {
	bw := bufio.NewWriter(w)

	if r.Empty() {
		bw.WriteString("no local alignment found\n")
		return bw.Flush()
	}

	width := f.Width
	if width <= 0 {
		width = DefaultFormatWidth
	}

	cols := f.columns(r, query, target)

	var block []column
	for start := 0; start < len(cols); start += width {
		block = cols[start:min(start+width, len(cols))]

		f.writeRow(bw, block, func(c *column) (byte, int) { return c.q, c.qi })
		f.writeRow(bw, block, func(c *column) (byte, int) { return c.a, -1 })
		f.writeRow(bw, block, func(c *column) (byte, int) { return c.t, c.ti })
		if f.ShowStates {
			f.writeRow(bw, block, func(c *column) (byte, int) { return c.s, -1 })
		}
		bw.WriteByte('\n')
	}

	return bw.Flush()
}

// writeRow writes one row of a block.
func (f *Formatter) writeRow(bw *bufio.Writer, block []column, cell func(c *column) (byte, int)) {
	var b byte
	var idx int
	if f.ShowPositions {
		pos := -1
		for i := range block {
			if _, idx = cell(&block[i]); idx >= 0 {
				pos = idx
				break
			}
		}
		if pos >= 0 {
			fmt.Fprintf(bw, "%5d ", pos+1)
		} else {
			fmt.Fprintf(bw, "%5s ", "")
		}
	}
	for i := range block {
		b, _ = cell(&block[i])
		bw.WriteByte(b)
	}
	bw.WriteByte('\n')
}

// columns lays out the left flank, the aligned pairs, and the right flank.
func (f *Formatter) columns(r *AlignmentResult, query, target []byte) []column {
	k := max(f.Context, 0)
	cols := make([]column, 0, len(r.Pairs)+2*k)

	// left flank, right-aligned against the alignment
	var qi, ti int
	for i := -k; i < 0; i++ {
		qi, ti = r.QBegin+i, r.TBegin+i
		if qi < 0 && ti < 0 {
			continue
		}
		cols = append(cols, flankColumn(query, target, qi, ti))
	}

	var c column
	for i := range r.Pairs {
		p := &r.Pairs[i]
		c = column{qi: p.QueryIndex, ti: p.TargetIndex, q: p.QuerySym, t: p.TargetSym, a: ' ', s: p.State}
		if p.IsMatch() {
			c.a = '|'
		}
		cols = append(cols, c)
	}

	// right flank
	for i := 0; i < k; i++ {
		qi, ti = r.QEnd+i, r.TEnd+i
		if qi >= len(query) && ti >= len(target) {
			break
		}
		cols = append(cols, flankColumn(query, target, qi, ti))
	}

	return cols
}

// flankColumn returns an unaligned column, with spaces for indexes out of the sequences.
func flankColumn(query, target []byte, qi, ti int) column {
	c := column{qi: -1, ti: -1, q: ' ', a: ' ', t: ' ', s: ' '}
	if qi >= 0 && qi < len(query) {
		c.qi, c.q = qi, query[qi]
	}
	if ti >= 0 && ti < len(target) {
		c.ti, c.t = ti, target[ti]
	}
	return c
}
