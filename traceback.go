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

// Gap is the symbol standing for a gap in aligned pairs.
const Gap byte = '-'

// AlignedPair is one column of an alignment.
type AlignedPair struct {
	QueryIndex  int  // 0-based index in the query, -1 for a gap
	TargetIndex int  // 0-based index in the target, -1 for a gap
	QuerySym    byte // Gap if QueryIndex is -1
	TargetSym   byte // Gap if TargetIndex is -1
	State       byte // label of the layer the pair was emitted from
}

// IsGap tells whether one side of the pair is a gap.
func (p *AlignedPair) IsGap() bool {
	return p.QueryIndex < 0 || p.TargetIndex < 0
}

// IsMatch tells whether the two symbols are identical, ignoring case.
func (p *AlignedPair) IsMatch() bool {
	return !p.IsGap() && toUpper(p.QuerySym) == toUpper(p.TargetSym)
}

// traceBack walks parents from the end cell back to a start point,
// appending pairs to pairs[:0], and returns them in start-to-end order.
// The layer of the parent does not matter, only the step in index space does.
func (algn *Aligner) traceBack(end Cell, pairs []AlignedPair) []AlignedPair {
	g := algn.grid
	q, t := algn.q, algn.t
	pairs = pairs[:0]

	cell := end
	var parent Cell
	var ok bool
	var p AlignedPair
	for {
		if parent, ok = g.Parent(cell); !ok {
			break
		}

		p.State = cell.Layer.Label()
		if parent.I == cell.I-1 && parent.J == cell.J-1 { // diagonal
			p.QueryIndex, p.QuerySym = cell.I-1, q[cell.I-1]
			p.TargetIndex, p.TargetSym = cell.J-1, t[cell.J-1]
		} else if parent.J == cell.J { // vertical, gap in target
			p.QueryIndex, p.QuerySym = cell.I-1, q[cell.I-1]
			p.TargetIndex, p.TargetSym = -1, Gap
		} else { // horizontal, gap in query
			p.QueryIndex, p.QuerySym = -1, Gap
			p.TargetIndex, p.TargetSym = cell.J-1, t[cell.J-1]
		}
		pairs = append(pairs, p)

		cell = parent
	}

	// reverse the order of all pairs.
	for i, j := 0, len(pairs)-1; i < j; i, j = i+1, j-1 {
		pairs[i], pairs[j] = pairs[j], pairs[i]
	}
	return pairs
}
