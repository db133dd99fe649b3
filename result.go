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
	"sync"

	"github.com/biogo/hts/sam"
)

// AlignmentResult represents a local alignment.
type AlignmentResult struct {
	Score int32
	Pairs []AlignedPair // in start-to-end order

	QBegin, QEnd int // 0-based location of the alignment in the query, end exclusive
	TBegin, TEnd int // 0-based location of the alignment in the target, end exclusive

	// Stats of the aligned region
	AlignLen   int
	Matches    int // identical symbols, ignoring case
	Mismatches int
	Gaps       int // gap symbols on either side
	GapRegions int // runs of consecutive gaps on the same side
}

// object pool of AlignmentResult.
var poolAlignmentResult = &sync.Pool{New: func() interface{} {
	return &AlignmentResult{
		Pairs: make([]AlignedPair, 0, 128),
	}
}}

// NewAlignmentResult returns a new AlignmentResult from the object pool.
func NewAlignmentResult() *AlignmentResult {
	r := poolAlignmentResult.Get().(*AlignmentResult)
	r.reset()
	return r
}

// RecycleAlignmentResult recycles an AlignmentResult object.
func RecycleAlignmentResult(r *AlignmentResult) {
	if r != nil {
		poolAlignmentResult.Put(r)
	}
}

// reset resets an AlignmentResult.
func (r *AlignmentResult) reset() {
	r.Score = 0
	r.Pairs = r.Pairs[:0]
	r.QBegin, r.QEnd = 0, 0
	r.TBegin, r.TEnd = 0, 0
	r.AlignLen = 0
	r.Matches = 0
	r.Mismatches = 0
	r.Gaps = 0
	r.GapRegions = 0
}

// Empty tells whether no positive-scoring local alignment was found.
func (r *AlignmentResult) Empty() bool {
	return len(r.Pairs) == 0
}

// process computes the locations and stats from the pairs.
func (r *AlignmentResult) process() {
	r.AlignLen = len(r.Pairs)
	if r.AlignLen == 0 {
		return
	}

	gotQ, gotT := false, false
	var prevGap int8 // 0: no gap, 1: gap in target, 2: gap in query
	var gap int8
	for i := range r.Pairs {
		p := &r.Pairs[i]
		if p.QueryIndex >= 0 {
			if !gotQ {
				r.QBegin = p.QueryIndex
				gotQ = true
			}
			r.QEnd = p.QueryIndex + 1
		}
		if p.TargetIndex >= 0 {
			if !gotT {
				r.TBegin = p.TargetIndex
				gotT = true
			}
			r.TEnd = p.TargetIndex + 1
		}

		switch {
		case p.TargetIndex < 0:
			gap = 1
		case p.QueryIndex < 0:
			gap = 2
		default:
			gap = 0
		}
		if gap > 0 {
			r.Gaps++
			if gap != prevGap {
				r.GapRegions++
			}
		} else if p.IsMatch() {
			r.Matches++
		} else {
			r.Mismatches++
		}
		prevGap = gap
	}
}

// ShiftQuery moves query positions by offset, for a query aligned as
// a sub-region starting at offset of a longer sequence.
func (r *AlignmentResult) ShiftQuery(offset int) {
	if offset == 0 || r.Empty() {
		return
	}
	for i := range r.Pairs {
		if r.Pairs[i].QueryIndex >= 0 {
			r.Pairs[i].QueryIndex += offset
		}
	}
	r.QBegin += offset
	r.QEnd += offset
}

// CIGAR returns the CIGAR of the alignment, with the query as the read.
// Unaligned query flanks are soft clipped, so queryLen is the length of the whole query.
// Identical pairs are '=', other pairs 'X', query symbols against gaps 'I', target symbols against gaps 'D'.
// It returns nil for an empty alignment.
func (r *AlignmentResult) CIGAR(queryLen int) sam.Cigar {
	if r.Empty() {
		return nil
	}

	cigar := make(sam.Cigar, 0, 8)
	if r.QBegin > 0 {
		cigar = append(cigar, sam.NewCigarOp(sam.CigarSoftClipped, r.QBegin))
	}

	var op, opPre sam.CigarOpType
	var n int
	for i := range r.Pairs {
		p := &r.Pairs[i]
		switch {
		case p.TargetIndex < 0:
			op = sam.CigarInsertion
		case p.QueryIndex < 0:
			op = sam.CigarDeletion
		case p.IsMatch():
			op = sam.CigarEqual
		default:
			op = sam.CigarMismatch
		}

		if n > 0 && op != opPre {
			cigar = append(cigar, sam.NewCigarOp(opPre, n))
			n = 0
		}
		opPre = op
		n++
	}
	cigar = append(cigar, sam.NewCigarOp(opPre, n))

	if queryLen > r.QEnd {
		cigar = append(cigar, sam.NewCigarOp(sam.CigarSoftClipped, queryLen-r.QEnd))
	}
	return cigar
}

// AlignmentText returns the aligned rows of query, match indicators and target.
// Identical symbols are marked with '|'.
func (r *AlignmentResult) AlignmentText() (Q, A, T []byte) {
	Q = make([]byte, len(r.Pairs))
	A = make([]byte, len(r.Pairs))
	T = make([]byte, len(r.Pairs))
	for i := range r.Pairs {
		p := &r.Pairs[i]
		Q[i] = p.QuerySym
		T[i] = p.TargetSym
		if p.IsMatch() {
			A[i] = '|'
		} else {
			A[i] = ' '
		}
	}
	return
}

// HighlightQuery returns a copy of the query in lower case,
// with the aligned region in upper case.
func (r *AlignmentResult) HighlightQuery(query []byte) []byte {
	s := make([]byte, len(query))
	for i, c := range query {
		s[i] = toLower(c)
	}
	if r.Empty() {
		return s
	}
	for i := r.QBegin; i < r.QEnd && i < len(s); i++ {
		s[i] = toUpper(s[i])
	}
	return s
}

func toUpper(c byte) byte {
	if c >= 'a' && c <= 'z' {
		return c - ('a' - 'A')
	}
	return c
}
