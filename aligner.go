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

// Package swalign implements local pairwise alignment of short sequences,
// with a multi-layer dynamic-programming grid, traceback, and text rendering.
package swalign

import (
	"context"
	"math"
	"sync"

	"github.com/dustin/go-humanize"
)

// DefaultMaxCells is the default limit of grid cells (all layers) of one alignment.
const DefaultMaxCells = 11_000_000

// FillOrder is the order of visiting cells while filling the grid.
// All orders produce identical grids and results.
type FillOrder uint8

const (
	// FillAntiDiagonal visits diagonals i+j = 2, 3, ..., len(q)+len(t).
	FillAntiDiagonal FillOrder = iota
	// FillRowMajor visits rows i = 1..len(q), each from j = 1 to len(t).
	FillRowMajor
)

// Options contains the options of an Aligner.
type Options struct {
	Model Model

	// MaxCells limits (len(q)+1)*(len(t)+1)*layers, checked before allocating the grid.
	// 0 means DefaultMaxCells, a negative value removes the limit.
	MaxCells int

	FillOrder FillOrder
}

// DefaultOptions is the default options.
var DefaultOptions = Options{
	Model:     ModelAffine,
	MaxCells:  DefaultMaxCells,
	FillOrder: FillAntiDiagonal,
}

// Aligner is the object for local alignment,
// which can apply to multiple pairs of query and target sequences.
// It is not safe for concurrent use, use one Aligner per goroutine.
type Aligner struct {
	s   *Scoring
	opt *Options

	rules    [][]rule
	maxScore int32 // highest pair score, bounding the score of every cell

	// data of the last alignment
	grid   *Grid
	q, t   []byte
	best   Cell
	bestOK bool
}

// object pool of aligners.
var poolAligner = &sync.Pool{New: func() interface{} {
	return &Aligner{}
}}

// New returns an Aligner from the object pool.
// Nil s or opt mean DefaultScoring() and DefaultOptions.
func New(s *Scoring, opt *Options) (*Aligner, error) {
	if s == nil {
		s = DefaultScoring()
	}
	if opt == nil {
		opt = &DefaultOptions
	}
	if s.Table == nil {
		return nil, errorf(KindInvalidInput, "nil score table")
	}
	if s.Gaps.Small < 0 || s.Gaps.Open < 0 || s.Gaps.Extend < 0 {
		return nil, errorf(KindInvalidInput, "gap costs should be >= 0: %+v", s.Gaps)
	}
	rules, err := opt.Model.rules(&s.Gaps)
	if err != nil {
		return nil, err
	}

	algn := poolAligner.Get().(*Aligner)
	algn.s = s
	algn.opt = opt
	algn.rules = rules
	algn.maxScore = s.Table.MaxScore()
	algn.reset()
	return algn, nil
}

// RecycleAligner recycles an Aligner object, including its grid.
func RecycleAligner(algn *Aligner) {
	if algn == nil {
		return
	}
	algn.reset()
	poolAligner.Put(algn)
}

// reset drops the data of the last alignment.
func (algn *Aligner) reset() {
	recycleGrid(algn.grid)
	algn.grid = nil
	algn.q, algn.t = nil, nil
	algn.best = Cell{}
	algn.bestOK = false
}

// Grid returns the grid of the last alignment.
// It is valid until the next alignment or RecycleAligner.
func (algn *Aligner) Grid() *Grid {
	return algn.grid
}

// Align performs local alignment of a query and a target sequence.
// Both sequences must consist of ASCII letters only.
// A result with a score of 0 and no pairs means no positive-scoring local alignment exists.
// Do not forget to recycle the result with RecycleAlignmentResult().
func (algn *Aligner) Align(q, t []byte) (*AlignmentResult, error) {
	return algn.AlignContext(context.Background(), q, t)
}

// AlignContext is like Align, but it stops filling the grid when ctx is done,
// checking it once per anti-diagonal (or row).
func (algn *Aligner) AlignContext(ctx context.Context, q, t []byte) (*AlignmentResult, error) {
	algn.reset()

	if err := checkSeq("query", q); err != nil {
		return nil, err
	}
	if err := checkSeq("target", t); err != nil {
		return nil, err
	}

	layers := len(algn.rules)
	if err := algn.checkSize(len(q), len(t), layers); err != nil {
		return nil, err
	}

	algn.q, algn.t = q, t
	algn.grid = newGrid(len(q), len(t), layers)

	if err := algn.fill(ctx); err != nil {
		return nil, err
	}

	r := NewAlignmentResult()
	if algn.bestOK {
		r.Score = algn.best.Score
		r.Pairs = algn.traceBack(algn.best, r.Pairs)
	}
	r.process()
	return r, nil
}

// checkSeq returns an error for the first byte which is not an ASCII letter.
func checkSeq(role string, s []byte) error {
	for i, c := range s {
		if !isLetter(c) {
			return errorf(KindInvalidInput, "%s: invalid symbol %q at position %d", role, c, i+1)
		}
	}
	return nil
}

// checkSize fails fast before allocating a grid larger than Options.MaxCells,
// or when the score of a cell could exceed the range of int32.
func (algn *Aligner) checkSize(lenQ, lenT, layers int) error {
	// a cell scores at most min(i, j) pair scores, costs never add to it.
	if algn.maxScore > 0 {
		if top := int64(min(lenQ, lenT)) * int64(algn.maxScore); top > math.MaxInt32 {
			return errorf(KindTooLarge, "can not align %d x %d: scores up to %s overflow int32, please use smaller scores",
				lenQ, lenT, humanize.Comma(top))
		}
	}

	limit := algn.opt.MaxCells
	if limit == 0 {
		limit = DefaultMaxCells
	}
	if limit < 0 {
		return nil
	}
	cells := uint64(lenQ+1) * uint64(lenT+1) * uint64(layers)
	if cells > uint64(limit) {
		return errorf(KindTooLarge, "can not align %d x %d: %s cells in %d layers, more than the limit of %s",
			lenQ, lenT, humanize.Comma(int64(cells)), layers, humanize.Comma(int64(limit)))
	}
	return nil
}

// fill computes all cells, every cell after its three predecessors.
func (algn *Aligner) fill(ctx context.Context) error {
	lenQ, lenT := len(algn.q), len(algn.t)
	var i, j int

	if algn.opt.FillOrder == FillRowMajor {
		for i = 1; i <= lenQ; i++ {
			if err := ctx.Err(); err != nil {
				return err
			}
			for j = 1; j <= lenT; j++ {
				algn.fillCell(i, j)
			}
		}
		return nil
	}

	// cells on one anti-diagonal do not depend on each other.
	var lo, hi int
	for d := 2; d <= lenQ+lenT; d++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		lo = max(1, d-lenT)
		hi = min(lenQ, d-1)
		for i = lo; i <= hi; i++ {
			algn.fillCell(i, d-i)
		}
	}
	return nil
}

// fillCell computes cell (i, j) of every layer.
func (algn *Aligner) fillCell(i, j int) {
	g := algn.grid
	pair := algn.s.Table[algn.q[i-1]][algn.t[j-1]]

	var score, v int32
	var parent uint8
	var k int
	for l, rules := range algn.rules {
		// starting from 0 clamps non-positive candidates to a start point.
		score, parent = 0, noParent
		for _, r := range rules {
			v = g.scores[g.idx(r.from, i-r.di, j-r.dj)] - r.cost
			if r.pair {
				v += pair
			}
			if v > score {
				score = v
				parent = packParent(r.from, r.di, r.dj)
			}
		}

		k = g.idx(Layer(l), i, j)
		g.scores[k] = score
		g.parents[k] = parent

		if score > 0 {
			algn.updateBest(Layer(l), i, j, score)
		}
	}
}

// updateBest keeps the highest cell. Ties go to the lowest i,
// then the lowest j, then the lowest layer, whatever the fill order is.
func (algn *Aligner) updateBest(l Layer, i, j int, score int32) {
	b := &algn.best
	if algn.bestOK {
		if score < b.Score {
			return
		}
		if score == b.Score {
			if i > b.I || (i == b.I && (j > b.J || (j == b.J && l >= b.Layer))) {
				return
			}
		}
	}
	b.Layer, b.I, b.J, b.Score = l, i, j, score
	algn.bestOK = true
}
