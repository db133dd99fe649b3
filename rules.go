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

// Model selects the set of layers and the transitions between them.
type Model uint8

const (
	// ModelAffine fills the Match, QueryGap and TargetGap layers.
	ModelAffine Model = iota
	// ModelLinear fills the Match layer only, every gap symbol costs GapCosts.Small.
	ModelLinear
	// ModelFrameAware is reserved for codon-aware alignment using the frame layers.
	// It is not implemented and rejected by New.
	ModelFrameAware
)

func (m Model) String() string {
	switch m {
	case ModelAffine:
		return "affine"
	case ModelLinear:
		return "linear"
	case ModelFrameAware:
		return "frame-aware"
	default:
		return "unknown"
	}
}

// ParseModel parses the name of a model.
func ParseModel(s string) (Model, error) {
	switch s {
	case "affine", "":
		return ModelAffine, nil
	case "linear":
		return ModelLinear, nil
	case "frame-aware":
		return 0, errorf(KindUnsupported, "model %q is not implemented", s)
	default:
		return 0, errorf(KindInvalidInput, "unknown model %q", s)
	}
}

// rule is one transition into a layer: a candidate score is
// the score of cell (from, i-di, j-dj), minus cost,
// plus the pair score when the step consumes both symbols.
type rule struct {
	from   Layer
	di, dj int
	cost   int32
	pair   bool
}

// rules returns the transitions of every filled layer, indexed by layer.
// The order of rules of a layer matters: a later candidate
// only wins when it is strictly better.
func (m Model) rules(g *GapCosts) ([][]rule, error) {
	switch m {
	case ModelLinear:
		return [][]rule{
			LayerMatch: {
				{from: LayerMatch, di: 1, dj: 1, pair: true},
				{from: LayerMatch, di: 1, dj: 0, cost: g.Small},
				{from: LayerMatch, di: 0, dj: 1, cost: g.Small},
			},
		}, nil
	case ModelAffine:
		return [][]rule{
			LayerMatch: {
				{from: LayerMatch, di: 1, dj: 1, pair: true},
				{from: LayerQueryGap, di: 1, dj: 1, pair: true},
				{from: LayerTargetGap, di: 1, dj: 1, pair: true},
				{from: LayerMatch, di: 1, dj: 0, cost: g.Small},
				{from: LayerMatch, di: 0, dj: 1, cost: g.Small},
			},
			LayerQueryGap: {
				{from: LayerMatch, di: 1, dj: 0, cost: g.Open},
				{from: LayerQueryGap, di: 1, dj: 0, cost: g.Extend},
			},
			LayerTargetGap: {
				{from: LayerMatch, di: 0, dj: 1, cost: g.Open},
				{from: LayerTargetGap, di: 0, dj: 1, cost: g.Extend},
			},
		}, nil
	case ModelFrameAware:
		return nil, errorf(KindUnsupported, "model %s: reading-frame layers %s, %s and %s are not wired",
			m, LayerFrame1, LayerFrame2, LayerFrame3)
	default:
		return nil, errorf(KindInvalidInput, "unknown model: %d", m)
	}
}
