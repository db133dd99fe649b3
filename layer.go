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

// Layer is one state of the alignment automaton.
// Every layer owns a full (Q+1)x(T+1) plane of cells in the grid.
type Layer uint8

const (
	// LayerMatch holds alignments ending with a pair of symbols,
	// or with a single-step gap charged at GapCosts.Small.
	LayerMatch Layer = iota
	// LayerQueryGap (Iq) holds alignments ending inside a persistent gap
	// where the query advances against a gap in the target.
	LayerQueryGap
	// LayerTargetGap (It) holds alignments ending inside a persistent gap
	// where the target advances against a gap in the query.
	LayerTargetGap

	// Reading-frame layers are declared for codon-aware models only.
	// No model in this package fills them.
	LayerFrame1
	LayerFrame2
	LayerFrame3

	numLayers
)

var layerLabels = [numLayers]byte{'M', 'Q', 'T', '1', '2', '3'}

var layerNames = [numLayers]string{"match", "queryGap", "targetGap", "frame1", "frame2", "frame3"}

// Label returns the one-letter state label used in the state row of formatted alignments.
func (l Layer) Label() byte {
	if l >= numLayers {
		return '?'
	}
	return layerLabels[l]
}

func (l Layer) String() string {
	if l >= numLayers {
		return "unknown"
	}
	return layerNames[l]
}

// A parent is packed into one byte:
//
//	bits 0-4: layer of the parent cell
//	bit  5:   the query index advanced (parent is at i-1)
//	bit  6:   the target index advanced (parent is at j-1)
//
// A step always advances at least one sequence, so 0 is free to mean "no parent".
const (
	parentLayerMask uint8 = (1 << 5) - 1
	parentQueryBit  uint8 = 1 << 5
	parentTargetBit uint8 = 1 << 6

	noParent uint8 = 0
)

// packParent packs the source layer and the (di, dj) step, di and dj being 0 or 1.
func packParent(l Layer, di, dj int) uint8 {
	p := uint8(l) & parentLayerMask
	if di > 0 {
		p |= parentQueryBit
	}
	if dj > 0 {
		p |= parentTargetBit
	}
	return p
}

// unpackParent is the reverse of packParent.
func unpackParent(p uint8) (l Layer, di, dj int) {
	l = Layer(p & parentLayerMask)
	if p&parentQueryBit > 0 {
		di = 1
	}
	if p&parentTargetBit > 0 {
		dj = 1
	}
	return
}

// arrows for plotting the grid, indexed by di<<1|dj.
var parentArrows = [4]rune{'.', '→', '↓', '↘'}
