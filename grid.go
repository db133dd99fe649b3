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

import "sync"

// Grid is the DP arena of one alignment run.
// Cells are stored per layer in row-major order, row i for the query prefix
// of length i and column j for the target prefix of length j.
// Row 0 and column 0 are the empty-prefix boundary: score 0, no parent.
type Grid struct {
	rows, cols int // len(query)+1, len(target)+1
	plane      int // rows*cols
	layers     int

	scores  []int32
	parents []uint8
}

// Cell is a read-only view of one grid cell.
type Cell struct {
	Layer Layer
	I, J  int // query and target prefix lengths
	Score int32
}

var poolGrid = &sync.Pool{New: func() interface{} {
	return &Grid{
		scores:  make([]int32, 0, 4096),
		parents: make([]uint8, 0, 4096),
	}
}}

// newGrid returns a zeroed grid from the object pool.
func newGrid(lenQ, lenT, layers int) *Grid {
	g := poolGrid.Get().(*Grid)
	g.rows = lenQ + 1
	g.cols = lenT + 1
	g.plane = g.rows * g.cols
	g.layers = layers

	n := g.plane * layers
	if n <= cap(g.scores) {
		g.scores = g.scores[:n]
		clear(g.scores)
	} else {
		g.scores = make([]int32, n)
	}
	if n <= cap(g.parents) {
		g.parents = g.parents[:n]
		clear(g.parents)
	} else {
		g.parents = make([]uint8, n)
	}
	return g
}

// recycleGrid returns a grid to the object pool.
func recycleGrid(g *Grid) {
	if g != nil {
		poolGrid.Put(g)
	}
}

// idx returns the arena index of a cell.
func (g *Grid) idx(l Layer, i, j int) int {
	return int(l)*g.plane + i*g.cols + j
}

// Rows returns len(query)+1.
func (g *Grid) Rows() int { return g.rows }

// Cols returns len(target)+1.
func (g *Grid) Cols() int { return g.cols }

// Layers returns the number of filled layers.
func (g *Grid) Layers() int { return g.layers }

// Cell returns the cell at (l, i, j). It panics on out-of-range indexes.
func (g *Grid) Cell(l Layer, i, j int) Cell {
	if int(l) >= g.layers || i < 0 || i >= g.rows || j < 0 || j >= g.cols {
		panic("swalign: grid index out of range")
	}
	return Cell{Layer: l, I: i, J: j, Score: g.scores[g.idx(l, i, j)]}
}

// Parent returns the parent of a cell and true,
// or false if the cell is a local-alignment start point.
func (g *Grid) Parent(c Cell) (Cell, bool) {
	p := g.parents[g.idx(c.Layer, c.I, c.J)]
	if p == noParent {
		return Cell{}, false
	}
	l, di, dj := unpackParent(p)
	i, j := c.I-di, c.J-dj
	return Cell{Layer: l, I: i, J: j, Score: g.scores[g.idx(l, i, j)]}, true
}
