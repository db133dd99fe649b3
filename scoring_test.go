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

import "testing"

func TestUniformScoreTable(t *testing.T) {
	tbl := NewUniformScoreTable(DefaultMatchBonus, DefaultMismatchCost)

	tests := []struct {
		a, b  byte
		score int32
	}{
		{'A', 'A', DefaultMatchBonus},
		{'a', 'A', DefaultMatchBonus},
		{'g', 'g', DefaultMatchBonus},
		{'A', 'C', -DefaultMismatchCost},
		{'N', 'A', -DefaultMismatchCost},
		{'-', '-', -DefaultMismatchCost},
		{0, 255, -DefaultMismatchCost},
	}
	for _, c := range tests {
		if s := tbl.Score(c.a, c.b); s != c.score {
			t.Errorf("%q vs %q: %d, expected: %d", c.a, c.b, s, c.score)
		}
	}
}

func TestBlosum62ScoreTable(t *testing.T) {
	tbl := NewBlosum62ScoreTable(1, 8)

	tests := []struct {
		a, b  byte
		score int32
	}{
		{'A', 'A', 4},
		{'W', 'W', 11},
		{'a', 'r', -1},
		{'R', 'a', -1},
		{'J', 'A', -8},
	}
	for _, c := range tests {
		if s := tbl.Score(c.a, c.b); s != c.score {
			t.Errorf("%q vs %q: %d, expected: %d", c.a, c.b, s, c.score)
		}
	}

	scaled := NewBlosum62ScoreTable(256, 8)
	if s := scaled.Score('W', 'W'); s != 11*256 {
		t.Errorf("scaled W vs W: %d", s)
	}
}

func TestTranspose(t *testing.T) {
	tbl := NewScoreTable(1)
	tbl.Set('A', 'G', 5)
	tr := tbl.Transpose()
	if tr.Score('G', 'A') != 5 || tr.Score('A', 'G') != -1 {
		t.Errorf("unexpected transposed scores: %d, %d", tr.Score('G', 'A'), tr.Score('A', 'G'))
	}
	if tbl.Score('A', 'G') != 5 {
		t.Errorf("the original table should not change")
	}
}
