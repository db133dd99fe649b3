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
	"github.com/BurntSushi/cablastp/blosum"
)

// Default scores, tuned for short nucleotide sequences such as primers.
// Costs are positive values which are subtracted from the score.
const (
	DefaultMatchBonus   int32 = 1024
	DefaultMismatchCost int32 = 2048
)

// GapCosts contains the three gap costs.
type GapCosts struct {
	// Small is charged for a single-step indel taken directly from the match layer.
	Small int32
	// Open is charged for entering a persistent gap, covering its first symbol.
	Open int32
	// Extend is charged for every further symbol in a persistent gap.
	Extend int32
}

// DefaultGapCosts is the default gap costs for primers and probes.
var DefaultGapCosts = GapCosts{
	Small:  8192,
	Open:   12288,
	Extend: 256,
}

// ScoreTable scores every ordered pair of bytes, query symbol first.
type ScoreTable [256][256]int32

// NewScoreTable returns a table in which every pair scores -mismatchCost.
func NewScoreTable(mismatchCost int32) *ScoreTable {
	var t ScoreTable
	for a := range t {
		for b := range t[a] {
			t[a][b] = -mismatchCost
		}
	}
	return &t
}

// NewUniformScoreTable returns a table in which identical letters score
// matchBonus regardless of their case, and everything else -mismatchCost.
func NewUniformScoreTable(matchBonus, mismatchCost int32) *ScoreTable {
	t := NewScoreTable(mismatchCost)
	var lower byte
	for c := byte('A'); c <= 'Z'; c++ {
		lower = c + ('a' - 'A')
		t.Set(c, c, matchBonus)
		t.Set(lower, lower, matchBonus)
		t.Set(c, lower, matchBonus)
		t.Set(lower, c, matchBonus)
	}
	return t
}

// NewBlosum62ScoreTable returns a protein table from BLOSUM62,
// with all values multiplied by scale. Both letter cases are filled,
// and pairs outside the BLOSUM62 alphabet score -mismatchCost.
func NewBlosum62ScoreTable(scale, mismatchCost int32) *ScoreTable {
	t := NewScoreTable(mismatchCost)
	alphabet := blosum.Alphabet62
	var a, b byte
	var score int32
	for i := 0; i < len(alphabet); i++ {
		a = alphabet[i]
		if !isLetter(a) {
			continue
		}
		for j := 0; j < len(alphabet); j++ {
			b = alphabet[j]
			if !isLetter(b) {
				continue
			}
			score = int32(blosum.Matrix62[i][j]) * scale
			t.Set(a, b, score)
			t.Set(toLower(a), toLower(b), score)
			t.Set(a, toLower(b), score)
			t.Set(toLower(a), b, score)
		}
	}
	return t
}

// Set sets the score of a query symbol a against a target symbol b.
func (t *ScoreTable) Set(a, b byte, score int32) {
	t[a][b] = score
}

// Score returns the score of a query symbol a against a target symbol b.
func (t *ScoreTable) Score(a, b byte) int32 {
	return t[a][b]
}

// MaxScore returns the highest score in the table.
func (t *ScoreTable) MaxScore() int32 {
	m := t[0][0]
	for a := range t {
		for b := range t[a] {
			if t[a][b] > m {
				m = t[a][b]
			}
		}
	}
	return m
}

// Transpose returns a new table with the roles of query and target swapped.
func (t *ScoreTable) Transpose() *ScoreTable {
	var t2 ScoreTable
	for a := range t {
		for b := range t[a] {
			t2[b][a] = t[a][b]
		}
	}
	return &t2
}

// Scoring bundles a score table and the gap costs.
type Scoring struct {
	Table *ScoreTable
	Gaps  GapCosts
}

// DefaultScoring returns the default uniform nucleotide scoring.
func DefaultScoring() *Scoring {
	return &Scoring{
		Table: NewUniformScoreTable(DefaultMatchBonus, DefaultMismatchCost),
		Gaps:  DefaultGapCosts,
	}
}

func isLetter(c byte) bool {
	return (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z')
}

func toLower(c byte) byte {
	if c >= 'A' && c <= 'Z' {
		return c + ('a' - 'A')
	}
	return c
}
