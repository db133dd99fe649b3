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

package seqclean

import "testing"

func TestClean(t *testing.T) {
	tests := map[string]string{
		"":                  "",
		"ACGT":              "ACGT",
		"  1 acgt nnAC\n3*": "acgtnnAC",
		"(AC)GT":            "ACGT",
	}
	for raw, expected := range tests {
		if s := string(Clean([]byte(raw))); s != expected {
			t.Errorf("%q: %q, expected: %q", raw, s, expected)
		}
	}
}

func TestCleanRegion(t *testing.T) {
	tests := []struct {
		raw, seq, region string
		offset           int
	}{
		{"ACGTACGT", "ACGTACGT", "ACGTACGT", 0},
		{"AC (GT A) CGT", "ACGTACGT", "GTA", 2},
		{"()ACGT", "ACGT", "", 0},
		{"1 acg(t)", "acgt", "t", 3},
	}
	for _, c := range tests {
		seq, region, offset, err := CleanRegion([]byte(c.raw))
		if err != nil {
			t.Errorf("%q: %s", c.raw, err)
			continue
		}
		if string(seq) != c.seq || string(region) != c.region || offset != c.offset {
			t.Errorf("%q: %q, %q, %d, expected: %q, %q, %d", c.raw, seq, region, offset, c.seq, c.region, c.offset)
		}
	}

	for _, raw := range []string{"AC(GT", "AC)GT", "(A)(C)", "((AC))", "A(C)G)"} {
		if _, _, _, err := CleanRegion([]byte(raw)); err == nil {
			t.Errorf("%q: expected an error", raw)
		}
	}
}
