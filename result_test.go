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

func TestCIGAR(t *testing.T) {
	tests := []struct {
		q, t  string
		cigar string
	}{
		{"AAAGGGTTT", "AAATTT", "3=3I3="},
		{"CCAAAGGGTTTCC", "AAATTT", "2S3=3I3=2S"},
		{"AAATTT", "AAAGGGTTT", "3=3D3="},
		{"ACGTACGTAC", "ACGTTCGTAC", "4=1X5="},
	}
	for _, c := range tests {
		r := mustAlign(t, blockGapScoring, nil, c.q, c.t)
		if s := r.CIGAR(len(c.q)).String(); s != c.cigar {
			t.Errorf("%s vs %s: %s, expected: %s", c.q, c.t, s, c.cigar)
		}
		RecycleAlignmentResult(r)
	}
}

func TestHighlightQuery(t *testing.T) {
	q := "CCAAAGGGTTTCC"
	r := mustAlign(t, blockGapScoring, nil, q, "AAATTT")
	defer RecycleAlignmentResult(r)

	if r.QBegin != 2 || r.QEnd != 11 {
		t.Fatalf("unexpected query location: [%d, %d)", r.QBegin, r.QEnd)
	}
	if s := string(r.HighlightQuery([]byte(q))); s != "ccAAAGGGTTTcc" {
		t.Errorf("highlighted: %s", s)
	}

	empty := NewAlignmentResult()
	defer RecycleAlignmentResult(empty)
	if s := string(empty.HighlightQuery([]byte("ACGT"))); s != "acgt" {
		t.Errorf("highlighted without alignment: %s", s)
	}
}

func TestShiftQuery(t *testing.T) {
	full := []byte("TGAAAGGGTTTCA")
	region := full[2:11] // AAAGGGTTT

	r := mustAlign(t, blockGapScoring, nil, string(region), "AAATTT")
	defer RecycleAlignmentResult(r)
	r.ShiftQuery(2)

	if r.QBegin != 2 || r.QEnd != 11 || r.TBegin != 0 || r.TEnd != 6 {
		t.Fatalf("unexpected location: query [%d, %d), target [%d, %d)", r.QBegin, r.QEnd, r.TBegin, r.TEnd)
	}
	for _, p := range r.Pairs {
		if p.QueryIndex >= 0 && full[p.QueryIndex] != p.QuerySym {
			t.Errorf("pair %+v does not point into the whole query", p)
		}
		if p.QueryIndex < 0 && p.QuerySym != Gap {
			t.Errorf("gap pair moved: %+v", p)
		}
	}
	if s := r.CIGAR(len(full)).String(); s != "2S3=3I3=2S" {
		t.Errorf("cigar: %s", s)
	}
	if s := string(r.HighlightQuery(full)); s != "tgAAAGGGTTTca" {
		t.Errorf("highlighted: %s", s)
	}
}
