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
	"bytes"
	"strings"
	"testing"
)

func TestFormat(t *testing.T) {
	q, tg := "CCAAAGGGTTTCC", "AAATTT"
	r := mustAlign(t, blockGapScoring, nil, q, tg)
	defer RecycleAlignmentResult(r)

	f := Formatter{Width: 10, Context: 3, ShowStates: true, ShowPositions: true}
	var buf bytes.Buffer
	if err := f.Format(&buf, r, []byte(q), []byte(tg)); err != nil {
		t.Fatal(err)
	}

	expected := strings.Join([]string{
		"    1 CCAAAGGGTT",
		"        |||   ||",
		"    1   AAA---TT",
		"        MMMQQQMM",
		"",
		"   11 TCC",
		"      |  ",
		"    6 T  ",
		"      M  ",
		"",
		"",
	}, "\n")
	if buf.String() != expected {
		t.Errorf("unexpected output:\n%s\nexpected:\n%s", buf.String(), expected)
	}
}

func TestFormatNoContext(t *testing.T) {
	q, tg := "CCAAAGGGTTTCC", "AAATTT"
	r := mustAlign(t, blockGapScoring, nil, q, tg)
	defer RecycleAlignmentResult(r)

	f := Formatter{Width: 50}
	var buf bytes.Buffer
	if err := f.Format(&buf, r, []byte(q), []byte(tg)); err != nil {
		t.Fatal(err)
	}
	expected := "AAAGGGTTT\n|||   |||\nAAA---TTT\n\n"
	if buf.String() != expected {
		t.Errorf("unexpected output:\n%q\nexpected:\n%q", buf.String(), expected)
	}
}

func TestFormatEmpty(t *testing.T) {
	r := mustAlign(t, nil, nil, "AAAA", "CCCC")
	defer RecycleAlignmentResult(r)

	var buf bytes.Buffer
	if err := DefaultFormatter.Format(&buf, r, []byte("AAAA"), []byte("CCCC")); err != nil {
		t.Fatal(err)
	}
	if buf.String() != "no local alignment found\n" {
		t.Errorf("unexpected output: %q", buf.String())
	}
}
