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

func TestPlot(t *testing.T) {
	algn, err := New(blockGapScoring, nil)
	if err != nil {
		t.Fatal(err)
	}
	defer RecycleAligner(algn)

	var buf bytes.Buffer
	if err = algn.Plot(&buf, LayerMatch); err == nil {
		t.Errorf("plotting before aligning should fail")
	}

	q, tg := []byte("AAAGGGTTT"), []byte("AAATTT")
	r, err := algn.Align(q, tg)
	if err != nil {
		t.Fatal(err)
	}
	defer RecycleAlignmentResult(r)

	buf.Reset()
	if err = algn.Plot(&buf, LayerMatch); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 2+len(q) {
		t.Errorf("lines: %d, expected: %d", len(lines), 2+len(q))
	}
	if !strings.Contains(lines[2], "↘  10") {
		t.Errorf("the first row should start with a match: %s", lines[2])
	}
	if !strings.Contains(lines[len(lines)-1], "↘  46") {
		t.Errorf("the last row should end with the best score: %s", lines[len(lines)-1])
	}

	buf.Reset()
	if err = algn.Plot(&buf, LayerQueryGap); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "↓  18") {
		t.Errorf("the query-gap layer should contain the gap opening:\n%s", buf.String())
	}

	if err = algn.Plot(&buf, LayerFrame1); err == nil {
		t.Errorf("plotting an unfilled layer should fail")
	}
}
