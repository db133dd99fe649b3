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

package cmd

import (
	"bufio"
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/shenwei356/swalign"
)

func TestReadPairs(t *testing.T) {
	dir := t.TempDir()

	file := filepath.Join(dir, "pairs.txt")
	if err := os.WriteFile(file, []byte(">GATTACA\n<GATTACA\n\n>AAAGGGTTT\n<AAATTT\n"), 0644); err != nil {
		t.Fatal(err)
	}
	pairs, err := readPairs(file)
	if err != nil {
		t.Fatal(err)
	}
	if len(pairs) != 2 || string(pairs[1][0]) != "AAAGGGTTT" || string(pairs[1][1]) != "AAATTT" {
		t.Errorf("unexpected pairs: %q", pairs)
	}

	for i, data := range []string{">ACGT\n>ACGT\n", "<ACGT\n", ">ACGT\n", "ACGT\n"} {
		file = filepath.Join(dir, "bad.txt")
		if err = os.WriteFile(file, []byte(data), 0644); err != nil {
			t.Fatal(err)
		}
		if _, err = readPairs(file); err == nil {
			t.Errorf("case %d: expected an error", i)
		}
	}
}

func TestWritePair(t *testing.T) {
	algn, err := swalign.New(nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	defer swalign.RecycleAligner(algn)

	r, err := algn.Align([]byte("GATTACA"), []byte("GATTACA"))
	if err != nil {
		t.Fatal(err)
	}
	defer swalign.RecycleAlignmentResult(r)

	var buf bytes.Buffer
	w := bufio.NewWriter(&buf)
	writePair(w, r, 7)
	w.Flush()

	out := buf.String()
	for _, s := range []string{"query   GATTACA\n", "        |||||||\n", "cigar   7=\n", "score   7168\n"} {
		if !strings.Contains(out, s) {
			t.Errorf("missing %q in output:\n%s", s, out)
		}
	}
}
