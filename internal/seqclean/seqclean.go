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

// Package seqclean prepares user-supplied sequences for alignment.
package seqclean

import (
	"fmt"
)

// Clean returns the letters of raw, dropping digits, spaces, and everything else.
func Clean(raw []byte) []byte {
	s := make([]byte, 0, len(raw))
	for _, c := range raw {
		if isLetter(c) {
			s = append(s, c)
		}
	}
	return s
}

// CleanRegion is like Clean, but also returns the sub-region marked by
// a pair of parentheses, and its offset in the cleaned sequence.
// Without markers the region is the whole sequence.
func CleanRegion(raw []byte) (seq, region []byte, offset int, err error) {
	s := make([]byte, 0, len(raw))
	start, end := -1, -1
	for i, c := range raw {
		switch {
		case c == '(':
			if start >= 0 {
				return nil, nil, 0, fmt.Errorf("unexpected '(' at position %d, only one region is allowed", i+1)
			}
			start = len(s)
		case c == ')':
			if start < 0 || end >= 0 {
				return nil, nil, 0, fmt.Errorf("unexpected ')' at position %d", i+1)
			}
			end = len(s)
		case isLetter(c):
			s = append(s, c)
		}
	}

	if start < 0 {
		return s, s, 0, nil
	}
	if end < 0 {
		return nil, nil, 0, fmt.Errorf("unclosed '(' in the sequence")
	}
	return s, s[start:end], start, nil
}

func isLetter(c byte) bool {
	return (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z')
}
