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

import "fmt"

// ErrorKind classifies errors returned by the aligner.
type ErrorKind uint8

const (
	KindInvalidInput ErrorKind = iota + 1 // a symbol that is not an ASCII letter
	KindTooLarge                          // the grid would exceed Options.MaxCells
	KindUnsupported                       // a declared but disabled feature
)

func (k ErrorKind) String() string {
	switch k {
	case KindInvalidInput:
		return "invalid input"
	case KindTooLarge:
		return "input too large"
	case KindUnsupported:
		return "unsupported"
	default:
		return "unknown error"
	}
}

// Error is the error type of the package.
// Use errors.Is with ErrInvalidInput, ErrTooLarge or ErrUnsupported to test the kind.
type Error struct {
	Kind ErrorKind
	Msg  string
}

func (e *Error) Error() string {
	if e.Msg == "" {
		return "swalign: " + e.Kind.String()
	}
	return "swalign: " + e.Kind.String() + ": " + e.Msg
}

// Is reports whether target is an *Error of the same kind.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

var (
	ErrInvalidInput = &Error{Kind: KindInvalidInput}
	ErrTooLarge     = &Error{Kind: KindTooLarge}
	ErrUnsupported  = &Error{Kind: KindUnsupported}
)

func errorf(kind ErrorKind, format string, args ...interface{}) error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}
