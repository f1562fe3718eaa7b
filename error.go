// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package parsex

import (
	"errors"
	"strconv"
)

// ErrorKind tags the expectation that failed.
type ErrorKind uint8

const (
	KindTag ErrorKind = iota + 1
	KindChar
	KindDigit
	KindAlpha
	KindSpace
	KindLineEnding
	KindTake
	KindAlt
	KindEof
	KindVerify

	// KindMapRes reports a conversion rejected by [MapRes].
	KindMapRes
	// KindSeparatedList reports a separator that matched without consuming input.
	KindSeparatedList
	// KindMany1 reports an element of [Many1] that matched without consuming input.
	KindMany1
)

var kindNames = [...]string{
	KindTag:           "tag",
	KindChar:          "char",
	KindDigit:         "digit",
	KindAlpha:         "alpha",
	KindSpace:         "space",
	KindLineEnding:    "line ending",
	KindTake:          "take",
	KindAlt:           "alt",
	KindEof:           "eof",
	KindVerify:        "verify",
	KindMapRes:        "map_res",
	KindSeparatedList: "separated_list",
	KindMany1:         "many1",
}

func (k ErrorKind) String() string {
	if int(k) < len(kindNames) && kindNames[k] != "" {
		return kindNames[k]
	}
	return "kind(" + strconv.Itoa(int(k)) + ")"
}

// Error is a parse failure at a position in the original source.
//
// A failure is either recoverable ("this alternative did not match") or
// fatal ("the grammar is violated; stop"). Enclosing combinators may swallow
// recoverable failures to try another branch or end a repetition; fatal
// failures always propagate.
type Error struct {
	// Offset is the position at which the failure was detected.
	Offset int

	// Kind tags the failed expectation.
	Kind ErrorKind

	// Cause is the external error behind the failure, if any.
	Cause error

	fatal bool
}

// NewError creates a recoverable error of the given kind at input.
func NewError(input Input, kind ErrorKind) *Error {
	return &Error{Offset: input.Offset(), Kind: kind}
}

// NewExternalError creates a recoverable error of the given kind at input,
// caused by an error from outside the parser (e.g. a rejected conversion).
func NewExternalError(input Input, kind ErrorKind, cause error) *Error {
	return &Error{Offset: input.Offset(), Kind: kind, Cause: cause}
}

// NewFailure creates a fatal error of the given kind at input.
func NewFailure(input Input, kind ErrorKind) *Error {
	return &Error{Offset: input.Offset(), Kind: kind, fatal: true}
}

func (e *Error) Error() string {
	s := e.Kind.String() + " at offset " + strconv.Itoa(e.Offset)
	if e.Cause != nil {
		s += ": " + e.Cause.Error()
	}
	return s
}

// Unwrap returns the external cause.
func (e *Error) Unwrap() error { return e.Cause }

// Fatal reports whether the failure must propagate unconditionally.
func (e *Error) Fatal() bool { return e.fatal }

// fatalError wraps an arbitrary error as fatal, keeping its chain intact.
type fatalError struct {
	err error
}

func (e *fatalError) Error() string { return e.err.Error() }
func (e *fatalError) Unwrap() error { return e.err }
func (e *fatalError) Fatal() bool   { return true }

// IsFatal reports whether err is a fatal parse failure.
// An error is fatal when any error in its chain has a Fatal method
// returning true.
func IsFatal(err error) bool {
	for err != nil {
		if f, ok := err.(interface{ Fatal() bool }); ok && f.Fatal() {
			return true
		}
		err = errors.Unwrap(err)
	}
	return false
}

// IsRecoverable reports whether err is a non-nil, non-fatal failure.
func IsRecoverable(err error) bool {
	return err != nil && !IsFatal(err)
}

// Escalate turns err into a fatal failure.
// A nil error stays nil and fatal errors are returned as is.
func Escalate(err error) error {
	if err == nil || IsFatal(err) {
		return err
	}
	if pe, ok := err.(*Error); ok {
		cp := *pe
		cp.fatal = true
		return &cp
	}
	return &fatalError{err: err}
}
