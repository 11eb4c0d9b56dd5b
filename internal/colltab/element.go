// Copyright 2026 The unicode-go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package colltab implements the low-level pieces of the Unicode
// Collation Algorithm: the DUCET table format, the table type itself,
// and the element stream that walks a normalized string through it.
//
// Tailoring (CLDR rule parsing) lives one level up, in collate/build,
// which defines its own Rule/SequenceElement data model and uses
// nothing here but the exported lexer helpers and ParseError;
// sort-key construction lives in collate, since it only needs the
// Element values this package produces.
package colltab

import "fmt"

// Element is a single weighted collation element: one entry of the
// three-level (primary, secondary, tertiary) weight the Unicode
// Collation Algorithm assigns to a code-point sequence.
//
// Variable records whether the element participates in variable-weight
// processing (the '*' flag in DUCET source syntax). The flag is parsed
// and retained but never acted on: applying variable-weight handling
// is a declared non-goal.
type Element struct {
	Variable  bool
	Primary   uint16
	Secondary uint16
	Tertiary  uint16
}

func (e Element) String() string {
	v := "."
	if e.Variable {
		v = "*"
	}
	return fmt.Sprintf("[%s%04X.%04X.%04X]", v, e.Primary, e.Secondary, e.Tertiary)
}

// ParseError reports a malformed DUCET row or CLDR rule at a specific
// byte offset into the original input. Parsers never return a partial
// result alongside a ParseError.
type ParseError struct {
	Offset int
	Input  string // the full text that was being parsed
	Msg    string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("colltab: %s at offset %d", e.Msg, e.Offset)
}

func newParseError(input string, rest string, msg string) *ParseError {
	return &ParseError{
		Offset: len(input) - len(rest),
		Input:  input,
		Msg:    msg,
	}
}
