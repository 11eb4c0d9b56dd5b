// Copyright 2026 The unicode-go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package build

import "fmt"

// String renders a Rule in a form close to its CLDR source syntax,
// useful for test failure messages and debugging a parsed tailoring.
// The switch is exhaustive and panics on an unrecognized Kind rather
// than silently rendering nothing, per spec.md §9's guidance on
// discriminated unions: "never type-code strings without an
// exhaustive switch check."
func (r Rule) String() string {
	switch r.Kind {
	case RuleSetContext:
		if r.Before != 0 {
			return fmt.Sprintf("&[before %d] %s", r.Before, r.Sequence)
		}
		return fmt.Sprintf("& %s", r.Sequence)
	case RuleEqual:
		return fmt.Sprintf("= %s", r.Sequence)
	case RuleMultiEqual:
		return fmt.Sprintf("=* %s", formatMultisequence(r.Multisequence))
	case RuleIncrement:
		s := fmt.Sprintf("%s %s", levelOperator(r.Level), r.Sequence)
		if r.Prefix != nil {
			s += " | " + *r.Prefix
		}
		if r.Extension != nil {
			s += " / " + *r.Extension
		}
		return s
	case RuleMultiIncrement:
		return fmt.Sprintf("%s* %s", levelOperator(r.Level), formatMultisequence(r.Multisequence))
	default:
		panic(fmt.Sprintf("build: unhandled Rule kind %d", r.Kind))
	}
}

func levelOperator(level int) string {
	out := ""
	for i := 0; i < level; i++ {
		out += "<"
	}
	return out
}

func formatMultisequence(elems []SequenceElement) string {
	out := ""
	for _, e := range elems {
		switch e.Kind {
		case SeqChar:
			out += string(e.Char)
		case SeqRange:
			out += fmt.Sprintf("%c-%c", e.RangeFirst, e.RangeLast)
		default:
			panic(fmt.Sprintf("build: unhandled SequenceElement kind %d", e.Kind))
		}
	}
	return out
}
