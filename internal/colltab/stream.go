// Copyright 2026 The unicode-go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colltab

import "golang.org/x/text/unicode/norm"

// Stream incrementally converts a normalized string into batches of
// Elements by repeatedly finding the longest table-covered prefix of
// the remaining NFD scalars (spec.md §4.3). It is the direct analogue
// of the teacher's own internal/colltab.Iter, simplified to the
// algorithm spec.md actually specifies: no CCC-based reordering for
// discontiguous contractions (the "unblocked non-starter" rule, UCA
// §9.1.3, is a declared non-goal), and no Derived Collation Element
// synthesis for code points the table doesn't cover.
type Stream struct {
	table *Table
	runes []rune // the remaining NFD scalars of the input, decoded once up front
	pos   int
}

// NewStream decomposes s to NFD and returns a Stream ready to walk it
// against table. table must outlive the Stream.
func NewStream(table *Table, s string) *Stream {
	nfd := norm.NFD.String(s)
	return &Stream{table: table, runes: []rune(nfd)}
}

// Next produces the next collation-element batch: the Elements
// registered for the longest prefix of the remaining NFD scalars that
// the table covers (spec.md §4.3, steps 1-4). It reports false once
// the input is exhausted.
//
// If the very next scalar has no table entry at all, the stream ends
// silently (step 2: "yield nothing for this code point and return").
// This is a deliberate divergence from full UCA conformance, pending
// Derived Collation Element support (spec.md §7, §9).
func (s *Stream) Next() ([]Element, bool) {
	if s.pos >= len(s.runes) {
		return nil, false
	}

	start := s.pos
	seq := string(s.runes[start])
	elems, ok := s.table.Lookup(seq)
	if !ok {
		s.pos = len(s.runes) // end of stream, per spec.md §4.3 step 2 / §7
		return nil, false
	}
	s.pos++

	for s.pos < len(s.runes) {
		extended := seq + string(s.runes[s.pos])
		e, ok := s.table.Lookup(extended)
		if !ok {
			break
		}
		elems = e
		seq = extended
		s.pos++
	}

	out := make([]Element, len(elems))
	copy(out, elems)
	return out, true
}

// All drains the Stream, returning every Element in input order. It is
// a convenience for callers (such as collate.SortKey) that don't need
// to process the stream incrementally.
func (s *Stream) All() []Element {
	var out []Element
	for {
		batch, ok := s.Next()
		if !ok {
			break
		}
		out = append(out, batch...)
	}
	return out
}
