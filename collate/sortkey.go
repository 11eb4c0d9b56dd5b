// Copyright 2026 The unicode-go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package collate implements sort-key construction and comparison
// over the collation elements internal/colltab produces, the top-level
// API spec.md §6 names: sort_key, compare, key_bytes.
package collate

import "github.com/unicode-go/uca/internal/colltab"

// Key is an opaque sort key (spec.md §3 SortKey): three parallel
// sequences of 16-bit weights, one per collation strength level. Its
// logical ordering key is Primary ++ [0] ++ Secondary ++ [0] ++
// Tertiary; byte-wise (here, uint16-wise) comparison of that
// concatenation reproduces collation order, with L1 dominating L2
// dominating L3.
type Key struct {
	Primary   []uint16
	Secondary []uint16
	Tertiary  []uint16
}

// SortKey walks s through table (normalizing and matching via
// internal/colltab.Stream) and builds its Key. Each element's weight at
// a given level is appended to that level's sequence only if it is
// non-zero (spec.md §4.4) -- note this filters zero weights at each
// level independently, not the whole element at the first zero field;
// an element with Primary == 0 but Secondary != 0 still contributes to
// the secondary sequence. original_source/src/lib.rs's generate_sort_key
// loop instead `continue`s past an element as soon as one level is
// zero, which would drop a combining accent's secondary weight and
// break spec.md §8's "cáb" ordering; this follows spec.md §4.4 over
// that shortcut.
func SortKey(table *colltab.Table, s string) Key {
	var k Key
	for _, e := range colltab.NewStream(table, s).All() {
		if e.Primary != 0 {
			k.Primary = append(k.Primary, e.Primary)
		}
		if e.Secondary != 0 {
			k.Secondary = append(k.Secondary, e.Secondary)
		}
		if e.Tertiary != 0 {
			k.Tertiary = append(k.Tertiary, e.Tertiary)
		}
	}
	return k
}

// Bytes returns the key's level-separated weight sequence (spec.md
// key_bytes): Primary, a zero sentinel, Secondary, a zero sentinel,
// Tertiary. Byte-wise comparison of two Bytes results reproduces
// collation order; "byte" here is a 16-bit unit, since DUCET weights
// do not fit in 8 bits.
func (k Key) Bytes() []uint16 {
	out := make([]uint16, 0, len(k.Primary)+len(k.Secondary)+len(k.Tertiary)+2)
	out = append(out, k.Primary...)
	out = append(out, 0)
	out = append(out, k.Secondary...)
	out = append(out, 0)
	out = append(out, k.Tertiary...)
	return out
}

// CompareTo lexicographically compares k and other over their Bytes
// representation, returning -1, 0, or 1. This is the SortKey
// comparator of spec.md §2/§4.4: because L1 is a strict prefix of the
// concatenated sequence ahead of any L2/L3 weight, a difference found
// while still inside the primary run decides the comparison before L2
// or L3 are ever consulted -- strength dominance falls out of plain
// lexicographic order over the concatenation, with no special-casing
// needed per level.
func (k Key) CompareTo(other Key) int {
	a, b := k.Bytes(), other.Bytes()
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i] != b[i] {
			if a[i] < b[i] {
				return -1
			}
			return 1
		}
	}
	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return 1
	default:
		return 0
	}
}

// Compare reports the collation order of a and b under table: -1 if a
// sorts before b, 0 if they compare equal (including the case where
// both produce empty element streams), 1 if a sorts after b. This is
// spec.md's compare(table, a, b).
func Compare(table *colltab.Table, a, b string) int {
	return SortKey(table, a).CompareTo(SortKey(table, b))
}
