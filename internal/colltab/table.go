// Copyright 2026 The unicode-go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colltab

import (
	"strconv"
	"strings"
)

// Table is the Default Unicode Collation Element Table (or a
// tailoring's future replacement for it): an immutable mapping from a
// code-point-sequence key (expected to be in NFD) to the non-empty,
// ordered list of Elements it expands to.
//
// Table is built once by BuildTable and never mutated afterward;
// applying a tailoring to produce a new Table is a declared non-goal
// (spec.md §1) and is left for a future package.
type Table struct {
	entries map[string][]Element
	maxKey  int // length in runes of the longest key, reported by MaxKeyLen
}

// Lookup returns the Elements registered for the exact key s, if any.
func (t *Table) Lookup(s string) ([]Element, bool) {
	es, ok := t.entries[s]
	return es, ok
}

// MaxKeyLen returns the length, in runes, of the table's longest key.
// Neither Lookup nor Stream consults it: lookup is exact-key, and
// Stream extends its key one rune at a time until a lookup fails.
func (t *Table) MaxKeyLen() int {
	return t.maxKey
}

// Len reports the number of distinct keys in the table.
func (t *Table) Len() int {
	return len(t.entries)
}

// BuildTable parses the full text of a DUCET-format table (spec.md
// §4.1, §6) and returns the resulting Table. The entire input must be
// consumed; any malformed row aborts with a *ParseError carrying the
// offending byte offset, and no partial table is ever returned.
func BuildTable(text string) (*Table, error) {
	c := newCursor(text)
	t := &Table{entries: make(map[string][]Element)}

	for !c.done() {
		switch {
		case c.consumeByte('\n'):
			// blank line

		case strings.HasPrefix(c.rest, "#"):
			if err := skipLineToEOL(c); err != nil {
				return nil, err
			}

		case strings.HasPrefix(c.rest, "@version"):
			if err := skipDirective(c, "@version"); err != nil {
				return nil, err
			}

		case strings.HasPrefix(c.rest, "@implicitweights"):
			// Read but not yet interpreted: spec.md §4.1, §9.
			if err := skipDirective(c, "@implicitweights"); err != nil {
				return nil, err
			}

		default:
			key, elems, err := parseRow(c)
			if err != nil {
				return nil, err
			}
			t.entries[key] = elems // duplicate keys: last occurrence wins
			if n := runeLen(key); n > t.maxKey {
				t.maxKey = n
			}
		}
	}
	return t, nil
}

func runeLen(s string) int {
	n := 0
	for range s {
		n++
	}
	return n
}

// skipLineToEOL consumes a '#'-comment line, including its trailing
// newline if present (the final line of a well-formed table still
// requires one, per spec.md §6, but we don't fail solely for a missing
// trailing newline on a comment line since the data is otherwise
// fully consumed).
func skipLineToEOL(c *cursor) error {
	for i := 0; i < len(c.rest); i++ {
		if c.rest[i] == '\n' {
			c.rest = c.rest[i+1:]
			return nil
		}
	}
	c.rest = ""
	return nil
}

func skipDirective(c *cursor, tag string) error {
	c.rest = c.rest[len(tag):]
	return skipLineToEOL(c)
}

// parseRow parses one data row:
//
//	<hex-cp> [<hex-cp> ...] ; SORTKEY+ # comment \n
//
// into its code-point-sequence key and its Element list.
func parseRow(c *cursor) (string, []Element, error) {
	key, err := parseCodePoints(c)
	if err != nil {
		return "", nil, err
	}

	skipASCIISpace(c)
	if !c.consumeByte(';') {
		return "", nil, c.errorf("expected ';' after code points")
	}
	skipASCIISpace(c)

	var elems []Element
	for {
		skipASCIISpace(c)
		b, ok := c.peekByte()
		if !ok || b != '[' {
			break
		}
		e, err := parseSortKeyBracket(c)
		if err != nil {
			return "", nil, err
		}
		elems = append(elems, e)
	}
	if len(elems) == 0 {
		return "", nil, c.errorf("row has no sort-key brackets")
	}

	skipASCIISpace(c)
	if !c.consumeByte('#') {
		return "", nil, c.errorf("expected '#' terminal comment")
	}
	eol := strings.IndexByte(c.rest, '\n')
	if eol < 0 {
		c.rest = ""
		return "", nil, c.errorf("data row is missing its terminating newline")
	}
	c.rest = c.rest[eol+1:]

	return key, elems, nil
}

func skipASCIISpace(c *cursor) {
	n := 0
	for n < len(c.rest) && c.rest[n] == ' ' {
		n++
	}
	c.rest = c.rest[n:]
}

// parseCodePoints parses "HEX (' ' HEX)*" into the string formed by
// the corresponding Unicode scalars (the table's key).
func parseCodePoints(c *cursor) (string, error) {
	var b strings.Builder
	for {
		digits, ok := c.scanHexDigits(0)
		if !ok {
			return "", c.errorf("expected hex code point")
		}
		r, ok := ParseHexRune(digits)
		if !ok {
			return "", c.errorf("invalid code point %q", digits)
		}
		b.WriteRune(r)

		// A single space separates code points; any other run of
		// spaces, or a space not followed by another hex digit,
		// belongs to the ' * ;' separator and is left for the caller.
		if len(c.rest) < 2 || c.rest[0] != ' ' || !isASCIIHex(c.rest[1]) {
			return b.String(), nil
		}
		c.rest = c.rest[1:]
	}
}

// parseSortKeyBracket parses one "[<var><L1>.<L2>.<L3>]" group.
// Exactly 3 dot-separated fields are required; a row with any other
// count fails the parse, per spec.md §4.1.
func parseSortKeyBracket(c *cursor) (Element, error) {
	if !c.consumeByte('[') {
		return Element{}, c.errorf("expected '['")
	}
	variable, err := parseVariableFlag(c)
	if err != nil {
		return Element{}, err
	}

	var levels []uint16
	for {
		digits, ok := c.scanHexDigits(0)
		if !ok {
			return Element{}, c.errorf("expected hex weight field")
		}
		v, ok := parseUint16Hex(digits)
		if !ok {
			return Element{}, c.errorf("invalid weight field %q", digits)
		}
		levels = append(levels, v)
		if !c.consumeByte('.') {
			break
		}
	}
	if !c.consumeByte(']') {
		return Element{}, c.errorf("expected ']'")
	}
	if len(levels) != 3 {
		return Element{}, c.errorf("sort-key bracket has %d levels, want 3", len(levels))
	}
	return Element{
		Variable:  variable,
		Primary:   levels[0],
		Secondary: levels[1],
		Tertiary:  levels[2],
	}, nil
}

func parseVariableFlag(c *cursor) (bool, error) {
	b, ok := c.peekByte()
	if !ok {
		return false, c.errorf("expected '*' or '.' variable flag")
	}
	switch b {
	case '*':
		c.rest = c.rest[1:]
		return true, nil
	case '.':
		c.rest = c.rest[1:]
		return false, nil
	default:
		return false, c.errorf("expected '*' or '.' variable flag, got %q", b)
	}
}

// parseUint16Hex parses a DUCET weight field. A weight is a plain
// 16-bit integer, not a code point: values in the U+D800-U+DFFF
// surrogate band are legal weights and must not be rejected the way
// ParseHexRune (which enforces utf8.ValidRune) would reject them.
func parseUint16Hex(digits string) (uint16, bool) {
	n, err := strconv.ParseUint(digits, 16, 16)
	if err != nil {
		return 0, false
	}
	return uint16(n), true
}
