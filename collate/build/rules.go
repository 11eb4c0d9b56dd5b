// Copyright 2026 The unicode-go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package build parses CLDR collation tailoring rule text (the
// language used inside an LDML <collation><cr> element) into a
// Rules value. This is the hardest subsystem of the engine:
// reserved-character handling, quoting, escape sequences, the
// multi-operator rule syntax, comments, range sequences, and
// prefix/extension contexts (spec.md §4.2).
//
// Applying the parsed rules to tailor a colltab.Table is a declared
// non-goal (spec.md §1): this package only produces the data model.
package build

import (
	"fmt"
	"unicode/utf8"

	"github.com/unicode-go/uca/internal/colltab"
)

func decodeRuneInString(s string) (rune, int) {
	return utf8.DecodeRuneInString(s)
}

// RuleKind discriminates the tagged-union Rule variants named in
// spec.md §3. A discriminator field plus an exhaustive switch in every
// consumer is used in place of a sum type, per spec.md §9's guidance
// for languages without first-class tagged unions.
type RuleKind int

const (
	RuleSetContext RuleKind = iota
	RuleEqual
	RuleMultiEqual
	RuleIncrement
	RuleMultiIncrement
)

// Rule is one tailoring instruction. Which fields are meaningful
// depends on Kind; see the RuleKind constants.
type Rule struct {
	Kind RuleKind

	// RuleSetContext
	Before int // 1, 2, or 3; 0 means "not specified"

	// RuleSetContext, RuleEqual, RuleIncrement
	Sequence string

	// RuleMultiEqual, RuleMultiIncrement
	Multisequence []SequenceElement

	// RuleIncrement, RuleMultiIncrement
	Level int // 1..4

	// RuleIncrement
	Prefix    *string
	Extension *string
}

// SequenceElementKind discriminates SequenceElement.
type SequenceElementKind int

const (
	SeqChar SequenceElementKind = iota
	SeqRange
)

// SequenceElement is one item of a multisequence: either a single
// legal character, or an inclusive range of them. Quoting and escapes
// never apply inside a multisequence (spec.md §4.2): this is a
// deliberate CLDR syntax choice, not an omission.
type SequenceElement struct {
	Kind       SequenceElementKind
	Char       rune // SeqChar
	RangeFirst rune // SeqRange
	RangeLast  rune // SeqRange
}

// Setting is one [name value] tailoring setting. Both unique and
// duplicate names are accepted; order is preserved verbatim.
type Setting struct {
	Name  string
	Value string
}

// Rules is the complete parsed tailoring: its settings followed by its
// rule list, in source order.
type Rules struct {
	Settings []Setting
	Rules    []Rule
}

// ParseRules parses the full text of a CLDR tailoring (spec.md §4.2,
// §6). The entire input must be consumed up to trailing whitespace and
// comments, which are legal. Any unrecognized byte or unterminated
// quoted span aborts the parse with a *colltab.ParseError carrying the
// offending byte offset.
func ParseRules(text string) (*Rules, error) {
	p := &parser{text: text, rest: text}

	p.skipWS()
	settings, err := p.parseSettings()
	if err != nil {
		return nil, err
	}
	p.skipWS()

	var rules []Rule
	for {
		p.skipWS()
		if p.done() {
			break
		}
		r, err := p.parseRule()
		if err != nil {
			return nil, err
		}
		rules = append(rules, r)
	}

	return &Rules{Settings: settings, Rules: rules}, nil
}

// parser is a small recursive-descent cursor over the rule text, in
// the style of golang.org/x/text/language's scanner (an immutable
// input plus a consumed-from-the-front remainder), extended with the
// lexer primitives colltab exports for hex/escape/whitespace handling
// shared with the DUCET parser.
type parser struct {
	text string
	rest string
}

func (p *parser) done() bool { return len(p.rest) == 0 }

func (p *parser) errorf(format string, args ...interface{}) error {
	return &colltab.ParseError{
		Offset: len(p.text) - len(p.rest),
		Input:  p.text,
		Msg:    fmt.Sprintf(format, args...),
	}
}

func (p *parser) peek() (byte, bool) {
	if p.done() {
		return 0, false
	}
	return p.rest[0], true
}

func (p *parser) consume(b byte) bool {
	if c, ok := p.peek(); ok && c == b {
		p.rest = p.rest[1:]
		return true
	}
	return false
}

func (p *parser) hasPrefix(s string) bool {
	return len(p.rest) >= len(s) && p.rest[:len(s)] == s
}

func (p *parser) skipWS() {
	p.rest = colltab.SkipSpaceAndComments(p.rest)
}

// --- settings: ('[' ident ' '+ ident ']' WS?)* ---

func (p *parser) parseSettings() ([]Setting, error) {
	var settings []Setting
	for {
		p.skipWS()
		if b, ok := p.peek(); !ok || b != '[' {
			return settings, nil
		}
		s, err := p.parseSetting()
		if err != nil {
			return nil, err
		}
		settings = append(settings, s)
	}
}

func (p *parser) parseSetting() (Setting, error) {
	if !p.consume('[') {
		return Setting{}, p.errorf("expected '['")
	}
	name, ok := p.scanIdentifier()
	if !ok {
		return Setting{}, p.errorf("expected setting name")
	}
	if !p.scanSpace1() {
		return Setting{}, p.errorf("expected space between setting name and value")
	}
	value, ok := p.scanIdentifier()
	if !ok {
		return Setting{}, p.errorf("expected setting value")
	}
	if !p.consume(']') {
		return Setting{}, p.errorf("expected ']' to close setting")
	}
	return Setting{Name: name, Value: value}, nil
}

// scanIdentifier consumes a run of ASCII alphanumerics and '-'.
func (p *parser) scanIdentifier() (string, bool) {
	n := 0
	for n < len(p.rest) && isIdentByte(p.rest[n]) {
		n++
	}
	if n == 0 {
		return "", false
	}
	s := p.rest[:n]
	p.rest = p.rest[n:]
	return s, true
}

func isIdentByte(b byte) bool {
	return 'a' <= b && b <= 'z' || 'A' <= b && b <= 'Z' || '0' <= b && b <= '9' || b == '-'
}

// scanSpace1 consumes one-or-more ASCII whitespace bytes (space, tab,
// newline, carriage return, vertical tab, form feed) (the grammar's
// space1, which — unlike WS — never absorbs comments: settings and
// [before N] brackets only tolerate plain whitespace, per spec.md
// §4.2's "Whitespace tolerance" note).
func (p *parser) scanSpace1() bool {
	n := 0
	for n < len(p.rest) && isPlainSpace(p.rest[n]) {
		n++
	}
	if n == 0 {
		return false
	}
	p.rest = p.rest[n:]
	return true
}

func isPlainSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r' || b == '\v' || b == '\f'
}

// --- rule := multi_increment | increment | multi_equal | equal | set_context ---
//
// Alternation order matters (spec.md §4.2): multi_increment must be
// tried before increment so "<*" doesn't lex as "<" then a stray "*",
// and multi_equal before equal for the same reason with "=*".

func (p *parser) parseRule() (Rule, error) {
	if p.hasPrefix("&") {
		return p.parseSetContext()
	}
	if p.hasPrefix("=*") {
		return p.parseMultiEqual()
	}
	if p.hasPrefix("=") {
		return p.parseEqual()
	}
	if p.hasPrefix("<") {
		return p.parseIncrementOrMulti()
	}
	return Rule{}, p.errorf("expected a rule ('&', '<', or '=')")
}

func (p *parser) parseSetContext() (Rule, error) {
	p.consume('&')
	p.skipWS()

	var before int
	if p.hasPrefix("[") {
		b, err := p.parseBefore()
		if err != nil {
			return Rule{}, err
		}
		before = b
		p.skipWS()
	}

	seq, err := p.parseSequence()
	if err != nil {
		return Rule{}, err
	}
	return Rule{Kind: RuleSetContext, Before: before, Sequence: seq}, nil
}

// parseBefore parses "[before 1|2|3]".
func (p *parser) parseBefore() (int, error) {
	if !p.consume('[') {
		return 0, p.errorf("expected '['")
	}
	if !p.hasPrefix("before") {
		return 0, p.errorf("expected 'before'")
	}
	p.rest = p.rest[len("before"):]
	if !p.scanSpace1() {
		return 0, p.errorf("expected space after 'before'")
	}
	b, ok := p.peek()
	if !ok || b < '1' || b > '3' {
		return 0, p.errorf("expected strength digit 1-3 after 'before'")
	}
	p.rest = p.rest[1:]
	if !p.consume(']') {
		return 0, p.errorf("expected ']' to close [before N]")
	}
	return int(b - '0'), nil
}

func (p *parser) parseEqual() (Rule, error) {
	p.consume('=')
	p.skipWS()
	seq, err := p.parseSequence()
	if err != nil {
		return Rule{}, err
	}
	return Rule{Kind: RuleEqual, Sequence: seq}, nil
}

func (p *parser) parseMultiEqual() (Rule, error) {
	p.rest = p.rest[len("=*"):]
	p.skipWS()
	ms, err := p.parseMultisequence()
	if err != nil {
		return Rule{}, err
	}
	return Rule{Kind: RuleMultiEqual, Multisequence: ms}, nil
}

// parseIncrementOrMulti parses 1-4 '<' characters, then dispatches on
// whether a '*' (batch form) follows.
func (p *parser) parseIncrementOrMulti() (Rule, error) {
	level, err := p.scanLevel()
	if err != nil {
		return Rule{}, err
	}
	if p.consume('*') {
		p.skipWS()
		ms, err := p.parseMultisequence()
		if err != nil {
			return Rule{}, err
		}
		return Rule{Kind: RuleMultiIncrement, Level: level, Multisequence: ms}, nil
	}

	p.skipWS()
	seq, err := p.parseSequence()
	if err != nil {
		return Rule{}, err
	}

	var prefix, extension *string
	p.skipWS()
	if p.consume('|') {
		p.skipWS()
		pre, err := p.parseSequence()
		if err != nil {
			return Rule{}, err
		}
		prefix = &pre
		p.skipWS()
	}
	if p.consume('/') {
		p.skipWS()
		ext, err := p.parseSequence()
		if err != nil {
			return Rule{}, err
		}
		extension = &ext
	}

	return Rule{
		Kind:      RuleIncrement,
		Level:     level,
		Sequence:  seq,
		Prefix:    prefix,
		Extension: extension,
	}, nil
}

// scanLevel consumes 1-4 consecutive '<' characters and returns their
// count as the rule's strength level.
func (p *parser) scanLevel() (int, error) {
	n := 0
	for n < 4 && p.hasPrefix("<") {
		p.rest = p.rest[1:]
		n++
	}
	if n == 0 {
		return 0, p.errorf("expected '<'")
	}
	return n, nil
}

// --- sequence := (unreserved-run | quoted-span)+ ---

func (p *parser) parseSequence() (string, error) {
	var out []rune
	matched := false
	for {
		if p.hasPrefix("'") {
			s, err := p.parseQuotedSpan()
			if err != nil {
				return "", err
			}
			out = append(out, []rune(s)...)
			matched = true
			continue
		}
		r, sz, ok := p.peekUnreservedRune()
		if !ok {
			break
		}
		out = append(out, r)
		p.rest = p.rest[sz:]
		matched = true
	}
	if !matched {
		return "", p.errorf("expected a sequence")
	}
	return string(out), nil
}

func (p *parser) peekUnreservedRune() (r rune, size int, ok bool) {
	if p.done() {
		return 0, 0, false
	}
	r, size = decodeRuneInString(p.rest)
	if colltab.IsReservedRune(r) {
		return 0, 0, false
	}
	return r, size, true
}

// parseQuotedSpan parses "'...'" where every character except '\\' and
// '\'' passes through literally, and '\\' introduces an escape
// (spec.md §4.2 escape table).
func (p *parser) parseQuotedSpan() (string, error) {
	if !p.consume('\'') {
		return "", p.errorf("expected \"'\"")
	}
	var out []rune
	for {
		b, ok := p.peek()
		if !ok {
			return "", p.errorf("unterminated quoted span")
		}
		if b == '\'' {
			p.rest = p.rest[1:]
			return string(out), nil
		}
		if b == '\\' {
			p.rest = p.rest[1:]
			r, rest, ok := colltab.DecodeEscape(p.rest)
			if !ok {
				return "", p.errorf("invalid escape sequence")
			}
			p.rest = rest
			out = append(out, r)
			continue
		}
		r, sz := decodeRuneInString(p.rest)
		out = append(out, r)
		p.rest = p.rest[sz:]
	}
}

// --- multisequence := (range | char)+ ; no quoting/escapes ---

func (p *parser) parseMultisequence() ([]SequenceElement, error) {
	var elems []SequenceElement
	for {
		r1, sz, ok := p.peekLegalRune()
		if !ok {
			break
		}
		p.rest = p.rest[sz:]
		if p.consume('-') {
			r2, sz2, ok := p.peekLegalRune()
			if !ok {
				return nil, p.errorf("expected range end character after '-'")
			}
			p.rest = p.rest[sz2:]
			elems = append(elems, SequenceElement{Kind: SeqRange, RangeFirst: r1, RangeLast: r2})
			continue
		}
		elems = append(elems, SequenceElement{Kind: SeqChar, Char: r1})
	}
	if len(elems) == 0 {
		return nil, p.errorf("expected a multisequence")
	}
	return elems, nil
}

func (p *parser) peekLegalRune() (r rune, size int, ok bool) {
	if p.done() {
		return 0, 0, false
	}
	r, size = decodeRuneInString(p.rest)
	if colltab.IsReservedRune(r) {
		return 0, 0, false
	}
	return r, size, true
}
