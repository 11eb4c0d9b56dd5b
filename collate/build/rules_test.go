// Copyright 2026 The unicode-go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package build

import (
	"reflect"
	"testing"
)

func strp(s string) *string { return &s }

func TestParseRulesSingleRules(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want Rule
	}{
		{"set-context", "& a", Rule{Kind: RuleSetContext, Sequence: "a"}},
		{"increment", "< a", Rule{Kind: RuleIncrement, Level: 1, Sequence: "a"}},
		{"multi-increment", "<* abc-z", Rule{
			Kind: RuleMultiIncrement, Level: 1,
			Multisequence: []SequenceElement{
				{Kind: SeqChar, Char: 'a'},
				{Kind: SeqChar, Char: 'b'},
				{Kind: SeqRange, RangeFirst: 'c', RangeLast: 'z'},
			},
		}},
		{"multi-equal", "=* abc-z", Rule{
			Kind: RuleMultiEqual,
			Multisequence: []SequenceElement{
				{Kind: SeqChar, Char: 'a'},
				{Kind: SeqChar, Char: 'b'},
				{Kind: SeqRange, RangeFirst: 'c', RangeLast: 'z'},
			},
		}},
		{"prefix-and-extension", "<<< ab | cd / ef", Rule{
			Kind: RuleIncrement, Level: 3, Sequence: "ab",
			Prefix: strp("cd"), Extension: strp("ef"),
		}},
		{"prefix-and-extension-no-space", "<<< ab|cd/ef", Rule{
			Kind: RuleIncrement, Level: 3, Sequence: "ab",
			Prefix: strp("cd"), Extension: strp("ef"),
		}},
		{"prefix-only", "<<ab|cd", Rule{
			Kind: RuleIncrement, Level: 2, Sequence: "ab",
			Prefix: strp("cd"),
		}},
		{"extension-only", "<<ab/cd", Rule{
			Kind: RuleIncrement, Level: 2, Sequence: "ab",
			Extension: strp("cd"),
		}},
		{"before", "&[before 2] a", Rule{Kind: RuleSetContext, Before: 2, Sequence: "a"}},
		{"before-extra-space", "&    [before      1] a", Rule{Kind: RuleSetContext, Before: 1, Sequence: "a"}},
		{"before-no-space-before-seq", "&[before 3]a", Rule{Kind: RuleSetContext, Before: 3, Sequence: "a"}},
		{"comments", "<< # c1\n ab # c2\n/#c3\ncd", Rule{
			Kind: RuleIncrement, Level: 2, Sequence: "ab", Extension: strp("cd"),
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rules, err := ParseRules(tt.in)
			if err != nil {
				t.Fatalf("ParseRules(%q): %v", tt.in, err)
			}
			if len(rules.Rules) != 1 {
				t.Fatalf("ParseRules(%q): got %d rules, want 1", tt.in, len(rules.Rules))
			}
			if got := rules.Rules[0]; !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ParseRules(%q) = %+v, want %+v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseRulesSequence(t *testing.T) {
	rules, err := ParseRules(`= hello'` + "\\" + `u1111 ` + "\\" + `''world`)
	if err != nil {
		t.Fatalf("ParseRules: %v", err)
	}
	want := "helloᄑ 'world"
	if got := rules.Rules[0].Sequence; got != want {
		t.Errorf("sequence = %q, want %q", got, want)
	}
}

func TestParseRulesMultiple(t *testing.T) {
	rules, err := ParseRules("& a < b\n<< c\n\t\t\t\t<<<\nd <<<< e = f")
	if err != nil {
		t.Fatalf("ParseRules: %v", err)
	}
	want := []Rule{
		{Kind: RuleSetContext, Sequence: "a"},
		{Kind: RuleIncrement, Level: 1, Sequence: "b"},
		{Kind: RuleIncrement, Level: 2, Sequence: "c"},
		{Kind: RuleIncrement, Level: 3, Sequence: "d"},
		{Kind: RuleIncrement, Level: 4, Sequence: "e"},
		{Kind: RuleEqual, Sequence: "f"},
	}
	if !reflect.DeepEqual(rules.Rules, want) {
		t.Errorf("rules = %+v, want %+v", rules.Rules, want)
	}
}

func TestParseRulesSettings(t *testing.T) {
	rules, err := ParseRules("[strength secondary]\n[backwards on]\n& a < b")
	if err != nil {
		t.Fatalf("ParseRules: %v", err)
	}
	want := []Setting{
		{Name: "strength", Value: "secondary"},
		{Name: "backwards", Value: "on"},
	}
	if !reflect.DeepEqual(rules.Settings, want) {
		t.Errorf("settings = %+v, want %+v", rules.Settings, want)
	}
	if len(rules.Rules) != 2 {
		t.Errorf("got %d rules, want 2", len(rules.Rules))
	}
}

func TestParseRulesDuplicateSettingNamesPreserved(t *testing.T) {
	rules, err := ParseRules("[x 1]\n[x 2]")
	if err != nil {
		t.Fatalf("ParseRules: %v", err)
	}
	want := []Setting{{Name: "x", Value: "1"}, {Name: "x", Value: "2"}}
	if !reflect.DeepEqual(rules.Settings, want) {
		t.Errorf("settings = %+v, want %+v", rules.Settings, want)
	}
}

func TestParseRulesTailWhitespaceAndCommentsAreLegal(t *testing.T) {
	if _, err := ParseRules("& a < b   \n# trailing comment\n  "); err != nil {
		t.Errorf("ParseRules: %v", err)
	}
}

func TestParseRulesUnterminatedQuoteFails(t *testing.T) {
	if _, err := ParseRules("= 'abc"); err == nil {
		t.Errorf("ParseRules: want error for unterminated quote, got nil")
	}
}

func TestParseRulesUnrecognizedByteFails(t *testing.T) {
	if _, err := ParseRules("& a ~ garbage"); err == nil {
		t.Errorf("ParseRules: want error for unrecognized rule start, got nil")
	}
}

func TestParseRulesDeterministic(t *testing.T) {
	const src = "[strength tertiary]\n&a<b<<c<<<d/e=*f-h"
	r1, err1 := ParseRules(src)
	r2, err2 := ParseRules(src)
	if err1 != nil || err2 != nil {
		t.Fatalf("ParseRules: %v, %v", err1, err2)
	}
	if !reflect.DeepEqual(r1, r2) {
		t.Errorf("parse not deterministic: %+v != %+v", r1, r2)
	}
}
