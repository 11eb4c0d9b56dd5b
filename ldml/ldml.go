// Copyright 2026 The unicode-go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ldml adapts the real LDML/CLDR XML reader
// (golang.org/x/text/unicode/cldr) into the narrow output contract
// spec.md §6 names for "LDML intake": (locale-identity,
// [(collation-type, rule-text)]). The XML walk itself is explicitly
// out of scope for this engine (spec.md §1); this package exists only
// to give that external-collaborator boundary a runnable shape, and to
// hand collate/build.ParseRules exactly the concatenated rule text it
// expects.
package ldml

import (
	"fmt"

	"golang.org/x/text/unicode/cldr"
)

// Identity is the locale-identity half of the intake contract:
// spec.md §3's {version, language, territory?}.
type Identity struct {
	Version   string
	Language  string
	Territory string // empty if the LDML document had none
}

// Collation is one (collation-type, rule-text) pair: a single
// collation's <cr> CDATA fragments, already concatenated with no
// separator in source order (spec.md §6). A <collation> element may
// carry more than one <cr> child; original_source/src/ldml.rs models
// that as Vec<String>, so we join here rather than assume exactly one
// fragment per collation (SPEC_FULL.md §5).
type Collation struct {
	Type  string
	Rules string
}

// Locale is the fully-adapted intake value: an identity plus every
// collation type the LDML document defines for it.
type Locale struct {
	Identity   Identity
	Collations []Collation
}

// FromLDML converts a parsed *cldr.LDML (as produced by
// golang.org/x/text/unicode/cldr's real Decoder) into a Locale. It
// returns an error only if the document has no <identity><language>
// element, which every valid LDML document must carry.
func FromLDML(doc *cldr.LDML) (Locale, error) {
	if doc == nil || doc.Identity == nil || doc.Identity.Language == nil {
		return Locale{}, fmt.Errorf("ldml: document has no identity/language")
	}

	id := Identity{Language: doc.Identity.Language.Type}
	if doc.Identity.Version != nil {
		id.Version = doc.Identity.Version.Number
	}
	if doc.Identity.Territory != nil {
		id.Territory = doc.Identity.Territory.Type
	}

	loc := Locale{Identity: id}
	if doc.Collations != nil {
		for _, c := range doc.Collations.Collation {
			if c == nil {
				continue
			}
			loc.Collations = append(loc.Collations, Collation{
				Type:  c.Type,
				Rules: concatRules(c),
			})
		}
	}
	return loc, nil
}

// concatRules joins every <cr> CDATA fragment of a collation with no
// separator, per spec.md §6's "concatenates the rule strings per
// collation (no separator inserted)". Each <cr> is read through
// GetCommon().Data(), the same accessor the cldr package's own
// consumers use to pull an element's character data (see
// stringSet.parseKeyed in the x/text tooling this package descends
// from) rather than a field this package would have to name itself.
func concatRules(c *cldr.Collation) string {
	out := ""
	for _, cr := range c.Cr {
		out += cr.GetCommon().Data()
	}
	return out
}
