// Copyright 2026 The unicode-go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colltab

import (
	"fmt"
	"strings"
	"testing"
)

func TestBuildTableBasicRow(t *testing.T) {
	text := "0061  ; [.0101.0020.0002] # LATIN SMALL LETTER A\n"
	tbl, err := BuildTable(text)
	if err != nil {
		t.Fatalf("BuildTable: %v", err)
	}
	elems, ok := tbl.Lookup("a")
	if !ok {
		t.Fatalf("lookup %q: not found", "a")
	}
	want := []Element{{Variable: false, Primary: 0x0101, Secondary: 0x0020, Tertiary: 0x0002}}
	if len(elems) != 1 || elems[0] != want[0] {
		t.Errorf("got %+v, want %+v", elems, want)
	}
}

func TestBuildTableMultiCodePointKey(t *testing.T) {
	text := "0063 0068 ; [.0200.0020.0002][.0300.0020.0002] # ch DIGRAPH\n"
	tbl, err := BuildTable(text)
	if err != nil {
		t.Fatalf("BuildTable: %v", err)
	}
	elems, ok := tbl.Lookup("ch")
	if !ok || len(elems) != 2 {
		t.Fatalf("lookup %q = %+v, %v; want 2 elements", "ch", elems, ok)
	}
}

func TestBuildTableVariableFlag(t *testing.T) {
	text := "002C ; [*0100.0020.0002] # COMMA\n"
	tbl, err := BuildTable(text)
	if err != nil {
		t.Fatalf("BuildTable: %v", err)
	}
	elems, _ := tbl.Lookup(",")
	if len(elems) != 1 || !elems[0].Variable {
		t.Errorf("variable flag not parsed: %+v", elems)
	}
}

func TestBuildTableDirectivesAndComments(t *testing.T) {
	text := "" +
		"@version 15.0.0\n" +
		"\n" +
		"# a standalone comment\n" +
		"@implicitweights 17000..18AFF; FB00\n" +
		"0061 ; [.0101.0020.0002] # a\n"
	tbl, err := BuildTable(text)
	if err != nil {
		t.Fatalf("BuildTable: %v", err)
	}
	if tbl.Len() != 1 {
		t.Errorf("Len() = %d, want 1", tbl.Len())
	}
}

func TestBuildTableDuplicateKeyLastWins(t *testing.T) {
	text := "" +
		"0061 ; [.0101.0020.0002] # a first\n" +
		"0061 ; [.0101.0020.0009] # a second\n"
	tbl, err := BuildTable(text)
	if err != nil {
		t.Fatalf("BuildTable: %v", err)
	}
	elems, _ := tbl.Lookup("a")
	if len(elems) != 1 || elems[0].Tertiary != 0x0009 {
		t.Errorf("duplicate key did not keep last occurrence: %+v", elems)
	}
}

func TestBuildTableWrongLevelCountFails(t *testing.T) {
	text := "0061 ; [.0101.0020] # only two levels\n"
	if _, err := BuildTable(text); err == nil {
		t.Fatalf("BuildTable: want error for 2-level bracket, got nil")
	}
}

func TestBuildTableMalformedRowReportsOffset(t *testing.T) {
	text := "0061 ; [.0101.0020.0002\n" // missing closing ']'
	_, err := BuildTable(text)
	if err == nil {
		t.Fatalf("BuildTable: want error, got nil")
	}
	pe, ok := err.(*ParseError)
	if !ok {
		t.Fatalf("error type = %T, want *ParseError", err)
	}
	if pe.Offset <= 0 || pe.Offset > len(text) {
		t.Errorf("Offset = %d out of range [1, %d]", pe.Offset, len(text))
	}
}

func TestBuildTableRunsOfBrackets(t *testing.T) {
	// bracket groups may run together with optional spaces between them
	text := "0041 ; [.0101.0020.0008] [.0000.0000.0002] # A with two CEs\n"
	tbl, err := BuildTable(text)
	if err != nil {
		t.Fatalf("BuildTable: %v", err)
	}
	elems, ok := tbl.Lookup("A")
	if !ok || len(elems) != 2 {
		t.Fatalf("lookup %q = %+v, %v; want 2 elements", "A", elems, ok)
	}
}

func TestBuildTableMustConsumeAllInput(t *testing.T) {
	text := "0061 ; [.0101.0020.0002] # a\nJUNK THAT IS NOT A ROW"
	if _, err := BuildTable(text); err == nil {
		t.Fatalf("BuildTable: want error for trailing garbage, got nil")
	}
}

func TestBuildTableLargeSample(t *testing.T) {
	var b strings.Builder
	b.WriteString("@version 15.0.0\n")
	for i := 0; i < 50; i++ {
		fmt.Fprintf(&b, "%04X ; [.0100.0020.0002] # synthetic\n", 0x4E00+i)
	}
	tbl, err := BuildTable(b.String())
	if err != nil {
		t.Fatalf("BuildTable: %v", err)
	}
	if tbl.Len() != 50 {
		t.Errorf("Len() = %d, want 50", tbl.Len())
	}
}
