// Copyright 2024 The mdlex Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//		 https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

package mdlex

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

type lexTest struct {
	input string
	want  []Token
}

func tok(value string, kind TokenKind) Token {
	return newToken(value, kind)
}

// linkTok builds an expected link-family token. The attribute slots
// follow the kind's schema: name/location/title for Image, Link and
// QuickLink; name/tag for RefLink; tag/location/title for RefLinkDef.
func linkTok(value string, kind TokenKind, s1, s2, s3 string) Token {
	t := newToken(value, kind)
	switch kind {
	case Image, Link, QuickLink:
		t.insertDetail("name", s1)
		t.insertDetail("location", s2)
		t.insertDetail("title", s3)
	case RefLink:
		t.insertDetail("name", s1)
		t.insertDetail("ptr", s2)
	case RefLinkDef:
		t.insertDetail("ptr", s1)
		t.insertDetail("location", s2)
		t.insertDetail("title", s3)
	}
	return t
}

func runLexTests(t *testing.T, tests []lexTest) {
	t.Helper()
	for _, test := range tests {
		got := Lex(test.input)
		if diff := cmp.Diff(test.want, got, cmp.AllowUnexported(Token{})); diff != "" {
			t.Errorf("Lex(%q) mismatch (-want +got):\n%s", test.input, diff)
		}
	}
}

func TestNormalText(t *testing.T) {
	runLexTests(t, []lexTest{
		{
			"这是一个学习 markdown 解析的项目。\n",
			[]Token{tok("这是一个学习 markdown 解析的项目。", Text)},
		},
		{
			"--- x\n",
			[]Token{tok("--- x", Text)},
		},
		{
			"___ 这不是一个分界线\n",
			[]Token{tok("___", Text), tok(" 这不是一个分界线", Text)},
		},
		{
			"#这不是标题\n",
			[]Token{tok("#这不是标题", Text)},
		},
		{
			"##这也不是标题\n",
			[]Token{tok("##这也不是标题", Text)},
		},
		{
			">这不是引用\n",
			[]Token{tok(">这不是引用", Text)},
		},
		{
			"1.这也不是列表\n",
			[]Token{tok("1.这也不是列表", Text)},
		},
		{
			"***xxxx\n",
			[]Token{tok("***", Text), tok("xxxx", Text)},
		},
	})
}

func TestTitle(t *testing.T) {
	runLexTests(t, []lexTest{
		{"# header1\n", []Token{tok("#", TitleMark), tok("header1", Text)}},
		{"## header2\n", []Token{tok("##", TitleMark), tok("header2", Text)}},
		{"### header3 header3\n", []Token{tok("###", TitleMark), tok("header3 header3", Text)}},
		{"####  header4\n", []Token{tok("####", TitleMark), tok(" header4", Text)}},
		{"# \n", []Token{tok("#", TitleMark)}},
		{"#  \n", []Token{tok("#", TitleMark)}},
		{"##### header5\n", []Token{tok("##### header5", Text)}},
	})
}

func TestQuote(t *testing.T) {
	runLexTests(t, []lexTest{
		{
			"> Go, an open-source programming language.\n",
			[]Token{tok(">", QuoteMark), tok("Go, an open-source programming language.", Text)},
		},
	})
}

func TestUnorderedList(t *testing.T) {
	runLexTests(t, []lexTest{
		{"* item\n", []Token{tok("*", UnorderedMark), tok("item", Text)}},
		{"- item\n", []Token{tok("-", UnorderedMark), tok("item", Text)}},
		{"+ item\n", []Token{tok("+", UnorderedMark), tok("item", Text)}},
	})
}

func TestOrderedList(t *testing.T) {
	runLexTests(t, []lexTest{
		{"1. first\n", []Token{tok("1.", OrderedMark), tok("first", Text)}},
		{"2. second\n", []Token{tok("2.", OrderedMark), tok("second", Text)}},
		{"10. tenth\n", []Token{tok("10.", OrderedMark), tok("tenth", Text)}},
		{"100. hundredth\n", []Token{tok("100.", OrderedMark), tok("hundredth", Text)}},
		{"999. last\n", []Token{tok("999.", OrderedMark), tok("last", Text)}},
		{"0. zero\n", []Token{tok("0. zero", Text)}},
		{"1234. long\n", []Token{tok("1234. long", Text)}},
	})
}

func TestCodeBlockMark(t *testing.T) {
	runLexTests(t, []lexTest{
		{"```\n", []Token{tok("```", CodeBlockMark)}},
		{"```go\n", []Token{tok("```", CodeBlockMark), tok("go", Text)}},
		{"``` go\n", []Token{tok("```", CodeBlockMark), tok(" go", Text)}},
	})
}

func TestDividingLine(t *testing.T) {
	runLexTests(t, []lexTest{
		{"---\n", []Token{tok("---", DividingMark)}},
		{"***\n", []Token{tok("***", DividingMark)}},
		{"___\n", []Token{tok("___", DividingMark)}},
		{"- -----\n", []Token{tok("- -----", DividingMark)}},
		{"* * *\n", []Token{tok("* * *", DividingMark)}},
		{"__ ________         \n", []Token{tok("__ ________         ", DividingMark)}},
		{
			"----------------------------------------   \n",
			[]Token{tok("----------------------------------------   ", DividingMark)},
		},
		// Mixed characters never qualify; the line lexes as inline text.
		{"*-*\n", []Token{tok("*", ItalicMark), tok("-", Text), tok("*", ItalicMark)}},
	})
}

func TestBlankLine(t *testing.T) {
	runLexTests(t, []lexTest{
		{"\n", []Token{tok("", BlankLine)}},
		{" \n", []Token{tok(" ", BlankLine)}},
		{"     \n", []Token{tok("     ", BlankLine)}},
		{"\t\n", []Token{tok("\t", BlankLine)}},
		// A missing newline is assumed.
		{"", []Token{tok("", BlankLine)}},
		{"         ", []Token{tok("         ", BlankLine)}},
	})
}

func TestLeadingWhitespace(t *testing.T) {
	runLexTests(t, []lexTest{
		{
			"  # indented\n",
			[]Token{tok("  ", WhiteSpace), tok("#", TitleMark), tok("indented", Text)},
		},
		{
			"\t* item\n",
			[]Token{tok("\t", WhiteSpace), tok("*", UnorderedMark), tok("item", Text)},
		},
	})
}

func TestCarriageReturn(t *testing.T) {
	runLexTests(t, []lexTest{
		{"# header1\r\n", []Token{tok("#", TitleMark), tok("header1", Text)}},
		{"plain\r\n", []Token{tok("plain", Text)}},
	})
}

func TestLexerIgnoresEmbeddedNewlines(t *testing.T) {
	got := Lex("first\nsecond\n")
	want := []Token{tok("first", Text)}
	if diff := cmp.Diff(want, got, cmp.AllowUnexported(Token{})); diff != "" {
		t.Errorf("Lex stops at the first newline (-want +got):\n%s", diff)
	}
}
