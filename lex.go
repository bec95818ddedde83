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

// Package mdlex lexes single lines of Markdown text into typed tokens.
//
// The lexer is the front end for a block assembler that builds a
// document tree: each call takes one line and returns a self-contained
// token sequence. Malformed inline constructs never fail the line;
// they degrade to plain [Text] tokens.
package mdlex

import (
	"strings"
	"unicode"

	"github.com/mdkit/mdlex/internal/runes"
	"go4.org/bytereplacer"
)

// A Lexer turns one line of Markdown into tokens.
// The zero configuration is available through [Lex].
// A Lexer is stateless between calls and safe for concurrent use.
type Lexer struct {
	validURL   func(string) bool
	validEmail func(string) bool
}

// An Option configures a [Lexer].
type Option func(*Lexer)

// WithURLValidator replaces the syntactic URL check used for autolinks.
func WithURLValidator(valid func(string) bool) Option {
	return func(l *Lexer) { l.validURL = valid }
}

// WithEmailValidator replaces the syntactic email check used for autolinks.
func WithEmailValidator(valid func(string) bool) Option {
	return func(l *Lexer) { l.validEmail = valid }
}

// NewLexer returns a Lexer using the given options.
func NewLexer(opts ...Option) *Lexer {
	l := &Lexer{
		validURL:   isURL,
		validEmail: isEmail,
	}
	for _, o := range opts {
		o(l)
	}
	return l
}

var defaultLexer = NewLexer()

// Lex splits one line into tokens using the default validators.
func Lex(line string) []Token {
	return defaultLexer.Lex(line)
}

var newlines = bytereplacer.New("\r\n", "\n")

// Lex splits one line into an ordered token sequence.
// The line may end in a newline; if it does not, one is assumed.
// Behavior on embedded newlines before the final one is unspecified:
// the lexer stops at the first.
func (l *Lexer) Lex(line string) []Token {
	line = string(newlines.Replace([]byte(line)))
	if !strings.HasSuffix(line, "\n") {
		line += "\n"
	}
	s := &lineScanner{
		lexer: l,
		text:  line,
		chars: []rune(line),
	}
	return s.split()
}

// lexPhase tracks a lineScanner through the line.
type lexPhase int8

const (
	phaseBegin lexPhase = iota
	phaseMark
	phaseInline
	phaseFinished
)

// lineScanner holds the ephemeral state for lexing one line.
type lineScanner struct {
	lexer *Lexer
	text  string
	chars []rune

	phase    lexPhase
	markAt   int // character offset of the first word
	inlineAt int // character offset where inline tokenizing starts
}

// split drives the line through classification and inline tokenizing.
func (s *lineScanner) split() []Token {
	var buff []Token

	for ix, ch := range s.chars {
		switch s.phase {
		case phaseBegin:
			if !unicode.IsSpace(ch) {
				if ws := runes.Slice(s.text, 0, ix); ws != "" {
					buff = append(buff, newToken(ws, WhiteSpace))
				}
				s.markAt = ix
				s.phase = phaseMark
			} else if ch == '\n' {
				buff = append(buff, newToken(runes.Slice(s.text, 0, ix), BlankLine))
				s.phase = phaseFinished
			}
		case phaseMark:
			if !unicode.IsSpace(ch) {
				continue
			}
			word := runes.Slice(s.text, s.markAt, ix)
			m, ok := s.extractMark(word)
			if !ok {
				// The first word is not a mark; it belongs to the inline text.
				s.inlineAt = s.markAt
				s.phase = phaseInline
				break
			}
			switch m.Kind() {
			case CodeBlockMark:
				// A language tag after the fence becomes inline text.
				s.inlineAt = s.markAt + 3
				s.phase = phaseInline
			case DividingMark:
				s.phase = phaseFinished
			default:
				s.inlineAt = ix + 1
				s.phase = phaseInline
			}
			buff = append(buff, m)
		}
		if s.phase == phaseInline || s.phase == phaseFinished {
			break
		}
	}

	if s.phase == phaseInline {
		for _, t := range s.splitInline(runes.From(s.text, s.inlineAt)) {
			if t.Value() != "" {
				buff = append(buff, t)
			}
		}
	}
	return buff
}

// extractMark classifies the first whitespace-delimited word of the line
// as a block mark. It reports false when the word is not a mark.
func (s *lineScanner) extractMark(word string) (Token, bool) {
	wc := []rune(word)
	switch {
	case word == "#" || word == "##" || word == "###" || word == "####":
		return newToken(word, TitleMark), true

	case isOrderedMark(wc):
		return newToken(word, OrderedMark), true

	case word == ">":
		return newToken(word, QuoteMark), true

	case strings.HasPrefix(word, "```"):
		// e.g. ``` or ```rust; the canonical mark value is the fence alone.
		return newToken("```", CodeBlockMark), true

	case word == "+":
		return newToken(word, UnorderedMark), true

	case word == "*" || word == "-":
		if isDividing(s.text) {
			// A dividing line, not a list.
			return newToken(strings.TrimSuffix(s.text, "\n"), DividingMark), true
		}
		return newToken(word, UnorderedMark), true

	case wc[0] == '*' || wc[0] == '-' || wc[0] == '_':
		if isDividing(s.text) {
			return newToken(strings.TrimSuffix(s.text, "\n"), DividingMark), true
		}
		return Token{}, false

	default:
		return Token{}, false
	}
}

// isOrderedMark reports whether the word is a 1-3 digit run followed by
// a dot, e.g. "1.", "12.", "123.".
func isOrderedMark(wc []rune) bool {
	if len(wc) < 2 || len(wc) > 4 || wc[len(wc)-1] != '.' {
		return false
	}
	if wc[0] < '1' || wc[0] > '9' {
		return false
	}
	for _, d := range wc[1 : len(wc)-1] {
		if d < '0' || d > '9' {
			return false
		}
	}
	return true
}

// isDividing reports whether the whole line, ignoring whitespace,
// consists of at least three occurrences of a single character
// from *, - or _.
func isDividing(line string) bool {
	counts := make(map[rune]int)
	for _, ch := range line {
		if !unicode.IsSpace(ch) {
			counts[ch]++
		}
	}
	if len(counts) != 1 {
		return false
	}
	for _, ch := range "*-_" {
		if counts[ch] >= 3 {
			return true
		}
	}
	return false
}
