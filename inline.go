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
	"strings"
	"unicode"

	"github.com/mdkit/mdlex/internal/runes"
	"golang.org/x/net/html/atom"
)

// escapeChars are the punctuation characters a backslash may escape.
const escapeChars = ":*_`#+-.![]()<>\\"

// inlinePhase identifies the automaton state.
// Each phase reads the subset of inlineState offsets noted below.
type inlinePhase int8

const (
	inlineNormal   inlinePhase = iota
	inlineSkip                 // consuming one escaped character
	inlineFinished             // rest of the line already consumed
	inlineRun                  // identical delimiter run; extra = run start
	inlineImageOpen            // '!' seen; bang
	inlineImageName            // '!['; bang, open
	inlineLinkName             // '['; open
	inlineNameClosed           // ']'; bang (optional), open, close
	inlineRefLink              // '[name]['; open, close, extra = second '['
	inlineRefLinkDef           // '[tag]:'; open, close
	inlineLocation             // '[name]('; bang (optional), open, close, extra = '('
	inlineAutolink             // '<'; extra = '<'
)

// inlineState is the automaton state with its positional payload.
// Offsets are character indexes into the inline content;
// bang is -1 when no '!' prefixes the current construct.
type inlineState struct {
	phase inlinePhase
	bang  int
	open  int
	close int
	extra int
}

// splitInline tokenizes the inline portion of the line with a
// single-pass, non-backtracking state machine, then resolves raw
// delimiter runs through the tidy pass.
func (s *lineScanner) splitInline(content string) []Token {
	chars := []rune(content)
	last := 0
	var buff []Token
	st := inlineState{phase: inlineNormal, bang: -1}

	flush := func(from, to int) {
		if t := runes.Slice(content, from, to); t != "" {
			buff = append(buff, newToken(t, Text))
		}
	}

scan:
	for ix, ch := range chars {
		peek := ' '
		if ix+1 < len(chars) {
			peek = chars[ix+1]
		}

		// The newline and escape rules win over every phase.
		if ch == '\n' {
			txt := strings.TrimRightFunc(runes.Slice(content, last, ix), unicode.IsSpace)
			for strings.HasSuffix(txt, "<br>") {
				txt = strings.TrimSuffix(txt, "<br>")
			}
			if txt != "" {
				buff = append(buff, newToken(txt, Text))
			}
			break scan
		}
		if ch == '\\' {
			if strings.ContainsRune(escapeChars, peek) {
				flush(last, ix)
				last = ix + 1 // drop the backslash itself
				st = inlineState{phase: inlineSkip}
			}
			continue
		}

		switch st.phase {
		case inlineSkip:
			// The escaped character stays in the pending text.
			st = inlineState{phase: inlineNormal}

		case inlineNormal:
			switch ch {
			case '*', '_', '`':
				flush(last, ix)
				last = ix
				if peek == ch {
					st = inlineState{phase: inlineRun, extra: ix}
				} else {
					buff = append(buff, newToken(runes.Slice(content, ix, ix+1), delimiterKind(ch)))
					last = ix + 1
				}
			case '!':
				st = inlineState{phase: inlineImageOpen, bang: ix}
			case '[':
				st = inlineState{phase: inlineLinkName, open: ix}
			case '<':
				st = inlineState{phase: inlineAutolink, extra: ix}
			}

		case inlineRun:
			if peek != ch {
				buff = append(buff, newToken(runes.Slice(content, st.extra, ix+1), delimiterKind(ch)))
				last = ix + 1
				st = inlineState{phase: inlineNormal}
			}

		case inlineImageOpen:
			switch ch {
			case '[':
				st = inlineState{phase: inlineImageName, bang: st.bang, open: ix}
			case '!':
				st = inlineState{phase: inlineImageOpen, bang: ix}
			default:
				st = inlineState{phase: inlineNormal}
			}

		case inlineImageName:
			if ch == ']' {
				st = inlineState{phase: inlineNameClosed, bang: st.bang, open: st.open, close: ix}
			}

		case inlineLinkName:
			switch ch {
			case ']':
				st = inlineState{phase: inlineNameClosed, bang: -1, open: st.open, close: ix}
			case '[':
				// Innermost bracket wins.
				st = inlineState{phase: inlineLinkName, open: ix}
			}

		case inlineNameClosed:
			switch ch {
			case '(':
				st = inlineState{phase: inlineLocation, bang: st.bang, open: st.open, close: st.close, extra: ix}
			case ']':
				// Shift the closing bracket forward, e.g. []].
				st.close = ix
			case '[':
				// A leading '!' does not carry into a reference link.
				st = inlineState{phase: inlineRefLink, open: st.open, close: st.close, extra: ix}
			case ':':
				st = inlineState{phase: inlineRefLinkDef, open: st.open, close: st.close}
			default:
				st = inlineState{phase: inlineNormal}
			}

		case inlineRefLink:
			if ch == ']' {
				flush(last, st.open)
				span := runes.Slice(content, st.open, ix+1)
				name := runes.Slice(content, st.open+1, st.close)
				tag := runes.Slice(content, st.extra+1, ix)
				buff = append(buff, newGenericLink(span, name, tag, RefLink))
				last = ix + 1
				st = inlineState{phase: inlineNormal}
			}

		case inlineRefLinkDef:
			// A reference definition occupies the rest of the line.
			span := strings.TrimRight(runes.From(content, last), "\n")
			tag := runes.Slice(content, st.open+1, st.close)
			clause := strings.TrimRight(runes.From(content, ix), "\n")
			buff = append(buff, newGenericLink(span, tag, clause, RefLinkDef))
			st = inlineState{phase: inlineFinished}

		case inlineLocation:
			if ch == ')' {
				begin := st.open
				kind := Link
				if st.bang >= 0 {
					begin = st.bang
					kind = Image
				}
				flush(last, begin)
				span := runes.Slice(content, begin, ix+1)
				name := runes.Slice(content, st.open+1, st.close)
				clause := runes.Slice(content, st.extra+1, ix)
				buff = append(buff, newGenericLink(span, name, clause, kind))
				last = ix + 1
				st = inlineState{phase: inlineNormal}
			}

		case inlineAutolink:
			if unicode.IsSpace(ch) {
				link := strings.TrimSpace(runes.Slice(content, st.extra+1, ix))
				if link != "" && !s.lexer.validURL(link) && !s.lexer.validEmail(link) {
					st = inlineState{phase: inlineNormal}
				}
			}
			if ch == '>' {
				link := strings.TrimSpace(runes.Slice(content, st.extra+1, ix))
				if s.lexer.validURL(link) || s.lexer.validEmail(link) {
					flush(last, st.extra)
					span := runes.Slice(content, st.extra, ix+1)
					buff = append(buff, newGenericLink(span, link, link, QuickLink))
					last = ix + 1
				}
				st = inlineState{phase: inlineNormal}
			}

		case inlineFinished:
			break scan
		}
	}

	if hasBreak(content) {
		buff = append(buff, newToken("<br>", LineBreak))
	}
	return tidy(buff)
}

func delimiterKind(ch rune) TokenKind {
	switch ch {
	case '*':
		return Star
	case '_':
		return UnderLine
	case '`':
		return BackTick
	default:
		panic("unreachable")
	}
}

// hasBreak reports whether the line ends in a hard line break:
// two or more trailing spaces, or a trailing <br> tag.
func hasBreak(content string) bool {
	if strings.HasSuffix(content, "  \n") {
		return true
	}
	return trailingTag(strings.TrimRightFunc(content, unicode.IsSpace)) == atom.Br
}

// trailingTag returns the HTML tag atom closing at the end of s,
// or zero if s does not end in a known <name> sequence.
func trailingTag(s string) atom.Atom {
	if !strings.HasSuffix(s, ">") {
		return 0
	}
	i := strings.LastIndexByte(s, '<')
	if i < 0 {
		return 0
	}
	return atom.Lookup([]byte(s[i+1 : len(s)-1]))
}
