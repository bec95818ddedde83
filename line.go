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

// LineKind is the block-level classification of a lexed line,
// derived from its leading token.
type LineKind uint8

const (
	LineUnknown LineKind = iota
	LineBlank
	LineTitle
	LineList
	LineQuote
	LinePlain
)

// String returns the name of the kind.
func (k LineKind) String() string {
	switch k {
	case LineBlank:
		return "Blank"
	case LineTitle:
		return "Title"
	case LineList:
		return "List"
	case LineQuote:
		return "Quote"
	case LinePlain:
		return "Plain"
	default:
		return "Unknown"
	}
}

// ClassifyLine reports the line classification of a token sequence
// returned by [Lexer.Lex]. A leading [WhiteSpace] token is skipped so
// indented lines classify the same as unindented ones.
func ClassifyLine(tokens []Token) LineKind {
	if len(tokens) > 0 && tokens[0].Kind() == WhiteSpace {
		tokens = tokens[1:]
	}
	if len(tokens) == 0 {
		return LineUnknown
	}
	switch tokens[0].Kind() {
	case BlankLine:
		return LineBlank
	case TitleMark:
		return LineTitle
	case UnorderedMark, OrderedMark:
		return LineList
	case QuoteMark:
		return LineQuote
	case Text, ItalicMark, BoldMark, ItalicBoldMark, CodeMark,
		Image, Link, QuickLink, RefLink, RefLinkDef, LineBreak:
		return LinePlain
	default:
		return LineUnknown
	}
}
