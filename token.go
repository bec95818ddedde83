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

import "fmt"

// TokenKind is an enumeration of values returned by [Token.Kind].
type TokenKind uint8

const (
	// Block marks.
	TitleMark     TokenKind = 1 + iota // #, ##, ###, ####
	UnorderedMark                      // *, -, +
	OrderedMark                        // 1.
	DividingMark                       // ---, ***, ___
	QuoteMark                          // >
	CodeBlockMark                      // ```

	// Resolved inline marks.
	ItalicMark     // * *
	BoldMark       // ** **
	ItalicBoldMark // *** ***
	CodeMark       // ` `

	// Link family.
	Image      // ![name](location "title")
	Link       // [name](location "title")
	QuickLink  // <url or email>
	RefLink    // [name][tag]
	RefLinkDef // [tag]: location "title"

	// Structural kinds.
	Text
	BlankLine
	LineBreak // <br> or trailing double space
	WhiteSpace

	// Raw delimiter runs, present only before resolution.
	Star      // *
	UnderLine // _
	BackTick  // `
)

// String returns the name of the kind.
func (k TokenKind) String() string {
	switch k {
	case TitleMark:
		return "TitleMark"
	case UnorderedMark:
		return "UnorderedMark"
	case OrderedMark:
		return "OrderedMark"
	case DividingMark:
		return "DividingMark"
	case QuoteMark:
		return "QuoteMark"
	case CodeBlockMark:
		return "CodeBlockMark"
	case ItalicMark:
		return "ItalicMark"
	case BoldMark:
		return "BoldMark"
	case ItalicBoldMark:
		return "ItalicBoldMark"
	case CodeMark:
		return "CodeMark"
	case Image:
		return "Image"
	case Link:
		return "Link"
	case QuickLink:
		return "QuickLink"
	case RefLink:
		return "RefLink"
	case RefLinkDef:
		return "RefLinkDef"
	case Text:
		return "Text"
	case BlankLine:
		return "BlankLine"
	case LineBreak:
		return "LineBreak"
	case WhiteSpace:
		return "WhiteSpace"
	case Star:
		return "Star"
	case UnderLine:
		return "UnderLine"
	case BackTick:
		return "BackTick"
	default:
		return fmt.Sprintf("TokenKind(%d)", uint8(k))
	}
}

// Token is one unit of lexer output: the literal matched substring,
// its kind, and, for link-family kinds, a set of named attributes.
// A token owns its value; it never references the input line.
type Token struct {
	value   string
	kind    TokenKind
	details map[string]string
}

func newToken(value string, kind TokenKind) Token {
	return Token{value: value, kind: kind}
}

// Value returns the literal text of the token.
func (t Token) Value() string {
	return t.value
}

// Len returns the length of the token's value in bytes.
func (t Token) Len() int {
	return len(t.value)
}

// Kind returns the kind of the token.
func (t Token) Kind() TokenKind {
	return t.kind
}

func (t *Token) setKind(kind TokenKind) {
	t.kind = kind
}

// splitOff cuts the value at byte offset at,
// keeping the prefix and returning the remainder as a new token
// of the same kind.
func (t *Token) splitOff(at int) Token {
	off := t.value[at:]
	t.value = t.value[:at]
	return newToken(off, t.kind)
}

// insertDetail records an attribute.
// Empty values are omitted rather than stored.
func (t *Token) insertDetail(key, value string) {
	if value == "" {
		return
	}
	if t.details == nil {
		t.details = make(map[string]string)
	}
	t.details[key] = value
}

// isGenericLink reports whether the token carries link attributes.
func (t Token) isGenericLink() bool {
	switch t.kind {
	case Image, Link, QuickLink, RefLink, RefLinkDef:
		return true
	default:
		return false
	}
}

// GenericLink returns a read-only view of the token's link attributes.
// It panics if the token's kind is not one of
// [Image], [Link], [QuickLink], [RefLink], or [RefLinkDef];
// calling it on any other kind is a programming error in the caller.
func (t Token) GenericLink() GenericLink {
	if !t.isGenericLink() {
		panic(fmt.Sprintf("mdlex: GenericLink called on %v token", t.kind))
	}
	return GenericLink{t}
}

// GenericLink provides access to the attributes of a link-family token.
// An empty return value means the attribute is absent.
type GenericLink struct {
	t Token
}

// Name returns the name of the link.
func (g GenericLink) Name() string {
	return g.t.details["name"]
}

// Location returns the location the link points to.
func (g GenericLink) Location() string {
	return g.t.details["location"]
}

// Title returns the title of the link with its quotes stripped.
func (g GenericLink) Title() string {
	return g.t.details["title"]
}

// RefTag returns the reference tag of a [RefLink] or [RefLinkDef] token.
func (g GenericLink) RefTag() string {
	return g.t.details["ptr"]
}
