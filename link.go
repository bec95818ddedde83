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
	"net/mail"
	"net/url"
	"regexp"
	"strings"
)

// newGenericLink builds a link-family token from the literal matched
// span, the bracket-name span, and the trailing clause (the
// parenthesized location and title, or the reference tag).
//
// For inline links and images the clause splits at the first run of
// space or tab: one field is a bare location; with two fields the
// second must be a quoted title or the whole construct degrades to a
// plain Text token.
func newGenericLink(span, name, clause string, kind TokenKind) Token {
	clause = strings.TrimSpace(clause)
	location, title := clause, ""
	if i := strings.IndexAny(clause, " \t"); i >= 0 {
		rest := strings.TrimLeft(clause[i:], " \t")
		if isQuotedString(rest) {
			location, title = clause[:i], rest
		} else {
			kind, location, title = Text, "", ""
		}
	}

	t := newToken(span, kind)
	switch kind {
	case Image, Link:
		t.insertDetail("name", name)
		t.insertDetail("location", location)
		t.insertDetail("title", strings.Trim(title, `"'`))
	case RefLink:
		t.insertDetail("name", name)
		t.insertDetail("ptr", clause)
	case RefLinkDef:
		t.insertDetail("ptr", name)
		t.insertDetail("location", location)
		t.insertDetail("title", strings.Trim(title, `"'`))
	case QuickLink:
		t.insertDetail("name", name)
		t.insertDetail("location", location)
	case Text:
		// Degraded; no attributes.
	default:
		panic("unreachable")
	}
	return t
}

var (
	doubleQuoted = regexp.MustCompile(`^"(?:[^"\\]|\\.)*"$`)
	singleQuoted = regexp.MustCompile(`^'(?:[^'\\]|\\.)*'$`)
)

// isQuotedString reports whether s is entirely enclosed in single or
// double quotes, allowing backslash-escaped quotes inside.
func isQuotedString(s string) bool {
	return doubleQuoted.MatchString(s) || singleQuoted.MatchString(s)
}

// isURL is the default syntactic URL validator: an absolute URL
// (one carrying a scheme) parseable by net/url.
func isURL(s string) bool {
	u, err := url.Parse(s)
	return err == nil && u.IsAbs()
}

// isEmail is the default syntactic email validator: a bare addr-spec
// parseable by net/mail, with no display name or angle brackets.
func isEmail(s string) bool {
	a, err := mail.ParseAddress(s)
	return err == nil && a.Address == s
}
