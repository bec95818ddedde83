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

	"golang.org/x/text/cases"
)

// LinkDefinition is the data of a [RefLinkDef] token:
// the location and optional title a reference tag points to.
type LinkDefinition struct {
	Location string
	Title    string
}

// ReferenceMap is a document-scoped mapping of normalized reference
// tags to link definitions, accumulated from [RefLinkDef] tokens
// across all lines. The lexer itself never consults it; resolving
// [RefLink] tokens against it is the consumer's final step.
type ReferenceMap map[string]LinkDefinition

// NormalizeTag returns the canonical form of a reference tag:
// interior whitespace collapsed and Unicode case differences folded,
// so tags match case-insensitively across lines.
func NormalizeTag(tag string) string {
	return cases.Fold().String(strings.Join(strings.Fields(tag), " "))
}

// Extract adds any reference definitions in the token sequence to the
// map. In case of conflicts, the first definition in document order
// wins and later ones are ignored.
func (m ReferenceMap) Extract(tokens []Token) {
	for _, t := range tokens {
		if t.Kind() != RefLinkDef {
			continue
		}
		link := t.GenericLink()
		tag := NormalizeTag(link.RefTag())
		if tag == "" {
			continue
		}
		if _, exists := m[tag]; exists {
			continue
		}
		m[tag] = LinkDefinition{
			Location: link.Location(),
			Title:    link.Title(),
		}
	}
}

// Resolve looks up the definition a [RefLink] token points to.
// It panics if t is not a link-family token.
func (m ReferenceMap) Resolve(t Token) (LinkDefinition, bool) {
	def, ok := m[NormalizeTag(t.GenericLink().RefTag())]
	return def, ok
}
