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

import "testing"

func TestGenericLinkPanicsOnNonLink(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("GenericLink on a Text token did not panic")
		}
	}()
	tok("plain", Text).GenericLink()
}

func TestGenericLinkKinds(t *testing.T) {
	for _, kind := range []TokenKind{Image, Link, QuickLink, RefLink, RefLinkDef} {
		t.Run(kind.String(), func(t *testing.T) {
			defer func() {
				if r := recover(); r != nil {
					t.Errorf("GenericLink on %v token panicked: %v", kind, r)
				}
			}()
			tok("x", kind).GenericLink()
		})
	}
}

func TestDetailsOmitEmptyValues(t *testing.T) {
	got := Lex("![]()\n")
	if len(got) != 1 || got[0].Kind() != Image {
		t.Fatalf("Lex(%q) = %v; want one Image token", "![]()", got)
	}
	if got[0].details != nil {
		t.Errorf("details = %v; want none stored for empty attributes", got[0].details)
	}
	link := got[0].GenericLink()
	if link.Name() != "" || link.Location() != "" || link.Title() != "" {
		t.Errorf("empty attributes not reported as absent: %v", got[0].details)
	}
}

func TestSplitOff(t *testing.T) {
	token := tok("****", Star)
	off := token.splitOff(2)
	if token.Value() != "**" || token.Kind() != Star {
		t.Errorf("after splitOff: prefix = (%q, %v); want (%q, %v)", token.Value(), token.Kind(), "**", Star)
	}
	if off.Value() != "**" || off.Kind() != Star {
		t.Errorf("after splitOff: remainder = (%q, %v); want (%q, %v)", off.Value(), off.Kind(), "**", Star)
	}
}

func TestTokenKindString(t *testing.T) {
	if got, want := BoldMark.String(), "BoldMark"; got != want {
		t.Errorf("BoldMark.String() = %q; want %q", got, want)
	}
	if got, want := TokenKind(255).String(), "TokenKind(255)"; got != want {
		t.Errorf("TokenKind(255).String() = %q; want %q", got, want)
	}
}
