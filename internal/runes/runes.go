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

// Package runes provides substring extraction by character index
// rather than byte index.
package runes

import "unicode/utf8"

// Slice returns the substring of s covering the characters
// in the interval [from, to).
// Indexes past the end of s are clamped to the end.
func Slice(s string, from, to int) string {
	if from >= to {
		return ""
	}
	return s[byteIndex(s, from):byteIndex(s, to)]
}

// From returns the substring of s starting at the from'th character.
func From(s string, from int) string {
	return s[byteIndex(s, from):]
}

// Len returns the number of characters in s.
func Len(s string) int {
	return utf8.RuneCountInString(s)
}

// byteIndex returns the byte offset of the i'th character of s,
// or len(s) if s has fewer than i characters.
func byteIndex(s string, i int) int {
	n := 0
	for bi := range s {
		if n == i {
			return bi
		}
		n++
	}
	return len(s)
}
