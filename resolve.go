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

// tidy rewrites raw Star/UnderLine/BackTick tokens into their semantic
// kinds, pairing equal runs with a stack, and demotes whatever remains
// unmatched to Text.
func tidy(buff []Token) []Token {
	buff = normalizeRuns(Star, buff)
	buff = normalizeRuns(UnderLine, buff)

	// Pending delimiters are tracked by index into buff so resolved
	// tokens can be rewritten in place.
	var stack []int
	for i := range buff {
		kind := buff[i].Kind()
		if kind != Star && kind != UnderLine && kind != BackTick {
			continue
		}

		match := -1
		for j := len(stack) - 1; j >= 0; j-- {
			if p := buff[stack[j]]; p.Kind() == kind && p.Value() == buff[i].Value() {
				match = j
				break
			}
		}
		if match >= 0 {
			resolved := resolvedKind(buff[i].Value())
			buff[stack[match]].setKind(resolved)
			buff[i].setKind(resolved)
			// Delimiters pushed after the match can no longer pair.
			for _, u := range stack[match+1:] {
				buff[u].setKind(Text)
			}
			stack = stack[:match]
		} else if buff[i].Len() < 4 {
			stack = append(stack, i)
		} else {
			// Runs of four or more never open an emphasis span.
			buff[i].setKind(Text)
		}
	}
	for _, u := range stack {
		buff[u].setKind(Text)
	}
	return buff
}

func resolvedKind(value string) TokenKind {
	switch value {
	case "*", "_":
		return ItalicMark
	case "**", "__":
		return BoldMark
	case "***", "___":
		return ItalicBoldMark
	case "`", "``", "```":
		return CodeMark
	default:
		panic("unreachable")
	}
}

// normalizeRuns splits asymmetric delimiter runs of one kind so that a
// longer run following a shorter one yields a prefix of the earlier
// run's length, e.g. ** followed by **** becomes ** + ** + **.
// Split points are collected first and applied afterwards, because the
// splits insert tokens into the sequence being scanned.
func normalizeRuns(kind TokenKind, buff []Token) []Token {
	type splitPoint struct {
		index  int
		length int
	}
	var splits []splitPoint

	pre := 0
	for ix := range buff {
		if buff[ix].Kind() != kind {
			continue
		}
		if l := buff[ix].Len(); l >= pre && pre > 0 {
			if n := l - pre; n > 0 {
				// Each earlier split shifts this token one slot right.
				splits = append(splits, splitPoint{index: ix + len(splits), length: pre})
				pre = n
			} else {
				pre = 0
			}
		} else {
			pre = l
		}
	}

	for _, sp := range splits {
		off := buff[sp.index].splitOff(sp.length)
		buff = append(buff, Token{})
		copy(buff[sp.index+2:], buff[sp.index+1:])
		buff[sp.index+1] = off
	}
	return buff
}
