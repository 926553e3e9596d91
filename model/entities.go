// Copyright 2017-25 the original author or authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package model

// Node represents a specific point on the earth's surface defined by its
// latitude and longitude. The core decoder does not carry node tags or
// metadata (see SPEC_FULL.md §1 / spec.md §9 on relations/DenseInfo scope).
type Node struct {
	ID  ID
	Lat Coordinate
	Lon Coordinate
}

// Way is an ordered list of node references, optionally tagged. Keys and
// Vals are parallel index arrays into the StringTable named by
// StringTableRef; len(Keys) == len(Vals) is an invariant of a well-formed
// Way (spec.md §3, §8).
type Way struct {
	ID             ID
	Refs           []ID
	Keys           []uint32
	Vals           []uint32
	StringTableRef int
}

// NumTags returns the number of key/value tag pairs carried by the way.
func (w Way) NumTags() int {
	return len(w.Keys)
}

// Tag resolves the i'th key/value pair against tables, the Map's full set
// of per-block string tables. It reports false if i or either resolved
// index is out of range, rather than panicking (spec.md §4.7: the query
// API must be memory-safe regardless of index values).
func (w Way) Tag(tables []StringTable, i int) (key, val string, ok bool) {
	if i < 0 || i >= len(w.Keys) || i >= len(w.Vals) {
		return "", "", false
	}

	if w.StringTableRef < 0 || w.StringTableRef >= len(tables) {
		return "", "", false
	}

	table := tables[w.StringTableRef]

	key, ok1 := table.String(w.Keys[i])
	val, ok2 := table.String(w.Vals[i])

	return key, val, ok1 && ok2
}
