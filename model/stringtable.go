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

// StringTable is the ordered sequence of byte strings carried by a single
// OSM data block. Index 0 is reserved as the empty sentinel per the OSM
// PBF format (spec.md §3, §4.6, §9 item 6). The decoder copies string
// content into the table at decode time so lookups remain valid for the
// Map's full lifetime, rather than borrowing a pointer into a buffer that
// is only alive for the enclosing block (spec.md §9's "borrowed pointers
// into freed buffers" redesign note).
type StringTable []string

// Len returns the number of entries in the table, including the index-0
// sentinel.
func (t StringTable) Len() int {
	return len(t)
}

// String returns the entry at idx, or false if idx is out of range.
func (t StringTable) String(idx uint32) (string, bool) {
	if int(idx) >= len(t) {
		return "", false
	}

	return t[idx], true
}
