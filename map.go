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

package pbf

import (
	"github.com/cridenour/osmpbf/model"
	"github.com/cridenour/osmpbf/stairway"
)

// Map is the immutable result of a single decode call: a bounding box,
// every node and way in file order, and the per-block string tables each
// Way's tags resolve against (spec.md §3). It exclusively owns all of its
// decoded content; nothing it returns aliases a buffer from decoding.
type Map struct {
	bbox         model.BoundingBox
	nodes        []model.Node
	ways         []model.Way
	stringTables []model.StringTable
}

// BBox returns the map's bounding box.
func (m *Map) BBox() model.BoundingBox {
	return m.bbox
}

// NumNodes returns the number of nodes in the map.
func (m *Map) NumNodes() int {
	return len(m.nodes)
}

// NumWays returns the number of ways in the map.
func (m *Map) NumWays() int {
	return len(m.ways)
}

// Node returns the node at index i, or false if i is out of range.
func (m *Map) Node(i int) (model.Node, bool) {
	if i < 0 || i >= len(m.nodes) {
		return model.Node{}, false
	}

	return m.nodes[i], true
}

// Way returns the way at index i, or false if i is out of range.
func (m *Map) Way(i int) (model.Way, bool) {
	if i < 0 || i >= len(m.ways) {
		return model.Way{}, false
	}

	return m.ways[i], true
}

// StringTables returns the map's string tables, indexed by each Way's
// StringTableRef.
func (m *Map) StringTables() []model.StringTable {
	return m.stringTables
}

// FindNodeByID returns the first node with the given id, in file order,
// or false if none matches. Ids are not guaranteed unique; duplicates are
// preserved in file order and only the first is returned (spec.md §3, §4.7).
func (m *Map) FindNodeByID(id model.ID) (model.Node, bool) {
	for _, n := range m.nodes {
		if n.ID == id {
			return n, true
		}
	}

	return model.Node{}, false
}

// FindWayByID returns the first way with the given id, in file order, or
// false if none matches.
func (m *Map) FindWayByID(id model.ID) (model.Way, bool) {
	for _, w := range m.ways {
		if w.ID == id {
			return w, true
		}
	}

	return model.Way{}, false
}

// WayTag returns the key/value pair at index i of way w, resolved against
// this map's string tables.
func (m *Map) WayTag(w model.Way, i int) (key, val string, ok bool) {
	return w.Tag(m.stringTables, i)
}

// Stairways emits the JSON array of highway=steps ways described in
// spec.md §4.8.
func (m *Map) Stairways() ([]byte, error) {
	return stairway.Select(m.ways, m.stringTables, m.nodes)
}
