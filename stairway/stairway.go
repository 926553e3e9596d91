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

// Package stairway selects ways tagged highway=steps and emits their
// dereferenced node coordinates as JSON (spec.md §4.8).
package stairway

import (
	"encoding/json"
	"fmt"

	"github.com/destel/rill"

	"github.com/cridenour/osmpbf/model"
)

// concurrency bounds how many ways are dereferenced in parallel. This
// work is CPU-bound (map lookups, slice building), so the fan-out buys
// nothing beyond a handful of workers; the point is order-preserving
// concurrent shaping of a list that could be large, not raw throughput.
const concurrency = 4

// RefCoord is one node reference within a stairway, resolved to its
// coordinates.
type RefCoord struct {
	ID  model.ID         `json:"id"`
	Lat model.Coordinate `json:"lat"`
	Lon model.Coordinate `json:"lon"`
}

// Stairway is one way tagged highway=steps, with every ref dereferenced
// against the map's nodes.
type Stairway struct {
	WayID model.ID   `json:"way_id"`
	Refs  []RefCoord `json:"refs"`
}

// Select builds the JSON array described in spec.md §4.8: one object per
// way whose tags contain highway=steps, each carrying its dereferenced
// node coordinates in ref order. A ref that names a node absent from
// nodes is emitted with lat=0, lon=0 rather than aborting the whole
// emission (spec.md §4.8).
func Select(ways []model.Way, tables []model.StringTable, nodes []model.Node) ([]byte, error) {
	matches := filterStairways(ways, tables)

	index := buildNodeIndex(nodes)

	in := make(chan model.Way)

	go func() {
		defer close(in)

		for _, w := range matches {
			in <- w
		}
	}()

	out := rill.OrderedMap(in, concurrency, func(w model.Way) (Stairway, error) {
		return dereference(w, index), nil
	})

	stairways := make([]Stairway, 0, len(matches))

	for res := range out {
		if res.Error != nil {
			return nil, fmt.Errorf("stairway: %w", res.Error)
		}

		stairways = append(stairways, res.Value)
	}

	return json.MarshalIndent(stairways, "", "  ")
}

// filterStairways returns, in file order, every way carrying a
// highway=steps tag.
func filterStairways(ways []model.Way, tables []model.StringTable) []model.Way {
	var out []model.Way

	for _, w := range ways {
		for i := 0; i < w.NumTags(); i++ {
			key, val, ok := w.Tag(tables, i)
			if ok && key == "highway" && val == "steps" {
				out = append(out, w)
				break
			}
		}
	}

	return out
}

// buildNodeIndex indexes nodes by id, first occurrence wins, matching the
// first-match semantics of a linear find-by-id scan (spec.md §4.7, §9:
// "an optional hash index by id is reasonable but not required").
func buildNodeIndex(nodes []model.Node) map[model.ID]model.Node {
	index := make(map[model.ID]model.Node, len(nodes))

	for _, n := range nodes {
		if _, exists := index[n.ID]; !exists {
			index[n.ID] = n
		}
	}

	return index
}

func dereference(w model.Way, index map[model.ID]model.Node) Stairway {
	refs := make([]RefCoord, len(w.Refs))

	for i, id := range w.Refs {
		if n, ok := index[id]; ok {
			refs[i] = RefCoord{ID: id, Lat: n.Lat, Lon: n.Lon}
		} else {
			refs[i] = RefCoord{ID: id, Lat: 0, Lon: 0}
		}
	}

	return Stairway{WayID: w.ID, Refs: refs}
}
