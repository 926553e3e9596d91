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

package osm

import (
	"fmt"

	"github.com/cridenour/osmpbf/internal/wire"
	"github.com/cridenour/osmpbf/model"
)

// decodePrimitiveBlock decodes one inflated OSMData payload: its string
// table, granularity/offsets, and every PrimitiveGroup it carries (spec.md
// §4.6). The returned Way values do not yet have StringTableRef set; the
// blob-framer caller assigns it once it knows this block's position in
// the overall StringTables sequence.
func decodePrimitiveBlock(data []byte) ([]model.Node, []model.Way, model.StringTable, error) {
	msg, err := wire.ReadMessage(data)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("decoding primitive block: %w", err)
	}

	var table model.StringTable

	if f, found, err := msg.GetField(1, wire.Len); err != nil {
		return nil, nil, nil, err
	} else if found {
		table, err = buildStringTable(f)
		if err != nil {
			return nil, nil, nil, err
		}
	}

	params := defaultBlockParams()

	if f, found, err := msg.GetField(17, wire.Varint); err != nil {
		return nil, nil, nil, err
	} else if found {
		params.granularity = int32(f.Raw)
	}

	if f, found, err := msg.GetField(19, wire.Varint); err != nil {
		return nil, nil, nil, err
	} else if found {
		params.latOffset = int64(f.Raw)
	}

	if f, found, err := msg.GetField(20, wire.Varint); err != nil {
		return nil, nil, nil, err
	} else if found {
		params.lonOffset = int64(f.Raw)
	}

	var nodes []model.Node

	var ways []model.Way

	idx := -1

	for {
		next, ok, err := msg.NextField(idx, 2, wire.Len, wire.Forward)
		if err != nil {
			return nil, nil, nil, err
		}

		if !ok {
			break
		}

		idx = next

		gn, gw, err := decodePrimitiveGroup(msg.Fields()[idx], params)
		if err != nil {
			return nil, nil, nil, err
		}

		nodes = append(nodes, gn...)
		ways = append(ways, gw...)
	}

	return nodes, ways, table, nil
}

// decodePrimitiveGroup decodes one PrimitiveGroup submessage. Per
// spec.md §4.6 a group holds at most one populated kind among regular
// nodes (field 1, repeated), DenseNodes (field 2), and Ways (field 3);
// relations (field 4) are ignored, as is any unrecognized field number —
// unknown OSM extensions are skipped by virtue of field-number lookup
// (spec.md §7).
func decodePrimitiveGroup(f wire.Field, params blockParams) ([]model.Node, []model.Way, error) {
	msg, err := wire.ReadEmbeddedMessage(f)
	if err != nil {
		return nil, nil, fmt.Errorf("decoding primitive group: %w", err)
	}

	var nodes []model.Node

	var ways []model.Way

	for _, gf := range msg.Fields() {
		if gf.Type != wire.Len {
			continue
		}

		switch gf.Number {
		case 1:
			node, err := decodeRegularNode(gf, params)
			if err != nil {
				return nil, nil, err
			}

			nodes = append(nodes, node)
		case 2:
			dense, err := decodeDenseNodes(gf, params)
			if err != nil {
				return nil, nil, err
			}

			nodes = append(nodes, dense...)
		case 3:
			way, err := decodeWay(gf)
			if err != nil {
				return nil, nil, err
			}

			ways = append(ways, way)
		}
	}

	return nodes, ways, nil
}
