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

// buildStringTable decodes a PrimitiveBlock's StringTable (field 1):
// repeated field 1 entries of raw bytes, each copied into the resulting
// table so it remains valid for the Map's full lifetime (spec.md §9: the
// source instead kept a raw pointer into a buffer that outlived only the
// enclosing block). Index 0 is conventionally the empty-string sentinel;
// that convention is accepted as-is rather than enforced (spec.md §9 item
// 6 flips the source's reject-if-nonempty bug to simple acceptance).
func buildStringTable(f wire.Field) (model.StringTable, error) {
	msg, err := wire.ReadEmbeddedMessage(f)
	if err != nil {
		return nil, fmt.Errorf("decoding string table: %w", err)
	}

	table := make(model.StringTable, 0, msg.Len())

	idx := -1

	for {
		next, ok, err := msg.NextField(idx, 1, wire.Len, wire.Forward)
		if err != nil {
			return nil, fmt.Errorf("decoding string table: %w", err)
		}

		if !ok {
			break
		}

		idx = next
		table = append(table, string(msg.Fields()[idx].Bytes))
	}

	return table, nil
}
