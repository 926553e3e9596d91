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

	"github.com/cridenour/osmpbf/internal/errs"
	"github.com/cridenour/osmpbf/internal/wire"
	"github.com/cridenour/osmpbf/model"
)

// decodeWay decodes one Way submessage (PrimitiveGroup field 3): id,
// packed uint32 keys/vals string-table indices, and packed delta-coded,
// zig-zag-encoded node refs. The returned Way's StringTableRef is left at
// its zero value; the top-level Decode loop sets it to the index of the
// block's StringTable in the result (spec.md §9 item 5: the source instead
// computed that index off by one).
func decodeWay(f wire.Field) (model.Way, error) {
	msg, err := wire.ReadEmbeddedMessage(f)
	if err != nil {
		return model.Way{}, fmt.Errorf("decoding way: %w", err)
	}

	idField, found, err := msg.GetField(1, wire.Varint)
	if err != nil {
		return model.Way{}, err
	}

	if !found {
		return model.Way{}, fmt.Errorf("%w: way has no id", errs.ErrTruncated)
	}

	if err := msg.ExpandPacked(2, wire.Varint); err != nil {
		return model.Way{}, fmt.Errorf("expanding way keys: %w", err)
	}

	if err := msg.ExpandPacked(3, wire.Varint); err != nil {
		return model.Way{}, fmt.Errorf("expanding way vals: %w", err)
	}

	if err := msg.ExpandPacked(8, wire.Varint); err != nil {
		return model.Way{}, fmt.Errorf("expanding way refs: %w", err)
	}

	keys, err := collectPacked(msg, 2, func(v uint64) uint32 { return uint32(v) })
	if err != nil {
		return model.Way{}, err
	}

	vals, err := collectPacked(msg, 3, func(v uint64) uint32 { return uint32(v) })
	if err != nil {
		return model.Way{}, err
	}

	if len(keys) != len(vals) {
		return model.Way{}, fmt.Errorf("%w: way %d keys=%d vals=%d",
			errs.ErrMismatchedParallelArrays, idField.Raw, len(keys), len(vals))
	}

	deltaRefs, err := collectPacked(msg, 8, func(v uint64) int64 { return wire.ZigZagDecode(v) })
	if err != nil {
		return model.Way{}, err
	}

	refs := make([]model.ID, len(deltaRefs))

	var sum int64

	for i, d := range deltaRefs {
		sum += d
		refs[i] = model.ID(sum)
	}

	return model.Way{
		ID:   model.ID(int64(idField.Raw)),
		Refs: refs,
		Keys: keys,
		Vals: vals,
	}, nil
}
