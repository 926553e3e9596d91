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

package wire

import (
	"fmt"

	"github.com/cridenour/osmpbf/internal/errs"
)

// WireType identifies how a field's value is encoded on the wire.
type WireType int8

const (
	Varint WireType = 0
	I64    WireType = 1
	Len    WireType = 2
	I32    WireType = 5
)

// AnyType matches any wire type in GetField/NextField lookups. It is a
// lookup parameter only; it is never stored on a Field, and ExpandPacked
// rejects it as a primitive type.
const AnyType WireType = -1

// AnyField matches any field number in NextField scans.
const AnyField int32 = -1

// Direction controls which way NextField scans a Message.
type Direction int

const (
	Forward Direction = iota
	Backward
)

// Field is one decoded protobuf field: its number, wire type, and value.
// VARINT/I32/I64 values are stored as raw bits in Raw (callers apply
// zig-zag decoding themselves where the schema calls for it); LEN values
// carry their payload in Bytes.
type Field struct {
	Number int32
	Type   WireType
	Raw    uint64
	Bytes  []byte
}

// Message is an ordered, index-addressable sequence of fields. spec.md §9
// redesigns the source's sentinel-headed doubly-linked list as this slice
// with bidirectional NextField scans; packed-field expansion splices a
// subslice in place of the single LEN field it replaces.
type Message struct {
	fields []Field
}

// NewMessage returns an empty Message.
func NewMessage() *Message {
	return &Message{}
}

// Append adds a field to the end of the message.
func (m *Message) Append(f Field) {
	m.fields = append(m.fields, f)
}

// Len returns the number of fields currently in the message.
func (m *Message) Len() int {
	return len(m.fields)
}

// Fields returns the message's fields in file order. The returned slice
// must not be mutated by the caller.
func (m *Message) Fields() []Field {
	return m.fields
}

// NextField scans from just past `from` (Forward) or just before `from`
// (Backward) toward the message's far end, returning the index of the
// first field matching number (or any field, if number is AnyField). If
// expected is not AnyType and the matching field's wire type differs, it
// returns a FieldTypeMismatch error rather than skipping past it — a
// malformed or unexpected schema is a hard failure, not something to scan
// around (spec.md §4.4).
func (m *Message) NextField(from int, number int32, expected WireType, dir Direction) (idx int, ok bool, err error) {
	step := 1
	if dir == Backward {
		step = -1
	}

	for i := from + step; i >= 0 && i < len(m.fields); i += step {
		f := m.fields[i]
		if number != AnyField && f.Number != number {
			continue
		}

		if expected != AnyType && f.Type != expected {
			return -1, false, fmt.Errorf("%w: field %d is wire type %d, expected %d",
				errs.ErrFieldTypeMismatch, f.Number, f.Type, expected)
		}

		return i, true, nil
	}

	return -1, false, nil
}

// GetField returns the last field with the given number, honoring the
// protobuf rule that later fields of the same number override earlier
// ones. It returns ok=false if no such field exists.
func (m *Message) GetField(number int32, expected WireType) (Field, bool, error) {
	idx, ok, err := m.NextField(len(m.fields), number, expected, Backward)
	if !ok || err != nil {
		return Field{}, ok, err
	}

	return m.fields[idx], true, nil
}

// ExpandPacked locates the last field with the given number, which must be
// a LEN field, and reinterprets its payload as a concatenation of primitive
// values, each read as a varint (spec.md §4.4 and §9: OSM PBF's packed
// repeated integer arrays are varint-encoded regardless of the target
// width). The original LEN field is replaced in place by the expanded
// sequence, each carrying number and primType. primType must not be Len or
// AnyType. If the last field with that number is not LEN, it returns a
// FieldTypeMismatch error. It is not an error for no field with that
// number to exist; the message is left unchanged, representing a
// zero-length packed array.
func (m *Message) ExpandPacked(number int32, primType WireType) error {
	if primType == Len || primType == AnyType {
		return fmt.Errorf("%w: %d", errs.ErrBadPackedPrimitive, primType)
	}

	idx, ok, err := m.NextField(len(m.fields), number, Len, Backward)
	if err != nil {
		return err
	}

	if !ok {
		return nil
	}

	expanded, err := expandVarints(m.fields[idx].Bytes, number, primType)
	if err != nil {
		return err
	}

	out := make([]Field, 0, len(m.fields)-1+len(expanded))
	out = append(out, m.fields[:idx]...)
	out = append(out, expanded...)
	out = append(out, m.fields[idx+1:]...)
	m.fields = out

	return nil
}

func expandVarints(buf []byte, number int32, primType WireType) ([]Field, error) {
	br := newByteReader(buf)

	var fields []Field

	for br.remaining() > 0 {
		v, _, err := ReadVarint(br)
		if err != nil {
			return nil, fmt.Errorf("expanding packed field %d: %w", number, err)
		}

		fields = append(fields, Field{Number: number, Type: primType, Raw: v})
	}

	return fields, nil
}
