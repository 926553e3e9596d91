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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cridenour/osmpbf/internal/errs"
)

func buildMessage(fields ...Field) *Message {
	m := NewMessage()
	for _, f := range fields {
		m.Append(f)
	}

	return m
}

func TestMessageGetFieldLastWins(t *testing.T) {
	m := buildMessage(
		Field{Number: 1, Type: Varint, Raw: 1},
		Field{Number: 1, Type: Varint, Raw: 2},
	)

	f, ok, err := m.GetField(1, Varint)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, uint64(2), f.Raw)
}

func TestMessageGetFieldMissing(t *testing.T) {
	m := buildMessage(Field{Number: 1, Type: Varint, Raw: 1})

	_, ok, err := m.GetField(2, Varint)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestMessageGetFieldTypeMismatch(t *testing.T) {
	m := buildMessage(Field{Number: 1, Type: Varint, Raw: 1})

	_, _, err := m.GetField(1, Len)
	assert.ErrorIs(t, err, errs.ErrFieldTypeMismatch)
}

func TestMessageNextFieldForward(t *testing.T) {
	m := buildMessage(
		Field{Number: 1, Type: Varint, Raw: 1},
		Field{Number: 2, Type: Varint, Raw: 2},
		Field{Number: 1, Type: Varint, Raw: 3},
	)

	idx, ok, err := m.NextField(-1, 1, Varint, Forward)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 0, idx)

	idx, ok, err = m.NextField(idx, 1, Varint, Forward)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 2, idx)
}

func TestMessageNextFieldBackward(t *testing.T) {
	m := buildMessage(
		Field{Number: 1, Type: Varint, Raw: 1},
		Field{Number: 2, Type: Varint, Raw: 2},
	)

	idx, ok, err := m.NextField(m.Len(), 2, Varint, Backward)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 1, idx)
}

func TestMessageExpandPacked(t *testing.T) {
	payload := []byte{0x01, 0x02, 0x96, 0x01}

	m := buildMessage(
		Field{Number: 8, Type: Len, Bytes: payload},
	)

	require.NoError(t, m.ExpandPacked(8, Varint))
	require.Equal(t, 3, m.Len())

	want := []uint64{1, 2, 150}
	for i, w := range want {
		assert.Equal(t, w, m.fields[i].Raw)
		assert.Equal(t, int32(8), m.fields[i].Number)
		assert.Equal(t, Varint, m.fields[i].Type)
	}
}

func TestMessageExpandPackedPreservesSurroundingFields(t *testing.T) {
	m := buildMessage(
		Field{Number: 1, Type: Varint, Raw: 99},
		Field{Number: 8, Type: Len, Bytes: []byte{0x01, 0x02}},
		Field{Number: 2, Type: Varint, Raw: 100},
	)

	require.NoError(t, m.ExpandPacked(8, Varint))
	require.Equal(t, 4, m.Len())
	assert.Equal(t, int32(1), m.fields[0].Number)
	assert.Equal(t, int32(8), m.fields[1].Number)
	assert.Equal(t, int32(8), m.fields[2].Number)
	assert.Equal(t, int32(2), m.fields[3].Number)
}

func TestMessageExpandPackedAbsentIsNoOp(t *testing.T) {
	m := buildMessage(Field{Number: 1, Type: Varint, Raw: 1})

	require.NoError(t, m.ExpandPacked(8, Varint))
	assert.Equal(t, 1, m.Len())
}

func TestMessageExpandPackedRejectsBadPrimitiveType(t *testing.T) {
	m := buildMessage(Field{Number: 8, Type: Len, Bytes: []byte{0x01}})

	err := m.ExpandPacked(8, Len)
	assert.ErrorIs(t, err, errs.ErrBadPackedPrimitive)
}
