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
	"bytes"
	"compress/zlib"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cridenour/osmpbf/internal/errs"
)

func TestReadMessageVarintField(t *testing.T) {
	// field 1, wire type 0 (varint), value 42
	buf := []byte{0x08, 0x2a}

	msg, err := ReadMessage(buf)
	require.NoError(t, err)
	require.Equal(t, 1, msg.Len())

	f, ok, err := msg.GetField(1, Varint)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, uint64(42), f.Raw)
}

func TestReadMessageLenField(t *testing.T) {
	// field 2, wire type 2 (LEN), payload "hi"
	buf := []byte{0x12, 0x02, 'h', 'i'}

	msg, err := ReadMessage(buf)
	require.NoError(t, err)

	f, ok, err := msg.GetField(2, Len)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []byte("hi"), f.Bytes)
}

func TestReadMessageTruncatedLenPayload(t *testing.T) {
	buf := []byte{0x12, 0x05, 'h', 'i'}

	_, err := ReadMessage(buf)
	assert.ErrorIs(t, err, errs.ErrTruncated)
}

func TestReadMessageTruncatedTag(t *testing.T) {
	buf := []byte{0x08}

	_, err := ReadMessage(buf)
	assert.ErrorIs(t, err, errs.ErrTruncated)
}

func TestReadMessageBadWireType(t *testing.T) {
	// field 1, wire type 6 (unused)
	buf := []byte{0x0e}

	_, err := ReadMessage(buf)
	assert.ErrorIs(t, err, errs.ErrBadWireType)
}

func TestReadEmbeddedMessage(t *testing.T) {
	inner := []byte{0x08, 0x2a}
	outer, err := ReadMessage(append([]byte{0x0a, byte(len(inner))}, inner...))
	require.NoError(t, err)

	f, ok, err := outer.GetField(1, Len)
	require.NoError(t, err)
	require.True(t, ok)

	nested, err := ReadEmbeddedMessage(f)
	require.NoError(t, err)

	nf, ok, err := nested.GetField(1, Varint)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, uint64(42), nf.Raw)
}

func TestInflateEmbeddedMessage(t *testing.T) {
	inner := []byte{0x08, 0x2a}

	var compressed bytes.Buffer
	zw := zlib.NewWriter(&compressed)
	_, err := zw.Write(inner)
	require.NoError(t, err)
	require.NoError(t, zw.Close())

	f := Field{Number: 3, Type: Len, Bytes: compressed.Bytes()}

	msg, err := InflateEmbeddedMessage(f, len(inner))
	require.NoError(t, err)

	nf, ok, err := msg.GetField(1, Varint)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, uint64(42), nf.Raw)
}
