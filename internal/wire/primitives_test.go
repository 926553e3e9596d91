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
	"io"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cridenour/osmpbf/internal/errs"
)

func TestReadVarintRoundTrip(t *testing.T) {
	cases := []struct {
		name  string
		value uint64
		bytes []byte
	}{
		{"zero", 0, []byte{0x00}},
		{"one", 1, []byte{0x01}},
		{"150", 150, []byte{0x96, 0x01}},
		{"max uint64", ^uint64(0), []byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0x01}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			v, n, err := ReadVarint(bytes.NewReader(tc.bytes))
			require.NoError(t, err)
			assert.Equal(t, tc.value, v)
			assert.Equal(t, len(tc.bytes), n)
		})
	}
}

func TestReadVarintImmediateEOF(t *testing.T) {
	_, _, err := ReadVarint(bytes.NewReader(nil))
	assert.ErrorIs(t, err, io.EOF)
}

func TestReadVarintTruncated(t *testing.T) {
	_, _, err := ReadVarint(bytes.NewReader([]byte{0x96}))
	assert.ErrorIs(t, err, errs.ErrTruncated)
}

func TestReadVarintOverlong(t *testing.T) {
	overlong := bytes.Repeat([]byte{0x80}, 10)
	overlong = append(overlong, 0x01)

	_, _, err := ReadVarint(bytes.NewReader(overlong))
	assert.ErrorIs(t, err, errs.ErrOverlongVarint)
}

func TestZigZagDecode(t *testing.T) {
	cases := []struct {
		encoded uint64
		decoded int64
	}{
		{0, 0},
		{1, -1},
		{2, 1},
		{3, -2},
		{^uint64(0) - 1, math.MaxInt64},
		{^uint64(0), math.MinInt64},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.decoded, ZigZagDecode(tc.encoded))
	}
}

func TestReadFixed32(t *testing.T) {
	v, err := ReadFixed32(bytes.NewReader([]byte{0x01, 0x00, 0x00, 0x00}))
	require.NoError(t, err)
	assert.Equal(t, uint32(1), v)
}

func TestReadFixed64(t *testing.T) {
	v, err := ReadFixed64(bytes.NewReader([]byte{0x01, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}))
	require.NoError(t, err)
	assert.Equal(t, uint64(1), v)
}

func TestReadLengthPrefix(t *testing.T) {
	v, err := ReadLengthPrefix(bytes.NewReader([]byte{0x00, 0x00, 0x00, 0x2a}))
	require.NoError(t, err)
	assert.Equal(t, uint32(42), v)
}

func TestReadLengthPrefixImmediateEOF(t *testing.T) {
	_, err := ReadLengthPrefix(bytes.NewReader(nil))
	assert.ErrorIs(t, err, io.EOF)
}

func TestReadLengthPrefixTruncated(t *testing.T) {
	_, err := ReadLengthPrefix(bytes.NewReader([]byte{0x00, 0x00}))
	assert.ErrorIs(t, err, errs.ErrTruncated)
}
