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
	"bytes"
	"compress/zlib"
	"encoding/binary"
)

// The helpers in this file hand-encode just enough of the PBF wire format
// to build fixtures for the tests in this package; there is no production
// encoder anywhere in this module (spec.md Non-goals: writing PBF).

func encodeVarint(v uint64) []byte {
	var out []byte

	for {
		b := byte(v & 0x7f)
		v >>= 7

		if v != 0 {
			out = append(out, b|0x80)
		} else {
			out = append(out, b)
			break
		}
	}

	return out
}

func zigzagEncode(v int64) uint64 {
	return uint64((v << 1) ^ (v >> 63))
}

func tagBytes(number int32, wireType int) []byte {
	return encodeVarint(uint64(number)<<3 | uint64(wireType))
}

func varintField(number int32, v uint64) []byte {
	return append(tagBytes(number, 0), encodeVarint(v)...)
}

func lenField(number int32, payload []byte) []byte {
	out := tagBytes(number, 2)
	out = append(out, encodeVarint(uint64(len(payload)))...)
	out = append(out, payload...)

	return out
}

func packedVarintField(number int32, values []uint64) []byte {
	var payload []byte
	for _, v := range values {
		payload = append(payload, encodeVarint(v)...)
	}

	return lenField(number, payload)
}

func concatBytes(parts ...[]byte) []byte {
	var out []byte
	for _, p := range parts {
		out = append(out, p...)
	}

	return out
}

func deltaEncode(values []int64) []uint64 {
	out := make([]uint64, len(values))

	var prev int64

	for i, v := range values {
		out[i] = zigzagEncode(v - prev)
		prev = v
	}

	return out
}

// buildStringTableBytes builds a StringTable message: repeated field 1
// entries, one per string.
func buildStringTableBytes(strs []string) []byte {
	var out []byte
	for _, s := range strs {
		out = append(out, lenField(1, []byte(s))...)
	}

	return out
}

func buildNodeBytes(id int64, latRaw, lonRaw uint64) []byte {
	return concatBytes(
		varintField(1, uint64(id)),
		varintField(8, latRaw),
		varintField(9, lonRaw),
	)
}

func buildDenseNodesBytes(ids, lats, lons []int64) []byte {
	return concatBytes(
		packedVarintField(1, deltaEncode(ids)),
		packedVarintField(8, deltaEncode(lats)),
		packedVarintField(9, deltaEncode(lons)),
	)
}

func buildWayBytes(id int64, keys, vals []uint64, refs []int64) []byte {
	out := varintField(1, uint64(id))
	out = append(out, packedVarintField(2, keys)...)
	out = append(out, packedVarintField(3, vals)...)
	out = append(out, packedVarintField(8, deltaEncode(refs))...)

	return out
}

// buildPrimitiveBlockBytes assembles a full PrimitiveBlock payload from
// already-encoded group submessages (each already wrapped as a field-2
// LEN), a string table, and the default granularity/offset.
func buildPrimitiveBlockBytes(table []string, groups ...[]byte) []byte {
	out := lenField(1, buildStringTableBytes(table))
	for _, g := range groups {
		out = append(out, g...)
	}

	return out
}

func buildNodeGroupBytes(nodes ...[]byte) []byte {
	var payload []byte
	for _, n := range nodes {
		payload = append(payload, lenField(1, n)...)
	}

	return lenField(2, payload)
}

func buildDenseGroupBytes(dense []byte) []byte {
	return lenField(2, lenField(2, dense))
}

func buildWayGroupBytes(ways ...[]byte) []byte {
	var payload []byte
	for _, w := range ways {
		payload = append(payload, lenField(3, w)...)
	}

	return lenField(2, payload)
}

func buildHeaderBBoxBytes(minLon, maxLon, minLat, maxLat int64) []byte {
	bbox := concatBytes(
		varintField(1, zigzagEncode(minLon)),
		varintField(2, zigzagEncode(maxLon)),
		varintField(3, zigzagEncode(minLat)),
		varintField(4, zigzagEncode(maxLat)),
	)

	return lenField(1, bbox)
}

func zlibCompress(data []byte) []byte {
	var buf bytes.Buffer

	zw := zlib.NewWriter(&buf)
	if _, err := zw.Write(data); err != nil {
		panic(err)
	}

	if err := zw.Close(); err != nil {
		panic(err)
	}

	return buf.Bytes()
}

// buildBlob wraps an already-constructed message payload as a Blob
// carrying only the zlib_data variant this decoder supports.
func buildBlob(payload []byte) []byte {
	compressed := zlibCompress(payload)

	return concatBytes(
		varintField(2, uint64(len(payload))),
		lenField(3, compressed),
	)
}

func buildBlobHeader(blobType string, dataSize int) []byte {
	return concatBytes(
		lenField(1, []byte(blobType)),
		varintField(3, uint64(dataSize)),
	)
}

// appendBlobPair appends one length-prefixed BlobHeader/Blob pair to buf.
func appendBlobPair(buf *bytes.Buffer, blobType string, payload []byte) {
	blob := buildBlob(payload)
	hdr := buildBlobHeader(blobType, len(blob))

	var lenPrefix [4]byte
	binary.BigEndian.PutUint32(lenPrefix[:], uint32(len(hdr)))

	buf.Write(lenPrefix[:])
	buf.Write(hdr)
	buf.Write(blob)
}
