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

// Package wire is a hand-rolled protocol-buffer wire-format decoder: tag
// and wire-type parsing, varint and zig-zag integer decoding, submessage
// and packed-repeated-field handling (spec.md §4.1-§4.4). It knows nothing
// about OSM; internal/osm builds the OSM-specific layer on top of it.
package wire

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/cridenour/osmpbf/internal/errs"
)

const maxVarintBytes = 10

// ReadLengthPrefix reads a 4-byte big-endian length prefix, as used to
// frame each BlobHeader in the blob stream (spec.md §4.1, §6). It returns
// io.EOF if the very first byte is an immediate end of file, and
// errs.ErrTruncated if the stream ends partway through the 4 bytes.
func ReadLengthPrefix(r io.Reader) (uint32, error) {
	var buf [4]byte

	n, err := io.ReadFull(r, buf[:])
	if n == 0 && err == io.EOF {
		return 0, io.EOF
	}

	if err != nil {
		return 0, fmt.Errorf("%w: reading length prefix: %v", errs.ErrTruncated, err)
	}

	return binary.BigEndian.Uint32(buf[:]), nil
}

// ReadVarint reads a 1..10 byte unsigned varint: each byte contributes its
// low 7 bits at position 7*i, with the high bit as a continuation flag
// (spec.md §4.1). It returns the number of bytes consumed alongside the
// value so callers doing byte accounting (read_message's "exactly len
// bytes consumed" check) can track position without re-reading.
//
// An immediate EOF before any byte is read returns (0, 0, io.EOF). A
// continuation bit set on the last available byte returns
// errs.ErrTruncated. More than 10 bytes without termination returns
// errs.ErrOverlongVarint (spec.md §9 item 3: the correct maximum is 10
// bytes, not the source's >9 threshold).
func ReadVarint(r io.Reader) (value uint64, n int, err error) {
	var b [1]byte

	for i := 0; i < maxVarintBytes; i++ {
		if _, err := io.ReadFull(r, b[:]); err != nil {
			if i == 0 && err == io.EOF {
				return 0, 0, io.EOF
			}

			return 0, i, fmt.Errorf("%w: reading varint byte %d: %v", errs.ErrTruncated, i, err)
		}

		value |= uint64(b[0]&0x7f) << (7 * i)
		n++

		if b[0]&0x80 == 0 {
			return value, n, nil
		}
	}

	return 0, n, errs.ErrOverlongVarint
}

// ZigZagDecode maps a zig-zag encoded unsigned value back to its signed
// form: (n>>1) ^ -(n&1) (spec.md §4.1).
func ZigZagDecode(n uint64) int64 {
	return int64(n>>1) ^ -int64(n&1)
}

// ReadFixed32 reads 4 little-endian bytes into an unsigned 32-bit integer.
func ReadFixed32(r io.Reader) (uint32, error) {
	var buf [4]byte

	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return 0, fmt.Errorf("%w: reading fixed32: %v", errs.ErrTruncated, err)
	}

	return binary.LittleEndian.Uint32(buf[:]), nil
}

// ReadFixed64 reads 8 little-endian bytes into an unsigned 64-bit integer.
func ReadFixed64(r io.Reader) (uint64, error) {
	var buf [8]byte

	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return 0, fmt.Errorf("%w: reading fixed64: %v", errs.ErrTruncated, err)
	}

	return binary.LittleEndian.Uint64(buf[:]), nil
}
