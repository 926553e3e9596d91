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
	"io"

	"github.com/cridenour/osmpbf/internal/errs"
)

// ReadMessage decodes buf as a flat sequence of protobuf fields, reading
// until every byte has been consumed (spec.md §4.4). A tag that claims a
// value extending past the end of buf is a truncation error rather than a
// silent short read.
func ReadMessage(buf []byte) (*Message, error) {
	br := newByteReader(buf)
	msg := NewMessage()

	for br.remaining() > 0 {
		f, err := readField(br)
		if err != nil {
			return nil, err
		}

		msg.Append(f)
	}

	return msg, nil
}

// ReadEmbeddedMessage decodes f's LEN payload as a nested message. It is
// an error to call this on a field that is not wire type LEN.
func ReadEmbeddedMessage(f Field) (*Message, error) {
	if f.Type != Len {
		return nil, fmt.Errorf("%w: field %d is not LEN", errs.ErrBadWireType, f.Number)
	}

	return ReadMessage(f.Bytes)
}

// InflateEmbeddedMessage zlib-inflates f's LEN payload to sizeHint bytes
// and decodes the result as a nested message, for the Blob.zlib_data /
// PrimitiveBlock pairing at the top of the decode pipeline (spec.md §4.2,
// §4.5).
func InflateEmbeddedMessage(f Field, sizeHint int) (*Message, error) {
	if f.Type != Len {
		return nil, fmt.Errorf("%w: field %d is not LEN", errs.ErrBadWireType, f.Number)
	}

	raw, err := Inflate(f.Bytes, sizeHint)
	if err != nil {
		return nil, err
	}

	return ReadMessage(raw)
}

// readField reads one tag-prefixed field, dispatching on wire type.
func readField(br *byteReader) (Field, error) {
	number, wt, err := readTag(br)
	if err != nil {
		return Field{}, err
	}

	switch wt {
	case Varint:
		v, _, err := ReadVarint(br)
		if err != nil {
			return Field{}, fmt.Errorf("field %d: %w", number, unwrapEOF(err))
		}

		return Field{Number: number, Type: Varint, Raw: v}, nil

	case I64:
		v, err := ReadFixed64(br)
		if err != nil {
			return Field{}, fmt.Errorf("field %d: %w", number, err)
		}

		return Field{Number: number, Type: I64, Raw: v}, nil

	case I32:
		v, err := ReadFixed32(br)
		if err != nil {
			return Field{}, fmt.Errorf("field %d: %w", number, err)
		}

		return Field{Number: number, Type: I32, Raw: uint64(v)}, nil

	case Len:
		n, _, err := ReadVarint(br)
		if err != nil {
			return Field{}, fmt.Errorf("field %d length: %w", number, unwrapEOF(err))
		}

		if uint64(br.remaining()) < n {
			return Field{}, fmt.Errorf("%w: field %d claims %d bytes, %d remain",
				errs.ErrTruncated, number, n, br.remaining())
		}

		payload := make([]byte, n)
		if _, err := io.ReadFull(br, payload); err != nil {
			return Field{}, fmt.Errorf("%w: field %d payload: %v", errs.ErrTruncated, number, err)
		}

		return Field{Number: number, Type: Len, Bytes: payload}, nil

	default:
		return Field{}, fmt.Errorf("%w: %d (field %d)", errs.ErrBadWireType, wt, number)
	}
}

// readTag reads a varint tag and splits it into field number and wire
// type: number = tag>>3, wireType = tag&0x7 (spec.md §4.1).
func readTag(br *byteReader) (int32, WireType, error) {
	tag, _, err := ReadVarint(br)
	if err != nil {
		return 0, 0, unwrapEOF(err)
	}

	return int32(tag >> 3), WireType(tag & 0x7), nil
}

// unwrapEOF turns an immediate io.EOF from starting a new field into a
// truncation error: a message with a dangling tag or length prefix is
// malformed, even though an EOF at a field boundary is not.
func unwrapEOF(err error) error {
	if err == io.EOF {
		return fmt.Errorf("%w: unexpected end of message", errs.ErrTruncated)
	}

	return err
}
