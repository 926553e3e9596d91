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

// Package errs holds the sentinel error kinds shared by the wire and osm
// decoder layers (spec.md §7). A clean end-of-file at a safe boundary is
// represented by the standard io.EOF, not a kind defined here.
package errs

import "errors"

var (
	// ErrTruncated is returned when input ends unexpectedly mid-field.
	ErrTruncated = errors.New("pbf: truncated input")

	// ErrOverlongVarint is returned when a varint exceeds 10 bytes.
	ErrOverlongVarint = errors.New("pbf: overlong varint")

	// ErrBadWireType is returned for an unknown or unsupported wire type.
	ErrBadWireType = errors.New("pbf: bad wire type")

	// ErrFieldTypeMismatch is returned when a found field's wire type
	// differs from the type the caller expected.
	ErrFieldTypeMismatch = errors.New("pbf: field type mismatch")

	// ErrInflateFailed is returned when zlib inflation fails. The inflated
	// length is not checked against the blob's declared raw size.
	ErrInflateFailed = errors.New("pbf: inflate failed")

	// ErrBadBlobType is returned when a BlobHeader's type is outside the
	// expected set ("OSMHeader", "OSMData").
	ErrBadBlobType = errors.New("pbf: unexpected blob type")

	// ErrMismatchedParallelArrays is returned when parallel arrays that
	// must be equal in length (way keys/vals, dense id/lat/lon) are not.
	ErrMismatchedParallelArrays = errors.New("pbf: mismatched parallel arrays")

	// ErrBadPackedPrimitive is returned when ExpandPacked is asked to
	// expand a field as LEN or the sentinel type, which are not valid
	// primitive element types.
	ErrBadPackedPrimitive = errors.New("pbf: bad primitive type for packed expansion")

	// ErrMissingHeader is returned when a file has no OSMHeader blob, when
	// an OSMData blob comes before it, or when the OSMHeader's bounding
	// box is missing or incomplete. A first blob of an unknown type is
	// reported as ErrBadBlobType instead.
	ErrMissingHeader = errors.New("pbf: first blob is not an OSMHeader")
)
