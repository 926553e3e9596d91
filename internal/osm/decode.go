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
	"io"

	"github.com/cridenour/osmpbf/internal/errs"
	"github.com/cridenour/osmpbf/model"
)

// DecodeResult is the fully materialized output of a decode pass: every
// node and way across every OSMData blob, in file order, and the per-blob
// StringTables each Way's StringTableRef indexes into (spec.md §3 Map).
type DecodeResult struct {
	BBox         model.BoundingBox
	Nodes        []model.Node
	Ways         []model.Way
	StringTables []model.StringTable
}

// Decode runs the blob framer state machine end to end: an OSMHeader blob
// (bbox) followed by zero or more OSMData blobs, until a clean end of
// stream (spec.md §4.5). Any structural violation aborts the whole decode;
// no partial result is returned (spec.md §4.9). bufferHint sizes each
// blob's pooled read buffer up front (see WithBufferSize in the root pbf
// package).
func Decode(r io.Reader, bufferHint int) (*DecodeResult, error) {
	result := &DecodeResult{}

	sawHeader := false

	for {
		blobType, data, ok, err := readBlob(r, bufferHint)
		if err != nil {
			return nil, err
		}

		if !ok {
			break
		}

		switch blobType {
		case blobTypeHeader:
			if sawHeader {
				return nil, fmt.Errorf("%w: duplicate OSMHeader blob", errs.ErrBadBlobType)
			}

			bbox, err := ParseHeaderBlock(data)
			if err != nil {
				return nil, err
			}

			result.BBox = bbox
			sawHeader = true

		case blobTypeData:
			if !sawHeader {
				return nil, fmt.Errorf("%w: OSMData blob before OSMHeader", errs.ErrMissingHeader)
			}

			nodes, ways, table, err := decodePrimitiveBlock(data)
			if err != nil {
				return nil, err
			}

			tableRef := len(result.StringTables)
			for i := range ways {
				ways[i].StringTableRef = tableRef
			}

			result.Nodes = append(result.Nodes, nodes...)
			result.Ways = append(result.Ways, ways...)
			result.StringTables = append(result.StringTables, table)

		default:
			return nil, fmt.Errorf("%w: %q", errs.ErrBadBlobType, blobType)
		}
	}

	if !sawHeader {
		return nil, fmt.Errorf("%w: no OSMHeader blob", errs.ErrMissingHeader)
	}

	return result, nil
}
