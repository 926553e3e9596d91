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

// ParseHeaderBlock decodes an inflated HeaderBlock payload and returns the
// bounding box carried at field 1 (HeaderBBox). No other HeaderBlock field
// is consulted (spec.md §4.5/§6: the decoder's only interest in the
// OSMHeader blob is the bbox).
func ParseHeaderBlock(data []byte) (model.BoundingBox, error) {
	msg, err := wire.ReadMessage(data)
	if err != nil {
		return model.BoundingBox{}, fmt.Errorf("decoding header block: %w", err)
	}

	bboxField, found, err := msg.GetField(1, wire.Len)
	if err != nil {
		return model.BoundingBox{}, err
	}

	if !found {
		return model.BoundingBox{}, fmt.Errorf("%w: header block has no bbox", errs.ErrMissingHeader)
	}

	bbox, err := wire.ReadEmbeddedMessage(bboxField)
	if err != nil {
		return model.BoundingBox{}, fmt.Errorf("decoding header bbox: %w", err)
	}

	left, err := bboxCoordinate(bbox, 1)
	if err != nil {
		return model.BoundingBox{}, err
	}

	right, err := bboxCoordinate(bbox, 2)
	if err != nil {
		return model.BoundingBox{}, err
	}

	bottom, err := bboxCoordinate(bbox, 3)
	if err != nil {
		return model.BoundingBox{}, err
	}

	top, err := bboxCoordinate(bbox, 4)
	if err != nil {
		return model.BoundingBox{}, err
	}

	return model.BoundingBox{
		MinLon: left,
		MaxLon: right,
		MaxLat: top,
		MinLat: bottom,
	}, nil
}

func bboxCoordinate(msg *wire.Message, number int32) (model.Coordinate, error) {
	f, found, err := msg.GetField(number, wire.Varint)
	if err != nil {
		return 0, err
	}

	if !found {
		return 0, fmt.Errorf("%w: header bbox missing field %d", errs.ErrMissingHeader, number)
	}

	return model.Coordinate(wire.ZigZagDecode(f.Raw)), nil
}
