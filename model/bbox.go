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

package model

import (
	"fmt"

	"github.com/golang/geo/s2"
)

// BoundingBox is the extent carried by an OSMHeader block, in nanodegrees.
type BoundingBox struct {
	MinLon Coordinate
	MaxLon Coordinate
	MinLat Coordinate
	MaxLat Coordinate
}

// Valid reports whether the box satisfies MinLon <= MaxLon and
// MinLat <= MaxLat.
func (b BoundingBox) Valid() bool {
	return b.MinLon <= b.MaxLon && b.MinLat <= b.MaxLat
}

// Contains reports whether the given lat/lon falls within the box,
// inclusive of its edges.
func (b BoundingBox) Contains(lat, lon Coordinate) bool {
	return b.MinLon <= lon && lon <= b.MaxLon && b.MinLat <= lat && lat <= b.MaxLat
}

// Rect returns the bounding box as a spherical s2.Rect, letting callers run
// great-circle contains/intersects queries without reimplementing the
// geometry themselves. It is a derived view; the nanodegree fields above
// remain the source of truth.
func (b BoundingBox) Rect() s2.Rect {
	r := s2.EmptyRect()
	r = r.AddPoint(s2.LatLngFromDegrees(b.MinLat.Degrees(), b.MinLon.Degrees()))
	r = r.AddPoint(s2.LatLngFromDegrees(b.MaxLat.Degrees(), b.MaxLon.Degrees()))

	return r
}

func (b BoundingBox) String() string {
	return fmt.Sprintf("[%s, %s, %s, %s]", b.MinLon, b.MinLat, b.MaxLon, b.MaxLat)
}
