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

// Package model contains the shared data model decoded from OpenStreetMap
// PBF files: coordinates, identifiers, bounding boxes, nodes, ways and
// string tables.
package model

import (
	"fmt"
)

const nanodegreesPerDegree = 1e9

// Coordinate is a latitude or longitude expressed in nanodegrees, the
// integer unit OSM PBF carries on the wire. It is reconstructed from a
// block's granularity and offset as offset + granularity*delta-sum.
type Coordinate int64

// Degrees returns the coordinate as a decimal degree value, for display
// purposes only; comparisons and arithmetic should stay in nanodegrees.
func (c Coordinate) Degrees() float64 {
	return float64(c) / nanodegreesPerDegree
}

func (c Coordinate) String() string {
	return fmt.Sprintf("%g°", c.Degrees())
}

// ID is the primary key of a Node or Way. OSM ids are signed 64-bit
// integers and are not required to be unique within a single file.
type ID int64

// CoordinateFromOffset reconstructs a nanodegree Coordinate from a block's
// granularity and offset, given the running sum of zig-zag-decoded deltas.
func CoordinateFromOffset(offset int64, granularity int32, sum int64) Coordinate {
	return Coordinate(offset + int64(granularity)*sum)
}
