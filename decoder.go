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

package pbf

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/cridenour/osmpbf/internal/osm"
)

// Decode reads r as a complete OSM PBF file and returns the fully
// materialized Map it describes. Decode is synchronous and single-shot:
// there is no streaming or partial-result variant (spec.md §1, §5). On
// any structural failure it returns a nil Map and a non-nil error; no
// partial state is returned (spec.md §4.9).
func Decode(r io.Reader, opts ...DecodeOption) (*Map, error) {
	cfg := defaultDecodeOptions
	for _, opt := range opts {
		opt(&cfg)
	}

	result, err := osm.Decode(r, cfg.bufferSize)
	if err != nil {
		slog.Error("failed to decode OSM PBF stream", "error", err)
		return nil, fmt.Errorf("pbf: decode failed: %w", err)
	}

	return &Map{
		bbox:         result.BBox,
		nodes:        result.Nodes,
		ways:         result.Ways,
		stringTables: result.StringTables,
	}, nil
}
