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

// Package pbf reads OpenStreetMap PBF files into an in-memory Map: a
// bounding box, an ordered set of nodes, and an ordered set of tagged
// ways. It hand-rolls its own protocol-buffer wire decoder (see
// internal/wire) rather than depending on generated bindings; see
// DESIGN.md for why.
package pbf

import "github.com/cridenour/osmpbf/internal/errs"

// These re-export the sentinel error kinds from internal/errs as public
// API so callers can match them with errors.Is without importing an
// internal package. A clean end of input at a safe boundary is reported
// as io.EOF, not one of these.
var (
	ErrTruncated                = errs.ErrTruncated
	ErrOverlongVarint           = errs.ErrOverlongVarint
	ErrBadWireType              = errs.ErrBadWireType
	ErrFieldTypeMismatch        = errs.ErrFieldTypeMismatch
	ErrInflateFailed            = errs.ErrInflateFailed
	ErrBadBlobType              = errs.ErrBadBlobType
	ErrMismatchedParallelArrays = errs.ErrMismatchedParallelArrays
	ErrMissingHeader            = errs.ErrMissingHeader
)
