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
	"bytes"
	"fmt"

	"github.com/klauspost/compress/zlib"

	"github.com/cridenour/osmpbf/internal/core"
	"github.com/cridenour/osmpbf/internal/errs"
)

// Inflate zlib-decompresses src into a freshly populated destination
// buffer sized to hint bytes (spec.md §4.2). There is no streaming or
// partial-inflate variant; the whole range is inflated eagerly.
func Inflate(src []byte, hint int) ([]byte, error) {
	zr, err := zlib.NewReader(bytes.NewReader(src))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errs.ErrInflateFailed, err)
	}
	defer zr.Close()

	buf := core.NewPooledBufferSized(hint)

	if _, err := buf.ReadFrom(zr); err != nil {
		buf.Close()

		return nil, fmt.Errorf("%w: %v", errs.ErrInflateFailed, err)
	}

	out := make([]byte, buf.Len())
	copy(out, buf.Bytes())
	buf.Close()

	return out, nil
}
