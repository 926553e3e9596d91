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

// DefaultBufferSize is the default capacity hint for each blob's pooled
// read buffer.
const DefaultBufferSize = 1024 * 1024

// decodeOptions provides optional configuration parameters for Decode.
type decodeOptions struct {
	bufferSize int
}

// DecodeOption configures how Decode reads a PBF stream.
type DecodeOption func(*decodeOptions)

// WithBufferSize lets you set the capacity hint for each blob's pooled
// read buffer, useful when the caller knows its files carry unusually
// large blobs and wants to avoid incremental regrowth.
func WithBufferSize(n int) DecodeOption {
	return func(o *decodeOptions) {
		o.bufferSize = n
	}
}

var defaultDecodeOptions = decodeOptions{
	bufferSize: DefaultBufferSize,
}
