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

// Package osm is the OSM-specific layer built on top of internal/wire: blob
// framing, string-table interning, and the regular-node/DenseNodes/Way
// decode rules.
package osm

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/cridenour/osmpbf/internal/core"
	"github.com/cridenour/osmpbf/internal/errs"
	"github.com/cridenour/osmpbf/internal/wire"
)

const (
	blobTypeHeader = "OSMHeader"
	blobTypeData   = "OSMData"
)

// blobHeader is the decoded BlobHeader preceding every Blob: its declared
// type ("OSMHeader" or "OSMData") and the byte size of the Blob that
// follows it on the wire.
type blobHeader struct {
	Type     string
	DataSize int32
}

// readBlobHeader reads the 4-byte big-endian length prefix and the
// BlobHeader message it introduces. ok is false (with a nil error) only on
// a clean end of the blob stream.
func readBlobHeader(r io.Reader) (hdr blobHeader, ok bool, err error) {
	size, err := wire.ReadLengthPrefix(r)
	if err == io.EOF {
		return blobHeader{}, false, nil
	}

	if err != nil {
		return blobHeader{}, false, err
	}

	buf := make([]byte, size)
	if _, err := io.ReadFull(r, buf); err != nil {
		return blobHeader{}, false, fmt.Errorf("%w: reading blob header: %v", errs.ErrTruncated, err)
	}

	msg, err := wire.ReadMessage(buf)
	if err != nil {
		return blobHeader{}, false, fmt.Errorf("decoding blob header: %w", err)
	}

	typeField, found, err := msg.GetField(1, wire.Len)
	if err != nil {
		return blobHeader{}, false, err
	}

	if !found {
		return blobHeader{}, false, fmt.Errorf("%w: blob header has no type field", errs.ErrBadBlobType)
	}

	dataSizeField, found, err := msg.GetField(3, wire.Varint)
	if err != nil {
		return blobHeader{}, false, err
	}

	if !found {
		return blobHeader{}, false, fmt.Errorf("%w: blob header has no datasize field", errs.ErrTruncated)
	}

	return blobHeader{Type: string(typeField.Bytes), DataSize: int32(dataSizeField.Raw)}, true, nil
}

// readBlobData reads hdr.DataSize bytes and decodes them as a Blob
// message, returning the inflated payload. Per this decoder's scope, only
// field 3 (zlib_data) is supported; field 1 (raw, uncompressed) and other
// compression variants are not. bufferHint sizes the pooled read buffer
// up front when it exceeds the blob's own declared size, avoiding
// reallocation for callers that know their files carry large blobs.
func readBlobData(r io.Reader, hdr blobHeader, bufferHint int) ([]byte, error) {
	bufCap := int(hdr.DataSize)
	if bufferHint > bufCap {
		bufCap = bufferHint
	}

	buf := core.NewPooledBufferSized(bufCap)
	defer buf.Close()

	if _, err := io.CopyN(buf, r, int64(hdr.DataSize)); err != nil {
		return nil, fmt.Errorf("%w: reading blob body: %v", errs.ErrTruncated, err)
	}

	msg, err := wire.ReadMessage(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("decoding blob: %w", err)
	}

	zlibField, found, err := msg.GetField(3, wire.Len)
	if err != nil {
		return nil, err
	}

	if !found {
		return nil, fmt.Errorf("%w: blob has no zlib_data field", errs.ErrBadBlobType)
	}

	rawSizeHint := 0

	if f, found, err := msg.GetField(2, wire.Varint); err != nil {
		return nil, err
	} else if found {
		rawSizeHint = int(f.Raw)
	}

	data, err := wire.Inflate(zlibField.Bytes, rawSizeHint)
	if err != nil {
		return nil, err
	}

	return data, nil
}

// readBlob reads one BlobHeader/Blob pair and returns the inflated payload
// along with the header's declared type. ok is false only on a clean end
// of the blob stream.
func readBlob(r io.Reader, bufferHint int) (blobType string, data []byte, ok bool, err error) {
	hdr, ok, err := readBlobHeader(r)
	if err != nil {
		slog.Error("unable to read blob header", "error", err)
		return "", nil, false, err
	}

	if !ok {
		return "", nil, false, nil
	}

	data, err = readBlobData(r, hdr, bufferHint)
	if err != nil {
		slog.Error("unable to read blob data", "type", hdr.Type, "error", err)
		return "", nil, false, err
	}

	return hdr.Type, data, true, nil
}
