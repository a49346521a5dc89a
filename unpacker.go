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

package osmx

import (
	"bufio"
	"bytes"
	"compress/bzip2"
	"io"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4"
	"github.com/ulikunitz/xz"
)

// Compression signatures for the containers OSM XML extracts are commonly
// distributed in.
var (
	gzipMagic  = []byte{0x1f, 0x8b}
	zstdMagic  = []byte{0x28, 0xb5, 0x2f, 0xfd}
	xzMagic    = []byte{0xfd, '7', 'z', 'X', 'Z', 0x00}
	lz4Magic   = []byte{0x04, 0x22, 0x4d, 0x18}
	bzip2Magic = []byte("BZh")
)

// NewReader wraps rdr with the decompressor matching the stream's magic
// bytes.  Streams without a recognized signature pass through unchanged, so
// plain XML input always works.
func NewReader(rdr io.Reader) (io.Reader, error) {
	buffered := bufio.NewReader(rdr)

	peeked, err := buffered.Peek(len(xzMagic))
	if err != nil && len(peeked) == 0 {
		// too short to carry any signature; let the XML decoder report it
		return buffered, nil
	}

	switch {
	case bytes.HasPrefix(peeked, gzipMagic):
		return gzip.NewReader(buffered)
	case bytes.HasPrefix(peeked, zstdMagic):
		// single-threaded so the decoder spawns no worker goroutines;
		// the returned ReadCloser releases it
		dec, err := zstd.NewReader(buffered, zstd.WithDecoderConcurrency(1))
		if err != nil {
			return nil, err
		}

		return dec.IOReadCloser(), nil
	case bytes.HasPrefix(peeked, xzMagic):
		return xz.NewReader(buffered)
	case bytes.HasPrefix(peeked, lz4Magic):
		return lz4.NewReader(buffered), nil
	case bytes.HasPrefix(peeked, bzip2Magic):
		return bzip2.NewReader(buffered), nil
	default:
		return buffered, nil
	}
}
