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
	"bytes"
	"context"
	"io"
	"os"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ulikunitz/xz"
)

func sampleBytes(t *testing.T) []byte {
	t.Helper()

	b, err := os.ReadFile("testdata/sample.osm")
	require.NoError(t, err)

	return b
}

func roundTrip(t *testing.T, compressed []byte, expected []byte) {
	t.Helper()

	rdr, err := NewReader(bytes.NewReader(compressed))
	require.NoError(t, err)

	actual, err := io.ReadAll(rdr)
	require.NoError(t, err)
	assert.Equal(t, expected, actual)
}

func TestNewReaderPlain(t *testing.T) {
	sample := sampleBytes(t)
	roundTrip(t, sample, sample)
}

func TestNewReaderGzip(t *testing.T) {
	sample := sampleBytes(t)

	var buf bytes.Buffer
	w := gzip.NewWriter(&buf)
	_, err := w.Write(sample)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	roundTrip(t, buf.Bytes(), sample)
}

func TestNewReaderZstd(t *testing.T) {
	sample := sampleBytes(t)

	var buf bytes.Buffer
	w, err := zstd.NewWriter(&buf)
	require.NoError(t, err)
	_, err = w.Write(sample)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	roundTrip(t, buf.Bytes(), sample)
}

func TestNewReaderXz(t *testing.T) {
	sample := sampleBytes(t)

	var buf bytes.Buffer
	w, err := xz.NewWriter(&buf)
	require.NoError(t, err)
	_, err = w.Write(sample)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	roundTrip(t, buf.Bytes(), sample)
}

func TestNewReaderLz4(t *testing.T) {
	sample := sampleBytes(t)

	var buf bytes.Buffer
	w := lz4.NewWriter(&buf)
	_, err := w.Write(sample)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	roundTrip(t, buf.Bytes(), sample)
}

func TestNewReaderEmpty(t *testing.T) {
	rdr, err := NewReader(bytes.NewReader(nil))
	require.NoError(t, err)

	actual, err := io.ReadAll(rdr)
	require.NoError(t, err)
	assert.Empty(t, actual)
}

func TestParseCompressedSample(t *testing.T) {
	sample := sampleBytes(t)

	var buf bytes.Buffer
	w := gzip.NewWriter(&buf)
	_, err := w.Write(sample)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	rdr, err := NewReader(&buf)
	require.NoError(t, err)

	extract, err := Parse(context.Background(), rdr)
	require.NoError(t, err)

	assert.Len(t, extract.Nodes, 6)
	assert.Len(t, extract.Ways, 3)
	assert.Len(t, extract.Relations, 2)
}
