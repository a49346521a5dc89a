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

package export

import (
	"context"
	"os"
	"testing"

	geojson "github.com/paulmach/go.geojson"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"m4o.io/osmx"
)

func parseSample(t *testing.T) *osmx.Extract {
	t.Helper()

	f, err := os.Open("../../../testdata/sample.osm")
	require.NoError(t, err)

	defer f.Close()

	extract, err := osmx.Parse(context.Background(), f)
	require.NoError(t, err)

	return extract
}

func TestRunExport(t *testing.T) {
	extract := parseSample(t)

	fc := runExport(extract)

	// one tagged node plus three fully-resolvable ways
	require.Len(t, fc.Features, 4)

	point := fc.Features[0]
	assert.True(t, point.Geometry.IsPoint())
	assert.Equal(t, "London", point.Properties["name"])

	geometries := make(map[int64]*geojson.Geometry, 3)
	for _, f := range fc.Features[1:] {
		geometries[f.ID.(int64)] = f.Geometry
	}

	// the open street and the closed barrier stay linear
	assert.True(t, geometries[10].IsLineString())
	assert.True(t, geometries[11].IsLineString())

	// the closed park ring becomes a polygon
	assert.True(t, geometries[12].IsPolygon())
}

func TestRunExportSkipsUnresolvableWays(t *testing.T) {
	extract := parseSample(t)

	// drop the node coordinates the park ring needs
	extract.Nodes = extract.Nodes[:4]

	fc := runExport(extract)

	for _, f := range fc.Features {
		assert.NotEqual(t, int64(12), f.ID)
	}
}
