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

package osmx_test

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"m4o.io/osmx"
	"m4o.io/osmx/model"
)

func parseSample(t *testing.T) *osmx.Extract {
	t.Helper()

	in, err := os.Open("testdata/sample.osm")
	require.NoError(t, err)

	defer in.Close()

	extract, err := osmx.Parse(context.Background(), in)
	require.NoError(t, err)

	return extract
}

func TestParseSampleCollections(t *testing.T) {
	extract := parseSample(t)

	require.Len(t, extract.Nodes, 6)
	require.Len(t, extract.Ways, 3)
	require.Len(t, extract.Relations, 2)

	// document order within each collection
	for i, node := range extract.Nodes {
		assert.Equal(t, model.ID(i+1), node.ID)
	}

	assert.Equal(t, model.ID(10), extract.Ways[0].ID)
	assert.Equal(t, model.ID(11), extract.Ways[1].ID)
	assert.Equal(t, model.ID(12), extract.Ways[2].ID)

	assert.Equal(t, model.ID(20), extract.Relations[0].ID)
	assert.Equal(t, model.ID(21), extract.Relations[1].ID)
}

func TestParseSampleClassification(t *testing.T) {
	extract := parseSample(t)

	street := extract.Ways[0]
	assert.False(t, street.IsClosed())
	assert.True(t, street.IsLine())

	wall := extract.Ways[1]
	assert.True(t, wall.IsClosed())
	assert.False(t, wall.IsArea())
	assert.True(t, wall.IsHighwayOrBarrier())
	assert.True(t, wall.IsLine())

	park := extract.Ways[2]
	assert.True(t, park.IsClosed())
	assert.True(t, park.IsArea())
	assert.False(t, park.IsLine())
}

func TestParseSampleRelations(t *testing.T) {
	extract := parseSample(t)

	multipolygon := extract.Relations[0]
	assert.Empty(t, multipolygon.SubrelationIDs())

	boundary := extract.Relations[1]
	assert.Equal(t, []model.ID{20, 22}, boundary.SubrelationIDs())
}

func TestParseSampleMetadata(t *testing.T) {
	extract := parseSample(t)

	hidden := extract.Nodes[5]
	assert.False(t, hidden.Info.Visible)

	anonymous := extract.Nodes[1]
	assert.Equal(t, model.Anonymous, anonymous.Info.User)
	assert.Equal(t, model.Anonymous, anonymous.Info.UID)
}
