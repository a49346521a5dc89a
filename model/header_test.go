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

package model_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"

	"m4o.io/osmx/model"
)

func TestHeaderJSON(t *testing.T) {
	h := model.Header{
		BoundingBox: &model.BoundingBox{
			Top:    51.69344,
			Left:   -0.511482,
			Bottom: 51.28554,
			Right:  0.335437,
		},
		Version:   "0.6",
		Generator: "osmium/1.14.0",
		Copyright: "OpenStreetMap and contributors",
		License:   "http://opendatacommons.org/licenses/odbl/1-0/",
	}

	b, err := json.Marshal(h)
	assert.NoError(t, err)
	assert.Equal(t, `{"bounding_box":{"top":51.69344,"left":-0.511482,"bottom":51.28554,"right":0.335437},"version":"0.6","generator":"osmium/1.14.0","copyright":"OpenStreetMap and contributors","license":"http://opendatacommons.org/licenses/odbl/1-0/"}`, string(b))
}
