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
	"context"
	"errors"
	"io"

	"m4o.io/osmx/model"
)

// Extract holds the complete result of parsing one OSM XML document: the
// header plus the three entity collections, each in document order.
type Extract struct {
	Header    model.Header
	Nodes     []model.Node
	Ways      []model.Way
	Relations []model.Relation
}

// Parse drains an entire OSM XML document from rdr and returns the three
// entity collections.  Parsing is all-or-nothing: the first malformed
// element fails the whole operation and no partial result is returned.
func Parse(ctx context.Context, rdr io.Reader, opts ...DecoderOption) (*Extract, error) {
	d, err := NewDecoder(ctx, rdr, opts...)
	if err != nil {
		return nil, err
	}
	defer d.Close()

	extract := &Extract{Header: d.Header}

	for {
		entities, err := d.Decode()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return extract, nil
			}

			return nil, err
		}

		for _, entity := range entities {
			switch e := entity.(type) {
			case model.Node:
				extract.Nodes = append(extract.Nodes, e)
			case model.Way:
				extract.Ways = append(extract.Ways, e)
			case model.Relation:
				extract.Relations = append(extract.Relations, e)
			}
		}
	}
}
