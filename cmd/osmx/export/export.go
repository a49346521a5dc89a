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

// Package export implements the osmx export command, which renders an
// extract's entities as GeoJSON.
package export

import (
	"encoding/json"
	"fmt"
	"os"

	geojson "github.com/paulmach/go.geojson"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"m4o.io/osmx"
	"m4o.io/osmx/cmd/osmx/cli"
	"m4o.io/osmx/graph"
	"m4o.io/osmx/model"
)

var out *os.File

func init() {
	cli.RootCmd.AddCommand(exportCmd)

	exportCmd.Flags().VarP(cli.NewWriterValue(os.Stdout, &out, "file"), "out", "o",
		"write GeoJSON to file instead of stdout")
}

var exportCmd = &cobra.Command{
	Use:   "export [<OSM file>]",
	Short: "Export an OSM XML file as GeoJSON",
	Long: "Export an OSM XML file as GeoJSON.  Tagged nodes become Points; " +
		"ways become LineStrings or, when they enclose an area, Polygons.",
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var f *os.File
		var err error
		if len(args) == 1 {
			f, err = os.Open(args[0])
			if err != nil {
				return errors.Wrap(err, "open input")
			}
		} else {
			f = os.Stdin
		}

		in, err := cli.WrapInputFile(f)
		if err != nil {
			return errors.Wrap(err, "wrap input")
		}
		defer in.Close()

		rdr, err := osmx.NewReader(in)
		if err != nil {
			return errors.Wrap(err, "sniff compression")
		}

		extract, err := osmx.Parse(cmd.Context(), rdr)
		if err != nil {
			return errors.Wrap(err, "parse extract")
		}

		fc := runExport(extract)

		b, err := json.Marshal(fc)
		if err != nil {
			return errors.Wrap(err, "marshal feature collection")
		}

		fmt.Fprintln(out, string(b))

		if out != os.Stdout {
			return errors.Wrap(out.Close(), "close output")
		}

		return nil
	},
}

func runExport(extract *osmx.Extract) *geojson.FeatureCollection {
	// keyed node lookup for resolving way references
	edges := make([]graph.Edge[model.ID, model.Node], len(extract.Nodes))
	for i, node := range extract.Nodes {
		edges[i] = graph.Edge[model.ID, model.Node]{Key: node.ID, Value: node}
	}

	nodes := graph.FromEdges(edges)

	fc := geojson.NewFeatureCollection()

	for _, node := range extract.Nodes {
		if len(node.Tags) == 0 {
			continue
		}

		f := geojson.NewPointFeature([]float64{float64(node.Lon), float64(node.Lat)})
		decorate(f, node.ID, node.Tags)
		fc.AddFeature(f)
	}

	for _, way := range extract.Ways {
		coordinates, ok := resolve(nodes, way.NodeIDs)
		if !ok {
			// ways reaching outside the extract have no usable geometry
			continue
		}

		var f *geojson.Feature
		if way.IsLine() {
			f = geojson.NewLineStringFeature(coordinates)
		} else {
			f = geojson.NewPolygonFeature([][][]float64{coordinates})
		}

		decorate(f, way.ID, way.Tags)
		fc.AddFeature(f)
	}

	return fc
}

func resolve(nodes *graph.Graph[model.ID, model.Node], ids []model.ID) ([][]float64, bool) {
	coordinates := make([][]float64, len(ids))

	for i, id := range ids {
		node, ok := nodes.Get(id)
		if !ok {
			return nil, false
		}

		coordinates[i] = []float64{float64(node.Lon), float64(node.Lat)}
	}

	return coordinates, len(coordinates) > 0
}

func decorate(f *geojson.Feature, id model.ID, tags map[string]string) {
	f.ID = int64(id)

	for k, v := range tags {
		f.SetProperty(k, v)
	}
}
