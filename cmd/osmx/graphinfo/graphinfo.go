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

// Package graphinfo implements the osmx graph command, which reports the
// connectivity structure of an extract's identifier graphs.
package graphinfo

import (
	"fmt"
	"io"
	"os"

	humanize "github.com/dustin/go-humanize"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"m4o.io/osmx"
	"m4o.io/osmx/cmd/osmx/cli"
	"m4o.io/osmx/graph"
	"m4o.io/osmx/model"
)

var out io.Writer = os.Stdout

func init() {
	cli.RootCmd.AddCommand(graphCmd)
}

var graphCmd = &cobra.Command{
	Use:   "graph [<OSM file>]",
	Short: "Report connectivity of an OSM XML file's identifier graphs",
	Long:  "Report connectivity of an OSM XML file's identifier graphs",
	Args:  cobra.MaximumNArgs(1),
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

		runGraphInfo(extract)

		return nil
	},
}

func runGraphInfo(extract *osmx.Extract) {
	nodes := nodeGraph(extract)
	relations := relationGraph(extract)

	fmt.Fprintf(out, "NodeEntries: %s\n", humanize.Comma(int64(nodes.Size())))
	fmt.Fprintf(out, "NodeComponents: %s\n", humanize.Comma(int64(len(graph.Components(nodes)))))
	fmt.Fprintf(out, "RelationEntries: %s\n", humanize.Comma(int64(relations.Size())))
	fmt.Fprintf(out, "DanglingSubrelations: %s\n", humanize.Comma(danglingNeighbors(relations)))
	fmt.Fprintf(out, "RelationCycles: %t\n", graph.HasCycle(relations))
}

// nodeGraph links each node to the nodes adjacent to it along some way,
// in both directions.
func nodeGraph(extract *osmx.Extract) *graph.Graph[model.ID, model.Node] {
	adjacent := make(map[model.ID][]model.ID, len(extract.Nodes))

	for _, way := range extract.Ways {
		for i := 0; i+1 < len(way.NodeIDs); i++ {
			a, b := way.NodeIDs[i], way.NodeIDs[i+1]
			adjacent[a] = append(adjacent[a], b)
			adjacent[b] = append(adjacent[b], a)
		}
	}

	edges := make([]graph.Edge[model.ID, model.Node], len(extract.Nodes))
	for i, node := range extract.Nodes {
		edges[i] = graph.Edge[model.ID, model.Node]{
			Key:       node.ID,
			Value:     node,
			Neighbors: adjacent[node.ID],
		}
	}

	return graph.FromEdges(edges)
}

// relationGraph links each relation to the relations it references as
// members.
func relationGraph(extract *osmx.Extract) *graph.Graph[model.ID, model.Relation] {
	edges := make([]graph.Edge[model.ID, model.Relation], len(extract.Relations))
	for i, rel := range extract.Relations {
		edges[i] = graph.Edge[model.ID, model.Relation]{
			Key:       rel.ID,
			Value:     rel,
			Neighbors: rel.SubrelationIDs(),
		}
	}

	return graph.FromEdges(edges)
}

// danglingNeighbors counts neighbor references that were never declared as
// entries.
func danglingNeighbors[V any](g *graph.Graph[model.ID, V]) int64 {
	var n int64

	for _, key := range g.Keys() {
		for _, neighbor := range g.Neighbors(key) {
			if !g.Contains(neighbor) {
				n++
			}
		}
	}

	return n
}
