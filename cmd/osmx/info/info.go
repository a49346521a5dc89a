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

// Package info implements the osmx info command.
package info

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	humanize "github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"m4o.io/osmx"
	"m4o.io/osmx/cmd/osmx/cli"
	"m4o.io/osmx/model"
)

var out io.Writer = os.Stdout

type extendedHeader struct {
	model.Header

	NodeCount     int64 `json:"node_count"`
	WayCount      int64 `json:"way_count"`
	RelationCount int64 `json:"relation_count"`
}

func init() {
	cli.RootCmd.AddCommand(infoCmd)

	flags := infoCmd.Flags()
	flags.BoolP("json", "j", false, "format information in JSON")
	flags.BoolP("extended", "e", false, "provide extended information (scans entire file)")
}

var infoCmd = &cobra.Command{
	Use:   "info [<OSM file>]",
	Short: "Print information about an OSM XML file",
	Long:  "Print information about an OSM XML file",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		var f *os.File
		var err error
		if len(args) == 1 {
			f, err = os.Open(args[0])
			if err != nil {
				log.Fatal(err)
			}
		} else {
			f = os.Stdin
		}

		in, err := cli.WrapInputFile(f)
		if err != nil {
			log.Fatal(err)
		}

		flags := cmd.Flags()

		extended, err := flags.GetBool("extended")
		if err != nil {
			log.Fatal(err)
		}

		info := runInfo(in, extended)

		if err := in.Close(); err != nil {
			log.Fatal(err)
		}

		jsonfmt, err := flags.GetBool("json")
		if err != nil {
			log.Fatal(err)
		}
		if jsonfmt {
			renderJSON(info, extended)
		} else {
			renderTxt(info, extended)
		}
	},
}

func runInfo(in io.Reader, extended bool) *extendedHeader {
	rdr, err := osmx.NewReader(in)
	if err != nil {
		log.Fatal(err)
	}

	d, err := osmx.NewDecoder(context.Background(), rdr)
	if err != nil {
		log.Fatal(err)
	}
	defer d.Close()

	info := &extendedHeader{Header: d.Header}

	if extended {
		bbox := model.InitialBoundingBox()

		for {
			entities, err := d.Decode()
			if errors.Is(err, io.EOF) {
				break
			} else if err != nil {
				log.Fatal(err)
			}

			for _, entity := range entities {
				switch e := entity.(type) {
				case model.Node:
					info.NodeCount++

					bbox.ExpandWithLatLng(e.Lat, e.Lon)
				case model.Way:
					info.WayCount++
				case model.Relation:
					info.RelationCount++
				}
			}
		}

		if info.NodeCount > 0 {
			info.BoundingBox = bbox
		}
	}

	return info
}

func renderJSON(info *extendedHeader, extended bool) {
	var v interface{} = info
	if !extended {
		v = info.Header
	}

	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		log.Fatal(err)
	}

	fmt.Fprintln(out, string(b))
}

func renderTxt(info *extendedHeader, extended bool) {
	if info.BoundingBox != nil {
		fmt.Fprintf(out, "BoundingBox: %s\n", info.BoundingBox)
	}

	if info.Version != "" {
		fmt.Fprintf(out, "Version: %s\n", info.Version)
	}

	if info.Generator != "" {
		fmt.Fprintf(out, "Generator: %s\n", info.Generator)
	}

	if info.Copyright != "" {
		fmt.Fprintf(out, "Copyright: %s\n", info.Copyright)
	}

	if info.Attribution != "" {
		fmt.Fprintf(out, "Attribution: %s\n", info.Attribution)
	}

	if info.License != "" {
		fmt.Fprintf(out, "License: %s\n", info.License)
	}

	if extended {
		fmt.Fprintf(out, "NodeCount: %s\n", humanize.Comma(info.NodeCount))
		fmt.Fprintf(out, "WayCount: %s\n", humanize.Comma(info.WayCount))
		fmt.Fprintf(out, "RelationCount: %s\n", humanize.Comma(info.RelationCount))
	}
}
