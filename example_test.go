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
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"m4o.io/osmx"
	"m4o.io/osmx/model"
)

func Example() {
	in, err := os.Open("testdata/sample.osm")
	if err != nil {
		log.Fatal(err)
	}
	defer in.Close()

	d, err := osmx.NewDecoder(context.Background(), in)
	if err != nil {
		log.Fatal(err)
	}
	defer d.Close()

	var nc, wc, rc uint64
	for {
		entities, err := d.Decode()
		if errors.Is(err, io.EOF) {
			break
		} else if err != nil {
			log.Fatal(err)
		}

		for _, entity := range entities {
			switch entity.(type) {
			case model.Node:
				nc++
			case model.Way:
				wc++
			case model.Relation:
				rc++
			}
		}
	}

	fmt.Printf("Nodes: %d, Ways: %d, Relations: %d\n", nc, wc, rc)
	// Output:
	// Nodes: 6, Ways: 3, Relations: 2
}
