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

package graph

// Traversal queries layered on top of the read-only structure.  They never
// mutate the graph and are safe to run concurrently with other readers.

// ReachableFrom returns the keys reachable from start by following outgoing
// neighbor references, in breadth-first order.  The start key itself is
// included, whether or not it was declared.  Dangling neighbor references
// are visited; they simply have no outgoing edges of their own.
func ReachableFrom[K comparable, V any](g *Graph[K, V], start K) []K {
	visited := map[K]bool{start: true}
	order := []K{start}

	for i := 0; i < len(order); i++ {
		v, ok := g.vertices[order[i]]
		if !ok {
			continue
		}

		for _, n := range v.neighbors {
			if !visited[n] {
				visited[n] = true
				order = append(order, n)
			}
		}
	}

	return order
}

// Components partitions the graph into weakly connected components over the
// union of declared keys and neighbor references, treating every edge as
// undirected.  Components are emitted in declaration order of their first
// member; within a component, keys appear in breadth-first discovery order.
func Components[K comparable, V any](g *Graph[K, V]) [][]K {
	// undirected adjacency over declared and referenced keys
	adjacent := make(map[K][]K, len(g.vertices))
	for _, key := range g.keys {
		for _, n := range g.vertices[key].neighbors {
			adjacent[key] = append(adjacent[key], n)
			adjacent[n] = append(adjacent[n], key)
		}
	}

	visited := make(map[K]bool, len(adjacent))

	var components [][]K

	for _, key := range g.keys {
		if visited[key] {
			continue
		}

		visited[key] = true
		component := []K{key}

		for i := 0; i < len(component); i++ {
			for _, n := range adjacent[component[i]] {
				if !visited[n] {
					visited[n] = true
					component = append(component, n)
				}
			}
		}

		components = append(components, component)
	}

	return components
}

// HasCycle reports whether following outgoing neighbor references from any
// declared key can revisit a key already on the active path.
func HasCycle[K comparable, V any](g *Graph[K, V]) bool {
	const (
		inProgress = 1
		done       = 2
	)

	state := make(map[K]int, len(g.vertices))

	var visit func(key K) bool
	visit = func(key K) bool {
		state[key] = inProgress

		v, ok := g.vertices[key]
		if ok {
			for _, n := range v.neighbors {
				switch state[n] {
				case inProgress:
					return true
				case done:
				default:
					if visit(n) {
						return true
					}
				}
			}
		}

		state[key] = done

		return false
	}

	for _, key := range g.keys {
		if state[key] == 0 && visit(key) {
			return true
		}
	}

	return false
}
