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

// Package graph provides a generic, immutable keyed-adjacency structure.
// It is built once from a collection of (key, value, neighbors) triples and
// is read-only thereafter, so a constructed Graph may be shared across
// goroutines without synchronization.
package graph

// Edge associates a value with a key and declares the key's outgoing
// neighbor keys.  Neighbor keys need not be declared as entries themselves;
// dangling and forward references are both legal.
type Edge[K comparable, V any] struct {
	Key       K
	Value     V
	Neighbors []K
}

type vertex[K comparable, V any] struct {
	value     V
	neighbors []K
}

// Graph is an immutable mapping from keys to values with a per-key outgoing
// adjacency relation.
type Graph[K comparable, V any] struct {
	vertices map[K]vertex[K, V]
	keys     []K
}

// FromEdges builds a graph from a finite collection of edges.  Construction
// never fails; the empty collection yields an empty graph.  When a key is
// declared more than once the last value and neighbor set win, while the
// key keeps its first declaration position.
func FromEdges[K comparable, V any](edges []Edge[K, V]) *Graph[K, V] {
	g := &Graph[K, V]{
		vertices: make(map[K]vertex[K, V], len(edges)),
		keys:     make([]K, 0, len(edges)),
	}

	for _, e := range edges {
		if _, ok := g.vertices[e.Key]; !ok {
			g.keys = append(g.keys, e.Key)
		}

		neighbors := make([]K, len(e.Neighbors))
		copy(neighbors, e.Neighbors)

		g.vertices[e.Key] = vertex[K, V]{value: e.Value, neighbors: neighbors}
	}

	return g
}

// Size returns the number of distinct declared entries.  Keys that appear
// only as neighbor references do not count.
func (g *Graph[K, V]) Size() int {
	return len(g.vertices)
}

// Get returns the value declared for key, if any.
func (g *Graph[K, V]) Get(key K) (V, bool) {
	v, ok := g.vertices[key]

	return v.value, ok
}

// Contains reports whether key was declared as an entry.
func (g *Graph[K, V]) Contains(key K) bool {
	_, ok := g.vertices[key]

	return ok
}

// Neighbors returns a copy of the outgoing neighbor keys declared for key.
// A declared key without neighbors yields an empty slice; an undeclared key
// yields nil.
func (g *Graph[K, V]) Neighbors(key K) []K {
	v, ok := g.vertices[key]
	if !ok {
		return nil
	}

	neighbors := make([]K, len(v.neighbors))
	copy(neighbors, v.neighbors)

	return neighbors
}

// Keys returns the declared keys in declaration order.
func (g *Graph[K, V]) Keys() []K {
	keys := make([]K, len(g.keys))
	copy(keys, g.keys)

	return keys
}
