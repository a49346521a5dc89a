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

// Package model contains the shared entity model for OpenStreetMap XML
// encoders/decoders.
package model

import (
	"time"
)

// ID is the primary key of an entity.
type ID int64

// Anonymous is the author name and author id substituted when the source
// document omits them.
const Anonymous = "anonymous"

// Info represents information common to Node, Way, and Relation entities.
// User and UID remain strings; they default to Anonymous when absent from
// the source.
type Info struct {
	Version   int32
	UID       string
	Timestamp time.Time
	Changeset int32
	User      string
	Visible   bool
}

// Entity is the closed set of OSM entities: Node, Way, and Relation.
type Entity interface {
	isEntity() // prevents extensions

	GetID() ID

	GetTags() map[string]string

	GetInfo() *Info
}

// Node represents a specific point on the earth's surface defined by its
// latitude and longitude. Each node comprises at least an id number and a
// pair of coordinates.
type Node struct {
	ID   ID
	Tags map[string]string
	Info *Info
	Lat  Degrees
	Lon  Degrees
}

var _ Entity = Node{}

func (n Node) isEntity() {}

func (n Node) GetID() ID {
	return n.ID
}

func (n Node) GetTags() map[string]string {
	return n.Tags
}

func (n Node) GetInfo() *Info {
	return n.Info
}

// Way is an ordered list of node references that define a polyline.  The
// parser accepts ways with fewer than two references; consumers that need
// well-formed geometry must check the length themselves.
type Way struct {
	ID      ID
	Tags    map[string]string
	Info    *Info
	NodeIDs []ID
}

var _ Entity = Way{}

func (w Way) isEntity() {}

func (w Way) GetID() ID {
	return w.ID
}

func (w Way) GetTags() map[string]string {
	return w.Tags
}

func (w Way) GetInfo() *Info {
	return w.Info
}

// IsClosed reports whether the way's first node reference equals its last.
// An empty way is not closed.
func (w Way) IsClosed() bool {
	return len(w.NodeIDs) > 0 && w.NodeIDs[0] == w.NodeIDs[len(w.NodeIDs)-1]
}

// IsArea reports whether the way is explicitly tagged area=yes.
func (w Way) IsArea() bool {
	return w.Tags["area"] == "yes"
}

// IsHighwayOrBarrier reports whether the way carries a highway or barrier tag.
func (w Way) IsHighwayOrBarrier() bool {
	_, highway := w.Tags["highway"]
	_, barrier := w.Tags["barrier"]

	return highway || barrier
}

// IsLine reports whether the way represents linear geometry.  An open way is
// always a line; a closed way is a line only when it is not an explicit area
// but is a highway or barrier.
func (w Way) IsLine() bool {
	return !w.IsClosed() || (!w.IsArea() && w.IsHighwayOrBarrier())
}

// MemberType is the type of entity a relation member references.  It is
// carried verbatim from the source document.
type MemberType string

// Well-known member types.
const (
	NodeMember     MemberType = "node"
	WayMember      MemberType = "way"
	RelationMember MemberType = "relation"
)

// Member represents a single typed, roled reference inside a relation.
type Member struct {
	Type MemberType
	Ref  ID
	Role string
}

// Relation is a multipurpose data structure that documents a relationship
// between two or more data entities (nodes, ways, and/or other relations).
type Relation struct {
	ID      ID
	Tags    map[string]string
	Info    *Info
	Members []Member
}

var _ Entity = Relation{}

func (r Relation) isEntity() {}

func (r Relation) GetID() ID {
	return r.ID
}

func (r Relation) GetTags() map[string]string {
	return r.Tags
}

func (r Relation) GetInfo() *Info {
	return r.Info
}

// SubrelationIDs returns, in member order, the ids of members that reference
// other relations.
func (r Relation) SubrelationIDs() []ID {
	var ids []ID

	for _, m := range r.Members {
		if m.Type == RelationMember {
			ids = append(ids, m.Ref)
		}
	}

	return ids
}
