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
	"encoding/xml"
	"fmt"
	"io"
	"strconv"
	"time"

	"m4o.io/osmx/internal/core"
	"m4o.io/osmx/model"
)

// findAttr returns the value of the named attribute and whether it is present.
// An attribute carrying an empty value is still present.
func findAttr(se xml.StartElement, name string) (string, bool) {
	for _, attr := range se.Attr {
		if attr.Name.Local == name {
			return attr.Value, true
		}
	}

	return "", false
}

func requiredAttr(se xml.StartElement, name string) (string, error) {
	v, ok := findAttr(se, name)
	if !ok {
		return "", &MissingAttributeError{Element: se.Name.Local, Attr: name}
	}

	return v, nil
}

func optionalAttr(se xml.StartElement, name, def string) string {
	if v, ok := findAttr(se, name); ok {
		return v
	}

	return def
}

func idAttr(se xml.StartElement, name string) (model.ID, error) {
	s, err := requiredAttr(se, name)
	if err != nil {
		return 0, err
	}

	v, err := core.ParseInt[int64](s)
	if err != nil {
		return 0, &MalformedValueError{Element: se.Name.Local, Attr: name, Value: s, Err: err}
	}

	return model.ID(v), nil
}

func degreesAttr(se xml.StartElement, name string) (model.Degrees, error) {
	s, err := requiredAttr(se, name)
	if err != nil {
		return 0, err
	}

	d, err := model.ParseDegrees(s)
	if err != nil {
		return 0, &MalformedValueError{Element: se.Name.Local, Attr: name, Value: s, Err: err}
	}

	return d, nil
}

// parseInfo extracts the metadata attributes common to node, way, and
// relation elements.  id, version, changeset, timestamp, and visible are
// mandatory; user and uid default to model.Anonymous.
func parseInfo(se xml.StartElement) (*model.Info, error) {
	info := &model.Info{
		User: optionalAttr(se, "user", model.Anonymous),
		UID:  optionalAttr(se, "uid", model.Anonymous),
	}

	s, err := requiredAttr(se, "version")
	if err != nil {
		return nil, err
	}

	if info.Version, err = core.ParseInt[int32](s); err != nil {
		return nil, &MalformedValueError{Element: se.Name.Local, Attr: "version", Value: s, Err: err}
	}

	if s, err = requiredAttr(se, "changeset"); err != nil {
		return nil, err
	}

	if info.Changeset, err = core.ParseInt[int32](s); err != nil {
		return nil, &MalformedValueError{Element: se.Name.Local, Attr: "changeset", Value: s, Err: err}
	}

	if s, err = requiredAttr(se, "timestamp"); err != nil {
		return nil, err
	}

	if info.Timestamp, err = time.Parse(time.RFC3339, s); err != nil {
		return nil, &MalformedValueError{Element: se.Name.Local, Attr: "timestamp", Value: s, Err: err}
	}

	if s, err = requiredAttr(se, "visible"); err != nil {
		return nil, err
	}

	if info.Visible, err = strconv.ParseBool(s); err != nil {
		return nil, &MalformedValueError{Element: se.Name.Local, Attr: "visible", Value: s, Err: err}
	}

	return info, nil
}

// parseTag extracts one k/v pair into tags.  Both attributes are mandatory;
// a duplicate key silently overwrites the earlier value.
func parseTag(se xml.StartElement, tags map[string]string) error {
	k, err := requiredAttr(se, "k")
	if err != nil {
		return err
	}

	v, err := requiredAttr(se, "v")
	if err != nil {
		return err
	}

	tags[k] = v

	return nil
}

// parseNode decodes a node element and its tag children.  The decoder must
// be positioned immediately after the node's start element.
func (d *Decoder) parseNode(se xml.StartElement) (model.Node, error) {
	node := model.Node{Tags: make(map[string]string)}

	var err error

	if node.ID, err = idAttr(se, "id"); err != nil {
		return node, err
	}

	if node.Lat, err = degreesAttr(se, "lat"); err != nil {
		return node, err
	}

	if node.Lon, err = degreesAttr(se, "lon"); err != nil {
		return node, err
	}

	if node.Info, err = parseInfo(se); err != nil {
		return node, err
	}

	err = d.eachChild(se, func(child xml.StartElement) error {
		if child.Name.Local == "tag" {
			return parseTag(child, node.Tags)
		}

		return nil
	})

	return node, err
}

// parseWay decodes a way element with its nd and tag children, preserving
// document order of the node references.
func (d *Decoder) parseWay(se xml.StartElement) (model.Way, error) {
	way := model.Way{Tags: make(map[string]string)}

	var err error

	if way.ID, err = idAttr(se, "id"); err != nil {
		return way, err
	}

	if way.Info, err = parseInfo(se); err != nil {
		return way, err
	}

	err = d.eachChild(se, func(child xml.StartElement) error {
		switch child.Name.Local {
		case "nd":
			ref, err := idAttr(child, "ref")
			if err != nil {
				return err
			}

			way.NodeIDs = append(way.NodeIDs, ref)

			return nil
		case "tag":
			return parseTag(child, way.Tags)
		default:
			return nil
		}
	})

	return way, err
}

// parseRelation decodes a relation element with its member and tag children,
// preserving document order of the members.
func (d *Decoder) parseRelation(se xml.StartElement) (model.Relation, error) {
	rel := model.Relation{Tags: make(map[string]string)}

	var err error

	if rel.ID, err = idAttr(se, "id"); err != nil {
		return rel, err
	}

	if rel.Info, err = parseInfo(se); err != nil {
		return rel, err
	}

	err = d.eachChild(se, func(child xml.StartElement) error {
		switch child.Name.Local {
		case "member":
			member, err := parseMember(child)
			if err != nil {
				return err
			}

			rel.Members = append(rel.Members, member)

			return nil
		case "tag":
			return parseTag(child, rel.Tags)
		default:
			return nil
		}
	})

	return rel, err
}

// parseMember requires all three of type, ref, and role; role may be empty
// but must be present.
func parseMember(se xml.StartElement) (model.Member, error) {
	var member model.Member

	mt, err := requiredAttr(se, "type")
	if err != nil {
		return member, err
	}

	member.Type = model.MemberType(mt)

	if member.Ref, err = idAttr(se, "ref"); err != nil {
		return member, err
	}

	if member.Role, err = requiredAttr(se, "role"); err != nil {
		return member, err
	}

	return member, nil
}

// parseBounds decodes a bounds element into a bounding box.
func parseBounds(se xml.StartElement) (*model.BoundingBox, error) {
	bbox := &model.BoundingBox{}

	var err error

	if bbox.Bottom, err = degreesAttr(se, "minlat"); err != nil {
		return nil, err
	}

	if bbox.Left, err = degreesAttr(se, "minlon"); err != nil {
		return nil, err
	}

	if bbox.Top, err = degreesAttr(se, "maxlat"); err != nil {
		return nil, err
	}

	if bbox.Right, err = degreesAttr(se, "maxlon"); err != nil {
		return nil, err
	}

	return bbox, nil
}

// eachChild invokes fn for each child start element of se, stopping at se's
// end element.  Callbacks read only the child's attributes; eachChild alone
// consumes the child's content, so no element is ever skipped twice.
func (d *Decoder) eachChild(se xml.StartElement, fn func(child xml.StartElement) error) error {
	for {
		tok, err := d.xml.Token()
		if err != nil {
			return wrapStreamError(err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			if err := fn(t); err != nil {
				return err
			}

			if err := d.xml.Skip(); err != nil {
				return wrapStreamError(err)
			}
		case xml.EndElement:
			if t.Name.Local == se.Name.Local {
				return nil
			}
		}
	}
}

// wrapStreamError keeps element-scope token failures distinguishable from
// the end-of-stream sentinel returned by Decode.
func wrapStreamError(err error) error {
	if err == io.EOF {
		err = io.ErrUnexpectedEOF
	}

	return fmt.Errorf("read osm stream: %w", err)
}
