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

package model

// Header is the contents of the root element of an OpenStreetMap XML
// document, plus the optional bounds child.
type Header struct {
	BoundingBox *BoundingBox `json:"bounding_box,omitempty"`
	Version     string       `json:"version,omitempty"`
	Generator   string       `json:"generator,omitempty"`
	Copyright   string       `json:"copyright,omitempty"`
	Attribution string       `json:"attribution,omitempty"`
	License     string       `json:"license,omitempty"`
}
