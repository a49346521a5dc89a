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
	"fmt"
)

// MissingAttributeError reports a required attribute absent from an element.
// A single missing attribute terminates the whole parse.
type MissingAttributeError struct {
	Element string
	Attr    string
}

func (e *MissingAttributeError) Error() string {
	return fmt.Sprintf("element %s is missing required attribute %q", e.Element, e.Attr)
}

// MalformedValueError reports an attribute whose value could not be coerced
// to its target type.
type MalformedValueError struct {
	Element string
	Attr    string
	Value   string
	Err     error
}

func (e *MalformedValueError) Error() string {
	return fmt.Sprintf("element %s attribute %q has malformed value %q: %v",
		e.Element, e.Attr, e.Value, e.Err)
}

func (e *MalformedValueError) Unwrap() error {
	return e.Err
}
