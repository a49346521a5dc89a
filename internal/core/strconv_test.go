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

package core

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseInt(t *testing.T) {
	v64, err := ParseInt[int64]("9223372036854775807")
	assert.NoError(t, err)
	assert.Equal(t, int64(9223372036854775807), v64)

	v32, err := ParseInt[int32]("-12345")
	assert.NoError(t, err)
	assert.Equal(t, int32(-12345), v32)
}

func TestParseIntMalformed(t *testing.T) {
	_, err := ParseInt[int64]("forty-two")
	assert.Error(t, err)

	_, err = ParseInt[int64]("")
	assert.Error(t, err)
}

func TestParseIntRange(t *testing.T) {
	_, err := ParseInt[int32]("2147483648")
	assert.ErrorIs(t, err, strconv.ErrRange)
}
