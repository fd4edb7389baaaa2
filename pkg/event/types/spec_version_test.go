/*
Copyright 2024 The Knative Authors

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSpecVersion(t *testing.T) {
	v, err := ParseSpecVersion("1.0")
	require.NoError(t, err)
	assert.Equal(t, V1, v)
	assert.Equal(t, "1.0", v.String())

	for _, s := range []string{"", "0.3", "1.0.1", "2.0", "latest"} {
		_, err := ParseSpecVersion(s)
		assert.Error(t, err, s)
	}
}

func TestLatest(t *testing.T) {
	assert.Equal(t, V1, Latest())
}
