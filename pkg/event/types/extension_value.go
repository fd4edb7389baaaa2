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
	"encoding/json"
	"fmt"
)

// ValidateExtensionValue checks v against the closed set of scalar kinds an
// extension attribute may carry on the wire: string, boolean, or number.
// json.Number is included because it is what JSON decoding produces for
// numeric attributes. Nested structures are rejected.
func ValidateExtensionValue(v any) error {
	switch v.(type) {
	case string, bool,
		int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64,
		json.Number:
		return nil
	}
	return fmt.Errorf("extension values must be a string, boolean or number, got %T", v)
}
