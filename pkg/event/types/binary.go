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
	"bytes"
	"encoding/json"
)

// Binary is event data explicitly marked as binary-opaque rather than
// text. On the wire it is carried base64-encoded under data_base64.
type Binary []byte

// NewBinary normalizes a byte-sequence-like value into an owned Binary
// copy, detached from the caller's buffer. The second return reports
// whether v is byte-sequence-like at all.
func NewBinary(v any) (Binary, bool) {
	switch b := v.(type) {
	case Binary:
		return append(Binary(nil), b...), true
	case []byte:
		return append(Binary(nil), b...), true
	case json.RawMessage:
		return append(Binary(nil), b...), true
	case *bytes.Buffer:
		return append(Binary(nil), b.Bytes()...), true
	}
	return nil, false
}

// Equal reports byte-wise equality.
func (b Binary) Equal(other Binary) bool {
	return bytes.Equal(b, other)
}
