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

package event

// CloudEvents context attribute names.
const (
	// AttrID is required. Unique event identifier within the producer+source scope.
	AttrID = "id"
	// AttrSource is required. URI-reference identifying the event producer.
	AttrSource = "source"
	// AttrType is required. Describes the occurrence, e.g. "com.example.object.deleted.v2".
	AttrType = "type"
	// AttrSpecVersion is required. The CloudEvents specification version.
	AttrSpecVersion = "specversion"
	// AttrTime is optional. RFC 3339 timestamp of the occurrence.
	AttrTime = "time"
	// AttrSubject is optional. Subject of the event within the source's context.
	AttrSubject = "subject"
	// AttrDataContentType is optional. RFC 2046 media type of the data attribute.
	AttrDataContentType = "datacontenttype"
	// AttrDataSchema is optional. Absolute URI of the schema the data adheres to.
	AttrDataSchema = "dataschema"
	// AttrData is optional. The event payload.
	AttrData = "data"

	// AttrDataBase64 is reserved by the JSON event format for base64-encoded
	// binary payloads. It is never a context attribute and never a valid
	// extension name.
	AttrDataBase64 = "data_base64"
)

var reservedAttrs = map[string]struct{}{
	AttrID:              {},
	AttrSource:          {},
	AttrType:            {},
	AttrSpecVersion:     {},
	AttrTime:            {},
	AttrSubject:         {},
	AttrDataContentType: {},
	AttrDataSchema:      {},
	AttrData:            {},
	AttrDataBase64:      {},
}

// IsReservedAttr reports whether name is a CloudEvents context attribute
// name (or the JSON format's data_base64 key) and therefore unavailable as
// an extension attribute name.
func IsReservedAttr(name string) bool {
	_, ok := reservedAttrs[name]
	return ok
}
