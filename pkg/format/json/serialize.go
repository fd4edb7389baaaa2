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

package json

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"sort"

	"github.com/pkg/errors"

	"knative.dev/ceformat/pkg/event"
	"knative.dev/ceformat/pkg/event/types"
)

// Serialize renders e in the CloudEvents JSON event format.
func Serialize(e *event.Event) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')

	if e.IsBinaryData() {
		b, ok := e.Data().(types.Binary)
		if !ok {
			return nil, errors.Errorf("binary-classified data holds %T, not bytes", e.Data())
		}
		writeKey(&buf, event.AttrDataBase64)
		if err := writeValue(&buf, base64.StdEncoding.EncodeToString(b)); err != nil {
			return nil, err
		}
	} else {
		writeKey(&buf, event.AttrData)
		if err := writeValue(&buf, e.Data()); err != nil {
			return nil, err
		}
	}

	attrs := []struct {
		key   string
		value any
	}{
		{event.AttrSource, e.Source()},
		{event.AttrID, e.ID()},
		{event.AttrType, e.Type()},
		{event.AttrSpecVersion, e.SpecVersion()},
		{event.AttrTime, e.Time()},
		{event.AttrSubject, e.Subject()},
		{event.AttrDataContentType, e.DataContentType()},
		{event.AttrDataSchema, e.DataSchema()},
	}
	for _, attr := range attrs {
		buf.WriteByte(',')
		writeKey(&buf, attr.key)
		if err := writeValue(&buf, attr.value); err != nil {
			return nil, err
		}
	}

	extensions := e.Extensions()
	names := make([]string, 0, len(extensions))
	for name := range extensions {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		buf.WriteByte(',')
		writeKey(&buf, name)
		if err := writeValue(&buf, extensions[name]); err != nil {
			return nil, err
		}
	}

	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// SerializeBatch renders events as a JSON array, applying the single-event
// rules to each element in order.
func SerializeBatch(events []*event.Event) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('[')
	for i, e := range events {
		if i > 0 {
			buf.WriteByte(',')
		}
		b, err := Serialize(e)
		if err != nil {
			return nil, errors.Wrapf(err, "event %d", i)
		}
		buf.Write(b)
	}
	buf.WriteByte(']')
	return buf.Bytes(), nil
}

func writeKey(buf *bytes.Buffer, key string) {
	buf.WriteByte('"')
	buf.WriteString(key)
	buf.WriteString(`":`)
}

func writeValue(buf *bytes.Buffer, v any) error {
	var tmp bytes.Buffer
	enc := json.NewEncoder(&tmp)
	// Keep &, < and > literal so output matches other CloudEvents
	// implementations byte for byte.
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return errors.Wrap(err, "cannot render attribute value")
	}
	buf.Write(bytes.TrimRight(tmp.Bytes(), "\n"))
	return nil
}
