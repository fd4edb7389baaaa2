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

	"github.com/pkg/errors"
	"knative.dev/pkg/apis"

	"knative.dev/ceformat/pkg/event"
	"knative.dev/ceformat/pkg/event/types"
)

// Deserialize parses a single CloudEvents JSON object into a validated
// Event. The optional WithShape selects subtype-specific validation;
// validation itself is the factory's, defaults included.
func Deserialize(payload []byte, opts ...Option) (*event.Event, error) {
	o := buildOptions(opts)

	var raw map[string]any
	if err := decodeValue(payload, &raw); err != nil {
		return nil, err
	}
	if raw == nil {
		return nil, &DeserializationError{Err: errors.New("expected a JSON object")}
	}
	return eventFromRaw(raw, o)
}

// DeserializeBatch parses a JSON array of CloudEvents objects. The batch is
// atomic: the first invalid element fails the whole batch and no partial
// result is returned.
func DeserializeBatch(payload []byte, opts ...Option) ([]*event.Event, error) {
	o := buildOptions(opts)

	var raws []map[string]any
	if err := decodeValue(payload, &raws); err != nil {
		return nil, err
	}
	if raws == nil {
		return nil, &DeserializationError{Err: errors.New("expected a JSON array")}
	}

	events := make([]*event.Event, 0, len(raws))
	for i, raw := range raws {
		if raw == nil {
			return nil, &DeserializationError{Err: errors.Errorf("element %d is not an object", i)}
		}
		e, err := eventFromRaw(raw, o)
		if err != nil {
			return nil, errors.Wrapf(err, "element %d", i)
		}
		events = append(events, e)
	}
	return events, nil
}

// decodeValue decodes exactly one JSON value, keeping numbers as
// json.Number so they re-render without loss.
func decodeValue(payload []byte, into any) error {
	dec := json.NewDecoder(bytes.NewReader(payload))
	dec.UseNumber()
	if err := dec.Decode(into); err != nil {
		return &DeserializationError{Err: err}
	}
	if dec.More() {
		return &DeserializationError{Err: errors.New("trailing data after JSON document")}
	}
	return nil
}

// eventFromRaw maps the decoded object to factory attributes. A present
// data_base64 key is decoded to bytes and carried as the data attribute;
// its presence alone is sufficient to classify the payload binary.
func eventFromRaw(raw map[string]any, o *options) (*event.Event, error) {
	attrs := make(event.Attributes, len(raw))
	for name, value := range raw {
		attrs[name] = value
	}

	if b64, ok := attrs[event.AttrDataBase64]; ok {
		delete(attrs, event.AttrDataBase64)
		if b64 != nil {
			s, ok := b64.(string)
			if !ok {
				return nil, apis.ErrInvalidValue(b64, event.AttrDataBase64, "must be a base64 string")
			}
			decoded, err := base64.StdEncoding.DecodeString(s)
			if err != nil {
				return nil, apis.ErrInvalidValue(s, event.AttrDataBase64, err.Error())
			}
			attrs[event.AttrData] = types.Binary(decoded)
		}
	}

	return event.New(attrs, event.WithShape(o.shape))
}
