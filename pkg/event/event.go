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

// Package event holds the CloudEvent entity: required and optional context
// attributes composed from the field types in pkg/event/types, an optional
// payload classified once as text or binary, and an open bag of extension
// attributes. Events are built through New, which applies specification
// defaults and validates every attribute.
package event

import (
	"regexp"

	"knative.dev/pkg/apis"

	"knative.dev/ceformat/pkg/event/types"
)

// Only allow lowercase alphanumeric, starting with letters.
var validAttributeName = regexp.MustCompile(`^[a-z][a-z0-9]*$`)

// Shape describes the declared attribute types of a concrete event subtype.
// The codec consults it instead of inspecting runtime values, so the number
// of caller-defined subtypes never matters to serialization.
type Shape struct {
	// BinaryData marks the data attribute as binary-typed: string payloads
	// coerce to bytes and the JSON wire form always uses data_base64,
	// whatever the runtime value.
	BinaryData bool
}

// Event is a CloudEvent.
type Event struct {
	id          string
	source      *types.URIRef
	eventType   string
	specVersion types.SpecVersion

	time            *types.Timestamp
	subject         *string
	dataContentType *string
	dataSchema      *types.URI

	data   any
	binary bool

	shape      Shape
	extensions map[string]any
}

// ID returns the event identifier.
func (e *Event) ID() string { return e.id }

// Source returns the producer URI-reference.
func (e *Event) Source() *types.URIRef { return e.source }

// Type returns the event type.
func (e *Event) Type() string { return e.eventType }

// SpecVersion returns the CloudEvents specification version.
func (e *Event) SpecVersion() types.SpecVersion { return e.specVersion }

// Time returns the occurrence timestamp, nil when unset.
func (e *Event) Time() *types.Timestamp { return e.time }

// Subject returns the event subject, nil when unset.
func (e *Event) Subject() *string { return e.subject }

// DataContentType returns the media type of the data attribute, nil when unset.
func (e *Event) DataContentType() *string { return e.dataContentType }

// DataSchema returns the data schema URI, nil when unset.
func (e *Event) DataSchema() *types.URI { return e.dataSchema }

// Data returns the payload: types.Binary when classified binary, otherwise
// any JSON-renderable value, or nil when absent.
func (e *Event) Data() any { return e.data }

// IsBinaryData reports whether the payload is classified binary and will be
// base64-encoded on the wire.
func (e *Event) IsBinaryData() bool { return e.binary }

// Shape returns the declared subtype shape.
func (e *Event) Shape() Shape { return e.shape }

// Extensions returns the extension attribute bag. The returned map is the
// event's own; callers must go through SetExtension to mutate it.
func (e *Event) Extensions() map[string]any { return e.extensions }

// SetID assigns the event identifier, which must be non-empty.
func (e *Event) SetID(id string) error {
	if id == "" {
		return apis.ErrMissingField(AttrID)
	}
	e.id = id
	return nil
}

// SetType assigns the event type, which must be non-empty.
func (e *Event) SetType(t string) error {
	if t == "" {
		return apis.ErrMissingField(AttrType)
	}
	e.eventType = t
	return nil
}

// SetSource parses and assigns the producer URI-reference.
func (e *Event) SetSource(source string) error {
	if source == "" {
		return apis.ErrMissingField(AttrSource)
	}
	ref, err := types.ParseURIRef(source)
	if err != nil {
		return apis.ErrInvalidValue(source, AttrSource, err.Error())
	}
	e.source = ref
	return nil
}

// SetSpecVersion parses and assigns the specification version.
func (e *Event) SetSpecVersion(v string) error {
	sv, err := types.ParseSpecVersion(v)
	if err != nil {
		return apis.ErrInvalidValue(v, AttrSpecVersion, err.Error())
	}
	e.specVersion = sv
	return nil
}

// SetTime parses and assigns the occurrence timestamp from RFC 3339 text.
func (e *Event) SetTime(s string) error {
	ts, err := types.ParseTimestamp(s)
	if err != nil {
		return apis.ErrInvalidValue(s, AttrTime, err.Error())
	}
	e.time = ts
	return nil
}

// SetSubject assigns the event subject.
func (e *Event) SetSubject(s string) {
	e.subject = &s
}

// SetDataContentType assigns the media type of the data attribute.
func (e *Event) SetDataContentType(ct string) {
	e.dataContentType = &ct
}

// SetDataSchema parses and assigns the data schema URI, which must be
// absolute.
func (e *Event) SetDataSchema(s string) error {
	u, err := types.ParseURI(s)
	if err != nil {
		return apis.ErrInvalidValue(s, AttrDataSchema, err.Error())
	}
	e.dataSchema = u
	return nil
}

// SetData assigns the payload and re-runs binary classification: a byte
// sequence ([]byte, types.Binary, *bytes.Buffer, json.RawMessage) always
// classifies binary; every other value is text/JSON-renderable unless the
// event's shape declares the data attribute binary-typed, in which case a
// string coerces to bytes and anything else is rejected.
func (e *Event) SetData(v any) error {
	if v == nil {
		e.data, e.binary = nil, false
		return nil
	}
	if b, ok := types.NewBinary(v); ok {
		e.data, e.binary = b, true
		return nil
	}
	if e.shape.BinaryData {
		s, ok := v.(string)
		if !ok {
			return apis.ErrInvalidValue(v, AttrData, "binary-typed data must be a byte sequence or string")
		}
		e.data, e.binary = types.Binary(s), true
		return nil
	}
	e.data, e.binary = v, false
	return nil
}

// SetExtension stores a producer-defined attribute. Names colliding with
// reserved attribute names are rejected, as are names outside the
// CloudEvents attribute-name grammar and values outside the permitted
// scalar kinds.
func (e *Event) SetExtension(name string, value any) error {
	if IsReservedAttr(name) {
		return apis.ErrInvalidKeyName(name, "extensions", "collides with a reserved attribute name")
	}
	if !validAttributeName.MatchString(name) {
		return apis.ErrInvalidKeyName(name, "extensions", "attribute names must be lowercase alphanumeric, starting with a letter")
	}
	if err := types.ValidateExtensionValue(value); err != nil {
		return apis.ErrInvalidValue(value, name, err.Error()).ViaField("extensions")
	}
	if e.extensions == nil {
		e.extensions = map[string]any{}
	}
	e.extensions[name] = value
	return nil
}
