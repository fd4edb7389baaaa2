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

import (
	"context"
	"time"

	"github.com/google/uuid"
	"knative.dev/pkg/apis"

	"knative.dev/ceformat/pkg/event/types"
)

// Attributes is the raw attribute set handed to New, keyed by CloudEvents
// attribute name. Keys that are not context attributes become extension
// attributes. Nil values are treated as absent.
type Attributes map[string]any

// Option configures event construction.
type Option func(*Event)

// WithShape declares the concrete subtype's attribute types, e.g. a
// binary-typed data attribute.
func WithShape(s Shape) Option {
	return func(e *Event) {
		e.shape = s
	}
}

// New builds a validated Event from attrs. The specversion defaults to the
// latest supported version and the id to a fresh UUID when omitted; type
// and source must be supplied. All validation failures are *apis.FieldError.
func New(attrs Attributes, opts ...Option) (*Event, error) {
	e := &Event{}
	for _, opt := range opts {
		opt(e)
	}

	for name, value := range attrs {
		if value == nil {
			continue
		}
		if err := e.setAttribute(name, value); err != nil {
			return nil, err
		}
	}

	if e.specVersion == "" {
		e.specVersion = types.Latest()
	}
	if e.id == "" {
		e.id = uuid.NewString()
	}

	if err := e.Validate(context.Background()); err != nil {
		return nil, err
	}
	return e, nil
}

func (e *Event) setAttribute(name string, value any) error {
	switch name {
	case AttrID:
		s, err := stringAttribute(name, value)
		if err != nil {
			return err
		}
		return e.SetID(s)
	case AttrSource:
		s, err := stringAttribute(name, value)
		if err != nil {
			return err
		}
		return e.SetSource(s)
	case AttrType:
		s, err := stringAttribute(name, value)
		if err != nil {
			return err
		}
		return e.SetType(s)
	case AttrSpecVersion:
		s, err := stringAttribute(name, value)
		if err != nil {
			return err
		}
		return e.SetSpecVersion(s)
	case AttrTime:
		switch t := value.(type) {
		case types.Timestamp:
			e.time = &t
			return nil
		case *types.Timestamp:
			e.time = t
			return nil
		case time.Time:
			e.time = &types.Timestamp{Time: t.Truncate(time.Microsecond)}
			return nil
		}
		s, err := stringAttribute(name, value)
		if err != nil {
			return err
		}
		return e.SetTime(s)
	case AttrSubject:
		s, err := stringAttribute(name, value)
		if err != nil {
			return err
		}
		e.SetSubject(s)
		return nil
	case AttrDataContentType:
		s, err := stringAttribute(name, value)
		if err != nil {
			return err
		}
		e.SetDataContentType(s)
		return nil
	case AttrDataSchema:
		s, err := stringAttribute(name, value)
		if err != nil {
			return err
		}
		return e.SetDataSchema(s)
	case AttrData:
		return e.SetData(value)
	case AttrDataBase64:
		return apis.ErrInvalidKeyName(name, "attributes", "reserved for the JSON event format")
	}
	return e.SetExtension(name, value)
}

func stringAttribute(name string, v any) (string, error) {
	s, ok := v.(string)
	if !ok {
		return "", apis.ErrInvalidValue(v, name, "must be a string")
	}
	return s, nil
}
