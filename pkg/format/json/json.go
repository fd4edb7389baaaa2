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

// Package json implements the CloudEvents JSON event format for single
// events and batches, including the data/data_base64 branching rule for
// binary payloads.
//
// Emitted key order is fixed: data (or data_base64) first, then source, id,
// type, specversion, time, subject, datacontenttype, dataschema, then
// extension attributes in sorted name order. Unset optional context
// attributes are emitted as JSON null. The data_base64 key appears only for
// binary-classified payloads and is never accompanied by data; a present
// text payload emits data and never data_base64; an absent payload emits
// data as null and omits data_base64 entirely. Output is therefore
// byte-deterministic for a fixed attribute set.
package json

import (
	"knative.dev/ceformat/pkg/event"
)

type options struct {
	shape event.Shape
}

// Option configures deserialization.
type Option func(*options)

// WithShape validates inbound JSON against a concrete event subtype's
// declared attribute types, e.g. a binary-typed data attribute.
func WithShape(s event.Shape) Option {
	return func(o *options) {
		o.shape = s
	}
}

func buildOptions(opts []Option) *options {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// DeserializationError reports input that is not a CloudEvents JSON
// document of the expected shape: not valid JSON, not an object in single
// form, or not an array of objects in batch form. Attribute-level failures
// surface as *apis.FieldError instead.
type DeserializationError struct {
	Err error
}

func (e *DeserializationError) Error() string {
	return "invalid CloudEvents JSON: " + e.Err.Error()
}

func (e *DeserializationError) Unwrap() error {
	return e.Err
}
