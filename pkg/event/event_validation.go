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
	"sort"

	"knative.dev/pkg/apis"

	"knative.dev/ceformat/pkg/event/types"
)

// Validate checks the whole attribute set, in a fixed field order so
// failures are deterministic.
func (e *Event) Validate(ctx context.Context) *apis.FieldError {
	var errs *apis.FieldError
	if e.id == "" {
		errs = errs.Also(apis.ErrMissingField(AttrID))
	}
	if e.source == nil {
		errs = errs.Also(apis.ErrMissingField(AttrSource))
	}
	if e.eventType == "" {
		errs = errs.Also(apis.ErrMissingField(AttrType))
	}
	if _, err := types.ParseSpecVersion(string(e.specVersion)); err != nil {
		errs = errs.Also(apis.ErrInvalidValue(string(e.specVersion), AttrSpecVersion, err.Error()))
	}
	if e.dataSchema != nil {
		if err := e.dataSchema.Validate(); err != nil {
			errs = errs.Also(apis.ErrInvalidValue(e.dataSchema.String(), AttrDataSchema, err.Error()))
		}
	}
	if e.binary {
		if _, ok := e.data.(types.Binary); !ok {
			errs = errs.Also(apis.ErrInvalidValue(e.data, AttrData, "binary-classified data must hold bytes"))
		}
	}

	names := make([]string, 0, len(e.extensions))
	for name := range e.extensions {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if IsReservedAttr(name) {
			errs = errs.Also(apis.ErrInvalidKeyName(name, "extensions", "collides with a reserved attribute name"))
			continue
		}
		if !validAttributeName.MatchString(name) {
			errs = errs.Also(apis.ErrInvalidKeyName(name, "extensions", "attribute names must be lowercase alphanumeric, starting with a letter"))
			continue
		}
		if err := types.ValidateExtensionValue(e.extensions[name]); err != nil {
			errs = errs.Also(apis.ErrInvalidValue(e.extensions[name], name, err.Error()).ViaField("extensions"))
		}
	}
	return errs
}
