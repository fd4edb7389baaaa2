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
	"net/url"
)

// URI is an absolute uniform resource identifier per RFC 3986 Section 4.3.
// Non-hierarchical URIs such as "mailto:" and "urn:" carry their entire
// post-scheme content in url.URL.Opaque, undivided.
type URI struct {
	url.URL
}

// ParseURI decomposes s into its URI components. It fails when s is not a
// parseable URL or carries no scheme.
func ParseURI(s string) (*URI, error) {
	u, err := url.Parse(s)
	if err != nil {
		return nil, err
	}
	if !u.IsAbs() {
		return nil, fmt.Errorf("URI %q is not absolute", s)
	}
	return &URI{URL: *u}, nil
}

// Validate reports whether the URI still satisfies the absolute-URI
// invariant.
func (u URI) Validate() error {
	if !u.IsAbs() {
		return fmt.Errorf("URI %q is not absolute", u.String())
	}
	return nil
}

// String reconstructs the canonical text form from the parsed components.
func (u URI) String() string {
	return u.URL.String()
}

func (u URI) MarshalJSON() ([]byte, error) {
	return json.Marshal(u.String())
}

func (u *URI) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	parsed, err := ParseURI(s)
	if err != nil {
		return err
	}
	*u = *parsed
	return nil
}
