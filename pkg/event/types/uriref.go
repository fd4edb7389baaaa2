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
	"net/url"
)

// URIRef is a URI-reference per RFC 3986 Section 4.1: either an absolute
// URI or a relative reference such as an absolute path, a relative path, or
// a bare token.
type URIRef struct {
	url.URL
}

// ParseURIRef decomposes s into its URI components. Unlike ParseURI, no
// scheme is required.
func ParseURIRef(s string) (*URIRef, error) {
	u, err := url.Parse(s)
	if err != nil {
		return nil, err
	}
	return &URIRef{URL: *u}, nil
}

// String reconstructs the canonical text form from the parsed components.
func (u URIRef) String() string {
	return u.URL.String()
}

func (u URIRef) MarshalJSON() ([]byte, error) {
	return json.Marshal(u.String())
}

func (u *URIRef) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	parsed, err := ParseURIRef(s)
	if err != nil {
		return err
	}
	*u = *parsed
	return nil
}
