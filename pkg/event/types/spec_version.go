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

import "fmt"

// SpecVersion is the version of the CloudEvents specification an event
// conforms to.
type SpecVersion string

// V1 is the CloudEvents 1.0 specification.
const V1 SpecVersion = "1.0"

// Latest returns the newest specification version this library supports.
func Latest() SpecVersion {
	return V1
}

// ParseSpecVersion converts s into a recognized SpecVersion.
func ParseSpecVersion(s string) (SpecVersion, error) {
	switch SpecVersion(s) {
	case V1:
		return V1, nil
	}
	return "", fmt.Errorf("unrecognized specversion %q", s)
}

func (v SpecVersion) String() string {
	return string(v)
}
