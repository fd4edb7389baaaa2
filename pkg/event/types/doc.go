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

// Package types implements the CloudEvents attribute types: the
// specification version enum, URI and URI-reference, the RFC 3339
// timestamp, and the binary payload marker. Each type parses from and
// renders to its canonical string form, and parsing then rendering a
// conformant input yields the original string.
//
// Values are immutable once parsed and safe to share across goroutines.
package types
