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
	"time"
)

const (
	rfc3339Micro   = "2006-01-02T15:04:05.000000Z07:00"
	rfc3339Seconds = "2006-01-02T15:04:05Z07:00"
)

// Timestamp is the timezone-aware instant carried by the CloudEvents time
// attribute. Precision is truncated to microseconds at parse time so that
// parse and render round-trip losslessly.
type Timestamp struct {
	time.Time
}

// ParseTimestamp reads RFC 3339 text with optional fractional seconds and a
// numeric UTC offset or "Z" suffix.
func ParseTimestamp(s string) (*Timestamp, error) {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return nil, err
	}
	return &Timestamp{Time: t.Truncate(time.Microsecond)}, nil
}

// String renders RFC 3339 text with exactly six fractional digits when the
// instant has a sub-second component and none otherwise. The numeric UTC
// offset is preserved; a zero offset renders as "Z".
func (t Timestamp) String() string {
	if t.Nanosecond() == 0 {
		return t.Format(rfc3339Seconds)
	}
	return t.Format(rfc3339Micro)
}

func (t Timestamp) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

func (t *Timestamp) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	parsed, err := ParseTimestamp(s)
	if err != nil {
		return err
	}
	*t = *parsed
	return nil
}
