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
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"knative.dev/pkg/apis"

	"knative.dev/ceformat/pkg/event"
	"knative.dev/ceformat/pkg/event/types"
)

const validJSON = `{"data":null,"source":"https://example.com/event-producer","id":"b96267e2-87be-4f7a-b87c-82f64360d954","type":"com.example.string","specversion":"1.0","time":"2022-07-16T12:03:20.519216+04:00","subject":null,"datacontenttype":null,"dataschema":null}`

var validJSONBatch = "[" + validJSON + "]"

func testAttributes() event.Attributes {
	return event.Attributes{
		"type":        "com.example.string",
		"source":      "https://example.com/event-producer",
		"id":          "b96267e2-87be-4f7a-b87c-82f64360d954",
		"specversion": "1.0",
		"time":        "2022-07-16T12:03:20.519216+04:00",
	}
}

func TestSerialize(t *testing.T) {
	e, err := event.New(testAttributes())
	require.NoError(t, err)

	got, err := Serialize(e)
	require.NoError(t, err)
	assert.Equal(t, validJSON, string(got))
}

func TestSerializeBatch(t *testing.T) {
	e, err := event.New(testAttributes())
	require.NoError(t, err)

	got, err := SerializeBatch([]*event.Event{e})
	require.NoError(t, err)
	assert.Equal(t, validJSONBatch, string(got))

	empty, err := SerializeBatch(nil)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(empty))
}

func TestDeserialize(t *testing.T) {
	e, err := Deserialize([]byte(validJSON))
	require.NoError(t, err)

	assert.Equal(t, "com.example.string", e.Type())
	assert.Equal(t, "https", e.Source().Scheme)
	assert.Equal(t, "example.com", e.Source().Host)
	assert.Equal(t, "/event-producer", e.Source().Path)
	assert.Nil(t, e.Data())
	assert.Equal(t, "b96267e2-87be-4f7a-b87c-82f64360d954", e.ID())
	assert.Equal(t, types.V1, e.SpecVersion())
	want := time.Date(2022, time.July, 16, 12, 3, 20, 519216000, time.FixedZone("", 4*60*60))
	assert.True(t, e.Time().Equal(want))
	assert.Nil(t, e.Subject())
	assert.Nil(t, e.DataContentType())
	assert.Nil(t, e.DataSchema())
}

func TestDeserializeBatch(t *testing.T) {
	events, err := DeserializeBatch([]byte(validJSONBatch))
	require.NoError(t, err)
	require.Len(t, events, 1)

	single, err := Deserialize([]byte(validJSON))
	require.NoError(t, err)

	gotBatch, err := Serialize(events[0])
	require.NoError(t, err)
	gotSingle, err := Serialize(single)
	require.NoError(t, err)
	assert.Equal(t, string(gotSingle), string(gotBatch))
}

func TestSerializeDataBranching(t *testing.T) {
	tests := []struct {
		name       string
		data       any
		wantBase64 bool
	}{{
		name: "string",
		data: "test",
	}, {
		name:       "bytes",
		data:       []byte("test"),
		wantBase64: true,
	}, {
		name:       "binary",
		data:       types.Binary{2, 3, 5, 7},
		wantBase64: true,
	}, {
		name:       "buffer view",
		data:       bytes.NewBufferString("test"),
		wantBase64: true,
	}}
	for _, tc := range tests {
		for _, batch := range []bool{false, true} {
			name := tc.name + "/single"
			if batch {
				name = tc.name + "/batch"
			}
			t.Run(name, func(t *testing.T) {
				e, err := event.New(testAttributes())
				require.NoError(t, err)
				require.NoError(t, e.SetData(tc.data))

				var raw []byte
				if batch {
					raw, err = SerializeBatch([]*event.Event{e})
				} else {
					raw, err = Serialize(e)
				}
				require.NoError(t, err)

				s := string(raw)
				assert.Equal(t, tc.wantBase64, strings.Contains(s, `"data_base64":`))
				assert.Equal(t, !tc.wantBase64, strings.Contains(s, `"data":`))

				parsed := map[string]any{}
				if batch {
					var elements []map[string]any
					require.NoError(t, json.Unmarshal(raw, &elements))
					require.Len(t, elements, 1)
					parsed = elements[0]
				} else {
					require.NoError(t, json.Unmarshal(raw, &parsed))
				}
				_, hasBase64 := parsed["data_base64"]
				_, hasData := parsed["data"]
				assert.Equal(t, tc.wantBase64, hasBase64)
				assert.Equal(t, !tc.wantBase64, hasData)
			})
		}
	}
}

func TestSerializeBinaryShapeAlwaysBase64(t *testing.T) {
	for _, data := range []any{"test", []byte("test"), types.Binary("test")} {
		attrs := testAttributes()
		attrs["data"] = data
		e, err := event.New(attrs, event.WithShape(event.Shape{BinaryData: true}))
		require.NoError(t, err)

		raw, err := Serialize(e)
		require.NoError(t, err)
		assert.Contains(t, string(raw), `"data_base64":"dGVzdA=="`)
		assert.NotContains(t, string(raw), `"data":`)
	}
}

func TestDeserializeBase64(t *testing.T) {
	tests := []struct {
		name string
		b64  string
		want types.Binary
	}{{
		name: "text bytes",
		b64:  "dGVzdA==",
		want: types.Binary("test"),
	}, {
		name: "raw bytes",
		b64:  "AgMFBw==",
		want: types.Binary{2, 3, 5, 7},
	}}
	payload := func(b64 string) string {
		return `{"data_base64":"` + b64 + `","source":"https://example.com/event-producer","id":"b96267e2-87be-4f7a-b87c-82f64360d954","type":"com.example.string","specversion":"1.0","time":"2022-07-16T12:03:20.519216+04:00","subject":null,"datacontenttype":null,"dataschema":null}`
	}
	shapes := map[string][]Option{
		"generic": nil,
		"binary":  {WithShape(event.Shape{BinaryData: true})},
	}
	for _, tc := range tests {
		for shapeName, opts := range shapes {
			t.Run(tc.name+"/"+shapeName, func(t *testing.T) {
				e, err := Deserialize([]byte(payload(tc.b64)), opts...)
				require.NoError(t, err)
				require.True(t, e.IsBinaryData())
				assert.True(t, e.Data().(types.Binary).Equal(tc.want))

				events, err := DeserializeBatch([]byte("["+payload(tc.b64)+"]"), opts...)
				require.NoError(t, err)
				require.Len(t, events, 1)
				assert.True(t, events[0].Data().(types.Binary).Equal(tc.want))
			})
		}
	}
}

func TestRoundTrip(t *testing.T) {
	attrs := testAttributes()
	attrs["subject"] = "mynewfile.jpg"
	attrs["datacontenttype"] = "application/json"
	attrs["dataschema"] = "https://example.com/schema"
	attrs["data"] = map[string]any{"message": "hello", "count": json.Number("3"), "ok": true, "tags": []any{"a", "b"}}
	attrs["correlationid"] = "abc-123"

	e, err := event.New(attrs)
	require.NoError(t, err)

	first, err := Serialize(e)
	require.NoError(t, err)

	decoded, err := Deserialize(first)
	require.NoError(t, err)

	second, err := Serialize(decoded)
	require.NoError(t, err)
	assert.Equal(t, string(first), string(second))

	batch, err := SerializeBatch([]*event.Event{e, e})
	require.NoError(t, err)
	decodedBatch, err := DeserializeBatch(batch)
	require.NoError(t, err)
	require.Len(t, decodedBatch, 2)
	reserialized, err := SerializeBatch(decodedBatch)
	require.NoError(t, err)
	assert.Equal(t, string(batch), string(reserialized))
}

func TestDeserializeErrors(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		batch   bool
	}{{
		name:    "not json",
		payload: "not json",
	}, {
		name:    "array in single form",
		payload: validJSONBatch,
	}, {
		name:    "null in single form",
		payload: "null",
	}, {
		name:    "trailing data",
		payload: validJSON + validJSON,
	}, {
		name:    "object in batch form",
		payload: validJSON,
		batch:   true,
	}, {
		name:    "null in batch form",
		payload: "null",
		batch:   true,
	}, {
		name:    "null element in batch",
		payload: "[null]",
		batch:   true,
	}, {
		name:    "scalar element in batch",
		payload: "[42]",
		batch:   true,
	}}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var err error
			if tc.batch {
				_, err = DeserializeBatch([]byte(tc.payload))
			} else {
				_, err = Deserialize([]byte(tc.payload))
			}
			require.Error(t, err)

			var de *DeserializationError
			assert.ErrorAs(t, err, &de)
		})
	}
}

func TestDeserializeValidationErrors(t *testing.T) {
	tests := []struct {
		name    string
		payload string
	}{{
		name:    "missing type",
		payload: `{"source":"https://example.com/event-producer","id":"1"}`,
	}, {
		name:    "missing source",
		payload: `{"type":"com.example.string","id":"1"}`,
	}, {
		name:    "bad specversion",
		payload: `{"type":"com.example.string","source":"/s","specversion":"0.3"}`,
	}, {
		name:    "bad time",
		payload: `{"type":"com.example.string","source":"/s","time":"tomorrow"}`,
	}, {
		name:    "bad base64",
		payload: `{"type":"com.example.string","source":"/s","data_base64":"%%%"}`,
	}, {
		name:    "structured extension",
		payload: `{"type":"com.example.string","source":"/s","myext":{"nested":true}}`,
	}}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Deserialize([]byte(tc.payload))
			require.Error(t, err)

			var fe *apis.FieldError
			assert.ErrorAs(t, err, &fe)
			var de *DeserializationError
			assert.False(t, errors.As(err, &de))
		})
	}
}

func TestDeserializeBatchIsAtomic(t *testing.T) {
	good := validJSON
	bad := `{"id":"no-type-or-source"}`

	events, err := DeserializeBatch([]byte("[" + good + "," + bad + "]"))
	assert.Error(t, err)
	assert.Nil(t, events)
}

func TestDeserializeDefaultsMissingOptionalAttributes(t *testing.T) {
	e, err := Deserialize([]byte(`{"type":"com.example.string","source":"some-microservice"}`))
	require.NoError(t, err)
	assert.Equal(t, types.Latest(), e.SpecVersion())
	assert.NotEmpty(t, e.ID())
}

func TestRoundTripNumericExtension(t *testing.T) {
	e, err := Deserialize([]byte(`{"data":null,"source":"/s","id":"1","type":"t","specversion":"1.0","subject":null,"datacontenttype":null,"dataschema":null,"retrycount":3,"threshold":0.25}`))
	require.NoError(t, err)

	raw, err := Serialize(e)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"retrycount":3`)
	assert.Contains(t, string(raw), `"threshold":0.25`)
}
