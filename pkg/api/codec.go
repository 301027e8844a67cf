package api

import "encoding/json"

// JSONCodec marshals plain Go structs with encoding/json. It is registered
// under the name "json" so that it replaces connect's protobuf-only default
// for the application/json content type.
type JSONCodec struct{}

// Name returns the codec name connect matches against the content subtype.
func (JSONCodec) Name() string { return "json" }

// Marshal encodes v as JSON.
func (JSONCodec) Marshal(v any) ([]byte, error) {
	return json.Marshal(v)
}

// Unmarshal decodes data into v. An empty body leaves v untouched.
func (JSONCodec) Unmarshal(data []byte, v any) error {
	if len(data) == 0 {
		return nil
	}
	return json.Unmarshal(data, v)
}
