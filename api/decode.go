package api

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// The backend is inconsistent about envelopes: some endpoints return the
// payload bare, others wrap it as {"status":..., "message":..., "data": ...}.
// Both shapes are normalized here, exactly once, so the services and models
// only ever see the bare payload.

type envelope struct {
	Data json.RawMessage `json:"data"`
}

// UnmarshalList decodes a list response that is either a bare JSON array or a
// {"data": [...]} envelope into v.
func UnmarshalList(data []byte, v interface{}) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		return json.Unmarshal(trimmed, v)
	}

	var env envelope
	if err := json.Unmarshal(trimmed, &env); err != nil {
		return fmt.Errorf("api: unexpected list response shape: %w", err)
	}
	if len(env.Data) == 0 || bytes.Equal(bytes.TrimSpace(env.Data), []byte("null")) {
		// Wrapped response with no data is an empty list, not an error.
		return nil
	}
	return json.Unmarshal(env.Data, v)
}

// UnmarshalData decodes a single-object response that is either bare or
// wrapped in a {"data": {...}} envelope into v.
func UnmarshalData(data []byte, v interface{}) error {
	trimmed := bytes.TrimSpace(data)

	var env envelope
	if err := json.Unmarshal(trimmed, &env); err == nil && len(env.Data) > 0 {
		return json.Unmarshal(env.Data, v)
	}
	return json.Unmarshal(trimmed, v)
}
