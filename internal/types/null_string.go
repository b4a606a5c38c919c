package types

import "encoding/json"

// NullString is an optional string field that keeps absent and explicit
// null apart: Present is false when the key was missing from the payload,
// and true with a nil Value when the key was supplied as null.
type NullString struct {
	Present bool
	Value   *string
}

// UnmarshalJSON records that the key was present and captures its value,
// leaving Value nil for a JSON null.
func (n *NullString) UnmarshalJSON(data []byte) error {
	n.Present = true
	if string(data) == "null" {
		n.Value = nil
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	n.Value = &s
	return nil
}

// MarshalJSON renders the captured value, null included.
func (n NullString) MarshalJSON() ([]byte, error) {
	if n.Value == nil {
		return []byte("null"), nil
	}
	return json.Marshal(*n.Value)
}
