package types

import (
	"encoding/json"
	"fmt"
	"time"
)

// flexTimeLayouts are tried in order when parsing a timestamp string.
// Covers RFC3339 and the zone-less ISO forms clients commonly send.
var flexTimeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// FlexTime is a time.Time that unmarshals from any common ISO-8601 string.
type FlexTime time.Time

// UnmarshalJSON implements the json.Unmarshaler interface.
func (f *FlexTime) UnmarshalJSON(data []byte) error {
	if len(data) == 0 || string(data) == "null" {
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("FlexTime: expected a timestamp string")
	}

	for _, layout := range flexTimeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			*f = FlexTime(t.UTC())
			return nil
		}
	}

	return fmt.Errorf("FlexTime: invalid timestamp %q", s)
}

// MarshalJSON implements the json.Marshaler interface.
func (f FlexTime) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Time(f))
}

// Time converts FlexTime back to time.Time.
func (f FlexTime) Time() time.Time {
	return time.Time(f)
}
