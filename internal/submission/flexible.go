package submission

import (
	"encoding/json"
	"strconv"
)

// FlexibleString accepts a JSON string or number and keeps its text form.
// The render timestamp arrives either way depending on the client build.
type FlexibleString string

// UnmarshalJSON implements json.Unmarshaler.
func (f *FlexibleString) UnmarshalJSON(data []byte) error {
	if len(data) == 0 || string(data) == "null" {
		*f = ""
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = FlexibleString(s)
		return nil
	}
	var n float64
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*f = FlexibleString(strconv.FormatFloat(n, 'f', -1, 64))
	return nil
}

func (f FlexibleString) String() string {
	return string(f)
}
