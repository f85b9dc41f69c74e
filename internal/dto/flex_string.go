package dto

import "encoding/json"

// FlexString binds a JSON string or number to a string. The front end sends
// strings, but task ids, answers and epoch-millisecond timestamps arrive as
// JSON numbers from some clients; a display-only field must never make the
// whole submission unbindable.
type FlexString string

func (s *FlexString) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*s = ""
		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var v string
		if err := json.Unmarshal(data, &v); err != nil {
			return err
		}
		*s = FlexString(v)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	// Number() preserves the literal digits, so epoch milliseconds survive
	// without float rounding.
	*s = FlexString(n.String())
	return nil
}
