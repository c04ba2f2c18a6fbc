package entity

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// Experience accepts either a JSON number or a JSON string ("5", "5 years")
// and is always stored as text.
type Experience string

func (e *Experience) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*e = ""
		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("experience: %w", err)
		}
		*e = Experience(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("experience must be a string or a number: %w", err)
	}
	if i, err := n.Int64(); err == nil {
		*e = Experience(strconv.FormatInt(i, 10))
		return nil
	}
	*e = Experience(n.String())
	return nil
}

func (e Experience) String() string {
	return string(e)
}
