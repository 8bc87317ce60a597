package users

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// ID identifies a user, participant or match. The backend sends integers;
// the client keeps them as strings so token subjects compare directly.
type ID string

func (id ID) String() string {
	return string(id)
}

// Int returns the numeric form used in request bodies.
func (id ID) Int() (int64, error) {
	return strconv.ParseInt(string(id), 10, 64)
}

// MarshalJSON emits a bare number only when that number prints back as
// the same ID, so "007" or "+7" stay strings.
func (id ID) MarshalJSON() ([]byte, error) {
	if n, err := id.Int(); err == nil && strconv.FormatInt(n, 10) == string(id) {
		return []byte(string(id)), nil
	}
	return json.Marshal(string(id))
}

func (id *ID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*id = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = ID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("id: %w", err)
	}
	if _, err := n.Int64(); err != nil {
		return fmt.Errorf("id %s is not an integer", n)
	}
	*id = ID(n.String())
	return nil
}
