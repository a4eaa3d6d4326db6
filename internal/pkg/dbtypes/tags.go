package dbtypes

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
)

// Tags is a JSON-encoded string array column. It carries display metadata
// only; ownership state lives in dedicated columns on the owning tables.
type Tags []string

func (t Tags) Value() (driver.Value, error) {
	if t == nil {
		return "[]", nil
	}
	b, err := json.Marshal(t)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (t *Tags) Scan(src any) error {
	if src == nil {
		*t = nil
		return nil
	}
	switch v := src.(type) {
	case []byte:
		return json.Unmarshal(v, t)
	case string:
		return json.Unmarshal([]byte(v), t)
	}
	return errors.New("unsupported tags column type")
}

// Contains reports whether tag is present.
func (t Tags) Contains(tag string) bool {
	for _, v := range t {
		if v == tag {
			return true
		}
	}
	return false
}
