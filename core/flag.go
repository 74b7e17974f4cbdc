package core

import (
	"database/sql/driver"
	"fmt"
	"strconv"
	"strings"
)

// Flag is a boolean stored and serialized as 0/1.
type Flag bool

func (f Flag) Int() int {
	if f {
		return 1
	}
	return 0
}

func (f Flag) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Itoa(f.Int())), nil
}

// UnmarshalJSON accepts 0/1, true/false and their quoted forms.
func (f *Flag) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "null" || s == "" {
		*f = false
		return nil
	}
	b, err := ParseFlag(s)
	if err != nil {
		return err
	}
	*f = b
	return nil
}

// Scan implements sql.Scanner.
func (f *Flag) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*f = false
	case bool:
		*f = Flag(v)
	case int64:
		*f = v != 0
	case []byte:
		return f.scanString(string(v))
	case string:
		return f.scanString(v)
	default:
		return fmt.Errorf("cannot scan %T into Flag", src)
	}
	return nil
}

func (f *Flag) scanString(s string) error {
	b, err := ParseFlag(s)
	if err != nil {
		return err
	}
	*f = b
	return nil
}

// Value implements driver.Valuer.
func (f Flag) Value() (driver.Value, error) {
	return int64(f.Int()), nil
}

// ParseFlag parses 0/1 and true/false (case-insensitive).
func ParseFlag(s string) (Flag, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "true":
		return true, nil
	case "0", "false":
		return false, nil
	}
	return false, fmt.Errorf("invalid flag value %q", s)
}
