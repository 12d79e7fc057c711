package ioremote

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

// optInt is an integer that may come as a JSON number or as a string.
// Valid is false if the value was absent, null or empty.
type optInt struct {
	Val   int64
	Valid bool
}

func (o *optInt) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(bytes.TrimSpace(b)), `"`)
	s = strings.ReplaceAll(s, ",", "")
	if s == "" || s == "null" {
		return nil
	}

	i, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		f, ferr := strconv.ParseFloat(s, 64)
		if ferr != nil {
			return err
		}
		i = int64(f)
	}
	o.Val, o.Valid = i, true
	return nil
}

func (o optInt) int64Ptr() *int64 {
	if !o.Valid {
		return nil
	}
	res := o.Val
	return &res
}

func (o optInt) intPtr() *int {
	if !o.Valid {
		return nil
	}
	res := int(o.Val)
	return &res
}

// optString is a string that may come as a JSON string or as a number.
type optString string

func (o *optString) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || string(b) == "null" {
		return nil
	}
	if b[0] != '"' {
		*o = optString(b)
		return nil
	}

	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	*o = optString(strings.TrimSpace(s))
	return nil
}
