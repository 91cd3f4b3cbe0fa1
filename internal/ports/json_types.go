package ports

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

var jsonNull = []byte("null")

// StatusCode is an integer cod that the provider sometimes sends quoted
type StatusCode int

// UnmarshalJSON accepts 401, "401" and null
func (s *StatusCode) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, jsonNull) {
		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var text string
		if err := json.Unmarshal(data, &text); err != nil {
			return err
		}
		code, err := strconv.Atoi(text)
		if err != nil {
			return fmt.Errorf("status code %q is not numeric", text)
		}
		*s = StatusCode(code)
		return nil
	}

	var number json.Number
	if err := json.Unmarshal(data, &number); err != nil {
		return err
	}
	if code, err := number.Int64(); err == nil {
		*s = StatusCode(code)
		return nil
	}
	value, err := number.Float64()
	if err != nil {
		return err
	}
	*s = StatusCode(int(value))
	return nil
}

// FlexString is text the provider sends either as a string or as a number
type FlexString string

// UnmarshalJSON accepts "text", 200 and null
func (f *FlexString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, jsonNull) {
		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var text string
		if err := json.Unmarshal(data, &text); err != nil {
			return err
		}
		*f = FlexString(text)
		return nil
	}

	var number json.Number
	if err := json.Unmarshal(data, &number); err != nil {
		return err
	}
	*f = FlexString(number.String())
	return nil
}

// String returns the text value
func (f FlexString) String() string {
	return string(f)
}
