package httpclient

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Time accepts epoch milliseconds (number or numeric string) or an RFC 3339 string.
// null decodes to the zero time.
type Time time.Time

// UnmarshalJSON parses the date formats the backend has been seen to emit.
func (t *Time) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || string(b) == "null" {
		*t = Time(time.Time{})
		return nil
	}

	if b[0] != '"' {
		ms, err := strconv.ParseFloat(string(b), 64)
		if err != nil {
			return fmt.Errorf("invalid date %s: %w", b, err)
		}
		*t = Time(time.UnixMilli(int64(ms)).UTC())
		return nil
	}

	s := strings.Trim(string(b), `"`)
	if s == "" {
		*t = Time(time.Time{})
		return nil
	}
	if ms, err := strconv.ParseInt(s, 10, 64); err == nil {
		*t = Time(time.UnixMilli(ms).UTC())
		return nil
	}
	parsed, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return fmt.Errorf("invalid date %q: %w", s, err)
	}
	*t = Time(parsed)
	return nil
}

// Image accepts either a single URL or a list of URLs and keeps the first.
type Image string

// UnmarshalJSON picks the first image from a string or array value.
func (i *Image) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || string(b) == "null" {
		*i = ""
		return nil
	}

	if b[0] == '[' {
		var list []string
		if err := json.Unmarshal(b, &list); err != nil {
			return err
		}
		*i = ""
		if len(list) > 0 {
			*i = Image(list[0])
		}
		return nil
	}

	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	*i = Image(s)
	return nil
}

// LooseString accepts a JSON string or number (zip codes and phones arrive as either).
type LooseString string

// UnmarshalJSON keeps numbers verbatim.
func (s *LooseString) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || string(b) == "null" {
		*s = ""
		return nil
	}
	if b[0] == '"' {
		var v string
		if err := json.Unmarshal(b, &v); err != nil {
			return err
		}
		*s = LooseString(v)
		return nil
	}
	*s = LooseString(b)
	return nil
}
