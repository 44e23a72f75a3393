package timeutil

import (
	"strconv"
	"time"

	"github.com/goccy/go-json"
)

// Time is an event timestamp. It marshals to unix milliseconds, the encoding
// the analytics backend expects for the event `_ts` field, and unmarshals
// both RFC3339 strings and integer milliseconds.
type Time time.Time

func Now() Time {
	return Time(time.Now())
}

func (t *Time) UnmarshalJSON(b []byte) error {
	s := string(b)
	if s == "null" || s == "{}" {
		return nil
	}
	if s[0] == '"' {
		tt, err := time.Parse(`"`+time.RFC3339+`"`, s)
		if err != nil {
			return err
		}
		*t = Time(tt)
	} else {
		i, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return err
		}
		*t = Time(time.UnixMilli(i))
	}
	return nil
}

func (t Time) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Time(t).UnixMilli())
}

func (t Time) Time() time.Time {
	return time.Time(t)
}
