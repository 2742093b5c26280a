package models

import (
	"bytes"
	"fmt"
	"time"
)

const dateLayout = "2006-01-02"

// Date accepts either a calendar date or an RFC 3339 timestamp.
type Date struct {
	time.Time
}

func NewDate(t time.Time) *Date {
	return &Date{Time: t}
}

func (d *Date) UnmarshalJSON(b []byte) error {
	b = bytes.Trim(b, `"`)
	if len(b) == 0 || string(b) == "null" {
		d.Time = time.Time{}
		return nil
	}
	s := string(b)
	for _, layout := range []string{dateLayout, time.RFC3339Nano} {
		if t, err := time.Parse(layout, s); err == nil {
			d.Time = t.UTC()
			return nil
		}
	}
	return fmt.Errorf("invalid date %q, expected YYYY-MM-DD", s)
}

// TimePtr returns nil for a nil or zero date.
func (d *Date) TimePtr() *time.Time {
	if d == nil || d.IsZero() {
		return nil
	}
	t := d.Time
	return &t
}
