package caldate

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"
)

// Format string for calendar dates as audit sheets carry them:
// day first, dot separated.
const DottedDateFormat string = "02.01.2006"

// Format string for ISO8601 full-date. This is the form emitted over the wire.
const ISODateFormat string = "2006-01-02"

// Date is a calendar date without time-of-day, pinned to UTC midnight.
//
// Target dates of corrective actions are dates, not instants. This type keeps
// them from picking up a timezone on their way between JSON and PostgreSQL.
type Date time.Time

func (d Date) Time() time.Time {
	return time.Time(d)
}

func (d *Date) Equal(other *Date) bool {
	if (d == nil) != (other == nil) {
		return false
	}
	return d == nil || d.Time().Equal(other.Time())
}

// get string expression, formatted by ISODateFormat.
func (d Date) String() string {
	return time.Time(d).Format(ISODateFormat)
}

// Parse a dotted date expression, like "05.01.2024".
//
// Impossible dates ("31.02.2024") and other malformed input are errors.
func Parse(s string) (Date, error) {
	t, err := time.Parse(DottedDateFormat, s)
	if err != nil {
		return *new(Date), err
	}
	return Date(t), nil
}

// ParseOrNil reads a dotted date expression where "no date" is an acceptable
// answer: nil input, malformed input and impossible dates all yield nil.
func ParseOrNil(s *string) *Date {
	if s == nil {
		return nil
	}
	d, err := Parse(*s)
	if err != nil {
		return nil
	}
	return &d
}

// implement encoding/json.Marshaller
func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(fmt.Sprintf(`"%s"`, d)), nil
}

// implement encoding/json.Unmarshaller
//
// It accepts both the ISO form this type emits and the dotted form found in
// requests.
func (d *Date) UnmarshalJSON(b []byte) error {
	if bytes.Equal(b, []byte("null")) {
		return nil
	}

	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}

	for _, format := range []string{ISODateFormat, DottedDateFormat} {
		t, err := time.Parse(format, s)
		if err == nil {
			*d = Date(t)
			return nil
		}
	}

	return fmt.Errorf("failed to parse as a calendar date: %s", s)
}
