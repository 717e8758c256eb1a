package header

import (
	"fmt"
	"time"

	"github.com/ShadowGabbo/mua/dateenc"
	"github.com/ShadowGabbo/mua/muaerr"
)

// Date is the "Date" header: a zoned instant.
type Date struct {
	when time.Time
}

// NewDate constructs a Date header.
func NewDate(when time.Time) Date {
	return Date{when: when}
}

// Time returns the header's instant, with its original zone.
func (d Date) Time() time.Time { return d.when }

func (Date) Tag() string { return "Date" }

func (d Date) Encode() string {
	return "Date: " + dateenc.Encode(d.when)
}

func (Date) header() {}

// DecodeDate parses a raw "Date" header value (without the "Date: "
// prefix).
func DecodeDate(raw string) (Date, error) {
	if raw == "" {
		return Date{}, fmt.Errorf("%w: Date value must not be empty", muaerr.ErrEmptyInput)
	}
	t, err := dateenc.Decode(raw)
	if err != nil {
		return Date{}, fmt.Errorf("%w: %v", muaerr.ErrMalformedDate, err)
	}
	return NewDate(t), nil
}
