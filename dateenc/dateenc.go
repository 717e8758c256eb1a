// Package dateenc implements the RFC 5322 date codec spec.md §6 names:
// encode(zoned_instant) -> ascii and decode(ascii) -> zoned_instant.
package dateenc

import (
	"fmt"
	"net/mail"
	"time"
)

// layout is the canonical RFC 5322 date-time format this program emits:
// "Mon, 02 Jan 2006 15:04:05 -0700". Decoding is more permissive (it
// delegates to net/mail.ParseDate, which accepts the handful of RFC 5322
// variants real mail actually uses) but every message this program writes
// itself always uses this exact layout, so re-parsing its own output is
// always exact.
const layout = "Mon, 02 Jan 2006 15:04:05 -0700"

// Encode renders t in RFC 5322 form.
func Encode(t time.Time) string {
	return t.Format(layout)
}

// Decode parses an RFC 5322 date-time, preserving the original offset
// (not normalising to UTC, since Date headers carry the sender's zone).
func Decode(s string) (time.Time, error) {
	t, err := mail.ParseDate(s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse rfc 5322 date %q: %w", s, err)
	}
	return t, nil
}
