// Package addrenc tokenizes the comma-separated address lists used by the
// Sender/Recipients headers, and validates the address-part grammar
// spec.md §3 requires of an Address's local and domain parts.
//
// It is deliberately not built on net/mail.ParseAddressList: spec.md's
// canonical address form ("name <l@d>", 3+-word names quoted) and its
// address-part grammar are this program's own, not RFC 5322's, and the
// decoder must stay the exact inverse of this program's own encoder.
package addrenc

import (
	"fmt"
	"regexp"
	"strings"
)

// Tuple is a decoded (display_name, local, domain) triple.
type Tuple struct {
	DisplayName string
	Local       string
	Domain      string
}

var addressPartRE = regexp.MustCompile(`^[A-Za-z0-9!#$%&'*+/=?^_` + "`" + `{|}~.-]+$`)

// IsValidAddressPart reports whether s is a well-formed local or domain
// part: non-empty, ASCII, drawn from the atext/domain character set.
func IsValidAddressPart(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] > 127 {
			return false
		}
	}
	return addressPartRE.MatchString(s)
}

// addressRE matches a single address, optionally preceded by a display
// name (quoted or bare), e.g.:
//
//	a@b
//	name <a@b>
//	"three word name" <a@b>
var addressRE = regexp.MustCompile(`^\s*(?:"([^"]*)"|([^"<]*?))?\s*<?\s*([^\s<>@,]+)@([^\s<>@,]+?)\s*>?\s*$`)

// Decode splits a comma-separated address list into tuples. Commas inside
// a quoted display name do not split the list.
func Decode(s string) ([]Tuple, error) {
	parts := splitTopLevel(s)
	tuples := make([]Tuple, 0, len(parts))
	for _, part := range parts {
		t, err := decodeOne(part)
		if err != nil {
			return nil, err
		}
		tuples = append(tuples, t)
	}
	if len(tuples) == 0 {
		return nil, fmt.Errorf("address list is empty")
	}
	return tuples, nil
}

func decodeOne(s string) (Tuple, error) {
	m := addressRE.FindStringSubmatch(s)
	if m == nil {
		return Tuple{}, fmt.Errorf("malformed address %q", s)
	}
	display := m[1]
	if display == "" {
		display = strings.TrimSpace(m[2])
	}
	local, domain := m[3], m[4]
	if local == "" || domain == "" {
		return Tuple{}, fmt.Errorf("malformed address %q", s)
	}
	return Tuple{DisplayName: display, Local: local, Domain: domain}, nil
}

func splitTopLevel(s string) []string {
	var parts []string
	var sb strings.Builder
	inQuotes := false
	for _, r := range s {
		switch {
		case r == '"':
			inQuotes = !inQuotes
			sb.WriteRune(r)
		case r == ',' && !inQuotes:
			parts = append(parts, sb.String())
			sb.Reset()
		default:
			sb.WriteRune(r)
		}
	}
	parts = append(parts, sb.String())
	return parts
}
