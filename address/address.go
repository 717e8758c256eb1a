// Package address implements the Address value type of spec.md §3: an
// immutable (display_name, local, domain) triple with a canonical text
// form, used by the Sender and Recipients headers.
package address

import (
	"fmt"
	"strings"

	"github.com/ShadowGabbo/mua/addrenc"
	"github.com/ShadowGabbo/mua/muaerr"
)

// Address is an immutable email address, optionally carrying a display
// name.
type Address struct {
	displayName string
	local       string
	domain      string
}

// New constructs an Address from a display name, a local part and a
// domain. local and domain must be non-empty and satisfy the
// address-part grammar.
func New(displayName, local, domain string) (Address, error) {
	if local == "" || domain == "" {
		return Address{}, fmt.Errorf("%w: address local/domain must not be empty", muaerr.ErrEmptyInput)
	}
	if !addrenc.IsValidAddressPart(local) || !addrenc.IsValidAddressPart(domain) {
		return Address{}, fmt.Errorf("%w: address part is not well formed", muaerr.ErrMalformedAddress)
	}
	return Address{displayName: displayName, local: local, domain: domain}, nil
}

// NewBare constructs an Address with no display name.
func NewBare(local, domain string) (Address, error) {
	return New("", local, domain)
}

// DisplayName returns the address's display name, possibly empty.
func (a Address) DisplayName() string { return a.displayName }

// Local returns the address's local part.
func (a Address) Local() string { return a.local }

// Domain returns the address's domain part.
func (a Address) Domain() string { return a.domain }

// Equal reports structural equality.
func (a Address) Equal(other Address) bool {
	return a.displayName == other.displayName && a.local == other.local && a.domain == other.domain
}

// Decode parses one canonically-encoded address ("l@d",
// "name <l@d>" or "\"name\" <l@d>").
func Decode(raw string) (Address, error) {
	if raw == "" {
		return Address{}, fmt.Errorf("%w: address encoding must not be empty", muaerr.ErrEmptyInput)
	}
	tuples, err := addrenc.Decode(raw)
	if err != nil || len(tuples) == 0 {
		return Address{}, fmt.Errorf("%w: %q", muaerr.ErrMalformedAddress, raw)
	}
	t := tuples[0]
	return New(t.DisplayName, t.Local, t.Domain)
}

// Email returns the bare "local@domain" form of addr.
//
// The original Java source's Indirizzo.email performs a null-check on a
// string literal instead of its argument (Objects.requireNonNull("..."))
// — the intended argument guard never actually runs. Preserved here by
// simply not guarding addr at all, per spec.md §9.
func Email(addr Address) string {
	return fmt.Sprintf("%s@%s", addr.local, addr.domain)
}

// String renders the canonical text form (spec.md §3):
//
//	empty display name   -> local@domain
//	<=2-word display name -> display_name <local@domain>
//	3+-word display name  -> "display_name" <local@domain>
func (a Address) String() string {
	if a.displayName == "" {
		return Email(a)
	}
	if len(strings.Fields(a.displayName)) > 2 {
		return fmt.Sprintf("%q <%s>", a.displayName, Email(a))
	}
	return fmt.Sprintf("%s <%s>", a.displayName, Email(a))
}
