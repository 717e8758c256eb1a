package header

import (
	"fmt"
	"strings"

	"github.com/ShadowGabbo/mua/addrenc"
	"github.com/ShadowGabbo/mua/address"
	"github.com/ShadowGabbo/mua/muaerr"
)

// Recipients is the "To" header: a non-empty ordered list of addresses.
type Recipients struct {
	addrs []address.Address
}

// NewRecipients constructs a Recipients header from a non-empty address
// list.
func NewRecipients(addrs []address.Address) (Recipients, error) {
	if len(addrs) == 0 {
		return Recipients{}, fmt.Errorf("%w: recipient list must not be empty", muaerr.ErrEmptyInput)
	}
	cp := make([]address.Address, len(addrs))
	copy(cp, addrs)
	return Recipients{addrs: cp}, nil
}

// Addresses returns a copy of the recipient list.
func (r Recipients) Addresses() []address.Address {
	cp := make([]address.Address, len(r.addrs))
	copy(cp, r.addrs)
	return cp
}

// Emails returns each recipient's bare email, one per line.
func (r Recipients) Emails() string {
	var sb strings.Builder
	for _, a := range r.addrs {
		sb.WriteString(address.Email(a))
		sb.WriteString("\n")
	}
	return sb.String()
}

func (Recipients) Tag() string { return "To" }

func (r Recipients) Encode() string {
	parts := make([]string, len(r.addrs))
	for i, a := range r.addrs {
		parts[i] = a.String()
	}
	return "To: " + strings.Join(parts, ", ")
}

func (Recipients) header() {}

// DecodeRecipients parses a raw "To" header value (without the "To: "
// prefix): a comma-separated address list.
func DecodeRecipients(raw string) (Recipients, error) {
	if raw == "" {
		return Recipients{}, fmt.Errorf("%w: To value must not be empty", muaerr.ErrEmptyInput)
	}
	tuples, err := addrenc.Decode(raw)
	if err != nil {
		return Recipients{}, fmt.Errorf("%w: %q", muaerr.ErrMalformedAddress, raw)
	}
	addrs := make([]address.Address, 0, len(tuples))
	for _, t := range tuples {
		a, err := address.New(t.DisplayName, t.Local, t.Domain)
		if err != nil {
			return Recipients{}, err
		}
		addrs = append(addrs, a)
	}
	return NewRecipients(addrs)
}
