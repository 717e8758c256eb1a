package header

import (
	"fmt"

	"github.com/ShadowGabbo/mua/address"
	"github.com/ShadowGabbo/mua/muaerr"
)

// Sender is the "From" header: exactly one Address.
type Sender struct {
	addr address.Address
}

// NewSender constructs a Sender header from an address.
func NewSender(addr address.Address) Sender {
	return Sender{addr: addr}
}

// Address returns the sender's address.
func (s Sender) Address() address.Address { return s.addr }

// Email returns the sender's bare email.
func (s Sender) Email() string { return address.Email(s.addr) }

func (Sender) Tag() string { return "From" }

func (s Sender) Encode() string {
	return fmt.Sprintf("From: %s", s.addr.String())
}

func (Sender) header() {}

// DecodeSender parses a raw "From" header value (without the "From: "
// prefix).
func DecodeSender(raw string) (Sender, error) {
	if raw == "" {
		return Sender{}, fmt.Errorf("%w: From value must not be empty", muaerr.ErrEmptyInput)
	}
	addr, err := address.Decode(raw)
	if err != nil {
		return Sender{}, err
	}
	return NewSender(addr), nil
}
