package header

import (
	"fmt"

	"github.com/ShadowGabbo/mua/muaerr"
)

// ContentTransferEncoding is the "Content-Transfer-Encoding" header: a
// bare token naming how the body octets are laid out (e.g. "7bit",
// "base64").
type ContentTransferEncoding struct {
	value string
}

// NewContentTransferEncoding constructs a ContentTransferEncoding
// header. value must not be empty.
func NewContentTransferEncoding(value string) (ContentTransferEncoding, error) {
	if value == "" {
		return ContentTransferEncoding{}, fmt.Errorf("%w: content-transfer-encoding value must not be empty", muaerr.ErrEmptyInput)
	}
	return ContentTransferEncoding{value: value}, nil
}

// Value returns the encoding token.
func (c ContentTransferEncoding) Value() string { return c.value }

func (ContentTransferEncoding) Tag() string { return "Content-Transfer-Encoding" }

func (c ContentTransferEncoding) Encode() string {
	return "Content-Transfer-Encoding: " + c.value
}

func (ContentTransferEncoding) header() {}

// DecodeContentTransferEncoding parses a raw
// "Content-Transfer-Encoding" header value (without the
// "Content-Transfer-Encoding: " prefix).
func DecodeContentTransferEncoding(raw string) (ContentTransferEncoding, error) {
	return NewContentTransferEncoding(raw)
}
