package header

import (
	"fmt"

	"github.com/ShadowGabbo/mua/muaerr"
)

// MimeVersion is the "MIME-Version" header: a bare version token,
// always "1.0" in practice but not constrained by this type.
type MimeVersion struct {
	value string
}

// NewMimeVersion constructs a MimeVersion header. value must not be
// empty.
func NewMimeVersion(value string) (MimeVersion, error) {
	if value == "" {
		return MimeVersion{}, fmt.Errorf("%w: mime-version value must not be empty", muaerr.ErrEmptyInput)
	}
	return MimeVersion{value: value}, nil
}

// Value returns the version token.
func (m MimeVersion) Value() string { return m.value }

func (MimeVersion) Tag() string { return "MIME-Version" }

func (m MimeVersion) Encode() string {
	return "MIME-Version: " + m.value
}

func (MimeVersion) header() {}

// DecodeMimeVersion parses a raw "MIME-Version" header value (without
// the "MIME-Version: " prefix).
func DecodeMimeVersion(raw string) (MimeVersion, error) {
	return NewMimeVersion(raw)
}
