package header

import (
	"errors"
	"testing"

	"github.com/ShadowGabbo/mua/address"
	"github.com/ShadowGabbo/mua/muaerr"
)

func TestSender_EncodeDecode_RoundTrip(t *testing.T) {
	addr, err := address.New("Alice Smith", "alice", "example.com")
	if err != nil {
		t.Fatalf("address.New() error = %v", err)
	}
	s := NewSender(addr)
	if s.Tag() != "From" {
		t.Errorf("Tag() = %q, want %q", s.Tag(), "From")
	}

	encoded := s.Encode()
	want := "From: Alice Smith <alice@example.com>"
	if encoded != want {
		t.Fatalf("Encode() = %q, want %q", encoded, want)
	}

	got, err := DecodeSender(encoded[len("From: "):])
	if err != nil {
		t.Fatalf("DecodeSender() error = %v", err)
	}
	if !got.Address().Equal(addr) {
		t.Errorf("DecodeSender() address = %+v, want %+v", got.Address(), addr)
	}
}

func TestDecodeSender_Empty(t *testing.T) {
	if _, err := DecodeSender(""); !errors.Is(err, muaerr.ErrEmptyInput) {
		t.Errorf("DecodeSender(\"\") error = %v, want %v", err, muaerr.ErrEmptyInput)
	}
}
