package dateenc

import (
	"testing"
	"time"
)

func TestEncodeDecode_RoundTrip(t *testing.T) {
	loc := time.FixedZone("", -7*3600)
	want := time.Date(2024, time.March, 5, 14, 30, 0, 0, loc)

	got, err := Decode(Encode(want))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if !got.Equal(want) {
		t.Errorf("round trip = %v, want %v", got, want)
	}
	if _, offset := got.Zone(); offset != -7*3600 {
		t.Errorf("round trip offset = %d, want %d", offset, -7*3600)
	}
}

func TestEncode_Format(t *testing.T) {
	loc := time.FixedZone("", 0)
	when := time.Date(2024, time.January, 2, 3, 4, 5, 0, loc)
	want := "Tue, 02 Jan 2024 03:04:05 +0000"
	if got := Encode(when); got != want {
		t.Errorf("Encode() = %q, want %q", got, want)
	}
}

func TestDecode_Malformed(t *testing.T) {
	if _, err := Decode("not a date"); err == nil {
		t.Error("expected error for malformed date")
	}
}
