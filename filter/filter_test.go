package filter

import "testing"

func TestFilter_Allows_Match(t *testing.T) {
	f, err := New("Subject: Test")
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	encoded := "From: a@b.com\nSubject: Test Message\n\nbody"
	if !f.Allows(encoded) {
		t.Error("expected message to match pattern")
	}
}

func TestFilter_Allows_NoMatch(t *testing.T) {
	f, err := New("Subject: Test")
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	encoded := "From: a@b.com\nSubject: Other\n\nbody"
	if f.Allows(encoded) {
		t.Error("expected message not to match pattern")
	}
}

func TestFilter_New_InvalidPattern(t *testing.T) {
	if _, err := New("("); err == nil {
		t.Error("expected error for invalid regular expression")
	}
}
