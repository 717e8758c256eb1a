package message

import (
	"testing"

	"github.com/ShadowGabbo/mua/address"
	"github.com/ShadowGabbo/mua/header"
)

func TestNewPart_RequiresHeadersAndBody(t *testing.T) {
	ct, _ := header.NewContentType("text/plain", "us-ascii")
	if _, err := newPart(nil, "body"); err == nil {
		t.Error("expected error for no headers")
	}
	if _, err := newPart([]header.Header{ct}, ""); err == nil {
		t.Error("expected error for empty body")
	}
}

func TestPart_ContentType_DefaultsToTextPlain(t *testing.T) {
	addr, err := address.New("", "alice", "example.com")
	if err != nil {
		t.Fatalf("address.New() error = %v", err)
	}
	sender := header.NewSender(addr)
	p, err := newPart([]header.Header{sender}, "hello")
	if err != nil {
		t.Fatalf("newPart() error = %v", err)
	}
	ct := p.contentType()
	if ct.Media() != "text/plain" || ct.Charset() != "us-ascii" {
		t.Errorf("contentType() = %+v, want text/plain; us-ascii default", ct)
	}
}

func TestPart_EncodeBody_ASCIIVerbatim(t *testing.T) {
	ct, _ := header.NewContentType("text/plain", "us-ascii")
	p, err := newPart([]header.Header{ct}, "hello world")
	if err != nil {
		t.Fatalf("newPart() error = %v", err)
	}
	if got := p.encodeBody(); got != "hello world" {
		t.Errorf("encodeBody() = %q, want verbatim", got)
	}
}

func TestPart_EncodeBody_HTMLAlwaysBase64(t *testing.T) {
	ct, _ := header.NewContentType("text/html", "utf-8")
	p, err := newPart([]header.Header{ct}, "<p>hi</p>")
	if err != nil {
		t.Fatalf("newPart() error = %v", err)
	}
	// "PHA+aGk8L3A+" is the Base64 encoding of "<p>hi</p>".
	if got := p.encodeBody(); got != "PHA+aGk8L3A+" {
		t.Errorf("encodeBody() = %q, want %q", got, "PHA+aGk8L3A+")
	}
}

func TestPart_EncodeBody_NonASCIITextBase64(t *testing.T) {
	ct, _ := header.NewContentType("text/plain", "utf-8")
	p, err := newPart([]header.Header{ct}, "café")
	if err != nil {
		t.Fatalf("newPart() error = %v", err)
	}
	got := p.encodeBody()
	if got == "café" {
		t.Error("expected non-ASCII body to be Base64 encoded")
	}
}
