package header

import (
	"fmt"

	"github.com/ShadowGabbo/mua/ascii"
	"github.com/ShadowGabbo/mua/b64word"
	"github.com/ShadowGabbo/mua/muaerr"
)

// Subject is the "Subject" header: an arbitrary Unicode string, possibly
// empty.
type Subject struct {
	text string
}

// NewSubject constructs a Subject header. Empty subjects are legal.
func NewSubject(text string) Subject {
	return Subject{text: text}
}

// Text returns the subject's text.
func (s Subject) Text() string { return s.text }

func (Subject) Tag() string { return "Subject" }

func (s Subject) Encode() string {
	if ascii.IsASCII(s.text) {
		return "Subject: " + s.text
	}
	return "Subject: " + b64word.EncodeWord(s.text)
}

func (Subject) header() {}

// DecodeSubject parses a raw "Subject" header value (without the
// "Subject: " prefix). A leading "=?utf-8?B?" marks an encoded-word
// form; anything else is taken literally.
func DecodeSubject(raw string) (Subject, error) {
	if b64word.HasWordPrefix(raw) {
		text, err := b64word.DecodeWord(raw)
		if err != nil {
			return Subject{}, fmt.Errorf("%w: %v", muaerr.ErrMalformedHeader, err)
		}
		return NewSubject(text), nil
	}
	return NewSubject(raw), nil
}
