package header

import (
	"fmt"
	"strings"

	"github.com/ShadowGabbo/mua/muaerr"
)

// ContentType is the "Content-Type" header: a media type plus an
// optional charset. An empty charset marks the multipart/alternative
// envelope part, whose encoded form carries "boundary=frontier" instead
// of a charset.
type ContentType struct {
	media   string
	charset string
}

// NewContentType constructs a ContentType header. media must not be
// empty; charset may be.
func NewContentType(media, charset string) (ContentType, error) {
	if media == "" {
		return ContentType{}, fmt.Errorf("%w: content-type media must not be empty", muaerr.ErrEmptyInput)
	}
	return ContentType{media: media, charset: charset}, nil
}

// Media returns the media type, e.g. "text/plain".
func (c ContentType) Media() string { return c.media }

// Charset returns the charset, or "" for the multipart envelope part.
func (c ContentType) Charset() string { return c.charset }

func (ContentType) Tag() string { return "Content-Type" }

func (c ContentType) Encode() string {
	if c.charset != "" {
		return fmt.Sprintf(`Content-Type: %s; charset="%s"`, c.media, c.charset)
	}
	return fmt.Sprintf("Content-Type: %s; boundary=frontier", c.media)
}

func (ContentType) header() {}

// DecodeContentType parses a raw "Content-Type" header value (without the
// "Content-Type: " prefix).
//
// Preserved as-is per spec.md §9: any parameter other than "charset" is
// treated as the multipart/alternative envelope, discarding whatever
// media type the raw value actually named.
func DecodeContentType(raw string) (ContentType, error) {
	if raw == "" {
		return ContentType{}, fmt.Errorf("%w: content-type value must not be empty", muaerr.ErrEmptyInput)
	}
	parts := strings.SplitN(raw, "; ", 2)
	if len(parts) != 2 {
		return ContentType{}, fmt.Errorf("%w: content-type %q has no parameter", muaerr.ErrMalformedHeader, raw)
	}
	if strings.Contains(parts[1], "charset") {
		charset := strings.ReplaceAll(strings.ReplaceAll(parts[1], `charset="`, ""), `"`, "")
		return NewContentType(parts[0], charset)
	}
	return NewContentType("multipart/alternative", "")
}
