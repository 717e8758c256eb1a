// Package message implements the Message & Part component of spec.md
// §4.2: an ordered, non-empty sequence of MIME-like Parts with bit-exact
// encode/decode to the entry codec's fragment representation.
package message

import (
	"fmt"
	"strings"

	"github.com/ShadowGabbo/mua/ascii"
	"github.com/ShadowGabbo/mua/b64word"
	"github.com/ShadowGabbo/mua/entrycodec"
	"github.com/ShadowGabbo/mua/header"
	"github.com/ShadowGabbo/mua/muaerr"
)

const envelopeBody = "This is a message with multiple parts in MIME format."

// Part is headers plus a body. Header order is significant and
// preserved exactly as given at construction.
type Part struct {
	headers []header.Header
	body    string
}

// newPart validates and builds a Part. Both headers and body must be
// non-empty.
func newPart(headers []header.Header, body string) (Part, error) {
	if len(headers) == 0 {
		return Part{}, fmt.Errorf("%w: part must carry at least one header", muaerr.ErrEmptyInput)
	}
	if body == "" {
		return Part{}, fmt.Errorf("%w: part body must not be empty", muaerr.ErrEmptyInput)
	}
	cp := make([]header.Header, len(headers))
	copy(cp, headers)
	return Part{headers: cp, body: body}, nil
}

// Headers returns a copy of the part's header list, in stored order.
func (p Part) Headers() []header.Header {
	cp := make([]header.Header, len(p.headers))
	copy(cp, p.headers)
	return cp
}

// Body returns the part's decoded body text.
func (p Part) Body() string { return p.body }

// contentType returns the part's ContentType header, or the implicit
// text/plain; us-ascii default when none is present.
func (p Part) contentType() header.ContentType {
	for _, h := range p.headers {
		if ct, ok := h.(header.ContentType); ok {
			return ct
		}
	}
	ct, _ := header.NewContentType("text/plain", "us-ascii")
	return ct
}

func (p Part) header(tag string) (header.Header, bool) {
	for _, h := range p.headers {
		if h.Tag() == tag {
			return h, true
		}
	}
	return nil, false
}

// encode renders the part as encode_headers(part) + "\n" + encode_body(part).
func (p Part) encode() string {
	var sb strings.Builder
	for _, h := range p.headers {
		sb.WriteString(h.Encode())
		sb.WriteString("\n")
	}
	sb.WriteString("\n")
	sb.WriteString(p.encodeBody())
	return sb.String()
}

// encodeBody implements spec.md §4.2's encode_body rule: Base64 for
// text/html or any non-ASCII body, verbatim otherwise.
func (p Part) encodeBody() string {
	if p.contentType().Media() == "text/html" {
		return b64word.Encode(p.body)
	}
	if !ascii.IsASCII(p.body) {
		return b64word.Encode(p.body)
	}
	return p.body
}

// decodeBody implements spec.md §4.2's decode_body heuristic: a body
// beginning with the Base64 prefix of "<html>" is decoded, everything
// else passes through unchanged.
func decodeBody(raw string) string {
	if b64word.HasHTMLBodyPrefix(raw) {
		if text, err := b64word.Decode(raw); err == nil {
			return text
		}
	}
	return raw
}

// partFromFragment builds a typed Part from a raw entrycodec.Fragment,
// decoding recognised header tags and ignoring unknown ones.
func partFromFragment(f entrycodec.Fragment) (Part, error) {
	var headers []header.Header
	for _, pair := range f.RawHeaders() {
		tag, value := pair[0], pair[1]
		h, ok, err := decodeHeader(tag, value)
		if err != nil {
			return Part{}, err
		}
		if ok {
			headers = append(headers, h)
		}
	}
	return newPart(headers, decodeBody(f.RawBody()))
}

// decodeHeader dispatches a lowercased raw header tag to the matching
// typed decoder. Unknown tags are reported via ok=false and ignored by
// the caller, per spec.md §4.1's determinism note.
func decodeHeader(tagLower, value string) (header.Header, bool, error) {
	switch tagLower {
	case "from":
		h, err := header.DecodeSender(value)
		return h, true, err
	case "to":
		h, err := header.DecodeRecipients(value)
		return h, true, err
	case "subject":
		h, err := header.DecodeSubject(value)
		return h, true, err
	case "date":
		h, err := header.DecodeDate(value)
		return h, true, err
	case "content-type":
		h, err := header.DecodeContentType(value)
		return h, true, err
	case "content-transfer-encoding":
		h, err := header.DecodeContentTransferEncoding(value)
		return h, true, err
	case "mime-version":
		h, err := header.DecodeMimeVersion(value)
		return h, true, err
	default:
		return nil, false, nil
	}
}
