package message

import (
	"fmt"
	"strings"
	"time"

	"github.com/ShadowGabbo/mua/address"
	"github.com/ShadowGabbo/mua/ascii"
	"github.com/ShadowGabbo/mua/entrycodec"
	"github.com/ShadowGabbo/mua/header"
	"github.com/ShadowGabbo/mua/muaerr"
)

// Message is an ordered, non-empty sequence of Parts: either a single
// part (singlepart text/html) or exactly three parts (multipart
// alternative), per spec.md §4.2.
type Message struct {
	parts []Part
}

func mandatoryHeaders(sender address.Address, recipients []address.Address, subject string, date time.Time, ct header.ContentType, cte *header.ContentTransferEncoding) ([]header.Header, error) {
	recips, err := header.NewRecipients(recipients)
	if err != nil {
		return nil, err
	}
	headers := []header.Header{
		header.NewSender(sender),
		recips,
		header.NewSubject(subject),
		header.NewDate(date),
		ct,
	}
	if cte != nil {
		headers = append(headers, *cte)
	}
	return headers, nil
}

func textContentType(body string) (header.ContentType, *header.ContentTransferEncoding, error) {
	if ascii.IsASCII(body) {
		ct, err := header.NewContentType("text/plain", "us-ascii")
		return ct, nil, err
	}
	ct, err := header.NewContentType("text/plain", "utf-8")
	if err != nil {
		return header.ContentType{}, nil, err
	}
	cte, err := header.NewContentTransferEncoding("base64")
	if err != nil {
		return header.ContentType{}, nil, err
	}
	return ct, &cte, nil
}

// NewSinglepartText builds a singlepart message whose content-type is
// text/plain; us-ascii when body is 7-bit ASCII, else text/plain; utf-8
// with a base64 transfer encoding.
func NewSinglepartText(sender address.Address, recipients []address.Address, subject string, date time.Time, body string) (Message, error) {
	return newSinglepart(sender, recipients, subject, date, body, false)
}

// NewSinglepartHTML builds a singlepart message whose content-type is
// always text/html; utf-8 with a base64 transfer encoding.
func NewSinglepartHTML(sender address.Address, recipients []address.Address, subject string, date time.Time, body string) (Message, error) {
	return newSinglepart(sender, recipients, subject, date, body, true)
}

func newSinglepart(sender address.Address, recipients []address.Address, subject string, date time.Time, body string, isHTML bool) (Message, error) {
	if body == "" {
		return Message{}, fmt.Errorf("%w: message body must not be empty", muaerr.ErrEmptyInput)
	}

	var ct header.ContentType
	var cte *header.ContentTransferEncoding
	var err error
	if isHTML {
		ct, err = header.NewContentType("text/html", "utf-8")
		if err != nil {
			return Message{}, err
		}
		c, err := header.NewContentTransferEncoding("base64")
		if err != nil {
			return Message{}, err
		}
		cte = &c
	} else {
		ct, cte, err = textContentType(body)
		if err != nil {
			return Message{}, err
		}
	}

	headers, err := mandatoryHeaders(sender, recipients, subject, date, ct, cte)
	if err != nil {
		return Message{}, err
	}
	part, err := newPart(headers, body)
	if err != nil {
		return Message{}, err
	}
	return Message{parts: []Part{part}}, nil
}

// NewMultipart builds a three-part multipart/alternative message: an
// envelope part carrying the mandatory headers, a text part and an html
// part. Both bodies must be non-empty.
func NewMultipart(sender address.Address, recipients []address.Address, subject string, date time.Time, textBody, htmlBody string) (Message, error) {
	if textBody == "" || htmlBody == "" {
		return Message{}, fmt.Errorf("%w: multipart bodies must not be empty", muaerr.ErrEmptyInput)
	}

	envelopeCT, err := header.NewContentType("multipart/alternative", "")
	if err != nil {
		return Message{}, err
	}
	mimeVersion, err := header.NewMimeVersion("1.0")
	if err != nil {
		return Message{}, err
	}
	envHeaders, err := mandatoryHeaders(sender, recipients, subject, date, envelopeCT, nil)
	if err != nil {
		return Message{}, err
	}
	envHeaders = append(envHeaders, mimeVersion)
	envelope, err := newPart(envHeaders, envelopeBody)
	if err != nil {
		return Message{}, err
	}

	textCT, textCTE, err := textContentType(textBody)
	if err != nil {
		return Message{}, err
	}
	textHeaders := []header.Header{textCT}
	if textCTE != nil {
		textHeaders = append(textHeaders, *textCTE)
	}
	textPart, err := newPart(textHeaders, textBody)
	if err != nil {
		return Message{}, err
	}

	htmlCT, err := header.NewContentType("text/html", "utf-8")
	if err != nil {
		return Message{}, err
	}
	htmlCTE, err := header.NewContentTransferEncoding("base64")
	if err != nil {
		return Message{}, err
	}
	htmlPart, err := newPart([]header.Header{htmlCT, htmlCTE}, htmlBody)
	if err != nil {
		return Message{}, err
	}

	return Message{parts: []Part{envelope, textPart, htmlPart}}, nil
}

// FromFragments reconstructs a Message from the decoded fragment list
// produced by the entry codec.
//
// Preserved per spec.md §9: this assumes fragments 0/1/2 correspond to
// envelope/text/html in multipart messages and distinguishes singlepart
// from multipart purely by fragment count (== 1 vs != 1); it does not
// otherwise validate fragment shape.
func FromFragments(fragments []entrycodec.Fragment) (Message, error) {
	if len(fragments) == 0 {
		return Message{}, fmt.Errorf("%w: no fragments to decode", muaerr.ErrEmptyInput)
	}
	parts := make([]Part, 0, len(fragments))
	for _, f := range fragments {
		p, err := partFromFragment(f)
		if err != nil {
			return Message{}, err
		}
		parts = append(parts, p)
	}
	return Message{parts: parts}, nil
}

// Parts returns a copy of the message's part list, in stored order.
func (m Message) Parts() []Part {
	cp := make([]Part, len(m.parts))
	copy(cp, m.parts)
	return cp
}

// IsMultipart reports whether the message has the three-part
// multipart/alternative shape.
func (m Message) IsMultipart() bool { return len(m.parts) != 1 }

// Encode renders the bit-exact on-disk form of the message: a single
// encoded part for singlepart messages, or three encoded parts joined by
// the frontier boundary and closed by the final "--frontier--" line for
// multipart ones.
func (m Message) Encode() string {
	if !m.IsMultipart() {
		return m.parts[0].encode()
	}
	var sb strings.Builder
	for i, p := range m.parts {
		if i > 0 {
			sb.WriteString("\n--frontier\n")
		}
		sb.WriteString(p.encode())
	}
	sb.WriteString("\n--frontier--\n")
	return sb.String()
}

func (m Message) firstHeader(tag string) (header.Header, error) {
	if len(m.parts) == 0 {
		return nil, fmt.Errorf("%w: message has no parts", muaerr.ErrMissingHeader)
	}
	h, ok := m.parts[0].header(tag)
	if !ok {
		return nil, fmt.Errorf("%w: %s", muaerr.ErrMissingHeader, tag)
	}
	return h, nil
}

// Sender returns the message's From header.
func (m Message) Sender() (header.Sender, error) {
	h, err := m.firstHeader("From")
	if err != nil {
		return header.Sender{}, err
	}
	return h.(header.Sender), nil
}

// Recipients returns the message's To header.
func (m Message) Recipients() (header.Recipients, error) {
	h, err := m.firstHeader("To")
	if err != nil {
		return header.Recipients{}, err
	}
	return h.(header.Recipients), nil
}

// Subject returns the message's Subject header.
func (m Message) Subject() (header.Subject, error) {
	h, err := m.firstHeader("Subject")
	if err != nil {
		return header.Subject{}, err
	}
	return h.(header.Subject), nil
}

// Date returns the message's Date header.
func (m Message) Date() (header.Date, error) {
	h, err := m.firstHeader("Date")
	if err != nil {
		return header.Date{}, err
	}
	return h.(header.Date), nil
}

// Less reports whether m sorts strictly before other: messages sort by
// strictly descending date, so Less answers "does m have the later
// date".
func (m Message) Less(other Message) bool {
	md, err1 := m.Date()
	od, err2 := other.Date()
	if err1 != nil || err2 != nil {
		return false
	}
	return md.Time().After(od.Time())
}
