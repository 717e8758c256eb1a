// Package legacymbox streams messages out of a real, single-file mbox
// archive (the format produced by most desktop mail clients) and parses
// each one into the fields mua import needs to re-home it as a Message
// in the file-per-entry mailbox model.
//
// Grounded on the teacher's mbox.fileReader.Stream: github.com/emersion/go-mbox
// splits the archive into per-message readers; here each one is parsed
// with github.com/emersion/go-message/mail instead of net/mail, since a
// legacy archive may carry a real multipart MIME tree that net/mail
// cannot walk.
package legacymbox

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	mboxlib "github.com/emersion/go-mbox"
	"github.com/emersion/go-message/mail"
)

// Envelope is one parsed legacy message, ready to be handed to
// mua.Mua.SaveMessage via message.NewSinglepartText/HTML/NewMultipart.
type Envelope struct {
	Hash        string
	SenderName  string
	SenderLocal string
	SenderHost  string
	Recipients  []Address
	Subject     string
	Date        time.Time
	TextBody    string
	HTMLBody    string
	Err         error
}

// Address is a parsed recipient: a display name plus local/domain parts,
// mirroring the (display_name, local, domain) tuple address.New expects.
type Address struct {
	Name  string
	Local string
	Host  string
}

// Stream opens path as an mbox archive and sends one Envelope per
// message to out, in archive order. A per-message parse failure is sent
// as an Envelope with Err set; the stream continues. Stream blocks until
// the archive is exhausted or ctx is cancelled; it never closes out.
func Stream(ctx context.Context, path string, out chan<- Envelope) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open mbox archive: %w", err)
	}
	defer file.Close()

	reader := mboxlib.NewReader(file)
	for idx := 0; ; idx++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		msgReader, err := reader.NextMessage()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return fmt.Errorf("mbox message %d: %w", idx, err)
		}

		raw, err := io.ReadAll(msgReader)
		if err != nil {
			return fmt.Errorf("mbox message %d read: %w", idx, err)
		}

		env := parse(raw)
		select {
		case <-ctx.Done():
			return ctx.Err()
		case out <- env:
		}
	}
}

// Count returns the number of messages in the mbox archive at path,
// without parsing them, so callers can size a progress bar up front.
func Count(path string) (int, error) {
	file, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("open mbox archive: %w", err)
	}
	defer file.Close()

	reader := mboxlib.NewReader(file)
	count := 0
	for {
		msgReader, err := reader.NextMessage()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return count, nil
			}
			return count, fmt.Errorf("mbox message %d: %w", count, err)
		}
		if _, err := io.Copy(io.Discard, msgReader); err != nil {
			return count, fmt.Errorf("mbox message %d: %w", count, err)
		}
		count++
	}
}

func parse(raw []byte) Envelope {
	sum := sha256.Sum256(raw)
	hash := base64.StdEncoding.EncodeToString(sum[:])

	r, err := mail.CreateReader(bytes.NewReader(raw))
	if err != nil {
		return Envelope{Hash: hash, Err: fmt.Errorf("parse mime envelope: %w", err)}
	}

	env := Envelope{Hash: hash}

	if froms, err := r.Header.AddressList("From"); err == nil && len(froms) > 0 {
		name, local, host := splitAddress(froms[0])
		env.SenderName, env.SenderLocal, env.SenderHost = name, local, host
	}
	if tos, err := r.Header.AddressList("To"); err == nil {
		for _, a := range tos {
			name, local, host := splitAddress(a)
			env.Recipients = append(env.Recipients, Address{Name: name, Local: local, Host: host})
		}
	}
	if subject, err := r.Header.Subject(); err == nil {
		env.Subject = subject
	}
	if date, err := r.Header.Date(); err == nil {
		env.Date = date
	} else {
		env.Date = time.Now()
	}

	for {
		part, err := r.NextPart()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			env.Err = fmt.Errorf("read mime part: %w", err)
			break
		}

		body, err := io.ReadAll(part.Body)
		if err != nil {
			env.Err = fmt.Errorf("read part body: %w", err)
			break
		}

		switch h := part.Header.(type) {
		case *mail.InlineHeader:
			media, _, ctErr := h.ContentType()
			if ctErr != nil {
				continue
			}
			switch {
			case strings.HasPrefix(media, "text/html"):
				if env.HTMLBody == "" {
					env.HTMLBody = string(body)
				}
			case strings.HasPrefix(media, "text/plain"):
				if env.TextBody == "" {
					env.TextBody = string(body)
				}
			}
		}
	}

	return env
}

func splitAddress(a *mail.Address) (name, local, host string) {
	at := strings.LastIndex(a.Address, "@")
	if at == -1 {
		return a.Name, a.Address, ""
	}
	return a.Name, a.Address[:at], a.Address[at+1:]
}
