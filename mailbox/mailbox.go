// Package mailbox implements the Mailbox component of spec.md §4.3: an
// ordered, date-descending collection of messages bound to a name.
package mailbox

import (
	"fmt"
	"sort"

	"github.com/ShadowGabbo/mua/entrycodec"
	"github.com/ShadowGabbo/mua/message"
	"github.com/ShadowGabbo/mua/muaerr"
	"github.com/ShadowGabbo/mua/storage"
	"github.com/ShadowGabbo/mua/uitable"
)

// Mailbox holds an ordered, date-descending list of messages and the
// name they are filed under.
type Mailbox struct {
	name     string
	messages []message.Message
}

// New constructs a Mailbox from an explicit name and message list,
// establishing date-descending order.
func New(name string, messages []message.Message) Mailbox {
	cp := make([]message.Message, len(messages))
	copy(cp, messages)
	mb := Mailbox{name: name, messages: cp}
	mb.resort()
	return mb
}

// FromBox decodes every entry of a storage.Box into a Message and
// builds the resulting Mailbox, sorted by descending date.
func FromBox(box *storage.Box) (Mailbox, error) {
	entries, err := box.Entries()
	if err != nil {
		return Mailbox{}, err
	}
	messages := make([]message.Message, 0, len(entries))
	for _, e := range entries {
		content, err := e.Content()
		if err != nil {
			return Mailbox{}, err
		}
		fragments := entrycodec.Decode(content)
		msg, err := message.FromFragments(fragments)
		if err != nil {
			return Mailbox{}, err
		}
		messages = append(messages, msg)
	}
	return New(box.Name(), messages), nil
}

// Copy returns a Mailbox with a defensively-duplicated message list.
func (m Mailbox) Copy() Mailbox {
	return New(m.name, m.messages)
}

// Name returns the mailbox's name, possibly empty.
func (m Mailbox) Name() string { return m.name }

// Count returns the number of messages in the mailbox.
func (m Mailbox) Count() int { return len(m.messages) }

// Messages returns a copy of the mailbox's message list, in stored
// (date-descending) order.
func (m Mailbox) Messages() []message.Message {
	cp := make([]message.Message, len(m.messages))
	copy(cp, m.messages)
	return cp
}

// Read returns a copy of the n-th message (1-based).
func (m Mailbox) Read(n int) (message.Message, error) {
	if n < 1 || n > len(m.messages) {
		return message.Message{}, fmt.Errorf("%w: %d not in [1, %d]", muaerr.ErrOutOfRange, n, len(m.messages))
	}
	return m.messages[n-1], nil
}

// Delete removes the n-th message (1-based) and returns the resulting
// Mailbox.
func (m Mailbox) Delete(n int) (Mailbox, error) {
	if n < 1 || n > len(m.messages) {
		return m, fmt.Errorf("%w: %d not in [1, %d]", muaerr.ErrOutOfRange, n, len(m.messages))
	}
	next := make([]message.Message, 0, len(m.messages)-1)
	next = append(next, m.messages[:n-1]...)
	next = append(next, m.messages[n:]...)
	return New(m.name, next), nil
}

// Compose appends msg and re-sorts, returning the resulting Mailbox.
func (m Mailbox) Compose(msg message.Message) Mailbox {
	next := append(m.Messages(), msg)
	return New(m.name, next)
}

func (m *Mailbox) resort() {
	sort.SliceStable(m.messages, func(i, j int) bool {
		return m.messages[i].Less(m.messages[j])
	})
}

// Less reports mailbox ordering by ascending name.
func (m Mailbox) Less(other Mailbox) bool { return m.name < other.name }

// String renders the mailbox as a table of index, sender, subject and
// date, for the REPL's LSE command.
func (m Mailbox) String() string {
	rows := make([]uitable.Row, 0, len(m.messages))
	for i, msg := range m.messages {
		sender, senderErr := msg.Sender()
		subject, subjErr := msg.Subject()
		date, dateErr := msg.Date()

		senderText, subjectText, dateText := "?", "?", "?"
		if senderErr == nil {
			senderText = sender.Address().String()
		}
		if subjErr == nil {
			subjectText = subject.Text()
		}
		if dateErr == nil {
			dateText = date.Time().String()
		}

		rows = append(rows, uitable.Row{
			Index:   i + 1,
			Columns: []string{senderText, subjectText, dateText},
		})
	}
	return uitable.Render([]string{"From", "Subject", "Date"}, rows)
}
