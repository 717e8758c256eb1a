// Package mua implements the Mua component of spec.md §4.4: it
// materialises mailboxes from storage, tracks the selected mailbox by
// name, and mediates persistence between the in-memory model and disk.
package mua

import (
	"fmt"
	"sort"

	"github.com/ShadowGabbo/mua/mailbox"
	"github.com/ShadowGabbo/mua/message"
	"github.com/ShadowGabbo/mua/muaerr"
	"github.com/ShadowGabbo/mua/storage"
	"github.com/ShadowGabbo/mua/uitable"
)

// Mua holds every mailbox materialised from a base directory and tracks
// which one, if any, is selected.
type Mua struct {
	store     *storage.Store
	mailboxes []mailbox.Mailbox
	selected  string
}

// Open materialises every mailbox found under baseDir.
func Open(baseDir string) (*Mua, error) {
	store, err := storage.Open(baseDir)
	if err != nil {
		return nil, err
	}
	boxes, err := store.Boxes()
	if err != nil {
		return nil, err
	}
	mailboxes := make([]mailbox.Mailbox, 0, len(boxes))
	for _, box := range boxes {
		mb, err := mailbox.FromBox(box)
		if err != nil {
			return nil, err
		}
		mailboxes = append(mailboxes, mb)
	}
	sort.Slice(mailboxes, func(i, j int) bool { return mailboxes[i].Less(mailboxes[j]) })
	return &Mua{store: store, mailboxes: mailboxes}, nil
}

// Mailboxes returns a copy of the mailbox list, ascending by name.
func (m *Mua) Mailboxes() []mailbox.Mailbox {
	cp := make([]mailbox.Mailbox, len(m.mailboxes))
	for i, mb := range m.mailboxes {
		cp[i] = mb.Copy()
	}
	return cp
}

// Select sets the selected mailbox to the index-1based entry of
// Mailboxes().
func (m *Mua) Select(index1based int) error {
	if index1based < 1 || index1based > len(m.mailboxes) {
		return fmt.Errorf("%w: %d not in [1, %d]", muaerr.ErrOutOfRange, index1based, len(m.mailboxes))
	}
	m.selected = m.mailboxes[index1based-1].Name()
	return nil
}

// Current returns a copy of the selected mailbox. If the selected
// mailbox's on-disk directory has since disappeared (e.g. removed by
// another process), Current fails with NoSuchMailbox and leaves the
// in-memory model untouched, rather than serving stale data silently.
func (m *Mua) Current() (mailbox.Mailbox, error) {
	if m.selected == "" {
		return mailbox.Mailbox{}, fmt.Errorf("%w", muaerr.ErrNoSelection)
	}
	idx := m.indexOf(m.selected)
	if idx == -1 {
		return mailbox.Mailbox{}, fmt.Errorf("%w", muaerr.ErrNoSelection)
	}
	boxes, err := m.store.Boxes()
	if err != nil {
		return mailbox.Mailbox{}, err
	}
	if findBox(boxes, m.selected) == nil {
		return mailbox.Mailbox{}, fmt.Errorf("%w: %q", muaerr.ErrNoSuchMailbox, m.selected)
	}
	return m.mailboxes[idx].Copy(), nil
}

func (m *Mua) indexOf(name string) int {
	for i, mb := range m.mailboxes {
		if mb.Name() == name {
			return i
		}
	}
	return -1
}

// ReadMessage delegates to current().read(n).
func (m *Mua) ReadMessage(n int) (message.Message, error) {
	cur, err := m.Current()
	if err != nil {
		return message.Message{}, err
	}
	return cur.Read(n)
}

// SaveMessage encodes msg, appends it to the on-disk box matching the
// selected mailbox's name, then composes it into the in-memory mailbox.
// Storage succeeds before the in-memory model is touched.
func (m *Mua) SaveMessage(msg message.Message) error {
	if m.selected == "" {
		return fmt.Errorf("%w", muaerr.ErrNoSelection)
	}
	idx := m.indexOf(m.selected)
	if idx == -1 {
		return fmt.Errorf("%w", muaerr.ErrNoSelection)
	}

	boxes, err := m.store.Boxes()
	if err != nil {
		return err
	}
	box := findBox(boxes, m.selected)
	if box == nil {
		return fmt.Errorf("%w: %q", muaerr.ErrNoSuchMailbox, m.selected)
	}

	if _, err := box.Entry(msg.Encode()); err != nil {
		return err
	}

	m.mailboxes[idx] = m.mailboxes[idx].Compose(msg)
	return nil
}

// DeleteMessage resolves the n-th message of the selected mailbox,
// locates the matching on-disk entry by content equality, deletes it,
// then removes it from the in-memory mailbox. Either both effects
// happen or neither does.
func (m *Mua) DeleteMessage(n int) error {
	if m.selected == "" {
		return fmt.Errorf("%w", muaerr.ErrNoSelection)
	}
	idx := m.indexOf(m.selected)
	if idx == -1 {
		return fmt.Errorf("%w", muaerr.ErrNoSelection)
	}

	msg, err := m.mailboxes[idx].Read(n)
	if err != nil {
		return err
	}
	encoded := msg.Encode()

	boxes, err := m.store.Boxes()
	if err != nil {
		return err
	}
	box := findBox(boxes, m.selected)
	if box == nil {
		return fmt.Errorf("%w: %q", muaerr.ErrNoSuchMailbox, m.selected)
	}

	entries, err := box.Entries()
	if err != nil {
		return err
	}
	var match *storage.Entry
	for _, e := range entries {
		content, err := e.Content()
		if err != nil {
			return err
		}
		if content == encoded {
			match = e
			break
		}
	}
	if match == nil {
		return fmt.Errorf("%w: no on-disk entry matches message %d", muaerr.ErrIO, n)
	}
	if err := match.Delete(); err != nil {
		return err
	}

	next, err := m.mailboxes[idx].Delete(n)
	if err != nil {
		return err
	}
	m.mailboxes[idx] = next
	return nil
}

func findBox(boxes []*storage.Box, name string) *storage.Box {
	for _, b := range boxes {
		if b.Name() == name {
			return b
		}
	}
	return nil
}

// Prompt renders the REPL prompt: "[*] > " with no selection, else
// "[<name>] > ".
func (m *Mua) Prompt() string {
	if m.selected == "" {
		return "[*] > "
	}
	return fmt.Sprintf("[%s] > ", m.selected)
}

// String renders the mailbox list as a table of index, name and message
// count, for the REPL's LSM command.
func (m *Mua) String() string {
	rows := make([]uitable.Row, 0, len(m.mailboxes))
	for i, mb := range m.mailboxes {
		name := mb.Name()
		if name == "" {
			name = "(unnamed)"
		}
		rows = append(rows, uitable.Row{
			Index:   i + 1,
			Columns: []string{name, fmt.Sprintf("%d", mb.Count())},
		})
	}
	return uitable.Render([]string{"Name", "Messages"}, rows)
}
