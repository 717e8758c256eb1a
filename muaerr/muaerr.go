// Package muaerr defines the closed set of error kinds the core raises,
// as sentinel values so callers can compare with errors.Is.
package muaerr

import "errors"

var (
	// ErrEmptyInput signals a required string argument was empty.
	ErrEmptyInput = errors.New("empty input")

	// ErrMalformedAddress signals an address header's raw value failed
	// the address-part grammar.
	ErrMalformedAddress = errors.New("malformed address")

	// ErrMalformedDate signals a Date header's raw value failed RFC 5322
	// parsing.
	ErrMalformedDate = errors.New("malformed date")

	// ErrMalformedHeader signals a header's raw value could not be
	// decoded at all.
	ErrMalformedHeader = errors.New("malformed header")

	// ErrMissingHeader signals a message's first part lacks a mandatory
	// header when accessed.
	ErrMissingHeader = errors.New("missing header")

	// ErrNoSelection signals an operation that needs a selected mailbox
	// ran with none selected.
	ErrNoSelection = errors.New("no mailbox selected")

	// ErrNoSuchMailbox signals the selected mailbox name resolves to no
	// box in storage.
	ErrNoSuchMailbox = errors.New("no such mailbox")

	// ErrOutOfRange signals a 1-based index outside [1, count].
	ErrOutOfRange = errors.New("index out of range")

	// ErrIO wraps a storage utility failure.
	ErrIO = errors.New("storage i/o error")
)
