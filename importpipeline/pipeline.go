// Package importpipeline adapts the teacher's producer/runner pipeline
// shape to mua import: a producer goroutine streams a legacy mbox
// archive (legacymbox), while the Mua itself is driven synchronously,
// one message at a time, from the calling goroutine — spec.md §5
// requires the core never be re-entered concurrently, so the pipeline
// narrows from "producer + upload stage" to "producer + synchronous
// consumer" with no upload stage at all.
package importpipeline

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ShadowGabbo/mua/address"
	"github.com/ShadowGabbo/mua/legacymbox"
	"github.com/ShadowGabbo/mua/message"
)

// Target is where imported messages are saved: a Mua with mailbox name
// already selected by the caller.
type Target interface {
	SaveMessage(msg message.Message) error
}

// Options configures one import run.
type Options struct {
	ArchivePath string
	StateDir    string
	ShowBar     bool
}

// Run streams path's mbox archive, deduplicating by content hash against
// tracker and saving each new message into target. It returns a summary
// of what happened even when it also returns an error, so callers can
// report partial progress.
func Run(ctx context.Context, opts Options, tracker Tracker, target Target, logger *slog.Logger) (Summary, error) {
	total, err := legacymbox.Count(opts.ArchivePath)
	if err != nil {
		return Summary{}, fmt.Errorf("count legacy archive: %w", err)
	}

	envelopes := make(chan legacymbox.Envelope, 32)
	streamErr := make(chan error, 1)

	go func() {
		defer close(envelopes)
		streamErr <- legacymbox.Stream(ctx, opts.ArchivePath, envelopes)
	}()

	collector := NewCollector()
	bar := NewBar(total, opts.ShowBar)

	for env := range envelopes {
		collector.Apply(Event{Type: EventTypeScanned, Hash: env.Hash})
		bar.Update(Event{Type: EventTypeScanned})

		evt := process(env, tracker, target)
		collector.Apply(evt)
		bar.Update(evt)
		if evt.Type == EventTypeError && logger != nil {
			logger.Error("import event failed", "hash", evt.Hash, "err", evt.Err)
		}
	}

	bar.Stop()

	if err := <-streamErr; err != nil {
		return collector.Snapshot(), fmt.Errorf("stream legacy archive: %w", err)
	}
	return collector.Snapshot(), nil
}

func process(env legacymbox.Envelope, tracker Tracker, target Target) Event {
	if env.Err != nil {
		return Event{Type: EventTypeError, Hash: env.Hash, Err: env.Err}
	}

	if tracker.AlreadyProcessed(env.Hash) {
		return Event{Type: EventTypeDuplicate, Hash: env.Hash}
	}

	msg, err := buildMessage(env)
	if err != nil {
		return Event{Type: EventTypeError, Hash: env.Hash, Err: err}
	}

	if err := target.SaveMessage(msg); err != nil {
		return Event{Type: EventTypeError, Hash: env.Hash, Err: err}
	}

	if err := tracker.MarkProcessed(env.Hash); err != nil {
		return Event{Type: EventTypeError, Hash: env.Hash, Err: err}
	}

	return Event{Type: EventTypeImported, Hash: env.Hash}
}

func buildMessage(env legacymbox.Envelope) (message.Message, error) {
	sender, err := address.New(env.SenderName, env.SenderLocal, env.SenderHost)
	if err != nil {
		return message.Message{}, fmt.Errorf("sender address: %w", err)
	}

	recipients := make([]address.Address, 0, len(env.Recipients))
	for _, r := range env.Recipients {
		a, err := address.New(r.Name, r.Local, r.Host)
		if err != nil {
			return message.Message{}, fmt.Errorf("recipient address: %w", err)
		}
		recipients = append(recipients, a)
	}

	date := env.Date

	switch {
	case env.TextBody != "" && env.HTMLBody != "":
		return message.NewMultipart(sender, recipients, env.Subject, date, env.TextBody, env.HTMLBody)
	case env.HTMLBody != "":
		return message.NewSinglepartHTML(sender, recipients, env.Subject, date, env.HTMLBody)
	case env.TextBody != "":
		return message.NewSinglepartText(sender, recipients, env.Subject, date, env.TextBody)
	default:
		return message.Message{}, fmt.Errorf("legacy message %s has no text or html body", env.Hash)
	}
}
