package importpipeline

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/ShadowGabbo/mua/message"
)

const testArchive = "From alice@example.com Mon Jan  2 03:04:05 2024\r\n" +
	"From: Alice <alice@example.com>\r\n" +
	"To: bob@example.com\r\n" +
	"Subject: Hello\r\n" +
	"Date: Tue, 02 Jan 2024 03:04:05 +0000\r\n" +
	"MIME-Version: 1.0\r\n" +
	"Content-Type: text/plain; charset=us-ascii\r\n" +
	"\r\n" +
	"Hello there\r\n" +
	"\r\n" +
	"From carol@example.com Mon Jan  2 04:04:05 2024\r\n" +
	"From: Carol <carol@example.com>\r\n" +
	"To: dave@example.com\r\n" +
	"Subject: Second\r\n" +
	"Date: Wed, 03 Jan 2024 04:04:05 +0000\r\n" +
	"MIME-Version: 1.0\r\n" +
	"Content-Type: text/plain; charset=us-ascii\r\n" +
	"\r\n" +
	"Second body\r\n"

// recordingTarget is a fake importpipeline.Target that just remembers
// every message it was asked to save.
type recordingTarget struct {
	saved []message.Message
}

func (t *recordingTarget) SaveMessage(msg message.Message) error {
	t.saved = append(t.saved, msg)
	return nil
}

func writeTestArchive(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "archive.mbox")
	if err := os.WriteFile(path, []byte(testArchive), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	return path
}

func TestRun_ImportsEveryMessage(t *testing.T) {
	archivePath := writeTestArchive(t)
	target := &recordingTarget{}
	tracker := NewMemoryTracker()

	summary, err := Run(context.Background(), Options{ArchivePath: archivePath}, tracker, target, nil)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if summary.Imported != 2 {
		t.Errorf("Imported = %d, want 2", summary.Imported)
	}
	if summary.Duplicates != 0 {
		t.Errorf("Duplicates = %d, want 0", summary.Duplicates)
	}
	if len(target.saved) != 2 {
		t.Errorf("target recorded %d messages, want 2", len(target.saved))
	}
}

// An idempotent-reimport test: running the same archive through a
// second time, against a tracker that persisted the first run's hashes,
// must import nothing new.
func TestRun_IsIdempotentAcrossReimports(t *testing.T) {
	archivePath := writeTestArchive(t)
	stateDir := t.TempDir()

	tracker1, err := NewFileTracker(stateDir)
	if err != nil {
		t.Fatalf("NewFileTracker() error = %v", err)
	}
	target1 := &recordingTarget{}
	summary1, err := Run(context.Background(), Options{ArchivePath: archivePath, StateDir: stateDir}, tracker1, target1, nil)
	if err != nil {
		t.Fatalf("Run() (first pass) error = %v", err)
	}
	if err := tracker1.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	if summary1.Imported != 2 {
		t.Fatalf("first Run() Imported = %d, want 2", summary1.Imported)
	}

	tracker2, err := NewFileTracker(stateDir)
	if err != nil {
		t.Fatalf("re-NewFileTracker() error = %v", err)
	}
	defer tracker2.Close()
	target2 := &recordingTarget{}
	summary2, err := Run(context.Background(), Options{ArchivePath: archivePath, StateDir: stateDir}, tracker2, target2, nil)
	if err != nil {
		t.Fatalf("Run() (second pass) error = %v", err)
	}

	if summary2.Imported != 0 {
		t.Errorf("second Run() Imported = %d, want 0", summary2.Imported)
	}
	if summary2.Duplicates != 2 {
		t.Errorf("second Run() Duplicates = %d, want 2", summary2.Duplicates)
	}
	if len(target2.saved) != 0 {
		t.Errorf("second Run() saved %d messages, want 0 (all duplicates)", len(target2.saved))
	}
}
