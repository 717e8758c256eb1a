package importpipeline

import "testing"

func TestMemoryTracker_MarkAndCheck(t *testing.T) {
	tr := NewMemoryTracker()
	if tr.AlreadyProcessed("abc") {
		t.Error("expected an unmarked hash not to be processed")
	}
	if err := tr.MarkProcessed("abc"); err != nil {
		t.Fatalf("MarkProcessed() error = %v", err)
	}
	if !tr.AlreadyProcessed("abc") {
		t.Error("expected a marked hash to be processed")
	}
}

func TestFileTracker_PersistsAcrossReopen(t *testing.T) {
	dir := t.TempDir()

	tr, err := NewFileTracker(dir)
	if err != nil {
		t.Fatalf("NewFileTracker() error = %v", err)
	}
	if err := tr.MarkProcessed("hash-1"); err != nil {
		t.Fatalf("MarkProcessed() error = %v", err)
	}
	if err := tr.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	reopened, err := NewFileTracker(dir)
	if err != nil {
		t.Fatalf("re-NewFileTracker() error = %v", err)
	}
	defer reopened.Close()

	if !reopened.AlreadyProcessed("hash-1") {
		t.Error("expected hash-1 to survive a reopen of the state directory")
	}
	if reopened.AlreadyProcessed("hash-2") {
		t.Error("expected hash-2 not to be marked")
	}
}

func TestFileTracker_MarkProcessed_Idempotent(t *testing.T) {
	dir := t.TempDir()
	tr, err := NewFileTracker(dir)
	if err != nil {
		t.Fatalf("NewFileTracker() error = %v", err)
	}
	defer tr.Close()

	for i := 0; i < 3; i++ {
		if err := tr.MarkProcessed("hash-1"); err != nil {
			t.Fatalf("MarkProcessed() error = %v", err)
		}
	}
	if !tr.AlreadyProcessed("hash-1") {
		t.Error("expected hash-1 to be processed")
	}
}
