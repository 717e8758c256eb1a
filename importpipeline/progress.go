package importpipeline

import (
	"github.com/pterm/pterm"
)

// Bar renders a pterm progress bar over an import run, when enabled.
type Bar struct {
	pb      *pterm.ProgressbarPrinter
	enabled bool
}

// NewBar starts a progress bar sized to total, or a disabled no-op Bar
// when enabled is false.
func NewBar(total int, enabled bool) *Bar {
	bar := &Bar{enabled: enabled}
	if !enabled {
		return bar
	}
	pb, _ := pterm.DefaultProgressbar.
		WithTotal(total).
		WithTitle("Importing legacy messages").
		Start()
	bar.pb = pb
	return bar
}

// Update advances the bar according to evt.
func (b *Bar) Update(evt Event) {
	if !b.enabled || b.pb == nil {
		return
	}
	switch evt.Type {
	case EventTypeScanned:
		b.pb.Increment()
	case EventTypeError:
		if evt.Err != nil {
			pterm.Error.Printf("import error: %v\n", evt.Err)
		}
	}
}

// Stop finalizes the bar and prints a completion line.
func (b *Bar) Stop() {
	if !b.enabled || b.pb == nil {
		return
	}
	b.pb.Stop()
	pterm.Success.Println("Import complete.")
}

// PrintSummary renders a final summary section, mirroring the teacher's
// end-of-run stats printout.
func PrintSummary(s Summary) {
	pterm.Println()
	pterm.DefaultSection.Println("Import Summary")
	pterm.Info.Printf("Scanned: %d\n", s.Scanned)
	pterm.Info.Printf("Imported: %d\n", s.Imported)
	pterm.Info.Printf("Duplicates (skipped): %d\n", s.Duplicates)
	pterm.Info.Printf("Errors: %d\n", s.Errors)
	if s.LastError != nil {
		pterm.Error.Printf("Last error: %v\n", s.LastError)
	}
}
