// Package uicard renders a single Message as a bordered key/value card,
// the way the REPL's READ command displays a message in full.
package uicard

import (
	"strings"

	"github.com/olekukonko/tablewriter"
)

// Field is one header/value row on the card.
type Field struct {
	Label string
	Value string
}

// Render builds a two-column card: one row per Field, followed by a
// final row labelled "Body" holding body.
func Render(fields []Field, body string) string {
	var sb strings.Builder
	table := tablewriter.NewWriter(&sb)
	table.SetAutoWrapText(true)
	table.SetColWidth(72)
	table.SetRowLine(true)
	for _, f := range fields {
		table.Append([]string{f.Label, f.Value})
	}
	table.Append([]string{"Body", body})
	table.Render()
	return sb.String()
}
