// Package uitable renders Mailbox and Mua listings as aligned text
// tables, the way the REPL's LSM/LSE commands display them.
package uitable

import (
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
)

// Row is one line of a rendered table: the 1-based index followed by the
// remaining display columns.
type Row struct {
	Index   int
	Columns []string
}

// Render builds an ASCII table with the given header and rows, numbered
// by Row.Index in its first column.
func Render(header []string, rows []Row) string {
	var sb strings.Builder
	table := tablewriter.NewWriter(&sb)
	table.SetHeader(append([]string{"#"}, header...))
	table.SetAutoWrapText(false)
	table.SetRowLine(false)
	for _, r := range rows {
		cols := make([]string, 0, len(r.Columns)+1)
		cols = append(cols, strconv.Itoa(r.Index))
		cols = append(cols, r.Columns...)
		table.Append(cols)
	}
	table.Render()
	return sb.String()
}
