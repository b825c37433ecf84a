package main

import (
	"io"

	"github.com/fwojciec/spellcards"
	"github.com/jedib0t/go-pretty/v6/table"
)

// summaryRow is one line of the scrape summary.
type summaryRow struct {
	Kind   spellcards.Kind
	ID     spellcards.Identifier
	Title  string
	Status string
}

// summarize pairs the identifiers of a batch with its outcome. titles holds
// the titles of the successful records in input order.
func summarize(kind spellcards.Kind, ids []spellcards.Identifier, titles []string, batchErr *spellcards.BatchError) []summaryRow {
	rows := make([]summaryRow, 0, len(ids))
	next := 0
	for _, id := range ids {
		row := summaryRow{Kind: kind, ID: id}
		if batchErr != nil && batchErr.Failed(id) {
			row.Status = "failed"
		} else if next < len(titles) {
			row.Title = titles[next]
			row.Status = "ok"
			next++
		}
		rows = append(rows, row)
	}
	return rows
}

// renderSummary writes the scrape summary as a table.
func renderSummary(w io.Writer, rows []summaryRow) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)

	t.AppendHeader(table.Row{"Kind", "ID", "Title", "Status"})
	for _, r := range rows {
		t.AppendRow(table.Row{r.Kind, r.ID.String(), r.Title, r.Status})
	}

	t.Render()
}
