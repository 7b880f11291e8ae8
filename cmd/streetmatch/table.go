package main

import (
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"streetmatch/internal/textmatch"
)

// renderCandidates lays out ranked candidates as a rounded table. The best
// candidate is highlighted by r.
func renderCandidates(r renderer, candidates []textmatch.Candidate) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"#", "Candidate", "Similarity", "Source"})

	for i, c := range candidates {
		name := c.Text
		if i == 0 {
			name = r.match(name)
		}
		tw.AppendRow(table.Row{
			strconv.Itoa(i + 1),
			name,
			r.score(c.Similarity),
			r.dim(scopeLabel(c.Source)),
		})
	}

	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignRight, AlignHeader: text.AlignLeft},
		{Number: 2, Align: text.AlignLeft, AlignHeader: text.AlignLeft},
		{Number: 3, Align: text.AlignRight, AlignHeader: text.AlignLeft},
		{Number: 4, Align: text.AlignLeft, AlignHeader: text.AlignLeft},
	})
	return tw.Render()
}
