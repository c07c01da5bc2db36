package main

import (
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"talknotes/internal/catalog"
	"talknotes/internal/textutil"
)

const untitled = "Untitled"

func renderTalks(talks []*catalog.Talk) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"ID", "Date", "Venue", "Title"})
	for _, talk := range talks {
		tw.AppendRow(table.Row{
			strconv.Itoa(talk.ID),
			talk.DateString(),
			talk.Venue,
			textutil.Ternary(talk.Title == "", untitled, talk.Title),
		})
	}
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignRight, AlignHeader: text.AlignLeft},
		{Number: 2, Align: text.AlignLeft, AlignHeader: text.AlignLeft},
		{Number: 3, Align: text.AlignLeft, AlignHeader: text.AlignLeft},
		{Number: 4, Align: text.AlignLeft, AlignHeader: text.AlignLeft},
	})
	return tw.Render()
}
