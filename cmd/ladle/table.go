package main

import (
	"fmt"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"ladle/internal/recipes"
)

func renderRecipeTable(entries []recipes.Recipe, fancy bool) string {
	if len(entries) == 0 {
		return "No recipes match the current filters."
	}

	tw := table.NewWriter()
	if fancy {
		tw.SetStyle(table.StyleRounded)
	} else {
		tw.SetStyle(table.StyleDefault)
	}
	tw.AppendHeader(table.Row{"ID", "Name", "Category", "Veg", "Time", "Saved"})

	for _, entry := range entries {
		tw.AppendRow(table.Row{
			entry.ID,
			entry.Name,
			entry.Category,
			yesNo(entry.Vegetarian),
			entry.CookingTime,
			savedMarker(entry.Saved, fancy),
		})
	}

	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignRight, AlignHeader: text.AlignLeft},
		{Number: 4, Align: text.AlignLeft},
		{Number: 6, Align: text.AlignLeft},
	})

	return tw.Render()
}

func renderRecipeDetail(entry recipes.Recipe, fancy bool) string {
	tw := table.NewWriter()
	if fancy {
		tw.SetStyle(table.StyleRounded)
	} else {
		tw.SetStyle(table.StyleDefault)
	}
	tw.AppendRow(table.Row{"ID", fmt.Sprintf("%d", entry.ID)})
	tw.AppendRow(table.Row{"Name", entry.Name})
	tw.AppendRow(table.Row{"Category", entry.Category})
	tw.AppendRow(table.Row{"Vegetarian", yesNo(entry.Vegetarian)})
	tw.AppendRow(table.Row{"Cooking time", entry.CookingTime})
	tw.AppendRow(table.Row{"Saved", savedMarker(entry.Saved, fancy)})
	tw.AppendRow(table.Row{"Ingredients", strings.Join(entry.Ingredients, ", ")})
	tw.AppendRow(table.Row{"Instructions", entry.Instructions})
	if entry.Description != "" {
		tw.AppendRow(table.Row{"About", entry.Description})
	}
	return tw.Render()
}

func yesNo(value bool) string {
	if value {
		return "yes"
	}
	return "no"
}

func savedMarker(saved bool, fancy bool) string {
	switch {
	case saved && fancy:
		return "★"
	case saved:
		return "saved"
	default:
		return ""
	}
}
