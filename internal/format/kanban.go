package format

import (
	"fmt"

	"github.com/draftdeck/draftdeck/internal/domain"
)

func (r *Registry) kanban(raw any, meta domain.Metadata, opts domain.FormatterOptions) Node {
	c := r.norm.Kanban(raw)

	total := 0
	for _, col := range c.Columns {
		total += len(col.Cards)
	}

	return Group(
		Section("board-overview", "Board Overview",
			DefList([][2]string{
				{"Columns", plural(len(c.Columns), "column")},
				{"Work Items", plural(total, "item")},
			}),
			r.columnSummaryTable(c.Columns),
			If(opts.IncludeCharts, r.columnChart(c.Columns)),
		),
		Section("board", "Board",
			r.boardColumns(c.Columns, opts),
		),
	)
}

func (r *Registry) columnSummaryTable(columns []domain.KanbanColumn) Node {
	rows := make([][]string, 0, len(columns))
	for _, col := range columns {
		limit := "None"
		if col.WIPLimit > 0 {
			limit = fmt.Sprintf("%d", col.WIPLimit)
		}
		load := fmt.Sprintf("%d", len(col.Cards))
		if col.WIPLimit > 0 && len(col.Cards) > col.WIPLimit {
			load += " (over limit)"
		}
		rows = append(rows, []string{col.Name, load, limit})
	}
	return Table([]string{"Column", "Items", "WIP Limit"}, rows)
}

func (r *Registry) columnChart(columns []domain.KanbanColumn) Node {
	slices := make([]PieSlice, 0, len(columns))
	for _, col := range columns {
		slices = append(slices, PieSlice{Label: col.Name, Value: float64(len(col.Cards))})
	}
	code := PieChart("Work Distribution", slices)
	if code == "" {
		return nil
	}
	return Mermaid(code)
}

func (r *Registry) boardColumns(columns []domain.KanbanColumn, opts domain.FormatterOptions) Node {
	cols := make([]Node, 0, len(columns))
	for _, col := range columns {
		cards := make([]Node, 0, len(col.Cards)+1)
		header := col.Name
		if col.WIPLimit > 0 {
			header = fmt.Sprintf("%s (WIP %d)", col.Name, col.WIPLimit)
		}
		cards = append(cards, el("div", []string{"class", "kanban-column-title"}, Text(header)))
		for _, card := range col.Cards {
			body := []Node{el("div", []string{"class", "kanban-card-title"}, Text(card.Title))}
			if card.Assignee != "" {
				body = append(body, el("div", []string{"class", "kanban-card-meta"}, Text(card.Assignee)))
			}
			if opts.IncludeIndicators && card.Priority != "" {
				body = append(body, Indicator(priorityBand(card.Priority)))
			}
			cards = append(cards, el("div", []string{"class", "kanban-card"}, body...))
		}
		if len(col.Cards) == 0 {
			cards = append(cards, el("div", []string{"class", "kanban-card kanban-empty"}, Text("No items")))
		}
		cols = append(cols, el("div", []string{"class", "kanban-column"}, cards...))
	}
	return el("div", []string{"class", "kanban-board"}, cols...)
}
