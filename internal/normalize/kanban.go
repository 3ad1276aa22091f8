package normalize

import "github.com/draftdeck/draftdeck/internal/domain"

// Kanban normalizes a raw payload into a canonical kanban board. An empty
// payload yields the standard three-column board with sample cards.
func (n *Normalizer) Kanban(raw any) *domain.KanbanContent {
	d := n.docFromRaw(raw)

	c := &domain.KanbanContent{
		Columns: normalizeKanbanColumns(d.maps("columns", "lanes", "board")),
	}

	if len(c.Columns) == 0 {
		c.Columns = defaultKanbanColumns()
	}

	return c
}

// normalizeKanbanColumns maps column records onto the canonical shape.
func normalizeKanbanColumns(items []doc) []domain.KanbanColumn {
	out := make([]domain.KanbanColumn, 0, len(items))
	for _, item := range items {
		out = append(out, domain.KanbanColumn{
			Name:     withDefault(item.str("name", "title", "column"), "TBD"),
			WIPLimit: item.intval("wipLimit", "limit", "wip"),
			Cards:    normalizeKanbanCards(item.list("cards", "items", "tasks")),
		})
	}
	return out
}

// normalizeKanbanCards accepts record lists and plain string lists.
func normalizeKanbanCards(items []any) []domain.KanbanCard {
	out := make([]domain.KanbanCard, 0, len(items))
	for _, item := range items {
		if m, ok := asMap(item); ok {
			cd := newDoc(m)
			out = append(out, domain.KanbanCard{
				Title:    withDefault(cd.str("title", "name", "task", "description"), "TBD"),
				Assignee: withDefault(cd.str("assignee", "owner", "assignedTo"), "Unassigned"),
				Priority: withDefault(cd.str("priority"), "Medium"),
			})
			continue
		}
		if s := asString(item); s != "" {
			out = append(out, domain.KanbanCard{Title: s, Assignee: "Unassigned", Priority: "Medium"})
		}
	}
	return out
}

// defaultKanbanColumns is the standard three-column board.
func defaultKanbanColumns() []domain.KanbanColumn {
	return []domain.KanbanColumn{
		{
			Name:     "To Do",
			WIPLimit: 0,
			Cards: []domain.KanbanCard{
				{Title: "TBD: Define the first work item", Assignee: "Unassigned", Priority: "Medium"},
			},
		},
		{
			Name:     "In Progress",
			WIPLimit: 3,
			Cards:    []domain.KanbanCard{},
		},
		{
			Name:     "Done",
			WIPLimit: 0,
			Cards:    []domain.KanbanCard{},
		},
	}
}
