package normalize

import (
	"fmt"

	"github.com/draftdeck/draftdeck/internal/domain"
)

// Backlog normalizes a raw payload into a canonical product backlog.
// An empty payload yields three example items so the rendered document
// demonstrates the expected shape.
func (n *Normalizer) Backlog(raw any) *domain.BacklogContent {
	d := n.docFromRaw(raw)

	c := &domain.BacklogContent{
		Items: normalizeBacklogItems(d.list("items", "backlog", "stories", "userStories")),
		Epics: nonNil(d.strings("epics", "themes")),
		VelocityTarget: withDefault(
			d.str("velocityTarget", "velocity", "targetVelocity"),
			"TBD",
		),
		SprintLength: withDefault(
			d.str("sprintLength", "sprintDuration", "iterationLength"),
			"2 weeks",
		),
	}

	if len(c.Items) == 0 {
		c.Items = defaultBacklogItems()
	}
	if len(c.Epics) == 0 {
		c.Epics = epicsFromItems(c.Items)
	}

	return c
}

// normalizeBacklogItems accepts record lists and plain string lists.
func normalizeBacklogItems(items []any) []domain.BacklogItem {
	out := make([]domain.BacklogItem, 0, len(items))
	for i, item := range items {
		id := fmt.Sprintf("BL-%03d", i+1)
		if m, ok := asMap(item); ok {
			bd := newDoc(m)
			out = append(out, domain.BacklogItem{
				ID:       withDefault(bd.str("id", "ref", "key"), id),
				Priority: withDefault(bd.str("priority", "rank"), "Medium"),
				Epic:     withDefault(bd.str("epic", "theme", "feature"), "General"),
				Story:    withDefault(bd.str("story", "userStory", "description", "title"), "TBD"),
				// Legacy "acceptance_criteria" folds onto the same key.
				AcceptanceCriteria: nonNil(bd.strings("acceptanceCriteria", "criteria")),
				StoryPoints:        withDefault(bd.str("storyPoints", "points", "estimate"), "TBD"),
				Sprint:             withDefault(bd.str("sprint", "iteration"), "TBD"),
				Status:             withDefault(bd.str("status", "state"), "Not Started"),
			})
			continue
		}
		if s := asString(item); s != "" {
			out = append(out, domain.BacklogItem{
				ID:                 id,
				Priority:           "Medium",
				Epic:               "General",
				Story:              s,
				AcceptanceCriteria: []string{},
				StoryPoints:        "TBD",
				Sprint:             "TBD",
				Status:             "Not Started",
			})
		}
	}
	return out
}

// defaultBacklogItems is the three-item example backlog.
func defaultBacklogItems() []domain.BacklogItem {
	stories := []struct{ epic, story string }{
		{"Foundations", "TBD: As a user, I can sign in so that my work is saved"},
		{"Foundations", "TBD: As a user, I can create a project so that I can organize my documents"},
		{"Reporting", "TBD: As a stakeholder, I can export a report so that I can share progress"},
	}
	out := make([]domain.BacklogItem, 0, len(stories))
	for i, s := range stories {
		out = append(out, domain.BacklogItem{
			ID:                 fmt.Sprintf("BL-%03d", i+1),
			Priority:           "Medium",
			Epic:               s.epic,
			Story:              s.story,
			AcceptanceCriteria: []string{"TBD: Acceptance criteria to be defined"},
			StoryPoints:        "TBD",
			Sprint:             "1",
			Status:             "Not Started",
		})
	}
	return out
}

// epicsFromItems derives the epic list from items, first-seen order.
func epicsFromItems(items []domain.BacklogItem) []string {
	seen := make(map[string]bool)
	out := []string{}
	for _, item := range items {
		if item.Epic != "" && !seen[item.Epic] {
			seen[item.Epic] = true
			out = append(out, item.Epic)
		}
	}
	return out
}
