package display

import (
	"time"

	"github.com/rpggio/projectdash/internal/domain/project"
)

// TeamPreviewLimit is the number of avatars shown on a card.
const TeamPreviewLimit = 3

// Card bundles a project with every value derived for rendering it.
type Card struct {
	Project       project.Project      `json:"project"`
	StatusBadge   Badge                `json:"status_badge"`
	PriorityBadge Badge                `json:"priority_badge"`
	Tier          Tier                 `json:"progress_tier"`
	TierClass     string               `json:"progress_class"`
	DueLabel      string               `json:"due_label"`
	DueShort      string               `json:"due_short"`
	DueLong       string               `json:"due_long"`
	Tasks         string               `json:"tasks"`
	Team          []project.TeamMember `json:"team_preview"`
	TeamOverflow  int                  `json:"team_overflow"`
}

// NewCard derives a card for p as of now.
func NewCard(p project.Project, now time.Time) Card {
	tier := ProgressTier(p.Progress)
	team, overflow := TeamPreview(p.Team, TeamPreviewLimit)
	if team == nil {
		team = []project.TeamMember{}
	}
	return Card{
		Project:       p,
		StatusBadge:   StatusBadge(p.Status),
		PriorityBadge: PriorityBadge(p.Priority),
		Tier:          tier,
		TierClass:     tier.Class(),
		DueLabel:      DueLabel(p.DueDate, now),
		DueShort:      ShortDate(p.DueDate),
		DueLong:       LongDate(p.DueDate),
		Tasks:         TaskSummary(p),
		Team:          team,
		TeamOverflow:  overflow,
	}
}

// NewCards derives cards for a list of projects, keeping order.
func NewCards(projects []project.Project, now time.Time) []Card {
	cards := make([]Card, 0, len(projects))
	for _, p := range projects {
		cards = append(cards, NewCard(p, now))
	}
	return cards
}
