package render

import (
	"bytes"
	"testing"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/require"

	"github.com/rpggio/projectdash/internal/domain/display"
	"github.com/rpggio/projectdash/internal/domain/project"
)

var now = time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC)

func sampleCard() display.Card {
	p := project.Project{
		ID:             1,
		Title:          "Website Redesign",
		Description:    "Refresh the marketing site",
		Status:         project.StatusInProgress,
		Priority:       project.PriorityHigh,
		DueDate:        time.Date(2024, 1, 22, 0, 0, 0, 0, time.UTC),
		Progress:       50,
		Tasks:          24,
		CompletedTasks: 12,
		Team: []project.TeamMember{
			{ID: 1, Name: "Sarah Chen", Avatar: "SC"},
			{ID: 2, Name: "Mike Johnson", Avatar: "MJ"},
			{ID: 3, Name: "Emily Davis", Avatar: "ED"},
			{ID: 4, Name: "Alex Kim", Avatar: "AK"},
		},
	}
	return display.NewCard(p, now)
}

func TestCard(t *testing.T) {
	var buf bytes.Buffer
	r := New(&buf, 70)

	out := r.Card(sampleCard())
	require.Contains(t, out, "Website Redesign")
	require.Contains(t, out, "In Progress")
	require.Contains(t, out, "High")
	require.Contains(t, out, "50%")
	require.Contains(t, out, "12/24 tasks")
	require.Contains(t, out, "Due Jan 22")
	require.Contains(t, out, "7 days left")
	require.Contains(t, out, "Team: SC MJ ED +1")
	require.NotContains(t, out, "AK")
	require.LessOrEqual(t, lipgloss.Width(out), 72)
}

func TestCardWithoutTeam(t *testing.T) {
	c := sampleCard()
	c.Team = nil
	c.TeamOverflow = 0

	out := New(&bytes.Buffer{}, 0).Card(c)
	require.NotContains(t, out, "Team:")
}

func TestWriteEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, New(&buf, 0).Write(nil))
	require.Contains(t, buf.String(), EmptyMessage)
}

func TestWriteCards(t *testing.T) {
	var buf bytes.Buffer
	second := sampleCard()
	second.Project.Title = "Mobile App"

	require.NoError(t, New(&buf, 0).Write([]display.Card{sampleCard(), second}))
	out := buf.String()
	require.Contains(t, out, "Website Redesign")
	require.Contains(t, out, "Mobile App")
	require.Less(t, bytes.Index(buf.Bytes(), []byte("Website")), bytes.Index(buf.Bytes(), []byte("Mobile")))
}

func TestBadgeColor(t *testing.T) {
	require.Equal(t, lipgloss.Color("196"), badgeColor(display.PriorityBadge(project.PriorityUrgent).Class))
	require.Equal(t, lipgloss.Color("33"), badgeColor(display.StatusBadge(project.StatusPlanning).Class))
	require.Equal(t, lipgloss.Color("245"), badgeColor(display.StatusBadge("archived").Class))
}
