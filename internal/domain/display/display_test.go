package display_test

import (
	"testing"
	"time"

	"github.com/rpggio/projectdash/internal/domain/display"
	"github.com/rpggio/projectdash/internal/domain/project"
	"github.com/stretchr/testify/require"
)

func TestStatusBadge(t *testing.T) {
	tests := []struct {
		status project.Status
		label  string
		color  string
	}{
		{project.StatusPlanning, "Planning", "blue"},
		{project.StatusInProgress, "In Progress", "yellow"},
		{project.StatusCompleted, "Completed", "green"},
		{project.StatusOnHold, "On Hold", "orange"},
		{"archived", "archived", "surface"},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			badge := display.StatusBadge(tt.status)
			require.Equal(t, tt.label, badge.Label)
			require.Contains(t, badge.Class, "bg-"+tt.color+"-")
		})
	}
}

func TestPriorityBadge(t *testing.T) {
	tests := []struct {
		priority project.Priority
		label    string
		color    string
	}{
		{project.PriorityLow, "Low", "green"},
		{project.PriorityMedium, "Medium", "blue"},
		{project.PriorityHigh, "High", "orange"},
		{project.PriorityUrgent, "Urgent", "red"},
		{"critical", "critical", "surface"},
	}

	for _, tt := range tests {
		t.Run(string(tt.priority), func(t *testing.T) {
			badge := display.PriorityBadge(tt.priority)
			require.Equal(t, tt.label, badge.Label)
			require.Contains(t, badge.Class, "bg-"+tt.color+"-")
		})
	}
}

func TestProgressTier_Boundaries(t *testing.T) {
	tests := []struct {
		progress int
		want     display.Tier
	}{
		{0, display.TierLow},
		{29, display.TierLow},
		{30, display.TierMid},
		{69, display.TierMid},
		{70, display.TierHigh},
		{99, display.TierHigh},
		{100, display.TierComplete},
	}

	for _, tt := range tests {
		require.Equal(t, tt.want, display.ProgressTier(tt.progress), "progress %d", tt.progress)
	}

	require.Equal(t, "bg-green-500", display.TierComplete.Class())
	require.Equal(t, "bg-primary", display.TierHigh.Class())
	require.Equal(t, "bg-yellow-500", display.TierMid.Class())
	require.Equal(t, "bg-accent", display.TierLow.Class())
}

func TestDaysLeft(t *testing.T) {
	now := time.Date(2026, 10, 18, 9, 30, 0, 0, time.UTC)
	day := 24 * time.Hour

	tests := []struct {
		name  string
		due   time.Time
		label string
	}{
		{"exact days", now.Add(5 * day), "5 days left"},
		{"partial day rounds up", now.Add(4*day + time.Hour), "5 days left"},
		{"one nanosecond left", now.Add(time.Nanosecond), "1 days left"},
		{"just under a day", now.Add(day - time.Minute), "1 days left"},
		{"due now", now, display.PastDueLabel},
		{"overdue", now.Add(-3 * day), display.PastDueLabel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.label, display.DueLabel(tt.due, now))
		})
	}

	days, ok := display.DaysLeft(now.Add(time.Nanosecond), now)
	require.True(t, ok)
	require.Equal(t, 1, days)

	_, ok = display.DaysLeft(now, now)
	require.False(t, ok)

	far := time.Date(2400, 1, 1, 0, 0, 0, 0, time.UTC)
	days, ok = display.DaysLeft(far, now)
	require.True(t, ok)
	require.Equal(t, 136310, days)
	require.Equal(t, "136310 days left", display.DueLabel(far, now))

	_, ok = display.DaysLeft(now, far)
	require.False(t, ok)
}

func TestDates(t *testing.T) {
	due := time.Date(2026, 10, 25, 0, 0, 0, 0, time.UTC)
	require.Equal(t, "Oct 25", display.ShortDate(due))
	require.Equal(t, "October 25, 2026", display.LongDate(due))
}

func TestTeamPreview(t *testing.T) {
	team := []project.TeamMember{
		{ID: 1, Avatar: "AJ"},
		{ID: 2, Avatar: "MG"},
		{ID: 3, Avatar: "SL"},
		{ID: 4, Avatar: "DK"},
		{ID: 5, Avatar: "EW"},
	}

	shown, overflow := display.TeamPreview(team, 3)
	require.Len(t, shown, 3)
	require.Equal(t, 2, overflow)

	shown, overflow = display.TeamPreview(team[:2], 3)
	require.Len(t, shown, 2)
	require.Zero(t, overflow)
}

func TestNewCard(t *testing.T) {
	now := time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC)
	p := project.SampleProjects(now)[0]

	card := display.NewCard(p, now)
	require.Equal(t, "In Progress", card.StatusBadge.Label)
	require.Equal(t, "High", card.PriorityBadge.Label)
	require.Equal(t, display.TierMid, card.Tier)
	require.Equal(t, "bg-yellow-500", card.TierClass)
	require.Equal(t, "7 days left", card.DueLabel)
	require.Equal(t, "8/12", card.Tasks)
	require.Len(t, card.Team, 3)
	require.Zero(t, card.TeamOverflow)

	cards := display.NewCards(project.SampleProjects(now), now)
	require.Len(t, cards, 4)
	require.Equal(t, display.PastDueLabel, cards[2].DueLabel)
	require.Equal(t, display.TierComplete, cards[2].Tier)
}
