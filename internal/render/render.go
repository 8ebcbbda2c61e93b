// Package render draws dashboard cards for a terminal.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rpggio/projectdash/internal/domain/display"
)

// EmptyMessage is printed when no card is visible.
const EmptyMessage = "No projects found"

const (
	defaultWidth = 60
	barWidth     = 20
)

// Renderer formats cards with lipgloss. Colors are dropped when w is not a terminal.
type Renderer struct {
	w      io.Writer
	lg     *lipgloss.Renderer
	width  int
	styles styles
}

type styles struct {
	card  lipgloss.Style
	title lipgloss.Style
	desc  lipgloss.Style
	meta  lipgloss.Style
	badge lipgloss.Style
}

// New returns a renderer writing to w. A width of zero uses the default.
func New(w io.Writer, width int) *Renderer {
	if width <= 0 {
		width = defaultWidth
	}
	lg := lipgloss.NewRenderer(w)
	return &Renderer{
		w:     w,
		lg:    lg,
		width: width,
		styles: styles{
			card: lg.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("238")).
				Padding(0, 1).
				Width(width),
			title: lg.NewStyle().Bold(true),
			desc:  lg.NewStyle().Foreground(lipgloss.Color("245")),
			meta:  lg.NewStyle().Foreground(lipgloss.Color("250")),
			badge: lg.NewStyle().Padding(0, 1).Bold(true),
		},
	}
}

// Card renders one project card.
func (r *Renderer) Card(c display.Card) string {
	header := lipgloss.JoinHorizontal(lipgloss.Top,
		r.styles.title.Render(c.Project.Title),
		" ",
		r.badge(c.StatusBadge),
		" ",
		r.badge(c.PriorityBadge),
	)

	meta := strings.Join([]string{
		c.Tasks + " tasks",
		"Due " + c.DueShort,
		c.DueLabel,
	}, " · ")

	lines := []string{
		header,
		r.styles.desc.Render(c.Project.Description),
		r.progress(c),
		r.styles.meta.Render(meta),
	}
	if team := teamLine(c); team != "" {
		lines = append(lines, r.styles.meta.Render(team))
	}

	return r.styles.card.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

// Cards renders every card, one below the other.
func (r *Renderer) Cards(cards []display.Card) string {
	if len(cards) == 0 {
		return r.styles.desc.Render(EmptyMessage)
	}
	out := make([]string, 0, len(cards))
	for _, c := range cards {
		out = append(out, r.Card(c))
	}
	return lipgloss.JoinVertical(lipgloss.Left, out...)
}

// Write renders cards to the underlying writer.
func (r *Renderer) Write(cards []display.Card) error {
	_, err := fmt.Fprintln(r.w, r.Cards(cards))
	return err
}

func (r *Renderer) badge(b display.Badge) string {
	return r.styles.badge.Foreground(badgeColor(b.Class)).Render(b.Label)
}

func (r *Renderer) progress(c display.Card) string {
	filled := c.Project.Progress * barWidth / 100
	if filled < 0 {
		filled = 0
	}
	if filled > barWidth {
		filled = barWidth
	}
	bar := r.lg.NewStyle().Foreground(tierColor(c.Tier)).Render(strings.Repeat("█", filled)) +
		r.styles.desc.Render(strings.Repeat("░", barWidth-filled))
	return fmt.Sprintf("%s %d%%", bar, c.Project.Progress)
}

func teamLine(c display.Card) string {
	if len(c.Team) == 0 {
		return ""
	}
	parts := make([]string, 0, len(c.Team)+1)
	for _, m := range c.Team {
		parts = append(parts, m.Avatar)
	}
	if c.TeamOverflow > 0 {
		parts = append(parts, fmt.Sprintf("+%d", c.TeamOverflow))
	}
	return "Team: " + strings.Join(parts, " ")
}

// badgeColor picks a terminal color from the badge's CSS color family.
func badgeColor(class string) lipgloss.Color {
	switch {
	case strings.Contains(class, "text-blue-"):
		return lipgloss.Color("33")
	case strings.Contains(class, "text-yellow-"):
		return lipgloss.Color("220")
	case strings.Contains(class, "text-green-"):
		return lipgloss.Color("40")
	case strings.Contains(class, "text-orange-"):
		return lipgloss.Color("208")
	case strings.Contains(class, "text-red-"):
		return lipgloss.Color("196")
	default:
		return lipgloss.Color("245")
	}
}

func tierColor(t display.Tier) lipgloss.Color {
	switch t {
	case display.TierComplete:
		return lipgloss.Color("40")
	case display.TierHigh:
		return lipgloss.Color("33")
	case display.TierMid:
		return lipgloss.Color("220")
	default:
		return lipgloss.Color("205")
	}
}
