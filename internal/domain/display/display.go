// Package display derives presentation values from projects: badge labels and
// classes, progress tiers, due-date labels and team previews. Every function is
// pure and depends only on its arguments.
package display

import (
	"fmt"
	"time"

	"github.com/rpggio/projectdash/internal/domain/project"
)

// Badge is a label plus the style class used to render it.
type Badge struct {
	Label string `json:"label"`
	Class string `json:"class"`
}

const (
	classBlue    = "bg-blue-100 text-blue-800 dark:bg-blue-900/30 dark:text-blue-300"
	classYellow  = "bg-yellow-100 text-yellow-800 dark:bg-yellow-900/30 dark:text-yellow-300"
	classGreen   = "bg-green-100 text-green-800 dark:bg-green-900/30 dark:text-green-300"
	classOrange  = "bg-orange-100 text-orange-800 dark:bg-orange-900/30 dark:text-orange-300"
	classRed     = "bg-red-100 text-red-800 dark:bg-red-900/30 dark:text-red-300"
	classNeutral = "bg-surface-100 text-surface-800 dark:bg-surface-700 dark:text-surface-300"
)

// StatusBadge maps a status to its badge. Unknown values keep their raw text.
func StatusBadge(s project.Status) Badge {
	switch s {
	case project.StatusPlanning:
		return Badge{Label: "Planning", Class: classBlue}
	case project.StatusInProgress:
		return Badge{Label: "In Progress", Class: classYellow}
	case project.StatusCompleted:
		return Badge{Label: "Completed", Class: classGreen}
	case project.StatusOnHold:
		return Badge{Label: "On Hold", Class: classOrange}
	default:
		return Badge{Label: string(s), Class: classNeutral}
	}
}

// PriorityBadge maps a priority to its badge. Unknown values keep their raw text.
func PriorityBadge(p project.Priority) Badge {
	switch p {
	case project.PriorityLow:
		return Badge{Label: "Low", Class: classGreen}
	case project.PriorityMedium:
		return Badge{Label: "Medium", Class: classBlue}
	case project.PriorityHigh:
		return Badge{Label: "High", Class: classOrange}
	case project.PriorityUrgent:
		return Badge{Label: "Urgent", Class: classRed}
	default:
		return Badge{Label: string(p), Class: classNeutral}
	}
}

// Tier buckets a progress percentage for styling.
type Tier string

const (
	TierLow      Tier = "low"
	TierMid      Tier = "mid"
	TierHigh     Tier = "high"
	TierComplete Tier = "complete"
)

// ProgressTier returns the bar tier. Lower bounds are inclusive: 30 is mid, 70 is high.
func ProgressTier(progress int) Tier {
	switch {
	case progress == 100:
		return TierComplete
	case progress >= 70:
		return TierHigh
	case progress >= 30:
		return TierMid
	default:
		return TierLow
	}
}

// Class returns the bar fill class for the tier.
func (t Tier) Class() string {
	switch t {
	case TierComplete:
		return "bg-green-500"
	case TierHigh:
		return "bg-primary"
	case TierMid:
		return "bg-yellow-500"
	default:
		return "bg-accent"
	}
}

// PastDueLabel is shown once the due date is not in the future.
const PastDueLabel = "Past due date"

// DaysLeft returns the whole days until due, rounded up, and whether due is
// strictly after now. Any positive remainder counts as a full day, so the
// result is at least 1 whenever ok is true.
func DaysLeft(due, now time.Time) (days int, ok bool) {
	if !due.After(now) {
		return 0, false
	}
	// Work in seconds: due.Sub saturates for dates centuries apart.
	const day = 24 * 60 * 60
	secs := due.Unix() - now.Unix()
	nsec := due.Nanosecond() - now.Nanosecond()
	if nsec < 0 {
		secs--
		nsec += int(time.Second)
	}
	days = int(secs / day)
	if secs%day != 0 || nsec > 0 {
		days++
	}
	return days, true
}

// DueLabel renders "N days left" or PastDueLabel.
func DueLabel(due, now time.Time) string {
	days, ok := DaysLeft(due, now)
	if !ok {
		return PastDueLabel
	}
	return fmt.Sprintf("%d days left", days)
}

// ShortDate formats a due date for cards, e.g. "Oct 25".
func ShortDate(t time.Time) string {
	return t.Format("Jan 2")
}

// LongDate formats a due date for the detail view, e.g. "October 25, 2026".
func LongDate(t time.Time) string {
	return t.Format("January 2, 2006")
}

// TaskSummary renders completed over total tasks, e.g. "8/12".
func TaskSummary(p project.Project) string {
	return fmt.Sprintf("%d/%d", p.CompletedTasks, p.Tasks)
}

// TeamPreview returns at most limit members and how many were left out.
func TeamPreview(team []project.TeamMember, limit int) ([]project.TeamMember, int) {
	if limit < 0 {
		limit = 0
	}
	if len(team) <= limit {
		return team, 0
	}
	return team[:limit], len(team) - limit
}
