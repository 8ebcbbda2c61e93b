// Package view projects the stored project list into what the dashboard shows.
package view

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/rpggio/projectdash/internal/domain/project"
)

var (
	// ErrUnknownFilter indicates a filter outside the known set.
	ErrUnknownFilter = errors.New("unknown project filter")
	// ErrUnknownSort indicates a sort order outside the known set.
	ErrUnknownSort = errors.New("unknown project sort")
)

// Filter narrows the list by status group.
type Filter string

const (
	FilterAll       Filter = "all"
	FilterActive    Filter = "active"
	FilterCompleted Filter = "completed"
	FilterOnHold    Filter = "onhold"
)

// ParseFilter resolves a filter id. Empty means FilterAll.
func ParseFilter(s string) (Filter, error) {
	switch f := Filter(strings.TrimSpace(s)); f {
	case "", FilterAll:
		return FilterAll, nil
	case FilterActive, FilterCompleted, FilterOnHold:
		return f, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFilter, s)
}

// Match reports whether a status passes the filter. Active covers planning and in-progress.
func (f Filter) Match(s project.Status) bool {
	switch f {
	case FilterActive:
		return s == project.StatusPlanning || s == project.StatusInProgress
	case FilterCompleted:
		return s == project.StatusCompleted
	case FilterOnHold:
		return s == project.StatusOnHold
	default:
		return true
	}
}

// Sort orders the visible list. SortNone keeps insertion order.
type Sort string

const (
	SortNone     Sort = ""
	SortLatest   Sort = "latest"
	SortOldest   Sort = "oldest"
	SortPriority Sort = "priority"
	SortDeadline Sort = "deadline"
)

// ParseSort resolves a sort id.
func ParseSort(s string) (Sort, error) {
	switch o := Sort(strings.TrimSpace(s)); o {
	case SortNone, SortLatest, SortOldest, SortPriority, SortDeadline:
		return o, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownSort, s)
}

// Selection is the active filter, search text and sort order.
type Selection struct {
	Filter Filter `json:"filter"`
	Search string `json:"search,omitempty"`
	Sort   Sort   `json:"sort,omitempty"`
}

// DefaultSelection shows every project in insertion order.
func DefaultSelection() Selection {
	return Selection{Filter: FilterAll}
}

// Apply returns the visible projects for sel. The input slice is not modified.
func Apply(projects []project.Project, sel Selection) []project.Project {
	query := strings.ToLower(strings.TrimSpace(sel.Search))

	out := make([]project.Project, 0, len(projects))
	for _, p := range projects {
		if !sel.Filter.Match(p.Status) {
			continue
		}
		if query != "" && !matches(p, query) {
			continue
		}
		out = append(out, p)
	}

	switch sel.Sort {
	case SortLatest:
		slices.SortStableFunc(out, func(a, b project.Project) int { return cmpInt64(b.ID, a.ID) })
	case SortOldest:
		slices.SortStableFunc(out, func(a, b project.Project) int { return cmpInt64(a.ID, b.ID) })
	case SortPriority:
		slices.SortStableFunc(out, func(a, b project.Project) int { return a.Priority.Rank() - b.Priority.Rank() })
	case SortDeadline:
		slices.SortStableFunc(out, func(a, b project.Project) int { return a.DueDate.Compare(b.DueDate) })
	}
	return out
}

func matches(p project.Project, query string) bool {
	return strings.Contains(strings.ToLower(p.Title), query) ||
		strings.Contains(strings.ToLower(p.Description), query)
}

func cmpInt64(a, b int64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}
