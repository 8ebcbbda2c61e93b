package project

import "time"

// Status represents the workflow status of a project
type Status string

const (
	StatusPlanning   Status = "planning"
	StatusInProgress Status = "in-progress"
	StatusCompleted  Status = "completed"
	StatusOnHold     Status = "on-hold"
)

// Valid reports whether s is one of the known statuses.
func (s Status) Valid() bool {
	switch s {
	case StatusPlanning, StatusInProgress, StatusCompleted, StatusOnHold:
		return true
	}
	return false
}

// Priority represents how urgent a project is
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
	PriorityUrgent Priority = "urgent"
)

// Valid reports whether p is one of the known priorities.
func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent:
		return true
	}
	return false
}

// Rank orders priorities from urgent (0) to low (3). Unknown values sort last.
func (p Priority) Rank() int {
	switch p {
	case PriorityUrgent:
		return 0
	case PriorityHigh:
		return 1
	case PriorityMedium:
		return 2
	case PriorityLow:
		return 3
	}
	return 4
}

// TeamMember is a display-only reference to a person working on a project
type TeamMember struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Avatar string `json:"avatar"`
	Color  string `json:"color"`
}

// Project is a tracked unit of work shown on the dashboard
type Project struct {
	ID             int64        `json:"id"`
	Title          string       `json:"title"`
	Description    string       `json:"description"`
	Status         Status       `json:"status"`
	Priority       Priority     `json:"priority"`
	DueDate        time.Time    `json:"due_date"`
	Progress       int          `json:"progress"`
	Tasks          int          `json:"tasks"`
	CompletedTasks int          `json:"completed_tasks"`
	Team           []TeamMember `json:"team"`
}

// Fields holds the user-editable part of a project.
type Fields struct {
	Title       string
	Description string
	Status      Status
	Priority    Priority
	DueDate     time.Time
}

// Apply overwrites the editable fields of p, leaving progress, tasks and team alone.
func (f Fields) Apply(p *Project) {
	p.Title = f.Title
	p.Description = f.Description
	p.Status = f.Status
	p.Priority = f.Priority
	p.DueDate = f.DueDate
}

// Fields returns the editable part of p.
func (p Project) Fields() Fields {
	return Fields{
		Title:       p.Title,
		Description: p.Description,
		Status:      p.Status,
		Priority:    p.Priority,
		DueDate:     p.DueDate,
	}
}

// Clone returns a deep copy of p.
func (p Project) Clone() Project {
	out := p
	if p.Team != nil {
		out.Team = append([]TeamMember(nil), p.Team...)
	}
	return out
}
