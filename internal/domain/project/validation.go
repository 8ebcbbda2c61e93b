package project

import (
	"fmt"
	"strings"
	"time"
)

// DateLayout is the draft representation of a due date.
const DateLayout = "2006-01-02"

// Field names a user-editable project field.
type Field string

const (
	FieldTitle       Field = "title"
	FieldDescription Field = "description"
	FieldStatus      Field = "status"
	FieldPriority    Field = "priority"
	FieldDueDate     Field = "due_date"
)

// ParseField resolves a field name. The camel-case "dueDate" is accepted as well.
func ParseField(name string) (Field, bool) {
	switch Field(strings.TrimSpace(name)) {
	case FieldTitle:
		return FieldTitle, true
	case FieldDescription:
		return FieldDescription, true
	case FieldStatus:
		return FieldStatus, true
	case FieldPriority:
		return FieldPriority, true
	case FieldDueDate, "dueDate":
		return FieldDueDate, true
	}
	return "", false
}

const (
	msgTitleRequired       = "Project title is required"
	msgDescriptionRequired = "Project description is required"
	msgDueDateRequired     = "Due date is required"
	msgDueDateFormat       = "Due date must be a valid date (YYYY-MM-DD)"
)

// FieldErrors maps a field to its validation message. A missing key means the field is valid.
type FieldErrors map[Field]string

// Err returns a *ValidationError when any field failed, nil otherwise.
func (fe FieldErrors) Err() error {
	if len(fe) == 0 {
		return nil
	}
	return &ValidationError{Fields: fe.Clone()}
}

// Clone returns a copy of fe.
func (fe FieldErrors) Clone() FieldErrors {
	out := make(FieldErrors, len(fe))
	for k, v := range fe {
		out[k] = v
	}
	return out
}

// Draft is the editable, not yet validated form of a project.
type Draft struct {
	ID          int64    `json:"id,omitempty"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Status      Status   `json:"status"`
	Priority    Priority `json:"priority"`
	DueDate     string   `json:"due_date"`
}

// DraftFrom prefills a draft from an existing project.
func DraftFrom(p Project) Draft {
	return Draft{
		ID:          p.ID,
		Title:       p.Title,
		Description: p.Description,
		Status:      p.Status,
		Priority:    p.Priority,
		DueDate:     p.DueDate.Format(DateLayout),
	}
}

// Fields converts a valid draft into project fields. Due dates are read as UTC midnight.
func (d Draft) Fields() (Fields, error) {
	due, err := time.Parse(DateLayout, strings.TrimSpace(d.DueDate))
	if err != nil {
		return Fields{}, fmt.Errorf("%w: due date %q", ErrInvalidInput, d.DueDate)
	}
	return Fields{
		Title:       d.Title,
		Description: d.Description,
		Status:      d.Status,
		Priority:    d.Priority,
		DueDate:     due,
	}, nil
}

// Validate checks every rule and reports all failures together.
func Validate(d Draft) FieldErrors {
	errs := FieldErrors{}

	if strings.TrimSpace(d.Title) == "" {
		errs[FieldTitle] = msgTitleRequired
	}
	if strings.TrimSpace(d.Description) == "" {
		errs[FieldDescription] = msgDescriptionRequired
	}
	if d.DueDate == "" {
		errs[FieldDueDate] = msgDueDateRequired
	} else if _, err := time.Parse(DateLayout, strings.TrimSpace(d.DueDate)); err != nil {
		errs[FieldDueDate] = msgDueDateFormat
	}
	if !d.Status.Valid() {
		errs[FieldStatus] = fmt.Sprintf("Unknown status %q", string(d.Status))
	}
	if !d.Priority.Valid() {
		errs[FieldPriority] = fmt.Sprintf("Unknown priority %q", string(d.Priority))
	}

	return errs
}

// CheckInvariants validates a full record before it enters a repository directly.
func CheckInvariants(p Project) error {
	if strings.TrimSpace(p.Title) == "" || strings.TrimSpace(p.Description) == "" {
		return fmt.Errorf("%w: title and description are required", ErrInvalidInput)
	}
	if !p.Status.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownStatus, p.Status)
	}
	if !p.Priority.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownPriority, p.Priority)
	}
	if p.Progress < 0 || p.Progress > 100 {
		return fmt.Errorf("%w: progress %d out of range", ErrInvalidInput, p.Progress)
	}
	if p.Tasks < 0 || p.CompletedTasks < 0 {
		return fmt.Errorf("%w: negative task count", ErrInvalidInput)
	}
	if p.CompletedTasks > p.Tasks {
		return fmt.Errorf("%w: %d completed of %d tasks", ErrInvalidInput, p.CompletedTasks, p.Tasks)
	}
	return nil
}
