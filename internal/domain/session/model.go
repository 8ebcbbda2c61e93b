package session

import "github.com/rpggio/projectdash/internal/domain/project"

// State is the form state: Closed, Creating or Editing.
type State interface {
	Name() string
	isState()
}

// Closed means no form is open.
type Closed struct{}

// Creating means the form edits a new project.
type Creating struct{}

// Editing means the form edits the project with ProjectID.
type Editing struct {
	ProjectID int64
}

func (Closed) Name() string   { return "closed" }
func (Creating) Name() string { return "creating" }
func (Editing) Name() string  { return "editing" }

func (Closed) isState()   {}
func (Creating) isState() {}
func (Editing) isState()  {}

// FormSnapshot is a copy of the form for the presentation layer.
type FormSnapshot struct {
	SessionID string              `json:"session_id"`
	State     string              `json:"state"`
	ProjectID int64               `json:"project_id,omitempty"`
	Draft     *project.Draft      `json:"draft,omitempty"`
	Errors    project.FieldErrors `json:"errors,omitempty"`
}
