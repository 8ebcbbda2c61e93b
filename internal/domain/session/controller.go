package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/rpggio/projectdash/internal/domain/project"
	"github.com/rpggio/projectdash/internal/domain/view"
)

// DefaultDueIn is how far ahead a new draft's due date is set.
const DefaultDueIn = 7 * 24 * time.Hour

// Controller mediates between the project store and a single editable draft.
// It also owns the detail selection and the view selection of one client.
type Controller struct {
	id       string
	projects ProjectStore
	now      func() time.Time
	logger   *slog.Logger

	mu       sync.Mutex
	state    State
	draft    project.Draft
	errors   project.FieldErrors
	selected int64
	view     view.Selection
}

// Option configures a Controller.
type Option func(*Controller)

// WithClock overrides the clock used for default due dates.
func WithClock(now func() time.Time) Option {
	return func(c *Controller) { c.now = now }
}

// WithLogger sets the controller logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Controller) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// NewController creates a closed controller over projects.
func NewController(projects ProjectStore, opts ...Option) *Controller {
	c := &Controller{
		id:       uuid.NewString(),
		projects: projects,
		now:      time.Now,
		logger:   slog.New(slog.DiscardHandler),
		state:    Closed{},
		errors:   project.FieldErrors{},
		view:     view.DefaultSelection(),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.logger = c.logger.With("session_id", c.id)
	return c
}

// ID returns the controller's session ID.
func (c *Controller) ID() string {
	return c.id
}

// State returns the current form state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// OpenCreate opens an empty form for a new project.
func (c *Controller) OpenCreate() FormSnapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.state = Creating{}
	c.draft = project.Draft{
		Status:   project.StatusPlanning,
		Priority: project.PriorityMedium,
		DueDate:  c.now().Add(DefaultDueIn).Format(project.DateLayout),
	}
	c.errors = project.FieldErrors{}
	return c.snapshotLocked()
}

// OpenEdit opens the form prefilled from p.
func (c *Controller) OpenEdit(p project.Project) FormSnapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.state = Editing{ProjectID: p.ID}
	c.draft = project.DraftFrom(p)
	c.errors = project.FieldErrors{}
	return c.snapshotLocked()
}

// ChangeField sets one draft field and clears only that field's error.
func (c *Controller) ChangeField(name, value string) (FormSnapshot, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.state.(Closed); ok {
		return c.snapshotLocked(), ErrFormClosed
	}

	field, ok := project.ParseField(name)
	if !ok {
		return c.snapshotLocked(), fmt.Errorf("%w: %q", ErrUnknownField, name)
	}

	switch field {
	case project.FieldTitle:
		c.draft.Title = value
	case project.FieldDescription:
		c.draft.Description = value
	case project.FieldStatus:
		status := project.Status(value)
		if !status.Valid() {
			return c.snapshotLocked(), fmt.Errorf("%w: %q", project.ErrUnknownStatus, value)
		}
		c.draft.Status = status
	case project.FieldPriority:
		priority := project.Priority(value)
		if !priority.Valid() {
			return c.snapshotLocked(), fmt.Errorf("%w: %q", project.ErrUnknownPriority, value)
		}
		c.draft.Priority = priority
	case project.FieldDueDate:
		c.draft.DueDate = value
	}

	delete(c.errors, field)
	return c.snapshotLocked(), nil
}

// Submit validates the draft and, when valid, creates or updates the project
// and closes the form. Invalid drafts leave the form open and return a
// *project.ValidationError.
func (c *Controller) Submit(ctx context.Context) (*project.Project, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.state.(Closed); ok {
		return nil, ErrFormClosed
	}

	c.errors = project.Validate(c.draft)
	if err := c.errors.Err(); err != nil {
		c.logger.Debug("form rejected", "errors", len(c.errors))
		return nil, err
	}

	fields, err := c.draft.Fields()
	if err != nil {
		return nil, err
	}

	var saved *project.Project
	switch st := c.state.(type) {
	case Creating:
		saved, err = c.projects.Create(ctx, fields)
	case Editing:
		saved, err = c.projects.Update(ctx, st.ProjectID, fields)
	}
	if err != nil {
		return nil, err
	}

	c.closeLocked()
	return saved, nil
}

// Cancel closes the form and discards the draft.
func (c *Controller) Cancel() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closeLocked()
}

// Form returns a snapshot of the form.
func (c *Controller) Form() FormSnapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshotLocked()
}

// Delete removes a project. A selection or edit form pointing at it is dropped.
func (c *Controller) Delete(ctx context.Context, id int64) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.projects.Delete(ctx, id); err != nil {
		return err
	}
	if c.selected == id {
		c.selected = 0
	}
	if st, ok := c.state.(Editing); ok && st.ProjectID == id {
		c.closeLocked()
	}
	return nil
}

// SelectForDetail marks a project as the one being viewed.
func (c *Controller) SelectForDetail(ctx context.Context, id int64) (*project.Project, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	proj, err := c.projects.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	c.selected = proj.ID
	return proj, nil
}

// ClearDetail drops the detail selection.
func (c *Controller) ClearDetail() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.selected = 0
}

// Selected returns the viewed project, or nil. A selection whose project no
// longer exists is cleared.
func (c *Controller) Selected(ctx context.Context) (*project.Project, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.selected == 0 {
		return nil, nil
	}
	proj, err := c.projects.Get(ctx, c.selected)
	if errors.Is(err, project.ErrProjectNotFound) {
		c.selected = 0
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return proj, nil
}

// View returns the view selection.
func (c *Controller) View() view.Selection {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.view
}

// SetView replaces the view selection.
func (c *Controller) SetView(sel view.Selection) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if sel.Filter == "" {
		sel.Filter = view.FilterAll
	}
	c.view = sel
}

// SetFilter changes only the status filter.
func (c *Controller) SetFilter(f view.Filter) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if f == "" {
		f = view.FilterAll
	}
	c.view.Filter = f
}

// SetSearch changes only the search text.
func (c *Controller) SetSearch(q string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.view.Search = q
}

// SetSort changes only the sort order.
func (c *Controller) SetSort(o view.Sort) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.view.Sort = o
}

// Visible returns the projects that pass the view selection, in display order.
func (c *Controller) Visible(ctx context.Context) ([]project.Project, error) {
	c.mu.Lock()
	sel := c.view
	c.mu.Unlock()

	list, err := c.projects.List(ctx)
	if err != nil {
		return nil, err
	}
	return view.Apply(list, sel), nil
}

func (c *Controller) closeLocked() {
	c.state = Closed{}
	c.draft = project.Draft{}
	c.errors = project.FieldErrors{}
}

func (c *Controller) snapshotLocked() FormSnapshot {
	snap := FormSnapshot{SessionID: c.id, State: c.state.Name()}
	if _, ok := c.state.(Closed); ok {
		return snap
	}
	if st, ok := c.state.(Editing); ok {
		snap.ProjectID = st.ProjectID
	}
	draft := c.draft
	snap.Draft = &draft
	if len(c.errors) > 0 {
		snap.Errors = c.errors.Clone()
	}
	return snap
}
