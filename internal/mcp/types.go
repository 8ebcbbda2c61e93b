package mcp

import (
	"github.com/rpggio/projectdash/internal/domain/display"
	"github.com/rpggio/projectdash/internal/domain/session"
	"github.com/rpggio/projectdash/internal/domain/view"
)

type EmptyParams struct{}

type ProjectIDParams struct {
	ID int64 `json:"id" jsonschema:"project id"`
}

type ChangeFieldParams struct {
	Field string `json:"field" jsonschema:"one of title, description, status, priority, due_date"`
	Value string `json:"value" jsonschema:"new value; due_date uses YYYY-MM-DD"`
}

type SetViewParams struct {
	Filter string `json:"filter,omitempty" jsonschema:"all, active, completed or onhold"`
	Search string `json:"search,omitempty" jsonschema:"case-insensitive text matched against title and description"`
	Sort   string `json:"sort,omitempty" jsonschema:"latest, oldest, priority or deadline; empty keeps insertion order"`
}

// ProjectListResponse is the visible dashboard under the session's view.
type ProjectListResponse struct {
	SessionID string         `json:"session_id"`
	View      view.Selection `json:"view"`
	Total     int            `json:"total"`
	Cards     []display.Card `json:"cards"`
}

type ProjectResponse struct {
	Card display.Card `json:"card"`
}

type FormResponse struct {
	Form session.FormSnapshot `json:"form"`
}

type SubmitResponse struct {
	Card display.Card         `json:"card"`
	Form session.FormSnapshot `json:"form"`
}

type DeleteResponse struct {
	Deleted int64                `json:"deleted"`
	Form    session.FormSnapshot `json:"form"`
}

type SelectionResponse struct {
	Selected *display.Card `json:"selected"`
}
