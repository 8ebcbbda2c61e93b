package mcp

import (
	"context"
	"time"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/rpggio/projectdash/internal/domain/display"
	"github.com/rpggio/projectdash/internal/domain/session"
	"github.com/rpggio/projectdash/internal/domain/view"
)

type handlers struct {
	projects ProjectService
	sessions *session.Manager
	now      func() time.Time
}

func registerTools(server *sdkmcp.Server, h *handlers) {
	// Projects
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "list_projects",
		Description: "List the visible project cards under the session's current filter, search and sort",
	}, h.listProjects)
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "get_project",
		Description: "Get one project card with its derived badges, progress tier and due label",
	}, h.getProject)
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "delete_project",
		Description: "Delete a project. Ids are never reused",
	}, h.deleteProject)

	// Form
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "open_create",
		Description: "Open the project form for a new project with default status, priority and due date",
	}, h.openCreate)
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "open_edit",
		Description: "Open the project form prefilled from an existing project",
	}, h.openEdit)
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "change_field",
		Description: "Change one field of the open form. Clears that field's error only",
	}, h.changeField)
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "submit_form",
		Description: "Validate the open form and save it. Invalid forms stay open with per-field errors",
	}, h.submitForm)
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "cancel_form",
		Description: "Close the project form and discard the draft",
	}, h.cancelForm)
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "get_form",
		Description: "Get the form state, draft and field errors",
	}, h.getForm)

	// Selection and view
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "select_project",
		Description: "Select a project for the detail view",
	}, h.selectProject)
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "clear_selection",
		Description: "Clear the detail view selection",
	}, h.clearSelection)
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "get_selection",
		Description: "Get the project in the detail view, if any",
	}, h.getSelection)
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "set_view",
		Description: "Set the status filter, search text and sort order, returning the visible cards",
	}, h.setView)
}

func (h *handlers) controller(ctx context.Context) *session.Controller {
	return h.sessions.Open(getSessionID(ctx))
}

func (h *handlers) listProjects(ctx context.Context, _ *sdkmcp.CallToolRequest, _ EmptyParams) (*sdkmcp.CallToolResult, any, error) {
	resp, err := h.visible(ctx, h.controller(ctx))
	if err != nil {
		return errorResult(err)
	}
	return nil, resp, nil
}

func (h *handlers) getProject(ctx context.Context, _ *sdkmcp.CallToolRequest, in ProjectIDParams) (*sdkmcp.CallToolResult, any, error) {
	proj, err := h.projects.Get(ctx, in.ID)
	if err != nil {
		return errorResult(err)
	}
	return nil, ProjectResponse{Card: display.NewCard(*proj, h.now())}, nil
}

func (h *handlers) deleteProject(ctx context.Context, _ *sdkmcp.CallToolRequest, in ProjectIDParams) (*sdkmcp.CallToolResult, any, error) {
	c := h.controller(ctx)
	if err := c.Delete(ctx, in.ID); err != nil {
		return errorResult(err)
	}
	return nil, DeleteResponse{Deleted: in.ID, Form: c.Form()}, nil
}

func (h *handlers) openCreate(ctx context.Context, _ *sdkmcp.CallToolRequest, _ EmptyParams) (*sdkmcp.CallToolResult, any, error) {
	return nil, FormResponse{Form: h.controller(ctx).OpenCreate()}, nil
}

func (h *handlers) openEdit(ctx context.Context, _ *sdkmcp.CallToolRequest, in ProjectIDParams) (*sdkmcp.CallToolResult, any, error) {
	proj, err := h.projects.Get(ctx, in.ID)
	if err != nil {
		return errorResult(err)
	}
	return nil, FormResponse{Form: h.controller(ctx).OpenEdit(*proj)}, nil
}

func (h *handlers) changeField(ctx context.Context, _ *sdkmcp.CallToolRequest, in ChangeFieldParams) (*sdkmcp.CallToolResult, any, error) {
	form, err := h.controller(ctx).ChangeField(in.Field, in.Value)
	if err != nil {
		return errorResult(err)
	}
	return nil, FormResponse{Form: form}, nil
}

func (h *handlers) submitForm(ctx context.Context, _ *sdkmcp.CallToolRequest, _ EmptyParams) (*sdkmcp.CallToolResult, any, error) {
	c := h.controller(ctx)
	saved, err := c.Submit(ctx)
	if err != nil {
		return errorResult(err)
	}
	return nil, SubmitResponse{Card: display.NewCard(*saved, h.now()), Form: c.Form()}, nil
}

func (h *handlers) cancelForm(ctx context.Context, _ *sdkmcp.CallToolRequest, _ EmptyParams) (*sdkmcp.CallToolResult, any, error) {
	c := h.controller(ctx)
	c.Cancel()
	return nil, FormResponse{Form: c.Form()}, nil
}

func (h *handlers) getForm(ctx context.Context, _ *sdkmcp.CallToolRequest, _ EmptyParams) (*sdkmcp.CallToolResult, any, error) {
	return nil, FormResponse{Form: h.controller(ctx).Form()}, nil
}

func (h *handlers) selectProject(ctx context.Context, _ *sdkmcp.CallToolRequest, in ProjectIDParams) (*sdkmcp.CallToolResult, any, error) {
	proj, err := h.controller(ctx).SelectForDetail(ctx, in.ID)
	if err != nil {
		return errorResult(err)
	}
	card := display.NewCard(*proj, h.now())
	return nil, SelectionResponse{Selected: &card}, nil
}

func (h *handlers) clearSelection(ctx context.Context, _ *sdkmcp.CallToolRequest, _ EmptyParams) (*sdkmcp.CallToolResult, any, error) {
	h.controller(ctx).ClearDetail()
	return nil, SelectionResponse{}, nil
}

func (h *handlers) getSelection(ctx context.Context, _ *sdkmcp.CallToolRequest, _ EmptyParams) (*sdkmcp.CallToolResult, any, error) {
	proj, err := h.controller(ctx).Selected(ctx)
	if err != nil {
		return errorResult(err)
	}
	if proj == nil {
		return nil, SelectionResponse{}, nil
	}
	card := display.NewCard(*proj, h.now())
	return nil, SelectionResponse{Selected: &card}, nil
}

func (h *handlers) setView(ctx context.Context, _ *sdkmcp.CallToolRequest, in SetViewParams) (*sdkmcp.CallToolResult, any, error) {
	filter, err := view.ParseFilter(in.Filter)
	if err != nil {
		return errorResult(err)
	}
	sort, err := view.ParseSort(in.Sort)
	if err != nil {
		return errorResult(err)
	}

	c := h.controller(ctx)
	c.SetView(view.Selection{Filter: filter, Search: in.Search, Sort: sort})

	resp, err := h.visible(ctx, c)
	if err != nil {
		return errorResult(err)
	}
	return nil, resp, nil
}

func (h *handlers) visible(ctx context.Context, c *session.Controller) (ProjectListResponse, error) {
	all, err := h.projects.List(ctx)
	if err != nil {
		return ProjectListResponse{}, err
	}
	list, err := c.Visible(ctx)
	if err != nil {
		return ProjectListResponse{}, err
	}
	return ProjectListResponse{
		SessionID: c.ID(),
		View:      c.View(),
		Total:     len(all),
		Cards:     display.NewCards(list, h.now()),
	}, nil
}
