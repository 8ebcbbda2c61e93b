package mcp

import (
	"context"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

const serverInstructions = `projectdash is a project-tracking dashboard. Projects live in memory for the life of the server.

Core concepts:
- Project: title, description, status, priority, due date, progress, task counts and a display-only team.
- Card: a project plus derived values (status/priority badges, progress tier, "N days left" or "Past due date").
- Form: one per client session. Closed, creating a new project, or editing an existing one.
- View: filter (all | active | completed | onhold), search text and sort (latest | oldest | priority | deadline).

Workflow:
1) Browse: list_projects, or set_view to change what is visible. get_project for one card.
2) Create: open_create, then change_field for title, description, status, priority, due_date (YYYY-MM-DD), then submit_form.
3) Edit: open_edit(id), change_field, submit_form. cancel_form discards the draft.
4) A rejected submit_form returns VALIDATION_FAILED with per-field messages. The form stays open.
5) Detail view: select_project, get_selection, clear_selection. delete_project removes a project for good.

Sessions:
- HTTP: the Mcp-Session-Id header keys the form, selection and view.
- Stdio: pass _meta.session_id to keep several forms apart; otherwise one shared form is used.

Docs:
- projectdash://docs/fields (field rules and derived values)
`

type docResource struct {
	URI         string
	Name        string
	Title       string
	Description string
	Content     string
}

var docResources = []docResource{
	{
		URI:         "projectdash://docs/fields",
		Name:        "docs_fields",
		Title:       "projectdash field rules",
		Description: "Validation rules for the project form and how card values are derived.",
		Content: `# Project fields

## Form fields

| Field | Rule |
|-------|------|
| title | required, not blank |
| description | required, not blank |
| status | planning, in-progress, completed, on-hold |
| priority | low, medium, high, urgent |
| due_date | required, YYYY-MM-DD |

New forms start as planning / medium, due seven days out. All failing fields are reported together.
Changing a field clears only that field's error.

## Derived values

- Progress tier: 100 is complete, 70 and up is high, 30 and up is mid, below 30 is low.
- Due label: whole days left, rounded up ("N days left"). A due date at or before now reads "Past due date".
- Team preview: first three members, plus a count of the rest.

## Sorting

- latest / oldest: by id, newest or oldest first
- priority: urgent, high, medium, low
- deadline: earliest due date first
- empty: insertion order
`,
	},
}

func registerDocResources(server *sdkmcp.Server) {
	for _, doc := range docResources {
		server.AddResource(&sdkmcp.Resource{
			URI:         doc.URI,
			Name:        doc.Name,
			Title:       doc.Title,
			Description: doc.Description,
			MIMEType:    "text/markdown",
			Size:        int64(len(doc.Content)),
		}, func(_ context.Context, req *sdkmcp.ReadResourceRequest) (*sdkmcp.ReadResourceResult, error) {
			uri := doc.URI
			if req != nil && req.Params != nil && req.Params.URI != "" {
				uri = req.Params.URI
			}
			return &sdkmcp.ReadResourceResult{
				Contents: []*sdkmcp.ResourceContents{{
					URI:      uri,
					MIMEType: "text/markdown",
					Text:     doc.Content,
				}},
			}, nil
		})
	}
}
