package mcp

import (
	"encoding/json"
	"errors"
	"fmt"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/rpggio/projectdash/internal/domain/project"
	"github.com/rpggio/projectdash/internal/domain/session"
	"github.com/rpggio/projectdash/internal/domain/view"
)

// Error codes returned in APIError.Code.
const (
	CodeProjectNotFound  = "PROJECT_NOT_FOUND"
	CodeValidationFailed = "VALIDATION_FAILED"
	CodeFormClosed       = "FORM_CLOSED"
	CodeInvalidInput     = "INVALID_INPUT"
	CodeInternal         = "INTERNAL_ERROR"
)

// APIError represents an MCP error response.
type APIError struct {
	Code         string `json:"code"`
	Message      string `json:"message"`
	Details      any    `json:"details,omitempty"`
	RecoveryHint string `json:"recovery_hint,omitempty"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// MapError maps domain errors to MCP error codes.
func MapError(err error) *APIError {
	if err == nil {
		return nil
	}

	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr
	}

	var validation *project.ValidationError
	switch {
	case errors.As(err, &validation):
		return &APIError{
			Code:         CodeValidationFailed,
			Message:      "project form has invalid fields",
			Details:      validation.Fields,
			RecoveryHint: "Fix the listed fields with change_field, then submit_form again",
		}
	case errors.Is(err, project.ErrProjectNotFound):
		return &APIError{Code: CodeProjectNotFound, Message: "project not found", RecoveryHint: "Call list_projects for current ids"}
	case errors.Is(err, session.ErrFormClosed):
		return &APIError{Code: CodeFormClosed, Message: "no project form is open", RecoveryHint: "Call open_create or open_edit first"}
	case errors.Is(err, session.ErrUnknownField),
		errors.Is(err, project.ErrUnknownStatus),
		errors.Is(err, project.ErrUnknownPriority),
		errors.Is(err, project.ErrInvalidInput),
		errors.Is(err, view.ErrUnknownFilter),
		errors.Is(err, view.ErrUnknownSort):
		return &APIError{Code: CodeInvalidInput, Message: err.Error()}
	default:
		return &APIError{Code: CodeInternal, Message: err.Error()}
	}
}

// errorResult reports err to the client as a tool error carrying an APIError.
func errorResult(err error) (*sdkmcp.CallToolResult, any, error) {
	apiErr := MapError(err)
	data, mErr := json.Marshal(apiErr)
	if mErr != nil {
		data = []byte(apiErr.Error())
	}
	return &sdkmcp.CallToolResult{
		IsError: true,
		Content: []sdkmcp.Content{&sdkmcp.TextContent{Text: string(data)}},
	}, nil, nil
}
