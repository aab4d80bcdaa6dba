package analyses

import (
	"errors"
	"net/http"

	"github.com/reviewlens/reviewlens/internal/workflow"
	"github.com/reviewlens/reviewlens/pkg/formatting"
)

// Domain errors for analysis operations.
var (
	ErrNotFound = errors.New("analysis not found")
)

// FieldErrors collects validation messages keyed by form field name.
type FieldErrors map[string][]string

// ValidationError reports a rejected submission. The workflow is never
// invoked for a request that fails validation.
type ValidationError struct {
	Fields FieldErrors `json:"field_errors"`
}

func (e *ValidationError) Error() string {
	return "invalid analysis request"
}

// MapHTTPStatus maps analysis domain errors to appropriate HTTP status
// codes. Workflow and parse failures surface as 502 because the fault lies
// with the upstream generative service, not the caller.
func MapHTTPStatus(err error) int {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return http.StatusBadRequest
	}
	if errors.Is(err, ErrNotFound) {
		return http.StatusNotFound
	}
	if errors.Is(err, workflow.ErrAnalyzeFailed) ||
		errors.Is(err, workflow.ErrExplainFailed) ||
		errors.Is(err, workflow.ErrEmptyResult) ||
		errors.Is(err, workflow.ErrInvalidClassification) ||
		errors.Is(err, formatting.ErrParseFailed) {
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}
