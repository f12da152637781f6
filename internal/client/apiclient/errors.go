package apiclient

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/heartmarshall/scriptbook-backend/internal/domain"
)

// APIError is a non-2xx answer from the API.
type APIError struct {
	Status  int
	Message string
	Fields  []domain.FieldError
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api: %d: %s", e.Status, e.Message)
}

// Is maps HTTP statuses onto the domain sentinels, so callers can test
// errors.Is(err, domain.ErrNotFound) without inspecting the status.
func (e *APIError) Is(target error) bool {
	switch target {
	case domain.ErrNotFound:
		return e.Status == http.StatusNotFound
	case domain.ErrValidation:
		return e.Status == http.StatusBadRequest
	}
	return false
}

type errorBody struct {
	Error  string              `json:"error"`
	Fields []domain.FieldError `json:"fields"`
}

func newAPIError(status int, raw []byte) *APIError {
	e := &APIError{Status: status}

	var body errorBody
	if err := json.Unmarshal(raw, &body); err == nil && body.Error != "" {
		e.Message = body.Error
		e.Fields = body.Fields
		return e
	}

	e.Message = strings.TrimSpace(string(raw))
	if e.Message == "" {
		e.Message = http.StatusText(status)
	}
	return e
}
