package errors

import (
	"github.com/cockroachdb/errors"
)

// ErrorDetail is the serializable shape of a single error
type ErrorDetail struct {
	Message string                 `json:"message"`
	Hint    string                 `json:"hint,omitempty"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// ErrorResponse is the shape collaborators render when an operation fails
type ErrorResponse struct {
	Success bool        `json:"success"`
	Error   ErrorDetail `json:"error"`
}

// NewErrorResponse converts any error into a renderable response,
// surfacing hint and details when the error came through this package
func NewErrorResponse(err error) *ErrorResponse {
	resp := &ErrorResponse{
		Success: false,
		Error: ErrorDetail{
			Message: err.Error(),
		},
	}

	var ie *InternalError
	if errors.As(err, &ie) {
		resp.Error.Hint = ie.Hint()
		resp.Error.Details = ie.ReportableDetails()
	}
	return resp
}
