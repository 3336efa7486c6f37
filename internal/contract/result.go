package contract

import (
	"errors"
	"wxledger/internal/models"
)

const (
	ErrorNotAuthorized    = "Not authorized"
	ErrorMethodNotFound   = "Method not found"
	ErrorInvalidArguments = "Invalid arguments"
)

// Result is the envelope returned for every call. Value is omitted for calls
// that only report success and for absent weather records.
type Result struct {
	Success bool   `json:"success"`
	Value   any    `json:"value,omitempty"`
	Error   string `json:"error,omitempty"`

	Err error `json:"-"`
}

func Success(value any) Result {
	return Result{Success: true, Value: value}
}

func Failure(err error) Result {
	return Result{Success: false, Error: errorText(err), Err: err}
}

func resultOf(err error) Result {
	if err != nil {
		return Failure(err)
	}
	return Result{Success: true}
}

func errorText(err error) string {
	switch {
	case errors.Is(err, models.ErrUnauthorized):
		return ErrorNotAuthorized
	case errors.Is(err, models.ErrMethodNotFound):
		return ErrorMethodNotFound
	case errors.Is(err, ErrInvalidArguments):
		return ErrorInvalidArguments
	default:
		return err.Error()
	}
}

// Outcome is a short label for logs and metrics.
func (r Result) Outcome() string {
	if r.Success {
		return "ok"
	}
	switch {
	case errors.Is(r.Err, models.ErrUnauthorized):
		return "unauthorized"
	case errors.Is(r.Err, models.ErrMethodNotFound):
		return "method_not_found"
	case errors.Is(r.Err, ErrInvalidArguments):
		return "invalid_arguments"
	default:
		return "error"
	}
}
