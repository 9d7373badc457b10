package gateway

import (
	"context"

	"codeberg.org/quickai/server/quickai/creations"
)

// the uniform envelope every generation request terminates in: exactly one
// of Content (success) or Message (rejection/failure) is set
type Result struct {
	Success bool   `json:"success"`
	Content string `json:"content,omitempty"`
	Message string `json:"message,omitempty"`

	// rejected marks policy denials (quota, plan), which respond with an
	// OK status since they are expected, actionable outcomes
	rejected bool
}

// reports whether the result is a policy rejection rather than a failure
func (r Result) Rejected() bool {
	return r.rejected
}

// builds a policy rejection with the given user-facing message
func Rejection(message string) Result {
	return Result{Success: false, Message: message, rejected: true}
}

// appends generation records. Failures are logged and swallowed by the
// gateway: losing an audit record never loses the user's result.
type Recorder interface {
	Create(ctx context.Context, creation *creations.Creation) error
}
