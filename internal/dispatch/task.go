// internal/dispatch/task.go

package dispatch

import (
	"context"
	"time"

	"shawl/internal/models"
)

// Result is the outcome of one dispatched request.
type Result struct {
	TaskID     string
	Action     models.Action
	StatusCode int
	Body       string
	Duration   time.Duration
	Err        error

	// Shared is set when the request was joined instead of sent (dedupe policy).
	Shared bool
}

// OK reports whether the request reached the server and got a 2xx response.
func (r Result) OK() bool {
	return r.Err == nil
}

// Task is a dispatched request. Callers may ignore it entirely.
type Task struct {
	ID     string
	Action models.Action

	done   chan struct{}
	result Result
}

func newTask(id string, action models.Action) *Task {
	return &Task{
		ID:     id,
		Action: action,
		done:   make(chan struct{}),
	}
}

func (t *Task) finish(r Result) {
	r.TaskID = t.ID
	r.Action = t.Action
	t.result = r
	close(t.done)
}

// Done is closed when the request has completed.
func (t *Task) Done() <-chan struct{} {
	return t.done
}

// Result returns the result. It is only meaningful after Done is closed.
func (t *Task) Result() Result {
	select {
	case <-t.done:
		return t.result
	default:
		return Result{TaskID: t.ID, Action: t.Action}
	}
}

// Wait blocks until the task finishes or ctx is done.
func (t *Task) Wait(ctx context.Context) (Result, error) {
	select {
	case <-t.done:
		return t.result, nil
	case <-ctx.Done():
		return Result{TaskID: t.ID, Action: t.Action}, ctx.Err()
	}
}
