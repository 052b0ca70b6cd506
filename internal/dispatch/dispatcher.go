// internal/dispatch/dispatcher.go

// Package dispatch turns action invocations into POST requests against the
// control panel API.
package dispatch

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	apperr "shawl/internal/error"
	"shawl/internal/models"

	"github.com/google/uuid"
	"golang.org/x/sync/semaphore"
	"golang.org/x/sync/singleflight"
)

const (
	DefaultTimeout = 30 * time.Second

	maxBodyExcerpt = 512
)

// Policy decides what happens when an action is invoked while an earlier
// request for the same action is still in flight.
type Policy string

const (
	// PolicyOverlap sends every request immediately, with no coordination.
	PolicyOverlap Policy = "overlap"
	// PolicySerialize sends requests for one action one at a time, in invocation order.
	PolicySerialize Policy = "serialize"
	// PolicyDedupe joins an invocation to the in-flight request for the same action.
	PolicyDedupe Policy = "dedupe"
)

// ParsePolicy parses a policy name. Empty means PolicyOverlap.
func ParsePolicy(s string) (Policy, error) {
	switch Policy(s) {
	case "", PolicyOverlap:
		return PolicyOverlap, nil
	case PolicySerialize, PolicyDedupe:
		return Policy(s), nil
	}
	return "", apperr.New(apperr.ConfigError, fmt.Sprintf("unknown dispatch policy %q", s), nil)
}

// Options configures a Dispatcher.
type Options struct {
	BaseURL string
	Timeout time.Duration
	Policy  Policy
	Client  *http.Client
	Logger  *slog.Logger

	// MaxInFlight caps concurrent requests across all actions. Zero means no cap.
	MaxInFlight int64
}

// Dispatcher sends action requests without blocking the caller.
type Dispatcher struct {
	baseURL string
	client  *http.Client
	policy  Policy
	logger  *slog.Logger
	limit   *semaphore.Weighted

	mu     sync.Mutex
	ctx    context.Context
	cancel context.CancelFunc
	last   map[models.Action]*Task

	group singleflight.Group
	wg    sync.WaitGroup
}

// New creates a Dispatcher.
func New(opts Options) (*Dispatcher, error) {
	base := strings.TrimRight(strings.TrimSpace(opts.BaseURL), "/")
	u, err := url.Parse(base)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, apperr.New(apperr.ConfigError, fmt.Sprintf("invalid API base URL %q", opts.BaseURL), err)
	}

	policy, err := ParsePolicy(string(opts.Policy))
	if err != nil {
		return nil, err
	}

	client := opts.Client
	if client == nil {
		timeout := opts.Timeout
		if timeout <= 0 {
			timeout = DefaultTimeout
		}
		client = &http.Client{Timeout: timeout}
	}

	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	d := &Dispatcher{
		baseURL: base,
		client:  client,
		policy:  policy,
		logger:  logger,
		last:    make(map[models.Action]*Task),
	}
	if opts.MaxInFlight > 0 {
		d.limit = semaphore.NewWeighted(opts.MaxInFlight)
	}
	d.ctx, d.cancel = context.WithCancel(context.Background())
	return d, nil
}

// Policy returns the overlap policy in effect.
func (d *Dispatcher) Policy() Policy {
	return d.policy
}

// Dispatch posts the action's field subset, taken from fields at call time,
// to /api/<action>. It returns at once; the request runs in the background.
// Cancelling ctx cancels the request.
func (d *Dispatcher) Dispatch(ctx context.Context, action models.Action, fields models.Fields) *Task {
	task := newTask(uuid.NewString(), action)
	body := fields.Body(action)

	d.mu.Lock()
	base := d.ctx
	reqCtx, cancel := context.WithCancel(base)
	var prev *Task
	if d.policy == PolicySerialize {
		prev = d.last[action]
		d.last[action] = task
	}
	d.mu.Unlock()

	stop := context.AfterFunc(ctx, cancel)

	d.logger.Info("dispatching action", "action", action, "task", task.ID, "policy", d.policy)

	d.wg.Add(1)
	go func() {
		defer d.wg.Done()
		defer cancel()
		defer stop()

		if prev != nil {
			select {
			case <-prev.Done():
			case <-reqCtx.Done():
				task.finish(Result{Err: reqCtx.Err()})
				return
			}
		}

		var r Result
		if d.policy == PolicyDedupe {
			r = d.joined(base, reqCtx, task, body)
		} else {
			r = d.send(reqCtx, task.ID, action, body)
		}
		d.logResult(task, r)
		task.finish(r)
	}()

	return task
}

// joined shares one request per action among concurrent callers. The shared
// request runs on base, so only CancelAll stops it; ctx only detaches this
// caller.
func (d *Dispatcher) joined(base, ctx context.Context, task *Task, body url.Values) Result {
	ch := d.group.DoChan(string(task.Action), func() (interface{}, error) {
		return d.send(base, task.ID, task.Action, body), nil
	})
	select {
	case res := <-ch:
		r := res.Val.(Result)
		r.Shared = res.Shared && r.TaskID != task.ID
		return r
	case <-ctx.Done():
		return Result{Err: ctx.Err()}
	}
}

func (d *Dispatcher) send(ctx context.Context, taskID string, action models.Action, body url.Values) Result {
	start := time.Now()
	r := Result{TaskID: taskID}

	if d.limit != nil {
		if err := d.limit.Acquire(ctx, 1); err != nil {
			r.Err = err
			return r
		}
		defer d.limit.Release(1)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, d.baseURL+action.Path(), strings.NewReader(body.Encode()))
	if err != nil {
		r.Err = apperr.New(apperr.DispatchError, "error creating request", err)
		return r
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("X-Request-Id", taskID)

	resp, err := d.client.Do(req)
	r.Duration = time.Since(start)
	if err != nil {
		r.Err = apperr.New(apperr.DispatchError, "error making request", err)
		return r
	}
	defer resp.Body.Close()

	excerpt, _ := io.ReadAll(io.LimitReader(resp.Body, maxBodyExcerpt))
	r.StatusCode = resp.StatusCode
	r.Body = strings.TrimSpace(string(excerpt))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		r.Err = apperr.New(apperr.DispatchError, fmt.Sprintf("%s returned status code %d", action.Path(), resp.StatusCode), nil)
	}
	return r
}

func (d *Dispatcher) logResult(task *Task, r Result) {
	if r.Err != nil {
		d.logger.Warn("dispatch failed", "action", task.Action, "task", task.ID, "status", r.StatusCode, "error", r.Err)
		return
	}
	d.logger.Debug("dispatch finished", "action", task.Action, "task", task.ID, "status", r.StatusCode,
		"duration", r.Duration, "shared", r.Shared)
}

// CancelAll cancels every request that is in flight or queued. Later
// dispatches are unaffected.
func (d *Dispatcher) CancelAll() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.cancel()
	d.ctx, d.cancel = context.WithCancel(context.Background())
	d.logger.Info("cancelled in-flight requests")
}

// Wait blocks until every dispatched request has finished.
func (d *Dispatcher) Wait() {
	d.wg.Wait()
}
