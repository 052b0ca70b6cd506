package dispatch

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	apperr "shawl/internal/error"
	"shawl/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorded struct {
	Path        string
	ContentType string
	RequestID   string
	Form        map[string][]string
}

func newRecorder(t *testing.T, status int) (*httptest.Server, func() []recorded) {
	t.Helper()
	var mu sync.Mutex
	var reqs []recorded
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = r.ParseForm()
		mu.Lock()
		reqs = append(reqs, recorded{
			Path:        r.URL.Path,
			ContentType: r.Header.Get("Content-Type"),
			RequestID:   r.Header.Get("X-Request-Id"),
			Form:        r.PostForm,
		})
		mu.Unlock()
		if r.Method != http.MethodPost {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		w.WriteHeader(status)
		w.Write([]byte("OK"))
	}))
	t.Cleanup(srv.Close)
	return srv, func() []recorded {
		mu.Lock()
		defer mu.Unlock()
		out := make([]recorded, len(reqs))
		copy(out, reqs)
		return out
	}
}

func newDispatcher(t *testing.T, url string, policy Policy) *Dispatcher {
	t.Helper()
	d, err := New(Options{BaseURL: url, Policy: policy, Timeout: 5 * time.Second})
	require.NoError(t, err)
	return d
}

func waitTask(t *testing.T, task *Task) Result {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	r, err := task.Wait(ctx)
	require.NoError(t, err)
	return r
}

func fields() models.Fields {
	return models.Fields{
		Hostname:   "box1",
		Username:   "dev",
		Password:   "secret",
		LocalPath:  "/tmp/src",
		RemotePath: "/srv/dst",
	}
}

func TestDispatchRsyncUpPostsAllFields(t *testing.T) {
	srv, requests := newRecorder(t, http.StatusOK)
	d := newDispatcher(t, srv.URL+"/", PolicyOverlap)

	task := d.Dispatch(context.Background(), models.ActionRsyncUp, fields())
	r := waitTask(t, task)

	require.NoError(t, r.Err)
	assert.True(t, r.OK())
	assert.Equal(t, http.StatusOK, r.StatusCode)
	assert.Equal(t, "OK", r.Body)
	assert.Equal(t, models.ActionRsyncUp, r.Action)

	reqs := requests()
	require.Len(t, reqs, 1)
	assert.Equal(t, "/api/rsync_up", reqs[0].Path)
	assert.Equal(t, "application/x-www-form-urlencoded", reqs[0].ContentType)
	assert.Equal(t, task.ID, reqs[0].RequestID)
	assert.Equal(t, map[string][]string{
		"hostname":    {"box1"},
		"username":    {"dev"},
		"password":    {"secret"},
		"local_path":  {"/tmp/src"},
		"remote_path": {"/srv/dst"},
	}, reqs[0].Form)
}

func TestDispatchSendsOnlyActionSubset(t *testing.T) {
	srv, requests := newRecorder(t, http.StatusOK)
	d := newDispatcher(t, srv.URL, PolicyOverlap)

	for _, a := range models.AllActions() {
		waitTask(t, d.Dispatch(context.Background(), a, fields()))
	}

	reqs := requests()
	require.Len(t, reqs, len(models.AllActions()))
	for i, a := range models.AllActions() {
		assert.Equal(t, a.Path(), reqs[i].Path)
		var keys []string
		for k := range reqs[i].Form {
			keys = append(keys, k)
		}
		assert.ElementsMatch(t, a.BodyFields(), keys, "action %s", a)
	}
	assert.Equal(t, map[string][]string{"local_path": {"/tmp/src"}}, reqs[4].Form)
}

func TestDispatchNon2xxIsError(t *testing.T) {
	srv, _ := newRecorder(t, http.StatusInternalServerError)
	d := newDispatcher(t, srv.URL, PolicyOverlap)

	r := waitTask(t, d.Dispatch(context.Background(), models.ActionRun, fields()))
	require.Error(t, r.Err)
	assert.True(t, apperr.Is(r.Err, apperr.DispatchError))
	assert.Equal(t, http.StatusInternalServerError, r.StatusCode)
	assert.False(t, r.OK())
}

func TestDispatchUnreachableServer(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	d := newDispatcher(t, url, PolicyOverlap)
	r := waitTask(t, d.Dispatch(context.Background(), models.ActionWatchQueue, fields()))
	require.Error(t, r.Err)
	assert.True(t, apperr.Is(r.Err, apperr.DispatchError))
}

func TestDispatchReturnsBeforeResponse(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
	}))
	defer srv.Close()
	defer close(release)

	d := newDispatcher(t, srv.URL, PolicyOverlap)
	task := d.Dispatch(context.Background(), models.ActionRun, fields())

	select {
	case <-task.Done():
		t.Fatal("task finished before the server answered")
	default:
	}
	assert.Equal(t, task.ID, task.Result().TaskID)
}

// blockingServer reports each arrival and holds requests until release is closed.
func blockingServer(t *testing.T) (*httptest.Server, <-chan string, chan struct{}, *int32) {
	t.Helper()
	arrived := make(chan string, 16)
	release := make(chan struct{})
	var count int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&count, 1)
		arrived <- r.FormValue("local_path")
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	t.Cleanup(srv.Close)
	return srv, arrived, release, &count
}

func expectArrival(t *testing.T, arrived <-chan string) string {
	t.Helper()
	select {
	case v := <-arrived:
		return v
	case <-time.After(5 * time.Second):
		t.Fatal("request did not arrive")
	}
	return ""
}

func expectNoArrival(t *testing.T, arrived <-chan string) {
	t.Helper()
	select {
	case v := <-arrived:
		t.Fatalf("unexpected request %q", v)
	case <-time.After(150 * time.Millisecond):
	}
}

func TestOverlapPolicyAllowsConcurrentRequests(t *testing.T) {
	srv, arrived, release, _ := blockingServer(t)
	d := newDispatcher(t, srv.URL, PolicyOverlap)

	a := fields()
	a.LocalPath = "a"
	b := fields()
	b.LocalPath = "b"
	t1 := d.Dispatch(context.Background(), models.ActionRsyncUp, a)
	t2 := d.Dispatch(context.Background(), models.ActionRsyncUp, b)

	got := []string{expectArrival(t, arrived), expectArrival(t, arrived)}
	assert.ElementsMatch(t, []string{"a", "b"}, got)

	close(release)
	waitTask(t, t1)
	waitTask(t, t2)
}

func TestSerializePolicyKeepsInvocationOrder(t *testing.T) {
	srv, arrived, release, _ := blockingServer(t)
	d := newDispatcher(t, srv.URL, PolicySerialize)

	a := fields()
	a.LocalPath = "a"
	b := fields()
	b.LocalPath = "b"

	t1 := d.Dispatch(context.Background(), models.ActionRsyncUp, a)
	assert.Equal(t, "a", expectArrival(t, arrived))

	t2 := d.Dispatch(context.Background(), models.ActionRsyncUp, b)
	expectNoArrival(t, arrived)

	// Inna akcja nie czeka
	t3 := d.Dispatch(context.Background(), models.ActionFileBrowser, models.Fields{LocalPath: "c"})
	assert.Equal(t, "c", expectArrival(t, arrived))

	close(release)
	assert.Equal(t, "b", expectArrival(t, arrived))
	waitTask(t, t1)
	waitTask(t, t2)
	waitTask(t, t3)
}

func TestDedupePolicyJoinsInFlightRequest(t *testing.T) {
	srv, arrived, release, count := blockingServer(t)
	d := newDispatcher(t, srv.URL, PolicyDedupe)

	t1 := d.Dispatch(context.Background(), models.ActionRun, fields())
	expectArrival(t, arrived)
	t2 := d.Dispatch(context.Background(), models.ActionRun, fields())
	expectNoArrival(t, arrived)

	close(release)
	r1 := waitTask(t, t1)
	r2 := waitTask(t, t2)

	assert.Equal(t, int32(1), atomic.LoadInt32(count))
	assert.False(t, r1.Shared)
	assert.True(t, r2.Shared)
	assert.Equal(t, t2.ID, r2.TaskID)
}

func TestDedupeJoinerOutlivesCancelledLeader(t *testing.T) {
	srv, arrived, release, count := blockingServer(t)
	d := newDispatcher(t, srv.URL, PolicyDedupe)

	ctx, cancel := context.WithCancel(context.Background())
	t1 := d.Dispatch(ctx, models.ActionRun, fields())
	expectArrival(t, arrived)
	t2 := d.Dispatch(context.Background(), models.ActionRun, fields())
	expectNoArrival(t, arrived)

	cancel()
	r1 := waitTask(t, t1)
	assert.True(t, errors.Is(r1.Err, context.Canceled))

	close(release)
	r2 := waitTask(t, t2)
	require.NoError(t, r2.Err)
	assert.Equal(t, http.StatusOK, r2.StatusCode)
	assert.True(t, r2.Shared)
	assert.Equal(t, int32(1), atomic.LoadInt32(count))

	d.Wait()
}

func TestCancelAll(t *testing.T) {
	srv, arrived, _, _ := blockingServer(t)
	d := newDispatcher(t, srv.URL, PolicyOverlap)

	task := d.Dispatch(context.Background(), models.ActionWatchQueue, fields())
	expectArrival(t, arrived)

	d.CancelAll()
	r := waitTask(t, task)
	require.Error(t, r.Err)
	assert.True(t, errors.Is(r.Err, context.Canceled))

	d.Wait()
}

func TestCallerContextCancelsRequest(t *testing.T) {
	srv, arrived, _, _ := blockingServer(t)
	d := newDispatcher(t, srv.URL, PolicyOverlap)

	ctx, cancel := context.WithCancel(context.Background())
	task := d.Dispatch(ctx, models.ActionRun, fields())
	expectArrival(t, arrived)
	cancel()

	r := waitTask(t, task)
	assert.True(t, errors.Is(r.Err, context.Canceled))
}

func TestMaxInFlight(t *testing.T) {
	srv, arrived, release, _ := blockingServer(t)
	d, err := New(Options{BaseURL: srv.URL, MaxInFlight: 1})
	require.NoError(t, err)

	t1 := d.Dispatch(context.Background(), models.ActionRun, fields())
	expectArrival(t, arrived)
	t2 := d.Dispatch(context.Background(), models.ActionRsyncDown, fields())
	expectNoArrival(t, arrived)

	close(release)
	expectArrival(t, arrived)
	waitTask(t, t1)
	waitTask(t, t2)
}

func TestNewValidatesOptions(t *testing.T) {
	_, err := New(Options{BaseURL: "not a url"})
	assert.True(t, apperr.Is(err, apperr.ConfigError))

	_, err = New(Options{BaseURL: "http://127.0.0.1:7322", Policy: "random"})
	assert.True(t, apperr.Is(err, apperr.ConfigError))

	d, err := New(Options{BaseURL: "http://127.0.0.1:7322"})
	require.NoError(t, err)
	assert.Equal(t, PolicyOverlap, d.Policy())
}
