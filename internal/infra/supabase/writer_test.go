package supabase

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/AlaxSwum/focus-cli/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type capturedRequest struct {
	Method string
	Path   string
	Query  string
	Body   map[string]any
	Auth   string
	APIKey string
}

// newCaptureServer records every request and replies with status and
// payload.
func newCaptureServer(t *testing.T, status int, payload string) (*httptest.Server, *[]capturedRequest) {
	t.Helper()
	var captured []capturedRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		if data, _ := io.ReadAll(r.Body); len(data) > 0 {
			_ = json.Unmarshal(data, &body)
		}
		captured = append(captured, capturedRequest{
			Method: r.Method,
			Path:   r.URL.Path,
			Query:  r.URL.RawQuery,
			Body:   body,
			Auth:   r.Header.Get("Authorization"),
			APIKey: r.Header.Get("apikey"),
		})
		w.WriteHeader(status)
		_, _ = w.Write([]byte(payload))
	}))
	t.Cleanup(srv.Close)
	return srv, &captured
}

func sampleTimeBlock() domain.Task {
	return domain.Task{
		ID:           "tb-42",
		OriginalID:   "42",
		OriginalKind: domain.OriginalTimeBlock,
		Kind:         domain.KindTimeBlock,
		Title:        "Deep work",
		StartHour:    9,
		EndHour:      10,
		EndMinute:    30,
	}
}

func TestStore_RescheduleTimeBlockShape(t *testing.T) {
	srv, captured := newCaptureServer(t, http.StatusNoContent, "")
	store := NewStore(NewClient(srv.URL, "key-123"))

	err := store.Reschedule(context.Background(), sampleTimeBlock())

	require.NoError(t, err)
	require.Len(t, *captured, 1)
	req := (*captured)[0]
	assert.Equal(t, http.MethodPatch, req.Method)
	assert.Equal(t, "/rest/v1/time_blocks", req.Path)
	assert.Contains(t, req.Query, "id=eq.42")
	assert.Equal(t, map[string]any{"start_time": "09:00:00", "end_time": "10:30:00"}, req.Body)
	assert.Equal(t, "Bearer key-123", req.Auth)
	assert.Equal(t, "key-123", req.APIKey)
}

func TestStore_RescheduleMeetingShape(t *testing.T) {
	srv, captured := newCaptureServer(t, http.StatusOK, "[]")
	store := NewStore(NewClient(srv.URL, "key"))

	// Displayed as social, stored as a meeting: routing must follow
	// OriginalKind.
	task := domain.Task{
		ID: "mt-m1", OriginalID: "m1",
		OriginalKind: domain.OriginalMeeting,
		Kind:         domain.KindSocial,
		StartHour:    14, EndHour: 15,
	}
	err := store.Reschedule(context.Background(), task)

	require.NoError(t, err)
	req := (*captured)[0]
	assert.Equal(t, "/rest/v1/meetings", req.Path)
	assert.Equal(t, map[string]any{"time": "14:00:00", "duration": float64(60)}, req.Body)
}

func TestStore_RescheduleTodoRejected(t *testing.T) {
	store := NewStore(NewClient("http://unused", "key"))
	task := domain.Task{OriginalID: "t1", OriginalKind: domain.OriginalTodo, Kind: domain.KindTodo}

	err := store.Reschedule(context.Background(), task)
	assert.ErrorIs(t, err, domain.ErrUntimedTask)
}

func TestStore_SetCompletedColumnPerTable(t *testing.T) {
	srv, captured := newCaptureServer(t, http.StatusNoContent, "")
	store := NewStore(NewClient(srv.URL, "key"))

	require.NoError(t, store.SetCompleted(context.Background(), sampleTimeBlock(), true))
	todo := domain.Task{OriginalID: "t1", OriginalKind: domain.OriginalTodo}
	require.NoError(t, store.SetCompleted(context.Background(), todo, false))

	assert.Equal(t, map[string]any{"is_completed": true}, (*captured)[0].Body)
	assert.Equal(t, "/rest/v1/personal_todos", (*captured)[1].Path)
	assert.Equal(t, map[string]any{"completed": false}, (*captured)[1].Body)
}

func TestStore_SetSkipped(t *testing.T) {
	srv, captured := newCaptureServer(t, http.StatusNoContent, "")
	store := NewStore(NewClient(srv.URL, "key"))

	meeting := domain.Task{OriginalID: "m1", OriginalKind: domain.OriginalMeeting}
	require.NoError(t, store.SetSkipped(context.Background(), meeting, true, "double-booked"))

	assert.Equal(t, map[string]any{"skipped": true, "skip_reason": "double-booked"}, (*captured)[0].Body)
}

func TestStore_DeleteSendsNoBody(t *testing.T) {
	srv, captured := newCaptureServer(t, http.StatusNoContent, "")
	store := NewStore(NewClient(srv.URL, "key"))

	require.NoError(t, store.Delete(context.Background(), sampleTimeBlock()))

	req := (*captured)[0]
	assert.Equal(t, http.MethodDelete, req.Method)
	assert.Contains(t, req.Query, "id=eq.42")
	assert.Nil(t, req.Body)
}

func TestStore_CreateAdoptsRepresentation(t *testing.T) {
	payload := `[{"id":"99","title":"Deep work","date":"2026-06-01","start_time":"09:00:00","end_time":"10:30:00","block_type":"focus"}]`
	srv, captured := newCaptureServer(t, http.StatusCreated, payload)
	store := NewStore(NewClient(srv.URL, "key"))

	task := sampleTimeBlock()
	task.ID, task.OriginalID = "", ""
	task.Subtype = "focus"
	created, err := store.Create(context.Background(), task, "u1")

	require.NoError(t, err)
	assert.Equal(t, "tb-99", created.ID)
	assert.Equal(t, "99", created.OriginalID)
	req := (*captured)[0]
	assert.Equal(t, http.MethodPost, req.Method)
	assert.Equal(t, "u1", req.Body["user_id"])
	assert.Equal(t, "09:00:00", req.Body["start_time"])
}

func TestStore_NonSuccessStatusIsAnError(t *testing.T) {
	srv, _ := newCaptureServer(t, http.StatusInternalServerError, `{"message":"boom"}`)
	store := NewStore(NewClient(srv.URL, "key"))

	err := store.Reschedule(context.Background(), sampleTimeBlock())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 500")
}

func TestSources_FetchDropsMalformedRows(t *testing.T) {
	payload := `[
		{"id":"1","title":"ok","date":"2026-06-01","start_time":"09:00:00","end_time":"10:00:00"},
		{"id":"2","title":"bad","date":"garbage","start_time":"09:00:00","end_time":"10:00:00"}
	]`
	srv, captured := newCaptureServer(t, http.StatusOK, payload)
	src := NewTimeBlockSource(NewClient(srv.URL, "key"))

	tasks, err := src.Fetch(context.Background(), "u1")

	require.NoError(t, err)
	require.Len(t, tasks, 1, "the bad row is dropped, the rest survives")
	assert.Equal(t, "tb-1", tasks[0].ID)
	assert.Contains(t, (*captured)[0].Query, "user_id=eq.u1")
}

func TestSources_FetchPropagatesTransportFailure(t *testing.T) {
	srv, _ := newCaptureServer(t, http.StatusServiceUnavailable, "")
	src := NewMeetingSource(NewClient(srv.URL, "key"))

	_, err := src.Fetch(context.Background(), "u1")
	assert.Error(t, err)
}
