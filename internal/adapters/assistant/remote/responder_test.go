package remote

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pet-companion/internal/ports/assistant"
)

func TestReply_PostsAndKeepsSession(t *testing.T) {
	var seen []chatRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/ai/assist", r.URL.Path)
		assert.Equal(t, "Bearer secret", r.Header.Get("Authorization"))

		var in chatRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&in))
		seen = append(seen, in)

		_ = json.NewEncoder(w).Encode(chatResponse{Response: "Feed twice a day.", SessionID: "s-1"})
	}))
	defer srv.Close()

	r, err := New(srv.URL, "secret", time.Second)
	require.NoError(t, err)

	history := []assistant.Message{{Role: assistant.RoleUser, Content: "how often?"}}
	got, err := r.Reply(context.Background(), history)
	require.NoError(t, err)
	assert.Equal(t, "Feed twice a day.", got)
	assert.Equal(t, "s-1", r.SessionID())

	_, err = r.Reply(context.Background(), history)
	require.NoError(t, err)

	require.Len(t, seen, 2)
	assert.Equal(t, "how often?", seen[0].Message)
	assert.Empty(t, seen[0].SessionID)
	assert.Equal(t, "s-1", seen[1].SessionID)
}

func TestReply_BackendErrorPropagates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	r, err := New(srv.URL, "", time.Second)
	require.NoError(t, err)

	_, err = r.Reply(context.Background(), []assistant.Message{{Role: assistant.RoleUser, Content: "hi"}})
	assert.Error(t, err)
}

func TestNew_RequiresBaseURL(t *testing.T) {
	_, err := New(" ", "", 0)
	assert.Error(t, err)
}
