package main

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pet-companion/internal/platform/httpclient"
)

func TestRunProbe_ListsOpenAPIPaths(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})
	mux.HandleFunc("/auth/register", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		w.WriteHeader(http.StatusCreated)
	})
	mux.HandleFunc("/openapi.json", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"paths":{"/pets":{"post":{},"get":{}},"/auth/register":{"post":{}}}}`))
	})
	ts := httptest.NewServer(mux)
	defer ts.Close()

	c, err := httpclient.NewWithBaseURL(ts.URL, time.Second)
	require.NoError(t, err)

	var out bytes.Buffer
	require.NoError(t, runProbe(context.Background(), c, &out))

	s := out.String()
	assert.Contains(t, s, "reachable, status=200")
	assert.Contains(t, s, "2) docs endpoint\n   status=404")
	assert.Contains(t, s, "/auth/register - methods: post")
	assert.Contains(t, s, "/pets - methods: get, post")
}

func TestRunProbe_UnreachableRoot(t *testing.T) {
	ts := httptest.NewServer(http.NotFoundHandler())
	url := ts.URL
	ts.Close()

	c, err := httpclient.NewWithBaseURL(url, 200*time.Millisecond)
	require.NoError(t, err)

	var out bytes.Buffer
	err = runProbe(context.Background(), c, &out)
	assert.True(t, errors.Is(err, errUnreachable))
	assert.Contains(t, out.String(), "not reachable")
}
