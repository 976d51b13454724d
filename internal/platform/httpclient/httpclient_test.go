package httpclient

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDoJSON_PostsAndDecodes(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/ai/assist", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.Equal(t, "Bearer t0k", r.Header.Get("Authorization"))

		var in map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&in))
		_ = json.NewEncoder(w).Encode(map[string]string{"echo": in["message"]})
	}))
	defer srv.Close()

	c, err := NewWithBaseURL(srv.URL+"/", time.Second)
	require.NoError(t, err)
	c.Headers = map[string]string{"Authorization": "Bearer t0k"}

	var out map[string]string
	err = c.DoJSON(context.Background(), http.MethodPost, "ai/assist", nil, map[string]string{"message": "hi"}, &out)

	require.NoError(t, err)
	assert.Equal(t, "hi", out["echo"])
}

func TestDoJSON_Non2xxIsHTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusBadGateway)
	}))
	defer srv.Close()

	err := New(time.Second).DoJSON(context.Background(), http.MethodGet, srv.URL, nil, nil, nil)

	var he *HTTPError
	require.True(t, errors.As(err, &he))
	assert.Equal(t, http.StatusBadGateway, he.StatusCode)
	assert.Equal(t, "boom", he.Body)
}

func TestDo_ReturnsStatusWithoutJudging(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte("nope"))
	}))
	defer srv.Close()

	resp, err := New(time.Second).Do(context.Background(), http.MethodGet, srv.URL+"/docs", nil, nil)

	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "nope", string(resp.Body))
}

func TestResolveURL_RelativeNeedsBase(t *testing.T) {
	_, err := New(0).Do(context.Background(), http.MethodGet, "/x", nil, nil)
	assert.Error(t, err)

	_, err = NewWithBaseURL("::bad", 0)
	assert.Error(t, err)
}
