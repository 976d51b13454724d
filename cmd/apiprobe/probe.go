package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sort"
	"strings"
	"time"

	"pet-companion/internal/platform/httpclient"
)

var errUnreachable = errors.New("server is not reachable")

// runProbe sólo falla si la raíz no responde; el resto se informa y sigue.
func runProbe(ctx context.Context, c *httpclient.Client, out io.Writer) error {
	fmt.Fprintln(out, "1) basic connectivity")
	resp, err := c.Do(ctx, http.MethodGet, "/", nil, nil)
	if err != nil {
		fmt.Fprintf(out, "   not reachable: %v\n", err)
		return fmt.Errorf("%w: %v", errUnreachable, err)
	}
	fmt.Fprintf(out, "   reachable, status=%d\n   root: %s\n", resp.StatusCode, strings.TrimSpace(string(resp.Body)))

	fmt.Fprintln(out, "2) docs endpoint")
	if resp, err := c.Do(ctx, http.MethodGet, "/docs", nil, nil); err != nil {
		fmt.Fprintf(out, "   failed: %v\n", err)
	} else {
		fmt.Fprintf(out, "   status=%d\n", resp.StatusCode)
	}

	fmt.Fprintln(out, "3) auth/register endpoint")
	payload, _ := json.Marshal(map[string]string{
		"username": fmt.Sprintf("test_user_%d", time.Now().UnixMilli()),
		"email":    "test@example.com",
		"password": "testpass123",
	})
	resp, err = c.Do(ctx, http.MethodPost, "/auth/register",
		map[string]string{"Content-Type": "application/json"}, bytes.NewReader(payload))
	if err != nil {
		fmt.Fprintf(out, "   failed: %v\n", err)
	} else {
		fmt.Fprintf(out, "   status=%d\n   response: %s\n", resp.StatusCode, strings.TrimSpace(string(resp.Body)))
		if resp.StatusCode == http.StatusNotFound {
			fmt.Fprintln(out, "   404: the endpoint does not exist")
		}
	}

	fmt.Fprintln(out, "4) openapi spec")
	var spec struct {
		Paths map[string]map[string]json.RawMessage `json:"paths"`
	}
	if err := c.DoJSON(ctx, http.MethodGet, "/openapi.json", nil, nil, &spec); err != nil {
		fmt.Fprintf(out, "   failed: %v\n", err)
		return nil
	}
	paths := make([]string, 0, len(spec.Paths))
	for p := range spec.Paths {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	for _, p := range paths {
		methods := make([]string, 0, len(spec.Paths[p]))
		for m := range spec.Paths[p] {
			methods = append(methods, m)
		}
		sort.Strings(methods)
		fmt.Fprintf(out, "   %s - methods: %s\n", p, strings.Join(methods, ", "))
	}
	return nil
}
