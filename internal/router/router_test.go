package router_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"pet-companion/internal/adapters/assistant/echo"
	"pet-companion/internal/adapters/storage/memory"
	"pet-companion/internal/router"
)

func newServer(t *testing.T) *httptest.Server {
	t.Helper()

	rt, err := router.NewRouter(router.Options{
		Store:     memory.NewKVStore(),
		Responder: echo.New(0),
	})
	if err != nil {
		t.Fatalf("new router: %v", err)
	}
	ts := httptest.NewServer(rt)
	t.Cleanup(func() {
		ts.Close()
		_ = rt.Close(context.Background())
	})
	return ts
}

func TestHTTP_EndToEnd_PetLifecycleWithCascade(t *testing.T) {
	ts := newServer(t)

	// 1) Crear mascota
	petID := createPet(t, ts.URL, map[string]any{
		"name":        "Rex",
		"species":     "Dog",
		"gender":      "Male",
		"breed":       "Labrador",
		"dateOfBirth": "2020-05-01",
		"weight":      12.5,
	})

	// 2) Editar peso
	{
		st, body := doReq(t, ts.URL, "PUT", "/pets/"+petID, map[string]any{
			"name":        "Rex",
			"species":     "Dog",
			"gender":      "Male",
			"dateOfBirth": "2020-05-01",
			"weight":      14,
		})
		if st != http.StatusOK {
			t.Fatalf("expected 200 update pet, got %d body=%s", st, string(body))
		}
		var p struct {
			ID     string  `json:"id"`
			Weight float64 `json:"weight"`
		}
		_ = json.Unmarshal(body, &p)
		if p.ID != petID || p.Weight != 14 {
			t.Fatalf("unexpected pet after update: %s", string(body))
		}
	}

	// 3) Validación
	{
		st, _ := doReq(t, ts.URL, "POST", "/pets", map[string]any{"name": "NoBirthday"})
		if st != http.StatusBadRequest {
			t.Fatalf("expected 400 without dateOfBirth, got %d", st)
		}
	}

	// 4) Registros dependientes
	createRecord(t, ts.URL, "/feeding", map[string]any{
		"petId": petID, "foodType": "Dry food", "quantity": "200g", "date": "2024-05-01", "time": "08:00",
	})
	createRecord(t, ts.URL, "/health-records", map[string]any{
		"petId": petID, "type": "Vaccination", "title": "Rabies", "date": "2024-05-01", "time": "10:00",
	})

	// 5) Borrar sin confirmar => 409 con el texto del prompt
	{
		st, body := doReq(t, ts.URL, "DELETE", "/pets/"+petID, nil)
		if st != http.StatusConflict {
			t.Fatalf("expected 409 without confirm, got %d body=%s", st, string(body))
		}
		if !strings.Contains(string(body), "Delete Pet") {
			t.Fatalf("expected prompt title in body, got %s", string(body))
		}
	}

	// 6) Confirmado
	{
		st, body := doReq(t, ts.URL, "DELETE", "/pets/"+petID+"?confirm=true", nil)
		if st != http.StatusNoContent {
			t.Fatalf("expected 204 delete pet, got %d body=%s", st, string(body))
		}
	}

	// 7) La cascada vació comidas y salud
	for _, path := range []string{"/pets/" + petID, "/feeding?petId=" + petID, "/health-records?petId=" + petID} {
		st, body := doReq(t, ts.URL, "GET", path, nil)
		if strings.HasPrefix(path, "/pets/") {
			if st != http.StatusNotFound {
				t.Fatalf("expected 404 for deleted pet, got %d", st)
			}
			continue
		}
		if st != http.StatusOK || strings.TrimSpace(string(body)) != "[]" {
			t.Fatalf("expected empty list at %s, got %d body=%s", path, st, string(body))
		}
	}
}

func TestHTTP_FeedingRecent_CapsAtSeven(t *testing.T) {
	ts := newServer(t)

	petID := createPet(t, ts.URL, map[string]any{"name": "Mia", "dateOfBirth": "2021-01-01"})
	otherID := createPet(t, ts.URL, map[string]any{"name": "Tom", "dateOfBirth": "2019-03-03"})

	for i := 1; i <= 10; i++ {
		createRecord(t, ts.URL, "/feeding", map[string]any{
			"petId": petID, "foodType": "Wet", "quantity": "1 can",
			"date": fmt.Sprintf("2024-06-%02d", i), "time": "07:30",
		})
	}
	createRecord(t, ts.URL, "/feeding", map[string]any{
		"petId": otherID, "foodType": "Wet", "quantity": "1 can", "date": "2024-07-01", "time": "07:30",
	})

	st, body := doReq(t, ts.URL, "GET", "/feeding/recent?petId="+petID, nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200 recent, got %d body=%s", st, string(body))
	}
	var recs []struct {
		PetID string `json:"petId"`
		Date  string `json:"date"`
	}
	_ = json.Unmarshal(body, &recs)
	if len(recs) != 7 {
		t.Fatalf("expected 7 recent records, got %d", len(recs))
	}
	if recs[0].Date != "2024-06-10" || recs[6].Date != "2024-06-04" {
		t.Fatalf("unexpected order: %s", string(body))
	}
	for _, r := range recs {
		if r.PetID != petID {
			t.Fatalf("record from another pet in recent view: %s", string(body))
		}
	}
}

func TestHTTP_ChatSubmitAndClear(t *testing.T) {
	ts := newServer(t)

	{
		st, body := doReq(t, ts.URL, "POST", "/chat/messages", map[string]any{"content": "hello"})
		if st != http.StatusAccepted {
			t.Fatalf("expected 202 submit, got %d body=%s", st, string(body))
		}
	}
	{
		st, _ := doReq(t, ts.URL, "POST", "/chat/messages", map[string]any{"content": "   "})
		if st != http.StatusBadRequest {
			t.Fatalf("expected 400 for blank message, got %d", st)
		}
	}

	// la respuesta es asíncrona: esperar a que busy baje
	var resp struct {
		Messages []struct {
			Role    string `json:"role"`
			Content string `json:"content"`
		} `json:"messages"`
		Busy bool `json:"busy"`
	}
	deadline := time.Now().Add(2 * time.Second)
	for {
		st, body := doReq(t, ts.URL, "GET", "/chat/messages", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 list, got %d", st)
		}
		_ = json.Unmarshal(body, &resp)
		if !resp.Busy && len(resp.Messages) == 2 {
			break
		}
		if time.Now().After(deadline) {
			t.Fatalf("assistant reply never arrived: %s", string(body))
		}
		time.Sleep(10 * time.Millisecond)
	}
	if resp.Messages[1].Role != "assistant" || resp.Messages[1].Content != "AI: hello" {
		t.Fatalf("unexpected reply %+v", resp.Messages[1])
	}

	{
		st, _ := doReq(t, ts.URL, "DELETE", "/chat/messages", nil)
		if st != http.StatusConflict {
			t.Fatalf("expected 409 clear without confirm, got %d", st)
		}
		st, _ = doReq(t, ts.URL, "DELETE", "/chat/messages?confirm=true", nil)
		if st != http.StatusNoContent {
			t.Fatalf("expected 204 clear, got %d", st)
		}
	}
}

func TestHTTP_SettingsPassword(t *testing.T) {
	ts := newServer(t)

	st, body := doReq(t, ts.URL, "POST", "/settings/password", map[string]any{
		"currentPassword": "password", "newPassword": "abc", "confirmPassword": "abd",
	})
	if st != http.StatusBadRequest || !strings.Contains(string(body), "New passwords do not match") {
		t.Fatalf("expected mismatch error, got %d body=%s", st, string(body))
	}

	st, body = doReq(t, ts.URL, "POST", "/settings/password", map[string]any{
		"currentPassword": "password", "newPassword": "secret1", "confirmPassword": "secret1",
	})
	if st != http.StatusOK || !strings.Contains(string(body), "Password changed successfully") {
		t.Fatalf("expected success, got %d body=%s", st, string(body))
	}
}

func TestHTTP_HealthAndMetrics(t *testing.T) {
	ts := newServer(t)

	if st, _ := doReq(t, ts.URL, "GET", "/health", nil); st != http.StatusOK {
		t.Fatalf("expected 200 health, got %d", st)
	}

	createPet(t, ts.URL, map[string]any{"name": "Rex", "dateOfBirth": "2020-05-01"})

	st, body := doReq(t, ts.URL, "GET", "/metrics", nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200 metrics, got %d", st)
	}
	if !strings.Contains(string(body), "petcompanion_state_store_reads_total") {
		t.Fatalf("expected accessor metrics, got %s", string(body))
	}
}

// El OpenAPI se mantiene a mano: cada ruta de la API tiene que figurar en doc.json.
func TestHTTP_SwaggerDocumentsEveryRoute(t *testing.T) {
	rt, err := router.NewRouter(router.Options{Store: memory.NewKVStore(), Responder: echo.New(0)})
	if err != nil {
		t.Fatalf("new router: %v", err)
	}
	t.Cleanup(func() { _ = rt.Close(context.Background()) })
	ts := httptest.NewServer(rt)
	t.Cleanup(ts.Close)

	st, body := doReq(t, ts.URL, "GET", "/swagger/doc.json", nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200 doc.json, got %d", st)
	}
	var doc struct {
		Paths map[string]map[string]json.RawMessage `json:"paths"`
	}
	if err := json.Unmarshal(body, &doc); err != nil {
		t.Fatalf("decode doc.json: %v", err)
	}

	routes, ok := rt.Handler.(chi.Routes)
	if !ok {
		t.Fatalf("router handler is not a chi.Routes")
	}
	checked := 0
	err = chi.Walk(routes, func(method, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
		route = strings.ReplaceAll(route, "/*/", "/")
		if len(route) > 1 {
			route = strings.TrimSuffix(route, "/")
		}
		switch {
		case route == "/health", route == "/metrics", strings.HasPrefix(route, "/swagger"):
			return nil
		}
		checked++
		if _, ok := doc.Paths[route][strings.ToLower(method)]; !ok {
			t.Errorf("%s %s missing from doc.json", method, route)
		}
		return nil
	})
	if err != nil {
		t.Fatalf("walk: %v", err)
	}
	if checked == 0 {
		t.Fatalf("no API routes walked")
	}
}

func createPet(t *testing.T, baseURL string, payload map[string]any) string {
	t.Helper()
	return createRecord(t, baseURL, "/pets", payload)
}

func createRecord(t *testing.T, baseURL, path string, payload map[string]any) string {
	t.Helper()

	st, body := doReq(t, baseURL, "POST", path, payload)
	if st != http.StatusCreated {
		t.Fatalf("expected 201 POST %s, got %d body=%s", path, st, string(body))
	}

	var resp struct {
		ID string `json:"id"`
	}
	_ = json.Unmarshal(body, &resp)
	if resp.ID == "" {
		t.Fatalf("POST %s: missing id body=%s", path, string(body))
	}
	return resp.ID
}

func doReq(t *testing.T, baseURL, method, path string, body any) (int, []byte) {
	t.Helper()

	var rdr io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("json marshal: %v", err)
		}
		rdr = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, baseURL+path, rdr)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	res, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	defer res.Body.Close()

	respBody, _ := io.ReadAll(res.Body)
	return res.StatusCode, respBody
}
