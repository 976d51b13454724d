// Package respond junta los helpers de respuesta HTTP que antes cada handler
// tenía duplicados.
package respond

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"pet-companion/internal/ports/prompt"
)

func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// ErrorBody es el cuerpo de todas las respuestas de error.
type ErrorBody struct {
	Error   string `json:"error"`
	Title   string `json:"title,omitempty"`
	Message string `json:"message,omitempty"`
}

// Error escribe {"error": msg}.
func Error(w http.ResponseWriter, status int, msg string) {
	JSON(w, status, ErrorBody{Error: msg})
}

// Declined contesta 409 con el texto del prompt que el cliente debe mostrar
// antes de reintentar con ?confirm=true. Devuelve false si err no es un rechazo.
func Declined(w http.ResponseWriter, err error) bool {
	var d *prompt.DeclinedError
	if !errors.As(err, &d) {
		return false
	}
	JSON(w, http.StatusConflict, ErrorBody{
		Error:   "confirmation required",
		Title:   d.Title,
		Message: d.Message,
	})
	return true
}

// Confirmer traduce ?confirm=true a un prompt.Confirmer.
func Confirmer(r *http.Request) prompt.Confirmer {
	v := strings.ToLower(strings.TrimSpace(r.URL.Query().Get("confirm")))
	return prompt.Static(v == "true" || v == "1" || v == "yes")
}

// DecodeJSON decodifica el body rechazando campos desconocidos.
func DecodeJSON(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}
