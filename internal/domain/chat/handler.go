package chat

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"pet-companion/internal/platform/respond"
	"pet-companion/internal/platform/state"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/chat/messages", func(cr chi.Router) {
		cr.Get("/", listMessagesHandler(svc))
		cr.Post("/", submitMessageHandler(svc))
		cr.Delete("/", clearMessagesHandler(svc))
	})
}

type submitRequest struct {
	Content string `json:"content"`
}

type listResponse struct {
	Messages []Message `json:"messages"`
	Busy     bool      `json:"busy"`
}

// listMessagesHandler godoc
// @Summary Historial del chat
// @Description busy=true mientras el asistente está respondiendo.
// @Tags chat
// @Produce json
// @Success 200 {object} listResponse
// @Router /chat/messages [get]
func listMessagesHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respond.JSON(w, http.StatusOK, listResponse{
			Messages: svc.Messages(r.Context()),
			Busy:     svc.Busy(),
		})
	}
}

// submitMessageHandler godoc
// @Summary Enviar mensaje al asistente
// @Description Guarda el mensaje del usuario; la respuesta llega después (consultar GET).
// @Tags chat
// @Accept json
// @Produce json
// @Param payload body submitRequest true "Mensaje"
// @Success 202 {object} Message
// @Failure 400 {object} respond.ErrorBody
// @Failure 409 {object} respond.ErrorBody
// @Router /chat/messages [post]
func submitMessageHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req submitRequest
		if err := respond.DecodeJSON(r, &req); err != nil {
			respond.Error(w, http.StatusBadRequest, "invalid json")
			return
		}

		msg, err := svc.Submit(r.Context(), req.Content)
		if err != nil {
			writeError(w, err)
			return
		}
		respond.JSON(w, http.StatusAccepted, msg)
	}
}

// clearMessagesHandler godoc
// @Summary Borrar historial
// @Tags chat
// @Param confirm query bool false "Confirmación"
// @Success 204
// @Failure 409 {object} respond.ErrorBody
// @Router /chat/messages [delete]
func clearMessagesHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.Clear(r.Context(), respond.Confirmer(r)); err != nil {
			writeError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func writeError(w http.ResponseWriter, err error) {
	if respond.Declined(w, err) {
		return
	}
	switch {
	case errors.Is(err, ErrInvalidInput):
		respond.Error(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrBusy):
		respond.Error(w, http.StatusConflict, err.Error())
	case errors.Is(err, state.ErrUnavailable):
		respond.Error(w, http.StatusServiceUnavailable, "storage unavailable")
	default:
		respond.Error(w, http.StatusInternalServerError, "internal error")
	}
}
