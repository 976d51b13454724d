package settings

import (
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"pet-companion/internal/platform/respond"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/settings", func(sr chi.Router) {
		sr.Get("/profile", profileHandler(svc))
		sr.Post("/password", changePasswordHandler(svc))
	})
}

type changePasswordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
	ConfirmPassword string `json:"confirmPassword"`
}

type messageResponse struct {
	Message string `json:"message"`
}

// profileHandler godoc
// @Summary Perfil del usuario (mock)
// @Tags settings
// @Produce json
// @Success 200 {object} Profile
// @Router /settings/profile [get]
func profileHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respond.JSON(w, http.StatusOK, svc.Profile())
	}
}

// changePasswordHandler godoc
// @Summary Cambiar contraseña (mock)
// @Description No persiste nada. La contraseña actual aceptada es "password".
// @Tags settings
// @Accept json
// @Produce json
// @Param payload body changePasswordRequest true "Contraseñas"
// @Success 200 {object} messageResponse
// @Failure 400 {object} respond.ErrorBody
// @Router /settings/password [post]
func changePasswordHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req changePasswordRequest
		if err := respond.DecodeJSON(r, &req); err != nil {
			respond.Error(w, http.StatusBadRequest, "invalid json")
			return
		}

		msg, err := svc.ChangePassword(req.CurrentPassword, req.NewPassword, req.ConfirmPassword)
		if err != nil {
			if errors.Is(err, ErrInvalidInput) {
				respond.Error(w, http.StatusBadRequest, strings.TrimPrefix(err.Error(), ErrInvalidInput.Error()+": "))
				return
			}
			respond.Error(w, http.StatusInternalServerError, "internal error")
			return
		}
		respond.JSON(w, http.StatusOK, messageResponse{Message: msg})
	}
}
