package feeding

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"pet-companion/internal/platform/respond"
	"pet-companion/internal/platform/state"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/feeding", func(fr chi.Router) {
		fr.Post("/", createRecordHandler(svc))
		fr.Get("/", listRecordsHandler(svc))
		fr.Get("/recent", recentRecordsHandler(svc))
		fr.Put("/{recordID}", updateRecordHandler(svc))
		fr.Delete("/{recordID}", deleteRecordHandler(svc))
	})
}

type recordRequest struct {
	PetID    string `json:"petId"`
	FoodType string `json:"foodType"`
	Quantity string `json:"quantity"`
	Date     string `json:"date"` // YYYY-MM-DD
	Time     string `json:"time"` // HH:MM
	Repeat   Repeat `json:"repeat"`
	Notes    string `json:"notes"`
}

func (req recordRequest) toForm() Form {
	return Form{
		FoodType: req.FoodType,
		Quantity: req.Quantity,
		Date:     req.Date,
		Time:     req.Time,
		Repeat:   req.Repeat,
		Notes:    req.Notes,
	}
}

// createRecordHandler godoc
// @Summary Registrar comida
// @Description Agrega el registro al principio de la colección. Sin petId usa la mascota seleccionada (o la primera).
// @Tags feeding
// @Accept json
// @Produce json
// @Param payload body recordRequest true "Registro de comida"
// @Success 201 {object} Record
// @Failure 400 {object} respond.ErrorBody
// @Router /feeding [post]
func createRecordHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req recordRequest
		if err := respond.DecodeJSON(r, &req); err != nil {
			respond.Error(w, http.StatusBadRequest, "invalid json")
			return
		}

		petID := req.PetID
		if petID == "" {
			petID, _ = svc.SelectedPet(r.Context())
		}
		rec, err := svc.Create(r.Context(), petID, req.toForm())
		if err != nil {
			writeError(w, err)
			return
		}
		respond.JSON(w, http.StatusCreated, rec)
	}
}

// listRecordsHandler godoc
// @Summary Listar registros de comida
// @Tags feeding
// @Produce json
// @Param petId query string false "Filtra por mascota"
// @Success 200 {array} Record
// @Router /feeding [get]
func listRecordsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respond.JSON(w, http.StatusOK, svc.List(r.Context(), r.URL.Query().Get("petId")))
	}
}

// recentRecordsHandler godoc
// @Summary Últimas comidas de una mascota
// @Description Filtra por mascota, ordena por fecha+hora descendente y devuelve como máximo 7.
// @Tags feeding
// @Produce json
// @Param petId query string false "Mascota (default: la seleccionada)"
// @Success 200 {array} Record
// @Router /feeding/recent [get]
func recentRecordsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		petID := r.URL.Query().Get("petId")
		if petID != "" {
			if err := svc.SelectPet(r.Context(), petID); err != nil {
				writeError(w, err)
				return
			}
		}
		respond.JSON(w, http.StatusOK, svc.Recent(r.Context(), petID))
	}
}

func updateRecordHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req recordRequest
		if err := respond.DecodeJSON(r, &req); err != nil {
			respond.Error(w, http.StatusBadRequest, "invalid json")
			return
		}

		rec, err := svc.Update(r.Context(), chi.URLParam(r, "recordID"), req.toForm())
		if err != nil {
			writeError(w, err)
			return
		}
		respond.JSON(w, http.StatusOK, rec)
	}
}

// deleteRecordHandler godoc
// @Summary Borrar registro de comida
// @Tags feeding
// @Param recordID path string true "ID del registro"
// @Param confirm query bool false "Confirmación del usuario"
// @Success 204
// @Failure 404 {object} respond.ErrorBody
// @Failure 409 {object} respond.ErrorBody
// @Router /feeding/{recordID} [delete]
func deleteRecordHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.Delete(r.Context(), chi.URLParam(r, "recordID"), respond.Confirmer(r)); err != nil {
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
	case errors.Is(err, ErrNotFound):
		respond.Error(w, http.StatusNotFound, "feeding record not found")
	case errors.Is(err, state.ErrUnavailable):
		respond.Error(w, http.StatusServiceUnavailable, "storage unavailable")
	default:
		respond.Error(w, http.StatusInternalServerError, "internal error")
	}
}
