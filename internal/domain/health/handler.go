package health

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"pet-companion/internal/platform/respond"
	"pet-companion/internal/platform/state"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/health-records", func(hr chi.Router) {
		hr.Post("/", createRecordHandler(svc))
		hr.Get("/", listRecordsHandler(svc))
		hr.Get("/{recordID}", getRecordHandler(svc))
		hr.Put("/{recordID}", updateRecordHandler(svc))
		hr.Delete("/{recordID}", deleteRecordHandler(svc))
	})
}

type recordRequest struct {
	PetID  string `json:"petId"`
	Type   Type   `json:"type"`
	Title  string `json:"title"`
	Date   string `json:"date"` // YYYY-MM-DD
	Time   string `json:"time"` // HH:MM
	Repeat Repeat `json:"repeat"`
	Notes  string `json:"notes"`
}

func (req recordRequest) toForm() Form {
	return Form{
		Type:   req.Type,
		Title:  req.Title,
		Date:   req.Date,
		Time:   req.Time,
		Repeat: req.Repeat,
		Notes:  req.Notes,
	}
}

// createRecordHandler godoc
// @Summary Crear registro de salud
// @Description Vacuna, medicación o visita al veterinario. Se agrega al principio.
// @Tags health
// @Accept json
// @Produce json
// @Param payload body recordRequest true "Registro de salud"
// @Success 201 {object} Record
// @Failure 400 {object} respond.ErrorBody
// @Router /health-records [post]
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
// @Summary Listar registros de salud de una mascota
// @Description Ordenados por fecha descendente. Permite filtrar por tipos, rango de fechas y texto.
// @Tags health
// @Produce json
// @Param petId query string false "Mascota (default: la seleccionada)"
// @Param types query string false "CSV de tipos (ej: Vaccination,Vet Visit)"
// @Param from query string false "Fecha mínima YYYY-MM-DD"
// @Param to query string false "Fecha máxima YYYY-MM-DD"
// @Param q query string false "Texto en título/notas"
// @Param limit query int false "Máximo a devolver (1-200)"
// @Success 200 {array} Record
// @Failure 400 {object} respond.ErrorBody
// @Router /health-records [get]
func listRecordsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filter, err := parseListFilter(r)
		if err != nil {
			respond.Error(w, http.StatusBadRequest, err.Error())
			return
		}
		respond.JSON(w, http.StatusOK, svc.ForPet(r.Context(), r.URL.Query().Get("petId"), filter))
	}
}

func getRecordHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rec, err := svc.GetByID(r.Context(), chi.URLParam(r, "recordID"))
		if err != nil {
			writeError(w, err)
			return
		}
		respond.JSON(w, http.StatusOK, rec)
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

func deleteRecordHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.Delete(r.Context(), chi.URLParam(r, "recordID"), respond.Confirmer(r)); err != nil {
			writeError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func parseListFilter(r *http.Request) (ListFilter, error) {
	q := r.URL.Query()
	var filter ListFilter

	if v := q.Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 && n <= 200 {
			filter.Limit = n
		}
	}

	// types=Vaccination,Vet Visit
	if v := strings.TrimSpace(q.Get("types")); v != "" {
		for _, p := range strings.Split(v, ",") {
			t := Type(strings.TrimSpace(p))
			if t == "" {
				continue
			}
			if !t.Valid() {
				return ListFilter{}, errors.New("unknown type " + string(t))
			}
			filter.Types = append(filter.Types, t)
		}
	}

	if v := strings.TrimSpace(q.Get("from")); v != "" {
		t, err := time.Parse(dateLayout, v)
		if err != nil {
			return ListFilter{}, errors.New("from must be YYYY-MM-DD")
		}
		filter.From = &t
	}
	if v := strings.TrimSpace(q.Get("to")); v != "" {
		t, err := time.Parse(dateLayout, v)
		if err != nil {
			return ListFilter{}, errors.New("to must be YYYY-MM-DD")
		}
		filter.To = &t
	}

	filter.Query = strings.TrimSpace(q.Get("q"))
	return filter, nil
}

func writeError(w http.ResponseWriter, err error) {
	if respond.Declined(w, err) {
		return
	}
	switch {
	case errors.Is(err, ErrInvalidInput):
		respond.Error(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrNotFound):
		respond.Error(w, http.StatusNotFound, "health record not found")
	case errors.Is(err, state.ErrUnavailable):
		respond.Error(w, http.StatusServiceUnavailable, "storage unavailable")
	default:
		respond.Error(w, http.StatusInternalServerError, "internal error")
	}
}
