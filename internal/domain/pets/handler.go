package pets

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"pet-companion/internal/platform/respond"
	"pet-companion/internal/platform/state"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/pets", func(pr chi.Router) {
		pr.Post("/", createPetHandler(svc))
		pr.Get("/", listPetsHandler(svc))
		pr.Get("/{petID}", getPetHandler(svc))
		pr.Put("/{petID}", updatePetHandler(svc))
		pr.Delete("/{petID}", deletePetHandler(svc))
		pr.Get("/{petID}/age", petAgeHandler(svc))
	})
}

type petRequest struct {
	Name        string      `json:"name"`
	Species     Species     `json:"species"`
	Gender      Gender      `json:"gender"`
	Breed       string      `json:"breed"`
	DateOfBirth string      `json:"dateOfBirth"` // YYYY-MM-DD
	Weight      json.Number `json:"weight"`
	Notes       string      `json:"notes"`
}

func (req petRequest) toForm() Form {
	return Form{
		Name:        req.Name,
		Species:     req.Species,
		Gender:      req.Gender,
		Breed:       req.Breed,
		DateOfBirth: req.DateOfBirth,
		Weight:      req.Weight.String(),
		Notes:       req.Notes,
	}
}

type ageResponse struct {
	PetID string `json:"petId"`
	Years int    `json:"years"`
}

// createPetHandler godoc
// @Summary Crear mascota
// @Description Agrega una mascota al final de la colección. name y dateOfBirth son obligatorios.
// @Tags pets
// @Accept json
// @Produce json
// @Param payload body petRequest true "Datos de la mascota"
// @Success 201 {object} Pet
// @Failure 400 {object} respond.ErrorBody "invalid json / validación"
// @Router /pets [post]
func createPetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req petRequest
		if err := respond.DecodeJSON(r, &req); err != nil {
			respond.Error(w, http.StatusBadRequest, "invalid json")
			return
		}

		p, err := svc.Create(r.Context(), req.toForm())
		if err != nil {
			writeError(w, err)
			return
		}
		respond.JSON(w, http.StatusCreated, p)
	}
}

// listPetsHandler godoc
// @Summary Listar mascotas
// @Tags pets
// @Produce json
// @Success 200 {array} Pet
// @Router /pets [get]
func listPetsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respond.JSON(w, http.StatusOK, svc.List(r.Context()))
	}
}

func getPetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, err := svc.GetByID(r.Context(), chi.URLParam(r, "petID"))
		if err != nil {
			writeError(w, err)
			return
		}
		respond.JSON(w, http.StatusOK, p)
	}
}

// updatePetHandler godoc
// @Summary Editar mascota
// @Description Reemplaza los datos de la mascota. El id no cambia.
// @Tags pets
// @Accept json
// @Produce json
// @Param petID path string true "ID de la mascota"
// @Param payload body petRequest true "Datos de la mascota"
// @Success 200 {object} Pet
// @Failure 400 {object} respond.ErrorBody
// @Failure 404 {object} respond.ErrorBody
// @Router /pets/{petID} [put]
func updatePetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req petRequest
		if err := respond.DecodeJSON(r, &req); err != nil {
			respond.Error(w, http.StatusBadRequest, "invalid json")
			return
		}

		p, err := svc.Update(r.Context(), chi.URLParam(r, "petID"), req.toForm())
		if err != nil {
			writeError(w, err)
			return
		}
		respond.JSON(w, http.StatusOK, p)
	}
}

// deletePetHandler godoc
// @Summary Borrar mascota
// @Description Borra la mascota y sus registros de alimentación y salud. Sin confirm=true responde 409 con el texto a confirmar.
// @Tags pets
// @Param petID path string true "ID de la mascota"
// @Param confirm query bool false "Confirmación del usuario"
// @Success 204
// @Failure 404 {object} respond.ErrorBody
// @Failure 409 {object} respond.ErrorBody
// @Router /pets/{petID} [delete]
func deletePetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		err := svc.Delete(r.Context(), chi.URLParam(r, "petID"), respond.Confirmer(r))
		if err != nil {
			writeError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func petAgeHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "petID")
		years, err := svc.Age(r.Context(), id)
		if err != nil {
			writeError(w, err)
			return
		}
		respond.JSON(w, http.StatusOK, ageResponse{PetID: id, Years: years})
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
		respond.Error(w, http.StatusNotFound, "pet not found")
	case errors.Is(err, ErrNoBirthDate):
		respond.Error(w, http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, state.ErrUnavailable):
		respond.Error(w, http.StatusServiceUnavailable, "storage unavailable")
	default:
		respond.Error(w, http.StatusInternalServerError, "internal error")
	}
}
