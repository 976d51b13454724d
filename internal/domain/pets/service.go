package pets

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"sync"
	"time"

	"pet-companion/internal/platform/form"
	"pet-companion/internal/platform/ids"
	"pet-companion/internal/platform/logger"
	"pet-companion/internal/platform/modal"
	"pet-companion/internal/platform/state"
	"pet-companion/internal/ports/prompt"
)

const StorageKey = "PETS_KEY"

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("pet not found")
)

const deleteTitle = "Delete Pet"

// Service es el estado de la pantalla de mascotas: la colección persistida,
// el formulario y el modal cuyo payload es la mascota en edición.
type Service struct {
	pets  *state.Accessor[[]Pet]
	form  *form.Form[Form]
	modal *modal.Modal[Pet]

	log logger.Logger
	now func() time.Time

	// serializa los flujos que leen form+modal y escriben la colección
	mu         sync.Mutex
	dependents []DependentStore
}

func NewService(acc *state.Accessor[[]Pet], log logger.Logger) *Service {
	if log == nil {
		log = logger.Nop()
	}
	return &Service{
		pets:  acc,
		form:  form.New(EmptyForm()),
		modal: modal.New[Pet](),
		log:   log.With(map[string]any{"module": "pets"}),
		now:   time.Now,
	}
}

// RegisterDependents agrega módulos a limpiar en Delete.
func (s *Service) RegisterDependents(ds ...DependentStore) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dependents = append(s.dependents, ds...)
}

func (s *Service) list(ctx context.Context) []Pet {
	if s.pets.Loading() {
		return s.pets.Load(ctx)
	}
	return s.pets.Value()
}

// List devuelve las mascotas en orden de alta.
func (s *Service) List(ctx context.Context) []Pet {
	items := s.list(ctx)
	out := make([]Pet, len(items))
	copy(out, items)
	return out
}

func (s *Service) Loading() bool { return s.pets.Loading() }

func (s *Service) GetByID(ctx context.Context, id string) (Pet, error) {
	for _, p := range s.list(ctx) {
		if p.ID == id {
			return p, nil
		}
	}
	return Pet{}, ErrNotFound
}

func (s *Service) Exists(ctx context.Context, petID string) bool {
	_, err := s.GetByID(ctx, petID)
	return err == nil
}

func (s *Service) FirstID(ctx context.Context) (string, bool) {
	items := s.list(ctx)
	if len(items) == 0 {
		return "", false
	}
	return items[0].ID, true
}

// Age calcula la edad de la mascota a hoy.
func (s *Service) Age(ctx context.Context, id string) (int, error) {
	p, err := s.GetByID(ctx, id)
	if err != nil {
		return 0, err
	}
	return p.Age(s.now())
}

// Form expone el formulario para form.UpdateField.
func (s *Service) Form() *form.Form[Form] { return s.form }

func (s *Service) FormData() Form { return s.form.Data() }

func (s *Service) UpdateForm(fn func(*Form)) { s.form.UpdateFields(fn) }

func (s *Service) ModalVisible() bool { return s.modal.Visible() }

// Editing devuelve la mascota en edición, si la hay.
func (s *Service) Editing() (Pet, bool) { return s.modal.Data() }

// StartCreate abre el modal vacío.
func (s *Service) StartCreate() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.modal.Close()
	s.form.ResetForm()
	s.modal.Open()
}

// StartEdit carga la mascota en el formulario y abre el modal.
func (s *Service) StartEdit(ctx context.Context, id string) error {
	p, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.form.SetForm(FormFrom(p))
	s.modal.OpenWith(p)
	return nil
}

func (s *Service) Cancel() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.modal.Close()
	s.form.ResetForm()
}

// Save guarda el formulario: update si hay mascota en edición, alta si no.
// Si falla la validación no cambia nada (modal y form quedan como estaban).
func (s *Service) Save(ctx context.Context) (Pet, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var editing *Pet
	if p, ok := s.modal.Data(); ok {
		editing = &p
	}
	saved, err := s.save(ctx, s.form.Data(), editing)
	if err != nil {
		return Pet{}, err
	}

	s.form.ResetForm()
	s.modal.Close()
	return saved, nil
}

// Create da de alta sin pasar por el formulario de la pantalla.
func (s *Service) Create(ctx context.Context, in Form) (Pet, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.save(ctx, in, nil)
}

func (s *Service) Update(ctx context.Context, id string, in Form) (Pet, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, err := s.GetByID(ctx, id)
	if err != nil {
		return Pet{}, err
	}
	return s.save(ctx, in, &current)
}

// save requiere s.mu.
func (s *Service) save(ctx context.Context, in Form, editing *Pet) (Pet, error) {
	p, err := validate(in)
	if err != nil {
		return Pet{}, err
	}
	items, err := s.pets.Resolve(ctx)
	if err != nil {
		return Pet{}, err
	}

	if editing == nil {
		p.ID = ids.New()
		s.pets.Update(func(prev []Pet) []Pet {
			next := make([]Pet, 0, len(prev)+1)
			next = append(next, prev...)
			return append(next, p)
		})
		s.log.Info("pet created", map[string]any{"id": p.ID, "count": len(items) + 1})
		return p, nil
	}

	p.ID = editing.ID
	found := false
	s.pets.Update(func(prev []Pet) []Pet {
		next := make([]Pet, len(prev))
		for i, cur := range prev {
			if cur.ID == p.ID {
				next[i] = p
				found = true
				continue
			}
			next[i] = cur
		}
		return next
	})
	if !found {
		return Pet{}, ErrNotFound
	}
	s.log.Info("pet updated", map[string]any{"id": p.ID})
	return p, nil
}

// Delete pide confirmación y borra la mascota junto con sus registros
// dependientes.
func (s *Service) Delete(ctx context.Context, id string, c prompt.Confirmer) error {
	p, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}

	msg := fmt.Sprintf("Are you sure you want to delete %s? This will also delete all related records.", p.Name)
	if err := prompt.Ask(ctx, c, deleteTitle, msg); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// Primero los dependientes: si uno falla la mascota sigue ahí y se puede
	// reintentar (DeleteByPet es idempotente).
	removed := 0
	for _, d := range s.dependents {
		n, err := d.DeleteByPet(ctx, id)
		if err != nil {
			s.log.Error("cascade delete failed", map[string]any{"id": id, "err": err})
			return fmt.Errorf("delete records of pet %s: %w", id, err)
		}
		removed += n
	}

	s.pets.Update(func(prev []Pet) []Pet {
		next := make([]Pet, 0, len(prev))
		for _, cur := range prev {
			if cur.ID != id {
				next = append(next, cur)
			}
		}
		return next
	})

	if editing, ok := s.modal.Data(); ok && editing.ID == id {
		s.modal.Close()
		s.form.ResetForm()
	}
	s.log.Info("pet deleted", map[string]any{"id": id, "related_removed": removed})
	return nil
}

func validate(in Form) (Pet, error) {
	name := strings.TrimSpace(in.Name)
	dob := strings.TrimSpace(in.DateOfBirth)
	if name == "" || dob == "" {
		return Pet{}, fmt.Errorf("%w: Name and Date of Birth are required.", ErrInvalidInput)
	}
	if _, err := time.Parse(DateLayout, dob); err != nil {
		return Pet{}, fmt.Errorf("%w: Date of Birth must be YYYY-MM-DD.", ErrInvalidInput)
	}

	species := in.Species
	if species == "" {
		species = SpeciesCat
	}
	if !species.Valid() {
		return Pet{}, fmt.Errorf("%w: Species must be Cat, Dog or Hamster.", ErrInvalidInput)
	}
	gender := in.Gender
	if gender == "" {
		gender = GenderMale
	}
	if !gender.Valid() {
		return Pet{}, fmt.Errorf("%w: Gender must be Male or Female.", ErrInvalidInput)
	}

	weight := parseWeight(in.Weight)
	if weight < 0 {
		return Pet{}, fmt.Errorf("%w: Weight must not be negative.", ErrInvalidInput)
	}

	return Pet{
		Name:        name,
		Species:     species,
		Gender:      gender,
		Breed:       strings.TrimSpace(in.Breed),
		DateOfBirth: dob,
		Weight:      weight,
		Notes:       strings.TrimSpace(in.Notes),
	}, nil
}

// parseWeight: texto no numérico => 0.
func parseWeight(s string) float64 {
	w, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(w) || math.IsInf(w, 0) {
		return 0
	}
	return w
}

func formatWeight(w float64) string {
	return strconv.FormatFloat(w, 'f', -1, 64)
}
