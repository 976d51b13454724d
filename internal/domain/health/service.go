package health

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"pet-companion/internal/domain/pets"
	"pet-companion/internal/platform/form"
	"pet-companion/internal/platform/ids"
	"pet-companion/internal/platform/listview"
	"pet-companion/internal/platform/logger"
	"pet-companion/internal/platform/modal"
	"pet-companion/internal/platform/state"
	"pet-companion/internal/ports/prompt"
)

const (
	StorageKey = "HEALTH_KEY"

	dateLayout = "2006-01-02"
	timeLayout = "15:04"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("health record not found")
)

type Service struct {
	records *state.Accessor[[]Record]
	form    *form.Form[Form]
	modal   *modal.Modal[Record]
	pets    pets.Lookup

	log logger.Logger

	mu          sync.Mutex
	selectedPet string
}

func NewService(acc *state.Accessor[[]Record], petLookup pets.Lookup, log logger.Logger) *Service {
	if log == nil {
		log = logger.Nop()
	}
	return &Service{
		records: acc,
		form:    form.New(EmptyForm()),
		modal:   modal.New[Record](),
		pets:    petLookup,
		log:     log.With(map[string]any{"module": "health"}),
	}
}

func (s *Service) list(ctx context.Context) []Record {
	if s.records.Loading() {
		return s.records.Load(ctx)
	}
	return s.records.Value()
}

func (s *Service) GetByID(ctx context.Context, id string) (Record, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Record{}, ErrInvalidInput
	}
	for _, r := range s.list(ctx) {
		if r.ID == id {
			return r, nil
		}
	}
	return Record{}, ErrNotFound
}

// ForPet devuelve los registros de la mascota que pasan el filtro, por fecha
// descendente. Sin Limit no hay tope.
func (s *Service) ForPet(ctx context.Context, petID string, filter ListFilter) []Record {
	if petID == "" {
		petID, _ = s.SelectedPet(ctx)
	}
	return listview.Apply(s.list(ctx),
		func(r Record) bool { return r.PetID == petID && filter.match(r) },
		func(a, b Record) bool { return a.Date > b.Date },
		filter.Limit,
	)
}

func (s *Service) SelectPet(ctx context.Context, petID string) error {
	if s.pets != nil && !s.pets.Exists(ctx, petID) {
		return fmt.Errorf("%w: unknown pet %q", ErrInvalidInput, petID)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selectedPet = petID
	return nil
}

func (s *Service) SelectedPet(ctx context.Context) (string, bool) {
	s.mu.Lock()
	sel := s.selectedPet
	s.mu.Unlock()

	if s.pets == nil {
		return sel, sel != ""
	}
	if sel != "" && s.pets.Exists(ctx, sel) {
		return sel, true
	}
	return s.pets.FirstID(ctx)
}

func (s *Service) Form() *form.Form[Form] { return s.form }

func (s *Service) FormData() Form { return s.form.Data() }

func (s *Service) UpdateForm(fn func(*Form)) { s.form.UpdateFields(fn) }

func (s *Service) ModalVisible() bool { return s.modal.Visible() }

func (s *Service) Editing() (Record, bool) { return s.modal.Data() }

func (s *Service) StartCreate() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.modal.Close()
	s.form.ResetForm()
	s.modal.Open()
}

func (s *Service) StartEdit(ctx context.Context, id string) error {
	r, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.form.SetForm(FormFrom(r))
	s.modal.OpenWith(r)
	return nil
}

func (s *Service) Cancel() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.modal.Close()
	s.form.ResetForm()
}

func (s *Service) Save(ctx context.Context) (Record, error) {
	petID, _ := s.SelectedPet(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	var editing *Record
	if r, ok := s.modal.Data(); ok {
		editing = &r
	}
	saved, err := s.save(ctx, s.form.Data(), petID, editing)
	if err != nil {
		return Record{}, err
	}
	s.form.ResetForm()
	s.modal.Close()
	return saved, nil
}

func (s *Service) Create(ctx context.Context, petID string, in Form) (Record, error) {
	if petID != "" && s.pets != nil && !s.pets.Exists(ctx, petID) {
		return Record{}, fmt.Errorf("%w: unknown pet %q", ErrInvalidInput, petID)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.save(ctx, in, petID, nil)
}

func (s *Service) Update(ctx context.Context, id string, in Form) (Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, err := s.GetByID(ctx, id)
	if err != nil {
		return Record{}, err
	}
	return s.save(ctx, in, current.PetID, &current)
}

// save requiere s.mu. En edición la mascota no cambia.
func (s *Service) save(ctx context.Context, in Form, petID string, editing *Record) (Record, error) {
	if editing != nil {
		petID = editing.PetID
	}
	r, err := validate(in, petID)
	if err != nil {
		return Record{}, err
	}
	// la colección tiene que estar leída del store antes de mutarla
	if _, err := s.records.Resolve(ctx); err != nil {
		return Record{}, err
	}

	if editing == nil {
		r.ID = ids.New()
		s.records.Update(func(prev []Record) []Record {
			next := make([]Record, 0, len(prev)+1)
			next = append(next, r)
			return append(next, prev...)
		})
		s.log.Info("health record created", map[string]any{"id": r.ID, "pet_id": r.PetID, "type": string(r.Type)})
		return r, nil
	}

	r.ID = editing.ID
	found := false
	s.records.Update(func(prev []Record) []Record {
		next := make([]Record, len(prev))
		for i, cur := range prev {
			if cur.ID == r.ID {
				next[i] = r
				found = true
				continue
			}
			next[i] = cur
		}
		return next
	})
	if !found {
		return Record{}, ErrNotFound
	}
	s.log.Info("health record updated", map[string]any{"id": r.ID})
	return r, nil
}

func (s *Service) Delete(ctx context.Context, id string, c prompt.Confirmer) error {
	if _, err := s.GetByID(ctx, id); err != nil {
		return err
	}
	if err := prompt.Ask(ctx, c, "Delete", "Are you sure?"); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.records.Update(func(prev []Record) []Record {
		return listview.Apply(prev, func(r Record) bool { return r.ID != id }, nil, 0)
	})
	if editing, ok := s.modal.Data(); ok && editing.ID == id {
		s.modal.Close()
		s.form.ResetForm()
	}
	s.log.Info("health record deleted", map[string]any{"id": id})
	return nil
}

// DeleteByPet es la parte de health del borrado en cascada de una mascota.
func (s *Service) DeleteByPet(ctx context.Context, petID string) (int, error) {
	if _, err := s.records.Resolve(ctx); err != nil {
		return 0, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	s.records.Update(func(prev []Record) []Record {
		next := listview.Apply(prev, func(r Record) bool { return r.PetID != petID }, nil, 0)
		removed = len(prev) - len(next)
		return next
	})
	return removed, nil
}

func validate(in Form, petID string) (Record, error) {
	r := Record{
		PetID:  strings.TrimSpace(petID),
		Type:   in.Type,
		Title:  strings.TrimSpace(in.Title),
		Date:   strings.TrimSpace(in.Date),
		Time:   strings.TrimSpace(in.Time),
		Repeat: in.Repeat,
		Notes:  strings.TrimSpace(in.Notes),
	}
	if r.Title == "" || r.Date == "" || r.Time == "" || r.PetID == "" {
		return Record{}, fmt.Errorf("%w: Title, date, time and pet are required.", ErrInvalidInput)
	}
	if _, err := time.Parse(dateLayout, r.Date); err != nil {
		return Record{}, fmt.Errorf("%w: Date must be YYYY-MM-DD.", ErrInvalidInput)
	}
	t, err := time.Parse(timeLayout, r.Time)
	if err != nil {
		return Record{}, fmt.Errorf("%w: Time must be HH:MM.", ErrInvalidInput)
	}
	r.Time = t.Format(timeLayout)

	if r.Type == "" {
		r.Type = TypeVaccination
	}
	if !r.Type.Valid() {
		return Record{}, fmt.Errorf("%w: Type must be Vaccination, Medication or Vet Visit.", ErrInvalidInput)
	}
	if r.Repeat == "" {
		r.Repeat = RepeatNone
	}
	if !r.Repeat.Valid() {
		return Record{}, fmt.Errorf("%w: Repeat must be none, daily, weekly or monthly.", ErrInvalidInput)
	}
	return r, nil
}
