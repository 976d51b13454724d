package feeding

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
	StorageKey = "FEEDING_KEY"

	// RecentLimit es el tope de la vista "últimas comidas".
	RecentLimit = 7
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("feeding record not found")
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
		log:     log.With(map[string]any{"module": "feeding"}),
	}
}

func (s *Service) list(ctx context.Context) []Record {
	if s.records.Loading() {
		return s.records.Load(ctx)
	}
	return s.records.Value()
}

// List devuelve los registros (más nuevos primero según alta). petID vacío => todos.
func (s *Service) List(ctx context.Context, petID string) []Record {
	var filter func(Record) bool
	if petID != "" {
		filter = func(r Record) bool { return r.PetID == petID }
	}
	return listview.Apply(s.list(ctx), filter, nil, 0)
}

func (s *Service) GetByID(ctx context.Context, id string) (Record, error) {
	for _, r := range s.list(ctx) {
		if r.ID == id {
			return r, nil
		}
	}
	return Record{}, ErrNotFound
}

// Recent es la vista derivada: registros de la mascota, fecha+hora
// descendente, máximo 7. No se persiste.
func (s *Service) Recent(ctx context.Context, petID string) []Record {
	if petID == "" {
		petID, _ = s.SelectedPet(ctx)
	}
	return listview.Apply(s.list(ctx),
		func(r Record) bool { return r.PetID == petID },
		func(a, b Record) bool { return a.sortKey() > b.sortKey() },
		RecentLimit,
	)
}

// SelectPet cambia la mascota de la pantalla.
func (s *Service) SelectPet(ctx context.Context, petID string) error {
	if s.pets != nil && !s.pets.Exists(ctx, petID) {
		return fmt.Errorf("%w: unknown pet %q", ErrInvalidInput, petID)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selectedPet = petID
	return nil
}

// SelectedPet es la mascota elegida o, si no hay (o se borró), la primera.
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

// Save guarda el formulario. En alta usa la mascota seleccionada y agrega
// al principio; en edición conserva la mascota del registro.
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

// save requiere s.mu.
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
		s.log.Info("feeding record created", map[string]any{"id": r.ID, "pet_id": r.PetID})
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
	s.log.Info("feeding record updated", map[string]any{"id": r.ID})
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
	s.log.Info("feeding record deleted", map[string]any{"id": id})
	return nil
}

// DeleteByPet borra todos los registros de una mascota (cascada desde pets).
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
		PetID:    strings.TrimSpace(petID),
		FoodType: strings.TrimSpace(in.FoodType),
		Quantity: strings.TrimSpace(in.Quantity),
		Date:     strings.TrimSpace(in.Date),
		Time:     strings.TrimSpace(in.Time),
		Repeat:   in.Repeat,
		Notes:    strings.TrimSpace(in.Notes),
	}
	if r.FoodType == "" || r.Quantity == "" || r.Date == "" || r.Time == "" || r.PetID == "" {
		return Record{}, fmt.Errorf("%w: Food type, quantity, date, time and pet are required.", ErrInvalidInput)
	}
	if _, err := time.Parse("2006-01-02", r.Date); err != nil {
		return Record{}, fmt.Errorf("%w: Date must be YYYY-MM-DD.", ErrInvalidInput)
	}
	t, err := time.Parse("15:04", r.Time)
	if err != nil {
		return Record{}, fmt.Errorf("%w: Time must be HH:MM.", ErrInvalidInput)
	}
	r.Time = t.Format("15:04")
	if r.Repeat == "" {
		r.Repeat = RepeatNone
	}
	if !r.Repeat.Valid() {
		return Record{}, fmt.Errorf("%w: Repeat must be none, daily or weekly.", ErrInvalidInput)
	}
	return r, nil
}
