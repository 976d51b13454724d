package pets

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"pet-companion/internal/adapters/storage/memory"
	"pet-companion/internal/platform/form"
	"pet-companion/internal/platform/state"
	"pet-companion/internal/ports/prompt"
)

// -------------------------
// Helpers
// -------------------------

type fakeDependent struct {
	deleted []string
	err     error
}

func (d *fakeDependent) DeleteByPet(_ context.Context, petID string) (int, error) {
	if d.err != nil {
		return 0, d.err
	}
	d.deleted = append(d.deleted, petID)
	return 2, nil
}

func newTestService(t *testing.T) (*Service, *memory.KVStore) {
	t.Helper()
	store := memory.NewKVStore()
	acc := state.New[[]Pet](store, StorageKey, []Pet{})
	t.Cleanup(func() { _ = acc.Close(context.Background()) })
	return NewService(acc, nil), store
}

func rexForm() Form {
	return Form{Name: "Rex", Species: SpeciesDog, Gender: GenderMale, DateOfBirth: "2020-01-01", Weight: "12"}
}

// -------------------------
// Tests
// -------------------------

func TestService_CreateEditDelete_Rex(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	svc.StartCreate()
	svc.UpdateForm(func(f *Form) { *f = rexForm() })
	p, err := svc.Save(ctx)
	if err != nil {
		t.Fatalf("Save returned error: %v", err)
	}
	if p.ID == "" || p.Weight != 12 {
		t.Fatalf("unexpected pet %#v", p)
	}
	if svc.ModalVisible() {
		t.Fatalf("expected modal closed after save")
	}
	if got := svc.FormData(); got != EmptyForm() {
		t.Fatalf("expected form reset, got %#v", got)
	}

	if err := svc.StartEdit(ctx, p.ID); err != nil {
		t.Fatalf("StartEdit: %v", err)
	}
	if got := svc.FormData().Weight; got != "12" {
		t.Fatalf("expected form seeded with weight 12, got %q", got)
	}
	form.UpdateField(svc.Form(), FieldWeight, "14")
	edited, err := svc.Save(ctx)
	if err != nil {
		t.Fatalf("Save edit: %v", err)
	}

	items := svc.List(ctx)
	if len(items) != 1 || items[0].ID != p.ID || items[0].Weight != 14 {
		t.Fatalf("expected single pet with same id and weight 14, got %#v", items)
	}
	if edited.ID != p.ID {
		t.Fatalf("id changed on edit")
	}

	if err := svc.Delete(ctx, p.ID, prompt.Static(true)); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if n := len(svc.List(ctx)); n != 0 {
		t.Fatalf("expected empty collection, got %d", n)
	}
}

func TestService_Save_ValidationKeepsState(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	svc.StartCreate()
	form.UpdateField(svc.Form(), FieldName, "Milo")

	_, err := svc.Save(ctx)
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if err.Error() != "invalid input: Name and Date of Birth are required." {
		t.Fatalf("unexpected message %q", err.Error())
	}
	if !svc.ModalVisible() || svc.FormData().Name != "Milo" {
		t.Fatalf("expected modal open and form intact")
	}
	if n := len(svc.List(ctx)); n != 0 {
		t.Fatalf("nothing should be saved, got %d", n)
	}
}

func TestService_Create_WeightParsing(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	in := rexForm()
	in.Weight = "heavy"
	p, err := svc.Create(ctx, in)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if p.Weight != 0 {
		t.Fatalf("expected non-numeric weight to become 0, got %v", p.Weight)
	}

	in.Weight = "-3"
	if _, err := svc.Create(ctx, in); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected negative weight rejected, got %v", err)
	}
}

func TestService_Create_AppendsInOrder(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	for _, name := range []string{"A", "B", "C"} {
		in := rexForm()
		in.Name = name
		if _, err := svc.Create(ctx, in); err != nil {
			t.Fatalf("Create %s: %v", name, err)
		}
	}

	items := svc.List(ctx)
	if items[0].Name != "A" || items[2].Name != "C" {
		t.Fatalf("expected append order, got %#v", items)
	}
	first, _ := svc.FirstID(ctx)
	if first != items[0].ID {
		t.Fatalf("FirstID should be the oldest pet")
	}
}

func TestService_Delete_PreservesOrderOfOthers(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	var created []Pet
	for _, name := range []string{"A", "B", "C"} {
		in := rexForm()
		in.Name = name
		p, _ := svc.Create(ctx, in)
		created = append(created, p)
	}

	if err := svc.Delete(ctx, created[1].ID, prompt.Static(true)); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	items := svc.List(ctx)
	if len(items) != 2 || items[0].Name != "A" || items[1].Name != "C" {
		t.Fatalf("expected [A C], got %#v", items)
	}
}

func TestService_Delete_DeclinedChangesNothing(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)
	dep := &fakeDependent{}
	svc.RegisterDependents(dep)

	p, _ := svc.Create(ctx, rexForm())

	err := svc.Delete(ctx, p.ID, prompt.Static(false))
	if !errors.Is(err, prompt.ErrNotConfirmed) {
		t.Fatalf("expected ErrNotConfirmed, got %v", err)
	}
	var d *prompt.DeclinedError
	if !errors.As(err, &d) || d.Message != "Are you sure you want to delete Rex? This will also delete all related records." {
		t.Fatalf("unexpected prompt %#v", d)
	}
	if len(svc.List(ctx)) != 1 || len(dep.deleted) != 0 {
		t.Fatalf("declined delete must not change anything")
	}
}

func TestService_Delete_CascadesToDependents(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)
	feeding, health := &fakeDependent{}, &fakeDependent{}
	svc.RegisterDependents(feeding, health)

	p, _ := svc.Create(ctx, rexForm())
	if err := svc.Delete(ctx, p.ID, prompt.Static(true)); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	if len(feeding.deleted) != 1 || feeding.deleted[0] != p.ID || len(health.deleted) != 1 {
		t.Fatalf("expected cascade to both dependents, got %v %v", feeding.deleted, health.deleted)
	}
}

func TestService_Delete_UnknownID(t *testing.T) {
	svc, _ := newTestService(t)

	err := svc.Delete(context.Background(), "nope", prompt.Static(true))
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestService_Cancel_ClearsEditing(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)
	p, _ := svc.Create(ctx, rexForm())

	_ = svc.StartEdit(ctx, p.ID)
	if _, ok := svc.Editing(); !ok {
		t.Fatalf("expected editing reference")
	}

	svc.Cancel()
	if _, ok := svc.Editing(); ok || svc.ModalVisible() {
		t.Fatalf("expected no editing and modal closed")
	}
	if svc.FormData() != EmptyForm() {
		t.Fatalf("expected form reset to baseline")
	}
}

func TestService_PersistsAcrossAccessors(t *testing.T) {
	ctx := context.Background()
	svc, store := newTestService(t)

	p, _ := svc.Create(ctx, rexForm())
	if err := svc.pets.Flush(ctx); err != nil {
		t.Fatalf("Flush: %v", err)
	}

	acc := state.New[[]Pet](store, StorageKey, []Pet{})
	defer acc.Close(ctx)
	items := acc.Load(ctx)
	if len(items) != 1 || items[0].ID != p.ID {
		t.Fatalf("expected stored pet, got %#v", items)
	}
}

func TestPet_Age(t *testing.T) {
	now := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)

	cases := []struct {
		dob  string
		want int
	}{
		{"2020-01-01", 5},
		{"2020-06-15", 5},
		{"2020-06-16", 4},
		{"2025-12-01", 0},
	}
	for _, c := range cases {
		got, err := Pet{DateOfBirth: c.dob}.Age(now)
		if err != nil || got != c.want {
			t.Fatalf("Age(%s) = %d, %v; want %d", c.dob, got, err, c.want)
		}
	}

	if _, err := (Pet{}).Age(now); !errors.Is(err, ErrNoBirthDate) {
		t.Fatalf("expected ErrNoBirthDate, got %v", err)
	}
}

func TestService_ReadErrorDoesNotLoseStoredPets(t *testing.T) {
	ctx := context.Background()
	svc, store := newTestService(t)

	seed, _ := json.Marshal([]Pet{{ID: "p1", Name: "Luna"}, {ID: "p2", Name: "Milo"}})
	if err := store.Set(ctx, StorageKey, string(seed)); err != nil {
		t.Fatalf("seed: %v", err)
	}

	// la primera lectura falla (contexto cancelado) y no cuenta como colección vacía
	canceled, cancel := context.WithCancel(ctx)
	cancel()
	if n := len(svc.List(canceled)); n != 0 {
		t.Fatalf("expected empty view while unresolved, got %d", n)
	}
	if !svc.Loading() {
		t.Fatalf("a failed read must leave the collection loading")
	}
	if _, err := svc.Create(canceled, rexForm()); !errors.Is(err, state.ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}

	if _, err := svc.Create(ctx, rexForm()); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := svc.pets.Flush(ctx); err != nil {
		t.Fatalf("Flush: %v", err)
	}

	raw, _, _ := store.Get(ctx, StorageKey)
	var stored []Pet
	if err := json.Unmarshal([]byte(raw), &stored); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(stored) != 3 || stored[0].ID != "p1" || stored[2].Name != "Rex" {
		t.Fatalf("expected [Luna Milo Rex], got %#v", stored)
	}
}

func TestService_Delete_DependentFailureKeepsPet(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)
	broken := &fakeDependent{err: errors.New("database is locked")}
	svc.RegisterDependents(broken)

	p, _ := svc.Create(ctx, rexForm())
	if err := svc.Delete(ctx, p.ID, prompt.Static(true)); err == nil {
		t.Fatalf("expected cascade error")
	}
	if _, err := svc.GetByID(ctx, p.ID); err != nil {
		t.Fatalf("pet must survive a failed cascade, got %v", err)
	}

	broken.err = nil
	if err := svc.Delete(ctx, p.ID, prompt.Static(true)); err != nil {
		t.Fatalf("retry Delete: %v", err)
	}
	if _, err := svc.GetByID(ctx, p.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound after retry, got %v", err)
	}
	if len(broken.deleted) != 1 || broken.deleted[0] != p.ID {
		t.Fatalf("expected dependent cleaned on retry, got %v", broken.deleted)
	}
}
