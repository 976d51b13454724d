package pets

import (
	"errors"
	"strings"
	"time"
)

const DateLayout = "2006-01-02"

// Species define las especies soportadas.
// @Enum Cat, Dog, Hamster
type Species string

const (
	SpeciesCat     Species = "Cat"
	SpeciesDog     Species = "Dog"
	SpeciesHamster Species = "Hamster"
)

func (s Species) Valid() bool {
	switch s {
	case SpeciesCat, SpeciesDog, SpeciesHamster:
		return true
	}
	return false
}

// Gender define el sexo de la mascota.
// @Enum Male, Female
type Gender string

const (
	GenderMale   Gender = "Male"
	GenderFemale Gender = "Female"
)

func (g Gender) Valid() bool {
	return g == GenderMale || g == GenderFemale
}

// Pet es el perfil guardado bajo PETS_KEY.
type Pet struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Species     Species `json:"species"`
	Gender      Gender  `json:"gender"`
	Breed       string  `json:"breed"`
	DateOfBirth string  `json:"dateOfBirth"` // YYYY-MM-DD
	Weight      float64 `json:"weight"`
	Notes       string  `json:"notes"`
}

var ErrNoBirthDate = errors.New("pet has no valid date of birth")

// Age son los años cumplidos a la fecha now.
func (p Pet) Age(now time.Time) (int, error) {
	dob, err := time.Parse(DateLayout, strings.TrimSpace(p.DateOfBirth))
	if err != nil {
		return 0, ErrNoBirthDate
	}

	years := now.Year() - dob.Year()
	if now.Month() < dob.Month() || (now.Month() == dob.Month() && now.Day() < dob.Day()) {
		years--
	}
	if years < 0 {
		years = 0
	}
	return years, nil
}

// Form es el formulario en edición. Weight va como texto, igual que lo
// escribe el usuario.
type Form struct {
	Name        string
	Species     Species
	Gender      Gender
	Breed       string
	DateOfBirth string
	Weight      string
	Notes       string
}

// EmptyForm es la base a la que vuelve ResetForm.
func EmptyForm() Form {
	return Form{Species: SpeciesCat, Gender: GenderMale}
}

// FormFrom carga un Pet existente en el formulario.
func FormFrom(p Pet) Form {
	return Form{
		Name:        p.Name,
		Species:     p.Species,
		Gender:      p.Gender,
		Breed:       p.Breed,
		DateOfBirth: p.DateOfBirth,
		Weight:      formatWeight(p.Weight),
		Notes:       p.Notes,
	}
}

// Accessors de campo para form.UpdateField.
func FieldName(f *Form) *string        { return &f.Name }
func FieldSpecies(f *Form) *Species    { return &f.Species }
func FieldGender(f *Form) *Gender      { return &f.Gender }
func FieldBreed(f *Form) *string       { return &f.Breed }
func FieldDateOfBirth(f *Form) *string { return &f.DateOfBirth }
func FieldWeight(f *Form) *string      { return &f.Weight }
func FieldNotes(f *Form) *string       { return &f.Notes }
