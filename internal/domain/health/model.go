package health

// Type es la categoría del registro de salud.
// @Enum Vaccination, Medication, Vet Visit
type Type string

const (
	TypeVaccination Type = "Vaccination"
	TypeMedication  Type = "Medication"
	TypeVetVisit    Type = "Vet Visit"
)

func (t Type) Valid() bool {
	switch t {
	case TypeVaccination, TypeMedication, TypeVetVisit:
		return true
	}
	return false
}

// @Enum none, daily, weekly, monthly
type Repeat string

const (
	RepeatNone    Repeat = "none"
	RepeatDaily   Repeat = "daily"
	RepeatWeekly  Repeat = "weekly"
	RepeatMonthly Repeat = "monthly"
)

func (r Repeat) Valid() bool {
	switch r {
	case RepeatNone, RepeatDaily, RepeatWeekly, RepeatMonthly:
		return true
	}
	return false
}

// Record es una vacuna, medicación o visita, guardada bajo HEALTH_KEY.
type Record struct {
	ID     string `json:"id"`
	PetID  string `json:"petId"`
	Type   Type   `json:"type"`
	Title  string `json:"title"`
	Date   string `json:"date"` // YYYY-MM-DD
	Time   string `json:"time"` // HH:MM
	Repeat Repeat `json:"repeat"`
	Notes  string `json:"notes"`
}

type Form struct {
	Type   Type
	Title  string
	Date   string
	Time   string
	Repeat Repeat
	Notes  string
}

func EmptyForm() Form {
	return Form{Type: TypeVaccination, Repeat: RepeatNone}
}

func FormFrom(r Record) Form {
	return Form{
		Type:   r.Type,
		Title:  r.Title,
		Date:   r.Date,
		Time:   r.Time,
		Repeat: r.Repeat,
		Notes:  r.Notes,
	}
}

func FieldType(f *Form) *Type     { return &f.Type }
func FieldTitle(f *Form) *string  { return &f.Title }
func FieldDate(f *Form) *string   { return &f.Date }
func FieldTime(f *Form) *string   { return &f.Time }
func FieldRepeat(f *Form) *Repeat { return &f.Repeat }
func FieldNotes(f *Form) *string  { return &f.Notes }
