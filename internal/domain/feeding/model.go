package feeding

// Repeat indica si la comida se repite.
// @Enum none, daily, weekly
type Repeat string

const (
	RepeatNone   Repeat = "none"
	RepeatDaily  Repeat = "daily"
	RepeatWeekly Repeat = "weekly"
)

func (r Repeat) Valid() bool {
	switch r {
	case RepeatNone, RepeatDaily, RepeatWeekly:
		return true
	}
	return false
}

// Record es una comida registrada, guardada bajo FEEDING_KEY.
type Record struct {
	ID       string `json:"id"`
	PetID    string `json:"petId"`
	FoodType string `json:"foodType"`
	Quantity string `json:"quantity"`
	Date     string `json:"date"` // YYYY-MM-DD
	Time     string `json:"time"` // HH:MM
	Repeat   Repeat `json:"repeat"`
	Notes    string `json:"notes"`
}

// sortKey ordena por fecha+hora; los formatos fijos permiten comparar texto.
func (r Record) sortKey() string {
	return r.Date + "T" + r.Time
}

// Form es el formulario de la pantalla. La mascota no va acá: en alta sale
// de la mascota seleccionada y en edición se conserva la del registro.
type Form struct {
	FoodType string
	Quantity string
	Date     string
	Time     string
	Repeat   Repeat
	Notes    string
}

func EmptyForm() Form {
	return Form{Repeat: RepeatNone}
}

func FormFrom(r Record) Form {
	return Form{
		FoodType: r.FoodType,
		Quantity: r.Quantity,
		Date:     r.Date,
		Time:     r.Time,
		Repeat:   r.Repeat,
		Notes:    r.Notes,
	}
}

func FieldFoodType(f *Form) *string { return &f.FoodType }
func FieldQuantity(f *Form) *string { return &f.Quantity }
func FieldDate(f *Form) *string     { return &f.Date }
func FieldTime(f *Form) *string     { return &f.Time }
func FieldRepeat(f *Form) *Repeat   { return &f.Repeat }
func FieldNotes(f *Form) *string    { return &f.Notes }
