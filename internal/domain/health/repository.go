package health

import (
	"strings"
	"time"
)

// ListFilter acota la vista de una mascota. Campos vacíos no filtran.
type ListFilter struct {
	Types []Type
	From  *time.Time // fecha mínima, inclusive
	To    *time.Time // fecha máxima, inclusive
	Query string     // texto en título/notas, sin distinguir mayúsculas
	Limit int        // <= 0: sin tope
}

func (f ListFilter) match(r Record) bool {
	if len(f.Types) > 0 {
		ok := false
		for _, t := range f.Types {
			if r.Type == t {
				ok = true
				break
			}
		}
		if !ok {
			return false
		}
	}

	if f.From != nil || f.To != nil {
		d, err := time.Parse(dateLayout, r.Date)
		if err != nil {
			return false
		}
		if f.From != nil && d.Before(*f.From) {
			return false
		}
		if f.To != nil && d.After(*f.To) {
			return false
		}
	}

	if q := strings.ToLower(strings.TrimSpace(f.Query)); q != "" {
		if !strings.Contains(strings.ToLower(r.Title), q) && !strings.Contains(strings.ToLower(r.Notes), q) {
			return false
		}
	}
	return true
}
