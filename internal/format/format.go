// Package format turns stored bill values into their French display forms.
package format

import (
	"fmt"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/ElvisGalvez/bill-app/internal/models"
)

// CLDR short month names for the "fr" locale.
var frenchShortMonths = [12]string{
	"janv.", "févr.", "mars", "avr.", "mai", "juin",
	"juil.", "août", "sept.", "oct.", "nov.", "déc.",
}

// ParseDate parses a stored bill date (YYYY-MM-DD).
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid bill date %q: %w", s, err)
	}
	return t, nil
}

// Date formats a YYYY-MM-DD date as "<day> <Mon>. <yy>", for example
// "2023-02-01" becomes "1 Fév. 23".
func Date(s string) (string, error) {
	t, err := ParseDate(s)
	if err != nil {
		return "", err
	}

	// Casers keep state, so one per call.
	month := []rune(cases.Title(language.French).String(frenchShortMonths[t.Month()-1]))
	if len(month) > 3 {
		month = month[:3]
	}

	return fmt.Sprintf("%d %s. %02d", t.Day(), string(month), t.Year()%100), nil
}

// Status maps a bill status to its label. Unknown statuses pass through.
func Status(status models.BillStatus) string {
	switch status {
	case models.StatusPending:
		return "En attente"
	case models.StatusAccepted:
		return "Accepté"
	case models.StatusRefused:
		return "Refusé"
	default:
		return string(status)
	}
}
