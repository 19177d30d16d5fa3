package format

import (
	"errors"
	"strings"
	"time"

	"github.com/matheuseschaves/supermarket-tracker/internal/model"
)

// Layouts accepted for user-typed dates. Single-digit day and month are
// allowed.
const (
	LayoutBR  = "2/1/2006"
	LayoutISO = "2006-01-02"
)

var (
	ErrInvalidDate = errors.New("Data inválida! Use o formato DD/MM/AAAA")
	ErrFutureDate  = errors.New("A data da compra não pode ser futura!")
)

// ParseDate reads DD/MM/YYYY, falling back to YYYY-MM-DD.
func ParseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(LayoutBR, s); err == nil {
		return t, true
	}
	if t, err := time.Parse(LayoutISO, s); err == nil {
		return t, true
	}
	return time.Time{}, false
}

// ValidatePurchaseDate accepts DD/MM/YYYY only and rejects days after today.
func ValidatePurchaseDate(s string) (model.Date, error) {
	return validatePurchaseDate(s, model.Today())
}

func validatePurchaseDate(s string, today model.Date) (model.Date, error) {
	t, err := time.Parse(LayoutBR, strings.TrimSpace(s))
	if err != nil {
		return model.Date{}, ErrInvalidDate
	}
	d := model.NewDate(t)
	if d.After(today) {
		return model.Date{}, ErrFutureDate
	}
	return d, nil
}
