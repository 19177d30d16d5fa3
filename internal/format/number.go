package format

import (
	"errors"
	"math"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var (
	ErrInvalidPrice     = errors.New("Preço inválido! Use números (ex: 5.99 ou 5,99)")
	ErrNonPositivePrice = errors.New("O preço deve ser maior que zero!")
	ErrInvalidQuantity  = errors.New("Quantidade inválida! Use números (ex: 1 ou 0,5)")
	ErrNonPositiveQty   = errors.New("A quantidade deve ser maior que zero!")
)

var brl = message.NewPrinter(language.BrazilianPortuguese)

// ParseDecimal reads a number typed with either a comma or a dot as the
// decimal separator.
func ParseDecimal(s string) (decimal.Decimal, error) {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", ".")
	if s == "" {
		return decimal.Zero, errors.New("empty number")
	}
	return decimal.NewFromString(s)
}

// ValidatePrice parses a price and requires it to be strictly positive.
func ValidatePrice(s string) (decimal.Decimal, error) {
	v, err := ParseDecimal(s)
	if err != nil {
		return decimal.Zero, ErrInvalidPrice
	}
	if !v.IsPositive() {
		return decimal.Zero, ErrNonPositivePrice
	}
	return v, nil
}

// ValidateQuantity parses a purchase quantity and requires it to be
// strictly positive.
func ValidateQuantity(s string) (decimal.Decimal, error) {
	v, err := ParseDecimal(s)
	if err != nil {
		return decimal.Zero, ErrInvalidQuantity
	}
	if !v.IsPositive() {
		return decimal.Zero, ErrNonPositiveQty
	}
	return v, nil
}

// UnitPrice is price / quantity, zero when quantity is not positive.
func UnitPrice(price, quantity decimal.Decimal) decimal.Decimal {
	if !quantity.IsPositive() {
		return decimal.Zero
	}
	return price.Div(quantity)
}

// Currency renders v as Brazilian reais, e.g. "R$ 1.234,50".
func Currency(v decimal.Decimal) string {
	f, _ := v.Round(2).Float64()
	return "R$ " + brl.Sprint(number.Decimal(f, number.Scale(2)))
}

// CurrencyFloat is Currency for values that may be missing; nil, NaN and
// infinities render as "R$ 0,00".
func CurrencyFloat(v *float64) string {
	if v == nil || math.IsNaN(*v) || math.IsInf(*v, 0) {
		return Currency(decimal.Zero)
	}
	return Currency(decimal.NewFromFloat(*v))
}
