package format

import (
	"testing"
	"time"

	"github.com/matheuseschaves/supermarket-tracker/internal/model"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidatePriceAcceptsBothSeparators(t *testing.T) {
	cases := map[string]string{
		"5.99":   "5.99",
		"5,99":   "5.99",
		" 12,5 ": "12.5",
		"0,01":   "0.01",
		"100":    "100",
	}
	for in, want := range cases {
		got, err := ValidatePrice(in)
		require.NoError(t, err, in)
		assert.True(t, decimal.RequireFromString(want).Equal(got), "%s -> %s", in, got)
	}
}

func TestValidatePriceRejects(t *testing.T) {
	for _, in := range []string{"0", "0,00", "-1", "-3.50"} {
		_, err := ValidatePrice(in)
		assert.ErrorIs(t, err, ErrNonPositivePrice, in)
	}
	for _, in := range []string{"", "abc", "1.234,56", "R$ 5", "5.9.9"} {
		_, err := ValidatePrice(in)
		assert.ErrorIs(t, err, ErrInvalidPrice, in)
	}
}

func TestValidateQuantity(t *testing.T) {
	q, err := ValidateQuantity("0,5")
	require.NoError(t, err)
	assert.Equal(t, "0.5", q.String())

	_, err = ValidateQuantity("0")
	assert.ErrorIs(t, err, ErrNonPositiveQty)
	_, err = ValidateQuantity("x")
	assert.ErrorIs(t, err, ErrInvalidQuantity)
}

func TestValidatePurchaseDate(t *testing.T) {
	today := model.Today()

	d, err := ValidatePurchaseDate(today.Display())
	require.NoError(t, err)
	assert.Equal(t, today.String(), d.String())

	d, err = ValidatePurchaseDate("01/02/2020")
	require.NoError(t, err)
	assert.Equal(t, "2020-02-01", d.String())

	d, err = ValidatePurchaseDate("5/3/2021")
	require.NoError(t, err)
	assert.Equal(t, "2021-03-05", d.String())

	tomorrow := time.Now().AddDate(0, 0, 1).Format("02/01/2006")
	_, err = ValidatePurchaseDate(tomorrow)
	assert.ErrorIs(t, err, ErrFutureDate)

	for _, in := range []string{"", "2020-02-01", "31/02/2020", "hoje", "01/13/2020"} {
		_, err = ValidatePurchaseDate(in)
		assert.ErrorIs(t, err, ErrInvalidDate, in)
	}
}

func TestValidatePurchaseDateAgainstFixedDay(t *testing.T) {
	today := model.NewDate(time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC))

	_, err := validatePurchaseDate("10/06/2024", today)
	assert.NoError(t, err)
	_, err = validatePurchaseDate("11/06/2024", today)
	assert.ErrorIs(t, err, ErrFutureDate)
}

func TestParseDate(t *testing.T) {
	got, ok := ParseDate("25/12/2023")
	require.True(t, ok)
	assert.Equal(t, time.Date(2023, 12, 25, 0, 0, 0, 0, time.UTC), got)

	got, ok = ParseDate("2023-12-25")
	require.True(t, ok)
	assert.Equal(t, time.Date(2023, 12, 25, 0, 0, 0, 0, time.UTC), got)

	_, ok = ParseDate("25-12-2023")
	assert.False(t, ok)
}

func TestCurrency(t *testing.T) {
	assert.Equal(t, "R$ 1.234,50", Currency(decimal.NewFromFloat(1234.5)))
	assert.Equal(t, "R$ 0,99", Currency(decimal.RequireFromString("0.99")))
	assert.Equal(t, "R$ 1.000.000,00", Currency(decimal.NewFromInt(1000000)))
	assert.Equal(t, "R$ 3,33", Currency(decimal.NewFromInt(10).Div(decimal.NewFromInt(3))))
}

func TestCurrencyFloatMissing(t *testing.T) {
	v := 1234.5
	assert.Equal(t, "R$ 1.234,50", CurrencyFloat(&v))
	assert.Equal(t, "R$ 0,00", CurrencyFloat(nil))

	nan := func() float64 { z := 0.0; return z / z }()
	assert.Equal(t, "R$ 0,00", CurrencyFloat(&nan))
}

func TestUnitPrice(t *testing.T) {
	assert.Equal(t, "2.5", UnitPrice(decimal.NewFromInt(5), decimal.NewFromInt(2)).String())
	assert.True(t, UnitPrice(decimal.NewFromInt(5), decimal.Zero).IsZero())
	assert.True(t, UnitPrice(decimal.NewFromInt(5), decimal.NewFromInt(-1)).IsZero())
}

func TestProductTextSplitting(t *testing.T) {
	assert.Equal(t, "Leite", ProductName("Leite (Marca X)"))
	assert.Equal(t, "Marca X", ProductBrand("Leite (Marca X)"))

	assert.Equal(t, "Leite", ProductName("Leite"))
	assert.Equal(t, "", ProductBrand("Leite"))

	assert.Equal(t, "Arroz", ProductName("  Arroz  "))
	assert.Equal(t, "", ProductName(""))
	assert.Equal(t, "", ProductBrand(""))
	assert.Equal(t, "Café (sem fecho", ProductName("Café (sem fecho"))
}

func TestProductLabel(t *testing.T) {
	assert.Equal(t, "Leite (Marca X)", ProductLabel("Leite", "Marca X"))
	assert.Equal(t, "Leite", ProductLabel("Leite", ""))
}
