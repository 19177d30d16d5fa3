package infra_test

import (
	"bytes"
	"testing"

	"github.com/matheuseschaves/supermarket-tracker/internal/dto"
	"github.com/matheuseschaves/supermarket-tracker/internal/infra"
	"github.com/matheuseschaves/supermarket-tracker/internal/model"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func point(day, price, store string) dto.PricePoint {
	d, err := model.ParseStoredDate(day)
	if err != nil {
		panic(err)
	}
	return dto.PricePoint{DataCompra: d, PrecoUnitario: decimal.RequireFromString(price), Supermercado: store}
}

func TestRenderPriceChart(t *testing.T) {
	points := []dto.PricePoint{
		point("2024-01-01", "4.50", "Carrefour"),
		point("2024-01-08", "4.80", "Extra"),
		point("2024-01-15", "4.20", "Carrefour"),
		point("2024-02-01", "5.10", "Padaria São João"),
	}

	var buf bytes.Buffer
	require.NoError(t, infra.RenderPriceChart(&buf, "Leite", points))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")))
	assert.Greater(t, buf.Len(), 500)
}

func TestRenderPriceChartSinglePoint(t *testing.T) {
	var buf bytes.Buffer
	err := infra.RenderPriceChart(&buf, "Pão", []dto.PricePoint{point("2024-01-01", "1", "Extra")})
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")))
}

func TestRenderPriceChartNoData(t *testing.T) {
	var buf bytes.Buffer
	assert.ErrorIs(t, infra.RenderPriceChart(&buf, "Leite", nil), infra.ErrNoChartData)
	assert.Zero(t, buf.Len())
}
