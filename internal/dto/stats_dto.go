package dto

import (
	"github.com/matheuseschaves/supermarket-tracker/internal/model"

	"github.com/shopspring/decimal"
)

// EstatisticasResponse aggregates unit prices of every purchase whose
// product name contains Produto. With TotalCompras == 0 the price and date
// fields are nil.
type EstatisticasResponse struct {
	Produto        string           `json:"produto"`
	TotalCompras   int64            `json:"total_compras"`
	MenorPreco     *decimal.Decimal `json:"menor_preco"`
	MaiorPreco     *decimal.Decimal `json:"maior_preco"`
	PrecoMedio     *decimal.Decimal `json:"preco_medio"`
	PrimeiraCompra *model.Date      `json:"primeira_compra"`
	UltimaCompra   *model.Date      `json:"ultima_compra"`
}

// PricePoint is one sample of the price-evolution chart.
type PricePoint struct {
	DataCompra    model.Date      `json:"data_compra"`
	PrecoUnitario decimal.Decimal `json:"preco_unitario"`
	Supermercado  string          `json:"supermercado"`
}

type HistoricoPrecoResponse struct {
	Produto string       `json:"produto"`
	Data    []PricePoint `json:"data"`
}
