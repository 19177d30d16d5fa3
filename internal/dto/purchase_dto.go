package dto

import (
	"github.com/matheuseschaves/supermarket-tracker/internal/model"

	"github.com/shopspring/decimal"
)

// ─── Request DTOs ────────────────────────────────────────────────────────────

// RegistrarCompraRequest carries the purchase form as typed by the user.
// Preco and Quantidade accept either decimal separator; DataCompra is
// DD/MM/YYYY. Produto may be an autocomplete label "Nome (Marca)".
type RegistrarCompraRequest struct {
	Produto      string `json:"produto"`
	Supermercado string `json:"supermercado"`
	Preco        string `json:"preco"`
	Quantidade   string `json:"quantidade"`
	DataCompra   string `json:"data_compra"`
	Promocao     bool   `json:"promocao"`
	QuemPagou    string `json:"quem_pagou"`
	Observacoes  string `json:"observacoes"`
}

// ─── Filter ──────────────────────────────────────────────────────────────────

// CompraFilter narrows the purchase listing. Produto and Supermercado are
// substring matches; Limite <= 0 means no limit.
type CompraFilter struct {
	Produto      string `form:"produto"`
	Supermercado string `form:"supermercado"`
	Limite       int    `form:"limit"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type CompraResponse struct {
	ID            uint            `json:"id"`
	DataCompra    model.Date      `json:"data_compra"`
	Produto       string          `json:"produto"`
	Supermercado  string          `json:"supermercado"`
	Preco         decimal.Decimal `json:"preco"`
	Quantidade    decimal.Decimal `json:"quantidade"`
	PrecoUnitario decimal.Decimal `json:"preco_unitario"`
	Promocao      bool            `json:"promocao"`
	QuemPagou     string          `json:"quem_pagou"`
	Observacoes   string          `json:"observacoes,omitempty"`
}

type CompraListResponse struct {
	Data  []CompraResponse `json:"data"`
	Total int              `json:"total"`
}
