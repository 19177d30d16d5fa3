package model

import "github.com/shopspring/decimal"

// Purchase is one price observation of a product at a store on a day.
// Rows are immutable; they only disappear through a confirmed product
// cascade delete.
type Purchase struct {
	ID             uint            `gorm:"primaryKey;autoIncrement"`
	ProdutoID      uint            `gorm:"column:produto_id;not null"`
	SupermercadoID uint            `gorm:"column:supermercado_id;not null"`
	Preco          decimal.Decimal `gorm:"column:preco;type:real;not null"`
	Quantidade     decimal.Decimal `gorm:"column:quantidade;type:real"`
	DataCompra     Date            `gorm:"column:data_compra;type:date;not null"`
	Promocao       bool            `gorm:"column:promoção"`
	QuemPagou      string          `gorm:"column:quem_pagou"`
	Observacoes    string          `gorm:"column:observacoes"`

	Produto      *Product `gorm:"foreignKey:ProdutoID"`
	Supermercado *Store   `gorm:"foreignKey:SupermercadoID"`
}

func (Purchase) TableName() string { return "compras" }

// UnitPrice is price divided by quantity, or zero when quantity is not
// positive.
func (p Purchase) UnitPrice() decimal.Decimal {
	if !p.Quantidade.IsPositive() {
		return decimal.Zero
	}
	return p.Preco.Div(p.Quantidade)
}
