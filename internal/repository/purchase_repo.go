package repository

import (
	"context"
	"database/sql"

	"github.com/matheuseschaves/supermarket-tracker/internal/dto"
	"github.com/matheuseschaves/supermarket-tracker/internal/model"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// PurchaseRow is a purchase joined with its product and store names.
type PurchaseRow struct {
	ID           uint            `gorm:"column:id"`
	DataCompra   model.Date      `gorm:"column:data_compra"`
	Produto      string          `gorm:"column:produto"`
	Marca        string          `gorm:"column:marca"`
	Supermercado string          `gorm:"column:supermercado"`
	Preco        decimal.Decimal `gorm:"column:preco"`
	Quantidade   decimal.Decimal `gorm:"column:quantidade"`
	Promocao     bool            `gorm:"column:promocao"`
	QuemPagou    string          `gorm:"column:quem_pagou"`
	Observacoes  string          `gorm:"column:observacoes"`
}

// PurchaseStats aggregates unit prices (price / quantity). Purchases with a
// non-positive quantity have no unit price and are left out of min, max and
// average but still counted.
type PurchaseStats struct {
	Count        int64
	MinUnitPrice sql.NullFloat64
	MaxUnitPrice sql.NullFloat64
	AvgUnitPrice sql.NullFloat64
	FirstDate    sql.NullString
	LastDate     sql.NullString
}

// SeriesRow is one chart sample.
type SeriesRow struct {
	DataCompra    model.Date `gorm:"column:data_compra"`
	PrecoUnitario float64    `gorm:"column:preco_unitario"`
	Supermercado  string     `gorm:"column:supermercado"`
}

// PurchaseRepository defines the data access contract for purchases.
// There is no update or delete path: purchases only disappear through
// ProductRepository.DeletePurchasesTx.
type PurchaseRepository interface {
	CreateTx(tx *gorm.DB, p *model.Purchase) error
	// Query lists purchases newest first, filtered by product and store
	// name substrings.
	Query(ctx context.Context, filter dto.CompraFilter) ([]PurchaseRow, error)
	// Stats aggregates purchases of products whose name contains produto.
	Stats(ctx context.Context, produto string) (*PurchaseStats, error)
	// Series lists unit prices of products whose name contains produto,
	// oldest first.
	Series(ctx context.Context, produto string) ([]SeriesRow, error)
	// DistinctPayers returns the non-empty payer values in use, sorted.
	DistinctPayers(ctx context.Context) ([]string, error)
	Count(ctx context.Context) (int64, error)
}

type purchaseRepo struct{ db *gorm.DB }

func NewPurchaseRepository(db *gorm.DB) PurchaseRepository { return &purchaseRepo{db: db} }

// unitPriceExpr yields NULL instead of dividing by a non-positive quantity.
const unitPriceExpr = "c.preco / (CASE WHEN c.quantidade > 0 THEN c.quantidade END)"

func (r *purchaseRepo) CreateTx(tx *gorm.DB, p *model.Purchase) error {
	return tx.Omit("Produto", "Supermercado").Create(p).Error
}

func (r *purchaseRepo) Query(ctx context.Context, filter dto.CompraFilter) ([]PurchaseRow, error) {
	q := r.db.WithContext(ctx).
		Table("compras c").
		Select(`c.id, c.data_compra, p.nome AS produto, COALESCE(p.marca, '') AS marca,
			s.nome AS supermercado, c.preco, COALESCE(c.quantidade, 1) AS quantidade,
			COALESCE(c."promoção", 0) AS promocao, COALESCE(c.quem_pagou, '') AS quem_pagou,
			COALESCE(c.observacoes, '') AS observacoes`).
		Joins("JOIN produtos p ON c.produto_id = p.id").
		Joins("JOIN supermercados s ON c.supermercado_id = s.id")

	if filter.Produto != "" {
		q = q.Where(`fold(p.nome) LIKE ? ESCAPE '\'`, containsPattern(filter.Produto))
	}
	if filter.Supermercado != "" {
		q = q.Where(`fold(s.nome) LIKE ? ESCAPE '\'`, containsPattern(filter.Supermercado))
	}
	q = q.Order("c.data_compra DESC, c.id DESC")
	if filter.Limite > 0 {
		q = q.Limit(filter.Limite)
	}

	var rows []PurchaseRow
	err := q.Scan(&rows).Error
	return rows, err
}

func (r *purchaseRepo) Stats(ctx context.Context, produto string) (*PurchaseStats, error) {
	var st PurchaseStats
	row := r.db.WithContext(ctx).Raw(`
SELECT
    COUNT(*),
    MIN(`+unitPriceExpr+`),
    MAX(`+unitPriceExpr+`),
    AVG(`+unitPriceExpr+`),
    MIN(c.data_compra),
    MAX(c.data_compra)
FROM compras c
JOIN produtos p ON c.produto_id = p.id
WHERE fold(p.nome) LIKE ? ESCAPE '\'`, containsPattern(produto)).Row()
	if err := row.Scan(&st.Count, &st.MinUnitPrice, &st.MaxUnitPrice, &st.AvgUnitPrice, &st.FirstDate, &st.LastDate); err != nil {
		return nil, err
	}
	return &st, nil
}

func (r *purchaseRepo) Series(ctx context.Context, produto string) ([]SeriesRow, error) {
	var rows []SeriesRow
	err := r.db.WithContext(ctx).
		Table("compras c").
		Select("c.data_compra, COALESCE("+unitPriceExpr+", 0) AS preco_unitario, s.nome AS supermercado").
		Joins("JOIN produtos p ON c.produto_id = p.id").
		Joins("JOIN supermercados s ON c.supermercado_id = s.id").
		Where(`fold(p.nome) LIKE ? ESCAPE '\'`, containsPattern(produto)).
		Order("c.data_compra ASC, c.id ASC").
		Scan(&rows).Error
	return rows, err
}

func (r *purchaseRepo) DistinctPayers(ctx context.Context) ([]string, error) {
	var payers []string
	err := r.db.WithContext(ctx).
		Model(&model.Purchase{}).
		Where("quem_pagou IS NOT NULL AND quem_pagou != ''").
		Distinct().
		Order("quem_pagou asc").
		Pluck("quem_pagou", &payers).Error
	return payers, err
}

func (r *purchaseRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Purchase{}).Count(&n).Error
	return n, err
}
