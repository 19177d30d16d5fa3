package repository

import (
	"context"
	"errors"
	"strings"

	"github.com/matheuseschaves/supermarket-tracker/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ProductRepository defines the data access contract for products.
// Services depend on this interface, not on the concrete GORM implementation.
type ProductRepository interface {
	Create(ctx context.Context, p *model.Product) error
	// Update writes every column, so nil pointers clear brand, measure and
	// category. Returns gorm.ErrRecordNotFound when no row has p.ID.
	Update(ctx context.Context, p *model.Product) error
	FindByID(ctx context.Context, id uint) (*model.Product, error)
	// List returns every product with its category, ordered by name.
	List(ctx context.Context) ([]model.Product, error)
	// Search matches term against name or brand, case-insensitively.
	Search(ctx context.Context, term string, limit int) ([]model.Product, error)
	CountPurchases(ctx context.Context, id uint) (int64, error)

	// FindIDByNameTx resolves a product by exact name, retrying against the
	// trimmed stored name. Among same-named products the one whose brand
	// equals marca wins. Returns gorm.ErrRecordNotFound when nothing matches.
	FindIDByNameTx(tx *gorm.DB, nome, marca string) (uint, error)

	// Used inside transactions; callers must pass the tx instance
	DeleteTx(tx *gorm.DB, id uint) (int64, error)
	DeletePurchasesTx(tx *gorm.DB, id uint) (int64, error)
	CountPurchasesTx(tx *gorm.DB, id uint) (int64, error)

	// DB exposes the underlying *gorm.DB so services can open transactions.
	DB() *gorm.DB
}

type productRepo struct{ db *gorm.DB }

func NewProductRepository(db *gorm.DB) ProductRepository { return &productRepo{db: db} }

func (r *productRepo) Create(ctx context.Context, p *model.Product) error {
	return r.db.WithContext(ctx).Omit("Categoria").Create(p).Error
}

func (r *productRepo) Update(ctx context.Context, p *model.Product) error {
	res := r.db.WithContext(ctx).Model(&model.Product{ID: p.ID}).
		Select("nome", "categoria_id", "marca", "unidade_medida", "qnt_medida").
		Updates(map[string]any{
			"nome":           p.Nome,
			"categoria_id":   p.CategoriaID,
			"marca":          p.Marca,
			"unidade_medida": p.UnidadeMedida,
			"qnt_medida":     p.QntMedida,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *productRepo) FindByID(ctx context.Context, id uint) (*model.Product, error) {
	var p model.Product
	err := r.db.WithContext(ctx).Preload("Categoria").First(&p, id).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *productRepo) List(ctx context.Context) ([]model.Product, error) {
	var list []model.Product
	err := r.db.WithContext(ctx).Preload("Categoria").Order("nome asc, id asc").Find(&list).Error
	return list, err
}

func (r *productRepo) Search(ctx context.Context, term string, limit int) ([]model.Product, error) {
	pattern := containsPattern(term)
	var list []model.Product
	err := r.db.WithContext(ctx).
		Where(`fold(nome) LIKE ? ESCAPE '\' OR fold(COALESCE(marca, '')) LIKE ? ESCAPE '\'`, pattern, pattern).
		Order("nome asc, id asc").
		Limit(limit).
		Find(&list).Error
	return list, err
}

func (r *productRepo) CountPurchases(ctx context.Context, id uint) (int64, error) {
	return r.CountPurchasesTx(r.db.WithContext(ctx), id)
}

func (r *productRepo) CountPurchasesTx(tx *gorm.DB, id uint) (int64, error) {
	var n int64
	err := tx.Model(&model.Purchase{}).Where("produto_id = ?", id).Count(&n).Error
	return n, err
}

func (r *productRepo) FindIDByNameTx(tx *gorm.DB, nome, marca string) (uint, error) {
	id, err := r.findIDWhere(tx, "nome = ?", nome, marca)
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return id, err
	}
	return r.findIDWhere(tx, "TRIM(nome) = ?", strings.TrimSpace(nome), marca)
}

func (r *productRepo) findIDWhere(tx *gorm.DB, cond, nome, marca string) (uint, error) {
	var ids []uint
	err := tx.Model(&model.Product{}).
		Where(cond, nome).
		Clauses(clause.OrderBy{Expression: clause.Expr{
			SQL:                "CASE WHEN COALESCE(marca, '') = ? THEN 0 ELSE 1 END, id ASC",
			Vars:               []any{marca},
			WithoutParentheses: true,
		}}).
		Limit(1).
		Pluck("id", &ids).Error
	if err != nil {
		return 0, err
	}
	if len(ids) == 0 {
		return 0, gorm.ErrRecordNotFound
	}
	return ids[0], nil
}

func (r *productRepo) DeleteTx(tx *gorm.DB, id uint) (int64, error) {
	res := tx.Delete(&model.Product{}, id)
	return res.RowsAffected, res.Error
}

func (r *productRepo) DeletePurchasesTx(tx *gorm.DB, id uint) (int64, error) {
	res := tx.Where("produto_id = ?", id).Delete(&model.Purchase{})
	return res.RowsAffected, res.Error
}

func (r *productRepo) DB() *gorm.DB { return r.db }
