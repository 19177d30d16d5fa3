package service_test

import (
	"context"
	"testing"

	"github.com/matheuseschaves/supermarket-tracker/internal/dto"
	"github.com/matheuseschaves/supermarket-tracker/internal/infra"
	"github.com/matheuseschaves/supermarket-tracker/internal/repository"
	"github.com/matheuseschaves/supermarket-tracker/internal/service"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// ── Fixture over an in-memory database ───────────────────────────────────────

type fixture struct {
	db         *gorm.DB
	categories service.CategoryService
	stores     service.StoreService
	products   service.ProductService
	purchases  service.PurchaseService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db, err := infra.NewDatabase(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = infra.Close(db) })

	categoryRepo := repository.NewCategoryRepository(db)
	storeRepo := repository.NewStoreRepository(db)
	productRepo := repository.NewProductRepository(db)
	purchaseRepo := repository.NewPurchaseRepository(db)

	return &fixture{
		db:         db,
		categories: service.NewCategoryService(categoryRepo),
		stores:     service.NewStoreService(storeRepo),
		products:   service.NewProductService(productRepo, categoryRepo, service.DefaultSearchLimit),
		purchases:  service.NewPurchaseService(purchaseRepo, productRepo, storeRepo),
	}
}

func (f *fixture) product(t *testing.T, nome, marca string) dto.ProdutoResponse {
	t.Helper()
	p, err := f.products.Salvar(context.Background(), dto.SalvarProdutoRequest{Nome: nome, Marca: marca, Categoria: "Laticínios"})
	require.NoError(t, err)
	return p
}

func (f *fixture) purchase(t *testing.T, produto, loja, preco, qtd, data string) dto.CompraResponse {
	t.Helper()
	c, err := f.purchases.Registrar(context.Background(), dto.RegistrarCompraRequest{
		Produto:      produto,
		Supermercado: loja,
		Preco:        preco,
		Quantidade:   qtd,
		DataCompra:   data,
	})
	require.NoError(t, err)
	return c
}

func (f *fixture) count(t *testing.T, table string) int64 {
	t.Helper()
	var n int64
	require.NoError(t, f.db.Table(table).Count(&n).Error)
	return n
}
