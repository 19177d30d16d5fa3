package infra_test

import (
	"path/filepath"
	"testing"

	"github.com/matheuseschaves/supermarket-tracker/internal/infra"
	"github.com/matheuseschaves/supermarket-tracker/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func categoryNames(t *testing.T, db *gorm.DB) []string {
	t.Helper()
	var names []string
	require.NoError(t, db.Model(&model.Category{}).Order("id asc").Pluck("nome", &names).Error)
	return names
}

func TestNewDatabaseCreatesSchemaAndSeeds(t *testing.T) {
	db, err := infra.NewDatabase(":memory:")
	require.NoError(t, err)
	defer infra.Close(db)

	for table, want := range map[string][]string{
		"supermercados": {"id", "nome", "endereco", "data_cadastro"},
		"categorias":    {"id", "nome"},
		"produtos":      {"id", "nome", "categoria_id", "marca", "unidade_medida", "qnt_medida"},
		"compras": {"id", "produto_id", "supermercado_id", "preco", "quantidade",
			"data_compra", "promoção", "quem_pagou", "observacoes"},
	} {
		cols, err := infra.Columns(db, table)
		require.NoError(t, err)
		assert.Equal(t, want, cols, table)
	}

	assert.Equal(t, model.DefaultCategories, categoryNames(t, db))
}

func TestMigrateIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "supermercado.db")

	db, err := infra.NewDatabase(path)
	require.NoError(t, err)
	require.NoError(t, db.Exec("INSERT INTO categorias (nome) VALUES ('Pet')").Error)
	before := categoryNames(t, db)
	colsBefore, err := infra.Columns(db, "compras")
	require.NoError(t, err)

	require.NoError(t, infra.Migrate(db))
	require.NoError(t, infra.Close(db))

	db, err = infra.NewDatabase(path)
	require.NoError(t, err)
	defer infra.Close(db)

	assert.Equal(t, before, categoryNames(t, db))
	colsAfter, err := infra.Columns(db, "compras")
	require.NoError(t, err)
	assert.Equal(t, colsBefore, colsAfter)
}

func TestMigratePatchesLegacyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "legacy.db")

	// first-release layout, before measure quantity and payer existed
	legacy, err := gorm.Open(rawSQLite(path), &gorm.Config{})
	require.NoError(t, err)
	for _, stmt := range []string{
		`CREATE TABLE supermercados (id INTEGER PRIMARY KEY AUTOINCREMENT, nome TEXT NOT NULL, endereco TEXT, data_cadastro TIMESTAMP DEFAULT CURRENT_TIMESTAMP)`,
		`CREATE TABLE categorias (id INTEGER PRIMARY KEY AUTOINCREMENT, nome TEXT NOT NULL UNIQUE)`,
		`CREATE TABLE produtos (id INTEGER PRIMARY KEY AUTOINCREMENT, nome TEXT NOT NULL, categoria_id INTEGER, marca TEXT, unidade_medida TEXT NOT NULL DEFAULT 'un')`,
		`CREATE TABLE compras (id INTEGER PRIMARY KEY AUTOINCREMENT, produto_id INTEGER NOT NULL, supermercado_id INTEGER NOT NULL, preco REAL NOT NULL, quantidade REAL DEFAULT 1, data_compra DATE NOT NULL, "promoção" BOOLEAN DEFAULT 0, observacoes TEXT)`,
		`INSERT INTO categorias (nome) VALUES ('Laticínios')`,
		`INSERT INTO produtos (nome, marca) VALUES ('Leite', 'Marca X')`,
		`INSERT INTO supermercados (nome) VALUES ('Extra')`,
		`INSERT INTO compras (produto_id, supermercado_id, preco, data_compra) VALUES (1, 1, 4.5, '2023-05-01')`,
	} {
		require.NoError(t, legacy.Exec(stmt).Error)
	}
	current, err := infra.SchemaCurrent(legacy)
	require.NoError(t, err)
	assert.False(t, current)
	sqlDB, err := legacy.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())

	db, err := infra.NewDatabase(path)
	require.NoError(t, err)
	defer infra.Close(db)

	cols, err := infra.Columns(db, "produtos")
	require.NoError(t, err)
	assert.Contains(t, cols, "qnt_medida")
	cols, err = infra.Columns(db, "compras")
	require.NoError(t, err)
	assert.Contains(t, cols, "quem_pagou")
	current, err = infra.SchemaCurrent(db)
	require.NoError(t, err)
	assert.True(t, current)

	var p model.Purchase
	require.NoError(t, db.First(&p).Error)
	assert.Equal(t, "2023-05-01", p.DataCompra.String())
	assert.Equal(t, "", p.QuemPagou)
	assert.Equal(t, "4.5", p.Preco.String())

	var prod model.Product
	require.NoError(t, db.First(&prod).Error)
	require.NotNil(t, prod.QntMedida)
	assert.Equal(t, "", *prod.QntMedida)

	names := categoryNames(t, db)
	assert.Equal(t, "Laticínios", names[0])
	assert.Len(t, names, len(model.DefaultCategories))
}

func TestForeignKeysEnforced(t *testing.T) {
	db, err := infra.NewDatabase(":memory:")
	require.NoError(t, err)
	defer infra.Close(db)

	err = db.Exec("INSERT INTO compras (produto_id, supermercado_id, preco, data_compra) VALUES (99, 99, 1, '2024-01-01')").Error
	assert.Error(t, err)
}

func TestFoldIsUnicodeAware(t *testing.T) {
	db, err := infra.NewDatabase(":memory:")
	require.NoError(t, err)
	defer infra.Close(db)

	var folded string
	require.NoError(t, db.Raw("SELECT fold(?)", "AÇÚCAR Cristal").Scan(&folded).Error)
	assert.Equal(t, "açúcar cristal", folded)
}
