package infra

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/matheuseschaves/supermarket-tracker/internal/model"

	"github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog/log"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// DriverName is the sqlite3 driver registered with the SQL helper
// functions used by the repositories.
const DriverName = "sqlite3_tracker"

func init() {
	sql.Register(DriverName, &sqlite3.SQLiteDriver{
		ConnectHook: func(conn *sqlite3.SQLiteConn) error {
			// fold lowercases full Unicode text; the built-in lower() and
			// LIKE only fold ASCII, which misses names such as "AÇÚCAR".
			return conn.RegisterFunc("fold", strings.ToLower, true)
		},
	})
}

// NewDatabase opens the SQLite file at path (":memory:" for an in-process
// database), creates the schema when absent, seeds the default categories
// and applies the additive column patches. It is safe to call on every start.
func NewDatabase(path string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.New(sqlite.Config{
		DriverName: DriverName,
		DSN:        dsn(path),
	}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	// One connection: the file has a single writer, and an in-memory
	// database only lives as long as its connection.
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)
	sqlDB.SetConnMaxLifetime(0)

	if err := Migrate(db); err != nil {
		_ = sqlDB.Close()
		return nil, err
	}
	return db, nil
}

// Close releases the underlying connection.
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func dsn(path string) string {
	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}
	return path + sep + "_foreign_keys=on"
}

// Migrate runs schema creation, category seeding and column patches.
func Migrate(db *gorm.DB) error {
	if err := createTables(db); err != nil {
		return fmt.Errorf("create tables: %w", err)
	}
	if err := seedCategories(db); err != nil {
		return fmt.Errorf("seed categories: %w", err)
	}
	if err := applyColumnPatches(db); err != nil {
		return fmt.Errorf("column patches: %w", err)
	}
	return nil
}

// createTables mirrors the schema of existing database files. GORM
// AutoMigrate is not used: it would try to reconcile column types and
// constraints of files created by earlier versions.
func createTables(db *gorm.DB) error {
	ddl := []struct{ descr, sql string }{
		{"supermercados", `
CREATE TABLE IF NOT EXISTS supermercados (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    nome TEXT NOT NULL,
    endereco TEXT,
    data_cadastro TIMESTAMP DEFAULT CURRENT_TIMESTAMP
)`},
		{"categorias", `
CREATE TABLE IF NOT EXISTS categorias (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    nome TEXT NOT NULL UNIQUE
)`},
		{"produtos", `
CREATE TABLE IF NOT EXISTS produtos (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    nome TEXT NOT NULL,
    categoria_id INTEGER,
    marca TEXT,
    unidade_medida TEXT NOT NULL DEFAULT 'un',
    qnt_medida TEXT DEFAULT '',
    FOREIGN KEY (categoria_id) REFERENCES categorias(id)
)`},
		{"compras", `
CREATE TABLE IF NOT EXISTS compras (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    produto_id INTEGER NOT NULL,
    supermercado_id INTEGER NOT NULL,
    preco REAL NOT NULL,
    quantidade REAL DEFAULT 1,
    data_compra DATE NOT NULL,
    "promoção" BOOLEAN DEFAULT 0,
    quem_pagou TEXT DEFAULT '',
    observacoes TEXT,
    FOREIGN KEY (produto_id) REFERENCES produtos(id),
    FOREIGN KEY (supermercado_id) REFERENCES supermercados(id)
)`},
	}
	for _, t := range ddl {
		if err := db.Exec(t.sql).Error; err != nil {
			return fmt.Errorf("table %q: %w", t.descr, err)
		}
	}
	return nil
}

func seedCategories(db *gorm.DB) error {
	return db.Transaction(func(tx *gorm.DB) error {
		for _, nome := range model.DefaultCategories {
			if err := tx.Exec("INSERT OR IGNORE INTO categorias (nome) VALUES (?)", nome).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// columnPatch is a column added after the first release. Files created
// before it lack the column; it is added with the given default.
type columnPatch struct {
	table, column, definition string
}

var columnPatches = []columnPatch{
	{"produtos", "qnt_medida", "TEXT DEFAULT ''"},
	{"compras", "quem_pagou", "TEXT DEFAULT ''"},
}

// applyColumnPatches adds missing columns. Each patch is guarded by a
// PRAGMA table_info check so re-running on a patched file is a no-op.
func applyColumnPatches(db *gorm.DB) error {
	for _, p := range columnPatches {
		exists, err := hasColumn(db, p.table, p.column)
		if err != nil {
			return fmt.Errorf("inspect %s.%s: %w", p.table, p.column, err)
		}
		if exists {
			continue
		}
		log.Info().Str("table", p.table).Str("column", p.column).Msg("adding missing column")
		stmt := fmt.Sprintf("ALTER TABLE %s ADD COLUMN %s %s", p.table, p.column, p.definition)
		if err := db.Exec(stmt).Error; err != nil {
			return fmt.Errorf("patch %s.%s: %w", p.table, p.column, err)
		}
	}
	return nil
}

type tableColumn struct {
	CID       int     `gorm:"column:cid"`
	Name      string  `gorm:"column:name"`
	Type      string  `gorm:"column:type"`
	NotNull   int     `gorm:"column:notnull"`
	DfltValue *string `gorm:"column:dflt_value"`
	PK        int     `gorm:"column:pk"`
}

// Columns lists the column names of table in declaration order.
func Columns(db *gorm.DB, table string) ([]string, error) {
	var cols []tableColumn
	if err := db.Raw(fmt.Sprintf("PRAGMA table_info(%s)", table)).Scan(&cols).Error; err != nil {
		return nil, err
	}
	names := make([]string, 0, len(cols))
	for _, c := range cols {
		names = append(names, c.Name)
	}
	return names, nil
}

func hasColumn(db *gorm.DB, table, column string) (bool, error) {
	names, err := Columns(db, table)
	if err != nil {
		return false, err
	}
	for _, n := range names {
		if n == column {
			return true, nil
		}
	}
	return false, nil
}

// SchemaCurrent reports whether every column patch is present.
func SchemaCurrent(db *gorm.DB) (bool, error) {
	for _, p := range columnPatches {
		ok, err := hasColumn(db, p.table, p.column)
		if err != nil || !ok {
			return false, err
		}
	}
	return true, nil
}
