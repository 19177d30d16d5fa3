package model

// Category classifies products. Names are unique.
type Category struct {
	ID   uint   `gorm:"primaryKey;autoIncrement"`
	Nome string `gorm:"column:nome;uniqueIndex;not null"`
}

// TableName keeps the table name used by existing database files.
func (Category) TableName() string { return "categorias" }

// DefaultCategories is seeded on every start; duplicates are ignored.
var DefaultCategories = []string{
	"Hortifrúti", "Laticínios", "Carnes", "Padaria",
	"Limpeza", "Higiene", "Bebidas", "Enlatados",
	"Grãos e Cereais", "Congelados", "Doces", "Outros",
}

// Uncategorized is the label shown for products without a category.
const Uncategorized = "Sem categoria"
