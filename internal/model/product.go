package model

// Product is a purchasable item. Brand and measure quantity are optional;
// the unit of measure defaults to "un".
type Product struct {
	ID            uint      `gorm:"primaryKey;autoIncrement"`
	Nome          string    `gorm:"column:nome;not null"`
	CategoriaID   *uint     `gorm:"column:categoria_id"`
	Marca         *string   `gorm:"column:marca"`
	UnidadeMedida string    `gorm:"column:unidade_medida;not null"`
	QntMedida     *string   `gorm:"column:qnt_medida"`
	Categoria     *Category `gorm:"foreignKey:CategoriaID"`
}

func (Product) TableName() string { return "produtos" }

// DefaultUnit is used when a product is saved without a unit of measure.
const DefaultUnit = "un"

// Units lists the units of measure offered by the front ends.
var Units = []string{"un", "kg", "g", "L", "ml", "cx"}
