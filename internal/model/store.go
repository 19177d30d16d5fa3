package model

import "time"

// Store is a purchasing location. Stores are created the first time a
// purchase names them and are never deleted.
type Store struct {
	ID           uint      `gorm:"primaryKey;autoIncrement"`
	Nome         string    `gorm:"column:nome;not null"`
	Endereco     *string   `gorm:"column:endereco"`
	DataCadastro time.Time `gorm:"column:data_cadastro;autoCreateTime"`
}

func (Store) TableName() string { return "supermercados" }
