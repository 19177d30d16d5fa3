package service

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when an id does not match any row.
	ErrNotFound = errors.New("registro não encontrado")
	// ErrProductNotFound is returned when a purchase names a product that
	// is not registered. Purchases never create products.
	ErrProductNotFound = errors.New("produto não encontrado")
	// ErrProductHasPurchases is returned when deleting a product that still
	// has purchases without asking for the cascade.
	ErrProductHasPurchases = errors.New("o produto possui compras registradas")
	ErrDuplicateCategory   = errors.New("já existe uma categoria com esse nome")
)

// ValidationError reports user input that failed validation. Field names the
// offending input as the front ends call it.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func invalid(field string, err error) *ValidationError {
	return &ValidationError{Field: field, Message: err.Error()}
}

func required(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// PurchasesExistError carries the number of purchases that block a delete.
// It unwraps to ErrProductHasPurchases.
type PurchasesExistError struct {
	ProdutoID uint
	Count     int64
}

func (e *PurchasesExistError) Error() string {
	return fmt.Sprintf("o produto possui %d compra(s) registrada(s); confirme a exclusão em cascata", e.Count)
}

func (e *PurchasesExistError) Unwrap() error { return ErrProductHasPurchases }

// ProductNotFoundError names the product a purchase could not be matched to.
// It unwraps to ErrProductNotFound.
type ProductNotFoundError struct {
	Nome string
}

func (e *ProductNotFoundError) Error() string {
	return fmt.Sprintf("Produto '%s' não encontrado! Cadastre o produto primeiro ou verifique o nome.", e.Nome)
}

func (e *ProductNotFoundError) Unwrap() error { return ErrProductNotFound }
