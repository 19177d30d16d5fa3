package repository

import (
	"context"
	"errors"

	"github.com/matheuseschaves/supermarket-tracker/internal/model"

	"gorm.io/gorm"
)

// StoreRepository defines the operations on stores. Stores are created on
// demand by purchase registration and never deleted.
type StoreRepository interface {
	List(ctx context.Context) ([]model.Store, error)
	FindByName(ctx context.Context, nome string) (*model.Store, error)

	// FindOrCreateTx resolves a store by exact name inside tx, inserting it
	// when missing. created reports whether a row was added.
	FindOrCreateTx(tx *gorm.DB, nome string) (id uint, created bool, err error)
}

type storeRepository struct{ db *gorm.DB }

func NewStoreRepository(db *gorm.DB) StoreRepository {
	return &storeRepository{db: db}
}

func (r *storeRepository) List(ctx context.Context) ([]model.Store, error) {
	var list []model.Store
	err := r.db.WithContext(ctx).Order("nome asc").Find(&list).Error
	return list, err
}

func (r *storeRepository) FindByName(ctx context.Context, nome string) (*model.Store, error) {
	var s model.Store
	err := r.db.WithContext(ctx).Where("nome = ?", nome).Order("id asc").First(&s).Error
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *storeRepository) FindOrCreateTx(tx *gorm.DB, nome string) (uint, bool, error) {
	var s model.Store
	err := tx.Where("nome = ?", nome).Order("id asc").First(&s).Error
	if err == nil {
		return s.ID, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, false, err
	}
	s = model.Store{Nome: nome}
	if err := tx.Create(&s).Error; err != nil {
		return 0, false, err
	}
	return s.ID, true, nil
}
