package service

import (
	"context"
	"fmt"

	"github.com/matheuseschaves/supermarket-tracker/internal/dto"
	"github.com/matheuseschaves/supermarket-tracker/internal/repository"
)

// StoreService lists stores. Stores are only ever created by
// PurchaseService.Registrar.
type StoreService interface {
	Listar(ctx context.Context) ([]dto.SupermercadoResponse, error)
}

type storeService struct {
	repo repository.StoreRepository
}

func NewStoreService(repo repository.StoreRepository) StoreService {
	return &storeService{repo: repo}
}

func (s *storeService) Listar(ctx context.Context) ([]dto.SupermercadoResponse, error) {
	list, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listar supermercados: %w", err)
	}
	result := make([]dto.SupermercadoResponse, 0, len(list))
	for _, st := range list {
		result = append(result, dto.SupermercadoResponse{ID: st.ID, Nome: st.Nome, Endereco: st.Endereco})
	}
	return result, nil
}
