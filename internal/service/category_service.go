package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/matheuseschaves/supermarket-tracker/internal/dto"
	"github.com/matheuseschaves/supermarket-tracker/internal/model"
	"github.com/matheuseschaves/supermarket-tracker/internal/repository"

	"gorm.io/gorm"
)

// CategoryService defines business operations for product categories.
type CategoryService interface {
	Listar(ctx context.Context) ([]dto.CategoriaResponse, error)
	Criar(ctx context.Context, req dto.CriarCategoriaRequest) (dto.CategoriaResponse, error)
}

type categoryService struct {
	repo repository.CategoryRepository
}

func NewCategoryService(repo repository.CategoryRepository) CategoryService {
	return &categoryService{repo: repo}
}

func mapCategory(c model.Category) dto.CategoriaResponse {
	return dto.CategoriaResponse{ID: c.ID, Nome: c.Nome}
}

func (s *categoryService) Listar(ctx context.Context) ([]dto.CategoriaResponse, error) {
	list, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listar categorias: %w", err)
	}
	result := make([]dto.CategoriaResponse, 0, len(list))
	for _, c := range list {
		result = append(result, mapCategory(c))
	}
	return result, nil
}

func (s *categoryService) Criar(ctx context.Context, req dto.CriarCategoriaRequest) (dto.CategoriaResponse, error) {
	nome := strings.TrimSpace(req.Nome)
	if nome == "" {
		return dto.CategoriaResponse{}, required("nome", "O nome da categoria é obrigatório!")
	}

	existing, err := s.repo.FindByName(ctx, nome)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return dto.CategoriaResponse{}, fmt.Errorf("criar categoria: %w", err)
	}
	if existing != nil {
		return dto.CategoriaResponse{}, ErrDuplicateCategory
	}

	c := &model.Category{Nome: nome}
	if err := s.repo.Create(ctx, c); err != nil {
		return dto.CategoriaResponse{}, fmt.Errorf("criar categoria: %w", err)
	}
	return mapCategory(*c), nil
}
