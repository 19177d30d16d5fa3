package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/matheuseschaves/supermarket-tracker/internal/dto"
	"github.com/matheuseschaves/supermarket-tracker/internal/format"
	"github.com/matheuseschaves/supermarket-tracker/internal/model"
	"github.com/matheuseschaves/supermarket-tracker/internal/repository"

	"gorm.io/gorm"
)

const (
	// DefaultSearchLimit is the autocomplete size when none is configured.
	DefaultSearchLimit = 5
	// MaxSearchLimit caps any requested autocomplete size.
	MaxSearchLimit = 20
)

// ProductService defines business operations for products.
type ProductService interface {
	// Salvar creates the product when req.ID is nil and overwrites it otherwise.
	Salvar(ctx context.Context, req dto.SalvarProdutoRequest) (dto.ProdutoResponse, error)
	Obter(ctx context.Context, id uint) (dto.ProdutoResponse, error)
	Listar(ctx context.Context) ([]dto.ProdutoResponse, error)
	// Buscar returns autocomplete labels ("Nome (Marca)" or "Nome") of the
	// products whose name or brand contains termo.
	Buscar(ctx context.Context, filter dto.BuscaProdutoFilter) ([]string, error)
	ContarCompras(ctx context.Context, id uint) (dto.ContagemComprasResponse, error)
	// Excluir deletes the product. When it has purchases, they are deleted
	// with it only if cascade is set; otherwise a *PurchasesExistError is
	// returned and nothing changes.
	Excluir(ctx context.Context, id uint, cascade bool) (dto.ExcluirProdutoResponse, error)
}

type productService struct {
	repo        repository.ProductRepository
	categories  repository.CategoryRepository
	searchLimit int
}

func NewProductService(repo repository.ProductRepository, categories repository.CategoryRepository, searchLimit int) ProductService {
	if searchLimit <= 0 {
		searchLimit = DefaultSearchLimit
	}
	return &productService{repo: repo, categories: categories, searchLimit: min(searchLimit, MaxSearchLimit)}
}

func mapProduct(p model.Product) dto.ProdutoResponse {
	r := dto.ProdutoResponse{
		ID:            p.ID,
		Nome:          p.Nome,
		Categoria:     model.Uncategorized,
		UnidadeMedida: p.UnidadeMedida,
	}
	if p.Categoria != nil {
		r.Categoria = p.Categoria.Nome
	}
	if p.Marca != nil {
		r.Marca = *p.Marca
	}
	if p.QntMedida != nil {
		r.QntMedida = *p.QntMedida
	}
	return r
}

// optional maps blank input to NULL.
func optional(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

func (s *productService) Salvar(ctx context.Context, req dto.SalvarProdutoRequest) (dto.ProdutoResponse, error) {
	nome := strings.TrimSpace(req.Nome)
	if nome == "" {
		return dto.ProdutoResponse{}, required("nome", "Informe o nome do produto!")
	}

	p := &model.Product{
		Nome:          nome,
		Marca:         optional(req.Marca),
		UnidadeMedida: strings.TrimSpace(req.UnidadeMedida),
		QntMedida:     optional(req.QntMedida),
	}
	if p.UnidadeMedida == "" {
		p.UnidadeMedida = model.DefaultUnit
	}

	if cat := strings.TrimSpace(req.Categoria); cat != "" && cat != model.Uncategorized {
		c, err := s.categories.FindByName(ctx, cat)
		switch {
		case err == nil:
			p.CategoriaID = &c.ID
		case !errors.Is(err, gorm.ErrRecordNotFound):
			return dto.ProdutoResponse{}, fmt.Errorf("salvar produto: %w", err)
		}
	}

	if req.ID == nil {
		if err := s.repo.Create(ctx, p); err != nil {
			return dto.ProdutoResponse{}, fmt.Errorf("salvar produto: %w", err)
		}
	} else {
		p.ID = *req.ID
		if err := s.repo.Update(ctx, p); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return dto.ProdutoResponse{}, ErrNotFound
			}
			return dto.ProdutoResponse{}, fmt.Errorf("salvar produto: %w", err)
		}
	}
	return s.Obter(ctx, p.ID)
}

func (s *productService) Obter(ctx context.Context, id uint) (dto.ProdutoResponse, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.ProdutoResponse{}, ErrNotFound
		}
		return dto.ProdutoResponse{}, fmt.Errorf("obter produto: %w", err)
	}
	return mapProduct(*p), nil
}

func (s *productService) Listar(ctx context.Context) ([]dto.ProdutoResponse, error) {
	list, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listar produtos: %w", err)
	}
	result := make([]dto.ProdutoResponse, 0, len(list))
	for _, p := range list {
		result = append(result, mapProduct(p))
	}
	return result, nil
}

func (s *productService) Buscar(ctx context.Context, filter dto.BuscaProdutoFilter) ([]string, error) {
	termo := strings.TrimSpace(filter.Termo)
	if termo == "" {
		return []string{}, nil
	}
	limit := filter.Limite
	if limit <= 0 {
		limit = s.searchLimit
	}
	limit = min(limit, MaxSearchLimit)

	list, err := s.repo.Search(ctx, termo, limit)
	if err != nil {
		return nil, fmt.Errorf("buscar produtos: %w", err)
	}
	labels := make([]string, 0, len(list))
	for _, p := range list {
		marca := ""
		if p.Marca != nil {
			marca = *p.Marca
		}
		labels = append(labels, format.ProductLabel(p.Nome, marca))
	}
	return labels, nil
}

func (s *productService) ContarCompras(ctx context.Context, id uint) (dto.ContagemComprasResponse, error) {
	if _, err := s.Obter(ctx, id); err != nil {
		return dto.ContagemComprasResponse{}, err
	}
	n, err := s.repo.CountPurchases(ctx, id)
	if err != nil {
		return dto.ContagemComprasResponse{}, fmt.Errorf("contar compras: %w", err)
	}
	return dto.ContagemComprasResponse{ProdutoID: id, Compras: n}, nil
}

func (s *productService) Excluir(ctx context.Context, id uint, cascade bool) (dto.ExcluirProdutoResponse, error) {
	resp := dto.ExcluirProdutoResponse{ProdutoID: id}

	err := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		n, err := s.repo.CountPurchasesTx(tx, id)
		if err != nil {
			return err
		}
		if n > 0 {
			if !cascade {
				return &PurchasesExistError{ProdutoID: id, Count: n}
			}
			deleted, err := s.repo.DeletePurchasesTx(tx, id)
			if err != nil {
				return err
			}
			resp.ComprasExcluidas = deleted
		}

		affected, err := s.repo.DeleteTx(tx, id)
		if err != nil {
			return err
		}
		if affected == 0 {
			return ErrNotFound
		}
		return nil
	})
	if err != nil {
		var pe *PurchasesExistError
		if errors.Is(err, ErrNotFound) || errors.As(err, &pe) {
			return dto.ExcluirProdutoResponse{}, err
		}
		return dto.ExcluirProdutoResponse{}, fmt.Errorf("excluir produto: %w", err)
	}
	return resp, nil
}
