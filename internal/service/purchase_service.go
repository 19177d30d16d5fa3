package service

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/matheuseschaves/supermarket-tracker/internal/dto"
	"github.com/matheuseschaves/supermarket-tracker/internal/format"
	"github.com/matheuseschaves/supermarket-tracker/internal/model"
	"github.com/matheuseschaves/supermarket-tracker/internal/repository"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// RecentLimit is how many purchases Recentes returns.
const RecentLimit = 20

// DefaultPayers are always offered as payer suggestions, next to the values
// already stored.
var DefaultPayers = []string{"Eu", "Parceiro(a)", "Família", "Amigo", "Outro"}

// PurchaseService defines business operations for purchases and the price
// queries built on them.
type PurchaseService interface {
	// Registrar validates the form, resolves the product by exact name and
	// the store by name (creating it when new) and stores the purchase, all
	// in one transaction. An unknown product yields a *ProductNotFoundError
	// and writes nothing.
	Registrar(ctx context.Context, req dto.RegistrarCompraRequest) (dto.CompraResponse, error)
	Consultar(ctx context.Context, filter dto.CompraFilter) (dto.CompraListResponse, error)
	Recentes(ctx context.Context) (dto.CompraListResponse, error)
	Estatisticas(ctx context.Context, produto string) (dto.EstatisticasResponse, error)
	Historico(ctx context.Context, produto string) (dto.HistoricoPrecoResponse, error)
	Pagadores(ctx context.Context) ([]string, error)
}

type purchaseService struct {
	repo     repository.PurchaseRepository
	products repository.ProductRepository
	stores   repository.StoreRepository
}

func NewPurchaseService(
	repo repository.PurchaseRepository,
	products repository.ProductRepository,
	stores repository.StoreRepository,
) PurchaseService {
	return &purchaseService{repo: repo, products: products, stores: stores}
}

const msgRequiredFields = "Preencha todos os campos obrigatórios!"

func (s *purchaseService) Registrar(ctx context.Context, req dto.RegistrarCompraRequest) (dto.CompraResponse, error) {
	produtoText := strings.TrimSpace(req.Produto)
	supermercado := strings.TrimSpace(req.Supermercado)

	for _, f := range []struct{ name, value string }{
		{"produto", produtoText},
		{"supermercado", supermercado},
		{"preco", req.Preco},
		{"data_compra", req.DataCompra},
		{"quantidade", req.Quantidade},
	} {
		if strings.TrimSpace(f.value) == "" {
			return dto.CompraResponse{}, required(f.name, msgRequiredFields)
		}
	}

	data, err := format.ValidatePurchaseDate(req.DataCompra)
	if err != nil {
		return dto.CompraResponse{}, invalid("data_compra", err)
	}
	preco, err := format.ValidatePrice(req.Preco)
	if err != nil {
		return dto.CompraResponse{}, invalid("preco", err)
	}
	quantidade, err := format.ValidateQuantity(req.Quantidade)
	if err != nil {
		return dto.CompraResponse{}, invalid("quantidade", err)
	}

	nome := format.ProductName(produtoText)
	marca := format.ProductBrand(produtoText)

	p := model.Purchase{
		Preco:       preco,
		Quantidade:  quantidade,
		DataCompra:  data,
		Promocao:    req.Promocao,
		QuemPagou:   strings.TrimSpace(req.QuemPagou),
		Observacoes: req.Observacoes,
	}
	var storeCreated bool

	txErr := runTx(ctx, s.products.DB(), func(tx *gorm.DB) error {
		id, err := s.products.FindIDByNameTx(tx, nome, marca)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return &ProductNotFoundError{Nome: nome}
			}
			return err
		}
		p.ProdutoID = id

		storeID, created, err := s.stores.FindOrCreateTx(tx, supermercado)
		if err != nil {
			return err
		}
		p.SupermercadoID = storeID
		storeCreated = created

		return s.repo.CreateTx(tx, &p)
	})
	if txErr != nil {
		if errors.Is(txErr, ErrProductNotFound) {
			return dto.CompraResponse{}, txErr
		}
		return dto.CompraResponse{}, fmt.Errorf("registrar compra: %w", txErr)
	}

	if storeCreated {
		log.Info().Str("supermercado", supermercado).Uint("id", p.SupermercadoID).Msg("supermercado cadastrado")
	}

	return dto.CompraResponse{
		ID:            p.ID,
		DataCompra:    p.DataCompra,
		Produto:       format.ProductLabel(nome, marca),
		Supermercado:  supermercado,
		Preco:         p.Preco,
		Quantidade:    p.Quantidade,
		PrecoUnitario: p.UnitPrice(),
		Promocao:      p.Promocao,
		QuemPagou:     p.QuemPagou,
		Observacoes:   p.Observacoes,
	}, nil
}

func mapPurchaseRow(r repository.PurchaseRow) dto.CompraResponse {
	return dto.CompraResponse{
		ID:            r.ID,
		DataCompra:    r.DataCompra,
		Produto:       format.ProductLabel(r.Produto, r.Marca),
		Supermercado:  r.Supermercado,
		Preco:         r.Preco,
		Quantidade:    r.Quantidade,
		PrecoUnitario: format.UnitPrice(r.Preco, r.Quantidade),
		Promocao:      r.Promocao,
		QuemPagou:     r.QuemPagou,
		Observacoes:   r.Observacoes,
	}
}

func (s *purchaseService) Consultar(ctx context.Context, filter dto.CompraFilter) (dto.CompraListResponse, error) {
	filter.Produto = format.ProductName(strings.TrimSpace(filter.Produto))
	filter.Supermercado = strings.TrimSpace(filter.Supermercado)

	rows, err := s.repo.Query(ctx, filter)
	if err != nil {
		return dto.CompraListResponse{}, fmt.Errorf("consultar compras: %w", err)
	}
	data := make([]dto.CompraResponse, 0, len(rows))
	for _, r := range rows {
		data = append(data, mapPurchaseRow(r))
	}
	return dto.CompraListResponse{Data: data, Total: len(data)}, nil
}

func (s *purchaseService) Recentes(ctx context.Context) (dto.CompraListResponse, error) {
	return s.Consultar(ctx, dto.CompraFilter{Limite: RecentLimit})
}

// productTerm turns a product label into the name substring the price
// queries match against.
func productTerm(produto string) (string, error) {
	nome := format.ProductName(strings.TrimSpace(produto))
	if nome == "" {
		return "", required("produto", "Selecione um produto!")
	}
	return nome, nil
}

// money converts an aggregate back to a decimal, dropping float noise below
// a hundredth of a cent.
func money(v float64) decimal.Decimal {
	return decimal.NewFromFloat(v).Round(4)
}

func (s *purchaseService) Estatisticas(ctx context.Context, produto string) (dto.EstatisticasResponse, error) {
	nome, err := productTerm(produto)
	if err != nil {
		return dto.EstatisticasResponse{}, err
	}
	st, err := s.repo.Stats(ctx, nome)
	if err != nil {
		return dto.EstatisticasResponse{}, fmt.Errorf("calcular estatísticas: %w", err)
	}

	resp := dto.EstatisticasResponse{Produto: nome, TotalCompras: st.Count}
	if st.MinUnitPrice.Valid {
		v := money(st.MinUnitPrice.Float64)
		resp.MenorPreco = &v
	}
	if st.MaxUnitPrice.Valid {
		v := money(st.MaxUnitPrice.Float64)
		resp.MaiorPreco = &v
	}
	if st.AvgUnitPrice.Valid {
		v := money(st.AvgUnitPrice.Float64)
		resp.PrecoMedio = &v
	}
	if st.FirstDate.Valid {
		if d, err := model.ParseStoredDate(st.FirstDate.String); err == nil {
			resp.PrimeiraCompra = &d
		}
	}
	if st.LastDate.Valid {
		if d, err := model.ParseStoredDate(st.LastDate.String); err == nil {
			resp.UltimaCompra = &d
		}
	}
	return resp, nil
}

func (s *purchaseService) Historico(ctx context.Context, produto string) (dto.HistoricoPrecoResponse, error) {
	nome, err := productTerm(produto)
	if err != nil {
		return dto.HistoricoPrecoResponse{}, err
	}
	rows, err := s.repo.Series(ctx, nome)
	if err != nil {
		return dto.HistoricoPrecoResponse{}, fmt.Errorf("histórico de preços: %w", err)
	}
	points := make([]dto.PricePoint, 0, len(rows))
	for _, r := range rows {
		points = append(points, dto.PricePoint{
			DataCompra:    r.DataCompra,
			PrecoUnitario: money(r.PrecoUnitario),
			Supermercado:  r.Supermercado,
		})
	}
	return dto.HistoricoPrecoResponse{Produto: nome, Data: points}, nil
}

func (s *purchaseService) Pagadores(ctx context.Context) ([]string, error) {
	stored, err := s.repo.DistinctPayers(ctx)
	if err != nil {
		return nil, fmt.Errorf("listar pagadores: %w", err)
	}
	all := append(slices.Clone(DefaultPayers), stored...)
	slices.Sort(all)
	return slices.Compact(all), nil
}
