package dto

// ─── Request DTOs ────────────────────────────────────────────────────────────

// SalvarProdutoRequest creates a product when ID is nil and updates it
// otherwise. Categoria is a category name; an unknown name leaves the
// product uncategorised.
type SalvarProdutoRequest struct {
	ID            *uint  `json:"id,omitempty"`
	Nome          string `json:"nome"           validate:"required,max=120"`
	Categoria     string `json:"categoria"`
	Marca         string `json:"marca"          validate:"max=80"`
	UnidadeMedida string `json:"unidade_medida" validate:"max=10"`
	QntMedida     string `json:"qnt_medida"     validate:"max=40"`
}

// ─── Filter ──────────────────────────────────────────────────────────────────

type BuscaProdutoFilter struct {
	Termo  string `form:"q"`
	Limite int    `form:"limit"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

// ProdutoResponse is one row of the product list. Categoria is
// "Sem categoria" when unset; Marca and QntMedida are "" when unset.
type ProdutoResponse struct {
	ID            uint   `json:"id"`
	Nome          string `json:"nome"`
	Categoria     string `json:"categoria"`
	Marca         string `json:"marca"`
	UnidadeMedida string `json:"unidade_medida"`
	QntMedida     string `json:"qnt_medida"`
}

// Label renders the product as "Nome (Marca)" or "Nome".
func (p ProdutoResponse) Label() string {
	if p.Marca == "" {
		return p.Nome
	}
	return p.Nome + " (" + p.Marca + ")"
}

// ExcluirProdutoResponse reports what a delete removed.
type ExcluirProdutoResponse struct {
	ProdutoID        uint  `json:"produto_id"`
	ComprasExcluidas int64 `json:"compras_excluidas"`
}

type ContagemComprasResponse struct {
	ProdutoID uint  `json:"produto_id"`
	Compras   int64 `json:"compras"`
}
