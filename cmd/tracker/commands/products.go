package commands

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/matheuseschaves/supermarket-tracker/cmd/tracker/output"
	"github.com/matheuseschaves/supermarket-tracker/internal/dto"
	"github.com/matheuseschaves/supermarket-tracker/internal/service"

	"github.com/spf13/cobra"
)

func parseProductID(s string) (uint, error) {
	id, err := strconv.ParseUint(s, 10, 64)
	if err != nil || id == 0 {
		return 0, fmt.Errorf("ID inválido: %q", s)
	}
	return uint(id), nil
}

func productRows(list []dto.ProdutoResponse) [][]string {
	rows := make([][]string, 0, len(list))
	for _, p := range list {
		rows = append(rows, []string{
			strconv.FormatUint(uint64(p.ID), 10), p.Nome, p.Categoria, p.Marca, p.UnidadeMedida, p.QntMedida,
		})
	}
	return rows
}

var productHeaders = []string{"ID", "Nome", "Categoria", "Marca", "Unidade", "Medida"}

func newProductsCmd(o *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "products",
		Aliases: []string{"produtos"},
		Short:   "Manage products",
	}
	cmd.AddCommand(newProductsListCmd(o), newProductsShowCmd(o), newProductsSaveCmd(o), newProductsDeleteCmd(o))
	return cmd
}

func newProductsListCmd(o *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List products ordered by name",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return o.withApp(func(a *app) error {
				list, err := a.products.Listar(context.Background())
				if err != nil {
					return err
				}
				return o.render(list, func() {
					if len(list) == 0 {
						output.Info("Nenhum produto cadastrado")
						return
					}
					output.Table(productHeaders, productRows(list))
				})
			})
		},
	}
}

func newProductsShowCmd(o *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show one product and its purchase count",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseProductID(args[0])
			if err != nil {
				return err
			}
			return o.withApp(func(a *app) error {
				ctx := context.Background()
				p, err := a.products.Obter(ctx, id)
				if err != nil {
					return err
				}
				count, err := a.products.ContarCompras(ctx, id)
				if err != nil {
					return err
				}
				view := struct {
					dto.ProdutoResponse
					Compras int64 `json:"compras"`
				}{p, count.Compras}
				return o.render(view, func() {
					output.Section(p.Label())
					output.Line("Categoria", p.Categoria)
					output.Line("Unidade", p.UnidadeMedida)
					if p.QntMedida != "" {
						output.Line("Medida", p.QntMedida)
					}
					output.Line("Compras", strconv.FormatInt(count.Compras, 10))
				})
			})
		},
	}
}

func newProductsSaveCmd(o *rootOptions) *cobra.Command {
	var (
		id  uint
		req dto.SalvarProdutoRequest
	)
	cmd := &cobra.Command{
		Use:   "save",
		Short: "Create a product, or update it with --id",
		Long: `Create a product, or overwrite an existing one with --id.

An unknown category leaves the product uncategorised. Empty brand and
measure are stored as missing.

Examples:
  tracker products save --nome Leite --marca "Marca X" --categoria Laticínios --qnt 1L
  tracker products save --id 3 --nome "Leite Integral" --unidade L`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if id != 0 {
				req.ID = &id
			}
			return o.withApp(func(a *app) error {
				p, err := a.products.Salvar(context.Background(), req)
				if err != nil {
					return err
				}
				return o.render(p, func() {
					if req.ID != nil {
						output.Success("Produto atualizado com sucesso! (%s)", p.Label())
					} else {
						output.Success("Produto cadastrado com sucesso! (%s, id %d)", p.Label(), p.ID)
					}
				})
			})
		},
	}
	cmd.Flags().UintVar(&id, "id", 0, "Product to update")
	cmd.Flags().StringVar(&req.Nome, "nome", "", "Product name (required)")
	cmd.Flags().StringVar(&req.Categoria, "categoria", "", "Category name")
	cmd.Flags().StringVar(&req.Marca, "marca", "", "Brand")
	cmd.Flags().StringVar(&req.UnidadeMedida, "unidade", "un", "Unit of measure (un, kg, g, L, ml, cx)")
	cmd.Flags().StringVar(&req.QntMedida, "qnt", "", "Measure quantity, e.g. 500g")
	return cmd
}

func newProductsDeleteCmd(o *rootOptions) *cobra.Command {
	var cascade, yes bool
	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a product",
		Long: `Delete a product.

When the product has purchases they are deleted with it only after a
second confirmation, or with --cascade. Declining leaves everything in
place.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseProductID(args[0])
			if err != nil {
				return err
			}
			return o.withApp(func(a *app) error {
				ctx := context.Background()
				p, err := a.products.Obter(ctx, id)
				if err != nil {
					return err
				}
				if !yes && !confirm(cmd.InOrStdin(), fmt.Sprintf("Deseja realmente excluir o produto '%s'? Esta ação não pode ser desfeita!", p.Nome)) {
					output.Info("Exclusão cancelada. O produto não foi removido.")
					return nil
				}

				resp, err := a.products.Excluir(ctx, id, cascade)
				var pe *service.PurchasesExistError
				if errors.As(err, &pe) && !yes {
					q := fmt.Sprintf("Este produto possui %d compra(s) registrada(s). Deseja excluir o produto E TODAS as suas compras?", pe.Count)
					if !confirm(cmd.InOrStdin(), q) {
						output.Info("Exclusão cancelada. O produto não foi removido.")
						return nil
					}
					resp, err = a.products.Excluir(ctx, id, true)
				}
				if err != nil {
					return err
				}

				return o.render(resp, func() {
					if resp.ComprasExcluidas > 0 {
						output.Success("Produto '%s' e suas %d compra(s) foram excluídos.", p.Nome, resp.ComprasExcluidas)
					} else {
						output.Success("Produto excluído com sucesso!")
					}
				})
			})
		},
	}
	cmd.Flags().BoolVar(&cascade, "cascade", false, "Also delete the product's purchases")
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Do not ask for confirmation")
	return cmd
}

func newSearchCmd(o *rootOptions) *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "search <termo>",
		Short: "Autocomplete products by name or brand",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return o.withApp(func(a *app) error {
				labels, err := a.products.Buscar(context.Background(), dto.BuscaProdutoFilter{Termo: args[0], Limite: limit})
				if err != nil {
					return err
				}
				return o.render(labels, func() {
					if len(labels) == 0 {
						output.Info("Nenhum produto encontrado")
						return
					}
					for _, l := range labels {
						output.Muted("%s", l)
					}
				})
			})
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 0, "Maximum suggestions (default $SEARCH_LIMIT, at most 20)")
	return cmd
}
