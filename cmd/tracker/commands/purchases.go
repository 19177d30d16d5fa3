package commands

import (
	"context"
	"time"

	"github.com/matheuseschaves/supermarket-tracker/cmd/tracker/output"
	"github.com/matheuseschaves/supermarket-tracker/internal/dto"
	"github.com/matheuseschaves/supermarket-tracker/internal/format"

	"github.com/spf13/cobra"
)

// notInformed is shown for purchases without a payer.
const notInformed = "Não informado"

func purchaseRows(list []dto.CompraResponse) [][]string {
	rows := make([][]string, 0, len(list))
	for _, c := range list {
		payer := c.QuemPagou
		if payer == "" {
			payer = notInformed
		}
		rows = append(rows, []string{
			c.DataCompra.Display(),
			c.Produto,
			c.Supermercado,
			format.Currency(c.Preco),
			format.Currency(c.PrecoUnitario),
			c.Quantidade.String(),
			output.Check(c.Promocao),
			payer,
		})
	}
	return rows
}

var purchaseHeaders = []string{"Data", "Produto", "Supermercado", "Preço", "Preço Unit.", "Qtd", "Promoção", "Quem Pagou"}

func (o *rootOptions) renderPurchases(resp dto.CompraListResponse) error {
	return o.render(resp, func() {
		if resp.Total == 0 {
			output.Info("Nenhuma compra encontrada")
			return
		}
		output.Table(purchaseHeaders, purchaseRows(resp.Data))
		output.Muted("%d compra(s)", resp.Total)
	})
}

func newPurchasesCmd(o *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "purchases",
		Aliases: []string{"compras"},
		Short:   "Register and query purchases",
	}
	cmd.AddCommand(newPurchasesAddCmd(o), newPurchasesListCmd(o), newPurchasesRecentCmd(o))
	return cmd
}

func newPurchasesAddCmd(o *rootOptions) *cobra.Command {
	var req dto.RegistrarCompraRequest
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Register a purchase",
		Long: `Register a purchase of an existing product.

The product must already be registered (see "products save"); it may be
given as shown by "search", e.g. "Leite (Marca X)". An unknown store is
created on the fly. Price and quantity accept a comma or a dot.

Examples:
  tracker purchases add --produto "Leite (Marca X)" --supermercado Extra --preco 4,99
  tracker purchases add --produto Arroz --supermercado Assaí --preco 22.90 --data 05/03/2024 --promocao`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return o.withApp(func(a *app) error {
				c, err := a.purchases.Registrar(context.Background(), req)
				if err != nil {
					return err
				}
				return o.render(c, func() {
					output.Success("Compra registrada com sucesso!")
					output.Line("Produto", c.Produto)
					output.Line("Supermercado", c.Supermercado)
					output.Line("Preço unitário", format.Currency(c.PrecoUnitario))
				})
			})
		},
	}
	cmd.Flags().StringVar(&req.Produto, "produto", "", "Product name or label (required)")
	cmd.Flags().StringVar(&req.Supermercado, "supermercado", "", "Store name (required)")
	cmd.Flags().StringVar(&req.Preco, "preco", "", "Price paid (required)")
	cmd.Flags().StringVar(&req.Quantidade, "quantidade", "1", "Quantity bought")
	cmd.Flags().StringVar(&req.DataCompra, "data", time.Now().Format("02/01/2006"), "Purchase date DD/MM/AAAA")
	cmd.Flags().BoolVar(&req.Promocao, "promocao", false, "Bought on sale")
	cmd.Flags().StringVar(&req.QuemPagou, "pagou", "Eu", "Who paid")
	cmd.Flags().StringVar(&req.Observacoes, "obs", "", "Notes")
	return cmd
}

func newPurchasesListCmd(o *rootOptions) *cobra.Command {
	var filter dto.CompraFilter
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Query purchases, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return o.withApp(func(a *app) error {
				resp, err := a.purchases.Consultar(context.Background(), filter)
				if err != nil {
					return err
				}
				if err := o.renderPurchases(resp); err != nil {
					return err
				}
				if filter.Produto == "" || o.jsonOutput {
					return nil
				}
				st, err := a.purchases.Estatisticas(context.Background(), filter.Produto)
				if err != nil {
					return err
				}
				printStats(st)
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&filter.Produto, "produto", "", "Product name contains")
	cmd.Flags().StringVar(&filter.Supermercado, "supermercado", "", "Store name contains")
	cmd.Flags().IntVar(&filter.Limite, "limit", 0, "Maximum rows (0 = all)")
	return cmd
}

func newPurchasesRecentCmd(o *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "recent",
		Short: "Show the last 20 purchases",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return o.withApp(func(a *app) error {
				resp, err := a.purchases.Recentes(context.Background())
				if err != nil {
					return err
				}
				return o.renderPurchases(resp)
			})
		},
	}
}
