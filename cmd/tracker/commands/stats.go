package commands

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/matheuseschaves/supermarket-tracker/cmd/tracker/output"
	"github.com/matheuseschaves/supermarket-tracker/internal/dto"
	"github.com/matheuseschaves/supermarket-tracker/internal/format"
	"github.com/matheuseschaves/supermarket-tracker/internal/infra"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

func currencyPtr(v *decimal.Decimal) string {
	if v == nil {
		return format.CurrencyFloat(nil)
	}
	return format.Currency(*v)
}

func printStats(st dto.EstatisticasResponse) {
	if st.TotalCompras == 0 {
		output.Info("Nenhuma compra encontrada para '%s'", st.Produto)
		return
	}
	output.Section(fmt.Sprintf("Estatísticas para '%s'", st.Produto))
	output.Line("Total de registros", strconv.FormatInt(st.TotalCompras, 10))
	if st.PrimeiraCompra != nil && st.UltimaCompra != nil {
		output.Line("Período", st.PrimeiraCompra.Display()+" a "+st.UltimaCompra.Display())
	}
	output.Line("Preço médio", currencyPtr(st.PrecoMedio))
	output.Line("Menor preço", currencyPtr(st.MenorPreco))
	output.Line("Maior preço", currencyPtr(st.MaiorPreco))
}

func newStatsCmd(o *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "stats <produto>",
		Short: "Unit price statistics for products whose name contains <produto>",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return o.withApp(func(a *app) error {
				st, err := a.purchases.Estatisticas(context.Background(), args[0])
				if err != nil {
					return err
				}
				return o.render(st, func() { printStats(st) })
			})
		},
	}
}

func newPayersCmd(o *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "payers",
		Short: "List payer suggestions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return o.withApp(func(a *app) error {
				payers, err := a.purchases.Pagadores(context.Background())
				if err != nil {
					return err
				}
				return o.render(payers, func() {
					for _, p := range payers {
						output.Muted("%s", p)
					}
				})
			})
		},
	}
}

// chartFileName turns a product name into a safe default PDF name.
func chartFileName(produto string) string {
	clean := strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', ':', '*', '?', '"', '<', '>', '|':
			return '_'
		}
		return r
	}, strings.TrimSpace(produto))
	return "grafico_" + strings.ReplaceAll(clean, " ", "_") + ".pdf"
}

func newChartCmd(o *rootOptions) *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "chart <produto>",
		Short: "Export the unit price evolution of a product as a PDF chart",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return o.withApp(func(a *app) error {
				hist, err := a.purchases.Historico(context.Background(), args[0])
				if err != nil {
					return err
				}
				if len(hist.Data) == 0 {
					return infra.ErrNoChartData
				}
				path := out
				if path == "" {
					path = chartFileName(hist.Produto)
				}
				f, err := os.Create(path)
				if err != nil {
					return err
				}
				if err := infra.RenderPriceChart(f, hist.Produto, hist.Data); err != nil {
					f.Close()
					_ = os.Remove(path)
					return err
				}
				if err := f.Close(); err != nil {
					return err
				}
				return o.render(map[string]any{"arquivo": path, "pontos": len(hist.Data)}, func() {
					output.Success("Gráfico salvo em %s (%d ponto(s))", path, len(hist.Data))
				})
			})
		},
	}
	cmd.Flags().StringVarP(&out, "output", "o", "", "PDF file to write (default grafico_<produto>.pdf)")
	return cmd
}
