package commands

import (
	"context"
	"strconv"

	"github.com/matheuseschaves/supermarket-tracker/cmd/tracker/output"

	"github.com/spf13/cobra"
)

func newStoresCmd(o *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "stores",
		Aliases: []string{"supermercados"},
		Short:   "List stores",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List the stores seen in purchases",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return o.withApp(func(a *app) error {
				list, err := a.stores.Listar(context.Background())
				if err != nil {
					return err
				}
				return o.render(list, func() {
					if len(list) == 0 {
						output.Info("Nenhum supermercado cadastrado")
						return
					}
					rows := make([][]string, 0, len(list))
					for _, s := range list {
						endereco := ""
						if s.Endereco != nil {
							endereco = *s.Endereco
						}
						rows = append(rows, []string{strconv.FormatUint(uint64(s.ID), 10), s.Nome, endereco})
					}
					output.Table([]string{"ID", "Supermercado", "Endereço"}, rows)
				})
			})
		},
	})
	return cmd
}
