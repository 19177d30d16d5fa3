package commands

import (
	"context"
	"strconv"

	"github.com/matheuseschaves/supermarket-tracker/cmd/tracker/output"
	"github.com/matheuseschaves/supermarket-tracker/internal/dto"

	"github.com/spf13/cobra"
)

func newCategoriesCmd(o *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "categories",
		Aliases: []string{"categorias"},
		Short:   "List and create product categories",
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List categories",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return o.withApp(func(a *app) error {
				list, err := a.categories.Listar(context.Background())
				if err != nil {
					return err
				}
				return o.render(list, func() {
					rows := make([][]string, 0, len(list))
					for _, c := range list {
						rows = append(rows, []string{strconv.FormatUint(uint64(c.ID), 10), c.Nome})
					}
					output.Table([]string{"ID", "Categoria"}, rows)
				})
			})
		},
	}

	add := &cobra.Command{
		Use:   "add <nome>",
		Short: "Create a category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return o.withApp(func(a *app) error {
				c, err := a.categories.Criar(context.Background(), dto.CriarCategoriaRequest{Nome: args[0]})
				if err != nil {
					return err
				}
				return o.render(c, func() {
					output.Success("Categoria '%s' criada (id %d)", c.Nome, c.ID)
				})
			})
		},
	}

	cmd.AddCommand(list, add)
	return cmd
}
