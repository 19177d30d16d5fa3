package commands

import (
	"time"

	"github.com/matheuseschaves/supermarket-tracker/cmd/tracker/output"
	"github.com/matheuseschaves/supermarket-tracker/internal/infra"

	"github.com/spf13/cobra"
)

func newBackupCmd(o *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "backup",
		Short: "Copy the database into the backup directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := o.config()
			if err != nil {
				return err
			}
			path, err := infra.Backup(cfg.DatabasePath, cfg.BackupDir, time.Now())
			if err != nil {
				return err
			}
			return o.render(map[string]string{"arquivo": path}, func() {
				output.Success("Backup criado com sucesso: %s", path)
			})
		},
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List backups, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := o.config()
			if err != nil {
				return err
			}
			files, err := infra.ListBackups(cfg.BackupDir)
			if err != nil {
				return err
			}
			if files == nil {
				files = []string{}
			}
			return o.render(files, func() {
				if len(files) == 0 {
					output.Info("Nenhum backup em %s", cfg.BackupDir)
					return
				}
				for _, f := range files {
					output.Muted("%s", f)
				}
			})
		},
	})
	return cmd
}
