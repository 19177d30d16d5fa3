package commands

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/matheuseschaves/supermarket-tracker/internal/infra"
	"github.com/matheuseschaves/supermarket-tracker/internal/server"

	"github.com/spf13/cobra"
)

func newServeCmd(o *rootOptions) *cobra.Command {
	var (
		host     string
		port     int
		noBackup bool
	)
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the JSON API on the loopback interface",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := o.config()
			if err != nil {
				return err
			}
			// request logs follow LOG_LEVEL
			level := cfg.LogLevel
			if o.verbose {
				level = "debug"
			}
			infra.SetupLogger(cfg.Env, level)

			if cmd.Flags().Changed("host") {
				cfg.Host = host
			}
			if cmd.Flags().Changed("port") {
				cfg.Port = port
			}
			if cfg.BackupOnStart && !noBackup {
				infra.StartupBackup(cfg.DatabasePath, cfg.BackupDir)
			}

			a, err := openWith(cfg)
			if err != nil {
				return err
			}
			defer a.Close()

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return server.Run(ctx, cfg, a.db)
		},
	}
	cmd.Flags().StringVar(&host, "host", "127.0.0.1", "Listen address")
	cmd.Flags().IntVar(&port, "port", 8000, "Listen port")
	cmd.Flags().BoolVar(&noBackup, "no-backup", false, "Skip the start-up backup")
	return cmd
}
