package commands

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/matheuseschaves/supermarket-tracker/cmd/tracker/output"
	"github.com/matheuseschaves/supermarket-tracker/internal/config"
	"github.com/matheuseschaves/supermarket-tracker/internal/infra"
	"github.com/matheuseschaves/supermarket-tracker/internal/repository"
	"github.com/matheuseschaves/supermarket-tracker/internal/service"

	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

// rootOptions holds the global flags.
type rootOptions struct {
	dbPath     string
	verbose    bool
	jsonOutput bool
}

// app is the wired service layer behind every command.
type app struct {
	cfg        *config.Config
	db         *gorm.DB
	categories service.CategoryService
	stores     service.StoreService
	products   service.ProductService
	purchases  service.PurchaseService
}

func (a *app) Close() error { return infra.Close(a.db) }

// config loads the environment and applies the global flags on top.
func (o *rootOptions) config() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if o.dbPath != "" {
		cfg.DatabasePath = o.dbPath
	}
	level := "warn"
	if o.verbose {
		level = "debug"
	}
	infra.SetupLogger(cfg.Env, level)
	return cfg, nil
}

// open loads configuration, opens (and migrates) the database and wires
// the services.
func (o *rootOptions) open() (*app, error) {
	cfg, err := o.config()
	if err != nil {
		return nil, err
	}
	return openWith(cfg)
}

func openWith(cfg *config.Config) (*app, error) {
	db, err := infra.NewDatabase(cfg.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database %s: %w", cfg.DatabasePath, err)
	}

	categoryRepo := repository.NewCategoryRepository(db)
	storeRepo := repository.NewStoreRepository(db)
	productRepo := repository.NewProductRepository(db)
	purchaseRepo := repository.NewPurchaseRepository(db)

	return &app{
		cfg:        cfg,
		db:         db,
		categories: service.NewCategoryService(categoryRepo),
		stores:     service.NewStoreService(storeRepo),
		products:   service.NewProductService(productRepo, categoryRepo, cfg.SearchLimit),
		purchases:  service.NewPurchaseService(purchaseRepo, productRepo, storeRepo),
	}, nil
}

// withApp opens the app for the duration of fn.
func (o *rootOptions) withApp(fn func(a *app) error) error {
	a, err := o.open()
	if err != nil {
		return err
	}
	defer a.Close()
	return fn(a)
}

// render prints v as JSON under --json, otherwise calls human.
func (o *rootOptions) render(v any, human func()) error {
	if o.jsonOutput {
		return output.JSON(v)
	}
	human()
	return nil
}

// confirm asks a yes/no question on in. Anything but s/sim/y/yes is no.
func confirm(in io.Reader, question string) bool {
	output.Warning("%s [s/N]", question)
	switch strings.ToLower(strings.TrimSpace(readLine(in))) {
	case "s", "sim", "y", "yes":
		return true
	}
	return false
}

// readLine reads up to a newline without buffering past it, so several
// prompts can share one input stream.
func readLine(in io.Reader) string {
	var sb strings.Builder
	b := make([]byte, 1)
	for {
		n, err := in.Read(b)
		if n == 1 {
			if b[0] == '\n' {
				break
			}
			sb.WriteByte(b[0])
		}
		if err != nil {
			break
		}
	}
	return sb.String()
}

// NewRootCmd builds the tracker command tree.
func NewRootCmd() *cobra.Command {
	o := &rootOptions{}

	root := &cobra.Command{
		Use:   "tracker",
		Short: "Supermarket price tracker",
		Long: `Record supermarket purchases and compare prices across stores.

Data lives in a local SQLite file (supermercado.db by default). The schema
is created and patched automatically on every run.

Examples:
  tracker products save --nome Leite --marca "Marca X" --categoria Laticínios
  tracker purchases add --produto "Leite (Marca X)" --supermercado Extra --preco 4,99
  tracker stats Leite
  tracker serve`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags
	root.PersistentFlags().StringVar(&o.dbPath, "db", "", "Database file (default $DATABASE_PATH or supermercado.db)")
	root.PersistentFlags().BoolVarP(&o.verbose, "verbose", "v", false, "Verbose output")
	root.PersistentFlags().BoolVar(&o.jsonOutput, "json", false, "Output in JSON format")

	root.AddCommand(
		newCategoriesCmd(o),
		newProductsCmd(o),
		newSearchCmd(o),
		newStoresCmd(o),
		newPurchasesCmd(o),
		newStatsCmd(o),
		newPayersCmd(o),
		newChartCmd(o),
		newBackupCmd(o),
		newServeCmd(o),
	)
	return root
}

// Execute runs the root command
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		output.Error("%s", err)
		os.Exit(1)
	}
}
