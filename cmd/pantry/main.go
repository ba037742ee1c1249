package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"pantry/pkg/application/services"
	"pantry/pkg/config"
	"pantry/pkg/infrastructure/events"
	"pantry/pkg/infrastructure/repositories/memory"
	"pantry/pkg/interfaces/cli"
	"pantry/pkg/interfaces/httpapi"
)

var (
	// Global flags
	verbose bool

	cfg    config.Config
	logger *zap.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "pantry",
	Short: "pantry tracks perishable goods, consumption and expirations in memory",
	Long: `pantry is an in-memory inventory tracker for perishable goods.

It records products with quantities and expiration dates, supports consumption
and restocking, keeps an action history, sweeps out expired products, and
derives a shopping list from consumption history.

Run without arguments to start the interactive menu.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		_ = godotenv.Load()
		cfg = config.Load()

		// The interactive menu owns stdout; keep its logger silent unless asked.
		if cmd.CalledAs() != "serve" && !verbose {
			logger = zap.NewNop()
			return nil
		}

		zcfg := zap.NewProductionConfig()
		if verbose || cfg.LogLevel == "debug" {
			zcfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = zcfg.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runMenu()
	},
}

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Run the interactive pantry shell",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runMenu()
	},
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the pantry REST API",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe()
	},
}

func newService() *services.PantryService {
	return services.NewPantryService(memory.NewProductRepository(), events.NewInMemoryActionLog(), logger)
}

func runMenu() error {
	menu := cli.NewMenu(newService(), os.Stdin, os.Stdout)
	return menu.Run()
}

func runServe() error {
	handler := httpapi.New(newService(), logger)
	addr := ":" + cfg.HTTPPort
	logger.Info("listening", zap.String("addr", addr))
	return http.ListenAndServe(addr, handler.Router())
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.AddCommand(menuCmd, serveCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
