// Command server runs the Rentiful application-to-lease API and its
// maintenance tasks.
package main

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/Ahmed-Ehab99/rentiful-realestate/internal/config"
	"github.com/Ahmed-Ehab99/rentiful-realestate/internal/storage/sqlstore"
	"github.com/Ahmed-Ehab99/rentiful-realestate/pkg/logging"
)

var (
	cfg     *config.Config
	envFile string
)

var rootCmd = &cobra.Command{
	Use:           "rentiful",
	Short:         "Rentiful rental marketplace server",
	SilenceUsage:  true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := config.Load(envFile)
		if err != nil {
			return err
		}
		cfg = loaded
		logging.Setup(cfg.LogLevel, cfg.LogFormat)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "optional dotenv file loaded before the environment is read")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(paymentsCmd)
	rootCmd.AddCommand(tokenCmd)
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

// openStore connects to the configured database.
func openStore() (*sqlstore.Store, error) {
	return sqlstore.New(cfg.DBDriver, cfg.DBDSN, sqlstore.WithTxTimeout(cfg.TxTimeout))
}
