package cmd

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/growthfit/internal/logging"
	"github.com/abhisek/growthfit/internal/store"
)

// logger is set by the root command's PersistentPreRunE.
var logger = zap.NewNop()

var rootCmd = &cobra.Command{
	Use:   "growthfit",
	Short: "Career-fit assessment for Lifecycle & Growth Management",
	Long: "GrowthFit is a terminal self-assessment that scores your psychological fit, " +
		"technical readiness and WISCAR profile for a career in growth management.",
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// A missing .env is fine; the environment may already be set.
		_ = godotenv.Load()

		l, err := logging.New(flagOrEnv(cmd, "log-level", "GROWTHFIT_LOG_LEVEL", "warn"),
			flagOrEnv(cmd, "log-format", "GROWTHFIT_LOG_FORMAT", "console"))
		if err != nil {
			return err
		}
		logger = l
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTake(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides GROWTHFIT_DB env var)")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn, error (default warn, env GROWTHFIT_LOG_LEVEL)")
	rootCmd.PersistentFlags().String("log-format", "", "Log format: console or json (env GROWTHFIT_LOG_FORMAT)")
	rootCmd.Flags().Bool("no-save", false, "Do not save the result to history")

	rootCmd.AddCommand(takeCmd)
	rootCmd.AddCommand(scoreCmd)
	rootCmd.AddCommand(questionsCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(versionCmd)
}

// flagOrEnv returns the named flag when set, then the environment variable,
// then def.
func flagOrEnv(cmd *cobra.Command, flag, env, def string) string {
	if v, _ := cmd.Flags().GetString(flag); v != "" {
		return v
	}
	if v := os.Getenv(env); v != "" {
		return v
	}
	return def
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then GROWTHFIT_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// openStore resolves the database path and opens it.
func openStore(cmd *cobra.Command) (*store.Store, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	logger.Debug("store opened", zap.String("path", dbPath))
	return st, nil
}
