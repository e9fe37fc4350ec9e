package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"leaderboard/internal/config"
	"leaderboard/internal/logging"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Global flags
	verbose    bool
	workspace  string
	configPath string

	// Resolved at startup
	cfg    *config.Config
	logger *zap.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "leaderboard",
	Short: "Aggregate evaluation submissions into the leaderboard document",
	Long: `leaderboard reads lite_index.yaml and the evaluation/<tab>/<submission>/
tree, tallies every report.jsonl and writes dist/leaderboard-mini.json.

Run without arguments to build the leaderboard.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if workspace == "" {
			wd, err := os.Getwd()
			if err != nil {
				return fmt.Errorf("failed to resolve workspace: %w", err)
			}
			workspace = wd
		}
		if configPath == "" {
			configPath = config.Resolve(workspace, config.DefaultFileName)
		}

		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			return err
		}

		logger, err = logging.New(cfg.Logging, verbose)
		if err != nil {
			return err
		}
		logging.For(logger, logging.CategoryBoot).Debug("configuration loaded",
			zap.String("workspace", workspace),
			zap.String("config", configPath))
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: runBuild,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVarP(&workspace, "workspace", "w", "", "Workspace directory (default: current)")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default: <workspace>/leaderboard.yaml)")

	addBuildFlags(rootCmd)
	addBuildFlags(buildCmd)
	showCmd.Flags().IntVar(&showTop, "top", 0, "Only show the first N submissions per group")
	showCmd.Flags().StringVar(&overrides.output, "output", "", "Leaderboard document to read (default: dist/leaderboard-mini.json)")

	rootCmd.AddCommand(buildCmd)
	rootCmd.AddCommand(showCmd)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
