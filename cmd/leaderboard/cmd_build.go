package main

import (
	"fmt"
	"path"
	"path/filepath"
	"time"

	"leaderboard/internal/index"
	"leaderboard/internal/leaderboard"
	"leaderboard/internal/logging"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// buildOverrides are flag values layered over the config file.
type buildOverrides struct {
	index      string
	evaluation string
	output     string
	linkBase   string
}

var overrides buildOverrides

// buildCmd runs the full aggregation pipeline
var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build dist/leaderboard-mini.json from the evaluation tree",
	Long: `Loads the group index, aggregates every submission of every group and
writes the leaderboard document, replacing any previous output.

Submissions with unreadable metadata or reports are logged and skipped.
A missing or malformed index aborts the build.`,
	Args: cobra.NoArgs,
	RunE: runBuild,
}

func addBuildFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&overrides.index, "index", "", "Group index file (default: lite_index.yaml)")
	cmd.Flags().StringVar(&overrides.evaluation, "evaluation", "", "Evaluation tree (default: evaluation)")
	cmd.Flags().StringVar(&overrides.output, "output", "", "Output document (default: dist/leaderboard-mini.json)")
	cmd.Flags().StringVar(&overrides.linkBase, "link-base", "", "Base URL for logs/trajs links")
}

// applyOverrides folds non-empty flag values into the loaded config.
func applyOverrides() {
	if overrides.index != "" {
		cfg.Paths.Index = overrides.index
	}
	if overrides.evaluation != "" {
		cfg.Paths.Evaluation = overrides.evaluation
	}
	if overrides.output != "" {
		cfg.Paths.Output = overrides.output
	}
	if overrides.linkBase != "" {
		cfg.Links.BaseURL = overrides.linkBase
	}
}

func runBuild(cmd *cobra.Command, args []string) error {
	applyOverrides()
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	start := time.Now()
	ctx := cmd.Context()

	idx, err := index.Load(cfg.IndexPath(workspace))
	if err != nil {
		return err
	}
	logging.For(logger, logging.CategoryIndex).Info("index loaded", zap.Int("groups", idx.Len()))

	basePath := path.Clean(filepath.ToSlash(cfg.Paths.Evaluation))
	agg := leaderboard.NewAggregator(cfg.EvaluationPath(workspace), basePath, cfg.Links.BaseURL, logger)
	board, err := agg.Build(ctx, idx)
	if err != nil {
		return err
	}

	out := cfg.OutputPath(workspace)
	if err := leaderboard.Write(out, board); err != nil {
		return err
	}
	logging.For(logger, logging.CategoryAssemble).Info("leaderboard written",
		zap.String("path", out),
		zap.Int("groups", len(board)),
		zap.Int("submissions", board.Submissions()),
		zap.Duration("elapsed", time.Since(start)))

	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d groups (%d submissions) to %s\n", len(board), board.Submissions(), out)
	return nil
}
