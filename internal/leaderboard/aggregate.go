// Package leaderboard aggregates evaluation submissions per index group and
// writes the consolidated leaderboard document.
package leaderboard

import (
	"context"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"slices"
	"strings"

	"leaderboard/internal/index"
	"leaderboard/internal/logging"
	"leaderboard/internal/submission"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Aggregator builds leaderboard groups from an evaluation tree.
type Aggregator struct {
	// EvaluationDir is the evaluation tree on disk.
	EvaluationDir string
	// BasePath is the published, slash-separated name of EvaluationDir ("evaluation").
	BasePath string
	// LinkBase prefixes logs/trajs URLs.
	LinkBase string

	logger *zap.Logger
}

// NewAggregator creates an Aggregator.
func NewAggregator(evaluationDir, basePath, linkBase string, logger *zap.Logger) *Aggregator {
	return &Aggregator{
		EvaluationDir: evaluationDir,
		BasePath:      basePath,
		LinkBase:      linkBase,
		logger:        logging.For(logger, logging.CategoryAggregate),
	}
}

// Build aggregates every group of idx, one group at a time, in index order.
func (a *Aggregator) Build(ctx context.Context, idx *index.Index) (Leaderboard, error) {
	board := make(Leaderboard, 0, idx.Len())
	for _, spec := range idx.Groups() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		models, err := a.Group(ctx, spec)
		if err != nil {
			return nil, err
		}
		board = append(board, Group{
			TabName:     spec.TabName,
			DisplayName: spec.DisplayName,
			Models:      models,
		})
	}
	return board, nil
}

// outcome is the result slot of one submission task.
type outcome struct {
	entry  string
	record submission.Record
	err    error
}

// Group loads every submission of spec concurrently and returns the survivors
// sorted by resolved, descending. Failed submissions are logged and dropped.
func (a *Aggregator) Group(ctx context.Context, spec index.GroupSpec) ([]submission.Record, error) {
	groupDir := filepath.Join(a.EvaluationDir, spec.TabName)
	entries, err := ListSubmissions(groupDir)
	if err != nil {
		return nil, fmt.Errorf("group %s: %w", spec.Key, err)
	}

	log := a.logger.With(zap.String("group", spec.Key))
	log.Debug("aggregating group", zap.String("dir", groupDir), zap.Int("submissions", len(entries)))

	basePath := path.Join(a.BasePath, spec.TabName)
	outcomes := make([]outcome, len(entries))

	// Tasks report failures through their slot so siblings are never cancelled.
	var g errgroup.Group
	for i, name := range entries {
		i, name := i, name
		g.Go(func() error {
			outcomes[i].entry = name
			if err := ctx.Err(); err != nil {
				outcomes[i].err = err
				return nil
			}
			src := submission.Source{
				Dir:      filepath.Join(groupDir, name),
				BasePath: basePath,
				Entry:    name,
			}
			outcomes[i].record, outcomes[i].err = submission.Load(src, a.LinkBase, log.With(zap.String("submission", name)))
			return nil
		})
	}
	_ = g.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	records := make([]submission.Record, 0, len(outcomes))
	for _, o := range outcomes {
		if o.err != nil {
			log.Error("dropping submission", zap.String("submission", o.entry), zap.Error(o.err))
			continue
		}
		records = append(records, o.record)
	}

	SortByResolved(records)
	log.Info("group aggregated",
		zap.Int("kept", len(records)),
		zap.Int("dropped", len(outcomes)-len(records)))
	return records, nil
}

// ListSubmissions returns the visible subdirectory names of dir in lexical order.
func ListSubmissions(dir string) ([]string, error) {
	dirents, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(dirents))
	for _, d := range dirents {
		if !d.IsDir() || strings.HasPrefix(d.Name(), ".") {
			continue
		}
		names = append(names, d.Name())
	}
	return names, nil
}

// SortByResolved orders records by resolved count, descending. Ties keep their order.
func SortByResolved(records []submission.Record) {
	slices.SortStableFunc(records, func(a, b submission.Record) int {
		return b.Resolved - a.Resolved
	})
}
