package main

import (
	"fmt"
	"os"
	"strings"

	"leaderboard/cmd/leaderboard/ui"
	"leaderboard/internal/leaderboard"
	"leaderboard/internal/logging"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var showTop int

// showCmd renders a built leaderboard
var showCmd = &cobra.Command{
	Use:   "show [tab...]",
	Short: "Print the built leaderboard as tables",
	Long: `Reads the output document written by build and prints one ranking
table per group. Pass tab names to restrict the output.

Example:
  leaderboard show
  leaderboard show python --top 5`,
	RunE: runShow,
}

func runShow(cmd *cobra.Command, args []string) error {
	applyOverrides()
	out := cfg.OutputPath(workspace)
	board, err := leaderboard.Read(out)
	if err != nil {
		return err
	}

	wanted := make(map[string]bool, len(args))
	for _, a := range args {
		wanted[strings.ToLower(a)] = true
	}

	styles := ui.DefaultStyles()
	if f, ok := cmd.OutOrStdout().(*os.File); !ok || f != os.Stdout {
		styles = ui.PlainStyles()
	}

	shown := 0
	w := cmd.OutOrStdout()
	for _, g := range board {
		if len(wanted) > 0 && !wanted[strings.ToLower(g.TabName)] {
			continue
		}
		fmt.Fprintln(w, ui.GroupTable(g, showTop, styles).View(styles))
		shown++
	}

	logging.For(logger, logging.CategoryRender).Debug("rendered leaderboard",
		zap.String("path", out),
		zap.Int("groups", shown))
	if shown == 0 && len(wanted) > 0 {
		fmt.Fprintf(w, "No groups matched %s\n", strings.Join(args, ", "))
	}
	return nil
}
