package leaderboard

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"leaderboard/internal/submission"
)

// Group is one leaderboard tab.
type Group struct {
	TabName     string              `json:"tabName"`
	DisplayName string              `json:"displayName"`
	Models      []submission.Record `json:"models"`
}

// Leaderboard is the output document: one Group per index entry, in index order.
type Leaderboard []Group

// Submissions counts the records across all groups.
func (l Leaderboard) Submissions() int {
	n := 0
	for _, g := range l {
		n += len(g.Models)
	}
	return n
}

// Marshal renders the document with two-space indentation and no HTML escaping.
func Marshal(board Leaderboard) ([]byte, error) {
	out := make(Leaderboard, len(board))
	for i, g := range board {
		if g.Models == nil {
			g.Models = []submission.Record{}
		}
		out[i] = g
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return nil, fmt.Errorf("failed to marshal leaderboard: %w", err)
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

// Write serializes board to path, creating the parent directory and
// replacing any previous content.
func Write(path string, board Leaderboard) error {
	data, err := Marshal(board)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write leaderboard: %w", err)
	}
	return nil
}

// Read loads a previously written leaderboard document.
func Read(path string) (Leaderboard, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read leaderboard: %w", err)
	}
	var board Leaderboard
	if err := json.Unmarshal(data, &board); err != nil {
		return nil, fmt.Errorf("failed to parse leaderboard %s: %w", path, err)
	}
	return board, nil
}
