// Package report tallies report.jsonl result logs: one JSON record per line,
// each reporting a single evaluated instance via its "success" field.
package report

import (
	"bytes"
	"fmt"
	"os"
	"unicode/utf8"

	"github.com/tidwall/gjson"
	"go.uber.org/zap"
)

// LFSPointerPrefix marks a git-lfs pointer checked in instead of the real log.
const LFSPointerPrefix = "version https://git-lfs.github.com/spec/v1"

// previewLen bounds how much of a bad line is echoed into warnings.
const previewLen = 50

// Tally summarizes a result log.
type Tally struct {
	Resolved    int  // records with "success": true
	Total       int  // records that parsed
	Skipped     int  // non-blank lines that did not parse
	Placeholder bool // the log was an LFS pointer
}

// Rate is Resolved/Total, or 0 for an empty log.
func (t Tally) Rate() float64 {
	if t.Total == 0 {
		return 0
	}
	return float64(t.Resolved) / float64(t.Total)
}

// ParseFile reads and tallies the log at path. Only the read can fail.
func ParseFile(path string, logger *zap.Logger) (Tally, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Tally{}, fmt.Errorf("failed to read report: %w", err)
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return Parse(data, logger.With(zap.String("file", path))), nil
}

// Parse tallies log content. Malformed lines are skipped with a warning.
func Parse(data []byte, logger *zap.Logger) Tally {
	if logger == nil {
		logger = zap.NewNop()
	}

	var t Tally
	content := bytes.TrimSpace(data)
	if bytes.HasPrefix(content, []byte(LFSPointerPrefix)) {
		logger.Warn("detected git lfs pointer file, actual content not available")
		t.Placeholder = true
		return t
	}

	for lineNo, raw := range bytes.Split(content, []byte("\n")) {
		line := bytes.TrimSpace(raw)
		if len(line) == 0 {
			continue
		}

		// null parses but carries no record.
		if !gjson.ValidBytes(line) || bytes.Equal(line, []byte("null")) {
			t.Skipped++
			logger.Warn("skipping invalid JSON line",
				zap.Int("line", lineNo+1),
				zap.String("preview", preview(line)))
			continue
		}

		t.Total++
		if gjson.GetBytes(line, "success").Type == gjson.True {
			t.Resolved++
		}
	}

	logger.Debug("report tallied",
		zap.Int("resolved", t.Resolved),
		zap.Int("total", t.Total),
		zap.Int("skipped", t.Skipped))
	return t
}

func preview(line []byte) string {
	if utf8.RuneCount(line) <= previewLen {
		return string(line)
	}
	n := 0
	for i := range string(line) {
		if n == previewLen {
			return string(line[:i]) + "..."
		}
		n++
	}
	return string(line)
}
