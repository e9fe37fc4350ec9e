// Package submission turns one evaluation/<tab>/<entry>/ directory into a
// leaderboard Record: metadata.yaml, the report.jsonl tally and the
// presence of logs/, trajs/ and README.md.
package submission

import (
	"os"
	"path"
	"path/filepath"
	"strings"

	"leaderboard/internal/logging"
	"leaderboard/internal/report"

	"go.uber.org/zap"
)

const (
	metadataFile = "metadata.yaml"
	reportFile   = "report.jsonl"
	readmeFile   = "README.md"
	logsDir      = "logs"
	trajsDir     = "trajs"
)

// Record is one leaderboard row. Field order is the JSON key order.
type Record struct {
	Name           string  `json:"name"`
	OSS            bool    `json:"oss"`
	Verified       bool    `json:"verified"`
	OrgIcon        string  `json:"orgIcon,omitempty"`
	Site           string  `json:"site"`
	Date           string  `json:"date"`
	ResolvedRate   float64 `json:"resolvedRate"`
	Resolved       int     `json:"resolved"`
	ResolvedEasy   int     `json:"resolvedEasy"`
	ResolvedMedium int     `json:"resolvedMedium"`
	ResolvedHard   int     `json:"resolvedHard"`
	Path           string  `json:"path"`
	Logs           string  `json:"logs,omitempty"`
	Trajs          string  `json:"trajs,omitempty"`
	HasLogs        bool    `json:"hasLogs"`
	HasTrajs       bool    `json:"hasTrajs"`
	HasReadme      bool    `json:"hasReadme"`
}

// Source locates a submission on disk and in published links.
type Source struct {
	// Dir is the submission directory on disk.
	Dir string
	// BasePath is the slash-separated group path as published, e.g. "evaluation/python".
	BasePath string
	// Entry is the submission directory name.
	Entry string
}

// Path returns the published path of the submission.
func (s Source) Path() string {
	return path.Join(s.BasePath, s.Entry)
}

// Load builds the Record for src. linkBase prefixes the logs/trajs URLs.
func Load(src Source, linkBase string, logger *zap.Logger) (Record, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	md, err := LoadMetadata(src.Dir)
	if err != nil {
		return Record{}, err
	}

	reportPath := filepath.Join(src.Dir, reportFile)
	tally, err := report.ParseFile(reportPath, logging.For(logger, logging.CategoryReport))
	if err != nil {
		return Record{}, &ReportError{Path: reportPath, Err: err}
	}

	probes := Probe(src.Dir)
	pubPath := src.Path()

	rec := Record{
		Name:         md.Name,
		OSS:          md.OSS,
		Verified:     md.Verified,
		OrgIcon:      md.OrgIcon,
		Site:         md.Site,
		Date:         md.Date,
		ResolvedRate: tally.Rate(),
		Resolved:     tally.Resolved,
		// No difficulty labels exist in report.jsonl; every bucket carries the overall count.
		ResolvedEasy:   tally.Resolved,
		ResolvedMedium: tally.Resolved,
		ResolvedHard:   tally.Resolved,
		Path:           pubPath,
		HasLogs:        probes.Logs,
		HasTrajs:       probes.Trajs,
		HasReadme:      probes.Readme,
	}
	if probes.Logs {
		rec.Logs = Link(linkBase, pubPath, logsDir)
	}
	if probes.Trajs {
		rec.Trajs = Link(linkBase, pubPath, trajsDir)
	}

	logger.Debug("submission loaded",
		zap.String("name", rec.Name),
		zap.Int("resolved", tally.Resolved),
		zap.Int("total", tally.Total),
		zap.Bool("placeholder", tally.Placeholder))
	return rec, nil
}

// Probes records which optional artifacts a submission ships.
type Probes struct {
	Logs   bool
	Trajs  bool
	Readme bool
}

// Probe checks for logs/, trajs/ and README.md. Absence is never an error.
func Probe(dir string) Probes {
	return Probes{
		Logs:   exists(filepath.Join(dir, logsDir)),
		Trajs:  exists(filepath.Join(dir, trajsDir)),
		Readme: exists(filepath.Join(dir, readmeFile)),
	}
}

func exists(p string) bool {
	_, err := os.Stat(p)
	return err == nil
}

// Link templates "<base>/<path>/<leaf>".
func Link(base, pubPath, leaf string) string {
	return strings.TrimRight(base, "/") + "/" + strings.Trim(pubPath, "/") + "/" + leaf
}

func metadataPath(dir string) string {
	return filepath.Join(dir, metadataFile)
}
