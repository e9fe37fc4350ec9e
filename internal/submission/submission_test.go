package submission

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const validMetadata = `name: ToolA
oss: true
verified: false
orgIcon: https://example.com/icon.png
site: https://example.com
date: 2025-03-14
`

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func TestParseMetadata(t *testing.T) {
	md, err := ParseMetadata([]byte(validMetadata))
	require.NoError(t, err)
	assert.Equal(t, Metadata{
		Name:     "ToolA",
		OSS:      true,
		Verified: false,
		OrgIcon:  "https://example.com/icon.png",
		Site:     "https://example.com",
		Date:     "2025-03-14",
	}, md)
}

func TestParseMetadata_DateForms(t *testing.T) {
	tests := []struct {
		name string
		date string
		want string
	}{
		{"plain date", "2024-11-02", "2024-11-02"},
		{"timestamp normalized to UTC", "2024-11-02T23:30:00-05:00", "2024-11-03"},
		{"quoted string kept", `"2024-11-02"`, "2024-11-02"},
		{"free text kept", "Nov 2024", "Nov 2024"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := "name: x\noss: false\nverified: true\nsite: s\ndate: " + tt.date + "\n"
			md, err := ParseMetadata([]byte(doc))
			require.NoError(t, err)
			assert.Equal(t, tt.want, md.Date)
		})
	}
}

func TestParseMetadata_OrgIconOptional(t *testing.T) {
	md, err := ParseMetadata([]byte("name: x\noss: false\nverified: true\nsite: s\ndate: 2024-01-01\n"))
	require.NoError(t, err)
	assert.Empty(t, md.OrgIcon)
}

func TestParseMetadata_Invalid(t *testing.T) {
	tests := map[string]string{
		"syntax":         "name: [x",
		"missing name":   "oss: true\nverified: true\nsite: s\ndate: 2024-01-01\n",
		"missing oss":    "name: x\nverified: true\nsite: s\ndate: 2024-01-01\n",
		"missing date":   "name: x\noss: true\nverified: true\nsite: s\n",
		"null date":      "name: x\noss: true\nverified: true\nsite: s\ndate: ~\n",
		"oss not bool":   "name: x\noss: maybe\nverified: true\nsite: s\ndate: 2024-01-01\n",
		"date not value": "name: x\noss: true\nverified: true\nsite: s\ndate: [2024]\n",
	}

	for name, doc := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := ParseMetadata([]byte(doc))
			assert.Error(t, err)
		})
	}
}

func TestLoad_FullSubmission(t *testing.T) {
	root := t.TempDir()
	dir := filepath.Join(root, "toolA")
	writeFile(t, filepath.Join(dir, "metadata.yaml"), validMetadata)
	writeFile(t, filepath.Join(dir, "report.jsonl"), "{\"success\":true}\n{\"success\":false}\n")
	writeFile(t, filepath.Join(dir, "README.md"), "# ToolA\n")
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "logs"), 0o755))

	src := Source{Dir: dir, BasePath: "evaluation/python", Entry: "toolA"}
	rec, err := Load(src, "https://github.com/org/repo/tree/main/evaluation", zap.NewNop())
	require.NoError(t, err)

	assert.Equal(t, Record{
		Name:           "ToolA",
		OSS:            true,
		OrgIcon:        "https://example.com/icon.png",
		Site:           "https://example.com",
		Date:           "2025-03-14",
		ResolvedRate:   0.5,
		Resolved:       1,
		ResolvedEasy:   1,
		ResolvedMedium: 1,
		ResolvedHard:   1,
		Path:           "evaluation/python/toolA",
		Logs:           "https://github.com/org/repo/tree/main/evaluation/evaluation/python/toolA/logs",
		HasLogs:        true,
		HasReadme:      true,
	}, rec)
}

func TestLoad_EmptyReport(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "toolB")
	writeFile(t, filepath.Join(dir, "metadata.yaml"), validMetadata)
	writeFile(t, filepath.Join(dir, "report.jsonl"), "")

	rec, err := Load(Source{Dir: dir, BasePath: "evaluation/c", Entry: "toolB"}, "https://x", nil)
	require.NoError(t, err)
	assert.Equal(t, 0, rec.Resolved)
	assert.Equal(t, float64(0), rec.ResolvedRate)
	assert.Empty(t, rec.Logs)
	assert.Empty(t, rec.Trajs)
}

func TestLoad_MissingMetadata(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "toolC")
	writeFile(t, filepath.Join(dir, "report.jsonl"), "{\"success\":true}\n")

	_, err := Load(Source{Dir: dir, BasePath: "evaluation/c", Entry: "toolC"}, "https://x", nil)
	var mdErr *MetadataError
	require.True(t, errors.As(err, &mdErr), "expected MetadataError, got %v", err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestLoad_MissingReport(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "toolD")
	writeFile(t, filepath.Join(dir, "metadata.yaml"), validMetadata)

	_, err := Load(Source{Dir: dir, BasePath: "evaluation/c", Entry: "toolD"}, "https://x", nil)
	var repErr *ReportError
	require.True(t, errors.As(err, &repErr), "expected ReportError, got %v", err)
}

func TestProbe(t *testing.T) {
	dir := t.TempDir()
	assert.Equal(t, Probes{}, Probe(dir))

	require.NoError(t, os.MkdirAll(filepath.Join(dir, "trajs"), 0o755))
	writeFile(t, filepath.Join(dir, "README.md"), "hi")
	assert.Equal(t, Probes{Trajs: true, Readme: true}, Probe(dir))

	assert.Equal(t, Probes{}, Probe(filepath.Join(dir, "does-not-exist")))
}

func TestLink(t *testing.T) {
	assert.Equal(t, "https://h/base/evaluation/go/x/trajs", Link("https://h/base/", "evaluation/go/x", "trajs"))
	assert.Equal(t, "evaluation/go/x", Source{BasePath: "evaluation/go", Entry: "x"}.Path())
}
