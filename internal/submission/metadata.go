package submission

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// DateLayout is the normalized calendar date format.
const DateLayout = "2006-01-02"

// Metadata is the parsed metadata.yaml of a submission.
type Metadata struct {
	Name     string
	OSS      bool
	Verified bool
	OrgIcon  string
	Site     string
	Date     string
}

// rawMetadata distinguishes absent required fields from zero values.
type rawMetadata struct {
	Name     *string   `yaml:"name"`
	OSS      *bool     `yaml:"oss"`
	Verified *bool     `yaml:"verified"`
	OrgIcon  *string   `yaml:"orgIcon"`
	Site     *string   `yaml:"site"`
	Date     yaml.Node `yaml:"date"`
}

// LoadMetadata reads <dir>/metadata.yaml.
func LoadMetadata(dir string) (Metadata, error) {
	path := metadataPath(dir)
	data, err := os.ReadFile(path)
	if err != nil {
		return Metadata{}, &MetadataError{Path: path, Err: err}
	}
	md, err := ParseMetadata(data)
	if err != nil {
		return Metadata{}, &MetadataError{Path: path, Err: err}
	}
	return md, nil
}

// ParseMetadata decodes metadata YAML and checks required fields.
func ParseMetadata(data []byte) (Metadata, error) {
	var raw rawMetadata
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return Metadata{}, fmt.Errorf("failed to parse metadata YAML: %w", err)
	}

	var missing []string
	if raw.Name == nil {
		missing = append(missing, "name")
	}
	if raw.OSS == nil {
		missing = append(missing, "oss")
	}
	if raw.Verified == nil {
		missing = append(missing, "verified")
	}
	if raw.Site == nil {
		missing = append(missing, "site")
	}
	if raw.Date.Kind == 0 || raw.Date.ShortTag() == "!!null" {
		missing = append(missing, "date")
	}
	if len(missing) > 0 {
		return Metadata{}, fmt.Errorf("missing required fields %v", missing)
	}

	date, err := normalizeDate(&raw.Date)
	if err != nil {
		return Metadata{}, err
	}

	md := Metadata{
		Name:     *raw.Name,
		OSS:      *raw.OSS,
		Verified: *raw.Verified,
		Site:     *raw.Site,
		Date:     date,
	}
	if raw.OrgIcon != nil {
		md.OrgIcon = *raw.OrgIcon
	}
	return md, nil
}

// normalizeDate renders YAML timestamps as their UTC calendar date and keeps
// any other scalar verbatim.
func normalizeDate(node *yaml.Node) (string, error) {
	if node.Kind != yaml.ScalarNode {
		return "", fmt.Errorf("line %d: date must be a scalar", node.Line)
	}
	if node.ShortTag() == "!!timestamp" {
		var ts time.Time
		if err := node.Decode(&ts); err != nil {
			return "", fmt.Errorf("line %d: invalid date: %w", node.Line, err)
		}
		return ts.UTC().Format(DateLayout), nil
	}
	return node.Value, nil
}
