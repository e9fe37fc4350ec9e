package submission

import "fmt"

// MetadataError reports a missing or unusable metadata.yaml. The submission is dropped.
type MetadataError struct {
	Path string
	Err  error
}

func (e *MetadataError) Error() string {
	return fmt.Sprintf("metadata %s: %v", e.Path, e.Err)
}

func (e *MetadataError) Unwrap() error { return e.Err }

// ReportError reports an unreadable report.jsonl. The submission is dropped.
type ReportError struct {
	Path string
	Err  error
}

func (e *ReportError) Error() string {
	return fmt.Sprintf("report %s: %v", e.Path, e.Err)
}

func (e *ReportError) Unwrap() error { return e.Err }
