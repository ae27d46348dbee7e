package adapter

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	m "indentect.dev/pkg/indentect/internal/model"
)

// reportFileName is the file a report set is stored under inside the
// reports directory.
const reportFileName = "reports.yaml"

// ReportStore persists detection report sets between runs.
type ReportStore interface {
	Save(dir m.Path, set m.ReportSet) error
	Load(dir m.Path) (m.ReportSet, error)
}

// YAMLReportStore stores report sets as a YAML document on disk.
type YAMLReportStore struct{}

// NewReportStore constructs a YAMLReportStore.
func NewReportStore() *YAMLReportStore {
	return &YAMLReportStore{}
}

// Save writes the report set to dir, creating the directory when needed.
func (s *YAMLReportStore) Save(dir m.Path, set m.ReportSet) error {
	if err := os.MkdirAll(string(dir), 0o750); err != nil {
		return fmt.Errorf("failed to create reports directory: %w", err)
	}

	data, err := yaml.Marshal(&set)
	if err != nil {
		return fmt.Errorf("failed to encode reports: %w", err)
	}

	target := filepath.Join(string(dir), reportFileName)
	if err := os.WriteFile(target, data, 0o600); err != nil {
		return fmt.Errorf("failed to write reports: %w", err)
	}

	slog.Debug("saved reports", "path", target, "count", len(set.Reports))

	return nil
}

// Load reads a previously saved report set from dir.
func (s *YAMLReportStore) Load(dir m.Path) (m.ReportSet, error) {
	target := filepath.Join(string(dir), reportFileName)

	data, err := os.ReadFile(target)
	if err != nil {
		return m.ReportSet{}, fmt.Errorf("failed to read reports: %w", err)
	}

	var set m.ReportSet
	if err := yaml.Unmarshal(data, &set); err != nil {
		return m.ReportSet{}, fmt.Errorf("failed to decode reports: %w", err)
	}

	slog.Debug("loaded reports", "path", target, "count", len(set.Reports))

	return set, nil
}
