package model

import "time"

// ReportSetVersion is the current ReportSet schema version.
const ReportSetVersion = 1

// Report holds the detected indentation signature for a single file.
type Report struct {
	Path      Path   `yaml:"path"`
	Hash      string `yaml:"hash,omitempty"`
	Signature string `yaml:"signature"`
	Lines     int    `yaml:"lines"`
}

// ReportSet is the persisted outcome of one detection run.
type ReportSet struct {
	Version     int       `yaml:"version"`
	GeneratedAt time.Time `yaml:"generated_at"`
	Reports     []Report  `yaml:"reports"`
}
