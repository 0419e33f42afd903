package model

import "time"

// LoadSummary captures metrics from a single record-set load.
type LoadSummary struct {
	LoadID         string        `json:"load_id"`
	Generation     uint64        `json:"generation"`
	Source         string        `json:"source"`
	SourceSHA256   string        `json:"source_sha256"`
	RowsRead       int           `json:"rows_read"`
	RowsKept       int           `json:"rows_kept"`
	RowsDropped    int           `json:"rows_dropped"`
	IgnoredColumns []string      `json:"ignored_columns,omitempty"`
	Applied        bool          `json:"applied"`
	Unchanged      bool          `json:"unchanged,omitempty"`
	LoadedAt       time.Time     `json:"loaded_at"`
	DurationRead   time.Duration `json:"duration_read"`
	DurationParse  time.Duration `json:"duration_parse"`
	DurationTotal  time.Duration `json:"duration_total"`
}
