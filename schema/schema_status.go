package schema

import "time"

// LoadStats summarizes a single pass over a record source.
type LoadStats struct {
	Backend      SourceBackend `json:"backend"`
	Location     string        `json:"location"`
	FilesRead    int           `json:"files_read"`
	FilesSkipped int           `json:"files_skipped"`
	LinesRead    int           `json:"lines_read"`
	Records      int           `json:"records"`
	LinesSkipped int           `json:"lines_skipped"`
}

// DatasetStatus describes a loaded dataset.
type DatasetStatus struct {
	LoadStats
	DistinctNames int       `json:"distinct_names"`
	Years         YearRange `json:"years"`
	FemaleTotal   int       `json:"female_total"`
	MaleTotal     int       `json:"male_total"`
	OtherTotal    int       `json:"other_total"`
	States        int       `json:"states"`
}

// StoreStatus represents the status of an imported SQL dataset.
type StoreStatus struct {
	Backend          string    `json:"backend"`
	Connected        bool      `json:"connected"`
	SchemaVersion    uint      `json:"schema_version"`
	Dirty            bool      `json:"dirty"`
	TotalRows        int       `json:"total_rows"`
	DistinctNames    int       `json:"distinct_names"`
	Years            YearRange `json:"years"`
	LastImportedTime time.Time `json:"last_imported_time"`
}
