// Package logstore reads the file-access log written by the external
// tracker. The log is owned by the tracker; this package is a read-only
// consumer.
package logstore

// Record is one file-access entry as the tracker writes it. Timestamps
// use the fixed encoding "YYYY-MM-DD HH:MM:SS" in local time. Records
// are not guaranteed to be sorted.
type Record struct {
	Timestamp       string `json:"timestamp"`
	FilePath        string `json:"file_path"`
	FileName        string `json:"file_name"`
	FileType        string `json:"file_type"`
	AppUsed         string `json:"app_used"`
	DurationSeconds int64  `json:"duration_seconds"`
}

type Store interface {
	Records() ([]Record, error)
}
