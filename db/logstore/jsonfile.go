package logstore

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/zyronlabs/recall/logger"
)

type FileStore struct {
	path   string
	logger logger.Logger
}

func NewFileStore(logger logger.Logger, path string) *FileStore {
	return &FileStore{path: path, logger: logger}
}

// Records reads the whole JSON log. A missing log file is not an error,
// it just means no activity has been tracked yet. Individual entries
// that fail to decode are skipped so one bad record cannot take down a
// search.
func (s *FileStore) Records() ([]Record, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		s.logger.Error("failed to read activity log", "path", s.path, "err", err.Error())
		return nil, fmt.Errorf("failed to read activity log %s: %w", s.path, err)
	}

	var rawRecords []json.RawMessage
	if err := json.Unmarshal(data, &rawRecords); err != nil {
		s.logger.Error("activity log is not a JSON array", "path", s.path, "err", err.Error())
		return nil, fmt.Errorf("failed to parse activity log %s: %w", s.path, err)
	}

	records := make([]Record, 0, len(rawRecords))
	for i, raw := range rawRecords {
		var record Record
		if err := json.Unmarshal(raw, &record); err != nil {
			s.logger.Warn("skipping malformed activity log entry", "index", i, "err", err.Error())
			continue
		}
		records = append(records, record)
	}

	return records, nil
}
