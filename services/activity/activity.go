// Package activity lists recently accessed files straight from the
// access log, without relevance scoring. It backs the chat bot's
// "activities" view.
package activity

import (
	"fmt"
	"slices"
	"sort"
	"strings"
	"time"

	"github.com/zyronlabs/recall/db/logstore"
	"github.com/zyronlabs/recall/logger"
	"github.com/zyronlabs/recall/services/finder"
)

const timestampLayout = "2006-01-02 15:04:05"

const DefaultHoursBack = 24

type Service struct {
	logger logger.Logger
	store  logstore.Store
	now    func() time.Time
}

func New(logger logger.Logger, store logstore.Store) *Service {
	return &Service{
		logger: logger,
		store:  store,
		now:    time.Now,
	}
}

// Recent returns records accessed within the last hoursBack hours,
// newest first, optionally narrowed to a file-type word ("excel",
// "image", a bare extension...). The log is not assumed to be sorted.
func (s *Service) Recent(hoursBack int, fileType string) ([]logstore.Record, error) {
	if hoursBack <= 0 {
		hoursBack = DefaultHoursBack
	}

	records, err := s.store.Records()
	if err != nil {
		return nil, fmt.Errorf("failed to load access log: %w", err)
	}

	var extensions []string
	if fileType != "" {
		extensions = finder.NormalizeFileType(fileType)
		if extensions == nil {
			extensions = []string{strings.ToLower(fileType)}
		}
	}

	now := s.now()
	cutoff := now.Add(-time.Duration(hoursBack) * time.Hour)

	type timedRecord struct {
		record logstore.Record
		at     time.Time
	}
	var recent []timedRecord
	for _, record := range records {
		at, err := time.ParseInLocation(timestampLayout, record.Timestamp, now.Location())
		if err != nil {
			s.logger.Warn("skipping record with bad timestamp", "timestamp", record.Timestamp)
			continue
		}
		if at.Before(cutoff) {
			continue
		}
		if extensions != nil && !slices.Contains(extensions, record.FileType) {
			continue
		}
		recent = append(recent, timedRecord{record: record, at: at})
	}

	sort.SliceStable(recent, func(i, j int) bool {
		return recent[i].at.After(recent[j].at)
	})

	out := make([]logstore.Record, len(recent))
	for i, tr := range recent {
		out[i] = tr.record
	}
	return out, nil
}

const noActivityMessage = "📁 **FILE ACTIVITY**\n\n❌ No file activity found."

// FormatActivity renders access records as chat-ready text.
func FormatActivity(records []logstore.Record, limit int) string {
	if len(records) == 0 {
		return noActivityMessage
	}
	if limit > 0 && len(records) > limit {
		records = records[:limit]
	}

	lines := []string{fmt.Sprintf("📁 **FILE ACTIVITY** (Last %d files)\n", len(records))}
	for i, record := range records {
		durationStr := ""
		if record.DurationSeconds > 0 {
			durationStr = fmt.Sprintf("%ds", record.DurationSeconds)
		}
		lines = append(lines,
			fmt.Sprintf("%d. **%s**", i+1, record.FileName),
			fmt.Sprintf("   📅 %s | 📱 %s %s", record.Timestamp, record.AppUsed, durationStr),
			fmt.Sprintf("   📂 %s\n", record.FilePath),
		)
	}
	return strings.Join(lines, "\n")
}
