// Package finder is the context-aware file-finder: it turns free-text
// queries ("that PDF from yesterday afternoon") into filter signals and
// ranks the externally tracked file-access log by relevance.
package finder

import (
	"sort"
	"time"

	"github.com/zyronlabs/recall/db/logstore"
	"github.com/zyronlabs/recall/logger"
)

// timestampLayout is the fixed encoding the tracker writes. Parsing is
// strict; anything else marks the record as malformed.
const timestampLayout = "2006-01-02 15:04:05"

const DefaultLimit = 5

// ScoredResult is one access record plus its 0–100 confidence score.
type ScoredResult struct {
	logstore.Record
	ConfidenceScore float64 `json:"confidence_score"`
}

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

// FindFilesFromQuery runs all extractors over one raw query and returns
// the top results by relevance. It never fails: an unavailable or empty
// log yields an empty list.
func (s *Service) FindFilesFromQuery(query string, limit int) []ScoredResult {
	now := s.now()
	timeRange := ParseTimeQuery(query, now)
	fileTypes := NormalizeFileType(query)
	keyword := ExtractKeyword(query)
	targetApp := DetectApp(query)

	return s.search(timeRange, fileTypes, keyword, targetApp, limit, now)
}

// FindFiles is the pre-split entry point for callers that already
// parsed structure out of the query. No app targeting is applied.
func (s *Service) FindFiles(timeQuery, fileType, keyword string, limit int) []ScoredResult {
	now := s.now()

	var timeRange *TimeRange
	if timeQuery != "" {
		timeRange = ParseTimeQuery(timeQuery, now)
	}

	var fileTypes []string
	if fileType != "" {
		fileTypes = NormalizeFileType(fileType)
	}

	return s.search(timeRange, fileTypes, keyword, "", limit, now)
}

func (s *Service) search(timeRange *TimeRange, fileTypes []string, keyword, targetApp string, limit int, now time.Time) []ScoredResult {
	if limit <= 0 {
		limit = DefaultLimit
	}

	records, err := s.store.Records()
	if err != nil {
		s.logger.Warn("could not read access log, returning no results", "err", err.Error())
		return nil
	}

	var results []ScoredResult
	for _, record := range records {
		score := relevanceScore(record, timeRange, fileTypes, keyword, targetApp, now)
		if score > 0 {
			results = append(results, ScoredResult{Record: record, ConfidenceScore: score})
		}
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].ConfidenceScore > results[j].ConfidenceScore
	})

	if len(results) > limit {
		results = results[:limit]
	}
	return results
}

// FilePathAt returns the path of the result at index, for "open the
// second one" follow-ups. The caller must re-check that the file still
// exists.
func FilePathAt(results []ScoredResult, index int) (string, bool) {
	if index < 0 || index >= len(results) {
		return "", false
	}
	return results[index].FilePath, true
}
