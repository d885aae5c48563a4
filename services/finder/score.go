package finder

import (
	"math"
	"slices"
	"strings"
	"time"

	fuzzy "github.com/paul-mannino/go-fuzzywuzzy"
	"github.com/zyronlabs/recall/db/logstore"
)

const fuzzyMatchThreshold = 0.6

// relevanceScore rates one access record against the extracted query
// signals, 0–100. A record that cannot be scored, or that falls outside
// an explicitly requested time window, scores 0: a user who named a
// specific time wants none of the unrelated history. All other signals
// are soft bonuses/penalties because a partial match is still useful
// when the phrasing is ambiguous.
func relevanceScore(record logstore.Record, timeRange *TimeRange, fileTypes []string, keyword, targetApp string, now time.Time) float64 {
	recordTime, err := time.ParseInLocation(timestampLayout, record.Timestamp, now.Location())
	if err != nil {
		return 0
	}

	score := 0.0

	// Time gate: hard pass/fail, both ends of the window inclusive.
	if timeRange != nil {
		if recordTime.Before(timeRange.Start) || recordTime.After(timeRange.End) {
			return 0
		}
		score += 100
	}

	// Recency base, always applied.
	switch hoursOld := now.Sub(recordTime).Hours(); {
	case hoursOld < 1:
		score += 40
	case hoursOld < 6:
		score += 35
	case hoursOld < 24:
		score += 30
	case hoursOld < 72:
		score += 20
	default:
		score += 10
	}

	// Dwell bonus: time the user actually spent in the file.
	switch {
	case record.DurationSeconds > 300:
		score += 20
	case record.DurationSeconds > 60:
		score += 15
	case record.DurationSeconds > 0:
		score += 10
	}

	if len(fileTypes) > 0 {
		if slices.Contains(fileTypes, record.FileType) {
			score += 20
		} else {
			score -= 20
		}
	}

	if targetApp != "" {
		if strings.Contains(strings.ToLower(record.AppUsed), targetApp) {
			score += 50
		} else {
			score -= 20
		}
	}

	if keyword != "" {
		fileName := strings.ToLower(record.FileName)
		if strings.Contains(fileName, keyword) {
			score += 40
		} else if ratio := float64(fuzzy.Ratio(keyword, fileName)) / 100; ratio > fuzzyMatchThreshold {
			score += ratio * 30
		}
	}

	return math.Min(score, 100)
}
