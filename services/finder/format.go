package finder

import (
	"fmt"
	"strings"
	"time"
)

const noMatchesMessage = "🔍 **FILE SEARCH RESULTS**\n\n❌ No matching files found.\n\nTry:\n• 'files opened today'\n• 'PDFs from yesterday'\n• 'recent documents'"

const fieldPlaceholder = "unknown"

// FormatResults renders ranked results as chat-ready text. It is a pure
// function and never fails: missing or unparsable fields render as a
// placeholder instead.
func FormatResults(results []ScoredResult, includePaths bool, now time.Time) string {
	if len(results) == 0 {
		return noMatchesMessage
	}

	plural := "match"
	if len(results) > 1 {
		plural = "matches"
	}
	lines := []string{fmt.Sprintf("🔍 **FILE SEARCH RESULTS** (Found %d %s)\n", len(results), plural)}

	for i, result := range results {
		fileName := result.FileName
		if fileName == "" {
			fileName = fieldPlaceholder
		}
		appUsed := result.AppUsed
		if appUsed == "" {
			appUsed = fieldPlaceholder
		}

		dateStr, timeStr, agoStr := fieldPlaceholder, fieldPlaceholder, fieldPlaceholder
		if t, err := time.ParseInLocation(timestampLayout, result.Timestamp, now.Location()); err == nil {
			dateStr = t.Format("Jan 02")
			timeStr = t.Format("03:04 PM")
			agoStr = elapsedSince(t, now)
		}

		lines = append(lines,
			fmt.Sprintf("%d. %s **%s** (%d%%)", i+1, confidenceGlyph(result.ConfidenceScore), fileName, int(result.ConfidenceScore)),
			fmt.Sprintf("   📅 %s at %s (%s)", dateStr, timeStr, agoStr),
			fmt.Sprintf("   📱 %s", appUsed),
		)
		if includePaths {
			lines = append(lines, fmt.Sprintf("   📂 `%s`", result.FilePath))
		}
		lines = append(lines, "")
	}

	return strings.Join(lines, "\n")
}

func confidenceGlyph(score float64) string {
	switch {
	case score >= 90:
		return "🎯"
	case score >= 60:
		return "✅"
	default:
		return "📄"
	}
}

func elapsedSince(t, now time.Time) string {
	hoursAgo := now.Sub(t).Hours()
	switch {
	case hoursAgo < 1:
		return "just now"
	case hoursAgo < 24:
		return fmt.Sprintf("%dh ago", int(hoursAgo))
	default:
		return fmt.Sprintf("%dd ago", int(hoursAgo/24))
	}
}
