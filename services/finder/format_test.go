package finder

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/zyronlabs/recall/db/logstore"
)

var formatNow = time.Date(2026, time.August, 26, 15, 0, 0, 0, time.Local)

func TestFormatResultsEmpty(t *testing.T) {
	assert := require.New(t)

	out := FormatResults(nil, false, formatNow)

	assert.Contains(out, "❌ No matching files found.")
	assert.Contains(out, "'files opened today'")
	assert.Contains(out, "'PDFs from yesterday'")
	assert.Contains(out, "'recent documents'")
}

func TestFormatResults(t *testing.T) {
	assert := require.New(t)

	results := []ScoredResult{
		{
			Record: logstore.Record{
				Timestamp: "2026-08-26 14:10:00",
				FilePath:  `C:\Users\test\Documents\Report.pdf`,
				FileName:  "Report.pdf",
				AppUsed:   "AcroRd32.exe",
			},
			ConfidenceScore: 100,
		},
		{
			Record: logstore.Record{
				Timestamp: "2026-08-25 09:00:00",
				FilePath:  `C:\Users\test\Documents\Notes.txt`,
				FileName:  "Notes.txt",
				AppUsed:   "notepad.exe",
			},
			ConfidenceScore: 75,
		},
	}

	out := FormatResults(results, true, formatNow)

	assert.Contains(out, "(Found 2 matches)")
	assert.Contains(out, "1. 🎯 **Report.pdf** (100%)")
	assert.Contains(out, "📅 Aug 26 at 02:10 PM (just now)")
	assert.Contains(out, "📱 AcroRd32.exe")
	assert.Contains(out, "📂 `C:\\Users\\test\\Documents\\Report.pdf`")
	assert.Contains(out, "2. ✅ **Notes.txt** (75%)")
	assert.Contains(out, "📅 Aug 25 at 09:00 AM (1d ago)")
}

func TestFormatResultsSingularMatch(t *testing.T) {
	assert := require.New(t)

	results := []ScoredResult{
		{
			Record:          logstore.Record{Timestamp: "2026-08-26 14:10:00", FileName: "Report.pdf"},
			ConfidenceScore: 95,
		},
	}

	assert.Contains(FormatResults(results, false, formatNow), "(Found 1 match)")
}

func TestFormatResultsWithoutPaths(t *testing.T) {
	assert := require.New(t)

	results := []ScoredResult{
		{
			Record: logstore.Record{
				Timestamp: "2026-08-26 14:10:00",
				FilePath:  `C:\Users\test\Documents\Report.pdf`,
				FileName:  "Report.pdf",
			},
			ConfidenceScore: 95,
		},
	}

	assert.NotContains(FormatResults(results, false, formatNow), "📂")
}

func TestFormatResultsMissingFields(t *testing.T) {
	assert := require.New(t)

	results := []ScoredResult{
		{Record: logstore.Record{Timestamp: "not a timestamp"}, ConfidenceScore: 30},
	}

	out := FormatResults(results, true, formatNow)

	assert.Contains(out, "1. 📄 **unknown** (30%)")
	assert.Contains(out, "📅 unknown at unknown (unknown)")
	assert.Contains(out, "📱 unknown")
}

func TestConfidenceGlyphTiers(t *testing.T) {
	assert := require.New(t)

	assert.Equal("🎯", confidenceGlyph(100))
	assert.Equal("🎯", confidenceGlyph(90))
	assert.Equal("✅", confidenceGlyph(89.9))
	assert.Equal("✅", confidenceGlyph(60))
	assert.Equal("📄", confidenceGlyph(59.9))
	assert.Equal("📄", confidenceGlyph(0))
}

func TestElapsedSince(t *testing.T) {
	assert := require.New(t)

	assert.Equal("just now", elapsedSince(formatNow.Add(-30*time.Minute), formatNow))
	assert.Equal("5h ago", elapsedSince(formatNow.Add(-5*time.Hour-30*time.Minute), formatNow))
	assert.Equal("3d ago", elapsedSince(formatNow.Add(-80*time.Hour), formatNow))
}

func TestFormatResultsBlankLineBetweenEntries(t *testing.T) {
	assert := require.New(t)

	results := []ScoredResult{
		{Record: logstore.Record{Timestamp: "2026-08-26 14:10:00", FileName: "A.pdf"}, ConfidenceScore: 95},
		{Record: logstore.Record{Timestamp: "2026-08-26 13:10:00", FileName: "B.pdf"}, ConfidenceScore: 80},
	}

	out := FormatResults(results, false, formatNow)

	assert.True(strings.Contains(out, "📱 unknown\n\n2. "), out)
}
