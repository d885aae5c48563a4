package finder

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/zyronlabs/recall/db/logstore"
)

var scoreNow = time.Date(2026, time.August, 26, 15, 0, 0, 0, time.Local)

func recordAt(t time.Time) logstore.Record {
	return logstore.Record{
		Timestamp: t.Format(timestampLayout),
		FilePath:  `C:\Users\test\Documents\Report.pdf`,
		FileName:  "Report.pdf",
		FileType:  "pdf",
		AppUsed:   "AcroRd32.exe",
	}
}

func TestScoreRejectsUnparsableTimestamp(t *testing.T) {
	assert := require.New(t)

	record := recordAt(scoreNow)
	record.Timestamp = "26/08/2026 15:00"

	assert.Zero(relevanceScore(record, nil, nil, "", "", scoreNow))
}

func TestScoreTimeGateIsStrict(t *testing.T) {
	assert := require.New(t)

	window := &TimeRange{
		Start: time.Date(2026, time.August, 26, 12, 0, 0, 0, time.Local),
		End:   time.Date(2026, time.August, 26, 17, 0, 0, 0, time.Local),
	}

	inside := recordAt(time.Date(2026, time.August, 26, 14, 10, 0, 0, time.Local))
	outside := recordAt(time.Date(2026, time.August, 26, 9, 0, 0, 0, time.Local))
	boundary := recordAt(window.Start)

	assert.Positive(relevanceScore(inside, window, nil, "", "", scoreNow))
	assert.Zero(relevanceScore(outside, window, nil, "", "", scoreNow))
	assert.Positive(relevanceScore(boundary, window, nil, "", "", scoreNow), "window ends are inclusive")
}

func TestScoreRecencyTiers(t *testing.T) {
	assert := require.New(t)

	fresh := relevanceScore(recordAt(scoreNow.Add(-30*time.Minute)), nil, nil, "", "", scoreNow)
	stale := relevanceScore(recordAt(scoreNow.Add(-100*time.Hour)), nil, nil, "", "", scoreNow)

	assert.Equal(40.0, fresh)
	assert.Equal(10.0, stale)
}

func TestScoreDwellBonus(t *testing.T) {
	assert := require.New(t)

	longDwell := recordAt(scoreNow.Add(-30 * time.Minute))
	longDwell.DurationSeconds = 400
	noDwell := recordAt(scoreNow.Add(-30 * time.Minute))

	withDwell := relevanceScore(longDwell, nil, nil, "", "", scoreNow)
	withoutDwell := relevanceScore(noDwell, nil, nil, "", "", scoreNow)

	assert.Greater(withDwell, withoutDwell)
	assert.Equal(20.0, withDwell-withoutDwell)
}

func TestScoreTypeMatchAndPenalty(t *testing.T) {
	assert := require.New(t)

	record := recordAt(scoreNow.Add(-30 * time.Minute))

	matched := relevanceScore(record, nil, []string{"pdf"}, "", "", scoreNow)
	mismatched := relevanceScore(record, nil, []string{"xlsx", "xls", "csv"}, "", "", scoreNow)

	assert.Equal(60.0, matched)
	assert.Equal(20.0, mismatched)
}

func TestScoreAppMatch(t *testing.T) {
	assert := require.New(t)

	record := recordAt(scoreNow.Add(-30 * time.Minute))
	record.AppUsed = "Google Chrome"

	matched := relevanceScore(record, nil, nil, "", "chrome", scoreNow)
	mismatched := relevanceScore(record, nil, nil, "", "edge", scoreNow)

	assert.Equal(90.0, matched)
	assert.Equal(20.0, mismatched)
}

func TestScoreKeywordSubstring(t *testing.T) {
	assert := require.New(t)

	record := recordAt(scoreNow.Add(-30 * time.Minute))

	matched := relevanceScore(record, nil, nil, "report", "", scoreNow)
	unrelated := relevanceScore(record, nil, nil, "zzqqxxv", "", scoreNow)

	assert.Equal(80.0, matched)
	assert.Equal(40.0, unrelated, "a dissimilar keyword adds nothing")
}

func TestScoreIsCappedAt100(t *testing.T) {
	assert := require.New(t)

	window := &TimeRange{
		Start: time.Date(2026, time.August, 26, 12, 0, 0, 0, time.Local),
		End:   time.Date(2026, time.August, 26, 17, 0, 0, 0, time.Local),
	}
	record := recordAt(time.Date(2026, time.August, 26, 14, 30, 0, 0, time.Local))
	record.DurationSeconds = 400

	score := relevanceScore(record, window, []string{"pdf"}, "report", "", scoreNow)

	assert.Equal(100.0, score)
}
