// Common test helpers
package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"github.com/zyronlabs/recall/db/kvdb"
	"github.com/zyronlabs/recall/db/logstore"
	"github.com/zyronlabs/recall/validation"

	"github.com/zyronlabs/recall/logger"
)

type testCase struct {
	name           string
	queryParams    map[string]string
	expectedStatus int
	expectedFiles  []string
	formattedHas   string
}

const testTimestampLayout = "2006-01-02 15:04:05"

// testRecords builds an access-log fixture relative to now: one file
// opened moments ago, one a few hours ago and one a couple of days ago.
func testRecords(now time.Time) []logstore.Record {
	return []logstore.Record{
		{
			Timestamp:       now.Add(-10 * time.Minute).Format(testTimestampLayout),
			FilePath:        `C:\Users\test\Documents\Report.pdf`,
			FileName:        "Report.pdf",
			FileType:        "pdf",
			AppUsed:         "AcroRd32.exe",
			DurationSeconds: 400,
		},
		{
			Timestamp:       now.Add(-3 * time.Hour).Format(testTimestampLayout),
			FilePath:        `C:\Users\test\Documents\Budget.xlsx`,
			FileName:        "Budget.xlsx",
			FileType:        "xlsx",
			AppUsed:         "EXCEL.EXE",
			DurationSeconds: 90,
		},
		{
			Timestamp: now.Add(-50 * time.Hour).Format(testTimestampLayout),
			FilePath:  `C:\Users\test\Documents\OldNotes.txt`,
			FileName:  "OldNotes.txt",
			FileType:  "txt",
			AppUsed:   "notepad.exe",
		},
	}
}

func setupTestServer(t *testing.T, assert *require.Assertions, records []logstore.Record) *gin.Engine {
	t.Helper()

	testLogger := logger.New()

	kvDB, err := kvdb.New(testLogger, filepath.Join(t.TempDir(), "sessions.db"))
	assert.NoError(err, "could not create kv database")
	t.Cleanup(func() { kvDB.Close() })

	validator, err := validation.New(testLogger)
	assert.NoError(err, "could not create validator")

	store := logstore.NewMemoryStore(records)

	gin.SetMode(gin.TestMode)
	router := gin.New()

	SetupSearch(router, testLogger, store, kvDB, validator)
	SetupRecent(router, testLogger, store, validator)

	return router
}

func makeTestHTTPRequest(router *gin.Engine, assert *require.Assertions, method string, endpoint string, queryParams map[string]string) *httptest.ResponseRecorder {
	if len(queryParams) > 0 {
		values := url.Values{}
		for key, value := range queryParams {
			values.Set(key, value)
		}
		endpoint = endpoint + "?" + values.Encode()
	}

	req, err := http.NewRequest(method, endpoint, nil)
	assert.NoError(err)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	return w
}

func decodeResponseData(assert *require.Assertions, w *httptest.ResponseRecorder) map[string]any {
	var responseMap map[string]any
	assert.NoError(json.Unmarshal(w.Body.Bytes(), &responseMap))

	data, ok := responseMap["data"].(map[string]any)
	assert.True(ok, "expected data object in response, got %s", w.Body.String())

	return data
}

func resultFileNames(assert *require.Assertions, data map[string]any, key string) []string {
	rawResults, ok := data[key].([]any)
	assert.True(ok, "expected %s array in response data", key)

	names := make([]string, 0, len(rawResults))
	for _, rawResult := range rawResults {
		resultMap, ok := rawResult.(map[string]any)
		assert.True(ok, "expected %s entries to be objects", key)
		names = append(names, resultMap["file_name"].(string))
	}

	return names
}
