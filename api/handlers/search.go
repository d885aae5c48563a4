package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/zyronlabs/recall/db/kvdb"
	"github.com/zyronlabs/recall/db/logstore"
	"github.com/zyronlabs/recall/logger"
	"github.com/zyronlabs/recall/services/finder"
	"github.com/zyronlabs/recall/services/session"
	"github.com/zyronlabs/recall/validation"
)

type SearchRequest struct {
	Query     string `form:"query" validate:"required,valid_query,min=1,max=500"`
	Limit     int    `form:"limit" validate:"min=0,max=50"`
	SessionID string `form:"session_id" validate:"omitempty,uuid"`
}

func (r *SearchRequest) setDefaults() {
	if r.Limit == 0 {
		r.Limit = finder.DefaultLimit
	}
}

type SearchResponse struct {
	Results   []finder.ScoredResult `json:"results"`
	SessionID string                `json:"session_id"`
	Formatted string                `json:"formatted"`
}

func SetupSearch(router *gin.Engine, logger logger.Logger, store logstore.Store, kv kvdb.DB, validator *validation.Validator) {
	finderService := finder.New(logger, store)
	sessionService := session.New(logger, kv)

	router.GET("/search", handleSearch(finderService, sessionService, logger, validator))
	router.GET("/find", handleFind(finderService, logger, validator))
	router.GET("/results/:session_id/:index", handleResultPath(sessionService, logger))
}

func handleSearch(finderService *finder.Service, sessionService *session.Service, logger logger.Logger, validator *validation.Validator) gin.HandlerFunc {
	return func(c *gin.Context) {
		request := SearchRequest{}
		if err := c.ShouldBindQuery(&request); err != nil {
			logger.Warn("could not extract expected params from search request", "err", err.Error())
			c.Abort()
			writeResponse(c, nil, http.StatusUnprocessableEntity, []string{"failed to extract request parameters"})
			return
		}
		request.setDefaults()

		if err := validator.Validate(request); err != nil {
			logger.Warn("could not validate search request", "err", err.Error())
			c.Abort()
			writeResponse(c, nil, http.StatusNotAcceptable, []string{err.Error()})
			return
		}

		results := finderService.FindFilesFromQuery(request.Query, request.Limit)
		if results == nil {
			results = make([]finder.ScoredResult, 0)
		}

		sessionID := request.SessionID
		if sessionID == "" {
			sessionID = uuid.NewString()
		}
		if err := sessionService.Save(sessionID, results); err != nil {
			// The search itself succeeded; losing the session only
			// breaks open-by-index follow-ups.
			logger.Error("could not save search session", "session_id", sessionID, "err", err.Error())
		}

		searchResponse := SearchResponse{
			Results:   results,
			SessionID: sessionID,
			Formatted: finder.FormatResults(results, true, time.Now()),
		}

		writeResponse(c, searchResponse, http.StatusOK, nil)
	}
}
