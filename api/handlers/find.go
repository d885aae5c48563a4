package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/zyronlabs/recall/logger"
	"github.com/zyronlabs/recall/services/finder"
	"github.com/zyronlabs/recall/validation"
)

type FindRequest struct {
	TimeQuery string `form:"time_query" validate:"max=200"`
	FileType  string `form:"file_type" validate:"max=100"`
	Keyword   string `form:"keyword" validate:"max=200"`
	Limit     int    `form:"limit" validate:"min=0,max=50"`
}

func (r *FindRequest) setDefaults() {
	if r.Limit == 0 {
		r.Limit = finder.DefaultLimit
	}
}

type FindResponse struct {
	Results   []finder.ScoredResult `json:"results"`
	Formatted string                `json:"formatted"`
}

func handleFind(finderService *finder.Service, logger logger.Logger, validator *validation.Validator) gin.HandlerFunc {
	return func(c *gin.Context) {
		request := FindRequest{}
		if err := c.ShouldBindQuery(&request); err != nil {
			logger.Warn("could not extract expected params from find request", "err", err.Error())
			c.Abort()
			writeResponse(c, nil, http.StatusUnprocessableEntity, []string{"failed to extract request parameters"})
			return
		}
		request.setDefaults()

		if err := validator.Validate(request); err != nil {
			logger.Warn("could not validate find request", "err", err.Error())
			c.Abort()
			writeResponse(c, nil, http.StatusNotAcceptable, []string{err.Error()})
			return
		}

		if request.TimeQuery == "" && request.FileType == "" && request.Keyword == "" {
			c.Abort()
			writeResponse(c, nil, http.StatusNotAcceptable, []string{"at least one of time_query, file_type or keyword is required"})
			return
		}

		results := finderService.FindFiles(request.TimeQuery, request.FileType, request.Keyword, request.Limit)
		if results == nil {
			results = make([]finder.ScoredResult, 0)
		}

		findResponse := FindResponse{
			Results:   results,
			Formatted: finder.FormatResults(results, true, time.Now()),
		}

		writeResponse(c, findResponse, http.StatusOK, nil)
	}
}
