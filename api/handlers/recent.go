package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/zyronlabs/recall/db/logstore"
	"github.com/zyronlabs/recall/logger"
	"github.com/zyronlabs/recall/services/activity"
	"github.com/zyronlabs/recall/validation"
)

const defaultRecentLimit = 20

type RecentRequest struct {
	Hours    int    `form:"hours" validate:"min=0,max=720"`
	FileType string `form:"file_type" validate:"max=100"`
	Limit    int    `form:"limit" validate:"min=0,max=100"`
}

func (r *RecentRequest) setDefaults() {
	if r.Hours == 0 {
		r.Hours = activity.DefaultHoursBack
	}
	if r.Limit == 0 {
		r.Limit = defaultRecentLimit
	}
}

type RecentResponse struct {
	Entries   []logstore.Record `json:"entries"`
	Formatted string            `json:"formatted"`
}

func SetupRecent(router *gin.Engine, logger logger.Logger, store logstore.Store, validator *validation.Validator) {
	service := activity.New(logger, store)
	router.GET("/recent", handleRecent(service, logger, validator))
}

func handleRecent(service *activity.Service, logger logger.Logger, validator *validation.Validator) gin.HandlerFunc {
	return func(c *gin.Context) {
		request := RecentRequest{}
		if err := c.ShouldBindQuery(&request); err != nil {
			logger.Warn("could not extract expected params from recent request", "err", err.Error())
			c.Abort()
			writeResponse(c, nil, http.StatusUnprocessableEntity, []string{"failed to extract request parameters"})
			return
		}
		request.setDefaults()

		if err := validator.Validate(request); err != nil {
			logger.Warn("could not validate recent request", "err", err.Error())
			c.Abort()
			writeResponse(c, nil, http.StatusNotAcceptable, []string{err.Error()})
			return
		}

		entries, err := service.Recent(request.Hours, request.FileType)
		if err != nil {
			logger.Error("could not list recent activity", "err", err.Error())
			c.Abort()
			writeResponse(c, nil, http.StatusInternalServerError, []string{err.Error()})
			return
		}
		if request.Limit > 0 && len(entries) > request.Limit {
			entries = entries[:request.Limit]
		}
		if entries == nil {
			entries = make([]logstore.Record, 0)
		}

		recentResponse := RecentResponse{
			Entries:   entries,
			Formatted: activity.FormatActivity(entries, request.Limit),
		}

		writeResponse(c, recentResponse, http.StatusOK, nil)
	}
}
