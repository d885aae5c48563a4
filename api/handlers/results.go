package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/zyronlabs/recall/db/kvdb"
	"github.com/zyronlabs/recall/logger"
	"github.com/zyronlabs/recall/services/session"
)

type ResultPathResponse struct {
	FilePath string `json:"file_path"`
}

// handleResultPath resolves the Nth result of a saved search session to
// its file path, so the caller can open it.
func handleResultPath(sessionService *session.Service, logger logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := c.Param("session_id")

		index, err := strconv.Atoi(c.Param("index"))
		if err != nil || index < 0 {
			c.Abort()
			writeResponse(c, nil, http.StatusUnprocessableEntity, []string{"index must be a non-negative integer"})
			return
		}

		path, err := sessionService.PathAt(sessionID, index)
		if err != nil {
			switch {
			case errors.Is(err, kvdb.ErrNotFound):
				writeResponse(c, nil, http.StatusNotFound, []string{"session not found"})
			case errors.Is(err, session.ErrIndexOutOfRange):
				writeResponse(c, nil, http.StatusNotFound, []string{"no result at that index"})
			default:
				logger.Error("could not resolve result path", "session_id", sessionID, "err", err.Error())
				writeResponse(c, nil, http.StatusInternalServerError, []string{err.Error()})
			}
			c.Abort()
			return
		}

		writeResponse(c, ResultPathResponse{FilePath: path}, http.StatusOK, nil)
	}
}
