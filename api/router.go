package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/zyronlabs/recall/api/handlers"
	"github.com/zyronlabs/recall/db/kvdb"
	"github.com/zyronlabs/recall/db/logstore"
	"github.com/zyronlabs/recall/logger"
	"github.com/zyronlabs/recall/validation"
)

func setupRoutes(router *gin.Engine, logger logger.Logger, logStore logstore.Store, kvDB kvdb.DB, validator *validation.Validator) {
	router.GET("/health", health())

	handlers.SetupSearch(router, logger, logStore, kvDB, validator)
	handlers.SetupRecent(router, logger, logStore, validator)

}

func health() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	}
}

func newRouter() *gin.Engine {
	router := gin.Default()
	router.UseRawPath = true
	router.Use(_CORSMiddleware())
	router.Use(gin.Recovery())
	router.Use(authMiddleware())

	return router
}
