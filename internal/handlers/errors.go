package handlers

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/appointment-scheduler/internal/httperr"
)

func respondError(c *gin.Context, log *zap.Logger, err error) {
	if httperr.Respond(c, err) {
		return
	}
	_ = c.Error(err)
	log.Error("unexpected error",
		zap.String("path", c.Request.URL.Path),
		zap.Error(err),
	)
}
