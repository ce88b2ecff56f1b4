package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/use-agent/readable/models"
	"github.com/use-agent/readable/static"
)

// Static serves a compiled-in asset. An asset without content means the
// build is broken and is answered with 500.
func Static(a static.Asset) gin.HandlerFunc {
	return func(c *gin.Context) {
		if len(a.Content) == 0 {
			slog.Error("static asset missing", "path", a.Path, "code", models.ErrCodeInternal)
			c.AbortWithStatus(http.StatusInternalServerError)
			return
		}
		c.Data(http.StatusOK, a.ContentType, a.Content)
	}
}
