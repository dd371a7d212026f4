// Package healthz implements the health check endpoint.
package healthz

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/paisaflow/backend/internal/models"
)

// RegisterRoutes registers the healthz routes with the RouterGroup
// that is passed.
func RegisterRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", Options)
	r.GET("", Get)
}

// Options returns an empty response with the allowed HTTP verbs.
func Options(c *gin.Context) {
	c.Header("allow", "OPTIONS, GET")
	c.Status(http.StatusNoContent)
}

// Get returns 200 when the backend can reach its database.
func Get(c *gin.Context) {
	db, err := models.DB.DB()
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}

	if err := db.Ping(); err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}

	c.Status(http.StatusOK)
}
