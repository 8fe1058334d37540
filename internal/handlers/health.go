package handlers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Health handles GET /health: runs a cluster health check against the
// backend and passes its status text straight through.
func (h *Handlers) Health(c *gin.Context) {
	res, err := h.pool.Health(c.Request.Context())
	if err != nil {
		c.String(http.StatusInternalServerError, err.Error())
		return
	}
	defer res.Body.Close()

	body, _ := io.ReadAll(res.Body)
	if res.IsError() {
		c.String(res.StatusCode, string(body))
		return
	}
	c.Data(http.StatusOK, "text/plain; charset=utf-8", body)
}
