package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/tesseract-hub/photon-gateway/internal/errs"
)

// respondError writes a plain-text body carrying the error's reason and
// the status its own taxonomy maps to. No stack traces ever reach the
// client.
func respondError(c *gin.Context, err error) {
	if gwErr, ok := err.(errs.GatewayError); ok {
		c.String(gwErr.StatusCode(), gwErr.Error())
		return
	}
	c.String(500, err.Error())
}
