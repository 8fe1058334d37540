package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tesseract-hub/photon-gateway/internal/errs"
	"github.com/tesseract-hub/photon-gateway/internal/validate"
)

// Lookup handles GET /lookup: fetch a single document by id, returning an
// empty FeatureCollection for an id the backend has no source for.
func (h *Handlers) Lookup(c *gin.Context) {
	req := bindLookup(c)
	if req.PlaceID == "" {
		respondError(c, errs.Required("place_id"))
		return
	}

	if err := validate.Language(req.Lang, h.cfg.ValidLanguages); err != nil {
		respondError(c, err)
		return
	}
	language := h.resolveLanguage(req.Lang)

	features, err := h.dispatcher.Lookup(c.Request.Context(), req.PlaceID, language)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, features)
}
