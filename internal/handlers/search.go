package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tesseract-hub/photon-gateway/internal/errs"
	"github.com/tesseract-hub/photon-gateway/internal/osmtag"
	"github.com/tesseract-hub/photon-gateway/internal/querybuilder"
	"github.com/tesseract-hub/photon-gateway/internal/validate"
)

const defaultSearchLimit = 10

// Search handles GET /search: validate, build the query tree, dispatch
// with the size-shaping and lenient-retry rules, and serialize the
// resulting FeatureCollection.
func (h *Handlers) Search(c *gin.Context) {
	req, err := bindSearch(c)
	if err != nil {
		respondError(c, err)
		return
	}
	if req.Q == "" {
		respondError(c, errs.Required("q"))
		return
	}

	if err := validate.Language(req.Lang, h.cfg.ValidLanguages); err != nil {
		respondError(c, err)
		return
	}
	language := h.resolveLanguage(req.Lang)

	if _, err := validate.OptionalPoint(req.Lon, req.Lat); err != nil {
		respondError(c, err)
		return
	}

	locationBias, err := validate.Bias(req.Lon, req.Lat, req.LocationBiasScale, req.Zoom)
	if err != nil {
		respondError(c, err)
		return
	}

	var envelope *validate.Envelope
	if req.Bbox != nil {
		env, err := validate.Bbox(*req.Bbox)
		if err != nil {
			respondError(c, err)
			return
		}
		envelope = &env
	}

	if err := validate.Layers(req.Layer); err != nil {
		respondError(c, err)
		return
	}

	limit := int64(defaultSearchLimit)
	if req.Limit != nil {
		limit = *req.Limit
	}

	params := querybuilder.SearchParams{
		Q:            req.Q,
		Language:     language,
		Languages:    h.cfg.ValidLanguages,
		OsmTag:       osmtag.ParseSet(req.OsmTag),
		Bbox:         envelope,
		Layers:       req.Layer,
		LocationBias: locationBias,
	}

	features, err := h.dispatcher.Search(c.Request.Context(), params, limit, language)
	if err != nil {
		respondError(c, err)
		return
	}

	if !req.Debug {
		c.JSON(http.StatusOK, features)
		return
	}

	params.Lenient = false
	c.JSON(http.StatusOK, gin.H{
		"type":        features.Type,
		"features":    features.Features,
		"debug_query": querybuilder.Body{Query: querybuilder.Search(params)}.Source(),
	})
}
