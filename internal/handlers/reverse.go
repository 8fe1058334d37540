package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tesseract-hub/photon-gateway/internal/osmtag"
	"github.com/tesseract-hub/photon-gateway/internal/querybuilder"
	"github.com/tesseract-hub/photon-gateway/internal/validate"
)

const defaultReverseLimit = 10

// Reverse handles GET /reverse: validate, build the reverse-geocode query,
// dispatch without retry, and serialize the FeatureCollection.
func (h *Handlers) Reverse(c *gin.Context) {
	req, err := bindReverse(c)
	if err != nil {
		respondError(c, err)
		return
	}

	if _, err := validate.RequiredPoint(req.Lon, req.Lat); err != nil {
		respondError(c, err)
		return
	}

	if err := validate.Language(req.Lang, h.cfg.ValidLanguages); err != nil {
		respondError(c, err)
		return
	}
	language := h.resolveLanguage(req.Lang)

	if err := validate.Layers(req.Layer); err != nil {
		respondError(c, err)
		return
	}

	distanceSort := true
	if req.DistanceSort != nil {
		distanceSort = *req.DistanceSort
	}

	limit := int64(defaultReverseLimit)
	if req.Limit != nil {
		limit = *req.Limit
	}

	params := querybuilder.ReverseParams{
		Lat:               req.Lat,
		Lon:               req.Lon,
		RadiusKM:          req.Radius,
		QueryStringFilter: req.QueryStringFilter,
		DistanceSort:      distanceSort,
		Layers:            req.Layer,
		OsmTag:            osmtag.ParseSet(req.OsmTag),
	}

	features, err := h.dispatcher.Reverse(c.Request.Context(), params, limit, language)
	if err != nil {
		respondError(c, err)
		return
	}

	if !req.Debug {
		c.JSON(http.StatusOK, features)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"type":        features.Type,
		"features":    features.Features,
		"debug_query": querybuilder.Reverse(params).Source(),
	})
}
