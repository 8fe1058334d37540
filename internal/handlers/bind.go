package handlers

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/tesseract-hub/photon-gateway/internal/errs"
	"github.com/tesseract-hub/photon-gateway/internal/photonrequest"
)

func parseError(name, raw string) error {
	return &errs.ValidationError{Kind: name, Message: fmt.Sprintf("invalid %s %q", name, raw)}
}

func optionalFloat32(c *gin.Context, name string) (*float32, error) {
	raw := c.Query(name)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(raw, 32)
	if err != nil {
		return nil, parseError(name, raw)
	}
	f := float32(v)
	return &f, nil
}

func requiredFloat32(c *gin.Context, name string) (float32, error) {
	raw := c.Query(name)
	if raw == "" {
		return 0, errs.Required(name)
	}
	v, err := strconv.ParseFloat(raw, 32)
	if err != nil {
		return 0, parseError(name, raw)
	}
	return float32(v), nil
}

func optionalFloat64(c *gin.Context, name string) (*float64, error) {
	raw := c.Query(name)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, parseError(name, raw)
	}
	return &v, nil
}

func optionalInt64(c *gin.Context, name string) (*int64, error) {
	raw := c.Query(name)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil, parseError(name, raw)
	}
	return &v, nil
}

func requiredUint(c *gin.Context, name string) (uint, error) {
	raw := c.Query(name)
	if raw == "" {
		return 0, errs.Required(name)
	}
	v, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, parseError(name, raw)
	}
	return uint(v), nil
}

func optionalBool(c *gin.Context, name string) (*bool, error) {
	raw := c.Query(name)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return nil, parseError(name, raw)
	}
	return &v, nil
}

func boolQuery(c *gin.Context, name string) bool {
	v, _ := strconv.ParseBool(c.Query(name))
	return v
}

// bbox parses "min_lon,min_lat,max_lon,max_lat" into a raw array, leaving
// range and ordering checks to internal/validate.
func bbox(c *gin.Context, name string) (*[4]float32, error) {
	raw := c.Query(name)
	if raw == "" {
		return nil, nil
	}
	parts := strings.Split(raw, ",")
	if len(parts) != 4 {
		return nil, parseError(name, raw)
	}
	var out [4]float32
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 32)
		if err != nil {
			return nil, parseError(name, raw)
		}
		out[i] = float32(v)
	}
	return &out, nil
}

// stringSet collects a repeated query parameter into its distinct values,
// preserving first-seen order.
func stringSet(c *gin.Context, name string) []string {
	values := c.QueryArray(name)
	seen := make(map[string]bool, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v == "" || seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	return out
}

// bindSearch collects the raw /search query parameters. Field-level
// validation happens downstream in internal/validate.
func bindSearch(c *gin.Context) (photonrequest.Search, error) {
	req := photonrequest.Search{
		Q:      c.Query("q"),
		Lang:   c.Query("lang"),
		OsmTag: stringSet(c, "osm_tag"),
		Layer:  stringSet(c, "layer"),
		Debug:  boolQuery(c, "debug"),
	}

	var err error
	if req.Lon, err = optionalFloat32(c, "lon"); err != nil {
		return req, err
	}
	if req.Lat, err = optionalFloat32(c, "lat"); err != nil {
		return req, err
	}
	if req.Limit, err = optionalInt64(c, "limit"); err != nil {
		return req, err
	}
	if req.LocationBiasScale, err = optionalFloat64(c, "location_bias_scale"); err != nil {
		return req, err
	}
	if req.Bbox, err = bbox(c, "bbox"); err != nil {
		return req, err
	}
	if req.Zoom, err = optionalInt64(c, "zoom"); err != nil {
		return req, err
	}
	return req, nil
}

// bindReverse collects the raw /reverse query parameters.
func bindReverse(c *gin.Context) (photonrequest.Reverse, error) {
	req := photonrequest.Reverse{
		Lang:              c.Query("lang"),
		QueryStringFilter: c.Query("query_string_filter"),
		OsmTag:            stringSet(c, "osm_tag"),
		Layer:             stringSet(c, "layer"),
		Debug:             boolQuery(c, "debug"),
	}

	var err error
	if req.Lon, err = requiredFloat32(c, "lon"); err != nil {
		return req, err
	}
	if req.Lat, err = requiredFloat32(c, "lat"); err != nil {
		return req, err
	}
	if req.Radius, err = requiredUint(c, "radius"); err != nil {
		return req, err
	}
	if req.DistanceSort, err = optionalBool(c, "distance_sort"); err != nil {
		return req, err
	}
	if req.Limit, err = optionalInt64(c, "limit"); err != nil {
		return req, err
	}
	return req, nil
}

// bindLookup collects the raw /lookup query parameters.
func bindLookup(c *gin.Context) photonrequest.Lookup {
	return photonrequest.Lookup{
		PlaceID: c.Query("place_id"),
		Lang:    c.Query("lang"),
	}
}
