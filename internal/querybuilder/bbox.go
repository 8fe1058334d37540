package querybuilder

import "github.com/tesseract-hub/photon-gateway/internal/validate"

// Bbox builds the geo_bounding_box filter for a validated envelope.
//
// The edge naming is bug-compatible with the system this was ported from:
// top is bound to min_lat and bottom to max_lat, which reads backwards
// from the usual convention that top is the maximum latitude. This is
// intentional, not a typo — see DESIGN.md.
func Bbox(env validate.Envelope) GeoBoundingBoxQuery {
	return GeoBoundingBoxQuery{
		Field:  "coordinate",
		Top:    env.MinLat,
		Left:   env.MinLon,
		Bottom: env.MaxLat,
		Right:  env.MaxLon,
	}
}
