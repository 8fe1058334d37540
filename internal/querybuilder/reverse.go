package querybuilder

import (
	"strings"

	"github.com/tesseract-hub/photon-gateway/internal/osmtag"
)

// ReverseParams carries everything the reverse query builder needs.
type ReverseParams struct {
	Lat, Lon          float32
	RadiusKM          uint
	QueryStringFilter string
	DistanceSort      bool
	Layers            []string
	OsmTag            []osmtag.Filter
}

// Reverse builds the full reverse-geocode query body, including the
// optional ascending distance sort.
func Reverse(p ReverseParams) Body {
	geoDistance := GeoDistanceQuery{
		Field:      "coordinate",
		Lat:        p.Lat,
		Lon:        p.Lon,
		DistanceKM: float64(p.RadiusKM),
	}

	query := &BoolQuery{}
	matchAll := true

	if strings.TrimSpace(p.QueryStringFilter) != "" {
		query.AddMust(QueryStringQuery{QueryText: p.QueryStringFilter})
		matchAll = false
	}

	if len(p.Layers) > 0 {
		query.AddMust(Layer(p.Layers))
		matchAll = false
	}

	ApplyOsmTag(query, p.OsmTag)

	if matchAll {
		query.AddMust(MatchAllQuery{})
	}

	query.AddFilter(geoDistance)

	body := Body{Query: query}
	if p.DistanceSort {
		body.Sort = []SortClause{
			GeoDistanceSort{Field: "coordinate", Lat: p.Lat, Lon: p.Lon, Order: "asc"},
		}
	}
	return body
}
