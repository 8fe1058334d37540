package querybuilder

import "github.com/tesseract-hub/photon-gateway/internal/validate"

const (
	minLocationBiasScale = 1e-7
	maxLocationBiasZoom  = 18
)

// ApplyLocationBias wraps inner in a second function-score tree when bias
// is present and its zoom is at least 4. Below that zoom, bias has no
// effect and inner is returned unchanged.
func ApplyLocationBias(inner Query, bias *validate.LocationBias) Query {
	if bias == nil || bias.Zoom < 4 {
		return inner
	}

	zoom := bias.Zoom
	if zoom > maxLocationBiasZoom {
		zoom = maxLocationBiasZoom
	}
	radiusKM := (1 << (maxLocationBiasZoom - zoom)) / 4

	scale := bias.Scale
	if scale < minLocationBiasScale {
		scale = minLocationBiasScale
	}

	return FunctionScoreQuery{
		Query: inner,
		Functions: []ScoreFunction{
			{
				Kind:   "decay_exp",
				Field:  "coordinate",
				Origin: M{"lat": bias.Point.Lat, "lon": bias.Point.Lon},
				Scale:  kmString(radiusKM),
				Offset: formatKM(float64(radiusKM) / 10),
				Decay:  0.8,
			},
			{
				Kind:   "decay_linear",
				Field:  "importance",
				Origin: 1.0,
				Scale:  scale,
			},
		},
		BoostMode: "multiply",
		ScoreMode: "max",
	}
}

func kmString(km int) string {
	return formatKM(float64(km))
}
