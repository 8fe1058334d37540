// Package validate checks raw photonrequest values against the gateway's
// invariants and converts them into the normalized shapes the query
// builder consumes. Every function returns the first violation it finds;
// there is no accumulation of multiple errors.
package validate

import (
	"github.com/tesseract-hub/photon-gateway/internal/addresstype"
	"github.com/tesseract-hub/photon-gateway/internal/errs"
)

// Point is a validated (lon, lat) pair.
type Point struct {
	Lon float32
	Lat float32
}

// Envelope is a validated, well-formed bounding box.
type Envelope struct {
	MinLon, MinLat, MaxLon, MaxLat float32
}

// LocationBias is constructed only when lon, lat, scale and zoom are all
// present together; any other arity is a validation error.
type LocationBias struct {
	Point Point
	Scale float64
	Zoom  int64
}

// Lon checks a longitude is within [-180, 180].
func Lon(v float32) error {
	if v < -180 || v > 180 {
		return errs.Lon(v)
	}
	return nil
}

// Lat checks a latitude is within [-90, 90].
func Lat(v float32) error {
	if v < -90 || v > 90 {
		return errs.Lat(v)
	}
	return nil
}

// OptionalPoint range-checks whichever of lon/lat is present and returns a
// Point only when both are present. A lone lon or lat passes with a nil
// Point; rejecting that arity is left to Bias.
func OptionalPoint(lon, lat *float32) (*Point, error) {
	if lon == nil && lat == nil {
		return nil, nil
	}
	if lon != nil {
		if err := Lon(*lon); err != nil {
			return nil, err
		}
	}
	if lat != nil {
		if err := Lat(*lat); err != nil {
			return nil, err
		}
	}
	if lon == nil || lat == nil {
		return nil, nil
	}
	return &Point{Lon: *lon, Lat: *lat}, nil
}

// RequiredPoint validates lon/lat for reverse requests, where both are
// mandatory.
func RequiredPoint(lon, lat float32) (Point, error) {
	if err := Lon(lon); err != nil {
		return Point{}, err
	}
	if err := Lat(lat); err != nil {
		return Point{}, err
	}
	return Point{Lon: lon, Lat: lat}, nil
}

// Bbox validates a [min_lon, min_lat, max_lon, max_lat] array and converts
// it into an Envelope. It is rejected when any coordinate is out of range
// or when min > max on either axis.
func Bbox(raw [4]float32) (Envelope, error) {
	minLon, minLat, maxLon, maxLat := raw[0], raw[1], raw[2], raw[3]
	for _, lon := range []float32{minLon, maxLon} {
		if err := Lon(lon); err != nil {
			return Envelope{}, errs.Bbox(raw)
		}
	}
	for _, lat := range []float32{minLat, maxLat} {
		if err := Lat(lat); err != nil {
			return Envelope{}, errs.Bbox(raw)
		}
	}
	if minLon > maxLon || minLat > maxLat {
		return Envelope{}, errs.Bbox(raw)
	}
	return Envelope{MinLon: minLon, MinLat: minLat, MaxLon: maxLon, MaxLat: maxLat}, nil
}

// Layers checks every requested layer name against the address-type
// registry.
func Layers(values []string) error {
	for _, v := range values {
		if !addresstype.IsValidName(v) {
			return errs.Layer(v, addresstype.Names())
		}
	}
	return nil
}

// Language checks lang against the process-wide valid language set, when
// supplied. An empty lang is not validated here; callers substitute the
// default language after this check.
func Language(lang string, valid []string) error {
	if lang == "" {
		return nil
	}
	for _, v := range valid {
		if v == lang {
			return nil
		}
	}
	return errs.Lang(lang, valid)
}

// Bias builds a LocationBias from the four optional inputs, enforcing
// all-or-none. Any arity other than "all four present" or "all four
// absent" is a validation error.
func Bias(lon, lat *float32, scale *float64, zoom *int64) (*LocationBias, error) {
	present := 0
	for _, v := range []bool{lon != nil, lat != nil, scale != nil, zoom != nil} {
		if v {
			present++
		}
	}
	if present == 0 {
		return nil, nil
	}
	if present != 4 {
		return nil, errs.LocationBias()
	}
	point, err := RequiredPoint(*lon, *lat)
	if err != nil {
		return nil, err
	}
	return &LocationBias{Point: point, Scale: *scale, Zoom: *zoom}, nil
}
