// Package document defines the backend's place-document shape and shapes
// it into the GeoJSON Feature the gateway returns.
package document

// LanguageField maps a language code to a localized value. The sentinel
// key "default" is used as the fallback when the requested language has
// no entry.
type LanguageField map[string]string

// resolve applies the uniform per-language fallback: requested language,
// then "default", then absent. The same function backs every per-language
// field on Document, so adding a new field is only a matter of calling it.
func resolve(field LanguageField, language string) *string {
	if field == nil {
		return nil
	}
	if v, ok := field[language]; ok {
		return &v
	}
	if v, ok := field["default"]; ok {
		return &v
	}
	return nil
}

// Coordinate is the backend's {lat, lon} nesting.
type Coordinate struct {
	Lat float32 `json:"lat"`
	Lon float32 `json:"lon"`
}

// Extent is the backend's 2x2 bounding envelope.
type Extent struct {
	Type        string        `json:"type"`
	Coordinates [2][2]float32 `json:"coordinates"`
}

// Document is a place record exactly as the backend stores it.
type Document struct {
	Type          string            `json:"type"`
	Importance    float64           `json:"importance"`
	PlaceID       int64             `json:"place_id"`
	ParentPlaceID *int64            `json:"parent_place_id,omitempty"`
	OsmID         int64             `json:"osm_id"`
	OsmType       string            `json:"osm_type"`
	OsmKey        string            `json:"osm_key"`
	OsmValue      string            `json:"osm_value"`
	Coordinate    Coordinate        `json:"coordinate"`
	Extent        *Extent           `json:"extent,omitempty"`
	Classification *string          `json:"classification,omitempty"`
	CountryCode   *string           `json:"countrycode,omitempty"`
	HouseNumber   *string           `json:"housenumber,omitempty"`
	Postcode      *string           `json:"postcode,omitempty"`
	Names         map[string]string `json:"names,omitempty"`
	Extra         map[string]string `json:"extra,omitempty"`

	Country  LanguageField `json:"country,omitempty"`
	County   LanguageField `json:"county,omitempty"`
	City     LanguageField `json:"city,omitempty"`
	State    LanguageField `json:"state,omitempty"`
	District LanguageField `json:"district,omitempty"`
	Locality LanguageField `json:"locality,omitempty"`
	Street   LanguageField `json:"street,omitempty"`
	Name     LanguageField `json:"name,omitempty"`
}

// Geometry is the GeoJSON Point geometry attached to every Feature.
type Geometry struct {
	Type        string     `json:"type"`
	Coordinates [2]float32 `json:"coordinates"`
}

// Properties mirrors the document's scalar and resolved per-language
// fields.
type Properties struct {
	ParentPlaceID  *int64            `json:"parent_place_id,omitempty"`
	PlaceID        int64             `json:"place_id"`
	OsmType        string            `json:"osm_type"`
	OsmID          int64             `json:"osm_id"`
	OsmKey         string            `json:"osm_key"`
	OsmValue       string            `json:"osm_value"`
	Type           string            `json:"type"`
	Postcode       *string           `json:"postcode,omitempty"`
	HouseNumber    *string           `json:"housenumber,omitempty"`
	CountryCode    *string           `json:"countrycode,omitempty"`
	Classification *string           `json:"classification,omitempty"`
	Name           *string           `json:"name,omitempty"`
	Country        *string           `json:"country,omitempty"`
	City           *string           `json:"city,omitempty"`
	District       *string           `json:"district,omitempty"`
	Locality       *string           `json:"locality,omitempty"`
	Street         *string           `json:"street,omitempty"`
	State          *string           `json:"state,omitempty"`
	County         *string           `json:"county,omitempty"`
	Extent         *[4]float32       `json:"extent,omitempty"`
	Extra          map[string]string `json:"extra,omitempty"`
	Names          map[string]string `json:"names,omitempty"`
}

// Feature is one GeoJSON Feature in the response FeatureCollection.
type Feature struct {
	Type       string     `json:"type"`
	Properties Properties `json:"properties"`
	Geometry   Geometry   `json:"geometry"`
}

// FeatureCollection is the gateway's top-level response body.
type FeatureCollection struct {
	Type     string    `json:"type"`
	Features []Feature `json:"features"`
}

// NewFeatureCollection wraps features, substituting an empty (never nil)
// slice when there are none so the JSON encoding always has "features": [].
func NewFeatureCollection(features []Feature) FeatureCollection {
	if features == nil {
		features = []Feature{}
	}
	return FeatureCollection{Type: "FeatureCollection", Features: features}
}

// ToFeature resolves every per-language field on doc against language and
// flattens the extent, producing the GeoJSON Feature served to callers.
func ToFeature(doc Document, language string) Feature {
	var extent *[4]float32
	if doc.Extent != nil {
		c := doc.Extent.Coordinates
		extent = &[4]float32{c[0][0], c[0][1], c[1][0], c[1][1]}
	}

	return Feature{
		Type: "Feature",
		Properties: Properties{
			ParentPlaceID:  doc.ParentPlaceID,
			PlaceID:        doc.PlaceID,
			OsmType:        doc.OsmType,
			OsmID:          doc.OsmID,
			OsmKey:         doc.OsmKey,
			OsmValue:       doc.OsmValue,
			Type:           doc.Type,
			Postcode:       doc.Postcode,
			HouseNumber:    doc.HouseNumber,
			CountryCode:    doc.CountryCode,
			Classification: doc.Classification,
			Name:           resolve(doc.Name, language),
			Country:        resolve(doc.Country, language),
			City:           resolve(doc.City, language),
			District:       resolve(doc.District, language),
			Locality:       resolve(doc.Locality, language),
			Street:         resolve(doc.Street, language),
			State:          resolve(doc.State, language),
			County:         resolve(doc.County, language),
			Extent:         extent,
			Extra:          doc.Extra,
			Names:          doc.Names,
		},
		Geometry: Geometry{
			Type:        "Point",
			Coordinates: [2]float32{doc.Coordinate.Lon, doc.Coordinate.Lat},
		},
	}
}
