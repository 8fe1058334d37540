package querybuilder

import "github.com/tesseract-hub/photon-gateway/internal/osmtag"

// ApplyOsmTag folds a parsed osm_tag filter set onto target: an include
// disjunction goes in as a must clause, an exclude disjunction as a
// must_not clause. Either side is omitted when its filter set is empty,
// and a totally empty filter set contributes nothing.
func ApplyOsmTag(target *BoolQuery, filters []osmtag.Filter) {
	include := &BoolQuery{}
	exclude := &BoolQuery{}

	for _, f := range filters {
		switch f.Kind {
		case osmtag.Include:
			include.AddShould(includeTerm(f))
		case osmtag.Exclude:
			exclude.AddShould(includeTerm(f))
		case osmtag.ExcludeValue:
			inner := &BoolQuery{}
			inner.AddMust(TermQuery{Field: "osm_key", Value: f.Key})
			inner.AddMustNot(TermQuery{Field: "osm_value", Value: f.Value})
			exclude.AddShould(inner)
		}
	}

	if !include.Empty() {
		target.AddMust(include)
	}
	if !exclude.Empty() {
		target.AddMustNot(exclude)
	}
}

// includeTerm builds the single-clause or key+value term match for one
// Include/Exclude filter.
func includeTerm(f osmtag.Filter) Query {
	if f.Key != "" && f.Value != "" {
		inner := &BoolQuery{}
		inner.AddMust(TermQuery{Field: "osm_key", Value: f.Key})
		inner.AddMust(TermQuery{Field: "osm_value", Value: f.Value})
		return inner
	}
	if f.Key != "" {
		return TermQuery{Field: "osm_key", Value: f.Key}
	}
	return TermQuery{Field: "osm_value", Value: f.Value}
}
