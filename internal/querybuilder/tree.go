// Package querybuilder builds a backend-agnostic query tree — plain Go
// values, not serialized JSON — for the search and reverse endpoints.
// Composition (adding a bbox filter, a layer filter, an osm_tag filter) is
// by value; turning the tree into the wire format the backend expects is
// a single leaf step (Source).
package querybuilder

// M is the JSON-object shorthand used throughout the tree's Source output.
type M = map[string]interface{}

// Query is any node in the tree. Source renders it into the nested-map
// shape the Elasticsearch query DSL expects.
type Query interface {
	Source() M
}

// Body is a complete search request body: a query plus optional sort.
type Body struct {
	Query Query
	Sort  []SortClause
}

func (b Body) Source() M {
	m := M{"query": b.Query.Source()}
	if len(b.Sort) > 0 {
		sorts := make([]M, len(b.Sort))
		for i, s := range b.Sort {
			sorts[i] = s.Source()
		}
		m["sort"] = sorts
	}
	return m
}

// SortClause is one entry of the search body's "sort" array.
type SortClause interface {
	Source() M
}

// GeoDistanceSort sorts hits by distance from a point.
type GeoDistanceSort struct {
	Field string
	Lat   float32
	Lon   float32
	Order string // "asc" or "desc"
}

func (s GeoDistanceSort) Source() M {
	return M{
		"_geo_distance": M{
			s.Field: M{"lat": s.Lat, "lon": s.Lon},
			"order": s.Order,
		},
	}
}

// BoolQuery is the standard must/should/must_not/filter boolean query.
type BoolQuery struct {
	Must               []Query
	Should             []Query
	MustNot            []Query
	Filter             []Query
	MinimumShouldMatch interface{}
}

func (b *BoolQuery) AddMust(q Query) *BoolQuery {
	b.Must = append(b.Must, q)
	return b
}

func (b *BoolQuery) AddShould(q Query) *BoolQuery {
	b.Should = append(b.Should, q)
	return b
}

func (b *BoolQuery) AddMustNot(q Query) *BoolQuery {
	b.MustNot = append(b.MustNot, q)
	return b
}

func (b *BoolQuery) AddFilter(q Query) *BoolQuery {
	b.Filter = append(b.Filter, q)
	return b
}

// Empty reports whether this bool query carries no clauses at all.
func (b *BoolQuery) Empty() bool {
	return len(b.Must) == 0 && len(b.Should) == 0 && len(b.MustNot) == 0 && len(b.Filter) == 0
}

func (b *BoolQuery) Source() M {
	inner := M{}
	if len(b.Must) > 0 {
		inner["must"] = sources(b.Must)
	}
	if len(b.Should) > 0 {
		inner["should"] = sources(b.Should)
	}
	if len(b.MustNot) > 0 {
		inner["must_not"] = sources(b.MustNot)
	}
	if len(b.Filter) > 0 {
		inner["filter"] = sources(b.Filter)
	}
	if b.MinimumShouldMatch != nil {
		inner["minimum_should_match"] = b.MinimumShouldMatch
	}
	return M{"bool": inner}
}

func sources(qs []Query) []M {
	out := make([]M, len(qs))
	for i, q := range qs {
		out[i] = q.Source()
	}
	return out
}

// MultiMatchQuery is a multi_match query over several boosted fields.
type MultiMatchQuery struct {
	Fields             []string
	QueryText          string
	Type               string // "best_fields" or "cross_fields"
	PrefixLength       int
	Analyzer           string
	TieBreaker         float64
	MinimumShouldMatch string
	Fuzziness          interface{} // nil, "AUTO", or an integer distance
	Boost              float64
}

func (q MultiMatchQuery) Source() M {
	inner := M{
		"query":  q.QueryText,
		"fields": q.Fields,
	}
	if q.Type != "" {
		inner["type"] = q.Type
	}
	if q.PrefixLength != 0 {
		inner["prefix_length"] = q.PrefixLength
	}
	if q.Analyzer != "" {
		inner["analyzer"] = q.Analyzer
	}
	if q.TieBreaker != 0 {
		inner["tie_breaker"] = q.TieBreaker
	}
	if q.MinimumShouldMatch != "" {
		inner["minimum_should_match"] = q.MinimumShouldMatch
	}
	if q.Fuzziness != nil {
		inner["fuzziness"] = q.Fuzziness
	}
	if q.Boost != 0 {
		inner["boost"] = q.Boost
	}
	return M{"multi_match": inner}
}

// MatchQuery is a single-field match query.
type MatchQuery struct {
	Field     string
	QueryText string
	Analyzer  string
	Fuzziness interface{}
	Boost     float64
}

func (q MatchQuery) Source() M {
	inner := M{"query": q.QueryText}
	if q.Analyzer != "" {
		inner["analyzer"] = q.Analyzer
	}
	if q.Fuzziness != nil {
		inner["fuzziness"] = q.Fuzziness
	}
	if q.Boost != 0 {
		inner["boost"] = q.Boost
	}
	return M{"match": M{q.Field: inner}}
}

// MatchAllQuery matches every document.
type MatchAllQuery struct{}

func (MatchAllQuery) Source() M { return M{"match_all": M{}} }

// QueryStringQuery runs the backend's query_string mini-language.
type QueryStringQuery struct {
	QueryText string
}

func (q QueryStringQuery) Source() M {
	return M{"query_string": M{"query": q.QueryText}}
}

// TermQuery matches an exact field value.
type TermQuery struct {
	Field string
	Value string
}

func (q TermQuery) Source() M {
	return M{"term": M{q.Field: M{"value": q.Value}}}
}

// TermsQuery matches a field against a set of values.
type TermsQuery struct {
	Field  string
	Values []string
}

func (q TermsQuery) Source() M {
	return M{"terms": M{q.Field: q.Values}}
}

// ExistsQuery matches documents where Field is present.
type ExistsQuery struct {
	Field string
}

func (q ExistsQuery) Source() M {
	return M{"exists": M{"field": q.Field}}
}

// GeoBoundingBoxQuery filters documents within a bounding box. The
// top/left/bottom/right naming is bug-compatible with the system this was
// ported from: top is bound to min_lat and bottom to max_lat (see
// internal/querybuilder/bbox.go).
type GeoBoundingBoxQuery struct {
	Field                    string
	Top, Left, Bottom, Right float32
}

func (q GeoBoundingBoxQuery) Source() M {
	return M{"geo_bounding_box": M{
		q.Field: M{
			"top":    q.Top,
			"left":   q.Left,
			"bottom": q.Bottom,
			"right":  q.Right,
		},
	}}
}

// GeoDistanceQuery filters documents within a radius (kilometers) of a point.
type GeoDistanceQuery struct {
	Field      string
	Lat, Lon   float32
	DistanceKM float64
}

func (q GeoDistanceQuery) Source() M {
	return M{
		"geo_distance": M{
			"distance":  formatKM(q.DistanceKM),
			q.Field:     M{"lat": q.Lat, "lon": q.Lon},
		},
	}
}

// ScoreFunction is one function entry in a function_score query.
type ScoreFunction struct {
	// DecayLinear / DecayExp
	Field  string
	Origin interface{}
	Scale  interface{}
	Offset interface{}
	Decay  float64
	Kind   string // "decay_linear", "decay_exp", or "weight"

	// Weight
	Weight float64
	Filter Query
}

func (f ScoreFunction) Source() M {
	switch f.Kind {
	case "decay_linear", "decay_exp":
		fn := "linear"
		if f.Kind == "decay_exp" {
			fn = "exp"
		}
		params := M{"origin": f.Origin, "scale": f.Scale}
		if f.Offset != nil {
			params["offset"] = f.Offset
		}
		if f.Decay != 0 {
			params["decay"] = f.Decay
		}
		return M{fn: M{f.Field: params}}
	case "weight":
		m := M{"weight": f.Weight}
		if f.Filter != nil {
			m["filter"] = f.Filter.Source()
		}
		return m
	default:
		return M{}
	}
}

// FunctionScoreQuery wraps a query with one or more scoring functions.
type FunctionScoreQuery struct {
	Query     Query
	Functions []ScoreFunction
	BoostMode string
	ScoreMode string
	Boost     float64
}

func (q FunctionScoreQuery) Source() M {
	inner := M{}
	if q.Query != nil {
		inner["query"] = q.Query.Source()
	}
	fns := make([]M, len(q.Functions))
	for i, f := range q.Functions {
		fns[i] = f.Source()
	}
	inner["functions"] = fns
	if q.BoostMode != "" {
		inner["boost_mode"] = q.BoostMode
	}
	if q.ScoreMode != "" {
		inner["score_mode"] = q.ScoreMode
	}
	if q.Boost != 0 {
		inner["boost"] = q.Boost
	}
	return M{"function_score": inner}
}

func formatKM(km float64) string {
	return trimTrailingZeros(km) + "km"
}
