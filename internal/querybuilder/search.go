package querybuilder

import (
	"strings"

	"github.com/tesseract-hub/photon-gateway/internal/osmtag"
	"github.com/tesseract-hub/photon-gateway/internal/validate"
)

// SearchParams carries everything the search query builder needs, already
// validated and normalized by internal/validate.
type SearchParams struct {
	Q            string
	Language     string
	Languages    []string
	Lenient      bool
	OsmTag       []osmtag.Filter
	Bbox         *validate.Envelope
	Layers       []string
	LocationBias *validate.LocationBias
}

// Search builds the full search query tree per SearchParams.
func Search(p SearchParams) Query {
	unfiltered := buildUnfilteredQuery(p)
	ranked := ApplyLocationBias(unfiltered, p.LocationBias)

	topLevelFilter := TopLevelFilter(p.Q, p.Language)

	final := &BoolQuery{}
	final.AddMust(ranked)
	ApplyOsmTag(final, p.OsmTag)

	filterClauses := &BoolQuery{}
	filterClauses.AddFilter(topLevelFilter)
	if p.Bbox != nil {
		filterClauses.AddFilter(Bbox(*p.Bbox))
	}
	if len(p.Layers) > 0 {
		filterClauses.AddFilter(Layer(p.Layers))
	}
	final.Filter = filterClauses.Filter

	return final
}

func buildUnfilteredQuery(p SearchParams) Query {
	fieldsQuery := Fields(p.Q, p.Language, p.Languages, p.Lenient)
	functionScoreQuery := HousenumberPromoted(p.Q, p.Language, p.Languages)
	fullNameQuery := FullNameMatch(p.Q, p.Language, p.Lenient)

	inner := &BoolQuery{}
	inner.AddMust(fieldsQuery)
	inner.AddShould(functionScoreQuery)
	inner.AddShould(fullNameQuery)

	nameNgram := NameNgram(p.Q, p.Language, p.Languages, p.Lenient)

	if !strings.Contains(p.Q, ",") && !strings.Contains(p.Q, " ") {
		boosted := nameNgram
		boosted.Boost = 2
		inner.AddMust(boosted)
	} else {
		disjunction := &BoolQuery{MinimumShouldMatch: 1}
		disjunction.AddShould(nameNgram)
		disjunction.AddShould(MatchQuery{Field: "housenumber", QueryText: p.Q, Analyzer: "standard"})
		classification := MatchQuery{Field: "classification", QueryText: p.Q}
		classification.Boost = 0.1
		disjunction.AddShould(classification)
		inner.AddMust(disjunction)
	}

	return FunctionScoreQuery{
		Query: inner,
		Functions: []ScoreFunction{
			{Kind: "decay_linear", Field: "importance", Origin: 1.0, Scale: 0.6},
			{
				Kind:   "weight",
				Weight: 0.1,
				Filter: MatchQuery{Field: "classification", QueryText: p.Q},
			},
		},
		ScoreMode: "sum",
	}
}
