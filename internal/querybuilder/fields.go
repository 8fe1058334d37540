package querybuilder

import "fmt"

// Fields builds the analyzer-backed multi_match query that forms the
// backbone of the ranked search query: the request text against the
// default collector field plus a per-language ngram collector field for
// every supported language, boosted 1.0 for the request language and 0.6
// for every other.
func Fields(q, language string, languages []string, lenient bool) MultiMatchQuery {
	fields := []string{"collector.default^1.0"}
	for _, lang := range languages {
		boost := 0.6
		if lang == language {
			boost = 1.0
		}
		fields = append(fields, fmt.Sprintf("collector.%s.ngrams^%v", lang, boost))
	}

	queryType := "cross_fields"
	if lenient {
		queryType = "best_fields"
	}

	mm := MultiMatchQuery{
		Fields:             fields,
		QueryText:          q,
		Type:               queryType,
		PrefixLength:       2,
		Analyzer:           "search_ngram",
		TieBreaker:         0.4,
		MinimumShouldMatch: "100%",
	}
	if lenient {
		mm.MinimumShouldMatch = "-34%"
		mm.Fuzziness = "AUTO"
	}
	return mm
}

// HousenumberCollector builds the raw (non-analyzed) multi_match over the
// housenumber-bearing collector fields, used to promote exact address
// matches ahead of ngram matches.
func HousenumberCollector(q, language string, languages []string) MultiMatchQuery {
	fields := []string{"collector.default.raw^1.0"}
	for _, lang := range languages {
		boost := 0.6
		if lang == language {
			boost = 1.0
		}
		fields = append(fields, fmt.Sprintf("collector.%s.raw^%v", lang, boost))
	}
	return MultiMatchQuery{
		Fields:    fields,
		QueryText: q,
		Type:      "best_fields",
	}
}

// HousenumberPromoted wraps HousenumberCollector in a function_score that
// boosts 10x when the query text also matches the housenumber field
// directly, so exact house-number queries rank their street record first.
func HousenumberPromoted(q, language string, languages []string) FunctionScoreQuery {
	return FunctionScoreQuery{
		Query: HousenumberCollector(q, language, languages),
		Boost: 0.3,
		Functions: []ScoreFunction{
			{
				Kind:   "weight",
				Weight: 10,
				Filter: MatchQuery{Field: "housenumber", QueryText: q, Analyzer: "standard"},
			},
		},
	}
}

// FullNameMatch matches the request text against the request language's
// raw name field, exactly unless lenient allows fuzzy matching.
func FullNameMatch(q, language string, lenient bool) MatchQuery {
	m := MatchQuery{
		Field:     fmt.Sprintf("name.%s.raw", language),
		QueryText: q,
	}
	if lenient {
		m.Fuzziness = "AUTO"
	} else {
		m.Fuzziness = 0
	}
	return m
}

// TopLevelFilter is the disjunction gating which documents are eligible at
// all: either the document has no housenumber, or the query text matches
// its housenumber directly, or the document has a name in the request
// language.
func TopLevelFilter(q, language string) *BoolQuery {
	noHousenumber := &BoolQuery{}
	noHousenumber.AddMustNot(ExistsQuery{Field: "housenumber"})

	filter := &BoolQuery{}
	filter.AddShould(noHousenumber)
	filter.AddShould(MatchQuery{Field: "housenumber", QueryText: q, Analyzer: "standard"})
	filter.AddShould(ExistsQuery{Field: fmt.Sprintf("name.%s.raw", language)})
	return filter
}
