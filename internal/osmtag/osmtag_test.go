package osmtag

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseInclude(t *testing.T) {
	f := Parse("tourism")
	assert.Equal(t, Filter{Kind: Include, Key: "tourism"}, f)
}

func TestParseExclude(t *testing.T) {
	f := Parse("!tourism")
	assert.Equal(t, Filter{Kind: Exclude, Key: "tourism"}, f)
}

func TestParseIncludeKeyValue(t *testing.T) {
	f := Parse("tourism:hotel")
	assert.Equal(t, Filter{Kind: Include, Key: "tourism", Value: "hotel"}, f)
}

func TestParseExcludeKey(t *testing.T) {
	f := Parse("!tourism:hotel")
	assert.Equal(t, Filter{Kind: Exclude, Key: "tourism", Value: "hotel"}, f)
}

func TestParseExcludeValue(t *testing.T) {
	f := Parse("tourism:!hotel")
	assert.Equal(t, Filter{Kind: ExcludeValue, Key: "tourism", Value: "hotel"}, f)
}

func TestParseExcludeKeyAndValueIsNotExcludeValue(t *testing.T) {
	// key-side ! takes precedence; this is Exclude, not ExcludeValue.
	f := Parse("!tourism:!hotel")
	assert.Equal(t, Filter{Kind: Exclude, Key: "tourism", Value: "hotel"}, f)
}

func TestParseEmptyValueFallsBackToInclude(t *testing.T) {
	f := Parse("tourism:!")
	assert.Equal(t, Filter{Kind: Include, Key: "tourism"}, f)
}

func TestParseEmptyKeyKeepsValue(t *testing.T) {
	f := Parse(":hotel")
	assert.Equal(t, Filter{Kind: Include, Value: "hotel"}, f)
}

func TestParseDiscardsEmptyTokens(t *testing.T) {
	cases := []string{"", "  ", "!", ":", "!:", "::", "!!"}
	for _, c := range cases {
		f := Parse(c)
		assert.Equalf(t, None, f.Kind, "Parse(%q) = %+v, want Kind == None", c, f)
	}
}

func TestParseTrimsWhitespace(t *testing.T) {
	f := Parse("  tourism  ")
	assert.Equal(t, Include, f.Kind)
	assert.Equal(t, "tourism", f.Key)
}

func TestParseIsIdempotentOnReEmit(t *testing.T) {
	// Re-parsing a filter's own key:value form must reproduce the same
	// Filter, so repeated round trips through a query string are stable.
	cases := []string{"tourism", "!tourism", "tourism:hotel", "!tourism:hotel", "tourism:!hotel"}
	for _, token := range cases {
		first := Parse(token)
		reemitted := reemit(first)
		second := Parse(reemitted)
		assert.Equalf(t, first, second, "Parse(%q) = %+v, round trip via %q = %+v", token, first, reemitted, second)
	}
}

func reemit(f Filter) string {
	switch f.Kind {
	case Include:
		if f.Value == "" {
			return f.Key
		}
		return f.Key + ":" + f.Value
	case Exclude:
		if f.Value == "" {
			return "!" + f.Key
		}
		return "!" + f.Key + ":" + f.Value
	case ExcludeValue:
		return f.Key + ":!" + f.Value
	default:
		return ""
	}
}

func TestParseSetDiscardsEmptyAndKeepsOrder(t *testing.T) {
	filters := ParseSet([]string{"tourism", "", "!amenity:parking", "  "})
	require.Len(t, filters, 2)
	assert.Equal(t, Filter{Kind: Include, Key: "tourism"}, filters[0])
	assert.Equal(t, Filter{Kind: Exclude, Key: "amenity", Value: "parking"}, filters[1])
}
