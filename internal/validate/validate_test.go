package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func f32(v float32) *float32 { return &v }
func f64(v float64) *float64 { return &v }
func i64(v int64) *int64     { return &v }

func TestLonBoundaries(t *testing.T) {
	assert.NoError(t, Lon(180))
	assert.NoError(t, Lon(-180))
	assert.Error(t, Lon(180.0001))
}

func TestLatBoundaries(t *testing.T) {
	assert.NoError(t, Lat(90))
	assert.NoError(t, Lat(-90))
	assert.Error(t, Lat(90.0001))
}

func TestOptionalPointBothAbsent(t *testing.T) {
	p, err := OptionalPoint(nil, nil)
	require.NoError(t, err)
	assert.Nil(t, p)
}

func TestOptionalPointBothPresent(t *testing.T) {
	p, err := OptionalPoint(f32(13.4), f32(52.5))
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Equal(t, float32(13.4), p.Lon)
	assert.Equal(t, float32(52.5), p.Lat)
}

func TestOptionalPointOutOfRange(t *testing.T) {
	_, err := OptionalPoint(f32(200), f32(52.5))
	assert.Error(t, err)
}

func TestBboxAccepted(t *testing.T) {
	env, err := Bbox([4]float32{-1, -1, 1, 1})
	require.NoError(t, err)
	assert.Equal(t, Envelope{MinLon: -1, MinLat: -1, MaxLon: 1, MaxLat: 1}, env)
}

func TestBboxRejectsOutOfRangeCoordinate(t *testing.T) {
	_, err := Bbox([4]float32{-200, -1, 1, 1})
	assert.Error(t, err)
}

func TestBboxRejectsMinGreaterThanMax(t *testing.T) {
	_, err := Bbox([4]float32{1, -1, -1, 1})
	assert.Error(t, err, "expected error for min_lon > max_lon")

	_, err = Bbox([4]float32{-1, 1, 1, -1})
	assert.Error(t, err, "expected error for min_lat > max_lat")
}

func TestLayersValid(t *testing.T) {
	assert.NoError(t, Layers([]string{"house", "city"}))
}

func TestLayersInvalid(t *testing.T) {
	assert.Error(t, Layers([]string{"planet"}))
}

func TestLanguageEmptyIsOK(t *testing.T) {
	assert.NoError(t, Language("", []string{"en", "de"}))
}

func TestLanguageMember(t *testing.T) {
	assert.NoError(t, Language("de", []string{"en", "de"}))
}

func TestLanguageNotMember(t *testing.T) {
	assert.Error(t, Language("xx", []string{"en", "de"}))
}

func TestBiasAllAbsent(t *testing.T) {
	bias, err := Bias(nil, nil, nil, nil)
	require.NoError(t, err)
	assert.Nil(t, bias)
}

func TestBiasAllPresent(t *testing.T) {
	bias, err := Bias(f32(13.4), f32(52.5), f64(0.2), i64(12))
	require.NoError(t, err)
	require.NotNil(t, bias)
	assert.Equal(t, float32(13.4), bias.Point.Lon)
	assert.Equal(t, 0.2, bias.Scale)
	assert.Equal(t, int64(12), bias.Zoom)
}

func TestBiasPartialIsError(t *testing.T) {
	_, err := Bias(f32(13.4), nil, f64(0.2), i64(12))
	assert.Error(t, err, "expected error for partial location bias")

	_, err = Bias(f32(13.4), f32(52.5), f64(0.2), nil)
	assert.Error(t, err, "expected error for partial location bias")
}
