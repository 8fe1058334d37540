package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tesseract-hub/photon-gateway/internal/config"
	"github.com/tesseract-hub/photon-gateway/internal/document"
	"github.com/tesseract-hub/photon-gateway/internal/querybuilder"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// fakeDispatcher is a test double satisfying the Dispatcher interface,
// letting handler tests reach the success path without a live backend.
type fakeDispatcher struct {
	features document.FeatureCollection
	err      error
}

func (f *fakeDispatcher) Search(ctx context.Context, params querybuilder.SearchParams, limit int64, language string) (document.FeatureCollection, error) {
	return f.features, f.err
}

func (f *fakeDispatcher) Reverse(ctx context.Context, params querybuilder.ReverseParams, limit int64, language string) (document.FeatureCollection, error) {
	return f.features, f.err
}

func (f *fakeDispatcher) Lookup(ctx context.Context, placeID string, language string) (document.FeatureCollection, error) {
	return f.features, f.err
}

func testRouter(d Dispatcher) *gin.Engine {
	cfg := &config.Config{
		ValidLanguages:  []string{"en", "de", "fr", "it"},
		DefaultLanguage: "en",
	}
	h := New(d, nil, cfg)

	router := gin.New()
	router.GET("/search", h.Search)
	router.GET("/reverse", h.Reverse)
	router.GET("/lookup", h.Lookup)
	return router
}

func doGet(router *gin.Engine, target string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", target, nil)
	router.ServeHTTP(w, req)
	return w
}

func oneFeatureCollection() document.FeatureCollection {
	return document.NewFeatureCollection([]document.Feature{
		{
			Type: "Feature",
			Geometry: document.Geometry{
				Type:        "Point",
				Coordinates: [2]float32{13.4, 52.5},
			},
		},
	})
}

func TestSearchRequiresQ(t *testing.T) {
	w := doGet(testRouter(nil), "/search")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSearchRejectsInvalidLon(t *testing.T) {
	w := doGet(testRouter(nil), "/search?q=berlin&lon=200&lat=10")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSearchRejectsUnknownLanguage(t *testing.T) {
	w := doGet(testRouter(nil), "/search?q=berlin&lang=xx")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSearchRejectsInvalidBbox(t *testing.T) {
	w := doGet(testRouter(nil), "/search?q=berlin&bbox=10,10,5,5")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSearchRejectsInvalidLayer(t *testing.T) {
	w := doGet(testRouter(nil), "/search?q=berlin&layer=planet")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSearchRejectsPartialLocationBias(t *testing.T) {
	w := doGet(testRouter(nil), "/search?q=berlin&lon=13.4&lat=52.5")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSearchReturnsFeatureCollectionOnSuccess(t *testing.T) {
	fake := &fakeDispatcher{features: oneFeatureCollection()}
	w := doGet(testRouter(fake), "/search?q=berlin")
	require.Equal(t, http.StatusOK, w.Code)

	var fc document.FeatureCollection
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &fc))
	assert.Equal(t, "FeatureCollection", fc.Type)
	require.Len(t, fc.Features, 1)
	assert.Equal(t, [2]float32{13.4, 52.5}, fc.Features[0].Geometry.Coordinates)
}

func TestSearchDebugIncludesQueryTree(t *testing.T) {
	fake := &fakeDispatcher{features: oneFeatureCollection()}
	w := doGet(testRouter(fake), "/search?q=berlin&debug=true")
	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "FeatureCollection", body["type"])
	assert.Contains(t, body, "debug_query")
	assert.NotEmpty(t, body["debug_query"])
}

func TestReverseRequiresLonLat(t *testing.T) {
	w := doGet(testRouter(nil), "/reverse?radius=3")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestReverseRequiresRadius(t *testing.T) {
	w := doGet(testRouter(nil), "/reverse?lon=13.4&lat=52.5")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestReverseRejectsOutOfRangeLat(t *testing.T) {
	w := doGet(testRouter(nil), "/reverse?lon=13.4&lat=200&radius=3")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestReverseReturnsFeatureCollectionOnSuccess(t *testing.T) {
	fake := &fakeDispatcher{features: oneFeatureCollection()}
	w := doGet(testRouter(fake), "/reverse?lon=13.4&lat=52.5&radius=3")
	require.Equal(t, http.StatusOK, w.Code)

	var fc document.FeatureCollection
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &fc))
	assert.Equal(t, "FeatureCollection", fc.Type)
	require.Len(t, fc.Features, 1)
}

func TestReverseDebugIncludesQueryTree(t *testing.T) {
	fake := &fakeDispatcher{features: oneFeatureCollection()}
	w := doGet(testRouter(fake), "/reverse?lon=13.4&lat=52.5&radius=3&debug=true")
	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "FeatureCollection", body["type"])
	assert.Contains(t, body, "debug_query")
	assert.NotEmpty(t, body["debug_query"])
}

func TestLookupRequiresPlaceID(t *testing.T) {
	w := doGet(testRouter(nil), "/lookup")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLookupRejectsUnknownLanguage(t *testing.T) {
	w := doGet(testRouter(nil), "/lookup?place_id=123&lang=xx")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLookupReturnsFeatureCollectionOnSuccess(t *testing.T) {
	fake := &fakeDispatcher{features: oneFeatureCollection()}
	w := doGet(testRouter(fake), "/lookup?place_id=123")
	require.Equal(t, http.StatusOK, w.Code)

	var fc document.FeatureCollection
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &fc))
	assert.Equal(t, "FeatureCollection", fc.Type)
	require.Len(t, fc.Features, 1)
}
