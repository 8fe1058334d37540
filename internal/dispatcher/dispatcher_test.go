package dispatcher

import (
	"bytes"
	"io"
	"net/http"
	"testing"

	"github.com/elastic/go-elasticsearch/v8/esapi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tesseract-hub/photon-gateway/internal/document"
)

func TestSizeForLimitBoundaries(t *testing.T) {
	cases := []struct {
		limit int64
		want  int
	}{
		{1, 1},
		{2, 3},
		{0, 0},
		{10, 15},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, sizeForLimit(c.limit))
	}
}

func TestToFeatureCollectionEmpty(t *testing.T) {
	fc := toFeatureCollection(nil, "en")
	assert.Equal(t, "FeatureCollection", fc.Type)
	assert.NotNil(t, fc.Features)
	assert.Len(t, fc.Features, 0)
}

func TestToFeatureCollectionMapsEachDoc(t *testing.T) {
	docs := []document.Document{{PlaceID: 1}, {PlaceID: 2}}
	fc := toFeatureCollection(docs, "en")
	assert.Len(t, fc.Features, 2)
}

func newResponse(status int, body string) *esapi.Response {
	return &esapi.Response{
		StatusCode: status,
		Body:       io.NopCloser(bytes.NewBufferString(body)),
	}
}

func TestDecodeHitsSuccess(t *testing.T) {
	body := `{"hits":{"hits":[{"_source":{"place_id":1,"type":"house"}},{"_source":{"place_id":2,"type":"city"}}]}}`
	docs, err := decodeHits(newResponse(http.StatusOK, body))
	require.NoError(t, err)
	assert.Len(t, docs, 2)
}

func TestDecodeHitsSkipsNilSource(t *testing.T) {
	body := `{"hits":{"hits":[{"_source":null},{"_source":{"place_id":2}}]}}`
	docs, err := decodeHits(newResponse(http.StatusOK, body))
	require.NoError(t, err)
	assert.Len(t, docs, 1, "nil source skipped")
}

func TestDecodeHitsBackendError(t *testing.T) {
	_, err := decodeHits(newResponse(http.StatusInternalServerError, `{"error":"boom"}`))
	assert.Error(t, err)
}
