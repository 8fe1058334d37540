// Package dispatcher sends built queries to the backend cluster and turns
// hits into the GeoJSON response shape, including the search endpoint's
// size shaping and lenient retry.
package dispatcher

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"math"

	"github.com/elastic/go-elasticsearch/v8/esapi"

	"github.com/tesseract-hub/photon-gateway/internal/clients"
	"github.com/tesseract-hub/photon-gateway/internal/document"
	"github.com/tesseract-hub/photon-gateway/internal/errs"
	"github.com/tesseract-hub/photon-gateway/internal/querybuilder"
)

// Dispatcher sends query trees to the backend through a bounded pool.
type Dispatcher struct {
	pool *clients.Pool
}

// New builds a Dispatcher over pool.
func New(pool *clients.Pool) *Dispatcher {
	return &Dispatcher{pool: pool}
}

type esHit struct {
	Source *document.Document `json:"_source"`
}

type esSearchResponse struct {
	Hits struct {
		Hits []esHit `json:"hits"`
	} `json:"hits"`
}

// sizeForLimit implements the search endpoint's headroom shaping: when the
// caller's limit exceeds 1, request round(limit*1.5) hits from the
// backend so downstream re-ranking has room to work with, without the
// caller ever seeing the inflated number.
func sizeForLimit(limit int64) int {
	if limit <= 1 {
		return int(limit)
	}
	return int(math.Round(float64(limit) * 1.5))
}

// Search sends params against the photon index, retrying once with
// lenient=true if the strict attempt returns zero hits.
func (d *Dispatcher) Search(ctx context.Context, params querybuilder.SearchParams, limit int64, language string) (document.FeatureCollection, error) {
	params.Lenient = false
	hits, err := d.runSearch(ctx, params, sizeForLimit(limit))
	if err != nil {
		return document.FeatureCollection{}, err
	}

	if len(hits) == 0 {
		params.Lenient = true
		hits, err = d.runSearch(ctx, params, sizeForLimit(limit))
		if err != nil {
			return document.FeatureCollection{}, err
		}
	}

	return toFeatureCollection(hits, language), nil
}

func (d *Dispatcher) runSearch(ctx context.Context, params querybuilder.SearchParams, size int) ([]document.Document, error) {
	query := querybuilder.Search(params)
	body := querybuilder.Body{Query: query}
	return d.send(ctx, body, size, params.Lenient)
}

// Reverse sends a reverse-geocode query against the photon index. Reverse
// never retries.
func (d *Dispatcher) Reverse(ctx context.Context, params querybuilder.ReverseParams, limit int64, language string) (document.FeatureCollection, error) {
	body := querybuilder.Reverse(params)
	size := int(limit)
	hits, err := d.send(ctx, body, size, false)
	if err != nil {
		return document.FeatureCollection{}, err
	}
	return toFeatureCollection(hits, language), nil
}

func (d *Dispatcher) send(ctx context.Context, body querybuilder.Body, size int, lenient bool) ([]document.Document, error) {
	client, err := d.pool.Acquire(ctx)
	if err != nil {
		return nil, errs.Internal("acquiring backend client: %s", err)
	}
	defer d.pool.Release(client)

	payload, err := json.Marshal(body.Source())
	if err != nil {
		return nil, errs.Internal("encoding query body: %s", err)
	}

	req := esapi.SearchRequest{
		Index:      []string{clients.PhotonIndex},
		Body:       bytes.NewReader(payload),
		SearchType: "query_then_fetch",
	}
	if lenient {
		t := true
		req.Lenient = &t
	}
	if size > 0 {
		req.Size = &size
	}

	res, err := req.Do(ctx, client)
	if err != nil {
		return nil, errs.Internal("calling backend search: %s", err)
	}
	defer res.Body.Close()

	return decodeHits(res)
}

func decodeHits(res *esapi.Response) ([]document.Document, error) {
	if res.IsError() {
		respBody, _ := io.ReadAll(res.Body)
		return nil, errs.Backend(res.StatusCode, string(respBody))
	}

	var decoded esSearchResponse
	if err := json.NewDecoder(res.Body).Decode(&decoded); err != nil {
		return nil, errs.Internal("decoding backend response: %s", err)
	}

	docs := make([]document.Document, 0, len(decoded.Hits.Hits))
	for _, hit := range decoded.Hits.Hits {
		if hit.Source != nil {
			docs = append(docs, *hit.Source)
		}
	}
	return docs, nil
}

// Lookup fetches a single document by id. An unknown id that the backend
// reports as a clean 404, or a 2xx with no _source, both converge on an
// empty FeatureCollection.
func (d *Dispatcher) Lookup(ctx context.Context, placeID string, language string) (document.FeatureCollection, error) {
	client, err := d.pool.Acquire(ctx)
	if err != nil {
		return document.FeatureCollection{}, errs.Internal("acquiring backend client: %s", err)
	}
	defer d.pool.Release(client)

	req := esapi.GetRequest{
		Index:      clients.PhotonIndex,
		DocumentID: placeID,
	}
	res, err := req.Do(ctx, client)
	if err != nil {
		return document.FeatureCollection{}, errs.Internal("calling backend get: %s", err)
	}
	defer res.Body.Close()

	if res.StatusCode == 404 {
		return document.NewFeatureCollection(nil), nil
	}
	if res.IsError() {
		respBody, _ := io.ReadAll(res.Body)
		return document.FeatureCollection{}, errs.Backend(res.StatusCode, string(respBody))
	}

	var decoded struct {
		Source *document.Document `json:"_source"`
		Found  bool               `json:"found"`
	}
	if err := json.NewDecoder(res.Body).Decode(&decoded); err != nil {
		return document.FeatureCollection{}, errs.Internal("decoding backend response: %s", err)
	}

	if !decoded.Found || decoded.Source == nil {
		return document.NewFeatureCollection(nil), nil
	}

	return toFeatureCollection([]document.Document{*decoded.Source}, language), nil
}

func toFeatureCollection(docs []document.Document, language string) document.FeatureCollection {
	features := make([]document.Feature, 0, len(docs))
	for _, doc := range docs {
		features = append(features, document.ToFeature(doc, language))
	}
	return document.NewFeatureCollection(features)
}
