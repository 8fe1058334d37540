// Package clients wraps the remote search cluster behind a bounded pool,
// so handlers borrow a client, use it, and return it on every exit path.
package clients

import (
	"context"
	"fmt"
	"time"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"
	"github.com/sirupsen/logrus"

	"github.com/tesseract-hub/photon-gateway/internal/config"
)

// PhotonIndex is the fixed backend index this gateway queries.
const PhotonIndex = "photon"

// acquireTimeout bounds how long Acquire waits for a free client before
// failing; pool exhaustion must never deadlock a handler.
const acquireTimeout = 5 * time.Second

// Pool is a bounded pool of *elasticsearch.Client, each built once against
// the configured Elastic Cloud deployment and handed out via a buffered
// channel. This mirrors the shape of the original deadpool-based manager
// (build once, recycle is a no-op) without requiring a generic pooling
// library: a channel of ready-made clients already is a free-list.
type Pool struct {
	clients chan *elasticsearch.Client
	size    int
}

// NewPool builds cfg.PoolSize identical clients against the Elastic Cloud
// deployment named by cfg.ElasticCloudID, authenticating every request
// with cfg.ElasticAPIKey.
func NewPool(cfg *config.Config) (*Pool, error) {
	if cfg.PoolSize <= 0 {
		return nil, fmt.Errorf("pool size must be positive, got %d", cfg.PoolSize)
	}

	p := &Pool{
		clients: make(chan *elasticsearch.Client, cfg.PoolSize),
		size:    cfg.PoolSize,
	}

	for i := 0; i < cfg.PoolSize; i++ {
		client, err := newClient(cfg.ElasticCloudID, cfg.ElasticAPIKey)
		if err != nil {
			return nil, fmt.Errorf("building elasticsearch client %d/%d: %w", i+1, cfg.PoolSize, err)
		}
		p.clients <- client
	}

	logrus.WithField("pool_size", cfg.PoolSize).Info("elasticsearch connection pool ready")
	return p, nil
}

func newClient(cloudID, apiKey string) (*elasticsearch.Client, error) {
	return elasticsearch.NewClient(elasticsearch.Config{
		CloudID: cloudID,
		APIKey:  apiKey,
	})
}

// Acquire borrows a client from the pool, waiting up to acquireTimeout.
// Callers must call Release exactly once on the returned client, on every
// exit path including error and cancellation.
func (p *Pool) Acquire(ctx context.Context) (*elasticsearch.Client, error) {
	select {
	case client := <-p.clients:
		return client, nil
	case <-ctx.Done():
		return nil, fmt.Errorf("acquiring elasticsearch client: %w", ctx.Err())
	case <-time.After(acquireTimeout):
		return nil, fmt.Errorf("acquiring elasticsearch client: pool of %d exhausted after %s", p.size, acquireTimeout)
	}
}

// Release returns a client to the pool. Recycling is a no-op: the
// underlying transport is safe for reuse across requests.
func (p *Pool) Release(client *elasticsearch.Client) {
	p.clients <- client
}

// Health runs a cat health check against the cluster using a borrowed
// client.
func (p *Pool) Health(ctx context.Context) (*esapi.Response, error) {
	client, err := p.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer p.Release(client)

	return client.Cat.Health(client.Cat.Health.WithContext(ctx))
}
