// Package handlers wires validated, built queries into the gin routes for
// search, reverse, lookup, and health. Every handler follows the same
// shape: bind raw query params, validate, build, dispatch, respond.
package handlers

import (
	"context"

	"github.com/tesseract-hub/photon-gateway/internal/clients"
	"github.com/tesseract-hub/photon-gateway/internal/config"
	"github.com/tesseract-hub/photon-gateway/internal/document"
	"github.com/tesseract-hub/photon-gateway/internal/querybuilder"
)

// Dispatcher is the subset of *dispatcher.Dispatcher the handlers depend on.
// Declaring it here, rather than depending on the concrete type directly,
// lets tests exercise the dispatch/response wiring with a fake.
type Dispatcher interface {
	Search(ctx context.Context, params querybuilder.SearchParams, limit int64, language string) (document.FeatureCollection, error)
	Reverse(ctx context.Context, params querybuilder.ReverseParams, limit int64, language string) (document.FeatureCollection, error)
	Lookup(ctx context.Context, placeID string, language string) (document.FeatureCollection, error)
}

// Handlers holds the process-wide dependencies every route needs.
type Handlers struct {
	dispatcher Dispatcher
	pool       *clients.Pool
	cfg        *config.Config
}

// New builds a Handlers over the given dispatcher, pool, and configuration.
func New(d Dispatcher, pool *clients.Pool, cfg *config.Config) *Handlers {
	return &Handlers{dispatcher: d, pool: pool, cfg: cfg}
}

func (h *Handlers) resolveLanguage(requested string) string {
	if requested == "" {
		return h.cfg.DefaultLanguage
	}
	return requested
}
