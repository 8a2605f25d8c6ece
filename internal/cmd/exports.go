package cmd

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/oscalforge/cprtcat/internal/cache"
	"github.com/oscalforge/cprtcat/internal/config"
	"github.com/oscalforge/cprtcat/internal/cprt"
)

// newClient builds a CPRT API client from configuration.
func newClient(cfg *config.Config) *cprt.Client {
	return cprt.NewClient(
		cprt.WithBaseURL(cfg.API.BaseURL),
		cprt.WithTimeout(time.Duration(cfg.API.TimeoutSeconds)*time.Second),
	)
}

// loadExportPayload returns the raw export JSON for a framework version,
// from the local cache when possible. With refresh set, the API is hit and
// the cache updated regardless of what it holds.
func loadExportPayload(ctx context.Context, cfg *config.Config, frameworkVersionID string, refresh bool) ([]byte, error) {
	if cfg.Cache.Disabled {
		verbosef("cache disabled, fetching %s", frameworkVersionID)
		return newClient(cfg).ExportRaw(ctx, frameworkVersionID)
	}

	dir, err := cfg.CacheDir()
	if err != nil {
		return nil, err
	}
	c, err := cache.Open(dir)
	if err != nil {
		return nil, err
	}
	defer c.Close()

	if !refresh {
		payload, err := c.GetExport(frameworkVersionID)
		if err == nil {
			verbosef("using cached export for %s (%d bytes)", frameworkVersionID, len(payload))
			return payload, nil
		}
		if err != sql.ErrNoRows {
			return nil, err
		}
	}

	verbosef("fetching export for %s", frameworkVersionID)
	payload, err := newClient(cfg).ExportRaw(ctx, frameworkVersionID)
	if err != nil {
		return nil, err
	}
	if err := c.SetExport(frameworkVersionID, payload); err != nil {
		return nil, fmt.Errorf("cache export: %w", err)
	}
	return payload, nil
}
