// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/address-search/internal/config"
	"github.com/MKhiriev/address-search/internal/logger"
	"github.com/MKhiriev/address-search/internal/store"
	"github.com/MKhiriev/address-search/models"
)

// flushTimeout bounds the final save performed after shutdown.
const flushTimeout = 2 * time.Second

// LastResultsPersister writes the most recent result set to the local cache
// off the UI goroutine. Only the newest submission matters, so queued
// entries are coalesced and the oldest is dropped when the queue is full.
type LastResultsPersister struct {
	repo   store.LastResultsRepository
	queue  chan models.LastResults
	logger *logger.Logger
}

// NewLastResultsPersister creates a persister with a queue of queueSize
// entries ([config.DefaultQueueSize] when not positive).
func NewLastResultsPersister(repo store.LastResultsRepository, queueSize int, logger *logger.Logger) *LastResultsPersister {
	if queueSize <= 0 {
		queueSize = config.DefaultQueueSize
	}
	return &LastResultsPersister{
		repo:   repo,
		queue:  make(chan models.LastResults, queueSize),
		logger: logger,
	}
}

// Submit enqueues results without blocking. It reports false only if the
// entry could not be queued even after dropping the oldest one.
func (p *LastResultsPersister) Submit(results models.LastResults) bool {
	if results.SavedAt.IsZero() {
		results.SavedAt = time.Now()
	}

	select {
	case p.queue <- results:
		return true
	default:
	}

	// queue is full: drop the oldest entry
	select {
	case <-p.queue:
	default:
	}

	select {
	case p.queue <- results:
		return true
	default:
		return false
	}
}

// Run implements [Worker]. It saves queued results until ctx is cancelled,
// then flushes whatever is still queued.
func (p *LastResultsPersister) Run(ctx context.Context) {
	for {
		if ctx.Err() != nil {
			p.flush()
			return
		}

		select {
		case <-ctx.Done():
			p.flush()
			return
		case results := <-p.queue:
			p.save(ctx, p.latest(results))
		}
	}
}

// latest drains the queue and returns the newest entry.
func (p *LastResultsPersister) latest(results models.LastResults) models.LastResults {
	for {
		select {
		case next := <-p.queue:
			results = next
		default:
			return results
		}
	}
}

func (p *LastResultsPersister) flush() {
	select {
	case results := <-p.queue:
		ctx, cancel := context.WithTimeout(context.Background(), flushTimeout)
		defer cancel()
		p.save(ctx, p.latest(results))
	default:
	}
}

func (p *LastResultsPersister) save(ctx context.Context, results models.LastResults) {
	if err := p.repo.SaveLastResults(ctx, results); err != nil {
		p.logger.Err(err).Str("func", "*LastResultsPersister.save").Str("term", results.Term).Msg("error saving last results")
		return
	}
	p.logger.Debug().Str("term", results.Term).Int("count", len(results.Addresses)).Msg("last results saved")
}
