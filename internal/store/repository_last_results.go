package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/address-search/internal/logger"
	"github.com/MKhiriev/address-search/models"
)

const (
	upsertLastResults = `
INSERT INTO last_results (id, term, addresses, saved_at)
VALUES (1, ?, ?, ?)
ON CONFLICT (id) DO UPDATE SET
    term      = excluded.term,
    addresses = excluded.addresses,
    saved_at  = excluded.saved_at`

	selectLastResults = `SELECT term, addresses, saved_at FROM last_results WHERE id = 1`
)

// lastResultsRepository keeps a single row in the local SQLite cache.
type lastResultsRepository struct {
	db     *DB
	logger *logger.Logger
}

func NewLastResultsRepository(db *DB, logger *logger.Logger) LastResultsRepository {
	return &lastResultsRepository{db: db, logger: logger}
}

// SaveLastResults replaces the cached result set. A zero SavedAt is set to
// the current time.
func (r *lastResultsRepository) SaveLastResults(ctx context.Context, results models.LastResults) error {
	payload, err := json.Marshal(results.Addresses)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrEncodingAddresses, err)
	}

	savedAt := results.SavedAt
	if savedAt.IsZero() {
		savedAt = time.Now()
	}

	if _, err = r.db.ExecContext(ctx, upsertLastResults, results.Term, string(payload), savedAt.UTC()); err != nil {
		r.logger.Err(err).Str("func", "*lastResultsRepository.SaveLastResults").Msg("error saving last results")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// LoadLastResults returns the cached result set or [ErrNoLastResults].
func (r *lastResultsRepository) LoadLastResults(ctx context.Context) (models.LastResults, error) {
	var (
		results models.LastResults
		payload string
	)

	err := r.db.QueryRowContext(ctx, selectLastResults).Scan(&results.Term, &payload, &results.SavedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.LastResults{}, ErrNoLastResults
	}
	if err != nil {
		r.logger.Err(err).Str("func", "*lastResultsRepository.LoadLastResults").Msg("error loading last results")
		return models.LastResults{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	if err = json.Unmarshal([]byte(payload), &results.Addresses); err != nil {
		return models.LastResults{}, fmt.Errorf("%w: %w", ErrEncodingAddresses, err)
	}

	return results, nil
}
