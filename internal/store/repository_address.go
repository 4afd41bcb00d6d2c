package store

import (
	"context"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/address-search/internal/logger"
	"github.com/MKhiriev/address-search/models"
)

var addressColumns = []string{
	"tsid",
	"street",
	"post_number",
	"city",
	"county",
	"district",
	"municipality",
	"municipality_number",
	"type",
	"type_code",
}

// addressRepository is the PostgreSQL-backed implementation of
// [AddressRepository] over the "addresses" table.
type addressRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewAddressRepository constructs an [AddressRepository] backed by db.
func NewAddressRepository(db *DB, logger *logger.Logger) AddressRepository {
	logger.Debug().Msg("creating address repository")
	return &addressRepository{
		db:     db,
		logger: logger,
	}
}

// SearchAddresses runs a prefix search on street, city and post number,
// ordered by street and post number. Retryable PostgreSQL failures are
// retried; if they persist the error wraps [ErrStoreUnavailable].
func (r *addressRepository) SearchAddresses(ctx context.Context, term string, limit int) ([]models.Address, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSearchQuery(term, limit)
	if err != nil {
		log.Err(err).Str("func", "*addressRepository.SearchAddresses").Msg("error building query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var addresses []models.Address
	err = withRetry(ctx, r.db.errorClassificator, func(ctx context.Context) error {
		addresses, err = r.queryAddresses(ctx, query, args...)
		return err
	})
	if err != nil {
		log.Err(err).
			Str("func", "*addressRepository.SearchAddresses").
			Str("pg_code", postgresError(err)).
			Msg("error searching addresses")
		return nil, err
	}

	return addresses, nil
}

func (r *addressRepository) queryAddresses(ctx context.Context, query string, args ...any) ([]models.Address, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	addresses := make([]models.Address, 0)
	for rows.Next() {
		var a models.Address
		if err = rows.Scan(
			&a.TSID,
			&a.Street,
			&a.PostNumber,
			&a.City,
			&a.County,
			&a.District,
			&a.Municipality,
			&a.MunicipalityNumber,
			&a.Type,
			&a.TypeCode,
		); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		addresses = append(addresses, a)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return addresses, nil
}

func buildSearchQuery(term string, limit int) (string, []any, error) {
	prefix := escapeLike(strings.TrimSpace(term)) + "%"

	builder := sq.Select(addressColumns...).
		From("addresses").
		Where(sq.Or{
			sq.ILike{"street": prefix},
			sq.ILike{"city": prefix},
			sq.Expr("CAST(post_number AS TEXT) LIKE ?", prefix),
		}).
		OrderBy("street", "post_number").
		PlaceholderFormat(sq.Dollar)

	if limit > 0 {
		builder = builder.Limit(uint64(limit))
	}

	return builder.ToSql()
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike makes LIKE wildcards in user input match literally.
func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
