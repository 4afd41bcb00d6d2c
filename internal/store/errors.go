package store

import "errors"

// Sentinel errors returned by repository methods. Callers should match them
// with [errors.Is].
var (
	// ErrNoLastResults is returned when the local cache holds no saved
	// result set yet.
	ErrNoLastResults = errors.New("no last results saved")

	// ErrStoreUnavailable is returned when a retryable database failure
	// persists after all retry attempts.
	ErrStoreUnavailable = errors.New("address store unavailable")
)

// Low-level database operation errors, wrapped by repository methods when a
// SQL-level operation fails before any domain logic can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing an INSERT or UPDATE
	// fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails.
	ErrScanningRows = errors.New("failed to scan address rows")

	// ErrEncodingAddresses is returned when the cached address list cannot be
	// serialised or deserialised.
	ErrEncodingAddresses = errors.New("failed to encode cached addresses")
)
