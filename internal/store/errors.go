package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrUserNotFound is returned when no user matches the lookup key.
	ErrUserNotFound = errors.New("user not found")

	// ErrUserAlreadyExists is returned when the email or Google subject is
	// already bound to another user.
	ErrUserAlreadyExists = errors.New("user already exists")

	// ErrSessionNotFound is returned when no session matches a token hash.
	ErrSessionNotFound = errors.New("session not found")

	// ErrRateLimitNotFound is returned when a client has no rate-limit row.
	ErrRateLimitNotFound = errors.New("rate limit not found")

	// ErrTestNotFound is returned when no test matches the id.
	ErrTestNotFound = errors.New("test not found")

	// ErrRunNotFound is returned when no test run matches the id.
	ErrRunNotFound = errors.New("test run not found")

	// ErrCollectionNotFound is returned when no collection matches the id or
	// share slug.
	ErrCollectionNotFound = errors.New("collection not found")

	// ErrShareSlugTaken is returned when a generated share slug collides with
	// an existing one.
	ErrShareSlugTaken = errors.New("share slug already taken")

	// ErrAlreadyInCollection is returned when a test is added to a collection
	// twice.
	ErrAlreadyInCollection = errors.New("test already in collection")

	// ErrMembershipNotFound is returned when removing a test that is not in
	// the collection.
	ErrMembershipNotFound = errors.New("test is not in collection")

	// ErrBanNotFound is returned when unbanning an account that is not banned.
	ErrBanNotFound = errors.New("banned account not found")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. invalid argument count or unsupported type).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a query against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrScanningRow is returned when scanning column values from a single
	// result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when multi-row iteration fails, typically
	// mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")

	// ErrEncodingColumn is returned when a JSON column cannot be encoded or
	// decoded.
	ErrEncodingColumn = errors.New("failed to encode json column")
)
