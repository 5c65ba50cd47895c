package slots

import "errors"

var (
	// ErrBuildQuery is returned when building a SQL query fails
	ErrBuildQuery = errors.New("slots.repository: failed to build query")

	// ErrExecQuery is returned when executing a SQL query fails
	ErrExecQuery = errors.New("slots.repository: failed to execute query")

	// ErrScanRow is returned when scanning a result row fails
	ErrScanRow = errors.New("slots.repository: failed to scan row")
)
