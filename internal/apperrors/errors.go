package apperrors

import "errors"

// Domain entity errors represent missing or invalid entities in the system.
// These errors indicate that a requested resource does not exist.
var (
	// ErrPositionNotFound indicates that a position with the given ID does not exist.
	ErrPositionNotFound = errors.New("position not found")

	// ErrProviderKeyNotFound indicates that no market-data provider key has been configured.
	ErrProviderKeyNotFound = errors.New("provider key not found")
)

// Business logic errors represent validation failures or constraint violations.
// These errors indicate that an operation cannot be completed due to business rules.
var (
	// ErrInvalidUUID indicates that a provided ID is not a valid UUID format.
	ErrInvalidUUID = errors.New("invalid UUID format")

	// ErrEmptyID indicates that a required ID parameter is empty or missing.
	ErrEmptyID = errors.New("ID cannot be empty")

	// ErrNegativeAmount indicates that an amount field has an invalid negative value.
	ErrNegativeAmount = errors.New("amount cannot be negative")

	// ErrInvalidTicker indicates that a ticker symbol is empty or malformed.
	ErrInvalidTicker = errors.New("invalid ticker symbol")

	// ErrInvalidBenchmark indicates an unrecognized benchmark selection.
	ErrInvalidBenchmark = errors.New("invalid benchmark")

	// ErrEmptyImport indicates that an import file contained no usable rows.
	ErrEmptyImport = errors.New("import contains no positions")

	// ErrEmptyProviderKey indicates an attempt to store a blank provider key.
	ErrEmptyProviderKey = errors.New("provider key cannot be empty")
)

// Operation failure errors represent system-level failures when retrieving
// or processing data from external collaborators.
var (
	// ErrQuoteUnavailable indicates that no current price could be fetched for a symbol.
	ErrQuoteUnavailable = errors.New("quote unavailable")
)
