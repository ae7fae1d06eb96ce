package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrInvalidAmount indicates a non-positive (or zero, where a signed non-zero value is
// allowed) amount on an operation with an amount precondition.
var ErrInvalidAmount = errors.New("invalid amount")

// ErrInsufficientFunds indicates a withdrawal larger than the drawer's unassigned balance.
var ErrInsufficientFunds = errors.New("insufficient funds in drawer")

// ErrDuplicateOpenClosure indicates an attempt to open a second closure for a date
// that already has a non-closed closure.
var ErrDuplicateOpenClosure = errors.New("an open closure already exists for this date")

// ErrAlreadyClosed indicates an attempt to close a closure that is already closed.
var ErrAlreadyClosed = errors.New("closure is already closed")

// ErrAggregatorUnavailable indicates the order reporting service could not be reached.
// It is swallowed at the revenue aggregation boundary and surfaced as a degraded
// payment summary, never as a failure of a ledger or closure operation.
var ErrAggregatorUnavailable = errors.New("order reporting service unavailable")
