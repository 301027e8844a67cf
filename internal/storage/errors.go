package storage

import (
	"errors"

	"github.com/Ahmed-Ehab99/rentiful-realestate/internal/apperr"
)

// Classify maps a store error onto the apperr taxonomy. Errors that are
// already categorized pass through. An uncategorized error from inside a
// transaction aborted the whole unit of work, so it is reported as a
// retryable TransactionFailure; outside a transaction it is Internal.
func Classify(err error, inTx bool) error {
	if err == nil {
		return nil
	}

	var ae *apperr.Error
	if errors.As(err, &ae) {
		return err
	}

	switch {
	case errors.Is(err, ErrNotFound):
		return apperr.Wrap(err, apperr.CodeNotFound, "not found")
	case errors.Is(err, ErrConflict):
		return apperr.Wrap(err, apperr.CodeConflict, "conflicting change")
	case errors.Is(err, ErrTxFailed), inTx:
		return apperr.TransactionFailure(err)
	default:
		return apperr.Internal(err)
	}
}
