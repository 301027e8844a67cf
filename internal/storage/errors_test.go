package storage

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Ahmed-Ehab99/rentiful-realestate/internal/apperr"
)

func TestClassify(t *testing.T) {
	plain := errors.New("disk full")

	tests := []struct {
		name string
		err  error
		inTx bool
		want apperr.Code
	}{
		{"not found", fmt.Errorf("lease x: %w", ErrNotFound), false, apperr.CodeNotFound},
		{"conflict", fmt.Errorf("dup: %w", ErrConflict), true, apperr.CodeConflict},
		{"tx failed outside tx", fmt.Errorf("%w: commit", ErrTxFailed), false, apperr.CodeTransactionFailure},
		{"plain inside tx", plain, true, apperr.CodeTransactionFailure},
		{"plain outside tx", plain, false, apperr.CodeInternal},
		{"already categorized", apperr.Forbidden("no"), true, apperr.CodeForbidden},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, apperr.CodeOf(Classify(tt.err, tt.inTx)))
		})
	}

	assert.NoError(t, Classify(nil, true))
}
