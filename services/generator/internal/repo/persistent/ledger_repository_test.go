package persistent

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// The amount guard must reject non-positive refunds before any database
// work, so a nil handle is enough to exercise it.
func TestCredit_RejectsNonPositiveAmount(t *testing.T) {
	repo := NewLedgerRepository(nil)

	assert.ErrorIs(t, repo.Credit("user-123", 0, "grant", "gen-1"), ErrInvalidAmount)
	assert.ErrorIs(t, repo.Credit("user-123", -2, "grant", "gen-1"), ErrInvalidAmount)
}
