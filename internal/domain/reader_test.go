package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestReader_CanBorrow(t *testing.T) {
	asOf := Date(2025, time.October, 1)
	banned := Date(2025, time.October, 5)
	expired := Date(2025, time.September, 30)

	tests := []struct {
		name     string
		reader   Reader
		expected bool
	}{
		{"no ban, no loans", Reader{}, true},
		{"no ban, two loans", Reader{ActiveLoanIDs: []string{"L1", "L2"}}, true},
		{"at the loan limit", Reader{ActiveLoanIDs: []string{"L1", "L2", "L3"}}, false},
		{"active ban, zero loans", Reader{ActiveBanUntil: &banned}, false},
		{"ban expired yesterday", Reader{ActiveBanUntil: &expired}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.reader.CanBorrow(asOf))
		})
	}
}

func TestReader_BannedIsInclusive(t *testing.T) {
	until := Date(2025, time.October, 5)
	r := Reader{ActiveBanUntil: &until}

	// Still banned on the ban's last day, free the day after.
	assert.True(t, r.Banned(Date(2025, time.October, 5)))
	assert.False(t, r.Banned(Date(2025, time.October, 6)))
}

func TestReader_DropLoan(t *testing.T) {
	r := Reader{ActiveLoanIDs: []string{"L1", "L2", "L3"}}

	r.DropLoan("L2")
	assert.Equal(t, []string{"L1", "L3"}, r.ActiveLoanIDs)

	// Dropping an unknown id is a no-op.
	r.DropLoan("L9")
	assert.Equal(t, []string{"L1", "L3"}, r.ActiveLoanIDs)
}
