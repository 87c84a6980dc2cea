package domain

import "time"

// MaxActiveLoans is the most open loans a reader may hold at once,
// copies and new-release originals counted together.
const MaxActiveLoans = 3

// Reader is a registered library member.
type Reader struct {
	ID             string     `json:"id"`
	Email          string     `json:"email"`
	ActiveBanUntil *time.Time `json:"active_ban_until,omitempty"`
	ActiveLoanIDs  []string   `json:"active_loan_ids"`
}

// Banned reports whether the reader is serving a late-return ban on the
// given date. The ban end date is inclusive.
func (r *Reader) Banned(asOf time.Time) bool {
	return r.ActiveBanUntil != nil && !asOf.After(*r.ActiveBanUntil)
}

// CanBorrow reports whether the reader may open another loan on the given
// date: not banned and below the active-loan limit.
func (r *Reader) CanBorrow(asOf time.Time) bool {
	return !r.Banned(asOf) && len(r.ActiveLoanIDs) < MaxActiveLoans
}

// DropLoan removes a loan id from the reader's active list.
func (r *Reader) DropLoan(loanID string) {
	for i, id := range r.ActiveLoanIDs {
		if id == loanID {
			r.ActiveLoanIDs = append(r.ActiveLoanIDs[:i], r.ActiveLoanIDs[i+1:]...)
			return
		}
	}
}
