package domain

import "time"

// LoanTermDays is the fixed length of every loan.
const LoanTermDays = 30

// OriginalCopyID is the sentinel CopyID marking a loan of a new-release
// book's original rather than a physical copy.
const OriginalCopyID = ""

// Loan records one lending of a copy or original to a reader. Once returned
// it is an immutable historical record; loans are never deleted.
type Loan struct {
	CopyID   string     `json:"copy_id"` // OriginalCopyID for original loans
	BookID   string     `json:"book_id"`
	ReaderID string     `json:"reader_id"`
	Start    time.Time  `json:"start"`
	Due      time.Time  `json:"due"`
	Returned *time.Time `json:"returned,omitempty"`
}

// NewLoan opens a loan starting on the given date, due LoanTermDays later.
func NewLoan(copyID, bookID, readerID string, start time.Time) *Loan {
	return &Loan{
		CopyID:   copyID,
		BookID:   bookID,
		ReaderID: readerID,
		Start:    start,
		Due:      AddDays(start, LoanTermDays),
	}
}

// Open reports whether the loan has not been returned yet.
func (l *Loan) Open() bool {
	return l.Returned == nil
}

// IsOriginal reports whether this loan covers a new-release original.
func (l *Loan) IsOriginal() bool {
	return l.CopyID == OriginalCopyID
}

// LateDays returns the whole days by which the return postdates the due
// date: zero while the loan is open or when returned on time.
func (l *Loan) LateDays() int {
	if l.Returned == nil || !l.Returned.After(l.Due) {
		return 0
	}
	return DaysBetween(l.Due, *l.Returned)
}
