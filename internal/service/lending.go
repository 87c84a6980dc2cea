// Package service orchestrates all lending state transitions.
package service

import (
	"log/slog"
	"time"

	"github.com/bibliotecapp/biblioteca-server/internal/domain"
	"github.com/bibliotecapp/biblioteca-server/internal/errors"
	"github.com/bibliotecapp/biblioteca-server/internal/id"
	"github.com/bibliotecapp/biblioteca-server/internal/notify"
	"github.com/bibliotecapp/biblioteca-server/internal/store"
)

// BanFactor scales a late return into ban days: ban = BanFactor × lateDays.
const BanFactor = 2

// LendingService validates eligibility, opens and closes loans, mutates
// copy and reader state, computes late bans, and triggers availability
// notification on return.
//
// Every operation takes an explicit as-of date; the zero time means "today".
// Operations run as single atomic units under the store mutex: all
// precondition checks happen before any state is written, so a fault never
// leaves a partial mutation behind.
type LendingService struct {
	store    *store.Store
	notifier *notify.Notifier
	loanIDs  *id.Sequence
	logger   *slog.Logger
	now      func() time.Time
}

// NewLendingService creates a lending service over the given store and
// notifier.
func NewLendingService(st *store.Store, notifier *notify.Notifier, logger *slog.Logger) *LendingService {
	return &LendingService{
		store:    st,
		notifier: notifier,
		loanIDs:  id.NewSequence("L"),
		logger:   logger,
		now:      time.Now,
	}
}

// asOfOrToday substitutes the current civil date for a zero as-of value.
func (s *LendingService) asOfOrToday(asOf time.Time) time.Time {
	if asOf.IsZero() {
		return domain.Truncate(s.now())
	}
	return asOf
}

// BorrowCopy lends a physical copy to a reader and returns the new loan id.
//
// Faults, checked in order: COPY_NOT_FOUND, READER_NOT_FOUND,
// BORROW_FORBIDDEN, COPY_NOT_AVAILABLE. No notification fires on borrow.
func (s *LendingService) BorrowCopy(copyID, readerID string, asOf time.Time) (string, error) {
	s.store.Mu.Lock()
	defer s.store.Mu.Unlock()
	asOf = s.asOfOrToday(asOf)

	cp, ok := s.store.Copies[copyID]
	if !ok {
		return "", errors.CopyNotFound(copyID)
	}
	reader, ok := s.store.Readers[readerID]
	if !ok {
		return "", errors.ReaderNotFound(readerID)
	}
	if !reader.CanBorrow(asOf) {
		return "", errors.BorrowForbidden(readerID)
	}
	if cp.Status != domain.StatusInLibrary {
		return "", errors.CopyNotAvailable(copyID)
	}

	loan := domain.NewLoan(copyID, cp.BookID, readerID, asOf)
	loanID := s.loanIDs.Next()
	s.store.Loans[loanID] = loan
	cp.Status = domain.StatusLoaned
	reader.ActiveLoanIDs = append(reader.ActiveLoanIDs, loanID)

	s.logger.Info("copy borrowed",
		"loan_id", loanID,
		"copy_id", copyID,
		"reader_id", readerID,
		"due", loan.Due,
	)

	return loanID, nil
}

// BorrowOriginalNewRelease lends the single original of a new-release book.
//
// Faults, checked in order: BOOK_NOT_FOUND, READER_NOT_FOUND,
// NOT_NEW_RELEASE, BORROW_FORBIDDEN, ORIGINAL_ALREADY_BORROWED.
func (s *LendingService) BorrowOriginalNewRelease(bookID, readerID string, asOf time.Time) (string, error) {
	s.store.Mu.Lock()
	defer s.store.Mu.Unlock()
	asOf = s.asOfOrToday(asOf)

	book, ok := s.store.Books[bookID]
	if !ok {
		return "", errors.BookNotFound(bookID)
	}
	reader, ok := s.store.Readers[readerID]
	if !ok {
		return "", errors.ReaderNotFound(readerID)
	}
	if !book.IsNewRelease {
		return "", errors.NotNewRelease(bookID)
	}
	if !reader.CanBorrow(asOf) {
		return "", errors.BorrowForbidden(readerID)
	}
	if _, borrowed := s.store.BorrowedOriginals[bookID]; borrowed {
		return "", errors.OriginalAlreadyBorrowed(bookID)
	}

	loan := domain.NewLoan(domain.OriginalCopyID, bookID, readerID, asOf)
	loanID := s.loanIDs.Next()
	s.store.Loans[loanID] = loan
	s.store.BorrowedOriginals[bookID] = struct{}{}
	reader.ActiveLoanIDs = append(reader.ActiveLoanIDs, loanID)

	s.logger.Info("original borrowed",
		"loan_id", loanID,
		"book_id", bookID,
		"reader_id", readerID,
		"due", loan.Due,
	)

	return loanID, nil
}

// ReturnCopy closes the open loan on a copy, applies any late ban, puts the
// copy back on the shelf and notifies subscribed readers.
//
// Faults, checked in order: COPY_NOT_FOUND, COPY_NOT_LOANED (the copy must
// be LOANED or LATE), LOAN_NOT_FOUND.
func (s *LendingService) ReturnCopy(copyID string, asOf time.Time) error {
	s.store.Mu.Lock()
	defer s.store.Mu.Unlock()
	asOf = s.asOfOrToday(asOf)

	cp, ok := s.store.Copies[copyID]
	if !ok {
		return errors.CopyNotFound(copyID)
	}
	if !cp.OnLoan() {
		return errors.CopyNotLoaned(copyID)
	}
	// Status LOANED implies an open loan exists; a miss here is a
	// data-consistency violation, not a user mistake.
	loanID, loan := s.store.OpenLoanForCopy(copyID)
	if loan == nil {
		return errors.LoanNotFound("no open loan for copy " + copyID)
	}

	reader := s.store.Readers[loan.ReaderID]
	late := s.closeLoan(loanID, loan, reader, asOf)
	cp.Status = domain.StatusInLibrary

	s.logger.Info("copy returned",
		"loan_id", loanID,
		"copy_id", copyID,
		"reader_id", loan.ReaderID,
		"late_days", late,
	)

	s.notifier.NotifyAvailable(loan.BookID, s.store)
	return nil
}

// ReturnOriginalNewRelease closes a reader's open original loan, applies
// any late ban, frees the original and notifies subscribed readers.
//
// Faults, checked in order: BOOK_NOT_FOUND, READER_NOT_FOUND,
// ORIGINAL_NOT_BORROWED, LOAN_NOT_FOUND.
func (s *LendingService) ReturnOriginalNewRelease(bookID, readerID string, asOf time.Time) error {
	s.store.Mu.Lock()
	defer s.store.Mu.Unlock()
	asOf = s.asOfOrToday(asOf)

	if _, ok := s.store.Books[bookID]; !ok {
		return errors.BookNotFound(bookID)
	}
	reader, ok := s.store.Readers[readerID]
	if !ok {
		return errors.ReaderNotFound(readerID)
	}
	if _, borrowed := s.store.BorrowedOriginals[bookID]; !borrowed {
		return errors.OriginalNotBorrowed(bookID)
	}
	loanID, loan := s.store.OpenOriginalLoan(bookID, readerID)
	if loan == nil {
		return errors.LoanNotFound("no open original loan of book " + bookID + " for reader " + readerID)
	}

	late := s.closeLoan(loanID, loan, reader, asOf)
	delete(s.store.BorrowedOriginals, bookID)

	s.logger.Info("original returned",
		"loan_id", loanID,
		"book_id", bookID,
		"reader_id", readerID,
		"late_days", late,
	)

	s.notifier.NotifyAvailable(bookID, s.store)
	return nil
}

// closeLoan stamps the return date, applies the late ban and detaches the
// loan from the reader. Returns the late days for logging.
//
// Ban rule, exact: ban length = BanFactor × lateDays, counted from the
// return date. A new ban overwrites any prior one; it does not extend it.
func (s *LendingService) closeLoan(loanID string, loan *domain.Loan, reader *domain.Reader, when time.Time) int {
	loan.Returned = &when
	late := loan.LateDays()
	if late > 0 {
		ban := domain.AddDays(when, BanFactor*late)
		reader.ActiveBanUntil = &ban
	}
	reader.DropLoan(loanID)
	return late
}
