// Package store is the in-memory holding area for all lending entities.
//
// The store is deliberately dumb: id-keyed maps with direct field access
// plus a set tracking which new-release originals are out. Invariant
// enforcement is the lending service's job; Mu is the single write scope
// every service operation holds across its check-then-act sequence.
package store

import (
	"sync"

	"github.com/bibliotecapp/biblioteca-server/internal/domain"
)

// Store holds every entity for the lifetime of the process or test.
type Store struct {
	// Mu serializes all mutating access. Held by the services, not by the
	// store itself, so precondition checks and writes form one atomic unit.
	Mu sync.Mutex

	Books   map[string]*domain.Book
	Copies  map[string]*domain.Copy
	Readers map[string]*domain.Reader
	Loans   map[string]*domain.Loan

	// BorrowedOriginals tracks book ids whose sole new-release original is
	// currently on loan, so the scarcity rule never scans the loan table.
	BorrowedOriginals map[string]struct{}
}

// New creates an empty store.
func New() *Store {
	return &Store{
		Books:             make(map[string]*domain.Book),
		Copies:            make(map[string]*domain.Copy),
		Readers:           make(map[string]*domain.Reader),
		Loans:             make(map[string]*domain.Loan),
		BorrowedOriginals: make(map[string]struct{}),
	}
}

// PutBook adds or replaces a book.
func (s *Store) PutBook(b *domain.Book) { s.Books[b.ID] = b }

// PutCopy adds or replaces a copy. Copies default to IN_LIBRARY.
func (s *Store) PutCopy(c *domain.Copy) {
	if c.Status == "" {
		c.Status = domain.StatusInLibrary
	}
	s.Copies[c.ID] = c
}

// PutReader adds or replaces a reader.
func (s *Store) PutReader(r *domain.Reader) { s.Readers[r.ID] = r }

// OpenLoanForCopy finds the open loan referencing a copy. By invariant a
// LOANED copy has exactly one; returns ("", nil) when none exists.
func (s *Store) OpenLoanForCopy(copyID string) (string, *domain.Loan) {
	for id, l := range s.Loans {
		if l.CopyID == copyID && l.Open() {
			return id, l
		}
	}
	return "", nil
}

// OpenOriginalLoan finds the open original loan of a book held by a reader;
// returns ("", nil) when none exists.
func (s *Store) OpenOriginalLoan(bookID, readerID string) (string, *domain.Loan) {
	for id, l := range s.Loans {
		if l.BookID == bookID && l.ReaderID == readerID && l.IsOriginal() && l.Open() {
			return id, l
		}
	}
	return "", nil
}

// ReaderEmail resolves a reader's email for notification dispatch.
// Part of the notify.Directory capability; callers guarantee the id is valid.
func (s *Store) ReaderEmail(readerID string) string {
	if r, ok := s.Readers[readerID]; ok {
		return r.Email
	}
	return ""
}

// BookTitle resolves a book's title for notification dispatch.
// Part of the notify.Directory capability; callers guarantee the id is valid.
func (s *Store) BookTitle(bookID string) string {
	if b, ok := s.Books[bookID]; ok {
		return b.Title
	}
	return ""
}
