// Package main runs the biblioteca lending demo: it seeds a small catalog
// and walks the lending lifecycle end to end, logging every transition.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/samber/do/v2"

	"github.com/bibliotecapp/biblioteca-server/internal/di"
	"github.com/bibliotecapp/biblioteca-server/internal/domain"
	"github.com/bibliotecapp/biblioteca-server/internal/logger"
	"github.com/bibliotecapp/biblioteca-server/internal/notify"
	"github.com/bibliotecapp/biblioteca-server/internal/service"
	"github.com/bibliotecapp/biblioteca-server/internal/store"
)

func main() {
	injector := di.NewContainer()

	log, err := do.Invoke[*logger.Logger](injector)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to bootstrap: %v\n", err)
		os.Exit(1)
	}

	st := do.MustInvoke[*store.Store](injector)
	notifier := do.MustInvoke[*notify.Notifier](injector)
	lending := do.MustInvoke[*service.LendingService](injector)

	seed(st)

	// Bob wants B1, Alice wants the new release.
	notifier.Subscribe("B1", "R2")
	notifier.Subscribe("B2", "R1")

	start := domain.Date(2025, time.October, 1)

	// Happy-path borrow of a regular copy.
	loanID, err := lending.BorrowCopy("C1", "R1", start)
	if err != nil {
		log.Fatal("borrow failed", "error", err)
	}
	log.Info("first loan opened", "loan_id", loanID)

	// The three-loan limit.
	mustBorrow(log, lending, "C2", "R1", start)
	mustBorrow(log, lending, "C3", "R1", start)
	if _, err := lending.BorrowCopy("C4", "R1", start); err != nil {
		log.Info("fourth borrow rejected", "reason", err.Error())
	} else {
		log.Error("fourth borrow unexpectedly allowed")
	}

	// A late return: 5 days past due, so the ban runs 10 days.
	if err := lending.ReturnCopy("C1", domain.Date(2025, time.November, 5)); err != nil {
		log.Fatal("return failed", "error", err)
	}
	if until := st.Readers["R1"].ActiveBanUntil; until != nil {
		log.Info("reader banned", "reader_id", "R1", "until", until.Format("2006-01-02"))
	}

	// The new release has a single original.
	if _, err := lending.BorrowOriginalNewRelease("B2", "R2", start); err != nil {
		log.Fatal("original borrow failed", "error", err)
	}
	if _, err := lending.BorrowOriginalNewRelease("B2", "R1", start); err != nil {
		log.Info("second original borrow rejected", "reason", err.Error())
	}
	if err := lending.ReturnOriginalNewRelease("B2", "R2", domain.Date(2025, time.October, 10)); err != nil {
		log.Fatal("original return failed", "error", err)
	}

	// Returning C2 makes B1 available again and emails Bob.
	if err := lending.ReturnCopy("C2", domain.Date(2025, time.October, 5)); err != nil {
		log.Fatal("return failed", "error", err)
	}

	log.Info("demo complete")
}

// seed loads the demo dataset: B1 with four copies, the B2 new release,
// and readers Alice and Bob.
func seed(st *store.Store) {
	st.PutBook(&domain.Book{
		ID: "B1", Title: "Software Engineering", Year: 2020,
		Author:  domain.Author{FullName: "Ian Sommerville", BirthDate: "1951-08-23"},
		Edition: "10th",
	})
	st.PutBook(&domain.Book{
		ID: "B2", Title: "Clean C++ (New Release)", Year: 2025,
		Author:       domain.Author{FullName: "Some Author", BirthDate: "1980-01-01"},
		Edition:      "1st",
		IsNewRelease: true,
	})
	for _, copyID := range []string{"C1", "C2", "C3", "C4"} {
		st.PutCopy(&domain.Copy{ID: copyID, BookID: "B1"})
	}
	st.PutReader(&domain.Reader{ID: "R1", Email: "alice@example.com"})
	st.PutReader(&domain.Reader{ID: "R2", Email: "bob@example.com"})
}

func mustBorrow(log *logger.Logger, lending *service.LendingService, copyID, readerID string, asOf time.Time) {
	if _, err := lending.BorrowCopy(copyID, readerID, asOf); err != nil {
		log.Fatal("borrow failed", "copy_id", copyID, "error", err)
	}
}
