package domain

// CopyStatus is the shelf state of a physical copy.
type CopyStatus string

// Copy statuses. Reserved, Late and Repair are representable but no current
// operation transitions a copy into them.
const (
	StatusInLibrary CopyStatus = "IN_LIBRARY"
	StatusLoaned    CopyStatus = "LOANED"
	StatusReserved  CopyStatus = "RESERVED"
	StatusLate      CopyStatus = "LATE"
	StatusRepair    CopyStatus = "REPAIR"
)

// Copy is a physical instance of a book.
type Copy struct {
	ID     string     `json:"id"`
	BookID string     `json:"book_id"`
	Status CopyStatus `json:"status"`
}

// OnLoan reports whether the copy is out with a reader. A copy marked LATE
// is still on loan; it just postdates its due date.
func (c *Copy) OnLoan() bool {
	return c.Status == StatusLoaned || c.Status == StatusLate
}
