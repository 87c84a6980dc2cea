// Package domain contains the core entities and lending rules for the
// biblioteca library.
package domain

// Author identifies who wrote a book. Value type, embedded in Book.
type Author struct {
	FullName  string `json:"full_name"`
	BirthDate string `json:"birth_date"`
}

// Book represents a title in the catalog. A Book flagged as a new release
// has a single loanable "original" in addition to any physical copies.
type Book struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	Year         int    `json:"year"`
	Author       Author `json:"author"`
	Edition      string `json:"edition"`
	IsNewRelease bool   `json:"is_new_release"`
}
