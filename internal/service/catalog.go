package service

import (
	"log/slog"

	"github.com/bibliotecapp/biblioteca-server/internal/domain"
	"github.com/bibliotecapp/biblioteca-server/internal/errors"
	"github.com/bibliotecapp/biblioteca-server/internal/id"
	"github.com/bibliotecapp/biblioteca-server/internal/store"
	"github.com/bibliotecapp/biblioteca-server/internal/validation"
)

// CatalogService registers books, copies and readers. Seeding entities by
// hand stays possible for tests; the catalog is the validated front door.
type CatalogService struct {
	store     *store.Store
	validator *validation.Validator
	logger    *slog.Logger
}

// NewCatalogService creates a catalog service over the given store.
func NewCatalogService(st *store.Store, validator *validation.Validator, logger *slog.Logger) *CatalogService {
	return &CatalogService{
		store:     st,
		validator: validator,
		logger:    logger,
	}
}

// AddBookRequest carries the input for AddBook.
type AddBookRequest struct {
	Title           string `json:"title" validate:"required"`
	Year            int    `json:"year" validate:"gte=0"`
	AuthorName      string `json:"author_name" validate:"required"`
	AuthorBirthDate string `json:"author_birth_date"`
	Edition         string `json:"edition"`
	IsNewRelease    bool   `json:"is_new_release"`
}

// RegisterReaderRequest carries the input for RegisterReader.
type RegisterReaderRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// AddBook validates the request and adds a new title to the catalog.
func (s *CatalogService) AddBook(req AddBookRequest) (*domain.Book, error) {
	if err := s.validator.Validate(req); err != nil {
		return nil, err
	}

	book := &domain.Book{
		ID:    id.MustGenerate("book"),
		Title: req.Title,
		Year:  req.Year,
		Author: domain.Author{
			FullName:  req.AuthorName,
			BirthDate: req.AuthorBirthDate,
		},
		Edition:      req.Edition,
		IsNewRelease: req.IsNewRelease,
	}

	s.store.Mu.Lock()
	s.store.PutBook(book)
	s.store.Mu.Unlock()

	s.logger.Info("book added", "book_id", book.ID, "title", book.Title)
	return book, nil
}

// AddCopy adds a physical copy of an existing book, shelved as IN_LIBRARY.
func (s *CatalogService) AddCopy(bookID string) (*domain.Copy, error) {
	s.store.Mu.Lock()
	defer s.store.Mu.Unlock()

	if _, ok := s.store.Books[bookID]; !ok {
		return nil, errors.BookNotFound(bookID)
	}

	cp := &domain.Copy{
		ID:     id.MustGenerate("copy"),
		BookID: bookID,
		Status: domain.StatusInLibrary,
	}
	s.store.PutCopy(cp)

	s.logger.Info("copy added", "copy_id", cp.ID, "book_id", bookID)
	return cp, nil
}

// RegisterReader validates the request and registers a new library member.
func (s *CatalogService) RegisterReader(req RegisterReaderRequest) (*domain.Reader, error) {
	if err := s.validator.Validate(req); err != nil {
		return nil, err
	}

	reader := &domain.Reader{
		ID:    id.MustGenerate("reader"),
		Email: req.Email,
	}

	s.store.Mu.Lock()
	s.store.PutReader(reader)
	s.store.Mu.Unlock()

	s.logger.Info("reader registered", "reader_id", reader.ID)
	return reader, nil
}
