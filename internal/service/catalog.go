package service

import (
	"context"
	"strings"
	"time"

	"github.com/arkv-lms/library-service/internal/model"
	"github.com/arkv-lms/library-service/internal/repository"
	"github.com/arkv-lms/library-service/pkg/kafka"
	"go.uber.org/zap"
)

// borrowPeriod is the default loan length applied when an admin marks a book
// borrowed by hand.
const borrowPeriod = 14 * 24 * time.Hour

type CatalogService struct {
	log      *zap.Logger
	repo     repository.Repository
	notifier Notifier
}

func NewCatalogService(repo repository.Repository, notifier Notifier, log *zap.Logger) *CatalogService {
	return &CatalogService{
		log:      log.Named("catalog"),
		repo:     repo,
		notifier: notifier,
	}
}

func (s *CatalogService) ListBooks(ctx context.Context, filter model.BookFilter) ([]model.Book, error) {
	books, err := s.repo.ListBooks(ctx)
	if err != nil {
		return nil, err
	}
	return FilterBooks(books, filter), nil
}

// FilterBooks applies the catalog search predicate: case-insensitive
// substring match on title or author, exact match on category, where ""
// or "all" leaves the category unfiltered.
func FilterBooks(books []model.Book, filter model.BookFilter) []model.Book {
	search := strings.ToLower(filter.Search)
	filtered := make([]model.Book, 0, len(books))
	for _, book := range books {
		if search != "" &&
			!strings.Contains(strings.ToLower(book.Title), search) &&
			!strings.Contains(strings.ToLower(book.Author), search) {
			continue
		}
		if filter.Category != "" && filter.Category != "all" && book.Category != filter.Category {
			continue
		}
		filtered = append(filtered, book)
	}
	return filtered
}

func (s *CatalogService) CreateBook(ctx context.Context, req model.CreateBookRequest) (model.Book, error) {
	book, err := s.repo.CreateBook(ctx, req)
	if err != nil {
		return model.Book{}, err
	}
	s.notifier.Notify(kafka.TableBooks, kafka.OpInsert, book.ID)
	return book, nil
}

// SetBookStatus is the direct admin override. Marking a book borrowed by hand
// records no borrower but stamps the expected return; marking it available
// clears both.
func (s *CatalogService) SetBookStatus(ctx context.Context, bookID string, available bool) error {
	var expectedReturn *time.Time
	if !available {
		t := time.Now().Add(borrowPeriod)
		expectedReturn = &t
	}
	if err := s.repo.UpdateBookStatus(ctx, bookID, available, nil, expectedReturn); err != nil {
		return err
	}
	s.notifier.Notify(kafka.TableBooks, kafka.OpUpdate, bookID)
	return nil
}

func (s *CatalogService) ListTables(ctx context.Context) ([]model.Table, error) {
	return s.repo.ListTables(ctx)
}

func (s *CatalogService) CreateTable(ctx context.Context, req model.CreateTableRequest) (model.Table, error) {
	table, err := s.repo.CreateTable(ctx, req)
	if err != nil {
		return model.Table{}, err
	}
	s.notifier.Notify(kafka.TableLibraryTables, kafka.OpInsert, table.ID)
	return table, nil
}

func (s *CatalogService) SetTableStatus(ctx context.Context, tableID string, booked bool) error {
	if err := s.repo.UpdateTableStatus(ctx, tableID, booked, nil); err != nil {
		return err
	}
	s.notifier.Notify(kafka.TableLibraryTables, kafka.OpUpdate, tableID)
	return nil
}
