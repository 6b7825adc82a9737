package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/arkv-lms/library-service/internal/model"
	"github.com/arkv-lms/library-service/internal/service"
	"github.com/arkv-lms/library-service/pkg/kafka"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	repo_mocks "github.com/arkv-lms/library-service/internal/repository/mocks"
)

type notifyCall struct {
	table, op, itemID string
}

// fakeNotifier records every published change event.
type fakeNotifier struct {
	calls []notifyCall
}

func (f *fakeNotifier) Notify(table, op, itemID string) {
	f.calls = append(f.calls, notifyCall{table: table, op: op, itemID: itemID})
}

func TestFilterBooks(t *testing.T) {
	t.Parallel()
	books := []model.Book{
		{ID: "b1", Title: "Dune", Author: "Frank Herbert", Category: "fiction"},
		{ID: "b2", Title: "1984", Author: "George Orwell", Category: "fiction"},
		{ID: "b3", Title: "Clean Code", Author: "Robert Martin", Category: "technical"},
	}

	var tests = []struct {
		name    string
		filter  model.BookFilter
		wantIDs []string
	}{
		{
			name:    "no filter returns everything",
			filter:  model.BookFilter{},
			wantIDs: []string{"b1", "b2", "b3"},
		},
		{
			name:    "search matches title substring ignoring case",
			filter:  model.BookFilter{Search: "dU"},
			wantIDs: []string{"b1"},
		},
		{
			name:    "search matches author",
			filter:  model.BookFilter{Search: "orwell"},
			wantIDs: []string{"b2"},
		},
		{
			name:    "category all is unfiltered",
			filter:  model.BookFilter{Category: "all"},
			wantIDs: []string{"b1", "b2", "b3"},
		},
		{
			name:    "category is exact",
			filter:  model.BookFilter{Category: "technical"},
			wantIDs: []string{"b3"},
		},
		{
			name:    "search and category combine",
			filter:  model.BookFilter{Search: "19", Category: "fiction"},
			wantIDs: []string{"b2"},
		},
		{
			name:    "no match",
			filter:  model.BookFilter{Search: "dune", Category: "technical"},
			wantIDs: []string{},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := service.FilterBooks(books, tt.filter)
			gotIDs := make([]string, 0, len(got))
			for _, b := range got {
				gotIDs = append(gotIDs, b.ID)
			}
			require.Equal(t, tt.wantIDs, gotIDs)
		})
	}
}

func TestCatalogService_SetBookStatus(t *testing.T) {
	t.Parallel()

	t.Run("marking borrowed stamps the expected return", func(t *testing.T) {
		t.Parallel()
		c := gomock.NewController(t)
		defer c.Finish()
		repo := repo_mocks.NewMockRepository(c)
		notifier := &fakeNotifier{}
		svc := service.NewCatalogService(repo, notifier, zap.NewExample())

		before := time.Now()
		repo.EXPECT().
			UpdateBookStatus(context.Background(), "b1", false, nil, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, _ bool, borrowedBy *string, expectedReturn *time.Time) error {
				require.Nil(t, borrowedBy)
				require.NotNil(t, expectedReturn)
				require.True(t, expectedReturn.After(before.Add(13*24*time.Hour)))
				return nil
			})

		err := svc.SetBookStatus(context.Background(), "b1", false)
		require.NoError(t, err)
		require.Equal(t, []notifyCall{{kafka.TableBooks, kafka.OpUpdate, "b1"}}, notifier.calls)
	})

	t.Run("marking available clears borrower and return date", func(t *testing.T) {
		t.Parallel()
		c := gomock.NewController(t)
		defer c.Finish()
		repo := repo_mocks.NewMockRepository(c)
		notifier := &fakeNotifier{}
		svc := service.NewCatalogService(repo, notifier, zap.NewExample())

		repo.EXPECT().
			UpdateBookStatus(context.Background(), "b1", true, nil, nil).
			Return(nil)

		err := svc.SetBookStatus(context.Background(), "b1", true)
		require.NoError(t, err)
		require.Len(t, notifier.calls, 1)
	})
}

func TestCatalogService_CreateTable(t *testing.T) {
	t.Parallel()
	c := gomock.NewController(t)
	defer c.Finish()
	repo := repo_mocks.NewMockRepository(c)
	notifier := &fakeNotifier{}
	svc := service.NewCatalogService(repo, notifier, zap.NewExample())

	req := model.CreateTableRequest{TableNumber: 3, Seats: 4}
	repo.EXPECT().
		CreateTable(context.Background(), req).
		Return(model.Table{ID: "t1", TableNumber: 3, Seats: 4}, nil)

	table, err := svc.CreateTable(context.Background(), req)
	require.NoError(t, err)
	require.Equal(t, "t1", table.ID)
	require.Equal(t, []notifyCall{{kafka.TableLibraryTables, kafka.OpInsert, "t1"}}, notifier.calls)
}
