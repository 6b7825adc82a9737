package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/arkv-lms/library-service/internal/errs"
	"github.com/arkv-lms/library-service/internal/model"
	"github.com/arkv-lms/library-service/internal/service"
	"github.com/arkv-lms/library-service/pkg/kafka"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	repo_mocks "github.com/arkv-lms/library-service/internal/repository/mocks"
)

func TestReservationService_BorrowBook(t *testing.T) {
	t.Parallel()
	req := model.BorrowBookRequest{
		BookID: "b1",
		UserID: "u1",
		Details: model.StudentDetailsRequest{
			StudentName:        "Asha Rao",
			RegistrationNumber: "R-1042",
			Class:              "10",
			Section:            "B",
			Year:               "2026",
		},
	}

	t.Run("ok. reservation starts pending", func(t *testing.T) {
		t.Parallel()
		c := gomock.NewController(t)
		defer c.Finish()
		repo := repo_mocks.NewMockRepository(c)
		notifier := &fakeNotifier{}
		svc := service.NewReservationService(repo, notifier, zap.NewExample())

		repo.EXPECT().
			CreateBookReservation(context.Background(), "u1", "b1", req.Details).
			Return(model.Reservation{ID: "r1", UserID: "u1", Type: model.KindBook, ItemID: "b1", Status: model.StatusPending}, nil)

		rsv, err := svc.BorrowBook(context.Background(), req)
		require.NoError(t, err)
		require.Equal(t, model.StatusPending, rsv.Status)
		require.Equal(t, []notifyCall{{kafka.TableReservations, kafka.OpInsert, "r1"}}, notifier.calls)
	})

	t.Run("err. unavailable book surfaces, nothing published", func(t *testing.T) {
		t.Parallel()
		c := gomock.NewController(t)
		defer c.Finish()
		repo := repo_mocks.NewMockRepository(c)
		notifier := &fakeNotifier{}
		svc := service.NewReservationService(repo, notifier, zap.NewExample())

		repo.EXPECT().
			CreateBookReservation(context.Background(), "u1", "b1", req.Details).
			Return(model.Reservation{}, errs.ErrItemUnavailable)

		_, err := svc.BorrowBook(context.Background(), req)
		require.ErrorIs(t, err, errs.ErrItemUnavailable)
		require.Empty(t, notifier.calls)
	})
}

func TestReservationService_ReserveTable(t *testing.T) {
	t.Parallel()
	c := gomock.NewController(t)
	defer c.Finish()
	repo := repo_mocks.NewMockRepository(c)
	notifier := &fakeNotifier{}
	svc := service.NewReservationService(repo, notifier, zap.NewExample())

	repo.EXPECT().
		CreateTableReservation(context.Background(), "u1", "t1").
		Return(model.Reservation{ID: "r1", UserID: "u1", Type: model.KindTable, ItemID: "t1", Status: model.StatusActive}, nil)

	rsv, err := svc.ReserveTable(context.Background(), model.ReserveTableRequest{TableID: "t1", UserID: "u1"})
	require.NoError(t, err)
	require.Equal(t, model.StatusActive, rsv.Status)
	require.Equal(t, []notifyCall{
		{kafka.TableReservations, kafka.OpInsert, "r1"},
		{kafka.TableLibraryTables, kafka.OpUpdate, "t1"},
	}, notifier.calls)
}

func TestReservationService_Approve(t *testing.T) {
	t.Parallel()

	t.Run("ok. book feed is touched alongside the reservation", func(t *testing.T) {
		t.Parallel()
		c := gomock.NewController(t)
		defer c.Finish()
		repo := repo_mocks.NewMockRepository(c)
		notifier := &fakeNotifier{}
		svc := service.NewReservationService(repo, notifier, zap.NewExample())

		repo.EXPECT().
			ApproveReservation(context.Background(), "r1").
			Return(model.Reservation{ID: "r1", Type: model.KindBook, ItemID: "b1", Status: model.StatusApproved}, nil)

		rsv, err := svc.Approve(context.Background(), "r1")
		require.NoError(t, err)
		require.Equal(t, model.StatusApproved, rsv.Status)
		require.Equal(t, []notifyCall{
			{kafka.TableReservations, kafka.OpUpdate, "r1"},
			{kafka.TableBooks, kafka.OpUpdate, "b1"},
		}, notifier.calls)
	})

	t.Run("err. approving twice is not found", func(t *testing.T) {
		t.Parallel()
		c := gomock.NewController(t)
		defer c.Finish()
		repo := repo_mocks.NewMockRepository(c)
		notifier := &fakeNotifier{}
		svc := service.NewReservationService(repo, notifier, zap.NewExample())

		repo.EXPECT().
			ApproveReservation(context.Background(), "r1").
			Return(model.Reservation{}, errs.ErrNotFound)

		_, err := svc.Approve(context.Background(), "r1")
		require.ErrorIs(t, err, errs.ErrNotFound)
		require.Empty(t, notifier.calls)
	})
}

func TestReservationService_Cancel(t *testing.T) {
	t.Parallel()
	c := gomock.NewController(t)
	defer c.Finish()
	repo := repo_mocks.NewMockRepository(c)
	notifier := &fakeNotifier{}
	svc := service.NewReservationService(repo, notifier, zap.NewExample())

	repo.EXPECT().
		CancelReservation(context.Background(), "u1", "r1").
		Return(model.Reservation{ID: "r1", UserID: "u1", Type: model.KindTable, ItemID: "t1", Status: model.StatusCancelled}, nil)

	rsv, err := svc.Cancel(context.Background(), "u1", "r1")
	require.NoError(t, err)
	require.Equal(t, model.StatusCancelled, rsv.Status)
	require.Equal(t, []notifyCall{
		{kafka.TableReservations, kafka.OpUpdate, "r1"},
		{kafka.TableLibraryTables, kafka.OpUpdate, "t1"},
	}, notifier.calls)
}

func TestReservationService_ListAll(t *testing.T) {
	t.Parallel()
	createdAt := time.Date(2026, 1, 15, 10, 0, 0, 0, time.UTC)
	filter := model.ReservationFilter{Status: model.StatusPending}
	reservations := []model.Reservation{
		{ID: "r1", UserID: "u1", Type: model.KindBook, ItemID: "b1", Status: model.StatusPending, CreatedAt: createdAt},
		{ID: "r2", UserID: "u2", Type: model.KindTable, ItemID: "t1", Status: model.StatusPending, CreatedAt: createdAt},
	}
	details := &model.StudentDetails{ReservationID: "r1", StudentName: "Asha Rao", RegistrationNumber: "R-1042"}

	t.Run("ok. details merged per reservation", func(t *testing.T) {
		t.Parallel()
		c := gomock.NewController(t)
		defer c.Finish()
		repo := repo_mocks.NewMockRepository(c)
		svc := service.NewReservationService(repo, service.NewNopNotifier(), zap.NewExample())

		repo.EXPECT().ListReservations(context.Background(), filter).Return(reservations, nil)
		repo.EXPECT().GetStudentDetails(gomock.Any(), "r1").Return(details, nil)
		repo.EXPECT().GetStudentDetails(gomock.Any(), "r2").Return(nil, nil)

		items, err := svc.ListAll(context.Background(), filter)
		require.NoError(t, err)
		require.Len(t, items, 2)
		require.Equal(t, reservations[0], items[0].Reservation)
		require.Equal(t, details, items[0].StudentDetails)
		require.Nil(t, items[1].StudentDetails)
	})

	t.Run("err. details lookup failure fails the listing", func(t *testing.T) {
		t.Parallel()
		c := gomock.NewController(t)
		defer c.Finish()
		repo := repo_mocks.NewMockRepository(c)
		svc := service.NewReservationService(repo, service.NewNopNotifier(), zap.NewExample())

		repo.EXPECT().ListReservations(context.Background(), filter).Return(reservations, nil)
		repo.EXPECT().GetStudentDetails(gomock.Any(), "r1").Return(nil, errs.ErrNotFound).AnyTimes()
		repo.EXPECT().GetStudentDetails(gomock.Any(), "r2").Return(nil, nil).AnyTimes()

		_, err := svc.ListAll(context.Background(), filter)
		require.Error(t, err)
	})
}
