package service

import (
	"context"

	"github.com/arkv-lms/library-service/internal/model"
	"github.com/arkv-lms/library-service/internal/repository"
	"github.com/arkv-lms/library-service/pkg/kafka"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type ReservationService struct {
	log      *zap.Logger
	repo     repository.Repository
	notifier Notifier
}

func NewReservationService(repo repository.Repository, notifier Notifier, log *zap.Logger) *ReservationService {
	return &ReservationService{
		log:      log.Named("reservation"),
		repo:     repo,
		notifier: notifier,
	}
}

// BorrowBook files an approval-gated borrow request: the reservation starts
// pending and the book stays available until an admin decides.
func (s *ReservationService) BorrowBook(ctx context.Context, req model.BorrowBookRequest) (model.Reservation, error) {
	rsv, err := s.repo.CreateBookReservation(ctx, req.UserID, req.BookID, req.Details)
	if err != nil {
		return model.Reservation{}, err
	}
	s.notifier.Notify(kafka.TableReservations, kafka.OpInsert, rsv.ID)
	return rsv, nil
}

// ReserveTable books the table immediately; the reservation is born active.
func (s *ReservationService) ReserveTable(ctx context.Context, req model.ReserveTableRequest) (model.Reservation, error) {
	rsv, err := s.repo.CreateTableReservation(ctx, req.UserID, req.TableID)
	if err != nil {
		return model.Reservation{}, err
	}
	s.notifier.Notify(kafka.TableReservations, kafka.OpInsert, rsv.ID)
	s.notifier.Notify(kafka.TableLibraryTables, kafka.OpUpdate, rsv.ItemID)
	return rsv, nil
}

func (s *ReservationService) ListOwn(ctx context.Context, userID string, status model.Status) ([]model.Reservation, error) {
	return s.repo.ListReservationsByUser(ctx, userID, status)
}

// ListAll is the admin view: reservations with their student details
// attached. Details are fetched concurrently, one lookup per reservation.
func (s *ReservationService) ListAll(ctx context.Context, filter model.ReservationFilter) ([]model.ReservationDetails, error) {
	reservations, err := s.repo.ListReservations(ctx, filter)
	if err != nil {
		return nil, err
	}

	items := make([]model.ReservationDetails, len(reservations))
	gg, ctx := errgroup.WithContext(ctx)
	for i := range reservations {
		i := i
		items[i].Reservation = reservations[i]
		gg.Go(func() error {
			details, err := s.repo.GetStudentDetails(ctx, reservations[i].ID)
			if err != nil {
				return err
			}
			items[i].StudentDetails = details
			return nil
		})
	}
	if err := gg.Wait(); err != nil {
		return nil, err
	}
	return items, nil
}

func (s *ReservationService) Approve(ctx context.Context, reservationID string) (model.Reservation, error) {
	rsv, err := s.repo.ApproveReservation(ctx, reservationID)
	if err != nil {
		return model.Reservation{}, err
	}
	s.notifier.Notify(kafka.TableReservations, kafka.OpUpdate, rsv.ID)
	s.notifier.Notify(itemTable(rsv.Type), kafka.OpUpdate, rsv.ItemID)
	return rsv, nil
}

func (s *ReservationService) Reject(ctx context.Context, reservationID string) (model.Reservation, error) {
	rsv, err := s.repo.RejectReservation(ctx, reservationID)
	if err != nil {
		return model.Reservation{}, err
	}
	s.notifier.Notify(kafka.TableReservations, kafka.OpUpdate, rsv.ID)
	return rsv, nil
}

func (s *ReservationService) Cancel(ctx context.Context, userID, reservationID string) (model.Reservation, error) {
	rsv, err := s.repo.CancelReservation(ctx, userID, reservationID)
	if err != nil {
		return model.Reservation{}, err
	}
	s.notifier.Notify(kafka.TableReservations, kafka.OpUpdate, rsv.ID)
	s.notifier.Notify(itemTable(rsv.Type), kafka.OpUpdate, rsv.ItemID)
	return rsv, nil
}

func itemTable(kind model.Kind) string {
	if kind == model.KindTable {
		return kafka.TableLibraryTables
	}
	return kafka.TableBooks
}
