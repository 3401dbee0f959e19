package store

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/freshfold/freshfold/internal/adapters/store/database"
	"github.com/freshfold/freshfold/internal/adapters/store/model"
)

type Config struct {
	Database *database.Config
}

type Store interface {
	RegisterUser(ctx context.Context, login, hashPassword string, role model.Role) error
	GetUserByLogin(ctx context.Context, login string) (model.User, error)
	GetUserByID(ctx context.Context, userID uint) (model.User, error)

	CreateBooking(ctx context.Context, booking *model.Booking) error
	GetBooking(ctx context.Context, bookingID uint) (model.Booking, error)
	GetBookingBySessionRef(ctx context.Context, sessionRef string) (model.Booking, error)
	GetUserBookings(ctx context.Context, userID uint) ([]*model.Booking, error)
	GetWasherBookings(ctx context.Context, washerID uint) ([]*model.Booking, error)
	SetPaymentSessionRef(ctx context.Context, bookingID uint, sessionRef string) error
	ConfirmBookingPayment(ctx context.Context, bookingID uint) error
	CancelBooking(ctx context.Context, bookingID uint, penalty *model.Penalty) error

	GetBookingsAwaitingAssignment(ctx context.Context) ([]*model.Booking, error)
	FindAvailableWasher(ctx context.Context) (model.User, error)
	AssignWasher(ctx context.Context, bookingID, washerID uint, collectionPin, deliveryPin string) error
	VerifyHandover(ctx context.Context, bookingID, washerID uint, kind model.HandoverKind,
		pin string, washerEarnings decimal.Decimal) error

	GetWasherBalance(ctx context.Context, washerID uint) (model.WasherBalance, error)
	CreatePayoutRequest(ctx context.Context, request *model.PayoutRequest) error
	GetPayoutRequest(ctx context.Context, requestID uint) (model.PayoutRequest, error)
	GetPayoutRequestsByWasher(ctx context.Context, washerID uint) ([]*model.PayoutRequest, error)
	GetPendingPayoutRequests(ctx context.Context) ([]*model.PayoutRequest, error)
	ResolvePayoutRequest(ctx context.Context, requestID uint, status model.PayoutStatus, transferRef string) error
}

func New(ctx context.Context, cfg *Config, log *zap.Logger) (Store, error) {
	s, err := database.New(ctx, cfg.Database, database.Logger(log))
	if err != nil {
		return nil, fmt.Errorf("failed to create store: %w", err)
	}

	return s, nil
}
