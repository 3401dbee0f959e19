package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/freshfold/freshfold/internal/adapters/store/errstore"
	"github.com/freshfold/freshfold/internal/adapters/store/model"
)

const penaltyReviewThreshold = 3

var penaltyReviewWindow = time.Hour * 24 * 30 * 6

type Store struct {
	db  *gorm.DB
	log *zap.Logger
}

type option func(*Store)

func Logger(log *zap.Logger) option {
	return func(s *Store) {
		if log != nil {
			s.log = log
		}
	}
}

func New(ctx context.Context, cfg *Config, options ...option) (*Store, error) {
	var err error
	s := &Store{
		log: zap.NewNop(),
	}
	db, err := gorm.Open(postgres.Open(cfg.DSN), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed connect to database: %w", err)
	}

	s.db = db.WithContext(ctx)

	for _, opt := range options {
		opt(s)
	}

	err = s.db.AutoMigrate(
		&model.User{},
		&model.Booking{},
		&model.Earning{},
		&model.PayoutRequest{},
		&model.Penalty{},
	)

	if err != nil {
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return s, nil
}

func (s *Store) CloseDB() error {
	db, err := s.db.DB()
	if err != nil {
		return fmt.Errorf("failed getting database connection: %w", err)
	}
	if err := db.Close(); err != nil {
		return fmt.Errorf("failed close database connection: %w", err)
	}

	return nil
}

func (s *Store) RegisterUser(ctx context.Context, login, hashPassword string, role model.Role) error {
	user := model.User{
		Login:        login,
		PasswordHash: hashPassword,
		Role:         role,
	}
	result := s.db.WithContext(ctx).Create(&user)
	if err := result.Error; err != nil {
		var sqlError *pgconn.PgError
		if errors.As(err, &sqlError) && sqlError.Code == pgerrcode.UniqueViolation {
			return errstore.ErrLoginNotUnique
		}
		return fmt.Errorf("failed save user: %w", result.Error)
	}

	return nil
}

func (s *Store) GetUserByLogin(ctx context.Context, login string) (model.User, error) {
	tx := s.db.WithContext(ctx)
	user := model.User{}
	result := tx.Where(&model.User{Login: login}).First(&user)
	if err := result.Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return user, errors.Join(errstore.ErrNotFoundData, err)
		}
		return user, fmt.Errorf("error found user: %w", result.Error)
	}

	return user, nil
}

func (s *Store) GetUserByID(ctx context.Context, userID uint) (model.User, error) {
	user := model.User{}
	if err := s.db.WithContext(ctx).First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return user, errstore.ErrNotFoundData
		}
		return user, fmt.Errorf("failed get user: %w", err)
	}

	return user, nil
}

func (s *Store) CreateBooking(ctx context.Context, booking *model.Booking) error {
	if err := s.db.WithContext(ctx).Create(booking).Error; err != nil {
		return fmt.Errorf("failed create booking: %w", err)
	}

	return nil
}

func (s *Store) GetBooking(ctx context.Context, bookingID uint) (model.Booking, error) {
	booking := model.Booking{}
	if err := s.db.WithContext(ctx).First(&booking, bookingID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return booking, errstore.ErrNotFoundData
		}
		return booking, fmt.Errorf("failed get booking: %w", err)
	}

	return booking, nil
}

func (s *Store) GetBookingBySessionRef(ctx context.Context, sessionRef string) (model.Booking, error) {
	booking := model.Booking{}
	result := s.db.WithContext(ctx).Where(&model.Booking{PaymentSessionRef: sessionRef}).First(&booking)
	if err := result.Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return booking, errstore.ErrNotFoundData
		}
		return booking, fmt.Errorf("failed get booking by session: %w", err)
	}

	return booking, nil
}

func (s *Store) GetUserBookings(ctx context.Context, userID uint) ([]*model.Booking, error) {
	bookings := []*model.Booking{}
	if err := s.db.WithContext(ctx).Where(&model.Booking{UserID: userID}).
		Order("created_at DESC").Find(&bookings).Error; err != nil {
		return nil, fmt.Errorf("failed get bookings: %w", err)
	}
	if len(bookings) == 0 {
		return bookings, errstore.ErrNotFoundData
	}

	return bookings, nil
}

func (s *Store) GetWasherBookings(ctx context.Context, washerID uint) ([]*model.Booking, error) {
	bookings := []*model.Booking{}
	if err := s.db.WithContext(ctx).Where("washer_id = ?", washerID).
		Order("collection_date ASC").Find(&bookings).Error; err != nil {
		return nil, fmt.Errorf("failed get washer bookings: %w", err)
	}
	if len(bookings) == 0 {
		return bookings, errstore.ErrNotFoundData
	}

	return bookings, nil
}

func (s *Store) SetPaymentSessionRef(ctx context.Context, bookingID uint, sessionRef string) error {
	result := s.db.WithContext(ctx).Model(&model.Booking{}).
		Where("id = ? AND status = ?", bookingID, model.BookingAwaitingPayment).
		Update("payment_session_ref", sessionRef)
	if result.Error != nil {
		return fmt.Errorf("failed set session ref: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return s.classifyStatusFailure(ctx, bookingID)
	}

	return nil
}

// ConfirmBookingPayment moves a booking into the assignment pipeline. The
// transition is a single conditional update so a replayed webhook cannot
// confirm twice.
func (s *Store) ConfirmBookingPayment(ctx context.Context, bookingID uint) error {
	result := s.db.WithContext(ctx).Model(&model.Booking{}).
		Where("id = ? AND status = ?", bookingID, model.BookingAwaitingPayment).
		Update("status", model.BookingAwaitingAssignment)
	if result.Error != nil {
		return fmt.Errorf("failed confirm payment: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return s.classifyStatusFailure(ctx, bookingID)
	}

	return nil
}

func (s *Store) CancelBooking(ctx context.Context, bookingID uint, penalty *model.Penalty) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&model.Booking{}).
			Where("id = ? AND status NOT IN ?", bookingID,
				[]model.BookingStatus{model.BookingCompleted, model.BookingCancelled}).
			Update("status", model.BookingCancelled)
		if result.Error != nil {
			return fmt.Errorf("failed cancel booking: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			booking := model.Booking{}
			if err := tx.First(&booking, bookingID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return errstore.ErrNotFoundData
				}
				return fmt.Errorf("failed get booking: %w", err)
			}
			return errstore.ErrStatusConflict
		}

		if penalty == nil {
			return nil
		}
		if err := tx.Create(penalty).Error; err != nil {
			return fmt.Errorf("failed create penalty: %w", err)
		}

		var count int64
		since := time.Now().Add(-penaltyReviewWindow)
		if err := tx.Model(&model.Penalty{}).
			Where("washer_id = ? AND created_at >= ?", penalty.WasherID, since).
			Count(&count).Error; err != nil {
			return fmt.Errorf("failed count penalties: %w", err)
		}
		if count >= penaltyReviewThreshold {
			if err := tx.Model(&model.User{}).Where("id = ?", penalty.WasherID).
				Update("flagged_for_review", true).Error; err != nil {
				return fmt.Errorf("failed flag washer: %w", err)
			}
		}

		return nil
	})
	if err != nil {
		return err
	}

	return nil
}

func (s *Store) GetBookingsAwaitingAssignment(ctx context.Context) ([]*model.Booking, error) {
	bookings := []*model.Booking{}
	if err := s.db.WithContext(ctx).
		Where("status = ?", model.BookingAwaitingAssignment).
		Order("created_at ASC").
		Find(&bookings).Error; err != nil {
		return nil, fmt.Errorf("failed get bookings awaiting assignment: %w", err)
	}

	return bookings, nil
}

func (s *Store) FindAvailableWasher(ctx context.Context) (model.User, error) {
	washer := model.User{}
	err := s.db.WithContext(ctx).Model(&model.User{}).
		Select("users.*").
		Joins("LEFT JOIN bookings ON bookings.washer_id = users.id AND bookings.status = ?",
			model.BookingWasherAssigned).
		Where("users.role = ? AND NOT users.flagged_for_review", model.RoleWasher).
		Group("users.id").
		Order("COUNT(bookings.id) ASC").
		Limit(1).
		Take(&washer).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return washer, errstore.ErrNotFoundData
		}
		return washer, fmt.Errorf("failed find washer: %w", err)
	}

	return washer, nil
}

func (s *Store) AssignWasher(ctx context.Context, bookingID, washerID uint, collectionPin, deliveryPin string) error {
	result := s.db.WithContext(ctx).Model(&model.Booking{}).
		Where("id = ? AND status = ? AND washer_id IS NULL", bookingID, model.BookingAwaitingAssignment).
		Updates(map[string]interface{}{
			"washer_id":      washerID,
			"collection_pin": collectionPin,
			"delivery_pin":   deliveryPin,
			"status":         model.BookingWasherAssigned,
		})
	if result.Error != nil {
		return fmt.Errorf("failed assign washer: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return s.classifyStatusFailure(ctx, bookingID)
	}

	return nil
}

// VerifyHandover redeems a one-time PIN. The mutation is a single
// conditional update; when zero rows match, a follow-up read classifies the
// failure for the caller. Delivery success also completes the booking and
// credits the washer's earning inside the same transaction.
func (s *Store) VerifyHandover(ctx context.Context, bookingID, washerID uint, kind model.HandoverKind,
	pin string, washerEarnings decimal.Decimal) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		now := time.Now()
		var result *gorm.DB
		switch kind {
		case model.HandoverCollection:
			result = tx.Model(&model.Booking{}).
				Where("id = ? AND washer_id = ? AND status = ? AND collection_pin = ? AND collection_verified_at IS NULL",
					bookingID, washerID, model.BookingWasherAssigned, pin).
				Update("collection_verified_at", now)
		case model.HandoverDelivery:
			result = tx.Model(&model.Booking{}).
				Where("id = ? AND washer_id = ? AND status = ? AND delivery_pin = ? "+
					"AND delivery_verified_at IS NULL AND collection_verified_at IS NOT NULL",
					bookingID, washerID, model.BookingWasherAssigned, pin).
				Updates(map[string]interface{}{
					"delivery_verified_at": now,
					"status":               model.BookingCompleted,
				})
		default:
			return errstore.ErrNotFoundData
		}
		if result.Error != nil {
			return fmt.Errorf("failed verify %s pin: %w", kind, result.Error)
		}
		if result.RowsAffected == 0 {
			return s.classifyHandoverFailure(tx, bookingID, washerID, kind, pin)
		}

		if kind == model.HandoverDelivery {
			earning := model.Earning{
				WasherID:        washerID,
				BookingID:       bookingID,
				WasherEarnings:  washerEarnings,
				Status:          model.EarningAvailable,
				MadeAvailableAt: now,
			}
			if err := tx.Create(&earning).Error; err != nil {
				return fmt.Errorf("failed create earning: %w", err)
			}
		}

		return nil
	})
	if err != nil {
		return err
	}

	return nil
}

func (s *Store) classifyHandoverFailure(tx *gorm.DB, bookingID, washerID uint,
	kind model.HandoverKind, pin string) error {
	booking := model.Booking{}
	if err := tx.First(&booking, bookingID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errstore.ErrNotFoundData
		}
		return fmt.Errorf("failed get booking: %w", err)
	}
	if booking.WasherID == nil || *booking.WasherID != washerID {
		return errstore.ErrWrongWasher
	}
	switch kind {
	case model.HandoverCollection:
		if booking.CollectionVerifiedAt != nil {
			return errstore.ErrPinAlreadyVerified
		}
		if booking.CollectionPin != pin {
			return errstore.ErrPinMismatch
		}
	case model.HandoverDelivery:
		if booking.DeliveryVerifiedAt != nil {
			return errstore.ErrPinAlreadyVerified
		}
		if booking.CollectionVerifiedAt == nil {
			return errstore.ErrCollectionNotVerified
		}
		if booking.DeliveryPin != pin {
			return errstore.ErrPinMismatch
		}
	}

	return errstore.ErrStatusConflict
}

func (s *Store) GetWasherBalance(ctx context.Context, washerID uint) (model.WasherBalance, error) {
	balance := model.WasherBalance{
		Available:     decimal.Zero,
		Processing:    decimal.Zero,
		TotalPaidOut:  decimal.Zero,
		TotalEarnings: decimal.Zero,
	}

	rows := []struct {
		Status model.EarningStatus
		Total  decimal.Decimal
	}{}
	err := s.db.WithContext(ctx).Model(&model.Earning{}).
		Select("status, COALESCE(SUM(washer_earnings), 0) AS total").
		Where("washer_id = ?", washerID).
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return balance, fmt.Errorf("failed aggregate earnings: %w", err)
	}

	for _, row := range rows {
		switch row.Status {
		case model.EarningAvailable:
			balance.Available = row.Total
		case model.EarningProcessing:
			balance.Processing = row.Total
		case model.EarningPaid:
			balance.TotalPaidOut = row.Total
		}
		balance.TotalEarnings = balance.TotalEarnings.Add(row.Total)
	}

	return balance, nil
}

// CreatePayoutRequest inserts the request and reserves covering earnings in
// one transaction. Available rows are locked FOR UPDATE and picked oldest
// first, so two concurrent requests cannot reserve the same earning.
func (s *Store) CreatePayoutRequest(ctx context.Context, request *model.PayoutRequest) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		earnings := []*model.Earning{}
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("washer_id = ? AND status = ?", request.WasherID, model.EarningAvailable).
			Order("made_available_at ASC").
			Find(&earnings).Error; err != nil {
			return fmt.Errorf("failed lock earnings: %w", err)
		}

		reserved, covered := model.ReserveFIFO(earnings, request.RequestedAmount)
		if !covered {
			return errstore.ErrNotEnoughBalance
		}

		if err := tx.Create(request).Error; err != nil {
			return fmt.Errorf("failed create payout request: %w", err)
		}

		ids := make([]uint, 0, len(reserved))
		for _, e := range reserved {
			ids = append(ids, e.ID)
		}
		result := tx.Model(&model.Earning{}).
			Where("id IN ? AND status = ?", ids, model.EarningAvailable).
			Updates(map[string]interface{}{
				"status":            model.EarningProcessing,
				"payout_request_id": request.ID,
			})
		if result.Error != nil {
			return fmt.Errorf("failed reserve earnings: %w", result.Error)
		}
		if result.RowsAffected != int64(len(ids)) {
			return errstore.ErrStatusConflict
		}

		return nil
	})
	if err != nil {
		return err
	}

	return nil
}

func (s *Store) GetPayoutRequest(ctx context.Context, requestID uint) (model.PayoutRequest, error) {
	request := model.PayoutRequest{}
	if err := s.db.WithContext(ctx).First(&request, requestID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return request, errstore.ErrNotFoundData
		}
		return request, fmt.Errorf("failed get payout request: %w", err)
	}

	return request, nil
}

func (s *Store) GetPayoutRequestsByWasher(ctx context.Context, washerID uint) ([]*model.PayoutRequest, error) {
	requests := []*model.PayoutRequest{}
	if err := s.db.WithContext(ctx).Where("washer_id = ?", washerID).
		Order("created_at DESC").Find(&requests).Error; err != nil {
		return nil, fmt.Errorf("failed get payout requests: %w", err)
	}
	if len(requests) == 0 {
		return requests, errstore.ErrNotFoundData
	}

	return requests, nil
}

func (s *Store) GetPendingPayoutRequests(ctx context.Context) ([]*model.PayoutRequest, error) {
	requests := []*model.PayoutRequest{}
	if err := s.db.WithContext(ctx).Where("status = ?", model.PayoutPending).
		Order("created_at ASC").Find(&requests).Error; err != nil {
		return nil, fmt.Errorf("failed get pending payout requests: %w", err)
	}
	if len(requests) == 0 {
		return requests, errstore.ErrNotFoundData
	}

	return requests, nil
}

// ResolvePayoutRequest finalizes a request. Completed moves reserved
// earnings to paid, rejected releases them back to available, failed keeps
// the reservation so the transfer can be retried.
func (s *Store) ResolvePayoutRequest(ctx context.Context, requestID uint,
	status model.PayoutStatus, transferRef string) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		request := model.PayoutRequest{}
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&request, requestID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errstore.ErrNotFoundData
			}
			return fmt.Errorf("failed get payout request: %w", err)
		}
		if request.Status != model.PayoutPending && request.Status != model.PayoutFailed {
			return errstore.ErrPayoutAlreadyProcessed
		}

		now := time.Now()
		updates := map[string]interface{}{
			"status":       status,
			"processed_at": now,
		}
		if transferRef != "" {
			updates["transfer_ref"] = transferRef
		}
		if err := tx.Model(&request).Updates(updates).Error; err != nil {
			return fmt.Errorf("failed update payout request: %w", err)
		}

		switch status {
		case model.PayoutCompleted:
			if err := tx.Model(&model.Earning{}).
				Where("payout_request_id = ? AND status = ?", requestID, model.EarningProcessing).
				Update("status", model.EarningPaid).Error; err != nil {
				return fmt.Errorf("failed mark earnings paid: %w", err)
			}
		case model.PayoutRejected:
			if err := tx.Model(&model.Earning{}).
				Where("payout_request_id = ? AND status = ?", requestID, model.EarningProcessing).
				Updates(map[string]interface{}{
					"status":            model.EarningAvailable,
					"payout_request_id": nil,
				}).Error; err != nil {
				return fmt.Errorf("failed release earnings: %w", err)
			}
		}

		return nil
	})
	if err != nil {
		return err
	}

	return nil
}

func (s *Store) classifyStatusFailure(ctx context.Context, bookingID uint) error {
	booking := model.Booking{}
	if err := s.db.WithContext(ctx).First(&booking, bookingID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errstore.ErrNotFoundData
		}
		return fmt.Errorf("failed get booking: %w", err)
	}

	return errstore.ErrStatusConflict
}
