package laundry

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/freshfold/freshfold/internal/adapters/store/model"
)

const minScheduleLead = time.Hour * 24

// Cancellation policy: 12 hours before the slot is the refund cut-off; a
// washer cancelling inside the cut-off pays the booking price plus £10.
var (
	cancellationCutOff  = time.Hour * 12
	lateCancelSurcharge = dec("10.00")
)

type Schedule struct {
	Date     string
	TimeSlot string
}

type Quote struct {
	Total     decimal.Decimal
	Breakdown []PriceLine
}

// QuoteSelection prices a selection without touching any state. The charge
// path in CreateBooking calls the same pricing functions, so the preview
// and the authoritative amount cannot drift.
func (l *Laundry) QuoteSelection(sel Selection) Quote {
	return Quote{
		Total:     Total(sel),
		Breakdown: Breakdown(sel),
	}
}

// CreateBooking persists the booking and requests a checkout-session URL
// from the payment provider. The booking is created first; on a provider
// failure it stays in AWAITING_PAYMENT so the user can retry payment, and
// the error is surfaced.
func (l *Laundry) CreateBooking(ctx context.Context, userID uint, sel Selection,
	schedule Schedule, instructions string) (model.Booking, string, error) {
	booking := model.Booking{}

	if _, ok := tierByKey(sel.WeightTier); !ok {
		return booking, "", ErrSelectionEmpty
	}

	start, err := slotStart(schedule.Date, schedule.TimeSlot)
	if err != nil {
		return booking, "", err
	}
	if time.Until(start) < minScheduleLead {
		return booking, "", ErrScheduleTooSoon
	}

	total := Total(sel)
	if total.LessThanOrEqual(decimal.Zero) {
		return booking, "", ErrSelectionEmpty
	}

	cfgJSON, err := json.Marshal(NewServicesConfig(sel))
	if err != nil {
		return booking, "", fmt.Errorf("failed marshal services config: %w", err)
	}

	booking = model.Booking{
		UserID:              userID,
		CollectionDate:      start,
		CollectionTimeSlot:  schedule.TimeSlot,
		ServicesConfig:      cfgJSON,
		TotalPrice:          total,
		Status:              model.BookingAwaitingPayment,
		SpecialInstructions: instructions,
	}
	if err := l.store.CreateBooking(ctx, &booking); err != nil {
		return booking, "", fmt.Errorf("failed create booking: %w", err)
	}

	sessionRef := uuid.NewString()
	payURL, err := l.payment.CreateCheckoutSession(ctx, booking.ID, total, sessionRef)
	if err != nil {
		l.log.Error("checkout session failed, booking left awaiting payment",
			zap.Uint("bookingID", booking.ID),
			zap.Error(err),
		)
		return booking, "", fmt.Errorf("%w: %w", ErrPaymentUnavailable, err)
	}

	if err := l.store.SetPaymentSessionRef(ctx, booking.ID, sessionRef); err != nil {
		return booking, "", fmt.Errorf("failed store session ref: %w", err)
	}

	return booking, payURL, nil
}

// ConfirmPayment handles the provider webhook. The underlying status
// transition is conditional, so a replayed webhook surfaces as a status
// conflict instead of confirming twice.
func (l *Laundry) ConfirmPayment(ctx context.Context, sessionRef string) error {
	booking, err := l.store.GetBookingBySessionRef(ctx, sessionRef)
	if err != nil {
		return fmt.Errorf("failed find booking by session: %w", err)
	}

	if err := l.store.ConfirmBookingPayment(ctx, booking.ID); err != nil {
		return fmt.Errorf("failed confirm booking payment: %w", err)
	}
	l.log.Info("booking paid", zap.Uint("bookingID", booking.ID))

	return nil
}

func (l *Laundry) GetUserBookings(ctx context.Context, userID uint) ([]*model.Booking, error) {
	bookings, err := l.store.GetUserBookings(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed getting bookings by user: %w", err)
	}
	return bookings, nil
}

func (l *Laundry) GetWasherBookings(ctx context.Context, washerID uint) ([]*model.Booking, error) {
	bookings, err := l.store.GetWasherBookings(ctx, washerID)
	if err != nil {
		return nil, fmt.Errorf("failed getting bookings by washer: %w", err)
	}
	return bookings, nil
}

// CancelBooking applies the cancellation policy. The caller must be the
// booking's user, its assigned washer, or an admin. The returned flag says
// whether the user is due a full refund. Washer cancellations always
// refund the user; inside the cut-off they also record a penalty.
func (l *Laundry) CancelBooking(ctx context.Context, callerID uint, role model.Role,
	bookingID uint) (bool, error) {
	booking, err := l.store.GetBooking(ctx, bookingID)
	if err != nil {
		return false, fmt.Errorf("failed get booking: %w", err)
	}

	switch role {
	case model.RoleUser:
		if booking.UserID != callerID {
			return false, ErrNotBookingOwner
		}
	case model.RoleWasher:
		if booking.WasherID == nil || *booking.WasherID != callerID {
			return false, ErrNotBookingOwner
		}
	case model.RoleAdmin:
	default:
		return false, ErrRoleNotValid
	}

	beforeCutOff := time.Until(booking.CollectionDate) > cancellationCutOff

	refund := true
	var penalty *model.Penalty
	switch {
	case role == model.RoleUser && !beforeCutOff:
		refund = false
	case role == model.RoleWasher && !beforeCutOff:
		penalty = &model.Penalty{
			WasherID:  *booking.WasherID,
			BookingID: booking.ID,
			Amount:    booking.TotalPrice.Add(lateCancelSurcharge),
		}
	}

	if err := l.store.CancelBooking(ctx, bookingID, penalty); err != nil {
		return false, fmt.Errorf("failed cancel booking: %w", err)
	}

	if refund {
		// Refund execution is the provider's job once the admin console
		// confirms it; here we only record the outcome.
		l.log.Info("booking cancelled with refund due",
			zap.Uint("bookingID", bookingID),
			zap.String("amount", booking.TotalPrice.StringFixed(2)),
		)
	}

	return refund, nil
}
