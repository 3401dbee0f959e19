package laundry

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/freshfold/freshfold/internal/adapters/store/model"
)

// washerShareRate is the washer's cut of a completed booking's price; the
// platform keeps the rest.
var washerShareRate = dec("0.80")

// VerifyHandover redeems a single-use handover PIN on behalf of the
// assigned washer. Collection must be verified before delivery; a verified
// delivery completes the booking and credits the washer's earning in the
// same store transaction. The store performs the redemption as one
// conditional update, so concurrent submissions of the same PIN succeed at
// most once.
func (l *Laundry) VerifyHandover(ctx context.Context, washerID, bookingID uint,
	kind model.HandoverKind, pin string) error {
	if !kind.Valid() {
		return ErrUnknownHandoverKind
	}
	if err := validatePin(pin); err != nil {
		return err
	}

	earnings := decimal.Zero
	if kind == model.HandoverDelivery {
		booking, err := l.store.GetBooking(ctx, bookingID)
		if err != nil {
			return fmt.Errorf("failed get booking: %w", err)
		}
		earnings = booking.TotalPrice.Mul(washerShareRate).Round(2)
	}

	if err := l.store.VerifyHandover(ctx, bookingID, washerID, kind, pin, earnings); err != nil {
		return fmt.Errorf("failed verify %s handover: %w", kind, err)
	}

	l.log.Info("handover verified",
		zap.Uint("bookingID", bookingID),
		zap.String("kind", string(kind)),
	)

	return nil
}
