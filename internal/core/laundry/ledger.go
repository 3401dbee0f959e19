package laundry

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/freshfold/freshfold/internal/adapters/store/model"
)

// Payout constants. Changing either breaks parity with the client apps.
var (
	minimumPayout = dec("10.00")
	withdrawalFee = dec("2.50")
)

func (l *Laundry) WasherBalance(ctx context.Context, washerID uint) (model.WasherBalance, error) {
	balance, err := l.store.GetWasherBalance(ctx, washerID)
	if err != nil {
		return balance, fmt.Errorf("failed getting balance by washer: %w", err)
	}

	return balance, nil
}

// RequestPayout validates a withdrawal and reserves covering earnings.
// Validation order: payout account verified, amount at or above the
// minimum, fee leaves a positive net. Balance sufficiency is checked by the
// store under row locks while reserving, so it holds at creation time.
func (l *Laundry) RequestPayout(ctx context.Context, washerID uint,
	amount decimal.Decimal, notes string) (model.PayoutRequest, error) {
	request := model.PayoutRequest{}

	washer, err := l.store.GetUserByID(ctx, washerID)
	if err != nil {
		return request, fmt.Errorf("failed get washer: %w", err)
	}
	if washer.PayoutAccountRef == "" {
		return request, ErrPayoutsNotEnabled
	}
	enabled, err := l.payment.PayoutsEnabled(ctx, washer.PayoutAccountRef)
	if err != nil {
		return request, fmt.Errorf("%w: %w", ErrPaymentUnavailable, err)
	}
	if !enabled {
		return request, ErrPayoutsNotEnabled
	}

	if amount.LessThan(minimumPayout) {
		return request, ErrAmountBelowMinimum
	}

	net := amount.Sub(withdrawalFee)
	if net.LessThanOrEqual(decimal.Zero) {
		return request, ErrFeeExceedsAmount
	}

	request = model.PayoutRequest{
		WasherID:        washerID,
		RequestedAmount: amount,
		WithdrawalFee:   withdrawalFee,
		NetAmount:       net,
		Status:          model.PayoutPending,
		Notes:           notes,
	}
	if err := l.store.CreatePayoutRequest(ctx, &request); err != nil {
		return request, fmt.Errorf("failed create payout request: %w", err)
	}

	l.log.Info("payout requested",
		zap.Uint("washerID", washerID),
		zap.String("amount", amount.StringFixed(2)),
	)

	return request, nil
}

func (l *Laundry) GetPayoutsByWasher(ctx context.Context, washerID uint) ([]*model.PayoutRequest, error) {
	requests, err := l.store.GetPayoutRequestsByWasher(ctx, washerID)
	if err != nil {
		return nil, fmt.Errorf("failed get payouts: %w", err)
	}

	return requests, nil
}

func (l *Laundry) GetPendingPayouts(ctx context.Context) ([]*model.PayoutRequest, error) {
	requests, err := l.store.GetPendingPayoutRequests(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed get pending payouts: %w", err)
	}

	return requests, nil
}

// ResolvePayout finalizes a pending request. Approval triggers the provider
// transfer of the net amount; on transfer failure the request is marked
// failed and the reserved earnings stay processing so the transfer can be
// retried. Rejection releases the reserved earnings.
func (l *Laundry) ResolvePayout(ctx context.Context, requestID uint, approve bool) error {
	request, err := l.store.GetPayoutRequest(ctx, requestID)
	if err != nil {
		return fmt.Errorf("failed get payout request: %w", err)
	}

	if !approve {
		if err := l.store.ResolvePayoutRequest(ctx, requestID, model.PayoutRejected, ""); err != nil {
			return fmt.Errorf("failed reject payout: %w", err)
		}
		return nil
	}

	washer, err := l.store.GetUserByID(ctx, request.WasherID)
	if err != nil {
		return fmt.Errorf("failed get washer: %w", err)
	}

	transferRef, err := l.payment.Transfer(ctx, washer.PayoutAccountRef, request.NetAmount)
	if err != nil {
		if markErr := l.store.ResolvePayoutRequest(ctx, requestID, model.PayoutFailed, ""); markErr != nil {
			l.log.Error("failed mark payout failed", zap.Error(markErr))
		}
		return fmt.Errorf("%w: %w", ErrPaymentUnavailable, err)
	}

	if err := l.store.ResolvePayoutRequest(ctx, requestID, model.PayoutCompleted, transferRef); err != nil {
		return fmt.Errorf("failed complete payout: %w", err)
	}

	l.log.Info("payout completed",
		zap.Uint("requestID", requestID),
		zap.String("transferRef", transferRef),
	)

	return nil
}
