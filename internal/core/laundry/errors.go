package laundry

import "errors"

var (
	ErrLoginNotValid       = errors.New("login has wrong format")
	ErrPasswordNotValid    = errors.New("password has wrong format")
	ErrPasswordNotEqual    = errors.New("password does not match")
	ErrRoleNotValid        = errors.New("unknown role")
	ErrSelectionEmpty      = errors.New("selection has no priced services")
	ErrScheduleTooSoon     = errors.New("collection slot must be at least 24 hours ahead")
	ErrScheduleNotValid    = errors.New("schedule has wrong format")
	ErrUnknownHandoverKind = errors.New("unknown handover kind")
	ErrPinNotValid         = errors.New("pin must be 4 digits")
	ErrAmountBelowMinimum  = errors.New("amount is below the payout minimum")
	ErrFeeExceedsAmount    = errors.New("withdrawal fee exceeds the amount")
	ErrPayoutsNotEnabled   = errors.New("payout account verification incomplete")
	ErrPaymentUnavailable  = errors.New("payment provider unavailable")
	ErrNotBookingOwner     = errors.New("booking belongs to another user")
)
