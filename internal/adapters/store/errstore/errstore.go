package errstore

import "errors"

var (
	ErrNotFoundData           = errors.New("data not found")
	ErrLoginNotUnique         = errors.New("login already exists")
	ErrNotEnoughBalance       = errors.New("not enough available balance")
	ErrPinMismatch            = errors.New("pin does not match")
	ErrPinAlreadyVerified     = errors.New("pin already verified")
	ErrCollectionNotVerified  = errors.New("collection is not verified yet")
	ErrWrongWasher            = errors.New("booking is assigned to another washer")
	ErrStatusConflict         = errors.New("booking status conflict")
	ErrPayoutAlreadyProcessed = errors.New("payout request already processed")
)
