package model

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

type Role string

const (
	RoleUser   Role = "USER"
	RoleWasher Role = "WASHER"
	RoleAdmin  Role = "ADMIN"
)

func (r Role) Valid() bool {
	switch r {
	case RoleUser, RoleWasher, RoleAdmin:
		return true
	}
	return false
}

type User struct {
	CreatedAt        time.Time
	UpdatedAt        time.Time
	Login            string `gorm:"unique"`
	PasswordHash     string
	Role             Role `gorm:"default:USER"`
	PayoutAccountRef string
	FlaggedForReview bool
	ID               uint `gorm:"primarykey"`
}

type BookingStatus string

const (
	BookingAwaitingPayment    BookingStatus = "AWAITING_PAYMENT"
	BookingAwaitingAssignment BookingStatus = "AWAITING_ASSIGNMENT"
	BookingWasherAssigned     BookingStatus = "WASHER_ASSIGNED"
	BookingCompleted          BookingStatus = "COMPLETED"
	BookingCancelled          BookingStatus = "CANCELLED"
)

type HandoverKind string

const (
	HandoverCollection HandoverKind = "collection"
	HandoverDelivery   HandoverKind = "delivery"
)

func (k HandoverKind) Valid() bool {
	return k == HandoverCollection || k == HandoverDelivery
}

type Booking struct {
	CreatedAt            time.Time
	UpdatedAt            time.Time
	CollectionDate       time.Time
	CollectionTimeSlot   string
	ServicesConfig       datatypes.JSON
	TotalPrice           decimal.Decimal `gorm:"type:numeric(10,2)"`
	Status               BookingStatus   `gorm:"default:AWAITING_PAYMENT;index"`
	PaymentSessionRef    string          `gorm:"index"`
	CollectionPin        string          `gorm:"size:4"`
	DeliveryPin          string          `gorm:"size:4"`
	CollectionVerifiedAt *time.Time
	DeliveryVerifiedAt   *time.Time
	SpecialInstructions  string
	User                 User
	ID                   uint  `gorm:"primarykey"`
	UserID               uint  `gorm:"index"`
	WasherID             *uint `gorm:"index"`
}

type EarningStatus string

const (
	EarningAvailable  EarningStatus = "AVAILABLE"
	EarningProcessing EarningStatus = "PROCESSING"
	EarningPaid       EarningStatus = "PAID"
)

type Earning struct {
	CreatedAt       time.Time
	UpdatedAt       time.Time
	MadeAvailableAt time.Time       `gorm:"index"`
	WasherEarnings  decimal.Decimal `gorm:"type:numeric(10,2)"`
	Status          EarningStatus   `gorm:"default:AVAILABLE;index"`
	Washer          User            `gorm:"foreignKey:WasherID"`
	ID              uint            `gorm:"primarykey"`
	WasherID        uint            `gorm:"index"`
	BookingID       uint            `gorm:"unique"`
	PayoutRequestID *uint           `gorm:"index"`
}

type PayoutStatus string

const (
	PayoutPending    PayoutStatus = "PENDING"
	PayoutApproved   PayoutStatus = "APPROVED"
	PayoutProcessing PayoutStatus = "PROCESSING"
	PayoutCompleted  PayoutStatus = "COMPLETED"
	PayoutRejected   PayoutStatus = "REJECTED"
	PayoutFailed     PayoutStatus = "FAILED"
)

type PayoutRequest struct {
	CreatedAt       time.Time
	UpdatedAt       time.Time
	ProcessedAt     *time.Time
	RequestedAmount decimal.Decimal `gorm:"type:numeric(10,2)"`
	WithdrawalFee   decimal.Decimal `gorm:"type:numeric(10,2)"`
	NetAmount       decimal.Decimal `gorm:"type:numeric(10,2)"`
	Status          PayoutStatus    `gorm:"default:PENDING;index"`
	Notes           string
	TransferRef     string
	Washer          User `gorm:"foreignKey:WasherID"`
	ID              uint `gorm:"primarykey"`
	WasherID        uint `gorm:"index"`
}

// Penalty marks a washer-initiated late cancellation. Three inside six
// months put the account under review.
type Penalty struct {
	CreatedAt time.Time
	UpdatedAt time.Time
	Amount    decimal.Decimal `gorm:"type:numeric(10,2)"`
	Washer    User            `gorm:"foreignKey:WasherID"`
	ID        uint            `gorm:"primarykey"`
	WasherID  uint            `gorm:"index"`
	BookingID uint
}

// WasherBalance is an aggregate projection over Earning rows, not a table.
type WasherBalance struct {
	Available     decimal.Decimal
	Processing    decimal.Decimal
	TotalPaidOut  decimal.Decimal
	TotalEarnings decimal.Decimal
}
