package rest

import (
	"encoding/json"
	"time"

	"github.com/freshfold/freshfold/internal/adapters/store/model"
	"github.com/freshfold/freshfold/internal/core/laundry"
)

type tRegistration struct {
	Login    string `json:"login"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

type tAuthorization struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}

type tSelection struct {
	WeightTier     string         `json:"weightTier"`
	SelectedItems  map[string]int `json:"selectedItems"`
	SelectedAddOns []string       `json:"selectedAddOns"`
	DeliveryMethod string         `json:"deliveryMethod"`
}

func (s *tSelection) Selection() laundry.Selection {
	return laundry.Selection{
		WeightTier:     s.WeightTier,
		Items:          s.SelectedItems,
		AddOns:         s.SelectedAddOns,
		DeliveryMethod: laundry.DeliveryMethod(s.DeliveryMethod),
	}
}

type tPriceLine struct {
	Label     string   `json:"label"`
	Price     *float64 `json:"price"`
	IsSubItem bool     `json:"isSubItem"`
}

type tQuote struct {
	Total     float64      `json:"total"`
	Breakdown []tPriceLine `json:"breakdown"`
}

func newQuote(q laundry.Quote) tQuote {
	res := tQuote{
		Total:     q.Total.InexactFloat64(),
		Breakdown: []tPriceLine{},
	}
	for _, line := range q.Breakdown {
		l := tPriceLine{
			Label:     line.Label,
			IsSubItem: line.SubItem,
		}
		if line.Price != nil {
			price := line.Price.InexactFloat64()
			l.Price = &price
		}
		res.Breakdown = append(res.Breakdown, l)
	}

	return res
}

type tCreateBooking struct {
	tSelection
	Date                string `json:"date"`
	TimeSlot            string `json:"timeSlot"`
	SpecialInstructions string `json:"specialInstructions"`
}

type tBookingCreated struct {
	ID         uint    `json:"id"`
	TotalPrice float64 `json:"total_price"`
	PaymentURL string  `json:"payment_url"`
}

type tBookingByUser struct {
	collectionDate     time.Time
	ID                 uint                `json:"id"`
	CollectionDate     string              `json:"collection_date"`
	CollectionTimeSlot string              `json:"collection_time_slot"`
	Status             model.BookingStatus `json:"status"`
	TotalPrice         float64             `json:"total_price"`
	ServicesConfig     json.RawMessage     `json:"services_config"`
	CollectionPin      string              `json:"collection_pin,omitempty"`
	DeliveryPin        string              `json:"delivery_pin,omitempty"`
}

func (b *tBookingByUser) Prepare() *tBookingByUser {
	b.CollectionDate = b.collectionDate.Format(time.RFC3339)
	return b
}

type tBookingByWasher struct {
	collectionDate      time.Time
	ID                  uint                `json:"id"`
	CollectionDate      string              `json:"collection_date"`
	CollectionTimeSlot  string              `json:"collection_time_slot"`
	Status              model.BookingStatus `json:"status"`
	TotalPrice          float64             `json:"total_price"`
	ServicesConfig      json.RawMessage     `json:"services_config"`
	SpecialInstructions string              `json:"special_instructions,omitempty"`
	CollectionVerified  bool                `json:"collection_verified"`
	DeliveryVerified    bool                `json:"delivery_verified"`
}

func (b *tBookingByWasher) Prepare() *tBookingByWasher {
	b.CollectionDate = b.collectionDate.Format(time.RFC3339)
	return b
}

type tCancelResponse struct {
	Refund bool `json:"refund"`
}

type tVerifyHandover struct {
	Kind string `json:"kind"`
	Pin  string `json:"pin"`
}

type tBalance struct {
	Available     float64 `json:"available_balance"`
	Processing    float64 `json:"processing_balance"`
	TotalPaidOut  float64 `json:"total_paid_out"`
	TotalEarnings float64 `json:"total_earnings"`
}

// Amount is decoded as json.Number so money never takes a float64 hop.
type tPayoutRequest struct {
	Amount json.Number `json:"amount"`
	Notes  string      `json:"notes"`
}

type tPayout struct {
	createdAt       time.Time
	ID              uint               `json:"id"`
	RequestedAmount float64            `json:"requested_amount"`
	WithdrawalFee   float64            `json:"withdrawal_fee"`
	NetAmount       float64            `json:"net_amount"`
	Status          model.PayoutStatus `json:"status"`
	CreatedAt       string             `json:"created_at"`
	ProcessedAt     string             `json:"processed_at,omitempty"`
}

func newPayout(p *model.PayoutRequest) tPayout {
	res := tPayout{
		createdAt:       p.CreatedAt,
		ID:              p.ID,
		RequestedAmount: p.RequestedAmount.InexactFloat64(),
		WithdrawalFee:   p.WithdrawalFee.InexactFloat64(),
		NetAmount:       p.NetAmount.InexactFloat64(),
		Status:          p.Status,
	}
	res.CreatedAt = res.createdAt.Format(time.RFC3339)
	if p.ProcessedAt != nil {
		res.ProcessedAt = p.ProcessedAt.Format(time.RFC3339)
	}

	return res
}

type tResolvePayout struct {
	Approve bool `json:"approve"`
}

type tPaymentWebhook struct {
	Type      string `json:"type"`
	Reference string `json:"reference"`
}
