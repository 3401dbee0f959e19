package rest

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/freshfold/freshfold/internal/adapters/store/errstore"
	"github.com/freshfold/freshfold/internal/adapters/store/model"
	"github.com/freshfold/freshfold/internal/core/laundry"
)

var (
	msgErrorCloseBody = "failed close body request"
	errUnauthorize    = errors.New("unauthorized")
)

//	@Summary	Register user
//	@Schemes
//	@Description	registration of a user or washer account
//	@Tags			auth
//	@Accept			json
//	@Produce		plain
//	@Param			registration	body	tRegistration	true	"registration"
//	@Success		200				"account registered and authenticated"
//	@failure		400				"bad login, password or role"
//	@failure		409				"login already taken"
//	@failure		500				"internal error"
//	@Router			/api/user/register [post]
func (s *Server) handlerRegister(c *gin.Context) {
	ctx := c.Request.Context()

	unauthorize(c)

	bBody, status := s.readBody(c)
	if status > 0 {
		c.Writer.WriteHeader(status)
		return
	}

	jBody := tRegistration{}
	if err := json.Unmarshal(bBody, &jBody); err != nil {
		s.log.Error("failed parse body", zap.Error(err))
		c.Writer.WriteHeader(http.StatusBadRequest)
		return
	}

	role := model.Role(jBody.Role)
	if jBody.Role == "" {
		role = model.RoleUser
	}

	if err := s.service.Register(ctx, jBody.Login, jBody.Password, role); err != nil {
		if errors.Is(err, errstore.ErrLoginNotUnique) {
			c.Writer.WriteHeader(http.StatusConflict)
			return
		}
		if errors.Is(err, laundry.ErrLoginNotValid) || errors.Is(err, laundry.ErrPasswordNotValid) ||
			errors.Is(err, laundry.ErrRoleNotValid) {
			c.Writer.WriteHeader(http.StatusBadRequest)
			return
		}

		s.log.Error("failed register user", zap.Error(err))
		c.Writer.WriteHeader(http.StatusInternalServerError)
		return
	}

	if err := s.authorization(c, jBody.Login, jBody.Password); err != nil {
		s.log.Error("authorization failed", zap.Error(err))
		c.Writer.WriteHeader(http.StatusInternalServerError)
		return
	}
	c.Writer.WriteHeader(http.StatusOK)
}

//	@Summary	Login
//	@Schemes
//	@Description	authorization
//	@Tags			auth
//	@Accept			json
//	@Produce		plain
//	@Param			auth	body	tAuthorization	true	"auth"
//	@Success		200		"authenticated"
//	@failure		400		"bad request format"
//	@failure		401		"wrong login/password pair"
//	@failure		500		"internal error"
//	@Router			/api/user/login [post]
func (s *Server) handlerLogin(c *gin.Context) {
	unauthorize(c)

	bBody, status := s.readBody(c)
	if status > 0 {
		c.Writer.WriteHeader(status)
		return
	}

	jBody := tAuthorization{}
	if err := json.Unmarshal(bBody, &jBody); err != nil {
		s.log.Error("failed parse body", zap.Error(err))
		c.Writer.WriteHeader(http.StatusBadRequest)
		return
	}

	if err := s.authorization(c, jBody.Login, jBody.Password); err != nil {
		if errors.Is(err, laundry.ErrLoginNotValid) || errors.Is(err, laundry.ErrPasswordNotValid) {
			c.Writer.WriteHeader(http.StatusBadRequest)
			return
		}
		if errors.Is(err, laundry.ErrPasswordNotEqual) || errors.Is(err, errstore.ErrNotFoundData) {
			c.Writer.WriteHeader(http.StatusUnauthorized)
			return
		}
		s.log.Error("authorization failed", zap.Error(err))
		c.Writer.WriteHeader(http.StatusInternalServerError)
		return
	}
	c.Writer.WriteHeader(http.StatusOK)
}

//	@Summary	Price quote
//	@Schemes
//	@Description	price a booking selection without persisting anything
//	@Tags			booking
//	@Accept			json
//	@Produce		json
//	@Param			selection	body		tSelection	true	"selection"
//	@Success		200			{object}	tQuote		"price and itemized breakdown"
//	@failure		400			"bad request format"
//	@Router			/api/user/quote [post]
func (s *Server) handlerQuote(c *gin.Context) {
	bBody, status := s.readBody(c)
	if status > 0 {
		c.Writer.WriteHeader(status)
		return
	}

	jBody := tSelection{}
	if err := json.Unmarshal(bBody, &jBody); err != nil {
		s.log.Error("failed parse body", zap.Error(err))
		c.Writer.WriteHeader(http.StatusBadRequest)
		return
	}

	quote := s.service.QuoteSelection(jBody.Selection())
	c.JSON(http.StatusOK, newQuote(quote))
}

//	@Summary	Create booking
//	@Schemes
//	@Description	persist a booking and return the payment session URL
//	@Tags			booking
//	@Accept			json
//	@Produce		json
//	@Param			booking	body		tCreateBooking	true	"booking"
//	@Success		201		{object}	tBookingCreated	"booking created, payment pending"
//	@failure		400		"bad selection or schedule format"
//	@failure		401		"not authorized"
//	@failure		422		"slot less than 24 hours ahead"
//	@failure		502		"payment provider unavailable, booking kept awaiting payment"
//	@Router			/api/user/bookings [post]
func (s *Server) handlerCreateBooking(c *gin.Context) {
	ctx := c.Request.Context()
	userID, _, err := s.checkAuth(c)
	if err != nil {
		c.Writer.WriteHeader(http.StatusUnauthorized)
		return
	}

	bBody, status := s.readBody(c)
	if status > 0 {
		c.Writer.WriteHeader(status)
		return
	}

	jBody := tCreateBooking{}
	if err := json.Unmarshal(bBody, &jBody); err != nil {
		s.log.Error("failed parse body", zap.Error(err))
		c.Writer.WriteHeader(http.StatusBadRequest)
		return
	}

	booking, payURL, err := s.service.CreateBooking(ctx, userID, jBody.Selection(),
		laundry.Schedule{Date: jBody.Date, TimeSlot: jBody.TimeSlot}, jBody.SpecialInstructions)
	if err != nil {
		if errors.Is(err, laundry.ErrSelectionEmpty) || errors.Is(err, laundry.ErrScheduleNotValid) {
			c.Writer.WriteHeader(http.StatusBadRequest)
			return
		}
		if errors.Is(err, laundry.ErrScheduleTooSoon) {
			c.Writer.WriteHeader(http.StatusUnprocessableEntity)
			return
		}
		if errors.Is(err, laundry.ErrPaymentUnavailable) {
			c.Writer.WriteHeader(http.StatusBadGateway)
			return
		}

		s.log.Error("failed create booking", zap.Error(err))
		c.Writer.WriteHeader(http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusCreated, tBookingCreated{
		ID:         booking.ID,
		TotalPrice: booking.TotalPrice.InexactFloat64(),
		PaymentURL: payURL,
	})
}

//	@Summary	List user bookings
//	@Schemes
//	@Description	bookings of the authenticated user, newest first
//	@Tags			booking
//	@Accept			plain
//	@Produce		json
//	@Success		200	{array}	tBookingByUser	"bookings"
//	@Success		204	"no bookings"
//	@failure		401	"not authorized"
//	@failure		500	"internal error"
//	@Router			/api/user/bookings [get]
func (s *Server) handlerGetUserBookings(c *gin.Context) {
	ctx := c.Request.Context()
	userID, _, err := s.checkAuth(c)
	if err != nil {
		c.Writer.WriteHeader(http.StatusUnauthorized)
		return
	}

	bookings, err := s.service.GetUserBookings(ctx, userID)
	if err != nil {
		if errors.Is(err, errstore.ErrNotFoundData) {
			c.Writer.WriteHeader(http.StatusNoContent)
			return
		}

		s.log.Error("failed get bookings by user", zap.Error(err))
		c.Writer.WriteHeader(http.StatusInternalServerError)
		return
	}

	response := []tBookingByUser{}
	for _, booking := range bookings {
		res := tBookingByUser{
			collectionDate:     booking.CollectionDate,
			ID:                 booking.ID,
			CollectionTimeSlot: booking.CollectionTimeSlot,
			Status:             booking.Status,
			TotalPrice:         booking.TotalPrice.InexactFloat64(),
			ServicesConfig:     json.RawMessage(booking.ServicesConfig),
			CollectionPin:      booking.CollectionPin,
			DeliveryPin:        booking.DeliveryPin,
		}
		res.Prepare()
		response = append(response, res)
	}
	c.JSON(http.StatusOK, response)
}

//	@Summary	Cancel booking
//	@Schemes
//	@Description	cancel a booking under the cancellation policy
//	@Tags			booking
//	@Accept			plain
//	@Produce		json
//	@Param			id	path		integer			true	"booking id"
//	@Success		200	{object}	tCancelResponse	"cancelled; refund flag per policy"
//	@failure		401	"not authorized"
//	@failure		403	"not the booking owner"
//	@failure		404	"booking not found"
//	@failure		409	"booking already completed or cancelled"
//	@Router			/api/user/bookings/{id}/cancel [post]
func (s *Server) handlerCancelBooking(c *gin.Context) {
	ctx := c.Request.Context()
	userID, role, err := s.checkAuth(c)
	if err != nil {
		c.Writer.WriteHeader(http.StatusUnauthorized)
		return
	}

	bookingID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.Writer.WriteHeader(http.StatusBadRequest)
		return
	}

	refund, err := s.service.CancelBooking(ctx, userID, role, uint(bookingID))
	if err != nil {
		if errors.Is(err, laundry.ErrNotBookingOwner) {
			c.Writer.WriteHeader(http.StatusForbidden)
			return
		}
		if errors.Is(err, errstore.ErrNotFoundData) {
			c.Writer.WriteHeader(http.StatusNotFound)
			return
		}
		if errors.Is(err, errstore.ErrStatusConflict) {
			c.Writer.WriteHeader(http.StatusConflict)
			return
		}

		s.log.Error("failed cancel booking", zap.Error(err))
		c.Writer.WriteHeader(http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, tCancelResponse{Refund: refund})
}

//	@Summary	List washer bookings
//	@Schemes
//	@Description	bookings assigned to the authenticated washer
//	@Tags			washer
//	@Accept			plain
//	@Produce		json
//	@Success		200	{array}	tBookingByWasher	"bookings"
//	@Success		204	"no bookings"
//	@failure		401	"not authorized"
//	@failure		500	"internal error"
//	@Router			/api/washer/bookings [get]
func (s *Server) handlerGetWasherBookings(c *gin.Context) {
	ctx := c.Request.Context()
	washerID, _, err := s.checkAuth(c)
	if err != nil {
		c.Writer.WriteHeader(http.StatusUnauthorized)
		return
	}

	bookings, err := s.service.GetWasherBookings(ctx, washerID)
	if err != nil {
		if errors.Is(err, errstore.ErrNotFoundData) {
			c.Writer.WriteHeader(http.StatusNoContent)
			return
		}

		s.log.Error("failed get bookings by washer", zap.Error(err))
		c.Writer.WriteHeader(http.StatusInternalServerError)
		return
	}

	response := []tBookingByWasher{}
	for _, booking := range bookings {
		res := tBookingByWasher{
			collectionDate:      booking.CollectionDate,
			ID:                  booking.ID,
			CollectionTimeSlot:  booking.CollectionTimeSlot,
			Status:              booking.Status,
			TotalPrice:          booking.TotalPrice.InexactFloat64(),
			ServicesConfig:      json.RawMessage(booking.ServicesConfig),
			SpecialInstructions: booking.SpecialInstructions,
			CollectionVerified:  booking.CollectionVerifiedAt != nil,
			DeliveryVerified:    booking.DeliveryVerifiedAt != nil,
		}
		res.Prepare()
		response = append(response, res)
	}
	c.JSON(http.StatusOK, response)
}

//	@Summary	Verify handover PIN
//	@Schemes
//	@Description	redeem a collection or delivery PIN for an assigned booking
//	@Tags			washer
//	@Accept			json
//	@Produce		plain
//	@Param			id		path	integer			true	"booking id"
//	@Param			verify	body	tVerifyHandover	true	"kind and pin"
//	@Success		200		"handover verified"
//	@failure		400		"unknown kind, malformed or wrong pin"
//	@failure		401		"not authorized"
//	@failure		403		"booking assigned to another washer"
//	@failure		404		"booking not found"
//	@failure		409		"pin already verified or collection not verified yet"
//	@failure		500		"internal error"
//	@Router			/api/washer/bookings/{id}/verify [post]
func (s *Server) handlerVerifyHandover(c *gin.Context) {
	ctx := c.Request.Context()
	washerID, _, err := s.checkAuth(c)
	if err != nil {
		c.Writer.WriteHeader(http.StatusUnauthorized)
		return
	}

	bookingID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.Writer.WriteHeader(http.StatusBadRequest)
		return
	}

	bBody, status := s.readBody(c)
	if status > 0 {
		c.Writer.WriteHeader(status)
		return
	}

	jBody := tVerifyHandover{}
	if err := json.Unmarshal(bBody, &jBody); err != nil {
		s.log.Error("failed parse body", zap.Error(err))
		c.Writer.WriteHeader(http.StatusBadRequest)
		return
	}

	err = s.service.VerifyHandover(ctx, washerID, uint(bookingID),
		model.HandoverKind(jBody.Kind), jBody.Pin)
	if err != nil {
		if errors.Is(err, laundry.ErrUnknownHandoverKind) || errors.Is(err, laundry.ErrPinNotValid) ||
			errors.Is(err, errstore.ErrPinMismatch) {
			c.Writer.WriteHeader(http.StatusBadRequest)
			return
		}
		if errors.Is(err, errstore.ErrWrongWasher) {
			c.Writer.WriteHeader(http.StatusForbidden)
			return
		}
		if errors.Is(err, errstore.ErrNotFoundData) {
			c.Writer.WriteHeader(http.StatusNotFound)
			return
		}
		if errors.Is(err, errstore.ErrPinAlreadyVerified) ||
			errors.Is(err, errstore.ErrCollectionNotVerified) ||
			errors.Is(err, errstore.ErrStatusConflict) {
			c.Writer.WriteHeader(http.StatusConflict)
			return
		}

		s.log.Error("failed verify handover", zap.Error(err))
		c.Writer.WriteHeader(http.StatusInternalServerError)
		return
	}

	c.Writer.WriteHeader(http.StatusOK)
}

//	@Summary	Washer balance
//	@Schemes
//	@Description	available, processing and paid-out earnings totals
//	@Tags			washer
//	@Accept			plain
//	@Produce		json
//	@Success		200	{object}	tBalance	"balance"
//	@failure		401	"not authorized"
//	@failure		500	"internal error"
//	@Router			/api/washer/balance [get]
func (s *Server) handlerGetBalance(c *gin.Context) {
	ctx := c.Request.Context()
	washerID, _, err := s.checkAuth(c)
	if err != nil {
		c.Writer.WriteHeader(http.StatusUnauthorized)
		return
	}

	balance, err := s.service.WasherBalance(ctx, washerID)
	if err != nil {
		s.log.Error("failed get washer balance", zap.Error(err))
		c.Writer.WriteHeader(http.StatusInternalServerError)
		return
	}
	c.JSON(http.StatusOK, tBalance{
		Available:     balance.Available.InexactFloat64(),
		Processing:    balance.Processing.InexactFloat64(),
		TotalPaidOut:  balance.TotalPaidOut.InexactFloat64(),
		TotalEarnings: balance.TotalEarnings.InexactFloat64(),
	})
}

//	@Summary	Request payout
//	@Schemes
//	@Description	withdraw available earnings; reserves covering earnings FIFO
//	@Tags			washer
//	@Accept			json
//	@Produce		json
//	@Param			payout	body		tPayoutRequest	true	"amount and notes"
//	@Success		201		{object}	tPayout			"payout request created"
//	@failure		401		"not authorized"
//	@failure		402		"not enough available balance"
//	@failure		403		"payout account verification incomplete"
//	@failure		422		"amount below minimum or fee exceeds amount"
//	@failure		502		"payment provider unavailable"
//	@Router			/api/washer/payouts [post]
func (s *Server) handlerRequestPayout(c *gin.Context) {
	ctx := c.Request.Context()
	washerID, _, err := s.checkAuth(c)
	if err != nil {
		c.Writer.WriteHeader(http.StatusUnauthorized)
		return
	}

	bBody, status := s.readBody(c)
	if status > 0 {
		c.Writer.WriteHeader(status)
		return
	}

	jBody := tPayoutRequest{}
	if err := json.Unmarshal(bBody, &jBody); err != nil {
		s.log.Error("failed parse body", zap.Error(err))
		c.Writer.WriteHeader(http.StatusBadRequest)
		return
	}

	amount, err := decimal.NewFromString(jBody.Amount.String())
	if err != nil {
		c.Writer.WriteHeader(http.StatusBadRequest)
		return
	}

	request, err := s.service.RequestPayout(ctx, washerID, amount, jBody.Notes)
	if err != nil {
		if errors.Is(err, laundry.ErrPayoutsNotEnabled) {
			c.Writer.WriteHeader(http.StatusForbidden)
			return
		}
		if errors.Is(err, laundry.ErrAmountBelowMinimum) || errors.Is(err, laundry.ErrFeeExceedsAmount) {
			c.Writer.WriteHeader(http.StatusUnprocessableEntity)
			return
		}
		if errors.Is(err, errstore.ErrNotEnoughBalance) {
			c.Writer.WriteHeader(http.StatusPaymentRequired)
			return
		}
		if errors.Is(err, laundry.ErrPaymentUnavailable) {
			c.Writer.WriteHeader(http.StatusBadGateway)
			return
		}

		s.log.Error("failed request payout", zap.Error(err))
		c.Writer.WriteHeader(http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusCreated, newPayout(&request))
}

//	@Summary	Payout history
//	@Schemes
//	@Description	payout requests of the authenticated washer
//	@Tags			washer
//	@Accept			plain
//	@Produce		json
//	@Success		200	{array}	tPayout	"payout requests"
//	@Success		204	"no payout requests"
//	@failure		401	"not authorized"
//	@failure		500	"internal error"
//	@Router			/api/washer/payouts [get]
func (s *Server) handlerGetPayouts(c *gin.Context) {
	ctx := c.Request.Context()
	washerID, _, err := s.checkAuth(c)
	if err != nil {
		c.Writer.WriteHeader(http.StatusUnauthorized)
		return
	}

	requests, err := s.service.GetPayoutsByWasher(ctx, washerID)
	if err != nil {
		if errors.Is(err, errstore.ErrNotFoundData) {
			c.Writer.WriteHeader(http.StatusNoContent)
			return
		}

		s.log.Error("failed get payouts by washer", zap.Error(err))
		c.Writer.WriteHeader(http.StatusInternalServerError)
		return
	}

	response := []tPayout{}
	for _, request := range requests {
		response = append(response, newPayout(request))
	}
	c.JSON(http.StatusOK, response)
}

//	@Summary	Pending payouts
//	@Schemes
//	@Description	payout requests awaiting an admin decision
//	@Tags			admin
//	@Accept			plain
//	@Produce		json
//	@Success		200	{array}	tPayout	"pending payout requests"
//	@Success		204	"none pending"
//	@failure		401	"not authorized"
//	@failure		403	"not an admin"
//	@failure		500	"internal error"
//	@Router			/api/admin/payouts [get]
func (s *Server) handlerGetPendingPayouts(c *gin.Context) {
	ctx := c.Request.Context()

	requests, err := s.service.GetPendingPayouts(ctx)
	if err != nil {
		if errors.Is(err, errstore.ErrNotFoundData) {
			c.Writer.WriteHeader(http.StatusNoContent)
			return
		}

		s.log.Error("failed get pending payouts", zap.Error(err))
		c.Writer.WriteHeader(http.StatusInternalServerError)
		return
	}

	response := []tPayout{}
	for _, request := range requests {
		response = append(response, newPayout(request))
	}
	c.JSON(http.StatusOK, response)
}

//	@Summary	Resolve payout
//	@Schemes
//	@Description	approve (provider transfer, earnings to paid) or reject (earnings released)
//	@Tags			admin
//	@Accept			json
//	@Produce		plain
//	@Param			id		path	integer			true	"payout request id"
//	@Param			resolve	body	tResolvePayout	true	"decision"
//	@Success		200		"payout resolved"
//	@failure		401		"not authorized"
//	@failure		403		"not an admin"
//	@failure		404		"payout request not found"
//	@failure		409		"payout request already processed"
//	@failure		502		"provider transfer failed, request marked failed"
//	@Router			/api/admin/payouts/{id} [post]
func (s *Server) handlerResolvePayout(c *gin.Context) {
	ctx := c.Request.Context()

	requestID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.Writer.WriteHeader(http.StatusBadRequest)
		return
	}

	bBody, status := s.readBody(c)
	if status > 0 {
		c.Writer.WriteHeader(status)
		return
	}

	jBody := tResolvePayout{}
	if err := json.Unmarshal(bBody, &jBody); err != nil {
		s.log.Error("failed parse body", zap.Error(err))
		c.Writer.WriteHeader(http.StatusBadRequest)
		return
	}

	if err := s.service.ResolvePayout(ctx, uint(requestID), jBody.Approve); err != nil {
		if errors.Is(err, errstore.ErrNotFoundData) {
			c.Writer.WriteHeader(http.StatusNotFound)
			return
		}
		if errors.Is(err, errstore.ErrPayoutAlreadyProcessed) {
			c.Writer.WriteHeader(http.StatusConflict)
			return
		}
		if errors.Is(err, laundry.ErrPaymentUnavailable) {
			c.Writer.WriteHeader(http.StatusBadGateway)
			return
		}

		s.log.Error("failed resolve payout", zap.Error(err))
		c.Writer.WriteHeader(http.StatusInternalServerError)
		return
	}

	c.Writer.WriteHeader(http.StatusOK)
}

//	@Summary	Payment webhook
//	@Schemes
//	@Description	provider callback confirming a checkout session
//	@Tags			payment
//	@Accept			json
//	@Produce		plain
//	@Param			event	body	tPaymentWebhook	true	"event"
//	@Success		200		"payment confirmed (or replay ignored)"
//	@failure		401		"bad webhook secret"
//	@failure		404		"unknown session reference"
//	@failure		500		"internal error"
//	@Router			/api/payments/webhook [post]
func (s *Server) handlerPaymentWebhook(c *gin.Context) {
	ctx := c.Request.Context()

	if c.GetHeader("X-Webhook-Secret") != s.webhookSecret {
		c.Writer.WriteHeader(http.StatusUnauthorized)
		return
	}

	bBody, status := s.readBody(c)
	if status > 0 {
		c.Writer.WriteHeader(status)
		return
	}

	jBody := tPaymentWebhook{}
	if err := json.Unmarshal(bBody, &jBody); err != nil {
		s.log.Error("failed parse body", zap.Error(err))
		c.Writer.WriteHeader(http.StatusBadRequest)
		return
	}

	if jBody.Type != "checkout.session.completed" {
		c.Writer.WriteHeader(http.StatusOK)
		return
	}

	if err := s.service.ConfirmPayment(ctx, jBody.Reference); err != nil {
		if errors.Is(err, errstore.ErrNotFoundData) {
			c.Writer.WriteHeader(http.StatusNotFound)
			return
		}
		// Replayed webhooks hit the conditional transition and surface as
		// a status conflict; acknowledge them so the provider stops
		// retrying.
		if errors.Is(err, errstore.ErrStatusConflict) {
			c.Writer.WriteHeader(http.StatusOK)
			return
		}

		s.log.Error("failed confirm payment", zap.Error(err))
		c.Writer.WriteHeader(http.StatusInternalServerError)
		return
	}

	c.Writer.WriteHeader(http.StatusOK)
}

func (s *Server) readBody(c *gin.Context) ([]byte, int) {
	bBody, err := io.ReadAll(c.Request.Body)
	if err != nil {
		s.log.Error("failed read body", zap.Error(err))
		return []byte{}, http.StatusInternalServerError
	}
	defer func() {
		if err := c.Request.Body.Close(); err != nil {
			s.log.Error(msgErrorCloseBody, zap.Error(err))
		}
	}()
	return bBody, 0
}
