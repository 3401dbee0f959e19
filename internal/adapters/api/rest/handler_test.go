package rest_test

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/freshfold/freshfold/internal/adapters/api/rest"
	"github.com/freshfold/freshfold/internal/adapters/store/errstore"
	"github.com/freshfold/freshfold/internal/adapters/store/model"
	"github.com/freshfold/freshfold/internal/core/laundry"
	"github.com/freshfold/freshfold/internal/mocks/payment"
	"github.com/freshfold/freshfold/internal/mocks/store"
	"github.com/freshfold/freshfold/pkg/jwt"
)

var (
	secret        = "secret_key"
	webhookSecret = "whsec_test"
)

func newTestServer(t *testing.T) (*gin.Engine, *store.MockStore, *payment.MockPaymentProvider) {
	t.Helper()
	ctrl := gomock.NewController(t)

	storeMock := store.NewMockStore(ctrl)
	paymentMock := payment.NewMockPaymentProvider(ctrl)

	service := laundry.New(context.Background(),
		&laundry.Config{MatchingEnabled: false},
		storeMock, paymentMock,
	)
	server, err := rest.New(service, rest.Configure(&rest.Config{
		Address:       "localhost:8080",
		Secret:        secret,
		WebhookSecret: webhookSecret,
	}))
	assert.NoError(t, err)

	return server.Engine(), storeMock, paymentMock
}

func authCookie(t *testing.T, userID uint, role model.Role) *http.Cookie {
	t.Helper()
	signed, err := jwt.New([]byte(secret)).Create(map[string]string{
		"UserID": strconv.Itoa(int(userID)),
		"Role":   string(role),
	})
	assert.NoError(t, err)

	return &http.Cookie{Name: "token", Value: signed, Path: "/"}
}

func TestServer_handlerRegister(t *testing.T) {
	ctx := context.Background()
	tests := []struct {
		name     string
		login    string
		password string
		role     string
		status   int
	}{
		{
			name:     "user registered",
			login:    "user",
			password: "pass",
			status:   http.StatusOK,
		},
		{
			name:     "washer registered",
			login:    "washer",
			password: "pass",
			role:     "WASHER",
			status:   http.StatusOK,
		},
		{
			name:     "empty",
			login:    "",
			password: "",
			status:   http.StatusBadRequest,
		},
		{
			name:     "admin role refused",
			login:    "boss",
			password: "pass",
			role:     "ADMIN",
			status:   http.StatusBadRequest,
		},
		{
			name:     "not unique",
			login:    "user",
			password: "pass",
			status:   http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			engine, storeMock, _ := newTestServer(t)

			role := model.Role(tt.role)
			if tt.role == "" {
				role = model.RoleUser
			}
			if tt.status == http.StatusConflict {
				storeMock.EXPECT().
					RegisterUser(ctx, tt.login, gomock.Any(), role).
					Return(errstore.ErrLoginNotUnique).
					Times(1)
			}
			if tt.status == http.StatusOK {
				storeMock.EXPECT().
					RegisterUser(ctx, tt.login, gomock.Any(), role).
					Return(nil).
					Times(1)
				hashPass, err := laundry.HashPassword(tt.password)
				assert.NoError(t, err)
				storeMock.EXPECT().
					GetUserByLogin(ctx, tt.login).
					Return(model.User{ID: 1, PasswordHash: hashPass, Role: role}, nil).
					Times(1)
			}

			w := httptest.NewRecorder()
			body := strings.NewReader(fmt.Sprintf(`{"login":%q, "password":%q, "role":%q}`,
				tt.login, tt.password, tt.role))
			r := httptest.NewRequest(http.MethodPost, "/api/user/register", body)

			engine.ServeHTTP(w, r)

			result := w.Result()
			assert.Equal(t, tt.status, result.StatusCode)
			assert.NoError(t, result.Body.Close())
		})
	}
}

func TestServer_handlerLogin(t *testing.T) {
	ctx := context.Background()
	tests := []struct {
		name     string
		login    string
		password string
		status   int
	}{
		{
			name:     "correct",
			login:    "user",
			password: "pass",
			status:   http.StatusOK,
		},
		{
			name:     "empty",
			login:    "",
			password: "",
			status:   http.StatusBadRequest,
		},
		{
			name:     "unauthorize",
			login:    "user",
			password: "pass",
			status:   http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			engine, storeMock, _ := newTestServer(t)

			hashPass, err := laundry.HashPassword(tt.password)
			assert.NoError(t, err)
			if tt.status == http.StatusUnauthorized {
				storeMock.EXPECT().
					GetUserByLogin(ctx, tt.login).
					Return(model.User{PasswordHash: "wrong pass"}, nil).
					Times(1)
			}
			if tt.status == http.StatusOK {
				storeMock.EXPECT().
					GetUserByLogin(ctx, tt.login).
					Return(model.User{ID: 1, PasswordHash: hashPass, Role: model.RoleUser}, nil).
					Times(1)
			}

			w := httptest.NewRecorder()
			body := strings.NewReader(fmt.Sprintf(`{"login":%q, "password":%q}`, tt.login, tt.password))
			r := httptest.NewRequest(http.MethodPost, "/api/user/login", body)

			engine.ServeHTTP(w, r)

			result := w.Result()
			assert.Equal(t, tt.status, result.StatusCode)
			assert.NoError(t, result.Body.Close())
		})
	}
}

func TestServer_handlerQuote(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		engine, _, _ := newTestServer(t)

		w := httptest.NewRecorder()
		body := strings.NewReader(`{
			"weightTier": "0-6kg",
			"selectedAddOns": ["ironing"],
			"deliveryMethod": "collection"
		}`)
		r := httptest.NewRequest(http.MethodPost, "/api/user/quote", body)

		engine.ServeHTTP(w, r)

		result := w.Result()
		assert.Equal(t, http.StatusOK, result.StatusCode)

		bBody, err := io.ReadAll(result.Body)
		assert.NoError(t, err)
		assert.NoError(t, result.Body.Close())
		assert.Contains(t, string(bBody), `"total":35.49`)
		assert.Contains(t, string(bBody), `"Collection fee"`)
	})

	t.Run("bad json", func(t *testing.T) {
		engine, _, _ := newTestServer(t)

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPost, "/api/user/quote", strings.NewReader(`{`))

		engine.ServeHTTP(w, r)

		assert.Equal(t, http.StatusBadRequest, w.Result().StatusCode)
	})
}

func TestServer_handlerCreateBooking(t *testing.T) {
	ctx := context.Background()
	date := time.Now().UTC().Add(time.Hour * 72).Format("2006-01-02")

	tests := []struct {
		name   string
		cookie *http.Cookie
		date   string
		status int
	}{
		{
			name:   "created",
			date:   date,
			status: http.StatusCreated,
		},
		{
			name:   "unauthorize",
			date:   date,
			status: http.StatusUnauthorized,
		},
		{
			name:   "washer role refused",
			date:   date,
			status: http.StatusForbidden,
		},
		{
			name:   "slot too soon",
			date:   time.Now().UTC().Format("2006-01-02"),
			status: http.StatusUnprocessableEntity,
		},
		{
			name:   "provider down",
			date:   date,
			status: http.StatusBadGateway,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			engine, storeMock, paymentMock := newTestServer(t)

			switch tt.status {
			case http.StatusCreated:
				storeMock.EXPECT().
					CreateBooking(ctx, gomock.Any()).
					DoAndReturn(func(_ context.Context, b *model.Booking) error {
						b.ID = 7
						return nil
					}).
					Times(1)
				paymentMock.EXPECT().
					CreateCheckoutSession(ctx, uint(7), gomock.Any(), gomock.Any()).
					Return("https://pay.example/cs_1", nil).
					Times(1)
				storeMock.EXPECT().
					SetPaymentSessionRef(ctx, uint(7), gomock.Any()).
					Return(nil).
					Times(1)
			case http.StatusBadGateway:
				storeMock.EXPECT().
					CreateBooking(ctx, gomock.Any()).
					Return(nil).
					Times(1)
				paymentMock.EXPECT().
					CreateCheckoutSession(ctx, gomock.Any(), gomock.Any(), gomock.Any()).
					Return("", fmt.Errorf("connection refused")).
					Times(1)
			}

			w := httptest.NewRecorder()
			body := strings.NewReader(fmt.Sprintf(`{
				"weightTier": "0-6kg",
				"deliveryMethod": "collection",
				"date": %q,
				"timeSlot": "09:00-11:00"
			}`, tt.date))
			r := httptest.NewRequest(http.MethodPost, "/api/user/bookings", body)

			switch tt.status {
			case http.StatusUnauthorized:
			case http.StatusForbidden:
				r.AddCookie(authCookie(t, 1, model.RoleWasher))
			default:
				r.AddCookie(authCookie(t, 1, model.RoleUser))
			}

			engine.ServeHTTP(w, r)

			result := w.Result()
			assert.Equal(t, tt.status, result.StatusCode)

			if tt.status == http.StatusCreated {
				bBody, err := io.ReadAll(result.Body)
				assert.NoError(t, err)
				assert.Contains(t, string(bBody), `"payment_url":"https://pay.example/cs_1"`)
			}
			assert.NoError(t, result.Body.Close())
		})
	}
}

func TestServer_handlerGetUserBookings(t *testing.T) {
	ctx := context.Background()
	tests := []struct {
		name     string
		status   int
		errstore error
	}{
		{
			name:   "ok",
			status: http.StatusOK,
		},
		{
			name:     "no content",
			status:   http.StatusNoContent,
			errstore: errstore.ErrNotFoundData,
		},
		{
			name:   "unauthorize",
			status: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			engine, storeMock, _ := newTestServer(t)

			if tt.status != http.StatusUnauthorized {
				var bookings []*model.Booking
				if tt.status == http.StatusOK {
					bookings = []*model.Booking{{
						ID:                 7,
						UserID:             1,
						Status:             model.BookingWasherAssigned,
						TotalPrice:         decimal.RequireFromString("22.99"),
						CollectionTimeSlot: "09:00-11:00",
						ServicesConfig:     []byte(`{"weightTier":"0-6kg"}`),
						CollectionPin:      "0042",
						DeliveryPin:        "7331",
					}}
				}
				storeMock.EXPECT().
					GetUserBookings(ctx, uint(1)).
					Return(bookings, tt.errstore).
					Times(1)
			}

			w := httptest.NewRecorder()
			r := httptest.NewRequest(http.MethodGet, "/api/user/bookings", http.NoBody)
			if tt.status != http.StatusUnauthorized {
				r.AddCookie(authCookie(t, 1, model.RoleUser))
			}

			engine.ServeHTTP(w, r)

			result := w.Result()
			assert.Equal(t, tt.status, result.StatusCode)

			if tt.status == http.StatusOK {
				bBody, err := io.ReadAll(result.Body)
				assert.NoError(t, err)
				assert.Contains(t, string(bBody), `"collection_pin":"0042"`)
				assert.Contains(t, string(bBody), `"delivery_pin":"7331"`)
			}
			assert.NoError(t, result.Body.Close())
		})
	}
}

func TestServer_handlerCancelBooking(t *testing.T) {
	ctx := context.Background()
	tests := []struct {
		name      string
		booking   model.Booking
		getErr    error
		cancelErr error
		status    int
		refund    string
	}{
		{
			name: "refund due",
			booking: model.Booking{
				ID:             7,
				UserID:         1,
				CollectionDate: time.Now().Add(time.Hour * 48),
			},
			status: http.StatusOK,
			refund: `{"refund":true}`,
		},
		{
			name: "refund forfeited",
			booking: model.Booking{
				ID:             7,
				UserID:         1,
				CollectionDate: time.Now().Add(time.Hour * 2),
			},
			status: http.StatusOK,
			refund: `{"refund":false}`,
		},
		{
			name:    "not owner",
			booking: model.Booking{ID: 7, UserID: 2},
			status:  http.StatusForbidden,
		},
		{
			name:   "not found",
			getErr: errstore.ErrNotFoundData,
			status: http.StatusNotFound,
		},
		{
			name: "already finished",
			booking: model.Booking{
				ID:             7,
				UserID:         1,
				CollectionDate: time.Now().Add(time.Hour * 48),
			},
			cancelErr: errstore.ErrStatusConflict,
			status:    http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			engine, storeMock, _ := newTestServer(t)

			storeMock.EXPECT().
				GetBooking(ctx, uint(7)).
				Return(tt.booking, tt.getErr).
				Times(1)
			if tt.getErr == nil && tt.status != http.StatusForbidden {
				storeMock.EXPECT().
					CancelBooking(ctx, uint(7), nil).
					Return(tt.cancelErr).
					Times(1)
			}

			w := httptest.NewRecorder()
			r := httptest.NewRequest(http.MethodPost, "/api/user/bookings/7/cancel", http.NoBody)
			r.AddCookie(authCookie(t, 1, model.RoleUser))

			engine.ServeHTTP(w, r)

			result := w.Result()
			assert.Equal(t, tt.status, result.StatusCode)

			if tt.refund != "" {
				bBody, err := io.ReadAll(result.Body)
				assert.NoError(t, err)
				assert.JSONEq(t, tt.refund, string(bBody))
			}
			assert.NoError(t, result.Body.Close())
		})
	}
}

func TestServer_handlerGetWasherBookings(t *testing.T) {
	ctx := context.Background()

	t.Run("ok without pins", func(t *testing.T) {
		engine, storeMock, _ := newTestServer(t)

		storeMock.EXPECT().
			GetWasherBookings(ctx, uint(9)).
			Return([]*model.Booking{{
				ID:                  7,
				UserID:              1,
				Status:              model.BookingWasherAssigned,
				TotalPrice:          decimal.RequireFromString("22.99"),
				ServicesConfig:      []byte(`{"weightTier":"0-6kg"}`),
				CollectionPin:       "0042",
				DeliveryPin:         "7331",
				SpecialInstructions: "ring the bell",
			}}, nil).
			Times(1)

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/api/washer/bookings", http.NoBody)
		r.AddCookie(authCookie(t, 9, model.RoleWasher))

		engine.ServeHTTP(w, r)

		result := w.Result()
		assert.Equal(t, http.StatusOK, result.StatusCode)

		bBody, err := io.ReadAll(result.Body)
		assert.NoError(t, err)
		assert.NoError(t, result.Body.Close())
		assert.NotContains(t, string(bBody), "0042", "PINs stay on the user side")
		assert.NotContains(t, string(bBody), "7331")
		assert.Contains(t, string(bBody), `"special_instructions":"ring the bell"`)
		assert.Contains(t, string(bBody), `"collection_verified":false`)
	})

	t.Run("no content", func(t *testing.T) {
		engine, storeMock, _ := newTestServer(t)

		storeMock.EXPECT().
			GetWasherBookings(ctx, uint(9)).
			Return(nil, errstore.ErrNotFoundData).
			Times(1)

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/api/washer/bookings", http.NoBody)
		r.AddCookie(authCookie(t, 9, model.RoleWasher))

		engine.ServeHTTP(w, r)

		assert.Equal(t, http.StatusNoContent, w.Result().StatusCode)
	})

	t.Run("user role refused", func(t *testing.T) {
		engine, _, _ := newTestServer(t)

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/api/washer/bookings", http.NoBody)
		r.AddCookie(authCookie(t, 1, model.RoleUser))

		engine.ServeHTTP(w, r)

		assert.Equal(t, http.StatusForbidden, w.Result().StatusCode)
	})
}

func TestServer_handlerVerifyHandover(t *testing.T) {
	ctx := context.Background()
	tests := []struct {
		name     string
		kind     string
		pin      string
		errstore error
		status   int
	}{
		{
			name:   "collection verified",
			kind:   "collection",
			pin:    "0042",
			status: http.StatusOK,
		},
		{
			name:     "wrong pin",
			kind:     "collection",
			pin:      "9999",
			errstore: errstore.ErrPinMismatch,
			status:   http.StatusBadRequest,
		},
		{
			name:   "malformed pin",
			kind:   "collection",
			pin:    "12",
			status: http.StatusBadRequest,
		},
		{
			name:   "unknown kind",
			kind:   "pickup",
			pin:    "0042",
			status: http.StatusBadRequest,
		},
		{
			name:     "another washer",
			kind:     "collection",
			pin:      "0042",
			errstore: errstore.ErrWrongWasher,
			status:   http.StatusForbidden,
		},
		{
			name:     "already verified",
			kind:     "collection",
			pin:      "0042",
			errstore: errstore.ErrPinAlreadyVerified,
			status:   http.StatusConflict,
		},
		{
			name:     "not found",
			kind:     "collection",
			pin:      "0042",
			errstore: errstore.ErrNotFoundData,
			status:   http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			engine, storeMock, _ := newTestServer(t)

			if tt.name != "malformed pin" && tt.name != "unknown kind" {
				storeMock.EXPECT().
					VerifyHandover(ctx, uint(7), uint(9), model.HandoverKind(tt.kind), tt.pin, decimal.Zero).
					Return(tt.errstore).
					Times(1)
			}

			w := httptest.NewRecorder()
			body := strings.NewReader(fmt.Sprintf(`{"kind":%q, "pin":%q}`, tt.kind, tt.pin))
			r := httptest.NewRequest(http.MethodPost, "/api/washer/bookings/7/verify", body)
			r.AddCookie(authCookie(t, 9, model.RoleWasher))

			engine.ServeHTTP(w, r)

			result := w.Result()
			assert.Equal(t, tt.status, result.StatusCode)
			assert.NoError(t, result.Body.Close())
		})
	}
}

func TestServer_handlerVerifyDeliveryCompletes(t *testing.T) {
	ctx := context.Background()
	engine, storeMock, _ := newTestServer(t)

	storeMock.EXPECT().
		GetBooking(ctx, uint(7)).
		Return(model.Booking{ID: 7, TotalPrice: decimal.RequireFromString("25.00")}, nil).
		Times(1)
	storeMock.EXPECT().
		VerifyHandover(ctx, uint(7), uint(9), model.HandoverDelivery, "7331", gomock.Any()).
		DoAndReturn(func(_ context.Context, _, _ uint, _ model.HandoverKind,
			_ string, earnings decimal.Decimal) error {
			assert.True(t, earnings.Equal(decimal.RequireFromString("20.00")))
			return nil
		}).
		Times(1)

	w := httptest.NewRecorder()
	body := strings.NewReader(`{"kind":"delivery", "pin":"7331"}`)
	r := httptest.NewRequest(http.MethodPost, "/api/washer/bookings/7/verify", body)
	r.AddCookie(authCookie(t, 9, model.RoleWasher))

	engine.ServeHTTP(w, r)

	assert.Equal(t, http.StatusOK, w.Result().StatusCode)
}

func TestServer_handlerGetBalance(t *testing.T) {
	ctx := context.Background()
	engine, storeMock, _ := newTestServer(t)

	storeMock.EXPECT().
		GetWasherBalance(ctx, uint(9)).
		Return(model.WasherBalance{
			Available:     decimal.RequireFromString("16.00"),
			Processing:    decimal.RequireFromString("10.00"),
			TotalPaidOut:  decimal.RequireFromString("50.00"),
			TotalEarnings: decimal.RequireFromString("76.00"),
		}, nil).
		Times(1)

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/api/washer/balance", http.NoBody)
	r.AddCookie(authCookie(t, 9, model.RoleWasher))

	engine.ServeHTTP(w, r)

	result := w.Result()
	assert.Equal(t, http.StatusOK, result.StatusCode)

	bBody, err := io.ReadAll(result.Body)
	assert.NoError(t, err)
	assert.NoError(t, result.Body.Close())
	assert.JSONEq(t, `{
		"available_balance": 16,
		"processing_balance": 10,
		"total_paid_out": 50,
		"total_earnings": 76
	}`, string(bBody))
}

func TestServer_handlerRequestPayout(t *testing.T) {
	ctx := context.Background()
	washer := model.User{ID: 9, Role: model.RoleWasher, PayoutAccountRef: "acct_1"}

	tests := []struct {
		name      string
		amount    float64
		washer    model.User
		enabled   bool
		createErr error
		status    int
	}{
		{
			name:    "created",
			amount:  10,
			washer:  washer,
			enabled: true,
			status:  http.StatusCreated,
		},
		{
			name:   "no payout account",
			amount: 10,
			washer: model.User{ID: 9, Role: model.RoleWasher},
			status: http.StatusForbidden,
		},
		{
			name:    "below minimum",
			amount:  9.99,
			washer:  washer,
			enabled: true,
			status:  http.StatusUnprocessableEntity,
		},
		{
			name:      "not enough balance",
			amount:    100,
			washer:    washer,
			enabled:   true,
			createErr: errstore.ErrNotEnoughBalance,
			status:    http.StatusPaymentRequired,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			engine, storeMock, paymentMock := newTestServer(t)

			storeMock.EXPECT().
				GetUserByID(ctx, uint(9)).
				Return(tt.washer, nil).
				Times(1)
			if tt.washer.PayoutAccountRef != "" {
				paymentMock.EXPECT().
					PayoutsEnabled(ctx, "acct_1").
					Return(tt.enabled, nil).
					Times(1)
			}
			if tt.status == http.StatusCreated || tt.createErr != nil {
				storeMock.EXPECT().
					CreatePayoutRequest(ctx, gomock.Any()).
					DoAndReturn(func(_ context.Context, r *model.PayoutRequest) error {
						r.ID = 4
						return tt.createErr
					}).
					Times(1)
			}

			w := httptest.NewRecorder()
			body := strings.NewReader(fmt.Sprintf(`{"amount":%v, "notes":"rent"}`, tt.amount))
			r := httptest.NewRequest(http.MethodPost, "/api/washer/payouts", body)
			r.AddCookie(authCookie(t, 9, model.RoleWasher))

			engine.ServeHTTP(w, r)

			result := w.Result()
			assert.Equal(t, tt.status, result.StatusCode)

			if tt.status == http.StatusCreated {
				bBody, err := io.ReadAll(result.Body)
				assert.NoError(t, err)
				assert.Contains(t, string(bBody), `"net_amount":7.5`)
				assert.Contains(t, string(bBody), `"withdrawal_fee":2.5`)
			}
			assert.NoError(t, result.Body.Close())
		})
	}
}

func TestServer_handlerRequestPayoutKeepsCents(t *testing.T) {
	ctx := context.Background()
	engine, storeMock, paymentMock := newTestServer(t)

	storeMock.EXPECT().
		GetUserByID(ctx, uint(9)).
		Return(model.User{ID: 9, Role: model.RoleWasher, PayoutAccountRef: "acct_1"}, nil).
		Times(1)
	paymentMock.EXPECT().
		PayoutsEnabled(ctx, "acct_1").
		Return(true, nil).
		Times(1)
	storeMock.EXPECT().
		CreatePayoutRequest(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, r *model.PayoutRequest) error {
			assert.True(t, r.RequestedAmount.Equal(decimal.RequireFromString("10.10")),
				"got %s", r.RequestedAmount)
			assert.True(t, r.NetAmount.Equal(decimal.RequireFromString("7.60")),
				"got %s", r.NetAmount)
			return nil
		}).
		Times(1)

	w := httptest.NewRecorder()
	body := strings.NewReader(`{"amount":10.10, "notes":""}`)
	r := httptest.NewRequest(http.MethodPost, "/api/washer/payouts", body)
	r.AddCookie(authCookie(t, 9, model.RoleWasher))

	engine.ServeHTTP(w, r)

	assert.Equal(t, http.StatusCreated, w.Result().StatusCode)
}

func TestServer_handlerRequestPayoutBadAmount(t *testing.T) {
	engine, _, _ := newTestServer(t)

	w := httptest.NewRecorder()
	body := strings.NewReader(`{"notes":"no amount"}`)
	r := httptest.NewRequest(http.MethodPost, "/api/washer/payouts", body)
	r.AddCookie(authCookie(t, 9, model.RoleWasher))

	engine.ServeHTTP(w, r)

	assert.Equal(t, http.StatusBadRequest, w.Result().StatusCode)
}

func TestServer_handlerGetPayouts(t *testing.T) {
	ctx := context.Background()
	tests := []struct {
		name     string
		status   int
		errstore error
	}{
		{
			name:   "ok",
			status: http.StatusOK,
		},
		{
			name:     "no content",
			status:   http.StatusNoContent,
			errstore: errstore.ErrNotFoundData,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			engine, storeMock, _ := newTestServer(t)

			var requests []*model.PayoutRequest
			if tt.status == http.StatusOK {
				requests = []*model.PayoutRequest{{
					ID:              4,
					WasherID:        9,
					RequestedAmount: decimal.RequireFromString("10.00"),
					WithdrawalFee:   decimal.RequireFromString("2.50"),
					NetAmount:       decimal.RequireFromString("7.50"),
					Status:          model.PayoutPending,
				}}
			}
			storeMock.EXPECT().
				GetPayoutRequestsByWasher(ctx, uint(9)).
				Return(requests, tt.errstore).
				Times(1)

			w := httptest.NewRecorder()
			r := httptest.NewRequest(http.MethodGet, "/api/washer/payouts", http.NoBody)
			r.AddCookie(authCookie(t, 9, model.RoleWasher))

			engine.ServeHTTP(w, r)

			assert.Equal(t, tt.status, w.Result().StatusCode)
		})
	}
}

func TestServer_handlerResolvePayout(t *testing.T) {
	ctx := context.Background()
	request := model.PayoutRequest{
		ID:        4,
		WasherID:  9,
		NetAmount: decimal.RequireFromString("7.50"),
		Status:    model.PayoutPending,
	}

	t.Run("approved", func(t *testing.T) {
		engine, storeMock, paymentMock := newTestServer(t)

		storeMock.EXPECT().
			GetPayoutRequest(ctx, uint(4)).
			Return(request, nil).
			Times(1)
		storeMock.EXPECT().
			GetUserByID(ctx, uint(9)).
			Return(model.User{ID: 9, PayoutAccountRef: "acct_1"}, nil).
			Times(1)
		paymentMock.EXPECT().
			Transfer(ctx, "acct_1", request.NetAmount).
			Return("tr_1", nil).
			Times(1)
		storeMock.EXPECT().
			ResolvePayoutRequest(ctx, uint(4), model.PayoutCompleted, "tr_1").
			Return(nil).
			Times(1)

		w := httptest.NewRecorder()
		body := strings.NewReader(`{"approve":true}`)
		r := httptest.NewRequest(http.MethodPost, "/api/admin/payouts/4", body)
		r.AddCookie(authCookie(t, 2, model.RoleAdmin))

		engine.ServeHTTP(w, r)

		assert.Equal(t, http.StatusOK, w.Result().StatusCode)
	})

	t.Run("rejected", func(t *testing.T) {
		engine, storeMock, _ := newTestServer(t)

		storeMock.EXPECT().
			GetPayoutRequest(ctx, uint(4)).
			Return(request, nil).
			Times(1)
		storeMock.EXPECT().
			ResolvePayoutRequest(ctx, uint(4), model.PayoutRejected, "").
			Return(nil).
			Times(1)

		w := httptest.NewRecorder()
		body := strings.NewReader(`{"approve":false}`)
		r := httptest.NewRequest(http.MethodPost, "/api/admin/payouts/4", body)
		r.AddCookie(authCookie(t, 2, model.RoleAdmin))

		engine.ServeHTTP(w, r)

		assert.Equal(t, http.StatusOK, w.Result().StatusCode)
	})

	t.Run("already processed", func(t *testing.T) {
		engine, storeMock, _ := newTestServer(t)

		storeMock.EXPECT().
			GetPayoutRequest(ctx, uint(4)).
			Return(request, nil).
			Times(1)
		storeMock.EXPECT().
			ResolvePayoutRequest(ctx, uint(4), model.PayoutRejected, "").
			Return(errstore.ErrPayoutAlreadyProcessed).
			Times(1)

		w := httptest.NewRecorder()
		body := strings.NewReader(`{"approve":false}`)
		r := httptest.NewRequest(http.MethodPost, "/api/admin/payouts/4", body)
		r.AddCookie(authCookie(t, 2, model.RoleAdmin))

		engine.ServeHTTP(w, r)

		assert.Equal(t, http.StatusConflict, w.Result().StatusCode)
	})

	t.Run("washer role refused", func(t *testing.T) {
		engine, _, _ := newTestServer(t)

		w := httptest.NewRecorder()
		body := strings.NewReader(`{"approve":true}`)
		r := httptest.NewRequest(http.MethodPost, "/api/admin/payouts/4", body)
		r.AddCookie(authCookie(t, 9, model.RoleWasher))

		engine.ServeHTTP(w, r)

		assert.Equal(t, http.StatusForbidden, w.Result().StatusCode)
	})
}

func TestServer_handlerPaymentWebhook(t *testing.T) {
	ctx := context.Background()
	tests := []struct {
		name       string
		secret     string
		event      string
		confirmErr error
		expectCall bool
		status     int
	}{
		{
			name:       "confirmed",
			secret:     webhookSecret,
			event:      `{"type":"checkout.session.completed","reference":"cs_1"}`,
			expectCall: true,
			status:     http.StatusOK,
		},
		{
			name:   "bad secret",
			secret: "whsec_wrong",
			event:  `{"type":"checkout.session.completed","reference":"cs_1"}`,
			status: http.StatusUnauthorized,
		},
		{
			name:   "other event ignored",
			secret: webhookSecret,
			event:  `{"type":"checkout.session.expired","reference":"cs_1"}`,
			status: http.StatusOK,
		},
		{
			name:       "replay acknowledged",
			secret:     webhookSecret,
			event:      `{"type":"checkout.session.completed","reference":"cs_1"}`,
			confirmErr: errstore.ErrStatusConflict,
			expectCall: true,
			status:     http.StatusOK,
		},
		{
			name:       "unknown reference",
			secret:     webhookSecret,
			event:      `{"type":"checkout.session.completed","reference":"cs_1"}`,
			confirmErr: errstore.ErrNotFoundData,
			expectCall: true,
			status:     http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			engine, storeMock, _ := newTestServer(t)

			if tt.expectCall {
				if tt.confirmErr != nil && tt.confirmErr != errstore.ErrStatusConflict {
					storeMock.EXPECT().
						GetBookingBySessionRef(ctx, "cs_1").
						Return(model.Booking{}, tt.confirmErr).
						Times(1)
				} else {
					storeMock.EXPECT().
						GetBookingBySessionRef(ctx, "cs_1").
						Return(model.Booking{ID: 7}, nil).
						Times(1)
					storeMock.EXPECT().
						ConfirmBookingPayment(ctx, uint(7)).
						Return(tt.confirmErr).
						Times(1)
				}
			}

			w := httptest.NewRecorder()
			r := httptest.NewRequest(http.MethodPost, "/api/payments/webhook", strings.NewReader(tt.event))
			r.Header.Set("X-Webhook-Secret", tt.secret)

			engine.ServeHTTP(w, r)

			assert.Equal(t, tt.status, w.Result().StatusCode)
		})
	}
}
