package laundry

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/freshfold/freshfold/internal/adapters/store/model"
)

type Store interface {
	RegisterUser(ctx context.Context, login, hashPassword string, role model.Role) error
	GetUserByLogin(ctx context.Context, login string) (model.User, error)
	GetUserByID(ctx context.Context, userID uint) (model.User, error)
	CreateBooking(ctx context.Context, booking *model.Booking) error
	GetBooking(ctx context.Context, bookingID uint) (model.Booking, error)
	GetBookingBySessionRef(ctx context.Context, sessionRef string) (model.Booking, error)
	GetUserBookings(ctx context.Context, userID uint) ([]*model.Booking, error)
	GetWasherBookings(ctx context.Context, washerID uint) ([]*model.Booking, error)
	SetPaymentSessionRef(ctx context.Context, bookingID uint, sessionRef string) error
	ConfirmBookingPayment(ctx context.Context, bookingID uint) error
	CancelBooking(ctx context.Context, bookingID uint, penalty *model.Penalty) error
	GetBookingsAwaitingAssignment(ctx context.Context) ([]*model.Booking, error)
	FindAvailableWasher(ctx context.Context) (model.User, error)
	AssignWasher(ctx context.Context, bookingID, washerID uint, collectionPin, deliveryPin string) error
	VerifyHandover(ctx context.Context, bookingID, washerID uint, kind model.HandoverKind,
		pin string, washerEarnings decimal.Decimal) error
	GetWasherBalance(ctx context.Context, washerID uint) (model.WasherBalance, error)
	CreatePayoutRequest(ctx context.Context, request *model.PayoutRequest) error
	GetPayoutRequest(ctx context.Context, requestID uint) (model.PayoutRequest, error)
	GetPayoutRequestsByWasher(ctx context.Context, washerID uint) ([]*model.PayoutRequest, error)
	GetPendingPayoutRequests(ctx context.Context) ([]*model.PayoutRequest, error)
	ResolvePayoutRequest(ctx context.Context, requestID uint, status model.PayoutStatus, transferRef string) error
}

// PaymentProvider is the hosted payments API. Constructed at startup and
// injected; the core never owns an ambient client.
type PaymentProvider interface {
	CreateCheckoutSession(ctx context.Context, bookingID uint, amount decimal.Decimal, sessionRef string) (string, error)
	PayoutsEnabled(ctx context.Context, accountRef string) (bool, error)
	Transfer(ctx context.Context, accountRef string, amount decimal.Decimal) (string, error)
}

var (
	matchingWorkerCount = 2
	delayMatchingPoll   = time.Second * 10
)

type Config struct {
	MatchingEnabled bool          `env:"MATCHING_ENABLED" envDefault:"true"`
	MatchingDelay   time.Duration `env:"MATCHING_DELAY" envDefault:"3s"`
}

type Laundry struct {
	log     *zap.Logger
	cfg     *Config
	store   Store
	payment PaymentProvider
	wg      *sync.WaitGroup
}

type option func(*Laundry)

func Logger(log *zap.Logger) option {
	return func(l *Laundry) {
		l.log = log
	}
}

func New(ctx context.Context, cfg *Config, store Store, payment PaymentProvider, options ...option) *Laundry {
	l := &Laundry{
		log:     zap.NewNop(),
		store:   store,
		payment: payment,
		cfg:     cfg,
		wg:      &sync.WaitGroup{},
	}

	for _, opt := range options {
		opt(l)
	}

	if l.cfg.MatchingEnabled {
		l.wg.Add(1)
		outputCh := l.generatorMatching(ctx)
		for i := 0; i < matchingWorkerCount; i++ {
			l.wg.Add(1)
			go l.workerMatching(ctx, i, outputCh)
		}
	}

	return l
}

func (l *Laundry) Register(ctx context.Context, login, password string, role model.Role) error {
	if err := validatePassword(password); err != nil {
		return fmt.Errorf("password invalidate: %w", err)
	}

	if err := validateLogin(login); err != nil {
		return fmt.Errorf("login invalidate: %w", err)
	}

	if !role.Valid() || role == model.RoleAdmin {
		return ErrRoleNotValid
	}

	hashPass, err := HashPassword(password)
	if err != nil {
		return fmt.Errorf("failed hash password: %w", err)
	}

	err = l.store.RegisterUser(ctx, login, hashPass, role)
	if err != nil {
		return fmt.Errorf("failed register user: %w", err)
	}

	return nil
}

func (l *Laundry) Authorization(ctx context.Context, login, password string) (model.User, error) {
	var user model.User
	var err error
	if err := validatePassword(password); err != nil {
		return user, fmt.Errorf("password invalidate: %w", err)
	}

	if err := validateLogin(login); err != nil {
		return user, fmt.Errorf("login invalidate: %w", err)
	}

	user, err = l.store.GetUserByLogin(ctx, login)
	if err != nil {
		return user, fmt.Errorf("failed getting user `%s`: %w", login, err)
	}

	if ok := checkPasswordHash(password, user.PasswordHash); !ok {
		return user, ErrPasswordNotEqual
	}

	return user, nil
}

// generatorMatching polls paid bookings that still wait for a washer and
// feeds them to the matching workers.
func (l *Laundry) generatorMatching(ctx context.Context) <-chan *model.Booking {
	outputCh := make(chan *model.Booking)
	go func() {
		l.log.Debug("start goroutine generatorMatching")
		defer l.log.Debug("stopped goroutine generatorMatching")
		defer l.wg.Done()
		tick := time.NewTicker(delayMatchingPoll)
		defer close(outputCh)
		for {
			select {
			case <-ctx.Done():
				l.log.Debug("matching generator stopping")
				return
			case <-tick.C:
				bookings, err := l.store.GetBookingsAwaitingAssignment(ctx)
				if err != nil {
					l.log.Error("failed getting bookings awaiting assignment", zap.Error(err))
					continue
				}
				for _, booking := range bookings {
					outputCh <- booking
				}
			}
		}
	}()
	return outputCh
}

// workerMatching is a placeholder for real dispatch: it waits a simulated
// delay, then assigns the least loaded washer and issues both handover
// PINs.
func (l *Laundry) workerMatching(ctx context.Context, id int, inputCh <-chan *model.Booking) {
	l.log.Debug("start goroutine workerMatching", zap.Int("id", id))
	defer l.log.Debug("stopped goroutine workerMatching", zap.Int("id", id))
	defer l.wg.Done()
	for {
		select {
		case <-ctx.Done():
			l.log.Info("matching worker stopping", zap.Int("id", id))
			return
		case b := <-inputCh:
			if b == nil {
				continue
			}
			select {
			case <-ctx.Done():
				return
			case <-time.After(l.cfg.MatchingDelay):
			}
			if err := l.assignBooking(ctx, b.ID); err != nil {
				l.log.Error("failed assign booking",
					zap.Uint("bookingID", b.ID),
					zap.Error(err),
				)
			}
		}
	}
}

func (l *Laundry) assignBooking(ctx context.Context, bookingID uint) error {
	washer, err := l.store.FindAvailableWasher(ctx)
	if err != nil {
		return fmt.Errorf("failed find washer: %w", err)
	}

	collectionPin, err := generatePin()
	if err != nil {
		return err
	}
	deliveryPin, err := generatePin()
	if err != nil {
		return err
	}

	if err := l.store.AssignWasher(ctx, bookingID, washer.ID, collectionPin, deliveryPin); err != nil {
		return fmt.Errorf("failed assign washer: %w", err)
	}
	l.log.Info("booking assigned",
		zap.Uint("bookingID", bookingID),
		zap.Uint("washerID", washer.ID),
	)

	return nil
}

func (l *Laundry) Wait() {
	l.wg.Wait()
}
