package rest

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/freshfold/freshfold/docs"
	"github.com/freshfold/freshfold/internal/adapters/store/model"
	"github.com/freshfold/freshfold/internal/core/laundry"
	"github.com/freshfold/freshfold/pkg/jwt"
)

var (
	cookieName = "token"
	cookieKey  = "UserID"
	roleKey    = "Role"
)

type laundryI interface {
	Register(ctx context.Context, login, password string, role model.Role) error
	Authorization(ctx context.Context, login, password string) (model.User, error)
	QuoteSelection(sel laundry.Selection) laundry.Quote
	CreateBooking(ctx context.Context, userID uint, sel laundry.Selection,
		schedule laundry.Schedule, instructions string) (model.Booking, string, error)
	ConfirmPayment(ctx context.Context, sessionRef string) error
	GetUserBookings(ctx context.Context, userID uint) ([]*model.Booking, error)
	GetWasherBookings(ctx context.Context, washerID uint) ([]*model.Booking, error)
	CancelBooking(ctx context.Context, callerID uint, role model.Role, bookingID uint) (bool, error)
	VerifyHandover(ctx context.Context, washerID, bookingID uint, kind model.HandoverKind, pin string) error
	WasherBalance(ctx context.Context, washerID uint) (model.WasherBalance, error)
	RequestPayout(ctx context.Context, washerID uint, amount decimal.Decimal,
		notes string) (model.PayoutRequest, error)
	GetPayoutsByWasher(ctx context.Context, washerID uint) ([]*model.PayoutRequest, error)
	GetPendingPayouts(ctx context.Context) ([]*model.PayoutRequest, error)
	ResolvePayout(ctx context.Context, requestID uint, approve bool) error
}

type Server struct {
	log           *zap.Logger
	engine        *gin.Engine
	service       laundryI
	address       string
	secret        []byte
	webhookSecret string
}

type Option func(*Server)

func Logger(log *zap.Logger) Option {
	return func(s *Server) {
		s.log = log
	}
}

func Configure(cfg *Config) Option {
	return func(s *Server) {
		s.address = cfg.Address
		s.secret = []byte(cfg.Secret)
		s.webhookSecret = cfg.WebhookSecret
	}
}

//	@title			FreshFold
//	@version		1.0
//	@description	Laundry marketplace: bookings, handover verification, washer payouts.
//	@host			localhost:8080
//	@BasePath		/

func New(service laundryI, options ...Option) (*Server, error) {
	s := &Server{
		log:     zap.NewNop(),
		service: service,
	}

	s.engine = gin.New()
	s.engine.Use(
		s.Logger(),
		s.GzipDecompress(),
	)

	api := s.engine.Group("/api")
	api.Use(s.GzipCompress())
	{
		apiUser := api.Group("/user")
		{
			apiUser.POST("/register", s.handlerRegister)
			apiUser.POST("/login", s.handlerLogin)
			apiUser.POST("/quote", s.handlerQuote)

			authUser := apiUser.Group("/")
			authUser.Use(s.Authentication(), s.RequireRole(model.RoleUser))
			{
				authUser.POST("/bookings", s.handlerCreateBooking)
				authUser.GET("/bookings", s.handlerGetUserBookings)
				authUser.POST("/bookings/:id/cancel", s.handlerCancelBooking)
			}
		}

		apiWasher := api.Group("/washer")
		apiWasher.Use(s.Authentication(), s.RequireRole(model.RoleWasher))
		{
			apiWasher.GET("/bookings", s.handlerGetWasherBookings)
			apiWasher.POST("/bookings/:id/verify", s.handlerVerifyHandover)
			apiWasher.GET("/balance", s.handlerGetBalance)
			apiWasher.POST("/payouts", s.handlerRequestPayout)
			apiWasher.GET("/payouts", s.handlerGetPayouts)
		}

		apiAdmin := api.Group("/admin")
		apiAdmin.Use(s.Authentication(), s.RequireRole(model.RoleAdmin))
		{
			apiAdmin.GET("/payouts", s.handlerGetPendingPayouts)
			apiAdmin.POST("/payouts/:id", s.handlerResolvePayout)
		}

		api.POST("/payments/webhook", s.handlerPaymentWebhook)
	}
	s.engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	for _, opt := range options {
		opt(s)
	}

	return s, nil
}

func (s *Server) Engine() *gin.Engine {
	return s.engine
}

func (s *Server) Run() error {
	if err := s.engine.Run(s.address); err != nil {
		return fmt.Errorf("server stopped with error: %w", err)
	}

	return nil
}

func (s *Server) checkAuth(c *gin.Context) (userID uint, role model.Role, err error) {
	cookieUserID, err := c.Request.Cookie(cookieName)
	if err != nil {
		return 0, "", fmt.Errorf("failed read user cookie: %w %w", err, errUnauthorize)
	}

	jwtRest := jwt.New(s.secret)
	userIDS, ok, err := jwtRest.Verify(cookieUserID.Value, cookieKey)
	if err != nil {
		return 0, "", fmt.Errorf("failed verify token: %w %w", err, errUnauthorize)
	}
	if !ok {
		return 0, "", fmt.Errorf("unverified user cookie: %w", errUnauthorize)
	}

	roleS, ok, err := jwtRest.Verify(cookieUserID.Value, roleKey)
	if err != nil || !ok {
		return 0, "", fmt.Errorf("missing role claim: %w", errUnauthorize)
	}

	userID64, err := strconv.ParseUint(userIDS, 10, 32)
	if err != nil {
		return 0, "", fmt.Errorf("can't convert string userID to uint: %w", err)
	}

	return uint(userID64), model.Role(roleS), nil
}

func unauthorize(c *gin.Context) {
	userCookie := &http.Cookie{
		Name:  cookieName,
		Value: "",
		Path:  "/",
	}
	c.Request.AddCookie(userCookie)
	http.SetCookie(c.Writer, userCookie)
}

func (s *Server) authorization(c *gin.Context, login, password string) error {
	ctx := c.Request.Context()
	var err error
	var user model.User
	if user, err = s.service.Authorization(ctx, login, password); err != nil {
		return fmt.Errorf("failed authorization: %w", err)
	}

	jwtRest := jwt.New(s.secret)
	signedCookie, err := jwtRest.Create(map[string]string{
		cookieKey: strconv.Itoa(int(user.ID)),
		roleKey:   string(user.Role),
	})
	if err != nil {
		return fmt.Errorf("can't create cookie data: %w", err)
	}

	userCookie := &http.Cookie{
		Name:  cookieName,
		Value: signedCookie,
		Path:  "/",
	}
	c.Request.AddCookie(userCookie)
	http.SetCookie(c.Writer, userCookie)

	return nil
}
