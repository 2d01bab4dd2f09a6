package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"storefront/internal/handler"
	authmw "storefront/internal/middleware"
	"storefront/internal/service"
)

type Server struct {
	echo             *echo.Echo
	orderHandler     *handler.OrderHandler
	dashboardHandler *handler.DashboardHandler
	paymentHandler   *handler.PaymentHandler
	productHandler   *handler.ProductHandler
	userHandler      *handler.UserHandler
	jwtSecret        string
}

func NewServer(
	logger *zap.Logger,
	jwtSecret string,
	orderService service.OrderService,
	dashboardService service.DashboardService,
	paymentService service.PaymentService,
	productService service.ProductService,
	userService service.UserService,
) *Server {
	e := echo.New()
	e.HideBanner = true
	e.Validator = &requestValidator{validate: validator.New()}
	e.HTTPErrorHandler = errorHandler(logger)

	e.Use(middleware.Recover())
	e.Use(middleware.CORS())
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogURI:       true,
		LogMethod:    true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			logger.Info("request",
				zap.String("rid", v.RequestID),
				zap.String("method", v.Method),
				zap.String("uri", v.URI),
				zap.Int("status", v.Status),
				zap.Duration("latency", v.Latency),
			)
			return nil
		},
	}))

	s := &Server{
		echo:             e,
		orderHandler:     handler.NewOrderHandler(orderService),
		dashboardHandler: handler.NewDashboardHandler(dashboardService),
		paymentHandler:   handler.NewPaymentHandler(paymentService),
		productHandler:   handler.NewProductHandler(productService),
		userHandler:      handler.NewUserHandler(userService),
		jwtSecret:        jwtSecret,
	}

	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	api := s.echo.Group("/api")

	api.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]string{"status": "ok"})
	})

	api.POST("/login", s.userHandler.Login)

	auth := authmw.Auth(s.jwtSecret)
	admin := authmw.RequireAdmin()

	api.GET("/users/me", s.userHandler.Me, auth)

	// -------- catalog --------
	products := api.Group("/products")
	products.GET("", s.productHandler.List)
	products.GET("/:id", s.productHandler.Get)
	products.POST("", s.productHandler.Create, auth, admin)
	products.PUT("/:id", s.productHandler.Update, auth, admin)
	products.DELETE("/:id", s.productHandler.Delete, auth, admin)

	// -------- payment --------
	api.POST("/payment/snap", s.paymentHandler.CreateTransaction, auth)

	// -------- orders --------
	orders := api.Group("/orders", auth)
	orders.POST("", s.orderHandler.Create)
	orders.GET("", s.orderHandler.List, admin)

	// -------- admin dashboard --------
	orders.GET("/dashboard/stats", s.dashboardHandler.Stats, admin)
	orders.GET("/dashboard/revenue-trend", s.dashboardHandler.RevenueTrend, admin)
	orders.GET("/dashboard/top-products", s.dashboardHandler.TopProducts, admin)
	orders.GET("/dashboard/order-status", s.dashboardHandler.OrderStatusDistribution, admin)

	orders.GET("/:orderId", s.orderHandler.Get)
}

func (s *Server) Start(address string) error {
	return s.echo.Start(address)
}

func (s *Server) Shutdown() error {
	return s.echo.Close()
}

type requestValidator struct {
	validate *validator.Validate
}

func (v *requestValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return nil
}

// errorHandler maps domain errors onto the {success:false, message} JSON the
// clients expect. Anything unrecognized is a 500 with a generic message, the
// detail goes to the log only.
func errorHandler(logger *zap.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code := http.StatusInternalServerError
		message := "internal server error"

		var (
			validationErr *service.ValidationError
			notFoundErr   *service.NotFoundError
			httpErr       *echo.HTTPError
		)
		switch {
		case errors.As(err, &validationErr):
			code = http.StatusBadRequest
			message = validationErr.Message
		case errors.As(err, &notFoundErr):
			code = http.StatusNotFound
			message = notFoundErr.Error()
		case errors.Is(err, service.ErrForbidden):
			code = http.StatusForbidden
			message = err.Error()
		case errors.Is(err, service.ErrInvalidCredentials):
			code = http.StatusUnauthorized
			message = err.Error()
		case errors.Is(err, service.ErrPaymentGateway):
			code = http.StatusInternalServerError
			message = err.Error()
		case errors.As(err, &httpErr):
			code = httpErr.Code
			message = fmt.Sprintf("%v", httpErr.Message)
		default:
			logger.Error("unhandled request error",
				zap.String("uri", c.Request().RequestURI),
				zap.Error(err),
			)
		}

		_ = c.JSON(code, echo.Map{
			"success": false,
			"message": message,
		})
	}
}
