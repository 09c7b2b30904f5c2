package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"time"

	"ordering/internal/core/application/usecases/commands"
	"ordering/internal/core/application/usecases/queries"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/metrics"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
	echoSwagger "github.com/swaggo/echo-swagger"
)

type CreateOrderHandler interface {
	Handle(ctx context.Context, cmd commands.CreateOrderCommand) (commands.CreateOrderResult, error)
}

type TrackOrderHandler interface {
	Handle(ctx context.Context, query queries.TrackOrderQuery) (queries.TrackOrderQueryResponse, error)
}

// Server handles the order API and coordinates between HTTP and the
// application use cases.
type Server struct {
	api     *API
	metrics *metrics.Metrics
	logger  *slog.Logger

	createOrderHandler CreateOrderHandler
	trackOrderHandler  TrackOrderHandler
}

func NewServer(
	api *API,
	createOrderHandler CreateOrderHandler,
	trackOrderHandler TrackOrderHandler,
	logger *slog.Logger,
	m *metrics.Metrics,
) *Server {
	return &Server{
		api:                api,
		metrics:            m,
		logger:             logger.With("component", "http_server"),
		createOrderHandler: createOrderHandler,
		trackOrderHandler:  trackOrderHandler,
	}
}

// Register mounts the API, health, metrics and Swagger UI routes.
func (s *Server) Register(e *echo.Echo) {
	s.api.registerDoc()

	e.Use(s.observe)

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET("/metrics", echo.WrapHandler(s.metrics.Handler()))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	v1 := e.Group("/api/v1")
	v1.POST("/orders", s.CreateOrder)
	v1.GET("/orders/:trackingId", s.TrackOrder)
}

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(c echo.Context) error {
	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return badRequest(c, "Invalid request body")
	}

	var document any
	if err = json.Unmarshal(body, &document); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if err = s.api.ValidateCreateOrder(document); err != nil {
		return badRequest(c, "Invalid request body: "+err.Error())
	}

	c.Request().Body = io.NopCloser(bytes.NewReader(body))
	var request CreateOrderRequest
	if err = c.Bind(&request); err != nil {
		return badRequest(c, "Invalid request body")
	}

	cmd, err := request.toCommand()
	if err != nil {
		return badRequest(c, "Invalid order data: "+err.Error())
	}

	result, err := s.createOrderHandler.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.failure(c, err, "Failed to create order")
	}

	return c.JSON(http.StatusCreated, CreateOrderResponse{
		TrackingID: result.TrackingID.String(),
		Status:     result.Status.String(),
		Message:    "Order created successfully",
	})
}

// TrackOrder handles GET /api/v1/orders/:trackingId.
func (s *Server) TrackOrder(c echo.Context) error {
	var raw uuid.UUID
	err := runtime.BindStyledParameterWithLocation("simple", false, "trackingId",
		runtime.ParamLocationPath, c.Param("trackingId"), &raw)
	if err != nil {
		return badRequest(c, "Invalid format for parameter trackingId: "+err.Error())
	}

	id, err := kernel.UUIDFromRaw(raw)
	if err != nil {
		return badRequest(c, "Invalid format for parameter trackingId: "+err.Error())
	}

	query, err := queries.NewTrackOrderQuery(kernel.TrackingIDFrom(id))
	if err != nil {
		return badRequest(c, err.Error())
	}

	response, err := s.trackOrderHandler.Handle(c.Request().Context(), query)
	if err != nil {
		return s.failure(c, err, "Failed to track order")
	}

	return c.JSON(http.StatusOK, TrackOrderResponse{
		TrackingID:      response.TrackingID.String(),
		Status:          response.Status,
		FailureMessages: response.FailureMessages,
	})
}

// failure maps application errors to responses. Unexpected errors are logged
// and reported without details.
func (s *Server) failure(c echo.Context, err error, message string) error {
	code := statusCode(err)
	if code == http.StatusInternalServerError {
		s.logger.ErrorContext(c.Request().Context(), message, "error", err, "path", c.Path())
		return c.JSON(code, Error{Code: code, Message: message})
	}
	return c.JSON(code, Error{Code: code, Message: err.Error()})
}

func statusCode(err error) int {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrVersionIsInvalid):
		return http.StatusConflict
	case errors.Is(err, errs.ErrDomainRuleViolation),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func badRequest(c echo.Context, message string) error {
	return c.JSON(http.StatusBadRequest, Error{Code: http.StatusBadRequest, Message: message})
}

// observe records request count and latency per route.
func (s *Server) observe(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()
		err := next(c)

		status := c.Response().Status
		if err != nil {
			var he *echo.HTTPError
			if errors.As(err, &he) {
				status = he.Code
			} else {
				status = http.StatusInternalServerError
			}
		}

		route := c.Path()
		if route == "" {
			route = "unmatched"
		}
		s.metrics.ObserveRequest(route, status, time.Since(start))
		return err
	}
}
