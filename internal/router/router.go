package router

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.uber.org/zap"

	"machinehub/docs"
	"machinehub/internal/config"
	"machinehub/internal/handler"
	access "machinehub/internal/middleware"
	"machinehub/internal/model"
	"machinehub/internal/service"
)

const healthTimeout = 2 * time.Second

// Handlers groups the HTTP handlers mounted by Register.
type Handlers struct {
	Auth      *handler.AuthHandler
	Profile   *handler.ProfileHandler
	Machine   *handler.MachineHandler
	Enquiry   *handler.EnquiryHandler
	Dashboard *handler.DashboardHandler
}

// Check reports whether a backing service is reachable.
type Check func(ctx context.Context) error

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	log *zap.Logger,
	gate *access.Gate,
	h Handlers,
	checks map[string]Check,
) {
	e.HTTPErrorHandler = errorHandler(e, log)
	e.Validator = &CustomValidator{validator: service.NewInputValidator()}

	e.Use(middleware.RequestID())
	e.Use(middleware.Recover())
	e.Use(requestLogger(log))

	e.GET("/healthz", health(checks))
	if cfg.SwaggerHost != "" {
		docs.SwaggerInfo.Host = swaggerHost(cfg.SwaggerHost)
	}
	e.GET("/swagger/*", echoSwagger.WrapHandler)
	if cfg.ImageStore != "gcs" {
		e.Static("/uploads", cfg.UploadDir)
	}

	api := e.Group("/api")

	// Public routes
	api.POST("/auth/register", h.Auth.Register)
	api.POST("/auth/login", h.Auth.Login)
	api.POST("/auth/logout", h.Auth.Logout)
	api.GET("/session", h.Auth.Session)
	api.GET("/machines", h.Machine.ListMachines)
	api.GET("/machines/featured", h.Machine.Featured)
	api.GET("/machines/:id", h.Machine.GetMachine, gate.Identify())

	// Any signed-in user
	signedIn := api.Group("", gate.RequireAuth())
	signedIn.GET("/dashboard", h.Dashboard.Dashboard)
	signedIn.GET("/profile", h.Profile.GetProfile)
	signedIn.PUT("/profile", h.Profile.UpdateProfile)

	suppliers := gate.RequireRole(model.RoleSupplier)
	api.POST("/machines", h.Machine.CreateMachine, suppliers)
	api.PUT("/machines/:id", h.Machine.UpdateMachine, suppliers)
	api.GET("/enquiries", h.Enquiry.ListEnquiries, suppliers)

	api.POST("/machines/:id/enquiries", h.Enquiry.CreateEnquiry, gate.RequireRole(model.RoleBuyer))

	api.GET("/admin/stats", h.Dashboard.AdminStats, gate.RequireRole(model.RoleAdmin))
}

// swaggerHost strips the scheme, swagger expects host[:port].
func swaggerHost(host string) string {
	host = strings.TrimPrefix(host, "http://")
	host = strings.TrimPrefix(host, "https://")
	return strings.TrimSuffix(host, "/")
}

func health(checks map[string]Check) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx, cancel := context.WithTimeout(c.Request().Context(), healthTimeout)
		defer cancel()

		failed := map[string]string{}
		for name, check := range checks {
			if err := check(ctx); err != nil {
				failed[name] = err.Error()
			}
		}
		if len(failed) > 0 {
			return c.JSON(http.StatusServiceUnavailable, echo.Map{"status": "unavailable", "failed": failed})
		}
		return c.JSON(http.StatusOK, echo.Map{"status": "ok"})
	}
}

func requestLogger(log *zap.Logger) echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		HandleError:  true,
		LogValuesFunc: func(_ echo.Context, v middleware.RequestLoggerValues) error {
			log.Info("request",
				zap.String("method", v.Method),
				zap.String("uri", v.URI),
				zap.Int("status", v.Status),
				zap.Duration("latency", v.Latency),
				zap.String("request_id", v.RequestID),
			)
			return nil
		},
	})
}

// errorHandler logs the cause of server errors before echo renders them.
func errorHandler(e *echo.Echo, log *zap.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		var he *echo.HTTPError
		switch {
		case !errors.As(err, &he):
			log.Error("unhandled error", zap.String("uri", c.Request().RequestURI), zap.Error(err))
		case he.Code >= http.StatusInternalServerError && he.Internal != nil:
			log.Error("request failed", zap.String("uri", c.Request().RequestURI), zap.Error(he.Internal))
		}
		e.DefaultHTTPErrorHandler(err, c)
	}
}

// CustomValidator adapts the service input validator to echo.
type CustomValidator struct {
	validator *service.InputValidator
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Validate(i)
}
