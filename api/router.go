package api

import (
	"strconv"
	"time"

	"github.com/Domenick1991/airadmin/internal/metrics"
	"github.com/Domenick1991/airadmin/internal/service/booking"
	"github.com/Domenick1991/airadmin/internal/service/customers"
	"github.com/Domenick1991/airadmin/internal/service/flights"
	"github.com/Domenick1991/airadmin/internal/service/reports"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.uber.org/zap"
)

type RouterDeps struct {
	Flights   flights.FlightUseCase
	Customers customers.CustomerUseCase
	Bookings  booking.BookingUseCase
	Reports   reports.ReportUseCase

	Metrics    *metrics.Registry
	Log        *zap.SugaredLogger
	SwaggerDir string
}

func NewRouter(deps RouterDeps) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(observe(deps.Log, deps.Metrics))

	apiGroup := router.Group("/api")
	NewFlightHandler(deps.Flights).Register(apiGroup.Group("/flights"))
	NewCustomerHandler(deps.Customers).Register(apiGroup.Group("/customers"))
	NewBookingHandler(deps.Bookings).Register(apiGroup.Group("/bookings"))
	NewReportHandler(deps.Reports).Register(apiGroup.Group("/reports"))

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	if deps.SwaggerDir != "" {
		router.Static("/swagger", deps.SwaggerDir)
		router.GET("/docs/*any", gin.WrapH(httpSwagger.Handler(
			httpSwagger.URL("/swagger/airadmin.swagger.json"),
		)))
	}

	return router
}

// observe records request metrics and writes one structured log line per
// request.
func observe(log *zap.SugaredLogger, reg *metrics.Registry) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unknown"
		}
		status := c.Writer.Status()
		duration := time.Since(start)

		if reg != nil {
			reg.HTTPRequestsTotal.WithLabelValues(route, c.Request.Method, strconv.Itoa(status)).Inc()
			reg.HTTPRequestDuration.WithLabelValues(route, c.Request.Method).Observe(duration.Seconds())
		}
		if log != nil {
			log.Infow("http request",
				"method", c.Request.Method,
				"route", route,
				"status", status,
				"duration_ms", duration.Milliseconds(),
			)
		}
	}
}
