package api

import (
	"net/http"
	"time"

	"github.com/Domenick1991/airadmin/internal/service/reports"
	"github.com/gin-gonic/gin"
)

type ReportHandler struct {
	service reports.ReportUseCase
}

func NewReportHandler(service reports.ReportUseCase) *ReportHandler {
	return &ReportHandler{service: service}
}

func (h *ReportHandler) Register(router *gin.RouterGroup) {
	router.GET("/revenue", h.revenue)
	router.GET("/dashboard", h.dashboard)
	router.GET("/booking-trends", h.bookingTrends)
	router.GET("/airline-performance", h.airlinePerformance)
	router.GET("/revenue-analysis", h.revenueAnalysis)
}

func (h *ReportHandler) revenue(c *gin.Context) {
	airline := c.Query("airline")
	if airline == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "airline is required"})
		return
	}
	from, to, ok := dateRange(c)
	if !ok {
		return
	}
	// The range covers whole days: bookings up to the last second of endDate.
	rows, err := h.service.RevenueByAirline(c.Request.Context(), airline, from, to.Add(24*time.Hour-time.Second))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

func (h *ReportHandler) dashboard(c *gin.Context) {
	stats, err := h.service.Dashboard(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

func (h *ReportHandler) bookingTrends(c *gin.Context) {
	from, to, ok := dateRange(c)
	if !ok {
		return
	}
	trends, err := h.service.BookingTrends(c.Request.Context(), from, to)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, trends)
}

func (h *ReportHandler) airlinePerformance(c *gin.Context) {
	performance, err := h.service.AirlinePerformance(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, performance)
}

func (h *ReportHandler) revenueAnalysis(c *gin.Context) {
	from, to, ok := dateRange(c)
	if !ok {
		return
	}
	analysis, err := h.service.RevenueAnalysis(c.Request.Context(), from, to)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, analysis)
}

func dateRange(c *gin.Context) (time.Time, time.Time, bool) {
	from, err := time.Parse(dateLayout, c.Query("startDate"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid startDate"})
		return time.Time{}, time.Time{}, false
	}
	to, err := time.Parse(dateLayout, c.Query("endDate"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid endDate"})
		return time.Time{}, time.Time{}, false
	}
	return from, to, true
}
