package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/Domenick1991/airadmin/internal/domain"
	"github.com/Domenick1991/airadmin/internal/service/flights"
	"github.com/gin-gonic/gin"
)

const dateLayout = "2006-01-02"

type FlightHandler struct {
	service flights.FlightUseCase
}

type flightRequest struct {
	AirlineName string `json:"airline_name" validate:"required"`
	TotalSeats  int    `json:"total_seats" validate:"required,gt=0"`
	FlightDate  string `json:"flight_date" validate:"required,datetime=2006-01-02"`
	PriceCents  int64  `json:"price_cents" validate:"gte=0"`
}

type flightResponse struct {
	ID             int64  `json:"id"`
	AirlineName    string `json:"airline_name"`
	TotalSeats     int    `json:"total_seats"`
	BookedSeats    int    `json:"booked_seats"`
	AvailableSeats int    `json:"available_seats"`
	FlightDate     string `json:"flight_date"`
	PriceCents     int64  `json:"price_cents"`
}

func toFlightResponse(f *domain.Flight) flightResponse {
	return flightResponse{
		ID:             f.ID,
		AirlineName:    f.AirlineName,
		TotalSeats:     f.TotalSeats,
		BookedSeats:    f.BookedSeats,
		AvailableSeats: f.AvailableSeats(),
		FlightDate:     f.FlightDate.Format(dateLayout),
		PriceCents:     f.PriceCents,
	}
}

func NewFlightHandler(service flights.FlightUseCase) *FlightHandler {
	return &FlightHandler{service: service}
}

func (h *FlightHandler) Register(router *gin.RouterGroup) {
	router.POST("", h.create)
	router.GET("", h.list)
	router.GET("/by-date", h.byDate)
	router.GET("/upcoming", h.upcoming)
	router.GET("/:id", h.get)
	router.PUT("/:id", h.update)
	router.DELETE("/:id", h.delete)
	router.GET("/:id/availability", h.availability)
}

func (h *FlightHandler) create(c *gin.Context) {
	input, ok := h.bindFlight(c)
	if !ok {
		return
	}

	flight, err := h.service.Create(c.Request.Context(), input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toFlightResponse(flight))
}

func (h *FlightHandler) list(c *gin.Context) {
	flights, err := h.service.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, flightResponses(flights))
}

func (h *FlightHandler) get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	flight, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toFlightResponse(flight))
}

func (h *FlightHandler) update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	input, ok := h.bindFlight(c)
	if !ok {
		return
	}

	flight, err := h.service.Update(c.Request.Context(), id, input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toFlightResponse(flight))
}

func (h *FlightHandler) delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *FlightHandler) availability(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	available, err := h.service.Availability(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"available_seats": available})
}

func (h *FlightHandler) byDate(c *gin.Context) {
	date, err := time.Parse(dateLayout, c.Query("date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date"})
		return
	}
	flights, err := h.service.ByDate(c.Request.Context(), date)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, flightResponses(flights))
}

func (h *FlightHandler) upcoming(c *gin.Context) {
	from := time.Now()
	if raw := c.Query("from"); raw != "" {
		parsed, err := time.Parse(dateLayout, raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date"})
			return
		}
		from = parsed
	}
	flights, err := h.service.Upcoming(c.Request.Context(), from)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, flightResponses(flights))
}

func (h *FlightHandler) bindFlight(c *gin.Context) (flights.FlightInput, bool) {
	var req flightRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return flights.FlightInput{}, false
	}
	if err := validate.Struct(req); err != nil {
		respondBadRequest(c, err)
		return flights.FlightInput{}, false
	}
	date, _ := time.Parse(dateLayout, req.FlightDate)
	return flights.FlightInput{
		AirlineName: req.AirlineName,
		TotalSeats:  req.TotalSeats,
		FlightDate:  date,
		PriceCents:  req.PriceCents,
	}, true
}

func flightResponses(list []domain.Flight) []flightResponse {
	out := make([]flightResponse, 0, len(list))
	for i := range list {
		out = append(out, toFlightResponse(&list[i]))
	}
	return out
}

func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return 0, false
	}
	return id, true
}
