package api

import (
	"net/http"
	"time"

	"github.com/Domenick1991/airadmin/internal/domain"
	"github.com/Domenick1991/airadmin/internal/service/booking"
	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	service booking.BookingUseCase
}

type createBookingRequest struct {
	FlightID   int64 `json:"flight_id" validate:"required,gt=0"`
	CustomerID int64 `json:"customer_id" validate:"required,gt=0"`
	PriceCents int64 `json:"price_cents" validate:"gte=0"`
}

type bookingResponse struct {
	ID          int64  `json:"id"`
	Reference   string `json:"reference"`
	FlightID    int64  `json:"flight_id"`
	CustomerID  int64  `json:"customer_id"`
	PriceCents  int64  `json:"price_cents"`
	BookingDate string `json:"booking_date"`
}

func toBookingResponse(b *domain.Booking) bookingResponse {
	return bookingResponse{
		ID:          b.ID,
		Reference:   b.Reference,
		FlightID:    b.FlightID,
		CustomerID:  b.CustomerID,
		PriceCents:  b.PriceCents,
		BookingDate: b.BookingDate.Format(time.RFC3339),
	}
}

func NewBookingHandler(service booking.BookingUseCase) *BookingHandler {
	return &BookingHandler{service: service}
}

func (h *BookingHandler) Register(router *gin.RouterGroup) {
	router.POST("", h.create)
	router.GET("", h.list)
	router.GET("/customer/:id", h.byCustomer)
	router.DELETE("/:id", h.cancel)
}

func (h *BookingHandler) create(c *gin.Context) {
	var req createBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}
	if err := validate.Struct(req); err != nil {
		respondBadRequest(c, err)
		return
	}

	b, err := h.service.Create(c.Request.Context(), booking.CreateBookingInput{
		FlightID:   req.FlightID,
		CustomerID: req.CustomerID,
		PriceCents: req.PriceCents,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toBookingResponse(b))
}

func (h *BookingHandler) list(c *gin.Context) {
	bookings, err := h.service.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, bookingResponses(bookings))
}

func (h *BookingHandler) byCustomer(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	bookings, err := h.service.ListByCustomer(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, bookingResponses(bookings))
}

func (h *BookingHandler) cancel(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.service.Cancel(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func bookingResponses(list []domain.Booking) []bookingResponse {
	out := make([]bookingResponse, 0, len(list))
	for i := range list {
		out = append(out, toBookingResponse(&list[i]))
	}
	return out
}
