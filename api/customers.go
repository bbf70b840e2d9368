package api

import (
	"net/http"

	"github.com/Domenick1991/airadmin/internal/domain"
	"github.com/Domenick1991/airadmin/internal/service/customers"
	"github.com/gin-gonic/gin"
)

type CustomerHandler struct {
	service customers.CustomerUseCase
}

type customerRequest struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required,email"`
}

type customerResponse struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

func toCustomerResponse(c *domain.Customer) customerResponse {
	return customerResponse{ID: c.ID, Name: c.Name, Email: c.Email}
}

func NewCustomerHandler(service customers.CustomerUseCase) *CustomerHandler {
	return &CustomerHandler{service: service}
}

func (h *CustomerHandler) Register(router *gin.RouterGroup) {
	router.POST("", h.create)
	router.GET("", h.list)
	router.GET("/:id", h.get)
	router.DELETE("/:id", h.delete)
}

func (h *CustomerHandler) create(c *gin.Context) {
	var req customerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}
	if err := validate.Struct(req); err != nil {
		respondBadRequest(c, err)
		return
	}

	customer, err := h.service.Create(c.Request.Context(), customers.CustomerInput{
		Name:  req.Name,
		Email: req.Email,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toCustomerResponse(customer))
}

func (h *CustomerHandler) list(c *gin.Context) {
	all, err := h.service.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	out := make([]customerResponse, 0, len(all))
	for i := range all {
		out = append(out, toCustomerResponse(&all[i]))
	}
	c.JSON(http.StatusOK, out)
}

func (h *CustomerHandler) get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	customer, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toCustomerResponse(customer))
}

func (h *CustomerHandler) delete(c *gin.Context) {
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
