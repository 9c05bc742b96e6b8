package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vvbakhanovich/shareit/internal/auth"
	"github.com/vvbakhanovich/shareit/internal/booking"
	"github.com/vvbakhanovich/shareit/internal/pkg/request"
	"github.com/vvbakhanovich/shareit/internal/pkg/response"
)

type Handler struct {
	service booking.Service
}

func NewHandler(service booking.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) Create(c *gin.Context) {
	var body CreateBookingBody
	if err := c.ShouldBindJSON(&body); err != nil {
		response.BadRequest(c, "invalid request body", err)
		return
	}

	b, err := h.service.Create(c.Request.Context(), booking.CreateRequest{
		BookerID: auth.GetUserID(c),
		ItemID:   body.ItemID,
		Start:    body.Start.Ptr(),
		End:      body.End.Ptr(),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, NewBookingResponse(b))
}

// Acknowledge lets the item owner approve or reject a waiting booking.
func (h *Handler) Acknowledge(c *gin.Context) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		response.BadRequest(c, "invalid request", err)
		return
	}
	var query AcknowledgeQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.BadRequest(c, "invalid approved parameter", err)
		return
	}

	b, err := h.service.Acknowledge(c.Request.Context(), auth.GetUserID(c), uri.ID, *query.Approved)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewBookingResponse(b))
}

func (h *Handler) Get(c *gin.Context) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		response.BadRequest(c, "invalid request", err)
		return
	}

	b, err := h.service.GetByID(c.Request.Context(), auth.GetUserID(c), uri.ID)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewBookingResponse(b))
}

// ListByBooker lists the caller's own bookings.
func (h *Handler) ListByBooker(c *gin.Context) {
	h.list(c, booking.RoleBooker)
}

// ListByOwner lists bookings of items the caller owns.
func (h *Handler) ListByOwner(c *gin.Context) {
	h.list(c, booking.RoleOwner)
}

func (h *Handler) list(c *gin.Context, role booking.Role) {
	state, err := booking.ParseState(c.DefaultQuery("state", string(booking.StateAll)))
	if err != nil {
		response.Error(c, err)
		return
	}
	page, err := request.Page(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	bookings, err := h.service.List(c.Request.Context(), auth.GetUserID(c), role, state, page)
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]BookingResponse, len(bookings))
	for i, b := range bookings {
		items[i] = NewBookingResponse(b)
	}
	c.JSON(http.StatusOK, response.NewPageResponse(items, page))
}
