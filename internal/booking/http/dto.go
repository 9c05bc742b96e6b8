package http

import (
	"time"

	"github.com/vvbakhanovich/shareit/internal/booking"
	itemHttp "github.com/vvbakhanovich/shareit/internal/item/http"
	"github.com/vvbakhanovich/shareit/internal/pkg/request"
	userHttp "github.com/vvbakhanovich/shareit/internal/user/http"
)

// CreateBookingBody leaves start/end validation to the service so that
// missing bounds are reported per field.
type CreateBookingBody struct {
	ItemID int64              `json:"itemId" binding:"required,min=1"`
	Start  *request.Timestamp `json:"start"`
	End    *request.Timestamp `json:"end"`
}

type AcknowledgeQuery struct {
	Approved *bool `form:"approved" binding:"required"`
}

type BookingResponse struct {
	ID     int64            `json:"id"`
	Item   itemHttp.ItemTag `json:"item"`
	Booker userHttp.UserTag `json:"booker"`
	Start  time.Time        `json:"start"`
	End    time.Time        `json:"end"`
	Status string           `json:"status"`
}

func NewBookingResponse(b *booking.Booking) BookingResponse {
	return BookingResponse{
		ID:     b.ID,
		Item:   itemHttp.ItemTag{ID: b.ItemID, Name: b.ItemName},
		Booker: userHttp.UserTag{ID: b.BookerID},
		Start:  b.Start,
		End:    b.End,
		Status: b.Status.String(),
	}
}
