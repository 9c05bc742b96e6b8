package item

import (
	"net/http"
	"time"

	"github.com/vvbakhanovich/shareit/internal/pkg/apperror"
)

var (
	ErrNotFound = apperror.NewField(http.StatusNotFound, "itemId", "not found")
	// ErrNotOwner is rendered like ErrNotFound so that foreign items are not disclosed.
	ErrNotOwner            = apperror.NewField(http.StatusNotFound, "itemId", "not found")
	ErrNameRequired        = apperror.NewField(http.StatusBadRequest, "name", "is required")
	ErrDescriptionRequired = apperror.NewField(http.StatusBadRequest, "description", "is required")
	ErrAvailableRequired   = apperror.NewField(http.StatusBadRequest, "available", "is required")
	ErrCommentTextRequired = apperror.NewField(http.StatusBadRequest, "text", "is required")
	ErrCommentNotAllowed   = apperror.NewField(http.StatusBadRequest, "itemId", "has no finished booking by this user")
)

// Item is a thing one user offers for rent.
type Item struct {
	ID          int64
	OwnerID     int64
	Name        string
	Description string
	Available   bool
	RequestID   *int64
}

// Comment is a review left by a past booker.
type Comment struct {
	ID         int64
	ItemID     int64
	AuthorID   int64
	AuthorName string
	Text       string
	Created    time.Time
}

// BookingRef is the slice of a booking shown on an item card.
type BookingRef struct {
	ID       int64
	BookerID int64
	Start    time.Time
	End      time.Time
}

// Nearest holds the latest started and the next upcoming approved booking.
type Nearest struct {
	Last *BookingRef
	Next *BookingRef
}

// Details is an item as rendered to a viewer.
type Details struct {
	Item     *Item
	Last     *BookingRef
	Next     *BookingRef
	Comments []*Comment
}
