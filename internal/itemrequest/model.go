package itemrequest

import (
	"net/http"
	"time"

	"github.com/vvbakhanovich/shareit/internal/pkg/apperror"
)

var (
	ErrNotFound            = apperror.NewField(http.StatusNotFound, "requestId", "not found")
	ErrDescriptionRequired = apperror.NewField(http.StatusBadRequest, "description", "is required")
)

// Request is a user's public ask for an item nobody offers yet.
type Request struct {
	ID          int64
	RequesterID int64
	Description string
	Created     time.Time
	Answers     []Answer
}

// Answer is an item another user created in reply to a request.
type Answer struct {
	ItemID      int64
	OwnerID     int64
	Name        string
	Description string
	Available   bool
	RequestID   int64
}
