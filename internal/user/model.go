package user

import (
	"net/http"

	"github.com/vvbakhanovich/shareit/internal/pkg/apperror"
)

var (
	ErrNotFound         = apperror.NewField(http.StatusNotFound, "userId", "not found")
	ErrEmailAlreadyUsed = apperror.NewField(http.StatusConflict, "email", "already used")
	ErrEmailRequired    = apperror.NewField(http.StatusBadRequest, "email", "is required")
	ErrNameRequired     = apperror.NewField(http.StatusBadRequest, "name", "is required")
)

// User represents a user in the system.
type User struct {
	ID    int64
	Name  string
	Email string
}
