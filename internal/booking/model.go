package booking

import (
	"errors"
	"net/http"
	"time"

	"github.com/vvbakhanovich/shareit/internal/pkg/apperror"
)

var (
	ErrNotFound = apperror.NewField(http.StatusNotFound, "bookingId", "not found")
	// ErrNotAuthorized renders exactly like ErrNotFound so that callers cannot probe for foreign bookings.
	ErrNotAuthorized   = apperror.NewField(http.StatusNotFound, "bookingId", "not found")
	ErrInvalidState    = apperror.NewField(http.StatusBadRequest, "status", "booking is already acknowledged")
	ErrItemUnavailable = apperror.NewField(http.StatusBadRequest, "itemId", "is not available")
	ErrInvalidRange    = apperror.NewField(http.StatusBadRequest, "start", "must be in the future and before end")
	ErrMissingField    = apperror.New(http.StatusBadRequest, "required field is missing")
	ErrUnknownState    = apperror.NewField(http.StatusBadRequest, "state", "unknown")

	// ErrStatusConflict means the booking left the expected status between read and write.
	ErrStatusConflict = errors.New("booking status changed concurrently")
)

type Status string

const (
	StatusWaiting  Status = "WAITING"
	StatusApproved Status = "APPROVED"
	StatusRejected Status = "REJECTED"
)

var validTransitions = map[Status][]Status{
	StatusWaiting:  {StatusApproved, StatusRejected},
	StatusApproved: {},
	StatusRejected: {},
}

func (s Status) IsValid() bool {
	_, ok := validTransitions[s]
	return ok
}

func (s Status) CanTransitionTo(target Status) bool {
	for _, t := range validTransitions[s] {
		if t == target {
			return true
		}
	}
	return false
}

// IsTerminal returns true if no further transitions are possible from this status.
func (s Status) IsTerminal() bool {
	return len(validTransitions[s]) == 0
}

func (s Status) String() string {
	return string(s)
}

// Role selects whose bookings a listing is scoped to.
type Role int

const (
	RoleBooker Role = iota
	RoleOwner
)

func (r Role) String() string {
	if r == RoleOwner {
		return "owner"
	}
	return "booker"
}

// State is a time- or status-based listing filter.
type State string

const (
	StateAll      State = "ALL"
	StateCurrent  State = "CURRENT"
	StatePast     State = "PAST"
	StateFuture   State = "FUTURE"
	StateWaiting  State = "WAITING"
	StateRejected State = "REJECTED"
)

var states = map[State]struct{}{
	StateAll:      {},
	StateCurrent:  {},
	StatePast:     {},
	StateFuture:   {},
	StateWaiting:  {},
	StateRejected: {},
}

// ParseState maps a filter token to a State; tokens are case-sensitive.
func ParseState(s string) (State, error) {
	st := State(s)
	if _, ok := states[st]; !ok {
		return "", apperror.Wrap(ErrUnknownState, http.StatusBadRequest, "Unknown state: "+s)
	}
	return st, nil
}

type Booking struct {
	ID          int64
	ItemID      int64
	ItemName    string
	ItemOwnerID int64
	BookerID    int64
	Start       time.Time
	End         time.Time
	Status      Status
	CreatedAt   time.Time
}

// Query describes one listing: whose bookings, which filter, and the instant
// time-based filters are evaluated against.
type Query struct {
	Role   Role
	UserID int64
	State  State
	Now    time.Time
}
