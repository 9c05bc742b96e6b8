package booking

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"github.com/vvbakhanovich/shareit/internal/events"
	"github.com/vvbakhanovich/shareit/internal/item"
	"github.com/vvbakhanovich/shareit/internal/pkg/metrics"
	"github.com/vvbakhanovich/shareit/internal/pkg/pagination"
	"github.com/vvbakhanovich/shareit/internal/user"
)

type UserLookup interface {
	GetByID(ctx context.Context, id int64) (*user.User, error)
}

type ItemLookup interface {
	GetByID(ctx context.Context, id int64) (*item.Item, error)
}

// CreateRequest carries the booking period as pointers so that absent bounds
// can be told apart from zero times.
type CreateRequest struct {
	BookerID int64
	ItemID   int64
	Start    *time.Time
	End      *time.Time
}

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*Booking, error)
	// Acknowledge approves or rejects a waiting booking on behalf of the item owner.
	Acknowledge(ctx context.Context, actingUserID, bookingID int64, approve bool) (*Booking, error)
	GetByID(ctx context.Context, actingUserID, bookingID int64) (*Booking, error)
	List(ctx context.Context, actingUserID int64, role Role, state State, page pagination.OffsetPage) ([]*Booking, error)
}

type service struct {
	repo      Repository
	users     UserLookup
	items     ItemLookup
	publisher events.Publisher
	logger    *zerolog.Logger
	now       func() time.Time
}

func NewService(repo Repository, users UserLookup, items ItemLookup, publisher events.Publisher, logger *zerolog.Logger) Service {
	return &service{
		repo:      repo,
		users:     users,
		items:     items,
		publisher: publisher,
		logger:    logger,
		now:       time.Now,
	}
}

func (s *service) Create(ctx context.Context, req CreateRequest) (*Booking, error) {
	if _, err := s.users.GetByID(ctx, req.BookerID); err != nil {
		return nil, err
	}
	it, err := s.items.GetByID(ctx, req.ItemID)
	if err != nil {
		return nil, err
	}
	if !it.Available {
		return nil, ErrItemUnavailable
	}
	if it.OwnerID == req.BookerID {
		// Owners cannot book their own items; reported as if the item did not exist.
		return nil, item.ErrNotFound
	}
	if err := ValidateRange(req.Start, req.End, s.now()); err != nil {
		return nil, err
	}

	b := &Booking{
		ItemID:      it.ID,
		ItemName:    it.Name,
		ItemOwnerID: it.OwnerID,
		BookerID:    req.BookerID,
		Start:       *req.Start,
		End:         *req.End,
		Status:      StatusWaiting,
	}
	if err := s.repo.Create(ctx, b); err != nil {
		return nil, err
	}

	s.logger.Info().
		Int64("booking_id", b.ID).
		Int64("item_id", b.ItemID).
		Int64("booker_id", b.BookerID).
		Msg("booking created")
	metrics.IncBookingTransition(b.Status.String())
	s.publish(ctx, events.TypeBookingCreated, b)

	return b, nil
}

func (s *service) Acknowledge(ctx context.Context, actingUserID, bookingID int64, approve bool) (*Booking, error) {
	if _, err := s.users.GetByID(ctx, actingUserID); err != nil {
		return nil, err
	}
	b, err := s.repo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if b.ItemOwnerID != actingUserID {
		return nil, ErrNotAuthorized
	}

	target := StatusRejected
	if approve {
		target = StatusApproved
	}
	if !b.Status.CanTransitionTo(target) {
		return nil, ErrInvalidState
	}

	if err := s.repo.UpdateStatus(ctx, b.ID, b.Status, target); err != nil {
		if errors.Is(err, ErrStatusConflict) {
			s.logger.Warn().Int64("booking_id", b.ID).Msg("concurrent acknowledge lost")
			return nil, ErrInvalidState
		}
		return nil, err
	}
	b.Status = target

	s.logger.Info().
		Int64("booking_id", b.ID).
		Int64("owner_id", actingUserID).
		Str("status", target.String()).
		Msg("booking acknowledged")
	metrics.IncBookingTransition(target.String())
	if approve {
		s.publish(ctx, events.TypeBookingApproved, b)
	} else {
		s.publish(ctx, events.TypeBookingRejected, b)
	}

	return b, nil
}

func (s *service) GetByID(ctx context.Context, actingUserID, bookingID int64) (*Booking, error) {
	if _, err := s.users.GetByID(ctx, actingUserID); err != nil {
		return nil, err
	}
	b, err := s.repo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if b.BookerID != actingUserID && b.ItemOwnerID != actingUserID {
		return nil, ErrNotAuthorized
	}
	return b, nil
}

func (s *service) List(ctx context.Context, actingUserID int64, role Role, state State, page pagination.OffsetPage) ([]*Booking, error) {
	if _, err := s.users.GetByID(ctx, actingUserID); err != nil {
		return nil, err
	}

	q := Query{Role: role, UserID: actingUserID, State: state, Now: s.now()}
	bookings, err := s.repo.List(ctx, q, page)
	if err != nil {
		return nil, err
	}
	if bookings == nil {
		bookings = []*Booking{}
	}
	return bookings, nil
}

type eventData struct {
	BookingID int64     `json:"bookingId"`
	ItemID    int64     `json:"itemId"`
	OwnerID   int64     `json:"ownerId"`
	BookerID  int64     `json:"bookerId"`
	Start     time.Time `json:"start"`
	End       time.Time `json:"end"`
	Status    Status    `json:"status"`
}

// publish emits a lifecycle event. Delivery failures are logged and never fail the operation.
func (s *service) publish(ctx context.Context, eventType string, b *Booking) {
	evt, err := events.New(eventType, strconv.FormatInt(b.ID, 10), eventData{
		BookingID: b.ID,
		ItemID:    b.ItemID,
		OwnerID:   b.ItemOwnerID,
		BookerID:  b.BookerID,
		Start:     b.Start,
		End:       b.End,
		Status:    b.Status,
	})
	if err == nil {
		err = s.publisher.Publish(ctx, evt)
	}
	if err != nil {
		s.logger.Error().Err(err).
			Str("type", eventType).
			Int64("booking_id", b.ID).
			Msg("failed to publish booking event")
	}
}
