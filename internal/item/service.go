package item

import (
	"context"
	"strings"
	"time"

	"github.com/vvbakhanovich/shareit/internal/pkg/pagination"
	"github.com/vvbakhanovich/shareit/internal/user"
)

type UserLookup interface {
	GetByID(ctx context.Context, id int64) (*user.User, error)
}

// RequestLookup checks that an item request exists before an item answers it.
type RequestLookup interface {
	Exists(ctx context.Context, requestID int64) error
}

// BookingHistory answers booking questions about items without this package
// depending on the booking module.
type BookingHistory interface {
	// Nearest returns, per item id, the last started and next upcoming approved booking.
	Nearest(ctx context.Context, itemIDs []int64, now time.Time) (map[int64]Nearest, error)
	// HasFinishedBooking reports whether the booker had an approved booking of the item ending before now.
	HasFinishedBooking(ctx context.Context, itemID, bookerID int64, now time.Time) (bool, error)
}

type CreateRequest struct {
	OwnerID     int64
	Name        string
	Description string
	Available   *bool
	RequestID   *int64
}

// UpdateRequest carries a partial update; nil fields are left unchanged.
type UpdateRequest struct {
	Name        *string
	Description *string
	Available   *bool
}

type CommentRequest struct {
	AuthorID int64
	ItemID   int64
	Text     string
}

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*Item, error)
	Update(ctx context.Context, ownerID, itemID int64, req UpdateRequest) (*Item, error)
	GetByID(ctx context.Context, viewerID, itemID int64) (*Details, error)
	ListByOwner(ctx context.Context, ownerID int64, page pagination.OffsetPage) ([]*Details, error)
	Search(ctx context.Context, text string, page pagination.OffsetPage) ([]*Item, error)
	AddComment(ctx context.Context, req CommentRequest) (*Comment, error)
}

type service struct {
	repo     Repository
	users    UserLookup
	requests RequestLookup
	bookings BookingHistory
	now      func() time.Time
}

func NewService(repo Repository, users UserLookup, requests RequestLookup, bookings BookingHistory) Service {
	return &service{
		repo:     repo,
		users:    users,
		requests: requests,
		bookings: bookings,
		now:      time.Now,
	}
}

func (s *service) Create(ctx context.Context, req CreateRequest) (*Item, error) {
	if _, err := s.users.GetByID(ctx, req.OwnerID); err != nil {
		return nil, err
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, ErrNameRequired
	}
	description := strings.TrimSpace(req.Description)
	if description == "" {
		return nil, ErrDescriptionRequired
	}
	if req.Available == nil {
		return nil, ErrAvailableRequired
	}
	if req.RequestID != nil {
		if err := s.requests.Exists(ctx, *req.RequestID); err != nil {
			return nil, err
		}
	}

	it := &Item{
		OwnerID:     req.OwnerID,
		Name:        name,
		Description: description,
		Available:   *req.Available,
		RequestID:   req.RequestID,
	}
	if err := s.repo.Create(ctx, it); err != nil {
		return nil, err
	}
	return it, nil
}

func (s *service) Update(ctx context.Context, ownerID, itemID int64, req UpdateRequest) (*Item, error) {
	if _, err := s.users.GetByID(ctx, ownerID); err != nil {
		return nil, err
	}
	it, err := s.repo.GetByID(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if it.OwnerID != ownerID {
		return nil, ErrNotOwner
	}

	if req.Name != nil {
		if name := strings.TrimSpace(*req.Name); name != "" {
			it.Name = name
		}
	}
	if req.Description != nil {
		if description := strings.TrimSpace(*req.Description); description != "" {
			it.Description = description
		}
	}
	if req.Available != nil {
		it.Available = *req.Available
	}

	if err := s.repo.Update(ctx, it); err != nil {
		return nil, err
	}
	return it, nil
}

func (s *service) GetByID(ctx context.Context, viewerID, itemID int64) (*Details, error) {
	if _, err := s.users.GetByID(ctx, viewerID); err != nil {
		return nil, err
	}
	it, err := s.repo.GetByID(ctx, itemID)
	if err != nil {
		return nil, err
	}

	details, err := s.details(ctx, []*Item{it}, it.OwnerID == viewerID)
	if err != nil {
		return nil, err
	}
	return details[0], nil
}

func (s *service) ListByOwner(ctx context.Context, ownerID int64, page pagination.OffsetPage) ([]*Details, error) {
	if _, err := s.users.GetByID(ctx, ownerID); err != nil {
		return nil, err
	}
	items, err := s.repo.ListByOwner(ctx, ownerID, page)
	if err != nil {
		return nil, err
	}
	return s.details(ctx, items, true)
}

func (s *service) Search(ctx context.Context, text string, page pagination.OffsetPage) ([]*Item, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return []*Item{}, nil
	}
	return s.repo.Search(ctx, text, page)
}

func (s *service) AddComment(ctx context.Context, req CommentRequest) (*Comment, error) {
	author, err := s.users.GetByID(ctx, req.AuthorID)
	if err != nil {
		return nil, err
	}
	if _, err := s.repo.GetByID(ctx, req.ItemID); err != nil {
		return nil, err
	}
	text := strings.TrimSpace(req.Text)
	if text == "" {
		return nil, ErrCommentTextRequired
	}

	ok, err := s.bookings.HasFinishedBooking(ctx, req.ItemID, req.AuthorID, s.now())
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrCommentNotAllowed
	}

	c := &Comment{
		ItemID:     req.ItemID,
		AuthorID:   author.ID,
		AuthorName: author.Name,
		Text:       text,
	}
	if err := s.repo.CreateComment(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// details attaches comments to every item and, for owners, the nearest bookings.
func (s *service) details(ctx context.Context, items []*Item, withBookings bool) ([]*Details, error) {
	out := make([]*Details, len(items))
	if len(items) == 0 {
		return out, nil
	}

	ids := make([]int64, len(items))
	byID := make(map[int64]*Details, len(items))
	for i, it := range items {
		ids[i] = it.ID
		out[i] = &Details{Item: it, Comments: []*Comment{}}
		byID[it.ID] = out[i]
	}

	comments, err := s.repo.ListComments(ctx, ids)
	if err != nil {
		return nil, err
	}
	for _, c := range comments {
		if d, ok := byID[c.ItemID]; ok {
			d.Comments = append(d.Comments, c)
		}
	}

	if !withBookings {
		return out, nil
	}
	nearest, err := s.bookings.Nearest(ctx, ids, s.now())
	if err != nil {
		return nil, err
	}
	for id, n := range nearest {
		if d, ok := byID[id]; ok {
			d.Last, d.Next = n.Last, n.Next
		}
	}
	return out, nil
}
