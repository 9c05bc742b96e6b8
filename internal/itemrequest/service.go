package itemrequest

import (
	"context"
	"strings"

	"github.com/vvbakhanovich/shareit/internal/pkg/pagination"
	"github.com/vvbakhanovich/shareit/internal/user"
)

// UserLookup resolves the acting user; an unknown id yields user.ErrNotFound.
type UserLookup interface {
	GetByID(ctx context.Context, id int64) (*user.User, error)
}

// AnswerSource lists the items created in reply to the given requests.
type AnswerSource interface {
	ListByRequestIDs(ctx context.Context, requestIDs []int64) ([]Answer, error)
}

type CreateRequest struct {
	RequesterID int64
	Description string
}

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*Request, error)
	ListOwn(ctx context.Context, requesterID int64) ([]*Request, error)
	ListOthers(ctx context.Context, userID int64, page pagination.OffsetPage) ([]*Request, error)
	GetByID(ctx context.Context, userID, requestID int64) (*Request, error)
	// Exists reports ErrNotFound for an unknown request id.
	Exists(ctx context.Context, requestID int64) error
}

type service struct {
	repo    Repository
	users   UserLookup
	answers AnswerSource
}

func NewService(repo Repository, users UserLookup, answers AnswerSource) Service {
	return &service{
		repo:    repo,
		users:   users,
		answers: answers,
	}
}

func (s *service) Create(ctx context.Context, req CreateRequest) (*Request, error) {
	if _, err := s.users.GetByID(ctx, req.RequesterID); err != nil {
		return nil, err
	}
	description := strings.TrimSpace(req.Description)
	if description == "" {
		return nil, ErrDescriptionRequired
	}

	r := &Request{RequesterID: req.RequesterID, Description: description}
	if err := s.repo.Create(ctx, r); err != nil {
		return nil, err
	}
	r.Answers = []Answer{}
	return r, nil
}

func (s *service) ListOwn(ctx context.Context, requesterID int64) ([]*Request, error) {
	if _, err := s.users.GetByID(ctx, requesterID); err != nil {
		return nil, err
	}
	requests, err := s.repo.ListByRequester(ctx, requesterID)
	if err != nil {
		return nil, err
	}
	return requests, s.attachAnswers(ctx, requests)
}

func (s *service) ListOthers(ctx context.Context, userID int64, page pagination.OffsetPage) ([]*Request, error) {
	if _, err := s.users.GetByID(ctx, userID); err != nil {
		return nil, err
	}
	requests, err := s.repo.ListOthers(ctx, userID, page)
	if err != nil {
		return nil, err
	}
	return requests, s.attachAnswers(ctx, requests)
}

func (s *service) GetByID(ctx context.Context, userID, requestID int64) (*Request, error) {
	if _, err := s.users.GetByID(ctx, userID); err != nil {
		return nil, err
	}
	r, err := s.repo.GetByID(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if err := s.attachAnswers(ctx, []*Request{r}); err != nil {
		return nil, err
	}
	return r, nil
}

func (s *service) Exists(ctx context.Context, requestID int64) error {
	_, err := s.repo.GetByID(ctx, requestID)
	return err
}

// attachAnswers loads answers for all requests in one round trip.
func (s *service) attachAnswers(ctx context.Context, requests []*Request) error {
	if len(requests) == 0 {
		return nil
	}

	ids := make([]int64, len(requests))
	byID := make(map[int64]*Request, len(requests))
	for i, r := range requests {
		ids[i] = r.ID
		r.Answers = []Answer{}
		byID[r.ID] = r
	}

	answers, err := s.answers.ListByRequestIDs(ctx, ids)
	if err != nil {
		return err
	}
	for _, a := range answers {
		if r, ok := byID[a.RequestID]; ok {
			r.Answers = append(r.Answers, a)
		}
	}
	return nil
}
