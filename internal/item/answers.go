package item

import (
	"context"

	"github.com/vvbakhanovich/shareit/internal/itemrequest"
)

// RequestAnswers exposes items created in reply to item requests.
type RequestAnswers struct {
	repo Repository
}

func NewRequestAnswers(repo Repository) *RequestAnswers {
	return &RequestAnswers{repo: repo}
}

func (a *RequestAnswers) ListByRequestIDs(ctx context.Context, requestIDs []int64) ([]itemrequest.Answer, error) {
	items, err := a.repo.ListByRequestIDs(ctx, requestIDs)
	if err != nil {
		return nil, err
	}

	answers := make([]itemrequest.Answer, 0, len(items))
	for _, it := range items {
		if it.RequestID == nil {
			continue
		}
		answers = append(answers, itemrequest.Answer{
			ItemID:      it.ID,
			OwnerID:     it.OwnerID,
			Name:        it.Name,
			Description: it.Description,
			Available:   it.Available,
			RequestID:   *it.RequestID,
		})
	}
	return answers, nil
}
