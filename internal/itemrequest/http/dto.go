package http

import (
	"time"

	"github.com/vvbakhanovich/shareit/internal/itemrequest"
)

type CreateBody struct {
	Description string `json:"description" binding:"required"`
}

type AnswerResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Available   bool   `json:"available"`
	OwnerID     int64  `json:"ownerId"`
	RequestID   int64  `json:"requestId"`
}

type Response struct {
	ID          int64            `json:"id"`
	Description string           `json:"description"`
	Created     time.Time        `json:"created"`
	Items       []AnswerResponse `json:"items"`
}

func NewResponse(r *itemrequest.Request) Response {
	items := make([]AnswerResponse, 0, len(r.Answers))
	for _, a := range r.Answers {
		items = append(items, AnswerResponse{
			ID:          a.ItemID,
			Name:        a.Name,
			Description: a.Description,
			Available:   a.Available,
			OwnerID:     a.OwnerID,
			RequestID:   a.RequestID,
		})
	}
	return Response{
		ID:          r.ID,
		Description: r.Description,
		Created:     r.Created,
		Items:       items,
	}
}

func newResponses(requests []*itemrequest.Request) []Response {
	out := make([]Response, len(requests))
	for i, r := range requests {
		out[i] = NewResponse(r)
	}
	return out
}
