package response

import "github.com/vvbakhanovich/shareit/internal/pkg/pagination"

// PageResponse is the standard wrapper for list endpoints.
type PageResponse[T any] struct {
	Items []T `json:"items"`
	From  int `json:"from"`
	Size  int `json:"size"`
	Page  int `json:"page"`
}

// NewPageResponse is a helper to quickly create a response
func NewPageResponse[T any](items []T, page pagination.OffsetPage) PageResponse[T] {
	// Handle empty slice to avoid JSON outputting null
	if items == nil {
		items = make([]T, 0)
	}

	return PageResponse[T]{
		Items: items,
		From:  page.Offset(),
		Size:  page.Size(),
		Page:  page.PageNumber(),
	}
}
