package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vvbakhanovich/shareit/internal/auth"
	"github.com/vvbakhanovich/shareit/internal/item"
	"github.com/vvbakhanovich/shareit/internal/pkg/request"
	"github.com/vvbakhanovich/shareit/internal/pkg/response"
)

type ItemHandler struct {
	service item.Service
}

func NewHandler(service item.Service) *ItemHandler {
	return &ItemHandler{service: service}
}

func (h *ItemHandler) Create(c *gin.Context) {
	var body CreateItemBody
	if err := c.ShouldBindJSON(&body); err != nil {
		response.BadRequest(c, "invalid request body", err)
		return
	}

	it, err := h.service.Create(c.Request.Context(), item.CreateRequest{
		OwnerID:     auth.GetUserID(c),
		Name:        body.Name,
		Description: body.Description,
		Available:   body.Available,
		RequestID:   body.RequestID,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, NewItemResponse(it))
}

// Update applies a partial update; only the owner may change an item.
func (h *ItemHandler) Update(c *gin.Context) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		response.BadRequest(c, "invalid request", err)
		return
	}
	var body UpdateItemBody
	if err := c.ShouldBindJSON(&body); err != nil {
		response.BadRequest(c, "invalid request body", err)
		return
	}

	it, err := h.service.Update(c.Request.Context(), auth.GetUserID(c), uri.ID, item.UpdateRequest{
		Name:        body.Name,
		Description: body.Description,
		Available:   body.Available,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewItemResponse(it))
}

func (h *ItemHandler) Get(c *gin.Context) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		response.BadRequest(c, "invalid request", err)
		return
	}

	d, err := h.service.GetByID(c.Request.Context(), auth.GetUserID(c), uri.ID)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewItemDetailsResponse(d))
}

// List returns the caller's own items with booking hints.
func (h *ItemHandler) List(c *gin.Context) {
	page, err := request.Page(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	details, err := h.service.ListByOwner(c.Request.Context(), auth.GetUserID(c), page)
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]ItemDetailsResponse, len(details))
	for i, d := range details {
		items[i] = NewItemDetailsResponse(d)
	}
	c.JSON(http.StatusOK, response.NewPageResponse(items, page))
}

func (h *ItemHandler) Search(c *gin.Context) {
	page, err := request.Page(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	found, err := h.service.Search(c.Request.Context(), c.Query("text"), page)
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]ItemResponse, len(found))
	for i, it := range found {
		items[i] = NewItemResponse(it)
	}
	c.JSON(http.StatusOK, response.NewPageResponse(items, page))
}

func (h *ItemHandler) AddComment(c *gin.Context) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		response.BadRequest(c, "invalid request", err)
		return
	}
	var body CommentBody
	if err := c.ShouldBindJSON(&body); err != nil {
		response.BadRequest(c, "invalid request body", err)
		return
	}

	comment, err := h.service.AddComment(c.Request.Context(), item.CommentRequest{
		AuthorID: auth.GetUserID(c),
		ItemID:   uri.ID,
		Text:     body.Text,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, NewCommentResponse(comment))
}
