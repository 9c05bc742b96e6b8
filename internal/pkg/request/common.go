package request

import (
	"github.com/gin-gonic/gin"

	"github.com/vvbakhanovich/shareit/internal/pkg/pagination"
)

const (
	DefaultFrom = "0"
	DefaultSize = "10"
)

// ByIDRequest is a common struct for endpoints that require an ID path parameter.
type ByIDRequest struct {
	ID int64 `uri:"id" binding:"required,min=1"`
}

// Page reads the offset pagination query parameters ("from", "size").
// Missing parameters fall back to the defaults; malformed ones fail.
func Page(c *gin.Context) (pagination.OffsetPage, error) {
	return pagination.Parse(c.DefaultQuery("from", DefaultFrom), c.DefaultQuery("size", DefaultSize))
}
