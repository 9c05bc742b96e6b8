package item

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vvbakhanovich/shareit/internal/pkg/pagination"
)

func TestBuildSearchQuery(t *testing.T) {
	page, err := pagination.Of(20, 10)
	require.NoError(t, err)

	query, args, err := buildSearchQuery("50%_off", page)
	require.NoError(t, err)

	assert.Contains(t, query, "FROM public.items")
	assert.Contains(t, query, "available = $1")
	assert.Contains(t, query, "(name ILIKE $2 OR description ILIKE $3)")
	assert.Contains(t, query, "ORDER BY id")
	assert.Contains(t, query, "LIMIT 10")
	assert.Contains(t, query, "OFFSET 20")

	pattern := `%50\%\_off%`
	assert.Equal(t, []any{true, pattern, pattern}, args)
}
