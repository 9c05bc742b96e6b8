package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vvbakhanovich/shareit/internal/pkg/pagination"
)

func TestBuildListQuery(t *testing.T) {
	now := time.Date(2030, 5, 1, 12, 0, 0, 0, time.UTC)
	page, err := pagination.Of(20, 10)
	require.NoError(t, err)

	tests := []struct {
		name      string
		query     Query
		wantWhere string
		wantArgs  []any
	}{
		{
			name:      "BookerAll",
			query:     Query{Role: RoleBooker, UserID: 2, State: StateAll, Now: now},
			wantWhere: "WHERE b.booker_id = $1 ORDER BY",
			wantArgs:  []any{int64(2)},
		},
		{
			name:      "OwnerCurrent",
			query:     Query{Role: RoleOwner, UserID: 1, State: StateCurrent, Now: now},
			wantWhere: "WHERE i.owner_id = $1 AND (b.start_time <= $2 AND b.end_time >= $3)",
			wantArgs:  []any{int64(1), now, now},
		},
		{
			name:      "BookerPast",
			query:     Query{Role: RoleBooker, UserID: 2, State: StatePast, Now: now},
			wantWhere: "WHERE b.booker_id = $1 AND b.end_time < $2",
			wantArgs:  []any{int64(2), now},
		},
		{
			name:      "OwnerFuture",
			query:     Query{Role: RoleOwner, UserID: 1, State: StateFuture, Now: now},
			wantWhere: "WHERE i.owner_id = $1 AND b.start_time > $2",
			wantArgs:  []any{int64(1), now},
		},
		{
			name:      "BookerWaiting",
			query:     Query{Role: RoleBooker, UserID: 2, State: StateWaiting, Now: now},
			wantWhere: "WHERE b.booker_id = $1 AND b.status = $2",
			wantArgs:  []any{int64(2), "WAITING"},
		},
		{
			name:      "OwnerRejected",
			query:     Query{Role: RoleOwner, UserID: 1, State: StateRejected, Now: now},
			wantWhere: "WHERE i.owner_id = $1 AND b.status = $2",
			wantArgs:  []any{int64(1), "REJECTED"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sql, args, err := buildListQuery(tt.query, page)
			require.NoError(t, err)

			assert.Contains(t, sql, "FROM public.bookings b JOIN public.items i ON b.item_id = i.id")
			assert.Contains(t, sql, tt.wantWhere)
			assert.Contains(t, sql, "ORDER BY b.start_time DESC, b.id DESC")
			assert.Contains(t, sql, "LIMIT 10")
			assert.Contains(t, sql, "OFFSET 20")
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}

func TestBuildUpdateStatusQuery(t *testing.T) {
	query, args, err := buildUpdateStatusQuery(9, StatusWaiting, StatusApproved)
	require.NoError(t, err)

	assert.Equal(t, "UPDATE public.bookings SET status = $1 WHERE id = $2 AND status = $3", query)
	assert.Equal(t, []any{"APPROVED", int64(9), "WAITING"}, args)
}
