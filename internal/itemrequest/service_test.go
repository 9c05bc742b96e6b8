package itemrequest

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vvbakhanovich/shareit/internal/pkg/pagination"
	"github.com/vvbakhanovich/shareit/internal/user"
)

type fakeUsers map[int64]*user.User

func (f fakeUsers) GetByID(_ context.Context, id int64) (*user.User, error) {
	if u, ok := f[id]; ok {
		return u, nil
	}
	return nil, user.ErrNotFound
}

type fakeRepo struct {
	requests []*Request
}

func (r *fakeRepo) Create(_ context.Context, req *Request) error {
	req.ID = int64(len(r.requests) + 1)
	req.Created = time.Now().Add(time.Duration(req.ID) * time.Second)
	r.requests = append(r.requests, req)
	return nil
}

func (r *fakeRepo) GetByID(_ context.Context, id int64) (*Request, error) {
	for _, req := range r.requests {
		if req.ID == id {
			cp := *req
			return &cp, nil
		}
	}
	return nil, ErrNotFound
}

func (r *fakeRepo) ListByRequester(_ context.Context, requesterID int64) ([]*Request, error) {
	var out []*Request
	for i := len(r.requests) - 1; i >= 0; i-- {
		if r.requests[i].RequesterID == requesterID {
			cp := *r.requests[i]
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeRepo) ListOthers(_ context.Context, requesterID int64, page pagination.OffsetPage) ([]*Request, error) {
	var all []*Request
	for i := len(r.requests) - 1; i >= 0; i-- {
		if r.requests[i].RequesterID != requesterID {
			cp := *r.requests[i]
			all = append(all, &cp)
		}
	}
	lo := min(page.Offset(), len(all))
	hi := min(lo+page.Size(), len(all))
	return all[lo:hi], nil
}

type fakeAnswers []Answer

func (f fakeAnswers) ListByRequestIDs(_ context.Context, ids []int64) ([]Answer, error) {
	want := make(map[int64]bool, len(ids))
	for _, id := range ids {
		want[id] = true
	}
	var out []Answer
	for _, a := range f {
		if want[a.RequestID] {
			out = append(out, a)
		}
	}
	return out, nil
}

func newTestService() (Service, *fakeRepo) {
	repo := &fakeRepo{}
	users := fakeUsers{1: {ID: 1, Name: "asker"}, 2: {ID: 2, Name: "owner"}}
	answers := fakeAnswers{{ItemID: 10, OwnerID: 2, Name: "drill", Available: true, RequestID: 1}}
	return NewService(repo, users, answers), repo
}

func TestService_Create(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService()

	r, err := svc.Create(ctx, CreateRequest{RequesterID: 1, Description: " need a drill "})
	require.NoError(t, err)
	assert.Equal(t, "need a drill", r.Description)
	assert.NotNil(t, r.Answers)

	_, err = svc.Create(ctx, CreateRequest{RequesterID: 1, Description: "  "})
	assert.ErrorIs(t, err, ErrDescriptionRequired)

	_, err = svc.Create(ctx, CreateRequest{RequesterID: 99, Description: "x"})
	assert.ErrorIs(t, err, user.ErrNotFound)
}

func TestService_Listing(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService()

	_, err := svc.Create(ctx, CreateRequest{RequesterID: 1, Description: "drill"})
	require.NoError(t, err)
	_, err = svc.Create(ctx, CreateRequest{RequesterID: 1, Description: "ladder"})
	require.NoError(t, err)
	_, err = svc.Create(ctx, CreateRequest{RequesterID: 2, Description: "tent"})
	require.NoError(t, err)

	own, err := svc.ListOwn(ctx, 1)
	require.NoError(t, err)
	require.Len(t, own, 2)
	assert.Equal(t, "ladder", own[0].Description, "newest first")
	assert.Len(t, own[1].Answers, 1)
	assert.Empty(t, own[0].Answers)

	page, _ := pagination.Of(0, 10)
	others, err := svc.ListOthers(ctx, 2, page)
	require.NoError(t, err)
	assert.Len(t, others, 2)

	page, _ = pagination.Of(1, 10)
	others, err = svc.ListOthers(ctx, 2, page)
	require.NoError(t, err)
	assert.Len(t, others, 1)

	got, err := svc.GetByID(ctx, 2, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(10), got.Answers[0].ItemID)

	_, err = svc.GetByID(ctx, 2, 42)
	assert.ErrorIs(t, err, ErrNotFound)

	assert.NoError(t, svc.Exists(ctx, 1))
	assert.ErrorIs(t, svc.Exists(ctx, 42), ErrNotFound)
}
