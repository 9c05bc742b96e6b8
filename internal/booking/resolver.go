package booking

import (
	"context"
	"time"

	"github.com/vvbakhanovich/shareit/internal/item"
)

// Resolve picks, among approved bookings, the one that started most recently
// at or before now and the one that starts soonest after now.
func Resolve(bookings []*Booking, now time.Time) (last, next *Booking) {
	for _, b := range bookings {
		if b.Status != StatusApproved {
			continue
		}
		if !b.Start.After(now) {
			if last == nil || b.Start.After(last.Start) {
				last = b
			}
			continue
		}
		if next == nil || b.Start.Before(next.Start) {
			next = b
		}
	}
	return last, next
}

// ItemBookings serves booking facts to the item module.
type ItemBookings struct {
	repo Repository
}

func NewItemBookings(repo Repository) *ItemBookings {
	return &ItemBookings{repo: repo}
}

func (a *ItemBookings) Nearest(ctx context.Context, itemIDs []int64, now time.Time) (map[int64]item.Nearest, error) {
	bookings, err := a.repo.ListByItemIDs(ctx, itemIDs)
	if err != nil {
		return nil, err
	}

	byItem := make(map[int64][]*Booking, len(itemIDs))
	for _, b := range bookings {
		byItem[b.ItemID] = append(byItem[b.ItemID], b)
	}

	out := make(map[int64]item.Nearest, len(byItem))
	for itemID, group := range byItem {
		last, next := Resolve(group, now)
		out[itemID] = item.Nearest{Last: toRef(last), Next: toRef(next)}
	}
	return out, nil
}

func (a *ItemBookings) HasFinishedBooking(ctx context.Context, itemID, bookerID int64, now time.Time) (bool, error) {
	bookings, err := a.repo.ListByItemAndBooker(ctx, itemID, bookerID)
	if err != nil {
		return false, err
	}
	for _, b := range bookings {
		if b.Status == StatusApproved && b.End.Before(now) {
			return true, nil
		}
	}
	return false, nil
}

func toRef(b *Booking) *item.BookingRef {
	if b == nil {
		return nil
	}
	return &item.BookingRef{ID: b.ID, BookerID: b.BookerID, Start: b.Start, End: b.End}
}
