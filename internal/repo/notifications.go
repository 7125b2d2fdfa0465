package repo

import (
	"context"
	"errors"

	"github.com/CharansaiParvathala/saibalaji-project-pulse-23953396-sub000/internal/types"
)

// Notifications is the repository for in-app notifications. Creation is
// append-only; the only mutation is marking a notification read.
type Notifications struct {
	col *Collection[types.Notification]
}

// GetAll returns every notification in insertion order.
func (r *Notifications) GetAll(ctx context.Context) ([]types.Notification, error) {
	return r.col.GetAll(ctx)
}

// GetByUser returns the notifications addressed to one user, in
// insertion order. Callers sort chronologically if they need to.
func (r *Notifications) GetByUser(ctx context.Context, userID string) ([]types.Notification, error) {
	all, err := r.col.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	var out []types.Notification
	for _, n := range all {
		if n.UserID == userID {
			out = append(out, n)
		}
	}
	return out, nil
}

// Save appends a notification.
func (r *Notifications) Save(ctx context.Context, n types.Notification) (types.Notification, error) {
	return r.col.Save(ctx, n)
}

// MarkRead sets isRead on the notification with the given id and
// persists it. Marking an absent id is a no-op.
func (r *Notifications) MarkRead(ctx context.Context, id string) error {
	n, err := r.col.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil
		}
		return err
	}
	if n.IsRead {
		return nil
	}
	n.IsRead = true
	_, err = r.col.Update(ctx, n)
	return err
}
