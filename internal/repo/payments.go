package repo

import (
	"context"
	"fmt"
	"time"

	"github.com/CharansaiParvathala/saibalaji-project-pulse-23953396-sub000/internal/ids"
	"github.com/CharansaiParvathala/saibalaji-project-pulse-23953396-sub000/internal/types"
)

// systemActor is recorded as changedBy when a status change carries no
// reviewer.
const systemActor = "system"

// TransitionError reports an attempt to move a payment request along an
// edge the transition table does not allow.
type TransitionError struct {
	ID   string
	From types.PaymentStatus
	To   types.PaymentStatus
}

func (e *TransitionError) Error() string {
	if e.From.IsTerminal() {
		return fmt.Sprintf("payment request %s: status %q is terminal, cannot change to %q", e.ID, e.From, e.To)
	}
	return fmt.Sprintf("payment request %s: illegal status transition %q -> %q", e.ID, e.From, e.To)
}

// PaymentRequests is the repository for payment requests. Its update
// path embeds the lifecycle manager: it validates status transitions,
// appends audit entries and emits notifications.
type PaymentRequests struct {
	col    *Collection[types.PaymentRequest]
	notify *Notifications
	now    func() time.Time
}

// GetAll returns every payment request in insertion order.
func (r *PaymentRequests) GetAll(ctx context.Context) ([]types.PaymentRequest, error) {
	return r.col.GetAll(ctx)
}

// GetByID returns the payment request with the given id, or ErrNotFound.
func (r *PaymentRequests) GetByID(ctx context.Context, id string) (types.PaymentRequest, error) {
	return r.col.GetByID(ctx, id)
}

// GetByProject returns the requests raised against one project, in
// insertion order.
func (r *PaymentRequests) GetByProject(ctx context.Context, projectID string) ([]types.PaymentRequest, error) {
	all, err := r.col.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	var out []types.PaymentRequest
	for _, req := range all {
		if req.ProjectID == projectID {
			out = append(out, req)
		}
	}
	return out, nil
}

// Save creates a payment request. If the incoming status history is
// absent, a single entry mirroring the creation status is synthesized so
// the audit trail always starts at statusHistory[0].
func (r *PaymentRequests) Save(ctx context.Context, req types.PaymentRequest) (types.PaymentRequest, error) {
	if req.Status == "" {
		req.Status = types.PaymentPending
	}
	if err := req.Validate(); err != nil {
		return req, fmt.Errorf("payment request: %w", err)
	}
	if req.RequestedAt.IsZero() {
		req.RequestedAt = r.now()
	}
	if len(req.StatusHistory) == 0 {
		req.StatusHistory = []types.StatusChange{{
			Status:    req.Status,
			ChangedBy: req.RequestedBy,
			ChangedAt: req.RequestedAt,
		}}
	}
	return r.col.Save(ctx, req)
}

// Update persists changes to a payment request.
//
// When the status is unchanged this is a plain field update: no history
// entry, no notification. When the status changes, the transition is
// checked against the transition table, one audit entry is appended and
// exactly one notification is emitted to the original requester (not the
// reviewer). The stored history is always the base for the append, so
// the trail stays append-only no matter what the caller passes in.
func (r *PaymentRequests) Update(ctx context.Context, req types.PaymentRequest) (types.PaymentRequest, error) {
	if err := req.Validate(); err != nil {
		return req, fmt.Errorf("payment request: %w", err)
	}

	old, err := r.col.GetByID(ctx, req.ID)
	if err != nil {
		return req, err
	}

	req.StatusHistory = old.StatusHistory
	if req.Status == old.Status {
		return r.col.Update(ctx, req)
	}

	if !old.Status.CanTransitionTo(req.Status) {
		return req, &TransitionError{ID: req.ID, From: old.Status, To: req.Status}
	}

	changedBy := req.ReviewedBy
	if changedBy == "" {
		changedBy = systemActor
	}
	req.StatusHistory = append(req.StatusHistory, types.StatusChange{
		Status:    req.Status,
		ChangedBy: changedBy,
		ChangedAt: r.now(),
		Comments:  req.Comments,
	})

	updated, err := r.col.Update(ctx, req)
	if err != nil {
		return updated, err
	}

	// Address the requester, not the reviewer who made the change.
	notification := types.Notification{
		ID:        ids.New(),
		UserID:    old.RequestedBy,
		Type:      types.NotifyPaymentStatus,
		Title:     "Payment Request " + req.Status.Label(),
		Message:   fmt.Sprintf("Your payment request for ₹%.2f is now %s.", req.Amount, req.Status),
		RelatedID: req.ID,
		CreatedAt: r.now(),
	}
	if _, err := r.notify.Save(ctx, notification); err != nil {
		return updated, fmt.Errorf("notifying %s: %w", old.RequestedBy, err)
	}
	return updated, nil
}

// Approve moves a pending request to approved.
func (r *PaymentRequests) Approve(ctx context.Context, id, reviewedBy, comments string) (types.PaymentRequest, error) {
	return r.review(ctx, id, types.PaymentApproved, reviewedBy, comments)
}

// Reject moves a pending request to rejected. Rejected is terminal.
func (r *PaymentRequests) Reject(ctx context.Context, id, reviewedBy, comments string) (types.PaymentRequest, error) {
	return r.review(ctx, id, types.PaymentRejected, reviewedBy, comments)
}

// Schedule moves an approved request to scheduled for payment on date.
func (r *PaymentRequests) Schedule(ctx context.Context, id, reviewedBy string, date time.Time) (types.PaymentRequest, error) {
	req, err := r.col.GetByID(ctx, id)
	if err != nil {
		return req, err
	}
	req.Status = types.PaymentScheduled
	req.ReviewedBy = reviewedBy
	req.ScheduledDate = &date
	return r.Update(ctx, req)
}

// ConfirmPaid moves an approved or scheduled request to paid and stamps
// the paid date. Paid is terminal.
func (r *PaymentRequests) ConfirmPaid(ctx context.Context, id, reviewedBy string) (types.PaymentRequest, error) {
	req, err := r.col.GetByID(ctx, id)
	if err != nil {
		return req, err
	}
	now := r.now()
	req.Status = types.PaymentPaid
	req.ReviewedBy = reviewedBy
	req.PaidDate = &now
	return r.Update(ctx, req)
}

func (r *PaymentRequests) review(ctx context.Context, id string, to types.PaymentStatus, reviewedBy, comments string) (types.PaymentRequest, error) {
	req, err := r.col.GetByID(ctx, id)
	if err != nil {
		return req, err
	}
	now := r.now()
	req.Status = to
	req.ReviewedBy = reviewedBy
	req.ReviewedAt = &now
	if comments != "" {
		req.Comments = comments
	}
	return r.Update(ctx, req)
}
