package repo

import (
	"context"
	"fmt"

	"github.com/CharansaiParvathala/saibalaji-project-pulse-23953396-sub000/internal/types"
)

// ProgressEntries is the repository for daily field progress. Review
// helpers move an entry through the checker workflow; plain Update does
// not police the lock convention (see types.ProgressEntry.IsLocked).
type ProgressEntries struct {
	col *Collection[types.ProgressEntry]
}

// GetAll returns every progress entry in insertion order.
func (r *ProgressEntries) GetAll(ctx context.Context) ([]types.ProgressEntry, error) {
	return r.col.GetAll(ctx)
}

// GetByID returns the entry with the given id, or ErrNotFound.
func (r *ProgressEntries) GetByID(ctx context.Context, id string) (types.ProgressEntry, error) {
	return r.col.GetByID(ctx, id)
}

// GetByProject returns the entries recorded against one project, in
// insertion order.
func (r *ProgressEntries) GetByProject(ctx context.Context, projectID string) ([]types.ProgressEntry, error) {
	all, err := r.col.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	var out []types.ProgressEntry
	for _, e := range all {
		if e.ProjectID == projectID {
			out = append(out, e)
		}
	}
	return out, nil
}

// Save validates and appends a progress entry.
func (r *ProgressEntries) Save(ctx context.Context, e types.ProgressEntry) (types.ProgressEntry, error) {
	if e.Status == "" {
		e.Status = types.EntryDraft
	}
	if err := e.Validate(); err != nil {
		return e, fmt.Errorf("progress entry: %w", err)
	}
	return r.col.Save(ctx, e)
}

// Update replaces an entry. ErrNotFound when the id is absent.
func (r *ProgressEntries) Update(ctx context.Context, e types.ProgressEntry) (types.ProgressEntry, error) {
	if err := e.Validate(); err != nil {
		return e, fmt.Errorf("progress entry: %w", err)
	}
	return r.col.Update(ctx, e)
}

// Review records a checker decision on a submitted entry. Approval
// locks the entry; rejection and correction requests leave it editable.
func (r *ProgressEntries) Review(ctx context.Context, id string, decision types.EntryStatus, reviewedBy string) (types.ProgressEntry, error) {
	switch decision {
	case types.EntryApproved, types.EntryRejected, types.EntryCorrectionRequested:
	default:
		return types.ProgressEntry{}, fmt.Errorf("invalid review decision: %s", decision)
	}
	e, err := r.col.GetByID(ctx, id)
	if err != nil {
		return e, err
	}
	e.Status = decision
	e.ReviewedBy = reviewedBy
	if decision == types.EntryApproved {
		e.IsLocked = true
	}
	return r.col.Update(ctx, e)
}

// AttachPaymentRequest pushes a payment request id into the entry's
// back-reference list. The reference is soft; this helper just keeps it
// consistent in one place instead of every caller.
func (r *ProgressEntries) AttachPaymentRequest(ctx context.Context, entryID, paymentRequestID string) (types.ProgressEntry, error) {
	e, err := r.col.GetByID(ctx, entryID)
	if err != nil {
		return e, err
	}
	for _, existing := range e.PaymentRequests {
		if existing == paymentRequestID {
			return e, nil
		}
	}
	e.PaymentRequests = append(e.PaymentRequests, paymentRequestID)
	return r.col.Update(ctx, e)
}
