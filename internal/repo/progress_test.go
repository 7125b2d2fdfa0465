package repo

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/CharansaiParvathala/saibalaji-project-pulse-23953396-sub000/internal/storage/memory"
	"github.com/CharansaiParvathala/saibalaji-project-pulse-23953396-sub000/internal/types"
)

func entry(id, projectID string) types.ProgressEntry {
	return types.ProgressEntry{
		ID:                id,
		ProjectID:         projectID,
		Date:              time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		DistanceCompleted: 150,
		TimeSpent:         8,
		WorkersPresent:    12,
		Status:            types.EntrySubmitted,
		SubmittedBy:       "u1",
	}
}

func TestSaveDefaultsToDraft(t *testing.T) {
	repos := New(memory.New(), "test")
	e := entry("e1", "proj1")
	e.Status = ""
	saved, err := repos.Progress.Save(context.Background(), e)
	if err != nil {
		t.Fatal(err)
	}
	if saved.Status != types.EntryDraft {
		t.Errorf("status = %s, want draft by default", saved.Status)
	}
}

func TestReviewApproveLocks(t *testing.T) {
	repos := New(memory.New(), "test")
	ctx := context.Background()

	if _, err := repos.Progress.Save(ctx, entry("e1", "proj1")); err != nil {
		t.Fatal(err)
	}
	reviewed, err := repos.Progress.Review(ctx, "e1", types.EntryApproved, "u2")
	if err != nil {
		t.Fatalf("Review: %v", err)
	}
	if reviewed.Status != types.EntryApproved {
		t.Errorf("status = %s, want approved", reviewed.Status)
	}
	if !reviewed.IsLocked {
		t.Error("approved entry should be locked")
	}
	if reviewed.ReviewedBy != "u2" {
		t.Errorf("reviewedBy = %s, want u2", reviewed.ReviewedBy)
	}
}

func TestReviewRejectDoesNotLock(t *testing.T) {
	repos := New(memory.New(), "test")
	ctx := context.Background()

	if _, err := repos.Progress.Save(ctx, entry("e1", "proj1")); err != nil {
		t.Fatal(err)
	}
	for _, decision := range []types.EntryStatus{types.EntryRejected, types.EntryCorrectionRequested} {
		reviewed, err := repos.Progress.Review(ctx, "e1", decision, "u2")
		if err != nil {
			t.Fatal(err)
		}
		if reviewed.IsLocked {
			t.Errorf("%s entry should stay editable", decision)
		}
	}
}

func TestReviewRejectsBadDecision(t *testing.T) {
	repos := New(memory.New(), "test")
	if _, err := repos.Progress.Review(context.Background(), "e1", types.EntryDraft, "u2"); err == nil {
		t.Error("draft is not a review decision")
	}
}

func TestReviewNotFound(t *testing.T) {
	repos := New(memory.New(), "test")
	_, err := repos.Progress.Review(context.Background(), "ghost", types.EntryApproved, "u2")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Review = %v, want ErrNotFound", err)
	}
}

func TestAttachPaymentRequest(t *testing.T) {
	repos := New(memory.New(), "test")
	ctx := context.Background()

	if _, err := repos.Progress.Save(ctx, entry("e1", "proj1")); err != nil {
		t.Fatal(err)
	}
	if _, err := repos.Progress.AttachPaymentRequest(ctx, "e1", "p1"); err != nil {
		t.Fatal(err)
	}
	// Attaching the same id twice keeps the list deduplicated.
	updated, err := repos.Progress.AttachPaymentRequest(ctx, "e1", "p1")
	if err != nil {
		t.Fatal(err)
	}
	if len(updated.PaymentRequests) != 1 || updated.PaymentRequests[0] != "p1" {
		t.Errorf("paymentRequests = %v, want [p1]", updated.PaymentRequests)
	}

	if _, err := repos.Progress.AttachPaymentRequest(ctx, "e1", "p2"); err != nil {
		t.Fatal(err)
	}
	final, _ := repos.Progress.GetByID(ctx, "e1")
	if len(final.PaymentRequests) != 2 {
		t.Errorf("paymentRequests = %v, want two ids", final.PaymentRequests)
	}
}

func TestGetByProjectProgress(t *testing.T) {
	repos := New(memory.New(), "test")
	ctx := context.Background()

	for _, e := range []types.ProgressEntry{entry("e1", "proj1"), entry("e2", "proj2"), entry("e3", "proj1")} {
		if _, err := repos.Progress.Save(ctx, e); err != nil {
			t.Fatal(err)
		}
	}
	got, err := repos.Progress.GetByProject(ctx, "proj1")
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 || got[0].ID != "e1" || got[1].ID != "e3" {
		t.Errorf("GetByProject = %+v, want [e1 e3]", got)
	}
}
