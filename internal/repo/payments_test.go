package repo

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/CharansaiParvathala/saibalaji-project-pulse-23953396-sub000/internal/storage/memory"
	"github.com/CharansaiParvathala/saibalaji-project-pulse-23953396-sub000/internal/types"
)

func testRepos(t *testing.T) *Repositories {
	t.Helper()
	repos := New(memory.New(), "test")
	// Deterministic clock for history assertions.
	base := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)
	tick := 0
	repos.Payments.now = func() time.Time {
		tick++
		return base.Add(time.Duration(tick) * time.Minute)
	}
	return repos
}

func pendingRequest(id string) types.PaymentRequest {
	return types.PaymentRequest{
		ID:          id,
		ProjectID:   "proj1",
		Amount:      500,
		Purposes:    []types.PaymentPurpose{types.PurposeFuel, types.PurposeFood},
		Status:      types.PaymentPending,
		RequestedBy: "u1",
		RequestedAt: time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC),
	}
}

func TestSaveSynthesizesHistory(t *testing.T) {
	repos := testRepos(t)
	ctx := context.Background()

	saved, err := repos.Payments.Save(ctx, pendingRequest("p1"))
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if len(saved.StatusHistory) != 1 {
		t.Fatalf("history length = %d, want 1", len(saved.StatusHistory))
	}
	first := saved.StatusHistory[0]
	if first.Status != types.PaymentPending {
		t.Errorf("history[0].status = %s, want pending", first.Status)
	}
	if first.ChangedBy != "u1" {
		t.Errorf("history[0].changedBy = %s, want the requester", first.ChangedBy)
	}
	if !first.ChangedAt.Equal(saved.RequestedAt) {
		t.Errorf("history[0].changedAt = %s, want requestedAt", first.ChangedAt)
	}
}

func TestSaveKeepsProvidedHistory(t *testing.T) {
	repos := testRepos(t)
	ctx := context.Background()

	req := pendingRequest("p1")
	req.StatusHistory = []types.StatusChange{{Status: types.PaymentPending, ChangedBy: "importer", ChangedAt: req.RequestedAt}}
	saved, err := repos.Payments.Save(ctx, req)
	if err != nil {
		t.Fatal(err)
	}
	if len(saved.StatusHistory) != 1 || saved.StatusHistory[0].ChangedBy != "importer" {
		t.Errorf("provided history should be kept as-is, got %+v", saved.StatusHistory)
	}
}

func TestSaveRejectsInvalidRequests(t *testing.T) {
	repos := testRepos(t)
	ctx := context.Background()

	tests := []struct {
		name   string
		mutate func(*types.PaymentRequest)
	}{
		{"negative amount", func(r *types.PaymentRequest) { r.Amount = -10 }},
		{"empty purposes", func(r *types.PaymentRequest) { r.Purposes = nil }},
		{"unknown status", func(r *types.PaymentRequest) { r.Status = "limbo" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := pendingRequest("bad")
			tt.mutate(&req)
			if _, err := repos.Payments.Save(ctx, req); err == nil {
				t.Error("expected validation error, got nil")
			}
		})
	}
}

// The §8 example scenario: approve appends exactly one history entry
// attributed to the reviewer, and notifies the original requester.
func TestStatusChangeAppendsHistoryAndNotifies(t *testing.T) {
	repos := testRepos(t)
	ctx := context.Background()

	if _, err := repos.Payments.Save(ctx, pendingRequest("p1")); err != nil {
		t.Fatal(err)
	}

	updated, err := repos.Payments.Approve(ctx, "p1", "u2", "looks right")
	if err != nil {
		t.Fatalf("Approve: %v", err)
	}
	if updated.Status != types.PaymentApproved {
		t.Fatalf("status = %s, want approved", updated.Status)
	}
	if len(updated.StatusHistory) != 2 {
		t.Fatalf("history length = %d, want 2", len(updated.StatusHistory))
	}
	last := updated.StatusHistory[len(updated.StatusHistory)-1]
	if last.Status != types.PaymentApproved {
		t.Errorf("last history status = %s, want approved", last.Status)
	}
	if last.ChangedBy != "u2" {
		t.Errorf("last history changedBy = %s, want the reviewer u2", last.ChangedBy)
	}
	if last.Comments != "looks right" {
		t.Errorf("last history comments = %q", last.Comments)
	}

	notifications, err := repos.Notify.GetAll(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(notifications) != 1 {
		t.Fatalf("notification count = %d, want exactly 1", len(notifications))
	}
	n := notifications[0]
	if n.UserID != "u1" {
		t.Errorf("notification userId = %s, want the requester u1, not the reviewer", n.UserID)
	}
	if n.Type != types.NotifyPaymentStatus {
		t.Errorf("notification type = %s, want payment_status", n.Type)
	}
	if n.RelatedID != "p1" {
		t.Errorf("notification relatedId = %s, want p1", n.RelatedID)
	}
	if n.Title != "Payment Request Approved" {
		t.Errorf("notification title = %q", n.Title)
	}
	if !strings.Contains(n.Message, "500.00") || !strings.Contains(n.Message, "approved") {
		t.Errorf("notification message should carry amount and status, got %q", n.Message)
	}
}

func TestUnchangedStatusUpdateIsQuiet(t *testing.T) {
	repos := testRepos(t)
	ctx := context.Background()

	if _, err := repos.Payments.Save(ctx, pendingRequest("p1")); err != nil {
		t.Fatal(err)
	}
	if _, err := repos.Payments.Approve(ctx, "p1", "u2", ""); err != nil {
		t.Fatal(err)
	}

	// Second approve writes the same status again: plain field update.
	req, err := repos.Payments.GetByID(ctx, "p1")
	if err != nil {
		t.Fatal(err)
	}
	req.Description = "edited after approval"
	updated, err := repos.Payments.Update(ctx, req)
	if err != nil {
		t.Fatalf("same-status update: %v", err)
	}
	if len(updated.StatusHistory) != 2 {
		t.Errorf("history length = %d, want 2 (no append on unchanged status)", len(updated.StatusHistory))
	}
	if updated.Description != "edited after approval" {
		t.Error("field edit was lost")
	}

	notifications, _ := repos.Notify.GetAll(ctx)
	if len(notifications) != 1 {
		t.Errorf("notification count = %d, want still 1", len(notifications))
	}
}

func TestHistoryAppendOnlyAcrossLifecycle(t *testing.T) {
	repos := testRepos(t)
	ctx := context.Background()

	if _, err := repos.Payments.Save(ctx, pendingRequest("p1")); err != nil {
		t.Fatal(err)
	}

	prevLen := 1
	steps := []struct {
		act  func() (types.PaymentRequest, error)
		want types.PaymentStatus
	}{
		{func() (types.PaymentRequest, error) { return repos.Payments.Approve(ctx, "p1", "u2", "") }, types.PaymentApproved},
		{func() (types.PaymentRequest, error) {
			return repos.Payments.Schedule(ctx, "p1", "u2", time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC))
		}, types.PaymentScheduled},
		{func() (types.PaymentRequest, error) { return repos.Payments.ConfirmPaid(ctx, "p1", "u2") }, types.PaymentPaid},
	}
	for _, step := range steps {
		req, err := step.act()
		if err != nil {
			t.Fatal(err)
		}
		if len(req.StatusHistory) != prevLen+1 {
			t.Fatalf("history length = %d, want %d", len(req.StatusHistory), prevLen+1)
		}
		prevLen = len(req.StatusHistory)
		last := req.StatusHistory[prevLen-1]
		if last.Status != step.want || last.Status != req.Status {
			t.Errorf("last history entry %s should equal current status %s (want %s)", last.Status, req.Status, step.want)
		}
	}

	// Three real changes, three notifications, all to the requester.
	notifications, _ := repos.Notify.GetByUser(ctx, "u1")
	if len(notifications) != 3 {
		t.Errorf("notification count = %d, want 3", len(notifications))
	}
}

func TestHistoryCannotBeRewrittenByCaller(t *testing.T) {
	repos := testRepos(t)
	ctx := context.Background()

	if _, err := repos.Payments.Save(ctx, pendingRequest("p1")); err != nil {
		t.Fatal(err)
	}
	req, _ := repos.Payments.GetByID(ctx, "p1")
	req.StatusHistory = nil // caller tries to wipe the trail
	req.Status = types.PaymentApproved
	req.ReviewedBy = "u2"

	updated, err := repos.Payments.Update(ctx, req)
	if err != nil {
		t.Fatal(err)
	}
	if len(updated.StatusHistory) != 2 {
		t.Errorf("history length = %d, want 2 (stored history is the base)", len(updated.StatusHistory))
	}
}

func TestIllegalTransitions(t *testing.T) {
	tests := []struct {
		name    string
		prepare []types.PaymentStatus // statuses to walk through after pending
		attempt types.PaymentStatus
	}{
		{"pending cannot skip to paid", nil, types.PaymentPaid},
		{"pending cannot skip to scheduled", nil, types.PaymentScheduled},
		{"rejected is terminal", []types.PaymentStatus{types.PaymentRejected}, types.PaymentApproved},
		{"paid is terminal", []types.PaymentStatus{types.PaymentApproved, types.PaymentPaid}, types.PaymentPending},
		{"approved cannot go back", []types.PaymentStatus{types.PaymentApproved}, types.PaymentPending},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repos := testRepos(t)
			ctx := context.Background()
			if _, err := repos.Payments.Save(ctx, pendingRequest("p1")); err != nil {
				t.Fatal(err)
			}
			for _, s := range tt.prepare {
				req, _ := repos.Payments.GetByID(ctx, "p1")
				req.Status = s
				req.ReviewedBy = "u2"
				if _, err := repos.Payments.Update(ctx, req); err != nil {
					t.Fatalf("preparing %s: %v", s, err)
				}
			}
			before, _ := repos.Payments.GetByID(ctx, "p1")

			req := before
			req.Status = tt.attempt
			_, err := repos.Payments.Update(ctx, req)
			var terr *TransitionError
			if !errors.As(err, &terr) {
				t.Fatalf("Update = %v, want TransitionError", err)
			}
			if terr.From != before.Status || terr.To != tt.attempt {
				t.Errorf("TransitionError = %s -> %s, want %s -> %s", terr.From, terr.To, before.Status, tt.attempt)
			}

			// The record and its trail are untouched.
			after, _ := repos.Payments.GetByID(ctx, "p1")
			if after.Status != before.Status || len(after.StatusHistory) != len(before.StatusHistory) {
				t.Error("rejected transition must not change the record")
			}
		})
	}
}

func TestUpdateNotFoundPaymentRequest(t *testing.T) {
	repos := testRepos(t)
	_, err := repos.Payments.Update(context.Background(), pendingRequest("ghost"))
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Update = %v, want ErrNotFound", err)
	}
	notifications, _ := repos.Notify.GetAll(context.Background())
	if len(notifications) != 0 {
		t.Error("not-found update must not notify")
	}
}

func TestChangedBySystemWhenNoReviewer(t *testing.T) {
	repos := testRepos(t)
	ctx := context.Background()

	if _, err := repos.Payments.Save(ctx, pendingRequest("p1")); err != nil {
		t.Fatal(err)
	}
	req, _ := repos.Payments.GetByID(ctx, "p1")
	req.Status = types.PaymentApproved // no ReviewedBy set
	updated, err := repos.Payments.Update(ctx, req)
	if err != nil {
		t.Fatal(err)
	}
	last := updated.StatusHistory[len(updated.StatusHistory)-1]
	if last.ChangedBy != "system" {
		t.Errorf("changedBy = %q, want \"system\" when no reviewer is recorded", last.ChangedBy)
	}
}

func TestScheduleAndConfirmStampDates(t *testing.T) {
	repos := testRepos(t)
	ctx := context.Background()

	if _, err := repos.Payments.Save(ctx, pendingRequest("p1")); err != nil {
		t.Fatal(err)
	}
	if _, err := repos.Payments.Approve(ctx, "p1", "u2", ""); err != nil {
		t.Fatal(err)
	}
	when := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)
	scheduled, err := repos.Payments.Schedule(ctx, "p1", "u2", when)
	if err != nil {
		t.Fatal(err)
	}
	if scheduled.ScheduledDate == nil || !scheduled.ScheduledDate.Equal(when) {
		t.Errorf("scheduledDate = %v, want %s", scheduled.ScheduledDate, when)
	}

	paid, err := repos.Payments.ConfirmPaid(ctx, "p1", "u2")
	if err != nil {
		t.Fatal(err)
	}
	if paid.PaidDate == nil {
		t.Error("paidDate should be stamped on confirm")
	}
}

func TestGetByProject(t *testing.T) {
	repos := testRepos(t)
	ctx := context.Background()

	a := pendingRequest("a")
	b := pendingRequest("b")
	b.ProjectID = "proj2"
	for _, req := range []types.PaymentRequest{a, b} {
		if _, err := repos.Payments.Save(ctx, req); err != nil {
			t.Fatal(err)
		}
	}
	got, err := repos.Payments.GetByProject(ctx, "proj1")
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 || got[0].ID != "a" {
		t.Errorf("GetByProject = %+v, want only request a", got)
	}
}
