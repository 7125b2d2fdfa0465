package export

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/CharansaiParvathala/saibalaji-project-pulse-23953396-sub000/internal/repo"
	"github.com/CharansaiParvathala/saibalaji-project-pulse-23953396-sub000/internal/storage/memory"
	"github.com/CharansaiParvathala/saibalaji-project-pulse-23953396-sub000/internal/types"
)

func seed(t *testing.T, repos *repo.Repositories) {
	t.Helper()
	ctx := context.Background()
	if _, err := repos.Projects.Save(ctx, types.Project{ID: "pr1", Name: "NH-44", Status: types.ProjectActive}); err != nil {
		t.Fatal(err)
	}
	if _, err := repos.Payments.Save(ctx, types.PaymentRequest{
		ID:          "p1",
		ProjectID:   "pr1",
		Amount:      900,
		Purposes:    []types.PaymentPurpose{types.PurposeLabour},
		Status:      types.PaymentPending,
		RequestedBy: "u1",
		RequestedAt: time.Date(2024, 6, 1, 8, 0, 0, 0, time.UTC),
	}); err != nil {
		t.Fatal(err)
	}
}

func TestExportImportRoundTrip(t *testing.T) {
	store := memory.New()
	repos := repo.New(store, "ns")
	seed(t, repos)
	ctx := context.Background()
	dir := t.TempDir()

	n, err := ExportAll(ctx, store, "ns", dir)
	if err != nil {
		t.Fatalf("ExportAll: %v", err)
	}
	if n != 2 {
		t.Errorf("exported %d records, want 2", n)
	}

	// One file per non-empty collection, one line per record.
	data, err := os.ReadFile(filepath.Join(dir, "payment-requests.jsonl"))
	if err != nil {
		t.Fatalf("reading export: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 1 {
		t.Errorf("payment-requests.jsonl has %d lines, want 1", len(lines))
	}
	if _, err := os.Stat(filepath.Join(dir, "users.jsonl")); !os.IsNotExist(err) {
		t.Error("empty collections should not produce files")
	}

	// Import into a fresh namespace and compare.
	fresh := memory.New()
	imported, err := ImportAll(ctx, fresh, "ns", dir)
	if err != nil {
		t.Fatalf("ImportAll: %v", err)
	}
	if imported != 2 {
		t.Errorf("imported %d records, want 2", imported)
	}

	freshRepos := repo.New(fresh, "ns")
	req, err := freshRepos.Payments.GetByID(ctx, "p1")
	if err != nil {
		t.Fatalf("GetByID after import: %v", err)
	}
	if req.Amount != 900 || len(req.StatusHistory) != 1 {
		t.Errorf("imported request = %+v, want the original with its history", req)
	}
	project, err := freshRepos.Projects.GetByID(ctx, "pr1")
	if err != nil {
		t.Fatal(err)
	}
	if project.Name != "NH-44" {
		t.Errorf("imported project = %+v", project)
	}
}

func TestImportRejectsInvalidPaymentRequests(t *testing.T) {
	dir := t.TempDir()
	bad := `{"id":"p1","projectId":"pr1","amount":-5,"purposes":["fuel"],"status":"pending","requestedBy":"u1"}`
	if err := os.WriteFile(filepath.Join(dir, "payment-requests.jsonl"), []byte(bad+"\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	store := memory.New()
	_, err := ImportAll(context.Background(), store, "ns", dir)
	if err == nil {
		t.Fatal("expected validation error for negative amount")
	}
	if !strings.Contains(err.Error(), "amount") {
		t.Errorf("error = %v, want amount validation", err)
	}
	// Nothing may have been written.
	data, _ := store.Read(context.Background(), "ns-payment-requests")
	if data != nil {
		t.Error("failed import must not write the collection")
	}
}

func TestImportRejectsMalformedLines(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "users.jsonl"), []byte("{broken\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err := ImportAll(context.Background(), memory.New(), "ns", dir)
	if err == nil || !strings.Contains(err.Error(), "invalid JSON") {
		t.Errorf("ImportAll = %v, want invalid JSON error", err)
	}
}

func TestImportSkipsMissingFiles(t *testing.T) {
	n, err := ImportAll(context.Background(), memory.New(), "ns", t.TempDir())
	if err != nil {
		t.Fatalf("ImportAll on empty dir: %v", err)
	}
	if n != 0 {
		t.Errorf("imported %d records from empty dir", n)
	}
}
