// Package export dumps and loads collections as JSONL, one file per
// collection, one record per line. The dump is a plain-text snapshot
// suitable for backups and for keeping alongside the books in git.
package export

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/CharansaiParvathala/saibalaji-project-pulse-23953396-sub000/internal/repo"
	"github.com/CharansaiParvathala/saibalaji-project-pulse-23953396-sub000/internal/storage"
	"github.com/CharansaiParvathala/saibalaji-project-pulse-23953396-sub000/internal/types"
)

// ExportAll writes every collection under the namespace to dir as
// <name>.jsonl. Empty collections produce no file. Returns the total
// number of records written.
func ExportAll(ctx context.Context, store storage.Store, namespace, dir string) (int, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return 0, fmt.Errorf("creating export directory: %w", err)
	}

	total := 0
	for _, name := range repo.CollectionNames {
		data, err := store.Read(ctx, repo.CollectionKey(namespace, name))
		if err != nil {
			return total, fmt.Errorf("reading %s: %w", name, err)
		}
		if len(data) == 0 {
			continue
		}
		var records []json.RawMessage
		if err := json.Unmarshal(data, &records); err != nil {
			// Corrupt collection reads as empty, same as everywhere else.
			continue
		}
		if len(records) == 0 {
			continue
		}

		n, err := writeJSONL(filepath.Join(dir, name+".jsonl"), records)
		if err != nil {
			return total, fmt.Errorf("exporting %s: %w", name, err)
		}
		total += n
	}
	return total, nil
}

func writeJSONL(path string, records []json.RawMessage) (int, error) {
	f, err := os.Create(path)
	if err != nil {
		return 0, err
	}
	defer func() { _ = f.Close() }()

	w := bufio.NewWriter(f)
	for _, rec := range records {
		line, err := compactLine(rec)
		if err != nil {
			return 0, err
		}
		if _, err := w.WriteString(line + "\n"); err != nil {
			return 0, err
		}
	}
	if err := w.Flush(); err != nil {
		return 0, err
	}
	return len(records), nil
}

func compactLine(rec json.RawMessage) (string, error) {
	var buf strings.Builder
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(rec); err != nil {
		return "", err
	}
	return strings.TrimRight(buf.String(), "\n"), nil
}

// ImportAll reads <name>.jsonl files from dir and replaces the matching
// collections. Payment requests are validated line by line before
// anything is written, so a bad dump cannot half-replace the books.
// Returns the total number of records imported.
func ImportAll(ctx context.Context, store storage.Store, namespace, dir string) (int, error) {
	total := 0
	for _, name := range repo.CollectionNames {
		path := filepath.Join(dir, name+".jsonl")
		records, err := readJSONL(path)
		if os.IsNotExist(err) {
			continue
		}
		if err != nil {
			return total, fmt.Errorf("importing %s: %w", name, err)
		}

		if name == repo.PaymentRequestsCollection {
			if err := validatePaymentLines(records); err != nil {
				return total, fmt.Errorf("importing %s: %w", name, err)
			}
		}

		data, err := json.Marshal(records)
		if err != nil {
			return total, fmt.Errorf("importing %s: %w", name, err)
		}
		if err := store.Write(ctx, repo.CollectionKey(namespace, name), data); err != nil {
			return total, fmt.Errorf("importing %s: %w", name, err)
		}
		total += len(records)
	}
	return total, nil
}

func readJSONL(path string) ([]json.RawMessage, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	records := []json.RawMessage{}
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if !json.Valid([]byte(line)) {
			return nil, fmt.Errorf("line %d: invalid JSON", lineNo)
		}
		records = append(records, json.RawMessage(line))
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return records, nil
}

func validatePaymentLines(records []json.RawMessage) error {
	for i, rec := range records {
		var req types.PaymentRequest
		if err := json.Unmarshal(rec, &req); err != nil {
			return fmt.Errorf("line %d: %w", i+1, err)
		}
		if err := req.Validate(); err != nil {
			return fmt.Errorf("line %d (%s): %w", i+1, req.ID, err)
		}
	}
	return nil
}
