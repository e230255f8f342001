// Package jsonfile persists entity documents as flat JSON files. Each store
// owns one document on disk; every operation is a full read-modify-write
// cycle serialised by a per-document mutex, so the file stays the single
// source of truth between requests.
package jsonfile

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/Hritesh-panda/rolebasedauthorization/internal/api/metrics"
	"github.com/Hritesh-panda/rolebasedauthorization/internal/core/domain"
)

// store is the shared load/save cycle over one JSON document.
type store struct {
	path string
	name string // document label for errors and metrics
	mu   sync.Mutex
}

// read unmarshals the whole document into v. A missing file surfaces as
// os.ErrNotExist (callers decide whether that means auto-init or failure);
// unparseable content surfaces as domain.ErrStoreCorrupt.
func (s *store) read(v any) error {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		return fmt.Errorf("read %s store: %w", s.name, err)
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return fmt.Errorf("%w: %s store: %v", domain.ErrStoreCorrupt, s.name, err)
	}
	return nil
}

// write rewrites the whole document. The content lands in a temp file first
// and is renamed into place, so a crashed writer cannot leave a half-written
// document behind.
func (s *store) write(v any) error {
	start := time.Now()

	raw, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s store: %w", s.name, err)
	}
	raw = append(raw, '\n')

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("write %s store: %w", s.name, err)
	}

	tmp, err := os.CreateTemp(dir, "."+s.name+"-*.json")
	if err != nil {
		return fmt.Errorf("write %s store: %w", s.name, err)
	}
	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("write %s store: %w", s.name, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("write %s store: %w", s.name, err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("write %s store: %w", s.name, err)
	}

	metrics.StoreRewriteDuration.WithLabelValues(s.name).Observe(time.Since(start).Seconds())
	return nil
}
