// Package state persists the generation backend/model selection as a flat
// key=value record. The record is tiny and rewritten whole on every change;
// there is no versioning or migration.
package state

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/hashicorp/go-hclog"

	"github.com/madder-sh/madder/internal/util/xdg"
)

// Backend identifies which Google GenAI surface generation requests go to.
type Backend string

const (
	// BackendGeminiAPI uses the public Gemini API with an API key.
	BackendGeminiAPI Backend = "gemini-api"

	// BackendVertexAI uses Vertex AI with a project and location.
	BackendVertexAI Backend = "vertex-ai"
)

// Backends returns the fixed backend enumeration in selection order.
func Backends() []Backend {
	return []Backend{BackendGeminiAPI, BackendVertexAI}
}

// ParseBackend validates a backend string.
func ParseBackend(s string) (Backend, error) {
	for _, b := range Backends() {
		if Backend(s) == b {
			return b, nil
		}
	}
	return "", fmt.Errorf("unknown backend %q (valid: gemini-api, vertex-ai)", s)
}

// Record is the persisted selection. Model may be empty, meaning the
// backend's default model.
type Record struct {
	Backend      Backend
	Model        string
	BackendIndex int
	ModelIndex   int
}

// DefaultRecord returns the selection used when no record exists yet.
func DefaultRecord() *Record {
	return &Record{Backend: BackendGeminiAPI}
}

// Validate checks the record before it is persisted.
func (r *Record) Validate() error {
	if _, err := ParseBackend(string(r.Backend)); err != nil {
		return err
	}
	if r.BackendIndex < 0 || r.ModelIndex < 0 {
		return fmt.Errorf("selection indices must not be negative (backend_index=%d, model_index=%d)", r.BackendIndex, r.ModelIndex)
	}
	return nil
}

// encode renders the record in its on-disk form. Field order is fixed so
// the file is stable across rewrites.
func (r *Record) encode() []byte {
	var b strings.Builder
	fmt.Fprintf(&b, "backend=%s\n", r.Backend)
	fmt.Fprintf(&b, "model=%s\n", r.Model)
	fmt.Fprintf(&b, "backend_index=%d\n", r.BackendIndex)
	fmt.Fprintf(&b, "model_index=%d\n", r.ModelIndex)
	return []byte(b.String())
}

// Store reads and writes the selection record. Implementations are not
// safe for concurrent use; racing writers interleave on the file, which is
// accepted for a single-user desktop tool.
type Store interface {
	Load() (*Record, error)
	Save(*Record) error
}

// FileStore persists the record at a fixed path.
type FileStore struct {
	path   string
	logger hclog.Logger
}

// NewFileStore creates a store for the given path.
func NewFileStore(path string, logger hclog.Logger) *FileStore {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &FileStore{path: path, logger: logger}
}

// DefaultPath returns the XDG state location of the record,
// ~/.local/state/madder/generation.conf unless XDG_STATE_HOME overrides
// the base.
func DefaultPath() (string, error) {
	dir, err := xdg.StateDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "generation.conf"), nil
}

// Path returns the file path this store reads and writes.
func (s *FileStore) Path() string {
	return s.path
}

// Load reads the record. A missing file yields the defaults; an unknown
// backend or malformed index is an error.
func (s *FileStore) Load() (*Record, error) {
	content, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			s.logger.Debug("no generation record, using defaults", "path", s.path)
			return DefaultRecord(), nil
		}
		return nil, fmt.Errorf("failed to read generation record: %w", err)
	}

	record := DefaultRecord()
	for lineNum, line := range strings.Split(string(content), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		parts := strings.SplitN(line, "=", 2)
		if len(parts) != 2 {
			return nil, fmt.Errorf("line %d: invalid format, expected 'key=value'", lineNum+1)
		}
		key := strings.TrimSpace(parts[0])
		value := strings.TrimSpace(parts[1])

		switch key {
		case "backend":
			backend, err := ParseBackend(value)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNum+1, err)
			}
			record.Backend = backend
		case "model":
			record.Model = value
		case "backend_index":
			idx, err := strconv.Atoi(value)
			if err != nil {
				return nil, fmt.Errorf("line %d: invalid backend_index %q", lineNum+1, value)
			}
			record.BackendIndex = idx
		case "model_index":
			idx, err := strconv.Atoi(value)
			if err != nil {
				return nil, fmt.Errorf("line %d: invalid model_index %q", lineNum+1, value)
			}
			record.ModelIndex = idx
		default:
			// Unknown keys are skipped rather than rejected, so a record
			// written by a newer build still loads.
			s.logger.Debug("ignoring unknown key in generation record", "key", key)
		}
	}

	return record, nil
}

// Save writes the record through a temp file in the same directory, so a
// crash mid-write never leaves a torn record behind.
func (s *FileStore) Save(record *Record) error {
	if err := record.Validate(); err != nil {
		return err
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create state directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".generation-*.conf")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(record.encode()); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("failed to write generation record: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	if err := os.Rename(tmpPath, s.path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to replace generation record: %w", err)
	}

	s.logger.Debug("generation record saved",
		"path", s.path,
		"backend", record.Backend,
		"model", record.Model)

	return nil
}
