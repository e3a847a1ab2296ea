package wallpaper

import "context"

// MemoryStore is an in-memory Store for tests and dry runs. It records every
// SetActive call in order.
type MemoryStore struct {
	active  string
	history []string

	// ActiveErr and SetErr, when set, are returned by the corresponding
	// calls to exercise failure paths.
	ActiveErr error
	SetErr    error
}

// NewMemoryStore creates a MemoryStore with the given active wallpaper.
func NewMemoryStore(active string) *MemoryStore {
	return &MemoryStore{active: active}
}

// Name identifies the store.
func (s *MemoryStore) Name() string { return "memory" }

// Running always reports true.
func (s *MemoryStore) Running(context.Context) bool { return true }

// Active returns the stored active path.
func (s *MemoryStore) Active(context.Context) (string, error) {
	if s.ActiveErr != nil {
		return "", s.ActiveErr
	}
	return s.active, nil
}

// SetActive stores the new active path.
func (s *MemoryStore) SetActive(_ context.Context, path string) error {
	if s.SetErr != nil {
		return s.SetErr
	}
	s.active = path
	s.history = append(s.history, path)
	return nil
}

// History returns every path passed to SetActive, oldest first.
func (s *MemoryStore) History() []string { return s.history }
