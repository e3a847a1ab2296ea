package state

// MemoryStore is an in-memory Store for tests and previews. The zero value
// loads the defaults.
type MemoryStore struct {
	Record  *Record
	LoadErr error
	SaveErr error
	Saves   int
}

// NewMemoryStore creates a store seeded with the given record.
func NewMemoryStore(record *Record) *MemoryStore {
	return &MemoryStore{Record: record}
}

// Load returns a copy of the held record, or the defaults when empty.
func (s *MemoryStore) Load() (*Record, error) {
	if s.LoadErr != nil {
		return nil, s.LoadErr
	}
	if s.Record == nil {
		return DefaultRecord(), nil
	}
	copied := *s.Record
	return &copied, nil
}

// Save validates and stores a copy of the record.
func (s *MemoryStore) Save(record *Record) error {
	s.Saves++
	if s.SaveErr != nil {
		return s.SaveErr
	}
	if err := record.Validate(); err != nil {
		return err
	}
	copied := *record
	s.Record = &copied
	return nil
}
