package reload

// MemorySignal is an in-memory Signal for tests. It counts reload requests
// and can be scripted to fail.
type MemorySignal struct {
	// Reloads is the number of times Reload has been called.
	Reloads int

	// Err, when set, is returned by every Reload call.
	Err error
}

// Reload records the request.
func (s *MemorySignal) Reload() error {
	s.Reloads++
	return s.Err
}
