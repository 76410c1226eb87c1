package sampler

import "sync"

// ShutdownSignal is a one-shot stop flag guarded by a mutex. It starts false
// and may transition to true exactly once.
type ShutdownSignal struct {
	mu  sync.Mutex
	set bool
}

// Set raises the flag. It reports whether this call performed the
// false→true transition; a second Set returns false and changes nothing.
func (s *ShutdownSignal) Set() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.set {
		return false
	}
	s.set = true
	return true
}

// IsSet reports whether the flag has been raised.
func (s *ShutdownSignal) IsSet() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.set
}
