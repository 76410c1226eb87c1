package parallel

import "sync"

// ErrorCollector keeps the first non-nil error reported by any number of
// goroutines. The zero value is ready to use.
type ErrorCollector struct {
	once sync.Once
	mu   sync.Mutex
	err  error
}

// SetError records err if it is the first non-nil error. Nil is ignored.
func (c *ErrorCollector) SetError(err error) {
	if err == nil {
		return
	}
	c.once.Do(func() {
		c.mu.Lock()
		c.err = err
		c.mu.Unlock()
	})
}

// Err returns the first recorded error, or nil.
func (c *ErrorCollector) Err() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.err
}
