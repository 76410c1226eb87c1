package parallel

import "sync"

// DefaultSinkBuffer is the channel capacity used when none is configured.
const DefaultSinkBuffer = 1024

// ResultSink is a multi-producer, single-consumer channel. Every producer
// holds its own Producer handle; once Seal has been called and every handle
// is closed, the Results channel is closed and a range over it terminates
// without the consumer knowing how many values to expect.
type ResultSink[T any] struct {
	ch        chan T
	producers sync.WaitGroup

	mu     sync.Mutex
	sealed bool
}

// NewResultSink creates a sink whose channel has the given capacity.
// A non-positive capacity uses DefaultSinkBuffer.
func NewResultSink[T any](capacity int) *ResultSink[T] {
	if capacity <= 0 {
		capacity = DefaultSinkBuffer
	}
	return &ResultSink[T]{ch: make(chan T, capacity)}
}

// Producer registers a new producer handle. It panics if called after Seal,
// since the closer may already be waiting on a zero count.
func (s *ResultSink[T]) Producer() *Producer[T] {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.sealed {
		panic("parallel: Producer called on a sealed ResultSink")
	}
	s.producers.Add(1)
	return &Producer[T]{sink: s}
}

// Seal declares that no further producers will be registered. The channel is
// closed as soon as every registered producer has closed. Seal is idempotent.
func (s *ResultSink[T]) Seal() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.sealed {
		return
	}
	s.sealed = true
	go func() {
		s.producers.Wait()
		close(s.ch)
	}()
}

// Results returns the consuming side of the sink.
func (s *ResultSink[T]) Results() <-chan T {
	return s.ch
}

// Drain consumes every value until end-of-stream and returns the number of
// values seen. fn may be nil.
func (s *ResultSink[T]) Drain(fn func(T)) int {
	n := 0
	for v := range s.ch {
		if fn != nil {
			fn(v)
		}
		n++
	}
	return n
}

// Producer is one goroutine's handle on a ResultSink.
type Producer[T any] struct {
	sink *ResultSink[T]
	once sync.Once
}

// Send forwards v to the sink, blocking while the buffer is full.
// Send must not be called after Close.
func (p *Producer[T]) Send(v T) {
	p.sink.ch <- v
}

// Close releases the handle. Close is idempotent.
func (p *Producer[T]) Close() {
	p.once.Do(p.sink.producers.Done)
}
