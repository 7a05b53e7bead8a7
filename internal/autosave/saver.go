package autosave

import (
	"context"
	"sync"
	"time"

	"pactum/api/internal/contract"
)

// SaveFunc persists a document state durably.
type SaveFunc func(ctx context.Context, doc contract.Document) error

// Saver debounces document edits: each Edit re-arms the timer, and the save
// only fires after the interval passes with no further edits. A failed save
// keeps the state and retries, so edits are never silently dropped.
type Saver struct {
	interval time.Duration
	retry    time.Duration
	save     SaveFunc
	onError  func(error)

	mu      sync.Mutex
	timer   *time.Timer
	pending *contract.Document
	stopped bool
}

// NewSaver builds a debounced saver. onError may be nil; it is called outside
// the saver's lock whenever a save attempt fails.
func NewSaver(interval time.Duration, save SaveFunc, onError func(error)) *Saver {
	if interval <= 0 {
		interval = 2 * time.Second
	}
	return &Saver{
		interval: interval,
		retry:    interval,
		save:     save,
		onError:  onError,
	}
}

// Edit records a new document state and re-arms the debounce timer.
func (s *Saver) Edit(doc contract.Document) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stopped {
		return
	}
	s.pending = &doc
	s.arm(s.interval)
}

// Flush saves any pending state immediately, bypassing the timer. It returns
// the save error, if any; on failure the state stays pending and the retry
// timer is armed.
func (s *Saver) Flush(ctx context.Context) error {
	s.mu.Lock()
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	doc := s.pending
	s.pending = nil
	s.mu.Unlock()

	if doc == nil {
		return nil
	}
	return s.attempt(ctx, *doc)
}

// Stop cancels any armed timer. Pending state is not saved; call Flush first
// on a clean shutdown.
func (s *Saver) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stopped = true
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
}

// arm must be called with the lock held.
func (s *Saver) arm(d time.Duration) {
	if s.timer != nil {
		s.timer.Stop()
	}
	s.timer = time.AfterFunc(d, s.fire)
}

func (s *Saver) fire() {
	s.mu.Lock()
	if s.stopped || s.pending == nil {
		s.mu.Unlock()
		return
	}
	doc := *s.pending
	s.pending = nil
	s.mu.Unlock()

	_ = s.attempt(context.Background(), doc)
}

func (s *Saver) attempt(ctx context.Context, doc contract.Document) error {
	err := s.save(ctx, doc)
	if err == nil {
		return nil
	}

	s.mu.Lock()
	// A newer edit arrived during the save; it supersedes the failed state.
	if s.pending == nil && !s.stopped {
		s.pending = &doc
		s.arm(s.retry)
	}
	s.mu.Unlock()

	if s.onError != nil {
		s.onError(err)
	}
	return err
}
