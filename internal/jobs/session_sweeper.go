package jobs

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/forgo/quest/api/internal/directory"
	"github.com/forgo/quest/api/internal/middleware"
)

// SessionSweeper periodically deactivates sessions whose end time has
// passed. Sweeps run through the same write gate as the HTTP handlers so a
// sweep never interleaves with a request's precondition checks and writes.
type SessionSweeper struct {
	sessions *directory.SessionDirectory
	gate     *middleware.Gate
	interval time.Duration
	stopCh   chan struct{}
	wg       sync.WaitGroup
	running  bool
	mu       sync.Mutex
}

// NewSessionSweeper creates a new session sweeper job
func NewSessionSweeper(sessions *directory.SessionDirectory, gate *middleware.Gate, interval time.Duration) *SessionSweeper {
	if interval == 0 {
		interval = 1 * time.Minute // Default check every minute
	}
	return &SessionSweeper{
		sessions: sessions,
		gate:     gate,
		interval: interval,
		stopCh:   make(chan struct{}),
	}
}

// Start begins the session sweeper job
func (s *SessionSweeper) Start() {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		return
	}
	s.running = true
	s.mu.Unlock()

	s.wg.Add(1)
	go s.run()
	log.Printf("Session sweeper started (interval: %v)", s.interval)
}

// Stop gracefully stops the session sweeper job
func (s *SessionSweeper) Stop() {
	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()
		return
	}
	s.running = false
	s.mu.Unlock()

	close(s.stopCh)
	s.wg.Wait()
	log.Println("Session sweeper stopped")
}

// run is the main loop
func (s *SessionSweeper) run() {
	defer s.wg.Done()

	// Delay the first sweep so startup finishes before any writes
	select {
	case <-time.After(5 * time.Second):
	case <-s.stopCh:
		return
	}
	s.sweep()

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.sweep()
		case <-s.stopCh:
			return
		}
	}
}

// sweep deactivates all ended sessions
func (s *SessionSweeper) sweep() {
	ctx, cancel := context.WithTimeout(context.Background(), 1*time.Minute)
	defer cancel()

	swept, err := s.RunOnce(ctx)
	if err != nil {
		log.Printf("Error sweeping ended sessions: %v", err)
		return
	}
	if len(swept) > 0 {
		log.Printf("Deactivated %d ended session(s): %v", len(swept), swept)
	}
}

// RunOnce performs a single sweep (for testing or manual trigger). It holds
// the write gate for the duration of the sweep.
func (s *SessionSweeper) RunOnce(ctx context.Context) ([]string, error) {
	var (
		swept []string
		err   error
	)
	s.gate.Do(func() {
		swept, err = s.sessions.DeactivateEnded(ctx, time.Now().UTC())
	})
	return swept, err
}

// IsRunning returns whether the sweeper is running
func (s *SessionSweeper) IsRunning() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.running
}
