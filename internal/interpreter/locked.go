package interpreter

import (
	"sync"

	"github.com/hailam/duelrewind/internal/message"
)

// Locked wraps an Engine with a sync.RWMutex so a read-mostly workload —
// many concurrent CurrentState/TotalStates/board inspections alongside a
// single goroutine driving Forward/Backward — can share one engine safely.
// The Engine itself holds no lock; callers that only ever touch it from
// one goroutine can skip this wrapper entirely.
type Locked struct {
	mu     sync.RWMutex
	engine *Engine
}

// NewLocked wraps e for concurrent access.
func NewLocked(e *Engine) *Locked {
	return &Locked{engine: e}
}

// Forward and Backward take the write lock: they mutate the board.
func (l *Locked) Forward() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.engine.Forward()
}

func (l *Locked) Backward() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.engine.Backward()
}

// Append takes the write lock: it mutates the message log.
func (l *Locked) Append(m message.Any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.engine.Append(m)
}

// View runs fn with the read lock held, for callers that need a
// consistent multi-field read of the engine (e.g. CurrentState and
// TotalStates together) without an interleaved Forward/Backward.
func (l *Locked) View(fn func(e *Engine)) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	fn(l.engine)
}

// CurrentState, TotalStates, ProcessedStates, IsRealtime take the read
// lock for a single-field snapshot.
func (l *Locked) CurrentState() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.engine.CurrentState()
}

func (l *Locked) TotalStates() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.engine.TotalStates()
}

func (l *Locked) ProcessedStates() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.engine.ProcessedStates()
}

func (l *Locked) IsRealtime() bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.engine.IsRealtime()
}

// Messages returns the full recorded log, for checkpointing. The returned
// slice is owned by the engine and must not be mutated by the caller.
func (l *Locked) Messages() []message.Any {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.engine.Messages()
}
