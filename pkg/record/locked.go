package record

import "sync"

// Locked guards a Record with a read-write mutex. Each call holds the lock
// for the duration of one operation.
type Locked struct {
	mu  sync.RWMutex
	rec *Record
}

// NewLocked wraps r. The caller must stop using r directly.
func NewLocked(r *Record) *Locked {
	return &Locked{rec: r}
}

func (l *Locked) Get(field string) (any, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.rec.Get(field)
}

func (l *Locked) Set(field string, value any) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.rec.Set(field, value)
}

func (l *Locked) Values() map[string]any {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.rec.Values()
}

// Update runs fn with exclusive access, for read-modify-write sequences.
func (l *Locked) Update(fn func(r *Record) error) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return fn(l.rec)
}
