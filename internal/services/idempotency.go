package services

import (
	"fmt"
	"sync"
	"time"

	"github.com/yukikurage/slack-task-bot/internal/constants"
)

// DedupeGuard suppresses duplicate task creations inside a short window.
// Slack retries slash commands on slow responses and users double-submit
// modals; both arrive within seconds of the original.
type DedupeGuard struct {
	mu      sync.Mutex
	window  time.Duration
	entries map[string]dedupeEntry
	now     func() time.Time
}

type dedupeEntry struct {
	taskID uint64
	at     time.Time
}

// NewDedupeGuard creates a guard with the default window.
func NewDedupeGuard() *DedupeGuard {
	return &DedupeGuard{
		window:  constants.DedupeWindow,
		entries: make(map[string]dedupeEntry),
		now:     time.Now,
	}
}

// Acquire claims a key. The first caller gets (0, false) and owns the
// creation; later callers inside the window get the recorded task ID (0 while
// the first creation is still in flight) and true.
func (g *DedupeGuard) Acquire(key string) (uint64, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()

	now := g.now()
	for k, e := range g.entries {
		if now.Sub(e.at) >= g.window {
			delete(g.entries, k)
		}
	}

	if e, ok := g.entries[key]; ok {
		return e.taskID, true
	}

	g.entries[key] = dedupeEntry{at: now}
	return 0, false
}

// Mark records the task created under a claimed key so duplicates can return it.
func (g *DedupeGuard) Mark(key string, taskID uint64) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if e, ok := g.entries[key]; ok {
		e.taskID = taskID
		g.entries[key] = e
	}
}

// Release frees a claimed key after a failed creation so a retry can proceed.
func (g *DedupeGuard) Release(key string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	delete(g.entries, key)
}

// SubmissionDedupeKey derives a dedupe key for the modal path, which has no
// trigger ID at submission time.
func SubmissionDedupeKey(userID, title, dueDate string) string {
	return fmt.Sprintf("submit|%s|%s|%s", userID, title, dueDate)
}
