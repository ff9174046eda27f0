package sproute

import "sync"

// History is the pushState/popstate analog: an entry stack with a cursor.
// Entries are stored as given (path plus any "?query").
//
// A mutex guards the stack only because host environments may drive
// navigation from their own goroutines; the App itself serializes
// navigation events.
type History struct {
	mu      sync.Mutex
	entries []string
	cur     int // index of the current entry; -1 when empty
}

// NewHistory creates an empty history.
func NewHistory() *History {
	return &History{cur: -1}
}

// Push appends a new entry after the current one, discarding any forward
// entries, and makes it current.
func (h *History) Push(entry string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.entries = append(h.entries[:h.cur+1], entry)
	h.cur = len(h.entries) - 1
}

// Replace swaps the current entry in place. On an empty history it behaves
// like Push.
func (h *History) Replace(entry string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.cur < 0 {
		h.entries = append(h.entries, entry)
		h.cur = 0
		return
	}

	h.entries[h.cur] = entry
}

// Back moves the cursor one entry back and returns the new current entry.
// It reports false, without moving, when already at the oldest entry.
func (h *History) Back() (string, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.cur <= 0 {
		return "", false
	}

	h.cur--
	return h.entries[h.cur], true
}

// Forward moves the cursor one entry forward and returns the new current
// entry. It reports false, without moving, when already at the newest entry.
func (h *History) Forward() (string, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.cur < 0 || h.cur >= len(h.entries)-1 {
		return "", false
	}

	h.cur++
	return h.entries[h.cur], true
}

// Current returns the current entry, or "" when the history is empty.
func (h *History) Current() string {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.cur < 0 {
		return ""
	}

	return h.entries[h.cur]
}

// Len returns the number of entries.
func (h *History) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()

	return len(h.entries)
}
