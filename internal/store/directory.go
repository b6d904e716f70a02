package store

import (
	"sync"

	"github.com/anurag-deore/ai-monitoring-analytics/internal/model"
)

// ChatDirectory is the list of known sessions. The backing slice is never
// modified after publication: every mutation builds a new slice and swaps it in,
// so a Snapshot stays consistent while writers proceed.
type ChatDirectory struct {
	mu       sync.Mutex
	entries  []model.ChatEntry
	onChange func()
}

func NewChatDirectory() *ChatDirectory {
	return &ChatDirectory{}
}

func (d *ChatDirectory) OnChange(fn func()) {
	d.mu.Lock()
	d.onChange = fn
	d.mu.Unlock()
}

// Snapshot returns the current entries, newest first. Callers must not modify it.
func (d *ChatDirectory) Snapshot() []model.ChatEntry {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.entries
}

// Prepend publishes a copy of the directory with entry at the head. An older
// entry with the same chat id is dropped.
func (d *ChatDirectory) Prepend(entry model.ChatEntry) {
	d.mu.Lock()
	next := make([]model.ChatEntry, 0, len(d.entries)+1)
	next = append(next, entry)
	for _, e := range d.entries {
		if e.ChatID != entry.ChatID {
			next = append(next, e)
		}
	}
	d.entries = next
	fn := d.onChange
	d.mu.Unlock()
	notify(fn)
}

// Remove publishes a copy of the directory without chatID. It reports whether an
// entry was removed.
func (d *ChatDirectory) Remove(chatID string) bool {
	d.mu.Lock()
	next := make([]model.ChatEntry, 0, len(d.entries))
	for _, e := range d.entries {
		if e.ChatID != chatID {
			next = append(next, e)
		}
	}
	removed := len(next) != len(d.entries)
	if removed {
		d.entries = next
	}
	fn := d.onChange
	d.mu.Unlock()
	if removed {
		notify(fn)
	}
	return removed
}

// Rename publishes a copy of the directory in which chatID carries title. It
// reports whether the entry was found.
func (d *ChatDirectory) Rename(chatID, title string) bool {
	d.mu.Lock()
	idx := -1
	for i, e := range d.entries {
		if e.ChatID == chatID {
			idx = i
			break
		}
	}
	if idx < 0 {
		d.mu.Unlock()
		return false
	}
	next := make([]model.ChatEntry, len(d.entries))
	copy(next, d.entries)
	next[idx].Title = title
	d.entries = next
	fn := d.onChange
	d.mu.Unlock()
	notify(fn)
	return true
}

// Replace publishes a copy of entries as the whole directory.
func (d *ChatDirectory) Replace(entries []model.ChatEntry) {
	next := make([]model.ChatEntry, len(entries))
	copy(next, entries)
	d.mu.Lock()
	d.entries = next
	fn := d.onChange
	d.mu.Unlock()
	notify(fn)
}

func (d *ChatDirectory) Contains(chatID string) bool {
	for _, e := range d.Snapshot() {
		if e.ChatID == chatID {
			return true
		}
	}
	return false
}
