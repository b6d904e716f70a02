package store

import (
	"sync"

	"github.com/anurag-deore/ai-monitoring-analytics/internal/model"
)

// MessageStore is the ordered log of the active session's turns. Entries are only
// appended, replaced wholesale, or reconciled in place by message id; they are
// never reordered.
type MessageStore struct {
	mu       sync.RWMutex
	messages []model.Message
	index    map[string]int
	onChange func()
}

func NewMessageStore() *MessageStore {
	return &MessageStore{index: make(map[string]int)}
}

// OnChange registers fn to be called after every mutation. fn runs outside the
// store's lock.
func (s *MessageStore) OnChange(fn func()) {
	s.mu.Lock()
	s.onChange = fn
	s.mu.Unlock()
}

// AppendPair appends a user turn immediately followed by its bot turn.
func (s *MessageStore) AppendPair(user, bot model.Message) {
	s.mu.Lock()
	s.index[user.ID] = len(s.messages)
	s.messages = append(s.messages, user)
	s.index[bot.ID] = len(s.messages)
	s.messages = append(s.messages, bot)
	fn := s.onChange
	s.mu.Unlock()
	notify(fn)
}

// Resolve settles the pending message id with the backend's result. It reports
// false when the message is no longer in the store.
func (s *MessageStore) Resolve(id, content string, result *model.QueryResult) bool {
	return s.settle(id, func(m *model.Message) {
		m.Content = content
		m.Response = result
	})
}

// Fail settles the pending message id with a failure text and no result.
func (s *MessageStore) Fail(id, content string) bool {
	return s.settle(id, func(m *model.Message) {
		m.Content = content
		m.Response = nil
	})
}

func (s *MessageStore) settle(id string, apply func(*model.Message)) bool {
	s.mu.Lock()
	i, ok := s.index[id]
	if !ok {
		s.mu.Unlock()
		return false
	}
	apply(&s.messages[i])
	s.messages[i].Pending = false
	fn := s.onChange
	s.mu.Unlock()
	notify(fn)
	return true
}

// Replace discards every entry and installs messages in their given order.
func (s *MessageStore) Replace(messages []model.Message) {
	s.mu.Lock()
	s.messages = make([]model.Message, len(messages))
	copy(s.messages, messages)
	s.index = make(map[string]int, len(messages))
	for i, m := range s.messages {
		s.index[m.ID] = i
	}
	fn := s.onChange
	s.mu.Unlock()
	notify(fn)
}

// Messages returns a copy of the log in insertion order.
func (s *MessageStore) Messages() []model.Message {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Message, len(s.messages))
	copy(out, s.messages)
	return out
}

func (s *MessageStore) Get(id string) (model.Message, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i, ok := s.index[id]
	if !ok {
		return model.Message{}, false
	}
	return s.messages[i], true
}

func (s *MessageStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.messages)
}

// PendingCount returns the number of bot turns still awaiting a result.
func (s *MessageStore) PendingCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	n := 0
	for _, m := range s.messages {
		if m.Pending {
			n++
		}
	}
	return n
}

func notify(fn func()) {
	if fn != nil {
		fn()
	}
}
