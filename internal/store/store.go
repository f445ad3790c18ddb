// Package store keeps the ordered message sequence of the active chat.
package store

import "sync"

// Message is one entry of the local conversation view.
type Message struct {
	ID       uint
	ChatID   uint
	SenderID uint
	Content  string
	IsMine   bool
	Comment  *string
	// ForwardChatName is staged locally until the forward is submitted;
	// it is never part of the message state on the server.
	ForwardChatName string
}

// Store holds the messages of one chat in display order. Every mutation
// happens as a single step under the lock, so concurrent readers observe
// either the previous or the next state, never a partial one.
type Store struct {
	mu       sync.RWMutex
	messages []Message
}

func New() *Store {
	return &Store{}
}

// Load replaces the whole sequence with a copy of msgs.
func (s *Store) Load(msgs []Message) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.messages = make([]Message, len(msgs))
	copy(s.messages, msgs)
}

// Append adds a message to the end of the sequence.
func (s *Store) Append(msg Message) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.messages = append(s.messages, msg)
}

// Remove drops the message with the given id, if present.
func (s *Store) Remove(id uint) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, msg := range s.messages {
		if msg.ID == id {
			s.messages = append(s.messages[:i], s.messages[i+1:]...)
			return
		}
	}
}

// SetComment sets the comment of the message with the given id.
// Unknown ids are ignored: the comment then exists only server-side.
func (s *Store) SetComment(id uint, text string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.messages {
		if s.messages[i].ID == id {
			s.messages[i].Comment = &text
			return
		}
	}
}

// ClearComment removes the comment of the message with the given id.
func (s *Store) ClearComment(id uint) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.messages {
		if s.messages[i].ID == id {
			s.messages[i].Comment = nil
			return
		}
	}
}

// StageForward records the forward target typed for a message.
func (s *Store) StageForward(id uint, chatName string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.messages {
		if s.messages[i].ID == id {
			s.messages[i].ForwardChatName = chatName
			return
		}
	}
}

// ClearForward resets the staged forward target of a message.
func (s *Store) ClearForward(id uint) {
	s.StageForward(id, "")
}

// Get returns a copy of the message with the given id.
func (s *Store) Get(id uint) (Message, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, msg := range s.messages {
		if msg.ID == id {
			return msg, true
		}
	}
	return Message{}, false
}

// Messages returns a copy of the sequence in display order.
func (s *Store) Messages() []Message {
	s.mu.RLock()
	defer s.mu.RUnlock()

	cloned := make([]Message, len(s.messages))
	copy(cloned, s.messages)
	return cloned
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.messages)
}
