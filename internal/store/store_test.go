package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ids(s *Store) []uint {
	var out []uint
	for _, msg := range s.Messages() {
		out = append(out, msg.ID)
	}
	return out
}

func TestAppendAndRemove(t *testing.T) {
	s := New()
	s.Load([]Message{{ID: 1}, {ID: 2}, {ID: 3}})

	s.Append(Message{ID: 7, Content: "hi", SenderID: 3, IsMine: true})
	require.Equal(t, 4, s.Len())

	last := s.Messages()[3]
	assert.Equal(t, uint(7), last.ID)
	assert.Equal(t, "hi", last.Content)
	assert.True(t, last.IsMine)

	s.Remove(2)
	assert.Equal(t, []uint{1, 3, 7}, ids(s))

	// removing an unknown id changes nothing
	s.Remove(99)
	assert.Equal(t, []uint{1, 3, 7}, ids(s))
}

func TestCommentRoundTrip(t *testing.T) {
	s := New()
	s.Load([]Message{{ID: 1}, {ID: 2}})

	s.SetComment(2, "nice")
	msg, ok := s.Get(2)
	require.True(t, ok)
	require.NotNil(t, msg.Comment)
	assert.Equal(t, "nice", *msg.Comment)
	assert.Equal(t, 2, s.Len())

	s.ClearComment(2)
	msg, ok = s.Get(2)
	require.True(t, ok)
	assert.Nil(t, msg.Comment)
	assert.Equal(t, 2, s.Len())

	// clearing twice stays a no-op
	s.ClearComment(2)
	msg, _ = s.Get(2)
	assert.Nil(t, msg.Comment)
}

func TestCommentUnknownID(t *testing.T) {
	s := New()
	s.Load([]Message{{ID: 1}})

	before := s.Messages()
	s.SetComment(99, "nice")
	assert.Equal(t, before, s.Messages())
}

func TestStageForward(t *testing.T) {
	s := New()
	s.Load([]Message{{ID: 1, Content: "hello"}})

	s.StageForward(1, "general")
	msg, _ := s.Get(1)
	assert.Equal(t, "general", msg.ForwardChatName)
	assert.Equal(t, "hello", msg.Content)

	s.ClearForward(1)
	msg, _ = s.Get(1)
	assert.Equal(t, "", msg.ForwardChatName)
}

func TestLoadReplacesAndClones(t *testing.T) {
	s := New()
	s.Load([]Message{{ID: 1}})

	src := []Message{{ID: 5}, {ID: 6}}
	s.Load(src)
	assert.Equal(t, []uint{5, 6}, ids(s))

	// mutating the caller's slice must not leak into the store
	src[0].Content = "changed"
	msg, _ := s.Get(5)
	assert.Equal(t, "", msg.Content)

	// and mutating a read copy must not either
	out := s.Messages()
	out[0].Content = "changed"
	msg, _ = s.Get(5)
	assert.Equal(t, "", msg.Content)
}
