package store_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anurag-deore/ai-monitoring-analytics/internal/model"
	"github.com/anurag-deore/ai-monitoring-analytics/internal/store"
)

func pair(n string) (model.Message, model.Message) {
	now := time.Now()
	return model.Message{ID: "u" + n, Role: model.RoleUser, Content: "q" + n, Timestamp: now},
		model.Message{ID: "b" + n, Role: model.RoleBot, Query: "q" + n, Timestamp: now, Pending: true}
}

func TestMessageStore_AppendPairKeepsOrder(t *testing.T) {
	s := store.NewMessageStore()
	u1, b1 := pair("1")
	u2, b2 := pair("2")
	s.AppendPair(u1, b1)
	s.AppendPair(u2, b2)

	msgs := s.Messages()
	require.Len(t, msgs, 4)
	assert.Equal(t, []string{"u1", "b1", "u2", "b2"}, []string{msgs[0].ID, msgs[1].ID, msgs[2].ID, msgs[3].ID})
	assert.Equal(t, 2, s.PendingCount())
}

func TestMessageStore_ResolveByIdentity(t *testing.T) {
	s := store.NewMessageStore()
	u1, b1 := pair("1")
	u2, b2 := pair("2")
	s.AppendPair(u1, b1)
	s.AppendPair(u2, b2)

	result := &model.QueryResult{Success: true, Summary: "second"}
	require.True(t, s.Resolve("b2", "second", result))

	first, _ := s.Get("b1")
	second, _ := s.Get("b2")
	assert.True(t, first.Pending)
	assert.Empty(t, first.Content)
	assert.False(t, second.Pending)
	assert.Equal(t, "second", second.Content)
	assert.Same(t, result, second.Response)
}

func TestMessageStore_FailClearsResponse(t *testing.T) {
	s := store.NewMessageStore()
	u, b := pair("1")
	s.AppendPair(u, b)

	require.True(t, s.Fail("b1", "sorry"))
	got, ok := s.Get("b1")
	require.True(t, ok)
	assert.False(t, got.Pending)
	assert.Nil(t, got.Response)
	assert.Equal(t, "sorry", got.Content)
}

func TestMessageStore_SettleAfterReplaceIsDropped(t *testing.T) {
	s := store.NewMessageStore()
	u, b := pair("1")
	s.AppendPair(u, b)

	s.Replace([]model.Message{{ID: "other", Role: model.RoleUser}})

	assert.False(t, s.Resolve("b1", "late", &model.QueryResult{}))
	assert.False(t, s.Fail("b1", "late"))
	assert.Equal(t, 1, s.Len())
}

func TestMessageStore_OnChange(t *testing.T) {
	s := store.NewMessageStore()
	calls := 0
	s.OnChange(func() { calls++ })

	u, b := pair("1")
	s.AppendPair(u, b)
	s.Resolve("b1", "x", nil)
	s.Resolve("missing", "x", nil)
	s.Replace(nil)

	assert.Equal(t, 3, calls)
}

func TestChatDirectory_CopyOnWrite(t *testing.T) {
	d := store.NewChatDirectory()
	d.Replace([]model.ChatEntry{{ChatID: "a"}, {ChatID: "b"}})

	before := d.Snapshot()
	d.Prepend(model.ChatEntry{ChatID: "c"})
	require.True(t, d.Remove("a"))

	assert.Equal(t, []model.ChatEntry{{ChatID: "a"}, {ChatID: "b"}}, before)
	assert.Equal(t, []model.ChatEntry{{ChatID: "c"}, {ChatID: "b"}}, d.Snapshot())
}

func TestChatDirectory_PrependDeduplicates(t *testing.T) {
	d := store.NewChatDirectory()
	d.Replace([]model.ChatEntry{{ChatID: "a", Query: "old"}, {ChatID: "b"}})

	d.Prepend(model.ChatEntry{ChatID: "b", Query: "new"})

	assert.Equal(t, []model.ChatEntry{{ChatID: "b", Query: "new"}, {ChatID: "a", Query: "old"}}, d.Snapshot())
}

func TestChatDirectory_RemoveUnknown(t *testing.T) {
	d := store.NewChatDirectory()
	d.Replace([]model.ChatEntry{{ChatID: "a"}})

	assert.False(t, d.Remove("zzz"))
	assert.True(t, d.Contains("a"))
}

func TestChatDirectory_RenameCopiesOnWrite(t *testing.T) {
	d := store.NewChatDirectory()
	d.Replace([]model.ChatEntry{{ChatID: "a"}, {ChatID: "b"}})
	before := d.Snapshot()

	require.True(t, d.Rename("b", "Failed payments"))
	assert.False(t, d.Rename("zzz", "nope"))

	assert.Empty(t, before[1].Title)
	assert.Equal(t, []model.ChatEntry{{ChatID: "a"}, {ChatID: "b", Title: "Failed payments"}}, d.Snapshot())
}
