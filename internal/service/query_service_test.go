package service_test

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/anurag-deore/ai-monitoring-analytics/internal/backend/mocks"
	app_errors "github.com/anurag-deore/ai-monitoring-analytics/internal/errors"
	"github.com/anurag-deore/ai-monitoring-analytics/internal/model"
	"github.com/anurag-deore/ai-monitoring-analytics/internal/service"
	"github.com/anurag-deore/ai-monitoring-analytics/internal/store"
)

type fakeNavigator struct {
	mu    sync.Mutex
	id    string
	token uint64
}

func (n *fakeNavigator) Navigation() (string, uint64) {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.id, n.token
}

func (n *fakeNavigator) SetSessionIDIf(token uint64, id string) bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	if token != n.token {
		return false
	}
	n.id = id
	return true
}

// navigate simulates the user opening another chat.
func (n *fakeNavigator) navigate(id string) {
	n.mu.Lock()
	n.token++
	n.id = id
	n.mu.Unlock()
}

func (n *fakeNavigator) SessionID() string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.id
}

type queryFixture struct {
	svc       *service.QueryService
	client    *mocks.MockClient
	messages  *store.MessageStore
	directory *store.ChatDirectory
	nav       *fakeNavigator
}

func setupQueryService(t *testing.T) queryFixture {
	f := queryFixture{
		client:    mocks.NewMockClient(t),
		messages:  store.NewMessageStore(),
		directory: store.NewChatDirectory(),
		nav:       &fakeNavigator{},
	}
	f.svc = service.NewQueryService(f.client, f.messages, f.directory, f.nav)
	return f
}

func forQuery(q string) any {
	return mock.MatchedBy(func(r *model.QueryRequest) bool { return r.Query == q })
}

func waitDone(t *testing.T, sub *service.Submission) {
	t.Helper()
	select {
	case <-sub.Done():
	case <-time.After(2 * time.Second):
		t.Fatal("submission did not settle")
	}
}

func TestQueryService_Submit_AppendsPairBeforeResponse(t *testing.T) {
	f := setupQueryService(t)
	gate := make(chan struct{})

	f.client.On("SubmitQuery", mock.Anything, forQuery("total volume")).
		Run(func(args mock.Arguments) { <-gate }).
		Return(&model.QueryResult{Success: true, Summary: "42 transactions"}, nil).Once()

	sub := f.svc.Submit(context.Background(), "total volume", "chat-1")
	require.NotNil(t, sub)

	msgs := f.messages.Messages()
	require.Len(t, msgs, 2)
	assert.Equal(t, model.RoleUser, msgs[0].Role)
	assert.Equal(t, "total volume", msgs[0].Content)
	assert.False(t, msgs[0].Pending)
	assert.Equal(t, model.RoleBot, msgs[1].Role)
	assert.True(t, msgs[1].Pending)
	assert.Equal(t, sub.BotID, msgs[1].ID)

	close(gate)
	waitDone(t, sub)

	bot, ok := f.messages.Get(sub.BotID)
	require.True(t, ok)
	assert.False(t, bot.Pending)
	assert.Equal(t, "42 transactions", bot.Content)
	require.NotNil(t, bot.Response)
	assert.Equal(t, "42 transactions", bot.Response.Summary)
}

func TestQueryService_Submit_BlankQueryIsNoop(t *testing.T) {
	f := setupQueryService(t)

	for _, q := range []string{"", "   ", "\n\t"} {
		assert.Nil(t, f.svc.Submit(context.Background(), q, ""))
	}

	assert.Equal(t, 0, f.messages.Len())
	f.client.AssertNotCalled(t, "SubmitQuery", mock.Anything, mock.Anything)
}

func TestQueryService_Submit_RequestPayload(t *testing.T) {
	t.Run("Existing session", func(t *testing.T) {
		f := setupQueryService(t)
		f.client.On("SubmitQuery", mock.Anything, mock.MatchedBy(func(r *model.QueryRequest) bool {
			return r.ChatID == "chat-9" && r.ChatType == model.ChatTypeExisting
		})).Return(&model.QueryResult{Success: true, ChatID: "chat-9"}, nil).Once()

		sub := f.svc.Submit(context.Background(), "q", "chat-9")
		waitDone(t, sub)

		// An existing session never creates a directory entry.
		assert.Empty(t, f.directory.Snapshot())
		assert.Empty(t, f.nav.SessionID())
	})

	t.Run("New session", func(t *testing.T) {
		f := setupQueryService(t)
		f.client.On("SubmitQuery", mock.Anything, mock.MatchedBy(func(r *model.QueryRequest) bool {
			return r.ChatID == "" && r.ChatType == model.ChatTypeNew
		})).Return(&model.QueryResult{Success: true}, nil).Once()

		sub := f.svc.Submit(context.Background(), "q", "")
		waitDone(t, sub)
	})
}

func TestQueryService_Submit_NewChatBecomesAddressable(t *testing.T) {
	f := setupQueryService(t)
	f.directory.Replace([]model.ChatEntry{{ChatID: "older", Query: "old"}})
	f.client.On("SubmitQuery", mock.Anything, forQuery("failed payments today")).
		Return(&model.QueryResult{Success: true, ChatID: "abc", Summary: "3 failed"}, nil).Once()

	sub := f.svc.Submit(context.Background(), "failed payments today", "")
	waitDone(t, sub)

	entries := f.directory.Snapshot()
	require.Len(t, entries, 2)
	assert.Equal(t, "abc", entries[0].ChatID)
	assert.Equal(t, "failed payments today", entries[0].Query)
	assert.False(t, entries[0].Timestamp.IsZero())
	assert.Equal(t, "abc", f.nav.SessionID())
}

func TestQueryService_Submit_Failures(t *testing.T) {
	cases := []struct {
		name   string
		result *model.QueryResult
		err    error
	}{
		{"Transport error", nil, fmt.Errorf("%w: connection refused", app_errors.ErrTransport)},
		{"Non-2xx", nil, &app_errors.RejectedError{Status: 500}},
		{"Unsuccessful payload", &model.QueryResult{Success: false, Summary: "Error: boom"}, nil},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := setupQueryService(t)
			f.client.On("SubmitQuery", mock.Anything, mock.Anything).Return(tc.result, tc.err).Once()

			sub := f.svc.Submit(context.Background(), "q", "")
			_, err := sub.Wait()
			require.Error(t, err)

			bot, ok := f.messages.Get(sub.BotID)
			require.True(t, ok)
			assert.False(t, bot.Pending)
			assert.Equal(t, service.ApologyMessage, bot.Content)
			assert.Nil(t, bot.Response)
			assert.Empty(t, f.directory.Snapshot())
			assert.Empty(t, f.nav.SessionID())
		})
	}
}

func TestQueryService_Submit_OutOfOrderCompletion(t *testing.T) {
	f := setupQueryService(t)
	gate1 := make(chan struct{})
	gate2 := make(chan struct{})

	f.client.On("SubmitQuery", mock.Anything, forQuery("first")).
		Run(func(args mock.Arguments) { <-gate1 }).
		Return(&model.QueryResult{Success: true, Summary: "answer one"}, nil).Once()
	f.client.On("SubmitQuery", mock.Anything, forQuery("second")).
		Run(func(args mock.Arguments) { <-gate2 }).
		Return(&model.QueryResult{Success: true, Summary: "answer two"}, nil).Once()

	s1 := f.svc.Submit(context.Background(), "first", "chat-1")
	s2 := f.svc.Submit(context.Background(), "second", "chat-1")
	require.Equal(t, 2, f.messages.PendingCount())

	close(gate2)
	waitDone(t, s2)

	b1, _ := f.messages.Get(s1.BotID)
	b2, _ := f.messages.Get(s2.BotID)
	assert.True(t, b1.Pending)
	assert.Empty(t, b1.Content)
	assert.False(t, b2.Pending)
	assert.Equal(t, "answer two", b2.Content)

	close(gate1)
	waitDone(t, s1)

	b1, _ = f.messages.Get(s1.BotID)
	b2, _ = f.messages.Get(s2.BotID)
	assert.Equal(t, "answer one", b1.Content)
	assert.Equal(t, "answer two", b2.Content)

	ids := []string{}
	for _, m := range f.messages.Messages() {
		ids = append(ids, m.ID)
	}
	assert.Equal(t, []string{s1.UserID, s1.BotID, s2.UserID, s2.BotID}, ids)
}

func TestQueryService_Submit_ToleratesReplacedStore(t *testing.T) {
	f := setupQueryService(t)
	gate := make(chan struct{})
	f.client.On("SubmitQuery", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) { <-gate }).
		Return(&model.QueryResult{Success: true, ChatID: "fresh", Summary: "late"}, nil).Once()

	sub := f.svc.Submit(context.Background(), "q", "")
	f.messages.Replace([]model.Message{{ID: "loaded", Role: model.RoleUser, Content: "other session"}})

	close(gate)
	waitDone(t, sub)

	msgs := f.messages.Messages()
	require.Len(t, msgs, 1)
	assert.Equal(t, "other session", msgs[0].Content)
	// The user navigated away, so the session id is left alone but the chat is listed.
	assert.Empty(t, f.nav.SessionID())
	assert.True(t, f.directory.Contains("fresh"))
}

func TestQueryService_Submit_NavigationWinsOverLateNewChat(t *testing.T) {
	f := setupQueryService(t)
	gate := make(chan struct{})
	f.client.On("SubmitQuery", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) { <-gate }).
		Return(&model.QueryResult{Success: true, ChatID: "abc", Summary: "late"}, nil).Once()

	sub := f.svc.Submit(context.Background(), "q", "")
	// The user opens another chat; its transcript has not replaced the store yet.
	f.nav.navigate("xyz")

	close(gate)
	waitDone(t, sub)

	assert.Equal(t, "xyz", f.nav.SessionID())
	assert.True(t, f.directory.Contains("abc"))
}

func TestQueryService_Ask_UsesCurrentSession(t *testing.T) {
	f := setupQueryService(t)
	f.nav.navigate("chat-3")
	f.client.On("SubmitQuery", mock.Anything, mock.MatchedBy(func(r *model.QueryRequest) bool {
		return r.ChatID == "chat-3" && r.ChatType == model.ChatTypeExisting
	})).Return(&model.QueryResult{Success: true, ChatID: "chat-3"}, nil).Once()

	waitDone(t, f.svc.Ask(context.Background(), "q"))
	assert.Equal(t, "chat-3", f.nav.SessionID())
}

func TestQueryService_Submit_IgnoresCallerCancellation(t *testing.T) {
	f := setupQueryService(t)
	f.client.On("SubmitQuery", mock.MatchedBy(func(ctx context.Context) bool { return ctx.Err() == nil }), mock.Anything).
		Return(&model.QueryResult{Success: true, Summary: "ok"}, nil).Once()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	sub := f.svc.Submit(ctx, "q", "chat-1")
	_, err := sub.Wait()

	require.NoError(t, err)
	assert.False(t, errors.Is(err, context.Canceled))
}
