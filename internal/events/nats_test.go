package events

import (
	"encoding/json"
	"errors"
	"sync"
	"testing"

	"github.com/Pranav210905/fin/internal/models"
	"github.com/Pranav210905/fin/internal/seed"
	"github.com/Pranav210905/fin/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type published struct {
	subject string
	data    []byte
}

type fakePublisher struct {
	mu   sync.Mutex
	msgs []published
	err  error
}

func (f *fakePublisher) Publish(subject string, data []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.msgs = append(f.msgs, published{subject, data})
	return f.err
}

func (f *fakePublisher) subjects() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, len(f.msgs))
	for i, m := range f.msgs {
		out[i] = m.subject
	}
	return out
}

func TestBridge_PublishesInCommitOrder(t *testing.T) {
	pub := &fakePublisher{}
	st := store.New(seed.Snapshot())
	b := NewBridge(pub, nil, 16)
	require.NoError(t, b.Attach(st))

	_, err := st.CreatePost("1", "Paid off my card #DebtFree", models.PostTypeMilestone, []string{"#DebtFree"}, nil)
	require.NoError(t, err)
	_, err = st.ToggleLike("2", "1")
	require.NoError(t, err)
	require.NoError(t, st.Follow("4", "1"))
	b.Close()

	assert.Equal(t, []string{
		"finchat.post.created",
		"finchat.post.liked",
		"finchat.user.followed",
	}, pub.subjects())

	var msg Message
	require.NoError(t, json.Unmarshal(pub.msgs[1].data, &msg))
	assert.Equal(t, store.EventPostLiked, msg.Kind)
	assert.Equal(t, "2", msg.ActorID)
	assert.Equal(t, "1", msg.PostID)
	assert.True(t, msg.Active)
	assert.NotEmpty(t, msg.Timestamp)
}

func TestBridge_FailedStoreOpPublishesNothing(t *testing.T) {
	pub := &fakePublisher{}
	st := store.New(seed.Snapshot())
	b := NewBridge(pub, nil, 4)
	require.NoError(t, b.Attach(st))

	_, err := st.ToggleLike("1", "missing")
	require.Error(t, err)
	b.Close()

	assert.Empty(t, pub.subjects())
}

func TestBridge_PublishErrorsDoNotStopWorker(t *testing.T) {
	pub := &fakePublisher{err: errors.New("nats: connection closed")}
	st := store.New(seed.Snapshot())
	b := NewBridge(pub, nil, 4)
	require.NoError(t, b.Attach(st))

	_, _ = st.ToggleBookmark("1", "1")
	_, _ = st.ToggleBookmark("1", "1")
	b.Close()

	assert.Len(t, pub.subjects(), 2)
}

func TestBridge_CloseDetaches(t *testing.T) {
	pub := &fakePublisher{}
	st := store.New(seed.Snapshot())
	b := NewBridge(pub, nil, 4)
	require.NoError(t, b.Attach(st))
	b.Close()
	b.Close()

	_, err := st.ToggleRepost("1", "2")
	require.NoError(t, err)
	assert.Empty(t, pub.subjects())
	assert.ErrorIs(t, b.Attach(st), ErrClosed)
}
