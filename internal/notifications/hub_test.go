package notifications

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testEventuallyTimeout = time.Second
	testPollInterval      = 10 * time.Millisecond
)

func TestHub_RegisterAndUnregister(t *testing.T) {
	t.Parallel()
	hub := NewHub()

	clientA, err := hub.Register(nil)
	require.NoError(t, err)
	clientB, err := hub.Register(nil)
	require.NoError(t, err)
	assert.Equal(t, 2, hub.ClientCount())

	hub.UnregisterClient(clientA)
	assert.Equal(t, 1, hub.ClientCount())

	// Unregistering twice is harmless.
	hub.UnregisterClient(clientA)
	assert.Equal(t, 1, hub.ClientCount())

	hub.UnregisterClient(clientB)
	assert.Equal(t, 0, hub.ClientCount())
}

func TestHub_BroadcastUserChangedReachesEveryClient(t *testing.T) {
	t.Parallel()
	hub := NewHub()

	clientA, err := hub.Register(nil)
	require.NoError(t, err)
	clientB, err := hub.Register(nil)
	require.NoError(t, err)

	hub.BroadcastUserChanged()

	for _, c := range []*Client{clientA, clientB} {
		select {
		case msg := <-c.Send:
			assert.JSONEq(t, `{"type":"user_changed"}`, string(msg))
		case <-time.After(testEventuallyTimeout):
			t.Fatal("expected change signal was not delivered")
		}
	}
}

func TestHub_BroadcastCarriesNoPayload(t *testing.T) {
	t.Parallel()
	hub := NewHub()

	client, err := hub.Register(nil)
	require.NoError(t, err)

	hub.BroadcastUserChanged()
	hub.BroadcastUserChanged()

	// Every signal is identical regardless of which mutation produced it.
	first := <-client.Send
	second := <-client.Send
	assert.Equal(t, first, second)
	assert.Equal(t, UserChangedSignal, string(first))
}

func TestHub_SlowClientDoesNotBlockBroadcast(t *testing.T) {
	t.Parallel()
	hub := NewHub()

	slow, err := hub.Register(nil)
	require.NoError(t, err)

	// Saturate the slow client's buffer; nothing drains it.
	for i := 0; i < cap(slow.Send)+5; i++ {
		hub.BroadcastUserChanged()
	}

	done := make(chan struct{})
	go func() {
		hub.BroadcastUserChanged()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(testEventuallyTimeout):
		t.Fatal("broadcast blocked on a client with a full buffer")
	}
	assert.Equal(t, cap(slow.Send), len(slow.Send))
}

func TestClient_TrySendOnClosedChannelDoesNotPanic(t *testing.T) {
	t.Parallel()
	hub := NewHub()

	client, err := hub.Register(nil)
	require.NoError(t, err)
	close(client.Send)

	assert.NotPanics(t, func() {
		client.TrySend([]byte(UserChangedSignal))
	})
}

func TestHub_ConnectionLimit(t *testing.T) {
	t.Parallel()
	hub := NewHub()

	for i := 0; i < maxTotalConns; i++ {
		_, err := hub.Register(nil)
		require.NoError(t, err)
	}

	_, err := hub.Register(nil)
	assert.Error(t, err)
	assert.Equal(t, maxTotalConns, hub.ClientCount())
}

func TestHub_ShutdownClearsClients(t *testing.T) {
	t.Parallel()
	hub := NewHub()

	_, err := hub.Register(nil)
	require.NoError(t, err)
	_, err = hub.Register(nil)
	require.NoError(t, err)

	require.NoError(t, hub.Shutdown(context.Background()))
	assert.Equal(t, 0, hub.ClientCount())
}
