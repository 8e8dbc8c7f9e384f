//go:build unit
// +build unit

package realtime

import (
	"sync"
	"testing"
	"time"

	"github.com/MGTheTrain/portfolio-api/internal/domain/notifications"
	"github.com/MGTheTrain/portfolio-api/internal/pkg/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func receive(t *testing.T, ch <-chan *notifications.Notification) *notifications.Notification {
	t.Helper()
	select {
	case n, ok := <-ch:
		require.True(t, ok, "channel closed")
		return n
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for notification")
		return nil
	}
}

func TestHub_DeliversOnlyToOwner(t *testing.T) {
	hub := NewHub(4, testutil.SetupTestLogger(t))

	alice, cancelAlice := hub.Subscribe("alice")
	defer cancelAlice()
	bob, cancelBob := hub.Subscribe("bob")
	defer cancelBob()

	hub.Publish(&notifications.Notification{ID: "1", UserID: "alice"})

	assert.Equal(t, "1", receive(t, alice).ID)
	select {
	case <-bob:
		t.Fatal("bob must not receive alice's notification")
	default:
	}
}

func TestHub_MultipleSubscribersPerUser(t *testing.T) {
	hub := NewHub(4, testutil.SetupTestLogger(t))

	first, cancelFirst := hub.Subscribe("alice")
	defer cancelFirst()
	second, cancelSecond := hub.Subscribe("alice")
	defer cancelSecond()

	assert.Equal(t, 2, hub.SubscriberCount("alice"))

	hub.Publish(&notifications.Notification{ID: "1", UserID: "alice"})

	assert.Equal(t, "1", receive(t, first).ID)
	assert.Equal(t, "1", receive(t, second).ID)
}

func TestHub_SlowSubscriberDoesNotBlock(t *testing.T) {
	hub := NewHub(1, testutil.SetupTestLogger(t))

	ch, cancel := hub.Subscribe("alice")
	defer cancel()

	done := make(chan struct{})
	go func() {
		for i := 0; i < 10; i++ {
			hub.Publish(&notifications.Notification{ID: "n", UserID: "alice"})
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("publish blocked on a full subscriber")
	}

	assert.Len(t, ch, 1)
}

func TestHub_CancelClosesAndUnregisters(t *testing.T) {
	hub := NewHub(0, testutil.SetupTestLogger(t))

	ch, cancel := hub.Subscribe("alice")
	cancel()
	cancel()

	_, ok := <-ch
	assert.False(t, ok)
	assert.Equal(t, 0, hub.SubscriberCount("alice"))

	hub.Publish(&notifications.Notification{ID: "1", UserID: "alice"})
	hub.Publish(nil)
}

func TestHub_ConcurrentPublishAndCancel(t *testing.T) {
	hub := NewHub(2, testutil.SetupTestLogger(t))

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(2)
		ch, cancel := hub.Subscribe("alice")
		go func() {
			defer wg.Done()
			hub.Publish(&notifications.Notification{ID: "x", UserID: "alice"})
		}()
		go func() {
			defer wg.Done()
			cancel()
			for range ch {
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 0, hub.SubscriberCount("alice"))
}
