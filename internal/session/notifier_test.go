package session

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNotifier(t *testing.T) {
	t.Run("DeliversToAllListeners", func(t *testing.T) {
		notifier := NewNotifier()

		var first, second []string
		notifier.Subscribe(func(event GameStarted) { first = append(first, event.GameID) })
		notifier.Subscribe(func(event GameStarted) { second = append(second, event.GameID) })

		notifier.Publish(GameStarted{GameID: "g-1"})
		notifier.Publish(GameStarted{GameID: "g-2"})

		require.Equal(t, []string{"g-1", "g-2"}, first)
		require.Equal(t, []string{"g-1", "g-2"}, second)
	})

	t.Run("NoListenersIsANoOp", func(t *testing.T) {
		notifier := NewNotifier()

		require.NotPanics(t, func() {
			notifier.Publish(GameStarted{GameID: "g-1"})
		})
	})
}

func TestSlotLock(t *testing.T) {
	var slot slotLock

	// When: the slot is acquired
	require.True(t, slot.TryAcquire())
	require.True(t, slot.Held())

	// Then: a second acquire is rejected, not queued
	require.False(t, slot.TryAcquire())

	// When: the slot is released
	slot.Release()

	// Then: it can be acquired again
	require.False(t, slot.Held())
	require.True(t, slot.TryAcquire())
}
