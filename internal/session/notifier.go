package session

import "sync"

// GameStarted - lifecycle notification broadcast whenever a session is
// (re)created. Carries just enough for listeners to scope their own reads.
type GameStarted struct {
	GameID string
}

// Notifier is a typed observer handed to interested components at
// construction time. Publishing with no listeners is a valid no-op.
type Notifier struct {
	mu        sync.Mutex
	listeners []func(GameStarted)
}

func NewNotifier() *Notifier {
	return &Notifier{}
}

func (that *Notifier) Subscribe(listener func(GameStarted)) {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.listeners = append(that.listeners, listener)
}

func (that *Notifier) Publish(event GameStarted) {
	that.mu.Lock()
	listeners := make([]func(GameStarted), len(that.listeners))
	copy(listeners, that.listeners)
	that.mu.Unlock()

	for _, listener := range listeners {
		listener(event)
	}
}
