// internal/server/broadcaster.go
package server

import (
	"encoding/json"
	"sync"

	"candy-defense/internal/config"
	"candy-defense/internal/event"
	"candy-defense/pkg/logger"

	"github.com/sirupsen/logrus"
)

// Message is one lifecycle event as sent over the websocket feed.
type Message struct {
	Type event.EventType `json:"type"`
	Data interface{}     `json:"data,omitempty"`
}

// Broadcaster fans simulation events out to websocket clients. OnEvent never
// blocks: a client whose buffer is full loses the message.
type Broadcaster struct {
	mu      sync.Mutex
	clients map[chan []byte]struct{}
	dropped uint64
}

func NewBroadcaster() *Broadcaster {
	return &Broadcaster{clients: make(map[chan []byte]struct{})}
}

// Register returns a buffered channel that receives encoded messages.
func (b *Broadcaster) Register() chan []byte {
	ch := make(chan []byte, config.EventBufferSize)
	b.mu.Lock()
	b.clients[ch] = struct{}{}
	b.mu.Unlock()
	return ch
}

// Unregister removes and closes ch. Safe to call more than once.
func (b *Broadcaster) Unregister(ch chan []byte) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if _, ok := b.clients[ch]; ok {
		delete(b.clients, ch)
		close(ch)
	}
}

// Clients is the number of connected subscribers.
func (b *Broadcaster) Clients() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.clients)
}

// Dropped counts messages lost to full client buffers.
func (b *Broadcaster) Dropped() uint64 {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.dropped
}

// OnEvent implements event.Listener.
func (b *Broadcaster) OnEvent(e event.Event) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if len(b.clients) == 0 {
		return
	}
	payload, err := json.Marshal(Message{Type: e.Type, Data: e.Data})
	if err != nil {
		logger.Log.WithFields(logrus.Fields{"event": e.Type, "error": err}).Warn("failed to encode event")
		return
	}
	for ch := range b.clients {
		select {
		case ch <- payload:
		default:
			b.dropped++
		}
	}
}

// Close disconnects every client.
func (b *Broadcaster) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()
	for ch := range b.clients {
		delete(b.clients, ch)
		close(ch)
	}
}
