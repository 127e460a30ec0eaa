package server

import (
	"encoding/json"
	"testing"

	"candy-defense/internal/app"
	"candy-defense/internal/config"
	"candy-defense/internal/event"
)

func TestBroadcasterDeliversToEveryClient(t *testing.T) {
	b := NewBroadcaster()
	a, c := b.Register(), b.Register()

	b.OnEvent(event.Event{Type: event.WaveStarted, Data: event.WaveData{Number: 2, Size: 12}})

	for i, ch := range []chan []byte{a, c} {
		select {
		case payload := <-ch:
			var msg struct {
				Type event.EventType `json:"type"`
				Data event.WaveData  `json:"data"`
			}
			if err := json.Unmarshal(payload, &msg); err != nil {
				t.Fatalf("client %d: decode: %v", i, err)
			}
			if msg.Type != event.WaveStarted || msg.Data.Number != 2 || msg.Data.Size != 12 {
				t.Errorf("client %d: got %+v", i, msg)
			}
		default:
			t.Errorf("client %d received nothing", i)
		}
	}
}

func TestBroadcasterDropsWhenBufferFull(t *testing.T) {
	b := NewBroadcaster()
	ch := b.Register()
	for i := 0; i < config.EventBufferSize+10; i++ {
		b.OnEvent(event.Event{Type: event.EnemySpawned})
	}
	if len(ch) != config.EventBufferSize {
		t.Errorf("buffered = %d, want %d", len(ch), config.EventBufferSize)
	}
	if b.Dropped() != 10 {
		t.Errorf("dropped = %d, want 10", b.Dropped())
	}
}

func TestBroadcasterUnregisterClosesChannel(t *testing.T) {
	b := NewBroadcaster()
	ch := b.Register()
	b.Unregister(ch)
	b.Unregister(ch)
	if _, ok := <-ch; ok {
		t.Error("channel should be closed")
	}
	if b.Clients() != 0 {
		t.Errorf("clients = %d, want 0", b.Clients())
	}
	b.OnEvent(event.Event{Type: event.GameLost})
}

func TestSnapshotStore(t *testing.T) {
	s := NewSnapshotStore()
	if _, ok := s.Latest(); ok {
		t.Fatal("empty store reported a snapshot")
	}
	s.Publish(app.Snapshot{Tick: 4, Money: 10})
	snap, ok := s.Latest()
	if !ok || snap.Tick != 4 || snap.Money != 10 {
		t.Errorf("Latest() = %+v, %v", snap, ok)
	}
}
