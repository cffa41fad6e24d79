// Package chat fans out direct messages to connected stream subscribers.
package chat

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"

	"github.com/localnerve/innohub/internal/models"
)

// SubscriberBuffer is the number of undelivered messages a subscriber may hold
const SubscriberBuffer = 64

// ErrClosed is returned by Subscribe after Close
var ErrClosed = errors.New("chat broker closed")

// Broker delivers published messages to the recipient's live subscriptions
type Broker interface {
	Publish(ctx context.Context, userID string, msg models.Message) error
	Subscribe(ctx context.Context, userID string) (*Subscription, error)
	Close() error
}

// Subscription receives messages for one user until closed or its context ends
type Subscription struct {
	C <-chan models.Message

	once   sync.Once
	cancel func()
}

// Close stops delivery and closes C
func (s *Subscription) Close() {
	s.once.Do(s.cancel)
}

type subscriber struct {
	ch chan models.Message
}

// MemoryBroker fans out within a single process
type MemoryBroker struct {
	mu      sync.RWMutex
	subs    map[string]map[*subscriber]struct{}
	closed  bool
	dropped atomic.Int64
}

// NewMemoryBroker creates an in-process broker
func NewMemoryBroker() *MemoryBroker {
	return &MemoryBroker{subs: make(map[string]map[*subscriber]struct{})}
}

// Publish never blocks; a full subscriber misses the message and catches up by polling
func (b *MemoryBroker) Publish(_ context.Context, userID string, msg models.Message) error {
	b.mu.RLock()
	defer b.mu.RUnlock()

	for sub := range b.subs[userID] {
		select {
		case sub.ch <- msg:
		default:
			b.dropped.Add(1)
		}
	}
	return nil
}

// Subscribe registers a subscription that ends with ctx or Close
func (b *MemoryBroker) Subscribe(ctx context.Context, userID string) (*Subscription, error) {
	sub := &subscriber{ch: make(chan models.Message, SubscriberBuffer)}

	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		return nil, ErrClosed
	}
	if b.subs[userID] == nil {
		b.subs[userID] = make(map[*subscriber]struct{})
	}
	b.subs[userID][sub] = struct{}{}
	b.mu.Unlock()

	ctx, cancel := context.WithCancel(ctx)
	s := &Subscription{C: sub.ch, cancel: cancel}
	go func() {
		<-ctx.Done()
		b.remove(userID, sub)
	}()
	return s, nil
}

func (b *MemoryBroker) remove(userID string, sub *subscriber) {
	b.mu.Lock()
	defer b.mu.Unlock()

	set, ok := b.subs[userID]
	if !ok {
		return
	}
	if _, ok := set[sub]; !ok {
		return
	}
	delete(set, sub)
	if len(set) == 0 {
		delete(b.subs, userID)
	}
	close(sub.ch)
}

// Subscribers returns the number of live subscriptions for a user
func (b *MemoryBroker) Subscribers(userID string) int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subs[userID])
}

// Dropped returns how many deliveries were skipped because a subscriber was full
func (b *MemoryBroker) Dropped() int64 {
	return b.dropped.Load()
}

// Close ends every subscription
func (b *MemoryBroker) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.closed = true
	for userID, set := range b.subs {
		for sub := range set {
			close(sub.ch)
		}
		delete(b.subs, userID)
	}
	return nil
}
