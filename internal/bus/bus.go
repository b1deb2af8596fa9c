package bus

import (
	"context"
	"log"
	"sync"
)

// SendFunc delivers an outbound message on a specific channel.
type SendFunc func(msg OutboundMessage) error

// MessageBus decouples channels from the gateway: channels push inbound
// messages, the gateway pushes replies, and DispatchOutbound fans replies
// back out to the subscribed channel sender.
type MessageBus struct {
	Inbound  chan InboundMessage
	Outbound chan OutboundMessage

	mu      sync.RWMutex
	senders map[string]SendFunc
}

func NewMessageBus(bufSize int) *MessageBus {
	if bufSize <= 0 {
		bufSize = 64
	}
	return &MessageBus{
		Inbound:  make(chan InboundMessage, bufSize),
		Outbound: make(chan OutboundMessage, bufSize),
		senders:  make(map[string]SendFunc),
	}
}

// SubscribeOutbound registers the sender for a channel name, replacing any
// previous registration.
func (b *MessageBus) SubscribeOutbound(channel string, fn SendFunc) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.senders[channel] = fn
}

func (b *MessageBus) sender(channel string) (SendFunc, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	fn, ok := b.senders[channel]
	return fn, ok
}

// DispatchOutbound drains the outbound queue until the context is canceled.
func (b *MessageBus) DispatchOutbound(ctx context.Context) {
	for {
		select {
		case msg := <-b.Outbound:
			fn, ok := b.sender(msg.Channel)
			if !ok {
				log.Printf("[bus] no sender registered for channel %q, dropping message", msg.Channel)
				continue
			}
			if err := fn(msg); err != nil {
				log.Printf("[bus] send on %s failed: %v", msg.Channel, err)
			}
		case <-ctx.Done():
			return
		}
	}
}
