package async

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"sync"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/trace"
)

const _receiverBuffer = 16

type BrokerTopicName string

type BrokerMessage struct {
	Event string
	Value any
	Span  trace.Span
	Error error

	ack func()
}

// Ack tells a PublishAndWait caller that this subscriber has handled the message.
// It is a no-op for messages sent with Publish.
func (m BrokerMessage) Ack() {
	if m.ack != nil {
		m.ack()
	}
}

type InternalBroker interface {
	Subscribe(topic BrokerTopicName) (Subscription, error)
	Unsubscribe(topic BrokerTopicName, subscription Subscription) error
	Publish(ctx context.Context, topic BrokerTopicName, msg BrokerMessage) error
	PublishAndWait(ctx context.Context, topic BrokerTopicName, msg BrokerMessage) error
	Stop()
}

var _ InternalBroker = (*LocalBroker)(nil)

var ErrTopicNotFound = errors.New("topic not found")
var ErrSubscriptorNotFound = errors.New("subscriptor not found")

func NewLocalBroker() *LocalBroker {
	return &LocalBroker{
		subscriptors: make(map[BrokerTopicName][]*subscriptor),
	}
}

// LocalBroker fans messages out to in-process subscribers. Delivery is
// asynchronous and a subscriber whose buffer is full misses the message.
type LocalBroker struct {
	mu           sync.Mutex
	subscriptors map[BrokerTopicName][]*subscriptor
}

type subscriptor struct {
	mu           sync.Mutex
	active       bool
	subscription Subscription
}

type Subscription struct {
	ID       string
	Receiver <-chan BrokerMessage
	receiver chan BrokerMessage
}

func (b *LocalBroker) Subscribe(topic BrokerTopicName) (Subscription, error) {
	receiver := make(chan BrokerMessage, _receiverBuffer)
	subscription := Subscription{ID: uuid.NewString(), Receiver: receiver, receiver: receiver}

	b.mu.Lock()
	defer b.mu.Unlock()
	b.subscriptors[topic] = append(b.subscriptors[topic], &subscriptor{subscription: subscription, active: true})

	return subscription, nil
}

func (b *LocalBroker) Unsubscribe(topic BrokerTopicName, subscription Subscription) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	subscriptors, ok := b.subscriptors[topic]
	if !ok {
		return ErrTopicNotFound
	}

	index := slices.IndexFunc(subscriptors, func(s *subscriptor) bool { return s.subscription.ID == subscription.ID })
	if index < 0 {
		return ErrSubscriptorNotFound
	}

	subscriptors[index].close()
	b.subscriptors[topic] = slices.Delete(subscriptors, index, index+1)

	return nil
}

// Publish returns ErrTopicNotFound when nobody listens on topic.
func (b *LocalBroker) Publish(ctx context.Context, topic BrokerTopicName, msg BrokerMessage) error {
	msg.Span = trace.SpanFromContext(ctx)

	subscriptors := b.snapshot(topic)
	if len(subscriptors) == 0 {
		return ErrTopicNotFound
	}

	go publish(topic, subscriptors, msg)

	return nil
}

// PublishAndWait delivers msg and blocks until every subscriber has acked it or
// ctx is done. Messages a subscriber could not take, and messages still queued
// when a subscription closes, count as acked.
func (b *LocalBroker) PublishAndWait(ctx context.Context, topic BrokerTopicName, msg BrokerMessage) error {
	msg.Span = trace.SpanFromContext(ctx)

	subscriptors := b.snapshot(topic)
	if len(subscriptors) == 0 {
		return ErrTopicNotFound
	}

	var wg sync.WaitGroup
	for _, s := range subscriptors {
		wg.Add(1)
		var once sync.Once
		delivered := msg
		delivered.ack = func() { once.Do(wg.Done) }

		if !s.send(delivered) {
			dropped(topic, msg, s)
			delivered.Ack()
		}
	}

	handled := make(chan struct{})
	go func() {
		wg.Wait()
		close(handled)
	}()

	select {
	case <-handled:
		return nil
	case <-ctx.Done():
		return fmt.Errorf("waiting for %s subscribers: %w", topic, ctx.Err())
	}
}

func (b *LocalBroker) snapshot(topic BrokerTopicName) []*subscriptor {
	b.mu.Lock()
	defer b.mu.Unlock()
	return slices.Clone(b.subscriptors[topic])
}

func publish(topic BrokerTopicName, subscriptors []*subscriptor, msg BrokerMessage) {
	for _, s := range subscriptors {
		if !s.send(msg) {
			dropped(topic, msg, s)
		}
	}
}

func dropped(topic BrokerTopicName, msg BrokerMessage, s *subscriptor) {
	slog.Warn("dropping broker message",
		slog.String("topic", string(topic)),
		slog.String("event", msg.Event),
		slog.String("subscription", s.subscription.ID),
	)
}

func (b *LocalBroker) Stop() {
	b.mu.Lock()
	defer b.mu.Unlock()

	for topic, subscriptors := range b.subscriptors {
		for _, s := range subscriptors {
			s.close()
		}
		delete(b.subscriptors, topic)
	}
}

// send never blocks. It reports false when msg was not queued.
func (s *subscriptor) send(msg BrokerMessage) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.active {
		return false
	}

	select {
	case s.subscription.receiver <- msg:
		return true
	default:
		return false
	}
}

func (s *subscriptor) close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.active {
		return
	}
	s.active = false

	for {
		select {
		case msg := <-s.subscription.receiver:
			msg.Ack()
		default:
			close(s.subscription.receiver)
			return
		}
	}
}
