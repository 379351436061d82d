package mocks

import (
	"context"
	"sync"

	"github.com/seu-repo/concierge-bot/internal/adapter/queue"
)

// MockMessageQueue is a mock implementation of MessageQueue interface.
// Deliver feeds a message to the handlers subscribed to a subject.
type MockMessageQueue struct {
	PublishedMessages map[string][][]byte
	Subscribers       map[string][]queue.Handler
	PublishFunc       func(ctx context.Context, topic string, data []byte) error
	SubscribeFunc     func(topic string, handler queue.Handler) error
	PingFunc          func() error
	CloseFunc         func() error

	mu sync.Mutex
}

func NewMockMessageQueue() *MockMessageQueue {
	return &MockMessageQueue{
		PublishedMessages: make(map[string][][]byte),
		Subscribers:       make(map[string][]queue.Handler),
	}
}

func (m *MockMessageQueue) Publish(ctx context.Context, topic string, data []byte) error {
	if m.PublishFunc != nil {
		return m.PublishFunc(ctx, topic, data)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.PublishedMessages[topic] = append(m.PublishedMessages[topic], data)
	return nil
}

func (m *MockMessageQueue) Subscribe(topic string, handler queue.Handler) error {
	if m.SubscribeFunc != nil {
		return m.SubscribeFunc(topic, handler)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Subscribers[topic] = append(m.Subscribers[topic], handler)
	return nil
}

func (m *MockMessageQueue) Ping() error {
	if m.PingFunc != nil {
		return m.PingFunc()
	}
	return nil
}

func (m *MockMessageQueue) Close() error {
	if m.CloseFunc != nil {
		return m.CloseFunc()
	}
	return nil
}

// Deliver runs every handler subscribed to topic and returns the first error.
func (m *MockMessageQueue) Deliver(ctx context.Context, topic string, data []byte) error {
	m.mu.Lock()
	handlers := append([]queue.Handler(nil), m.Subscribers[topic]...)
	m.mu.Unlock()

	var first error
	for _, h := range handlers {
		if err := h(ctx, data); err != nil && first == nil {
			first = err
		}
	}
	return first
}

// GetPublishedMessages returns all messages published to a topic
func (m *MockMessageQueue) GetPublishedMessages(topic string) [][]byte {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.PublishedMessages[topic]
}

// ClearMessages clears all published messages
func (m *MockMessageQueue) ClearMessages() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.PublishedMessages = make(map[string][][]byte)
}
