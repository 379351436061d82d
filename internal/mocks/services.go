package mocks

import (
	"context"
	"sync"
)

// MockDialogService is a mock implementation of ports.DialogService
type MockDialogService struct {
	PostTextFunc func(ctx context.Context, userID, text string) (string, error)

	mu    sync.Mutex
	Calls []DialogCall
}

type DialogCall struct {
	UserID string
	Text   string
}

func (m *MockDialogService) PostText(ctx context.Context, userID, text string) (string, error) {
	m.mu.Lock()
	m.Calls = append(m.Calls, DialogCall{UserID: userID, Text: text})
	m.mu.Unlock()

	if m.PostTextFunc != nil {
		return m.PostTextFunc(ctx, userID, text)
	}
	return "", nil
}

// MockSMSSender is a mock implementation of ports.SMSSender
type MockSMSSender struct {
	SendSMSFunc func(ctx context.Context, to, body string) error

	mu   sync.Mutex
	Sent []SentSMS
}

type SentSMS struct {
	To   string
	Body string
}

func (m *MockSMSSender) SendSMS(ctx context.Context, to, body string) error {
	if m.SendSMSFunc != nil {
		if err := m.SendSMSFunc(ctx, to, body); err != nil {
			return err
		}
	}
	m.mu.Lock()
	m.Sent = append(m.Sent, SentSMS{To: to, Body: body})
	m.mu.Unlock()
	return nil
}
