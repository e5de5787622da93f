package notify

import (
	"context"
	"log"
)

// MockNotifier logs messages instead of delivering them. Used whenever no
// email provider is configured.
type MockNotifier struct{}

func NewMockNotifier() *MockNotifier {
	return &MockNotifier{}
}

func (m *MockNotifier) Send(ctx context.Context, to, subject, body string) error {
	log.Printf("📨 [MockNotifier] To %s — %s: %s", to, subject, body)
	return nil
}
