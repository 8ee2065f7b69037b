package email

import (
	"context"
	"log"
	"sync"

	"untwist-backend/internal/models"
)

// Mock implements Notifier by logging instead of sending. It records every
// notified record and can be primed with an error to simulate delivery
// failures in tests.
type Mock struct {
	mu       sync.Mutex
	notified []models.FeedbackRecord

	// Err, when set, is returned by every Notify call.
	Err error
}

func NewMock() *Mock {
	return &Mock{}
}

func (m *Mock) Notify(ctx context.Context, record *models.FeedbackRecord) error {
	if m.Err != nil {
		return m.Err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.notified = append(m.notified, *record)
	log.Printf("📨 [MockEmail] Feedback notification: %s", Subject(record))
	return nil
}

// Notified returns a copy of the records passed to Notify so far.
func (m *Mock) Notified() []models.FeedbackRecord {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]models.FeedbackRecord, len(m.notified))
	copy(out, m.notified)
	return out
}
