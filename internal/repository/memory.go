package repository

import (
	"context"
	"sync"

	"untwist-backend/internal/models"
)

// MemoryStore is an in-memory FeedbackStore for tests and local development.
// It mimics the backing store's retrieval contract: QueryByType hands back
// records in reverse insertion order, Scan in plain insertion order with no
// ordering guarantee at all — the handler's own sort has to cope with both.
type MemoryStore struct {
	mu      sync.Mutex
	records []models.FeedbackRecord

	// PutErr, when set, is returned by every Put to simulate a
	// persistence failure.
	PutErr error
	// FindErr, when set, is returned by QueryByType and Scan.
	FindErr error
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Put(ctx context.Context, record *models.FeedbackRecord) error {
	if s.PutErr != nil {
		return s.PutErr
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = append(s.records, *record)
	return nil
}

func (s *MemoryStore) QueryByType(ctx context.Context, feedbackType string, limit int64) ([]models.FeedbackRecord, error) {
	if s.FindErr != nil {
		return nil, s.FindErr
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	out := []models.FeedbackRecord{}
	for i := len(s.records) - 1; i >= 0 && int64(len(out)) < limit; i-- {
		if s.records[i].Type == feedbackType {
			out = append(out, s.records[i])
		}
	}
	return out, nil
}

func (s *MemoryStore) Scan(ctx context.Context, limit int64) ([]models.FeedbackRecord, error) {
	if s.FindErr != nil {
		return nil, s.FindErr
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	out := []models.FeedbackRecord{}
	for _, rec := range s.records {
		if int64(len(out)) >= limit {
			break
		}
		out = append(out, rec)
	}
	return out, nil
}

// Len reports how many records have been persisted.
func (s *MemoryStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.records)
}
