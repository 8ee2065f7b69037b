package email

import (
	"context"

	"untwist-backend/internal/models"
)

// Notifier dispatches a notification for a freshly persisted feedback record.
// Callers treat the send as best-effort: errors are logged and discarded, so
// implementations never gate the ingestion response.
type Notifier interface {
	Notify(ctx context.Context, record *models.FeedbackRecord) error
}
