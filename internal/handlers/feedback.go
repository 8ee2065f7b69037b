package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"sort"
	"strconv"
	"strings"
	"time"

	"untwist-backend/internal/email"
	"untwist-backend/internal/models"
	"untwist-backend/internal/repository"

	"github.com/google/uuid"
)

const defaultQueryLimit = 100

type FeedbackHandler struct {
	store      repository.FeedbackStore
	notifier   email.Notifier
	production bool
}

func NewFeedbackHandler(store repository.FeedbackStore, notifier email.Notifier, production bool) *FeedbackHandler {
	return &FeedbackHandler{
		store:      store,
		notifier:   notifier,
		production: production,
	}
}

// --- POST /feedback ---

// SubmitFeedback validates a submission, persists it, and fires a best-effort
// email notification before responding. Every call mints a fresh feedbackId,
// so a client retry after a timeout produces a duplicate record — there is no
// idempotency key in the contract (known gap, see DESIGN.md).
func (h *FeedbackHandler) SubmitFeedback(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		log.Printf("Error reading request body: %v", err)
		h.writeInternalError(w, err)
		return
	}
	if len(body) == 0 {
		body = []byte("{}")
	}

	var raw map[string]interface{}
	if err := json.Unmarshal(body, &raw); err != nil {
		// A body that is valid JSON but not an object simply has no
		// "feedback" member; only malformed JSON is rejected here.
		var typeErr *json.UnmarshalTypeError
		if !errors.As(err, &typeErr) {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid JSON in request body"})
			return
		}
		raw = map[string]interface{}{}
	}

	// Validation is fail-fast: first failure wins, no aggregation.
	// Emptiness of the feedback text is deliberately not checked.
	feedback, ok := raw["feedback"].(string)
	if !ok {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": `Missing or invalid "feedback" field`})
		return
	}

	feedbackType, ok := raw["type"].(string)
	if !ok || !models.IsValidType(feedbackType) {
		writeJSON(w, http.StatusBadRequest, map[string]string{
			"error": fmt.Sprintf(`Invalid "type". Must be one of: %s`, strings.Join(models.ValidTypes, ", ")),
		})
		return
	}

	receivedAt := time.Now().UTC()

	timestamp, _ := raw["timestamp"].(string)
	if timestamp == "" {
		timestamp = receivedAt.Format(time.RFC3339Nano)
	}

	diagnostic, _ := raw["diagnostic"].(map[string]interface{})
	if diagnostic == nil {
		diagnostic = map[string]interface{}{}
	}

	record := &models.FeedbackRecord{
		FeedbackID: uuid.New().String(),
		Timestamp:  timestamp,
		ReceivedAt: receivedAt,
		Feedback:   feedback,
		Type:       feedbackType,
		Diagnostic: diagnostic,
		Status:     "new",
		TTL:        receivedAt.Unix() + models.RecordTTLSeconds,
	}

	if err := h.store.Put(r.Context(), record); err != nil {
		log.Printf("Error persisting feedback: %v", err)
		h.writeInternalError(w, err)
		return
	}

	// Best-effort notification: runs before the response is written so it
	// cannot outlive the handler, but its failure never demotes the 200
	// and never rolls back the persisted record.
	if err := h.notifier.Notify(r.Context(), record); err != nil {
		log.Printf("⚠️  Failed to send feedback notification: %v", err)
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success":    true,
		"feedbackId": record.FeedbackID,
		"message":    "Feedback received successfully",
	})
}

// --- GET /feedback ---

// ListFeedback serves the admin dashboard: an indexed lookup when a type
// filter is given, a plain scan otherwise, always re-sorted newest-first by
// timestamp before responding. The limit is a hard ceiling, not a cursor.
func (h *FeedbackHandler) ListFeedback(w http.ResponseWriter, r *http.Request) {
	feedbackType := r.URL.Query().Get("type")
	limit := parseLimit(r.URL.Query().Get("limit"))

	var (
		records []models.FeedbackRecord
		err     error
	)
	if feedbackType != "" && feedbackType != "all" {
		records, err = h.store.QueryByType(r.Context(), feedbackType, limit)
	} else {
		records, err = h.store.Scan(r.Context(), limit)
	}
	if err != nil {
		log.Printf("Error fetching feedback: %v", err)
		h.writeInternalError(w, err)
		return
	}

	// The scan path gives no ordering guarantee, so sort on both paths.
	sort.Slice(records, func(i, j int) bool {
		return parseTimestamp(records[i].Timestamp).After(parseTimestamp(records[j].Timestamp))
	})

	if records == nil {
		records = []models.FeedbackRecord{}
	}
	writeJSON(w, http.StatusOK, records)
}

func parseLimit(raw string) int64 {
	if raw == "" {
		return defaultQueryLimit
	}
	limit, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || limit <= 0 {
		return defaultQueryLimit
	}
	return limit
}

func parseTimestamp(s string) time.Time {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		// Unparsable timestamps sort last.
		return time.Time{}
	}
	return t
}
