package models

import "time"

// Feedback types accepted from the mobile apps.
const (
	TypeBugReport       = "bug_report"
	TypeFeatureRequest  = "feature_request"
	TypeGeneralFeedback = "general_feedback"
)

// ValidTypes lists the accepted feedback types, in the order they appear
// in validation error messages.
var ValidTypes = []string{TypeBugReport, TypeFeatureRequest, TypeGeneralFeedback}

// RecordTTLSeconds is how long a record lives before the store's TTL reaper
// removes it: 2 years (2 × 365 × 24 × 3600 seconds).
const RecordTTLSeconds = 2 * 365 * 24 * 3600

// FeedbackRecord is the single persisted entity. It is created exactly once
// per successful submission and never mutated afterwards; deletion is left to
// the store's TTL mechanism.
type FeedbackRecord struct {
	FeedbackID string                 `bson:"_id" json:"feedbackId"`
	Timestamp  string                 `bson:"timestamp" json:"timestamp"`
	ReceivedAt time.Time              `bson:"received_at" json:"receivedAt"`
	Feedback   string                 `bson:"feedback" json:"feedback"`
	Type       string                 `bson:"type" json:"type"`
	Diagnostic map[string]interface{} `bson:"diagnostic" json:"diagnostic"`
	Status     string                 `bson:"status" json:"status"`
	TTL        int64                  `bson:"ttl" json:"ttl"`
}

// IsValidType reports whether t is one of the three accepted feedback types.
func IsValidType(t string) bool {
	for _, v := range ValidTypes {
		if t == v {
			return true
		}
	}
	return false
}

// TypeLabel maps a feedback type to its human-readable display label,
// falling back to the raw value for unrecognized types.
func TypeLabel(t string) string {
	switch t {
	case TypeBugReport:
		return "Bug Report"
	case TypeFeatureRequest:
		return "Feature Request"
	case TypeGeneralFeedback:
		return "General Feedback"
	default:
		return t
	}
}
