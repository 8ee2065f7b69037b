package email

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"untwist-backend/internal/models"

	"github.com/resend/resend-go/v2"
)

// diagnosticKeys are the fields the mobile apps include in the diagnostic
// payload, in display order. Missing entries render as "N/A".
var diagnosticKeys = []struct {
	key   string
	label string
}{
	{"appVersion", "App Version"},
	{"iosVersion", "iOS Version"},
	{"device", "Device"},
	{"locale", "Locale"},
}

// ResendNotifier emails a plaintext summary of each new feedback record via
// Resend. Notification is an optional capability: if the API key, recipient,
// or sender is not configured, every send is skipped with a warning.
type ResendNotifier struct {
	apiKey string
	from   string
	to     string
}

func NewResendNotifier(apiKey, from, to string) *ResendNotifier {
	return &ResendNotifier{
		apiKey: apiKey,
		from:   from,
		to:     to,
	}
}

func (n *ResendNotifier) Notify(ctx context.Context, record *models.FeedbackRecord) error {
	if n.apiKey == "" || n.from == "" || n.to == "" {
		log.Println("⚠️  Email not configured, skipping feedback notification")
		return nil
	}

	client := resend.NewClient(n.apiKey)

	params := &resend.SendEmailRequest{
		From:    n.from,
		To:      []string{n.to},
		Subject: Subject(record),
		Text:    Body(record),
	}

	sent, err := client.Emails.Send(params)
	if err != nil {
		return fmt.Errorf("failed to send feedback email: %w", err)
	}
	log.Printf("📧 Feedback notification sent (ID: %s) for %s", sent.Id, record.FeedbackID)
	return nil
}

// Subject builds the notification subject line: the human-readable type label
// plus the first 8 characters of the record's id.
func Subject(record *models.FeedbackRecord) string {
	shortID := record.FeedbackID
	if len(shortID) > 8 {
		shortID = shortID[:8]
	}
	return fmt.Sprintf("[Untwist] New %s - %s", models.TypeLabel(record.Type), shortID)
}

// Body renders the plaintext email: identifier, type label, receipt time, the
// raw feedback text, and the diagnostic fields with "N/A" fallbacks.
func Body(record *models.FeedbackRecord) string {
	var b strings.Builder

	fmt.Fprintf(&b, "New feedback received for Untwist app\n\n")
	fmt.Fprintf(&b, "Feedback ID: %s\n", record.FeedbackID)
	fmt.Fprintf(&b, "Type: %s\n", models.TypeLabel(record.Type))
	fmt.Fprintf(&b, "Received: %s\n\n", record.ReceivedAt.Format(time.RFC3339))
	fmt.Fprintf(&b, "--- FEEDBACK ---\n%s\n\n", record.Feedback)
	fmt.Fprintf(&b, "--- DIAGNOSTIC INFO ---\n%s", formatDiagnostic(record.Diagnostic))

	return b.String()
}

func formatDiagnostic(diagnostic map[string]interface{}) string {
	if diagnostic == nil {
		return "No diagnostic information provided"
	}

	lines := make([]string, 0, len(diagnosticKeys))
	for _, dk := range diagnosticKeys {
		value := "N/A"
		if v, ok := diagnostic[dk.key]; ok {
			value = fmt.Sprintf("%v", v)
		}
		lines = append(lines, fmt.Sprintf("%s: %s", dk.label, value))
	}
	return strings.Join(lines, "\n")
}
