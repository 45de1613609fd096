package email

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"
)

type recordingSender struct {
	sent []Message
	err  error
}

func (s *recordingSender) Send(_ context.Context, msg Message) error {
	if s.err != nil {
		return s.err
	}
	s.sent = append(s.sent, msg)
	return nil
}

func sampleNotice() ReviewNotice {
	eventDate := time.Date(2024, 8, 12, 0, 0, 0, 0, time.UTC)
	return ReviewNotice{
		RecipientEmail: "juan@example.com",
		RecipientName:  "Juan Dela Cruz",
		FormTitle:      "Youth Registration 2024",
		EventTitle:     "Linggo ng Kabataan",
		EventDate:      &eventDate,
		Status:         "APPROVED",
		ReviewedBy:     "SK Chair",
		ReviewedAt:     time.Date(2024, 6, 15, 9, 0, 0, 0, time.UTC),
		Notes:          "Welcome aboard",
	}
}

func TestStatusLabel(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"APPROVED":  "Approved",
		"rejected":  "Rejected",
		" PENDING ": "Pending",
	}
	for in, want := range tests {
		if got := StatusLabel(in); got != want {
			t.Fatalf("StatusLabel(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestComposeReview(t *testing.T) {
	t.Parallel()

	msg, err := ComposeReview(sampleNotice())
	if err != nil {
		t.Fatalf("ComposeReview: %v", err)
	}
	if msg.To != "juan@example.com" {
		t.Fatalf("To = %q", msg.To)
	}
	if msg.Subject != "Submission Approved: Youth Registration 2024" {
		t.Fatalf("Subject = %q", msg.Subject)
	}
	for _, want := range []string{"Hello Juan Dela Cruz", "has been Approved", "Linggo ng Kabataan (August 12, 2024)", "Reviewed by: SK Chair", "June 15, 2024", "Welcome aboard"} {
		if !strings.Contains(msg.Text, want) {
			t.Fatalf("text body missing %q:\n%s", want, msg.Text)
		}
	}
	if !strings.Contains(msg.HTML, "<strong>Approved</strong>") {
		t.Fatalf("html body missing status:\n%s", msg.HTML)
	}
}

func TestComposeReview_EscapesHTML(t *testing.T) {
	t.Parallel()

	n := sampleNotice()
	n.Notes = "<script>alert(1)</script>"
	msg, err := ComposeReview(n)
	if err != nil {
		t.Fatalf("ComposeReview: %v", err)
	}
	if strings.Contains(msg.HTML, "<script>") {
		t.Fatalf("html body not escaped:\n%s", msg.HTML)
	}
}

func TestNotifyReview(t *testing.T) {
	t.Parallel()

	t.Run("sent", func(t *testing.T) {
		t.Parallel()
		s := &recordingSender{}
		out := NewNotifier(s, time.Second).NotifyReview(context.Background(), sampleNotice())
		if !out.Sent || out.Recipient != "juan@example.com" || out.Error != "" {
			t.Fatalf("outcome = %+v", out)
		}
		if len(s.sent) != 1 {
			t.Fatalf("sent %d messages, want 1", len(s.sent))
		}
	})

	t.Run("no recipient", func(t *testing.T) {
		t.Parallel()
		s := &recordingSender{}
		n := sampleNotice()
		n.RecipientEmail = "  "
		out := NewNotifier(s, time.Second).NotifyReview(context.Background(), n)
		if out.Sent || out.Skipped != SkippedNoRecipient {
			t.Fatalf("outcome = %+v", out)
		}
		if len(s.sent) != 0 {
			t.Fatalf("sender should not be called")
		}
	})

	t.Run("transport failure is reported", func(t *testing.T) {
		t.Parallel()
		s := &recordingSender{err: errors.New("connection refused")}
		out := NewNotifier(s, time.Second).NotifyReview(context.Background(), sampleNotice())
		if out.Sent || out.Error != "connection refused" || out.Recipient != "juan@example.com" {
			t.Fatalf("outcome = %+v", out)
		}
	})
}
