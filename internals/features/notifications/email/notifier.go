package email

import (
	"context"
	"strings"
	"time"

	"skyouth_backend/internals/helpers/besteffort"
)

const SkippedNoRecipient = "no recipient"

// Outcome reports a best-effort notification attempt. It never fails the caller.
type Outcome struct {
	Sent      bool   `json:"sent"`
	Recipient string `json:"recipient,omitempty"`
	Skipped   string `json:"skipped,omitempty"`
	Error     string `json:"error,omitempty"`
}

type Notifier struct {
	sender  Sender
	timeout time.Duration
}

func NewNotifier(sender Sender, timeout time.Duration) *Notifier {
	if sender == nil {
		sender = LogSender{}
	}
	return &Notifier{sender: sender, timeout: timeout}
}

// NotifyReview composes and sends the review email, reporting rather than
// returning any failure.
func (n *Notifier) NotifyReview(ctx context.Context, notice ReviewNotice) Outcome {
	to := strings.TrimSpace(notice.RecipientEmail)
	if to == "" {
		return Outcome{Sent: false, Skipped: SkippedNoRecipient}
	}

	rep := besteffort.Run(ctx, "review email to "+to, n.timeout, func(ctx context.Context) error {
		msg, err := ComposeReview(notice)
		if err != nil {
			return err
		}
		return n.sender.Send(ctx, msg)
	})

	return Outcome{Sent: rep.OK, Recipient: to, Error: rep.Error}
}
