package ports

import (
	"context"

	"github.com/yottalab/membership-system/internal/core/domain"
)

// Mailer delivers one composed message synchronously.
type Mailer interface {
	Send(ctx context.Context, msg domain.MailMessage) error
}

// MailQueue accepts messages for asynchronous delivery.
type MailQueue interface {
	Enqueue(msg domain.MailMessage) error
}

// ContactLimiter throttles contact submissions per client key.
type ContactLimiter interface {
	// Allow reports whether another submission is permitted for key and
	// consumes one slot when it is.
	Allow(ctx context.Context, key string) (bool, error)
}

// ContactService handles public contact-form submissions.
type ContactService interface {
	// Submit validates, throttles and enqueues the notification and
	// auto-reply mails. Honeypot hits succeed without side effects.
	Submit(ctx context.Context, sub domain.ContactSubmission, clientIP string) error
}
