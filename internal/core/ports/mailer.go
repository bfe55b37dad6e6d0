package ports

import "context"

// MailMessage is one outbound HTML email.
type MailMessage struct {
	To       string
	Subject  string
	HTMLBody string
}

// Mailer is the outbound transactional-email transport. Implementations must
// honor the context deadline and be safe for concurrent use: the notification
// dispatcher fans out sends across goroutines with per-recipient timeouts.
type Mailer interface {
	Send(ctx context.Context, msg MailMessage) error
}
