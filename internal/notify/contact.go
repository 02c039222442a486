package notify

import (
	"context"
	"fmt"
	"html"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"github.com/fivesolo/site-api/internal/i18n"
	"github.com/fivesolo/site-api/internal/submission"
	"github.com/fivesolo/site-api/pkg/logging"
)

var contactTracer = otel.Tracer("fivesolo.internal.notify.contact")

// ContactNotifier formats a validated submission into a transactional email
// for the studio inbox and dispatches it through an EmailSender.
type ContactNotifier struct {
	sender      EmailSender
	recipient   string
	sendTimeout time.Duration
	logger      *logging.Logger
}

// NewContactNotifier creates a notifier delivering to recipient.
func NewContactNotifier(sender EmailSender, recipient string, logger *logging.Logger) *ContactNotifier {
	if logger == nil {
		logger = logging.Default()
	}
	return &ContactNotifier{
		sender:      sender,
		recipient:   recipient,
		sendTimeout: 15 * time.Second,
		logger:      logger,
	}
}

// NotifySubmission renders and sends the notification email. Every
// user-supplied value is HTML-escaped before interpolation; the form is the
// one place untrusted input reaches a rendering context.
func (n *ContactNotifier) NotifySubmission(ctx context.Context, sub submission.Submission) error {
	if n.sender == nil {
		return fmt.Errorf("notify: no email sender configured")
	}

	ctx, span := contactTracer.Start(ctx, "notify.contact.send")
	defer span.End()
	span.SetAttributes(attribute.String("submission.locale", string(sub.Locale)))

	messages := i18n.ForLocale(sub.Locale)
	subject := i18n.T(messages, "contact.notification.subject", "New contact request from the website")

	msg := EmailMessage{
		To:      n.recipient,
		Subject: subject,
		Body:    plainBody(messages, sub),
		HTML:    htmlBody(messages, sub),
		ReplyTo: sub.Email,
	}

	ctx, cancel := context.WithTimeout(ctx, n.sendTimeout)
	defer cancel()

	if err := n.sender.Send(ctx, msg); err != nil {
		span.RecordError(err)
		return fmt.Errorf("notify: contact email: %w", err)
	}
	return nil
}

func htmlBody(messages i18n.Messages, sub submission.Submission) string {
	esc := html.EscapeString
	return fmt.Sprintf(
		`<h2>%s</h2>
<table>
<tr><td><strong>%s</strong></td><td>%s</td></tr>
<tr><td><strong>%s</strong></td><td>%s</td></tr>
<tr><td><strong>%s</strong></td><td>%s</td></tr>
</table>
<p><strong>%s</strong></p>
<p>%s</p>`,
		esc(i18n.T(messages, "contact.notification.intro", "A visitor left a message through the contact form.")),
		esc(i18n.T(messages, "contact.notification.nameLabel", "Name")), esc(sub.Name),
		esc(i18n.T(messages, "contact.notification.emailLabel", "Email")), esc(sub.Email),
		esc(i18n.T(messages, "contact.notification.phoneLabel", "Phone")), esc(sub.Phone.E164),
		esc(i18n.T(messages, "contact.notification.messageLabel", "Message")),
		esc(sub.Message),
	)
}

func plainBody(messages i18n.Messages, sub submission.Submission) string {
	return fmt.Sprintf("%s\n\n%s: %s\n%s: %s\n%s: %s\n\n%s:\n%s\n",
		i18n.T(messages, "contact.notification.intro", "A visitor left a message through the contact form."),
		i18n.T(messages, "contact.notification.nameLabel", "Name"), sub.Name,
		i18n.T(messages, "contact.notification.emailLabel", "Email"), sub.Email,
		i18n.T(messages, "contact.notification.phoneLabel", "Phone"), sub.Phone.E164,
		i18n.T(messages, "contact.notification.messageLabel", "Message"), sub.Message,
	)
}

var _ submission.Notifier = (*ContactNotifier)(nil)
