package notify

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/skillupx/lead-intake/internal/notify/templates"
	"github.com/skillupx/lead-intake/pkg/logging"
)

const (
	// DefaultFromName is the display name on outgoing lead notifications.
	DefaultFromName = "SkillupX Leads"

	// DefaultLeadSubject is the subject line of lead notifications.
	DefaultLeadSubject = "New SkillupX Lead"
)

const leadHTMLTemplate = `<h3>New Lead</h3>
<p><strong>Name:</strong> {{.Name}}</p>
<p><strong>Email:</strong> {{.Email}}</p>
<p><strong>Phone:</strong> {{.Phone}}</p>
<p><strong>Subjects:</strong> {{.Subjects}}</p>
<p><strong>Submitted At:</strong> {{.SubmittedAt}}</p>
`

const leadTextTemplate = `New Lead

Name: {{.Name}}
Email: {{.Email}}
Phone: {{.Phone}}
Subjects: {{.Subjects}}
Submitted At: {{.SubmittedAt}}
`

// LeadNotice carries the five lead fields embedded in the notification.
type LeadNotice struct {
	Name        string
	Email       string
	Phone       string
	Subjects    string
	SubmittedAt string
}

// LeadNotifierConfig holds the fixed recipients and subject.
type LeadNotifierConfig struct {
	Recipient string
	CC        string // optional, comma separated
	Subject   string
}

// LeadNotifier renders and sends the new-lead email to the operators.
type LeadNotifier struct {
	sender    EmailSender
	recipient string
	cc        []string
	subject   string
	renderer  templates.Renderer
	logger    *logging.Logger
}

// NewLeadNotifier creates a notifier bound to one sender and recipient set.
func NewLeadNotifier(sender EmailSender, cfg LeadNotifierConfig, logger *logging.Logger) *LeadNotifier {
	if logger == nil {
		logger = logging.Default()
	}
	if cfg.Subject == "" {
		cfg.Subject = DefaultLeadSubject
	}
	return &LeadNotifier{
		sender:    sender,
		recipient: strings.TrimSpace(cfg.Recipient),
		cc:        SplitAddresses(cfg.CC),
		subject:   cfg.Subject,
		logger:    logger,
	}
}

// Compose builds the notification without sending it.
func (n *LeadNotifier) Compose(notice LeadNotice) (EmailMessage, error) {
	html, err := n.renderer.RenderHTML("lead_html", leadHTMLTemplate, notice)
	if err != nil {
		return EmailMessage{}, fmt.Errorf("notify: render lead html: %w", err)
	}
	text, err := n.renderer.RenderText("lead_text", leadTextTemplate, notice)
	if err != nil {
		return EmailMessage{}, fmt.Errorf("notify: render lead text: %w", err)
	}
	return EmailMessage{
		To:      n.recipient,
		Cc:      n.cc,
		Subject: n.subject,
		Body:    text,
		HTML:    html,
	}, nil
}

// NotifyNewLead sends exactly one email for the lead.
func (n *LeadNotifier) NotifyNewLead(ctx context.Context, notice LeadNotice) error {
	if n.sender == nil {
		return errors.New("notify: email sender not configured")
	}
	if n.recipient == "" {
		return errors.New("notify: lead recipient not configured")
	}

	msg, err := n.Compose(notice)
	if err != nil {
		return err
	}
	if err := n.sender.Send(ctx, msg); err != nil {
		return err
	}

	n.logger.Info("lead notification sent", "lead_name", notice.Name, "lead_email", notice.Email, "to", n.recipient, "cc", n.cc)
	return nil
}

// FormatFrom renders a display-name address such as "SkillupX Leads <leads@example.com>".
func FormatFrom(name, email string) string {
	if name == "" {
		return email
	}
	return fmt.Sprintf("%s <%s>", name, email)
}
