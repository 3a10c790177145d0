package notify

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/skillupx/lead-intake/pkg/logging"
	gomail "github.com/wneessen/go-mail"
)

// SMTPConfig configures an authenticated mail relay such as Gmail with an app password.
type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	FromName string
}

// SMTPSender delivers email through an authenticated SMTP relay. A client is
// dialed per message; the sender itself is immutable after construction.
type SMTPSender struct {
	cfg    SMTPConfig
	opts   []gomail.Option
	logger *logging.Logger
}

// NewSMTPSender validates cfg and prepares the relay options.
func NewSMTPSender(cfg SMTPConfig, logger *logging.Logger) (*SMTPSender, error) {
	if strings.TrimSpace(cfg.Host) == "" {
		return nil, errors.New("notify: smtp host required")
	}
	if strings.TrimSpace(cfg.Username) == "" || cfg.Password == "" {
		return nil, errors.New("notify: smtp credentials required")
	}
	if cfg.Port == 0 {
		cfg.Port = 587
	}
	if cfg.FromName == "" {
		cfg.FromName = DefaultFromName
	}
	if logger == nil {
		logger = logging.Default()
	}

	opts := []gomail.Option{
		gomail.WithPort(cfg.Port),
		gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
		gomail.WithUsername(cfg.Username),
		gomail.WithPassword(cfg.Password),
	}
	if cfg.Port == 465 {
		opts = append(opts, gomail.WithSSL())
	} else {
		opts = append(opts, gomail.WithTLSPolicy(gomail.TLSMandatory))
	}

	// Fail at startup rather than on the first lead if the options are rejected.
	if _, err := gomail.NewClient(cfg.Host, opts...); err != nil {
		return nil, fmt.Errorf("notify: smtp client: %w", err)
	}

	return &SMTPSender{cfg: cfg, opts: opts, logger: logger}, nil
}

// Send dials the relay and delivers msg.
func (s *SMTPSender) Send(ctx context.Context, msg EmailMessage) error {
	m, err := s.buildMessage(msg)
	if err != nil {
		return err
	}

	client, err := gomail.NewClient(s.cfg.Host, s.opts...)
	if err != nil {
		return fmt.Errorf("notify: smtp client: %w", err)
	}
	if err := client.DialAndSendWithContext(ctx, m); err != nil {
		s.logger.Error("smtp send failed", "error", err, "to", msg.To, "host", s.cfg.Host)
		return fmt.Errorf("notify: smtp send failed: %w", err)
	}

	s.logger.Info("email sent via smtp", "to", msg.To, "cc", msg.Cc, "subject", msg.Subject)
	return nil
}

func (s *SMTPSender) buildMessage(msg EmailMessage) (*gomail.Msg, error) {
	m := gomail.NewMsg()
	if err := m.FromFormat(s.cfg.FromName, s.cfg.Username); err != nil {
		return nil, fmt.Errorf("notify: smtp from: %w", err)
	}
	if err := m.To(msg.To); err != nil {
		return nil, fmt.Errorf("notify: smtp to: %w", err)
	}
	if len(msg.Cc) > 0 {
		if err := m.Cc(msg.Cc...); err != nil {
			return nil, fmt.Errorf("notify: smtp cc: %w", err)
		}
	}
	m.Subject(msg.Subject)

	switch {
	case msg.HTML != "" && msg.Body != "":
		m.SetBodyString(gomail.TypeTextPlain, msg.Body)
		m.AddAlternativeString(gomail.TypeTextHTML, msg.HTML)
	case msg.HTML != "":
		m.SetBodyString(gomail.TypeTextHTML, msg.HTML)
	default:
		m.SetBodyString(gomail.TypeTextPlain, msg.Body)
	}
	return m, nil
}

var _ EmailSender = (*SMTPSender)(nil)
