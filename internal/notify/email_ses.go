package notify

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/aws/aws-sdk-go-v2/service/sesv2/types"
	"github.com/skillupx/lead-intake/pkg/logging"
)

// SESAPI is the subset of the SES v2 client the sender uses.
type SESAPI interface {
	SendEmail(ctx context.Context, params *sesv2.SendEmailInput, optFns ...func(*sesv2.Options)) (*sesv2.SendEmailOutput, error)
}

// SESConfig names the verified identity lead emails are sent from.
type SESConfig struct {
	FromEmail string
	FromName  string
}

// SESSender delivers lead notifications through AWS SES v2.
type SESSender struct {
	api    SESAPI
	from   string
	logger *logging.Logger
}

// NewSESSender returns nil when api is nil so callers can fall back to another provider.
func NewSESSender(api SESAPI, cfg SESConfig, logger *logging.Logger) *SESSender {
	if api == nil {
		return nil
	}
	if logger == nil {
		logger = logging.Default()
	}
	name := cfg.FromName
	if name == "" {
		name = DefaultFromName
	}
	return &SESSender{
		api:    api,
		from:   FormatFrom(name, cfg.FromEmail),
		logger: logger,
	}
}

func (s *SESSender) Send(ctx context.Context, msg EmailMessage) error {
	if s == nil || s.api == nil {
		return fmt.Errorf("notify: SES client not configured")
	}

	out, err := s.api.SendEmail(ctx, &sesv2.SendEmailInput{
		FromEmailAddress: aws.String(s.from),
		Destination: &types.Destination{
			ToAddresses: []string{msg.To},
			CcAddresses: msg.Cc,
		},
		Content: &types.EmailContent{
			Simple: &types.Message{
				Subject: utf8Content(msg.Subject),
				Body: &types.Body{
					Text: utf8Content(msg.Body),
					Html: utf8Content(msg.HTML),
				},
			},
		},
	})
	if err != nil {
		s.logger.Error("lead email via SES failed", "error", err, "to", msg.To)
		return fmt.Errorf("notify: ses send: %w", err)
	}

	s.logger.Info("lead email sent via SES", "to", msg.To, "cc", msg.Cc, "message_id", aws.ToString(out.MessageId))
	return nil
}

// utf8Content leaves empty parts nil so SES omits them.
func utf8Content(data string) *types.Content {
	if data == "" {
		return nil
	}
	return &types.Content{Data: aws.String(data), Charset: aws.String("UTF-8")}
}

var _ EmailSender = (*SESSender)(nil)
