package mainconfig

import (
	"context"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"

	appconfig "github.com/skillupx/lead-intake/internal/config"
	"github.com/skillupx/lead-intake/internal/leads"
	"github.com/skillupx/lead-intake/internal/notify"
	"github.com/skillupx/lead-intake/internal/observability/metrics"
	"github.com/skillupx/lead-intake/internal/sheets"
	"github.com/skillupx/lead-intake/pkg/logging"
)

// LoadAWSConfig centralizes AWS SDK initialization so both binaries share the
// same LocalStack/production wiring.
func LoadAWSConfig(ctx context.Context, cfg *appconfig.Config) (aws.Config, error) {
	loaders := []func(*config.LoadOptions) error{config.WithRegion(cfg.AWSRegion)}
	if strings.TrimSpace(cfg.AWSAccessKeyID) != "" && strings.TrimSpace(cfg.AWSSecretAccessKey) != "" {
		loaders = append(loaders, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AWSAccessKeyID, cfg.AWSSecretAccessKey, ""),
		))
	}
	return config.LoadDefaultConfig(ctx, loaders...)
}

// NewSESClient builds an SES v2 client honoring AWS_ENDPOINT_OVERRIDE.
func NewSESClient(awsCfg aws.Config, cfg *appconfig.Config) *sesv2.Client {
	return sesv2.NewFromConfig(awsCfg, func(o *sesv2.Options) {
		if endpoint := strings.TrimSpace(cfg.AWSEndpointOverride); endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
		}
	})
}

// NewSheetAppender builds the spreadsheet collaborator.
func NewSheetAppender(ctx context.Context, cfg *appconfig.Config, logger *logging.Logger) (*sheets.Appender, error) {
	sc := sheets.Config{
		SpreadsheetID: cfg.SheetID,
		Range:         cfg.SheetRange,
		Endpoint:      cfg.GoogleSheetsEndpoint,
	}
	if cfg.HasServiceAccountKey() {
		sc.ClientEmail = cfg.GoogleClientEmail
		sc.PrivateKey = cfg.GooglePrivateKey
	} else {
		sc.CredentialsFile = cfg.GoogleCredentialsFile
	}
	return sheets.NewAppender(ctx, sc, logger)
}

// NewEmailSender picks the email provider named by EMAIL_PROVIDER.
func NewEmailSender(ctx context.Context, cfg *appconfig.Config, logger *logging.Logger) (notify.EmailSender, error) {
	switch cfg.EmailProvider {
	case appconfig.EmailProviderSMTP:
		return notify.NewSMTPSender(notify.SMTPConfig{
			Host:     cfg.SMTPHost,
			Port:     cfg.SMTPPort,
			Username: cfg.EmailUser,
			Password: cfg.EmailPass,
			FromName: cfg.EmailFromName,
		}, logger)
	case appconfig.EmailProviderSendGrid:
		sender := notify.NewSendGridSender(notify.SendGridConfig{
			APIKey:    cfg.SendGridAPIKey,
			FromEmail: cfg.EmailUser,
			FromName:  cfg.EmailFromName,
		}, logger)
		if sender == nil {
			return nil, fmt.Errorf("mainconfig: SENDGRID_API_KEY required")
		}
		return sender, nil
	case appconfig.EmailProviderSES:
		awsCfg, err := LoadAWSConfig(ctx, cfg)
		if err != nil {
			return nil, fmt.Errorf("mainconfig: load aws config: %w", err)
		}
		return notify.NewSESSender(NewSESClient(awsCfg, cfg), notify.SESConfig{
			FromEmail: cfg.EmailUser,
			FromName:  cfg.EmailFromName,
		}, logger), nil
	case appconfig.EmailProviderStub:
		return notify.NewStubEmailSender(logger), nil
	default:
		return nil, fmt.Errorf("mainconfig: unknown email provider %q", cfg.EmailProvider)
	}
}

// NewLeadHandler wires the full intake pipeline from configuration. It is
// called once per process; the result is safe for concurrent requests.
func NewLeadHandler(ctx context.Context, cfg *appconfig.Config, m *metrics.LeadMetrics, logger *logging.Logger) (*leads.Handler, error) {
	loc, err := leads.LoadLocation(cfg.LeadTimezone)
	if err != nil {
		return nil, err
	}

	sheet, err := NewSheetAppender(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}

	sender, err := NewEmailSender(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}

	notifier := notify.NewLeadNotifier(sender, notify.LeadNotifierConfig{
		Recipient: cfg.LeadReceiverEmail,
		CC:        cfg.LeadCCEmail,
		Subject:   cfg.LeadEmailSubject,
	}, logger)

	svc := leads.NewService(leads.ServiceConfig{
		Sheet:    sheet,
		Notifier: notifier,
		Location: loc,
		Metrics:  m,
		Logger:   logger,
	})
	return leads.NewHandler(svc, m, logger), nil
}
