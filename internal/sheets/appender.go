// Package sheets appends lead rows to a Google Sheets spreadsheet.
package sheets

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"golang.org/x/oauth2/google"
	"golang.org/x/oauth2/jwt"
	"google.golang.org/api/option"
	gsheets "google.golang.org/api/sheets/v4"

	"github.com/skillupx/lead-intake/pkg/logging"
)

var sheetsTracer = otel.Tracer("lead-intake.internal.sheets")

const (
	// DefaultRange covers the five lead columns on the first sheet.
	DefaultRange = "Sheet1!A:E"

	// ValueInputUserEntered lets the sheet parse values as if typed by a user.
	ValueInputUserEntered = "USER_ENTERED"
)

// Config identifies the spreadsheet and how to authenticate against it.
type Config struct {
	SpreadsheetID string
	Range         string

	// Service account credentials supplied inline. PrivateKey may contain
	// literal "\n" sequences, as produced by single-line env values.
	ClientEmail string
	PrivateKey  string

	// CredentialsFile is used when ClientEmail/PrivateKey are empty.
	CredentialsFile string

	// Endpoint overrides the API base URL (emulators, tests).
	Endpoint string
}

// Appender writes rows with spreadsheets.values.append.
type Appender struct {
	svc           *gsheets.Service
	spreadsheetID string
	rng           string
	logger        *logging.Logger
}

// NewAppender builds an authenticated Sheets client from cfg.
func NewAppender(ctx context.Context, cfg Config, logger *logging.Logger) (*Appender, error) {
	opts, err := clientOptions(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return NewAppenderWithOptions(ctx, cfg, logger, opts...)
}

// NewAppenderWithOptions builds an Appender with explicit client options.
func NewAppenderWithOptions(ctx context.Context, cfg Config, logger *logging.Logger, opts ...option.ClientOption) (*Appender, error) {
	if strings.TrimSpace(cfg.SpreadsheetID) == "" {
		return nil, errors.New("sheets: spreadsheet id required")
	}
	if cfg.Range == "" {
		cfg.Range = DefaultRange
	}
	if logger == nil {
		logger = logging.Default()
	}

	svc, err := gsheets.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("sheets: create service: %w", err)
	}

	return &Appender{
		svc:           svc,
		spreadsheetID: cfg.SpreadsheetID,
		rng:           cfg.Range,
		logger:        logger,
	}, nil
}

// AppendRow appends one row after the last populated row of the range.
func (a *Appender) AppendRow(ctx context.Context, row []string) error {
	ctx, span := sheetsTracer.Start(ctx, "sheets.append")
	defer span.End()
	span.SetAttributes(
		attribute.String("sheets.range", a.rng),
		attribute.Int("sheets.columns", len(row)),
	)

	values := make([]interface{}, len(row))
	for i, v := range row {
		values[i] = v
	}

	resp, err := a.svc.Spreadsheets.Values.
		Append(a.spreadsheetID, a.rng, &gsheets.ValueRange{Values: [][]interface{}{values}}).
		ValueInputOption(ValueInputUserEntered).
		Context(ctx).
		Do()
	if err != nil {
		span.RecordError(err)
		return fmt.Errorf("sheets: append failed: %w", err)
	}

	updated := ""
	if resp.Updates != nil {
		updated = resp.Updates.UpdatedRange
	}
	a.logger.Debug("sheet row appended", "range", a.rng, "updated_range", updated)
	return nil
}

func clientOptions(ctx context.Context, cfg Config) ([]option.ClientOption, error) {
	var opts []option.ClientOption
	if cfg.Endpoint != "" {
		opts = append(opts, option.WithEndpoint(cfg.Endpoint))
	}

	switch {
	case strings.TrimSpace(cfg.ClientEmail) != "" && strings.TrimSpace(cfg.PrivateKey) != "":
		jwtCfg := &jwt.Config{
			Email:      strings.TrimSpace(cfg.ClientEmail),
			PrivateKey: []byte(NormalizePrivateKey(cfg.PrivateKey)),
			Scopes:     []string{gsheets.SpreadsheetsScope},
			TokenURL:   google.JWTTokenURL,
		}
		opts = append(opts, option.WithHTTPClient(jwtCfg.Client(ctx)))
	case strings.TrimSpace(cfg.CredentialsFile) != "":
		opts = append(opts,
			option.WithCredentialsFile(cfg.CredentialsFile),
			option.WithScopes(gsheets.SpreadsheetsScope),
		)
	default:
		return nil, errors.New("sheets: service account credentials required")
	}
	return opts, nil
}

// NormalizePrivateKey turns escaped newlines back into real ones.
func NormalizePrivateKey(key string) string {
	return strings.ReplaceAll(key, `\n`, "\n")
}
