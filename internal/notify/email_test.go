package notify

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	gomail "github.com/wneessen/go-mail"
)

func TestNewSendGridSender_NilWithoutAPIKey(t *testing.T) {
	sender := NewSendGridSender(SendGridConfig{
		APIKey:    "",
		FromEmail: "test@example.com",
	}, nil)

	if sender != nil {
		t.Error("expected nil sender when API key is empty")
	}
}

func TestNewSendGridSender_DefaultFromName(t *testing.T) {
	sender := NewSendGridSender(SendGridConfig{
		APIKey:    "test-key",
		FromEmail: "test@example.com",
	}, nil)

	if sender == nil {
		t.Fatal("expected non-nil sender")
	}
	if sender.fromName != DefaultFromName {
		t.Errorf("expected default from name %q, got %q", DefaultFromName, sender.fromName)
	}
}

func TestSendGridSender_Send_NilClient(t *testing.T) {
	sender := &SendGridSender{client: nil}

	err := sender.Send(context.Background(), EmailMessage{
		To:      "recipient@example.com",
		Subject: "Test",
		Body:    "Test body",
	})

	if err == nil {
		t.Error("expected error when client is nil")
	}
}

func TestStubEmailSender_Send(t *testing.T) {
	sender := NewStubEmailSender(nil)

	err := sender.Send(context.Background(), EmailMessage{
		To:      "recipient@example.com",
		Cc:      []string{"cc@example.com"},
		Subject: "Test Subject",
		HTML:    "<p>hi</p>",
	})

	if err != nil {
		t.Errorf("stub sender should not return error, got: %v", err)
	}
}

func TestSplitAddresses(t *testing.T) {
	got := SplitAddresses(" a@example.com, ,b@example.com ")
	if len(got) != 2 || got[0] != "a@example.com" || got[1] != "b@example.com" {
		t.Fatalf("unexpected addresses %v", got)
	}
	if SplitAddresses("") != nil {
		t.Fatalf("expected nil for empty input")
	}
}

type fakeSES struct {
	input *sesv2.SendEmailInput
	err   error
}

func (f *fakeSES) SendEmail(_ context.Context, params *sesv2.SendEmailInput, _ ...func(*sesv2.Options)) (*sesv2.SendEmailOutput, error) {
	f.input = params
	if f.err != nil {
		return nil, f.err
	}
	return &sesv2.SendEmailOutput{MessageId: aws.String("msg-1")}, nil
}

func TestSESSender_SendBuildsDestination(t *testing.T) {
	api := &fakeSES{}
	sender := NewSESSender(api, SESConfig{FromEmail: "leads@example.com"}, nil)

	err := sender.Send(context.Background(), EmailMessage{
		To:      "owner@example.com",
		Cc:      []string{"partner@example.com"},
		Subject: "New SkillupX Lead",
		Body:    "text",
		HTML:    "<p>html</p>",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := aws.ToString(api.input.FromEmailAddress); got != "SkillupX Leads <leads@example.com>" {
		t.Fatalf("unexpected from %q", got)
	}
	if len(api.input.Destination.CcAddresses) != 1 || api.input.Destination.CcAddresses[0] != "partner@example.com" {
		t.Fatalf("expected cc address, got %v", api.input.Destination.CcAddresses)
	}
	if api.input.Content.Simple.Body.Html == nil || api.input.Content.Simple.Body.Text == nil {
		t.Fatalf("expected both html and text bodies")
	}
}

func TestSESSender_OmitsEmptyParts(t *testing.T) {
	api := &fakeSES{}
	sender := NewSESSender(api, SESConfig{FromEmail: "leads@example.com", FromName: "Desk"}, nil)

	if err := sender.Send(context.Background(), EmailMessage{To: "owner@example.com", Subject: "s", HTML: "<p/>"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if api.input.Content.Simple.Body.Text != nil {
		t.Fatalf("expected no text part, got %v", aws.ToString(api.input.Content.Simple.Body.Text.Data))
	}
	if got := aws.ToString(api.input.Content.Simple.Body.Html.Data); got != "<p/>" {
		t.Fatalf("unexpected html %q", got)
	}
	if got := aws.ToString(api.input.FromEmailAddress); got != "Desk <leads@example.com>" {
		t.Fatalf("unexpected from %q", got)
	}
}

func TestSESSender_SendError(t *testing.T) {
	api := &fakeSES{err: errors.New("throttled")}
	sender := NewSESSender(api, SESConfig{FromEmail: "leads@example.com"}, nil)

	err := sender.Send(context.Background(), EmailMessage{To: "owner@example.com", Subject: "s", HTML: "<p/>"})
	if err == nil || !errors.Is(err, api.err) {
		t.Fatalf("expected wrapped SES error, got %v", err)
	}
}

func TestNewSMTPSender_RequiresCredentials(t *testing.T) {
	if _, err := NewSMTPSender(SMTPConfig{Host: "smtp.gmail.com", Username: "leads@example.com"}, nil); err == nil {
		t.Fatal("expected error without password")
	}
	if _, err := NewSMTPSender(SMTPConfig{Username: "leads@example.com", Password: "pw"}, nil); err == nil {
		t.Fatal("expected error without host")
	}
}

func TestSMTPSender_BuildMessage(t *testing.T) {
	sender, err := NewSMTPSender(SMTPConfig{
		Host:     "smtp.gmail.com",
		Username: "leads@example.com",
		Password: "app-password",
	}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sender.cfg.Port != 587 || sender.cfg.FromName != DefaultFromName {
		t.Fatalf("expected defaults, got %+v", sender.cfg)
	}

	m, err := sender.buildMessage(EmailMessage{
		To:      "owner@example.com",
		Cc:      []string{"partner@example.com"},
		Subject: "New SkillupX Lead",
		Body:    "text",
		HTML:    "<p>html</p>",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	rcpts, err := m.GetRecipients()
	if err != nil {
		t.Fatalf("recipients: %v", err)
	}
	if len(rcpts) != 2 {
		t.Fatalf("expected to+cc recipients, got %v", rcpts)
	}
	if subj := m.GetGenHeader(gomail.HeaderSubject); len(subj) != 1 || subj[0] != "New SkillupX Lead" {
		t.Fatalf("unexpected subject header %v", subj)
	}
}

func TestSMTPSender_BuildMessageRejectsBadRecipient(t *testing.T) {
	sender, err := NewSMTPSender(SMTPConfig{Host: "smtp.gmail.com", Username: "leads@example.com", Password: "pw"}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := sender.buildMessage(EmailMessage{To: "not an address", Subject: "s", HTML: "<p/>"}); err == nil {
		t.Fatal("expected invalid recipient error")
	}
}
