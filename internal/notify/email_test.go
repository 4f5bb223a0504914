package notify

import (
	"context"
	"testing"

	"github.com/simpliexteriors/site-api/pkg/logging"
)

func TestNewSendGridSender_RequiresAPIKey(t *testing.T) {
	sender := NewSendGridSender(SendGridConfig{FromEmail: "noreply@gosimpliut.com"}, logging.New("error"))
	if sender != nil {
		t.Fatal("expected nil sender without an API key")
	}
}

func TestNewSendGridSender_Defaults(t *testing.T) {
	sender := NewSendGridSender(SendGridConfig{APIKey: "SG.test", FromEmail: "noreply@gosimpliut.com"}, nil)
	if sender == nil {
		t.Fatal("expected sender with API key set")
	}
	if sender.fromName != "Simpli Roofing & Exteriors" {
		t.Fatalf("expected default from name, got %s", sender.fromName)
	}
}

func TestStubEmailSender(t *testing.T) {
	sender := NewStubEmailSender(nil)
	err := sender.Send(context.Background(), EmailMessage{To: "a@b.com", Subject: "hi"})
	if err != nil {
		t.Fatalf("stub sender should never fail: %v", err)
	}
}
