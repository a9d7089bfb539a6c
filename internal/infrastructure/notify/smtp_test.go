package notify

import (
	"errors"
	"net/smtp"
	"strings"
	"testing"
)

func testConfig() Config {
	return Config{
		Host:   "mail.local",
		Port:   2525,
		From:   "noreply@jobgenix.local",
		Domain: "jobgenix.local",
	}
}

func TestSMTPNotifier_CompletesBareRecipient(t *testing.T) {
	n := NewSMTPNotifier(testConfig())

	var gotAddr, gotFrom string
	var gotTo []string
	var gotMsg []byte
	n.send = func(addr string, _ smtp.Auth, from string, to []string, msg []byte) error {
		gotAddr, gotFrom, gotTo, gotMsg = addr, from, to, msg
		return nil
	}

	if err := n.Send("bob", "Leave application accepted", "Enjoy."); err != nil {
		t.Fatalf("Send returned error: %v", err)
	}
	if gotAddr != "mail.local:2525" {
		t.Fatalf("unexpected relay address: %s", gotAddr)
	}
	if gotFrom != "noreply@jobgenix.local" {
		t.Fatalf("unexpected from: %s", gotFrom)
	}
	if len(gotTo) != 1 || gotTo[0] != "bob@jobgenix.local" {
		t.Fatalf("bare recipient not completed: %v", gotTo)
	}
	if !strings.Contains(string(gotMsg), "Subject: Leave application accepted") {
		t.Fatalf("subject missing from message: %q", string(gotMsg))
	}
}

func TestSMTPNotifier_KeepsFullAddress(t *testing.T) {
	n := NewSMTPNotifier(testConfig())

	var gotTo []string
	n.send = func(_ string, _ smtp.Auth, _ string, to []string, _ []byte) error {
		gotTo = to
		return nil
	}

	if err := n.Send("bob@example.com", "s", "b"); err != nil {
		t.Fatal(err)
	}
	if len(gotTo) != 1 || gotTo[0] != "bob@example.com" {
		t.Fatalf("full address rewritten: %v", gotTo)
	}
}

func TestSMTPNotifier_WrapsSendError(t *testing.T) {
	n := NewSMTPNotifier(testConfig())

	relayErr := errors.New("connection refused")
	n.send = func(string, smtp.Auth, string, []string, []byte) error {
		return relayErr
	}

	err := n.Send("bob", "s", "b")
	if !errors.Is(err, relayErr) {
		t.Fatalf("expected wrapped relay error, got %v", err)
	}
}
