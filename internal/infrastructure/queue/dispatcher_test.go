package queue

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/jobgenix/crm-system/internal/core/ports"
)

type recordingNotifier struct {
	mu   sync.Mutex
	sent []string
	done chan struct{}
}

func newRecordingNotifier(expected int) *recordingNotifier {
	return &recordingNotifier{done: make(chan struct{}, expected)}
}

func (n *recordingNotifier) Send(recipient, subject, body string) error {
	n.mu.Lock()
	n.sent = append(n.sent, recipient+"|"+subject)
	n.mu.Unlock()
	n.done <- struct{}{}
	return nil
}

func (n *recordingNotifier) wait(t *testing.T, count int) []string {
	t.Helper()
	for i := 0; i < count; i++ {
		select {
		case <-n.done:
		case <-time.After(2 * time.Second):
			t.Fatalf("timed out waiting for delivery %d", i+1)
		}
	}
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]string(nil), n.sent...)
}

// keyedDedup marks keys in memory and reports repeats as duplicates.
type keyedDedup struct {
	mu   sync.Mutex
	seen map[string]bool
}

func (d *keyedDedup) IsDuplicate(_ context.Context, key string) (bool, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.seen[key], nil
}

func (d *keyedDedup) Mark(_ context.Context, key string) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.seen == nil {
		d.seen = make(map[string]bool)
	}
	d.seen[key] = true
	return nil
}

func TestDispatcher_Delivers(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	notifier := newRecordingNotifier(1)
	d := NewDispatcher(2, notifier, NoopDedup{}, zerolog.Nop())
	d.Start(ctx)

	d.Enqueue(ports.Notification{Recipient: "bob", Subject: "hello", Body: "world"})

	sent := notifier.wait(t, 1)
	if len(sent) != 1 || sent[0] != "bob|hello" {
		t.Fatalf("unexpected deliveries: %v", sent)
	}
}

func TestDispatcher_SkipsDuplicateKeys(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	notifier := newRecordingNotifier(2)
	d := NewDispatcher(1, notifier, &keyedDedup{}, zerolog.Nop())
	d.Start(ctx)

	// Same recipient keeps ordering: the repeat lands before the follow-up.
	d.Enqueue(ports.Notification{Recipient: "bob", Subject: "decision", Key: "l1:Accepted"})
	d.Enqueue(ports.Notification{Recipient: "bob", Subject: "decision", Key: "l1:Accepted"})
	d.Enqueue(ports.Notification{Recipient: "bob", Subject: "followup", Key: "l2:Rejected"})

	sent := notifier.wait(t, 2)
	if len(sent) != 2 {
		t.Fatalf("expected 2 deliveries, got %v", sent)
	}
	if sent[0] != "bob|decision" || sent[1] != "bob|followup" {
		t.Fatalf("unexpected deliveries: %v", sent)
	}
}

func TestDispatcher_SameRecipientSameWorker(t *testing.T) {
	d := NewDispatcher(8, nil, NoopDedup{}, zerolog.Nop())

	first := d.shardIndex("bob")
	for i := 0; i < 10; i++ {
		if got := d.shardIndex("bob"); got != first {
			t.Fatalf("shard index not stable: %d vs %d", got, first)
		}
	}
}
