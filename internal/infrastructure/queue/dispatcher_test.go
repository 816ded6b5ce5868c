package queue

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

type recordingMailer struct {
	mu    sync.Mutex
	seen  []string
	errFn func(email string) error
}

func (m *recordingMailer) SendPasswordResetEmail(_ context.Context, email, token string) error {
	if m.errFn != nil {
		if err := m.errFn(email); err != nil {
			return err
		}
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.seen = append(m.seen, email+":"+token)
	return nil
}

func (m *recordingMailer) delivered() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, len(m.seen))
	copy(out, m.seen)
	return out
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatalf("condition not met within deadline")
}

func TestDispatcher_DeliversEnqueuedMail(t *testing.T) {
	mailer := &recordingMailer{}
	d := NewDispatcher(4, mailer, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	d.Start(ctx)

	if err := d.SendPasswordResetEmail(ctx, "alice@example.com", "tok-1"); err != nil {
		t.Fatalf("enqueue returned error: %v", err)
	}
	if err := d.SendPasswordResetEmail(ctx, "bob@example.com", "tok-2"); err != nil {
		t.Fatalf("enqueue returned error: %v", err)
	}

	waitFor(t, func() bool { return len(mailer.delivered()) == 2 })
}

func TestDispatcher_SameRecipientSameWorker(t *testing.T) {
	d := NewDispatcher(4, &recordingMailer{}, zerolog.Nop())

	first := d.shardIndex("alice@example.com")
	for i := 0; i < 10; i++ {
		if got := d.shardIndex("alice@example.com"); got != first {
			t.Fatalf("shard index not deterministic: %d vs %d", got, first)
		}
	}
}

func TestDispatcher_WorkerFailureDoesNotStopDelivery(t *testing.T) {
	mailer := &recordingMailer{
		errFn: func(email string) error {
			if email == "broken@example.com" {
				return context.DeadlineExceeded
			}
			return nil
		},
	}
	d := NewDispatcher(1, mailer, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	d.Start(ctx)

	if err := d.SendPasswordResetEmail(ctx, "broken@example.com", "tok-1"); err != nil {
		t.Fatalf("enqueue returned error: %v", err)
	}
	if err := d.SendPasswordResetEmail(ctx, "fine@example.com", "tok-2"); err != nil {
		t.Fatalf("enqueue returned error: %v", err)
	}

	// The failed delivery is dropped; the next one still goes out.
	waitFor(t, func() bool { return len(mailer.delivered()) == 1 })
	if got := mailer.delivered()[0]; got != "fine@example.com:tok-2" {
		t.Fatalf("unexpected delivery: %s", got)
	}
}
