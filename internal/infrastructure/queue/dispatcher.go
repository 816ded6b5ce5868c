package queue

import (
	"context"
	"hash/fnv"

	"github.com/rs/zerolog"

	"github.com/assetbridge/investment-platform/internal/api/metrics"
	"github.com/assetbridge/investment-platform/internal/core/ports"
)

const (
	defaultWorkers = 4
	channelBuffer  = 128
)

// Delivery is one outbound password-reset email waiting to be sent.
type Delivery struct {
	Email string
	Token string
}

// Dispatcher decouples email delivery from the request path. Deliveries are
// routed to a fixed set of workers by consistent hashing on the recipient
// address, guaranteeing per-recipient ordering. The Dispatcher itself
// satisfies ports.Mailer: enqueueing never fails the caller, and a worker
// failure is logged and counted, matching the platform's best-effort delivery
// contract.
type Dispatcher struct {
	workers []chan Delivery
	mailer  ports.Mailer
	log     zerolog.Logger
}

// NewDispatcher creates a Dispatcher with numWorkers sharded workers wrapping
// the given mailer. If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, mailer ports.Mailer, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &Dispatcher{
		workers: make([]chan Delivery, numWorkers),
		mailer:  mailer,
		log:     log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan Delivery, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled.
func (d *Dispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		go d.runWorker(ctx, i, ch)
	}
}

// SendPasswordResetEmail enqueues the delivery and returns immediately.
func (d *Dispatcher) SendPasswordResetEmail(_ context.Context, email, token string) error {
	d.workers[d.shardIndex(email)] <- Delivery{Email: email, Token: token}
	return nil
}

// shardIndex maps a recipient address deterministically to a worker index.
func (d *Dispatcher) shardIndex(email string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(email))
	return int(h.Sum32()) % len(d.workers)
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan Delivery) {
	for {
		select {
		case <-ctx.Done():
			return
		case delivery, ok := <-ch:
			if !ok {
				return
			}
			if err := d.mailer.SendPasswordResetEmail(ctx, delivery.Email, delivery.Token); err != nil {
				metrics.EmailDispatchTotal.WithLabelValues("failed").Inc()
				d.log.Error().Err(err).
					Str("to", delivery.Email).
					Int("worker_id", id).
					Msg("email delivery failed")
			}
		}
	}
}
