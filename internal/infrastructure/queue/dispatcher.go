package queue

import (
	"context"
	"fmt"
	"hash/fnv"

	"github.com/rs/zerolog"

	"github.com/jobgenix/crm-system/internal/api/metrics"
	"github.com/jobgenix/crm-system/internal/core/ports"
)

const (
	defaultWorkers = 4
	channelBuffer  = 64
)

// DedupChecker suppresses repeat deliveries of the same transition (an admin
// clicking "accept" twice, for example). Failures degrade to sending.
type DedupChecker interface {
	IsDuplicate(ctx context.Context, key string) (bool, error)
	Mark(ctx context.Context, key string) error
}

// NoopDedup is used when no dedup backend is configured: everything sends.
type NoopDedup struct{}

func (NoopDedup) IsDuplicate(context.Context, string) (bool, error) { return false, nil }
func (NoopDedup) Mark(context.Context, string) error                { return nil }

// Dispatcher routes notifications to a fixed set of workers using consistent
// hashing on the recipient, keeping one employee's notifications ordered.
// Enqueue is fire-and-forget: delivery failures are logged and counted, never
// surfaced to the state transition that queued the message.
type Dispatcher struct {
	workers  []chan ports.Notification
	notifier ports.Notifier
	dedup    DedupChecker
	log      zerolog.Logger
}

// NewDispatcher creates a Dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, notifier ports.Notifier, dedup DedupChecker, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	if dedup == nil {
		dedup = NoopDedup{}
	}
	d := &Dispatcher{
		workers:  make([]chan ports.Notification, numWorkers),
		notifier: notifier,
		dedup:    dedup,
		log:      log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan ports.Notification, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled.
func (d *Dispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		go d.runWorker(ctx, i, ch)
	}
}

// Enqueue hands a notification to the worker responsible for its recipient.
// Non-blocking up to channelBuffer capacity.
func (d *Dispatcher) Enqueue(n ports.Notification) {
	idx := d.shardIndex(n.Recipient)
	d.workers[idx] <- n
	metrics.NotificationQueueDepth.WithLabelValues(fmt.Sprint(idx)).Set(float64(len(d.workers[idx])))
}

func (d *Dispatcher) shardIndex(recipient string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(recipient))
	return int(h.Sum32()) % len(d.workers)
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan ports.Notification) {
	for {
		select {
		case <-ctx.Done():
			return
		case n, ok := <-ch:
			if !ok {
				return
			}
			d.deliver(ctx, id, n)
			metrics.NotificationQueueDepth.WithLabelValues(fmt.Sprint(id)).Set(float64(len(ch)))
		}
	}
}

func (d *Dispatcher) deliver(ctx context.Context, id int, n ports.Notification) {
	if n.Key != "" {
		isDup, err := d.dedup.IsDuplicate(ctx, n.Key)
		if err != nil {
			d.log.Warn().Err(err).Str("key", n.Key).Msg("dedup check failed, sending anyway")
		} else if isDup {
			metrics.NotificationsDedupTotal.WithLabelValues("hit").Inc()
			d.log.Debug().Str("key", n.Key).Msg("duplicate notification skipped")
			return
		} else {
			metrics.NotificationsDedupTotal.WithLabelValues("miss").Inc()
		}
		if err := d.dedup.Mark(ctx, n.Key); err != nil {
			d.log.Warn().Err(err).Str("key", n.Key).Msg("failed to set dedup key")
		}
	}

	if err := d.notifier.Send(n.Recipient, n.Subject, n.Body); err != nil {
		metrics.NotificationsTotal.WithLabelValues("failure").Inc()
		d.log.Error().Err(err).
			Str("recipient", n.Recipient).
			Int("worker_id", id).
			Msg("notification delivery failed")
		return
	}

	metrics.NotificationsTotal.WithLabelValues("success").Inc()
	d.log.Info().Str("recipient", n.Recipient).Str("subject", n.Subject).Msg("notification delivered")
}
