package dispatcher

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/piresc/roadbuddy/internal/pkg/logger"
	"github.com/piresc/roadbuddy/internal/pkg/models"
	"github.com/piresc/roadbuddy/services/notification"
)

const (
	defaultQueueSize    = 256
	defaultWorkers      = 2
	defaultPublishLimit = 5 * time.Second
)

// Dispatcher hands notifications to the event gateway on background
// workers. Publish never blocks: when the queue is full the message is
// dropped and logged.
type Dispatcher struct {
	gw           notification.EventGW
	queue        chan *models.NotificationEvent
	workers      int
	publishLimit time.Duration
	now          func() time.Time

	mu      sync.RWMutex
	closed  bool
	started bool
	wg      sync.WaitGroup
}

type Option func(*Dispatcher)

// WithPublishTimeout bounds each gateway publish
func WithPublishTimeout(timeout time.Duration) Option {
	return func(d *Dispatcher) { d.publishLimit = timeout }
}

// NewDispatcher creates a dispatcher; call Start to run its workers
func NewDispatcher(cfg models.NotificationConfig, gw notification.EventGW, opts ...Option) *Dispatcher {
	size := cfg.QueueSize
	if size <= 0 {
		size = defaultQueueSize
	}
	workers := cfg.Workers
	if workers <= 0 {
		workers = defaultWorkers
	}

	d := &Dispatcher{
		gw:           gw,
		queue:        make(chan *models.NotificationEvent, size),
		workers:      workers,
		publishLimit: defaultPublishLimit,
		now:          time.Now,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Start launches the workers. They exit once Stop has drained the queue.
func (d *Dispatcher) Start() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.started || d.closed {
		return
	}
	d.started = true

	for i := 0; i < d.workers; i++ {
		d.wg.Add(1)
		go d.run(i)
	}
	logger.Info("Notification dispatcher started", logger.Int("workers", d.workers), logger.Int("queue_size", cap(d.queue)))
}

// Publish enqueues a message for recipientID
func (d *Dispatcher) Publish(recipientID, rideID, message string) {
	event := &models.NotificationEvent{
		ID:          uuid.NewString(),
		RecipientID: recipientID,
		RideID:      rideID,
		Message:     message,
		CreatedAt:   d.now().UTC(),
	}

	d.mu.RLock()
	defer d.mu.RUnlock()
	if d.closed {
		logger.Warn("Notification dropped, dispatcher stopped",
			logger.UserID(recipientID), logger.RideID(rideID))
		return
	}

	select {
	case d.queue <- event:
	default:
		logger.Warn("Notification dropped, queue full",
			logger.UserID(recipientID), logger.RideID(rideID), logger.Int("queue_size", cap(d.queue)))
	}
}

// Stop refuses new messages and waits for queued ones to be published or
// for ctx to end
func (d *Dispatcher) Stop(ctx context.Context) error {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		return nil
	}
	d.closed = true
	close(d.queue)
	started := d.started
	d.mu.Unlock()

	if !started {
		return nil
	}

	done := make(chan struct{})
	go func() {
		d.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		logger.Info("Notification dispatcher stopped")
		return nil
	case <-ctx.Done():
		logger.Warn("Notification dispatcher stopped before draining", logger.Int("pending", len(d.queue)))
		return ctx.Err()
	}
}

func (d *Dispatcher) run(worker int) {
	defer d.wg.Done()
	for event := range d.queue {
		d.deliver(worker, event)
	}
}

func (d *Dispatcher) deliver(worker int, event *models.NotificationEvent) {
	ctx, cancel := context.WithTimeout(context.Background(), d.publishLimit)
	defer cancel()

	if err := d.gw.PublishEvent(ctx, event); err != nil {
		logger.Error("Failed to publish notification",
			logger.Int("worker", worker),
			logger.String("notification_id", event.ID),
			logger.UserID(event.RecipientID),
			logger.RideID(event.RideID),
			logger.Err(err))
	}
}
