package mail

import (
	"context"
	"log/slog"
	"runtime/debug"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	DefaultWorkers     = 2
	DefaultQueueSize   = 64
	DefaultSendTimeout = 30 * time.Second
)

// Job outcomes recorded in microblog_mail_jobs_total.
const (
	ResultSent    = "sent"
	ResultFailed  = "failed"
	ResultDropped = "dropped"
	ResultPanic   = "panic"
)

var mailJobsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "microblog_mail_jobs_total",
	Help: "Outgoing email jobs by outcome.",
}, []string{"result"})

type DispatcherConfig struct {
	Workers     int
	QueueSize   int
	SendTimeout time.Duration
}

// Dispatcher delivers messages on a fixed pool of workers fed by a bounded
// queue. Submit never blocks; when the queue is full the message is dropped.
// There is no retry and no ordering between messages.
type Dispatcher struct {
	sender  Sender
	logger  *slog.Logger
	workers int
	timeout time.Duration

	// mu orders Submit against the close of jobs in Shutdown.
	mu     sync.RWMutex
	jobs   chan Message
	closed bool
	wg     sync.WaitGroup

	started sync.Once
}

func NewDispatcher(sender Sender, logger *slog.Logger, cfg DispatcherConfig) *Dispatcher {
	if cfg.Workers <= 0 {
		cfg.Workers = DefaultWorkers
	}
	if cfg.QueueSize <= 0 {
		cfg.QueueSize = DefaultQueueSize
	}
	if cfg.SendTimeout <= 0 {
		cfg.SendTimeout = DefaultSendTimeout
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Dispatcher{
		sender:  sender,
		logger:  logger,
		workers: cfg.Workers,
		timeout: cfg.SendTimeout,
		jobs:    make(chan Message, cfg.QueueSize),
	}
}

// Start launches the workers. Sends run under contexts derived from ctx;
// cancelling it aborts in-flight sends but workers keep draining the queue
// until Shutdown. Calling Start more than once has no effect.
func (d *Dispatcher) Start(ctx context.Context) {
	d.started.Do(func() {
		for i := 0; i < d.workers; i++ {
			d.wg.Add(1)
			go d.worker(ctx, i)
		}
		d.logger.Info("mail dispatcher started",
			slog.Int("workers", d.workers),
			slog.Int("queue_size", cap(d.jobs)),
		)
	})
}

func (d *Dispatcher) worker(ctx context.Context, id int) {
	defer d.wg.Done()
	for msg := range d.jobs {
		d.deliver(ctx, msg, id)
	}
	d.logger.Debug("mail worker stopped", slog.Int("worker_id", id))
}

func (d *Dispatcher) deliver(ctx context.Context, msg Message, workerID int) {
	defer func() {
		if r := recover(); r != nil {
			mailJobsTotal.WithLabelValues(ResultPanic).Inc()
			d.logger.Error("mail job panic recovered",
				slog.Int("worker_id", workerID),
				slog.Any("panic", r),
				slog.String("stack", string(debug.Stack())),
			)
		}
	}()

	sendCtx, cancel := context.WithTimeout(ctx, d.timeout)
	defer cancel()

	if err := d.sender.Send(sendCtx, msg); err != nil {
		mailJobsTotal.WithLabelValues(ResultFailed).Inc()
		d.logger.Warn("mail job failed",
			slog.Int("worker_id", workerID),
			slog.String("subject", msg.Subject),
			slog.String("error", err.Error()),
		)
		return
	}
	mailJobsTotal.WithLabelValues(ResultSent).Inc()
}

// Submit queues msg and reports whether it was accepted. It returns false
// when the queue is full or the dispatcher is shut down.
func (d *Dispatcher) Submit(msg Message) bool {
	d.mu.RLock()
	defer d.mu.RUnlock()

	if d.closed {
		mailJobsTotal.WithLabelValues(ResultDropped).Inc()
		d.logger.Warn("mail dispatcher closed, dropping message", slog.String("subject", msg.Subject))
		return false
	}

	select {
	case d.jobs <- msg:
		return true
	default:
		mailJobsTotal.WithLabelValues(ResultDropped).Inc()
		d.logger.Warn("mail queue full, dropping message",
			slog.String("subject", msg.Subject),
			slog.Int("capacity", cap(d.jobs)),
		)
		return false
	}
}

// Pending is the number of queued messages not yet picked up by a worker.
func (d *Dispatcher) Pending() int { return len(d.jobs) }

// Shutdown stops accepting messages and waits for the workers to drain the
// queue, or for ctx to end. It is safe to call more than once.
func (d *Dispatcher) Shutdown(ctx context.Context) error {
	d.mu.Lock()
	if !d.closed {
		d.closed = true
		close(d.jobs)
		d.logger.Info("draining mail queue", slog.Int("pending", d.Pending()))
	}
	d.mu.Unlock()

	done := make(chan struct{})
	go func() {
		d.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		d.logger.Info("mail dispatcher stopped")
		return nil
	case <-ctx.Done():
		d.logger.Warn("mail dispatcher shutdown timed out", slog.Int("pending", d.Pending()))
		return ctx.Err()
	}
}
