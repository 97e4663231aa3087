package job

import (
	"context"
	"sync"
	"time"

	"mise/port/search_analytics_port"
	"mise/utils/logger"
	"mise/utils/metrics"
)

const (
	defaultQueueSize = 1024
	recordTimeout    = 5 * time.Second
	drainGracePeriod = 2 * time.Second
)

// AnalyticsWorker drains search events into the append-only query log
// from a bounded in-memory queue. Enqueue never blocks the request
// path: when the queue is full the event is dropped and counted, which
// keeps analytics strictly best-effort.
type AnalyticsWorker struct {
	recordPort search_analytics_port.RecordPort
	queue      chan search_analytics_port.Event
	done       chan struct{}
	wg         sync.WaitGroup
	startOnce  sync.Once
	stopOnce   sync.Once
}

func NewAnalyticsWorker(recordPort search_analytics_port.RecordPort, queueSize int) *AnalyticsWorker {
	if queueSize < 1 {
		queueSize = defaultQueueSize
	}
	return &AnalyticsWorker{
		recordPort: recordPort,
		queue:      make(chan search_analytics_port.Event, queueSize),
		done:       make(chan struct{}),
	}
}

// Enqueue hands an event to the worker without blocking. Events offered
// after Stop, or while the queue is full, are dropped.
func (w *AnalyticsWorker) Enqueue(event search_analytics_port.Event) {
	select {
	case <-w.done:
		metrics.AnalyticsEventsDropped.Inc()
		return
	default:
	}

	select {
	case w.queue <- event:
	default:
		metrics.AnalyticsEventsDropped.Inc()
		logger.SafeInfo("analytics queue full, dropping event", "query", event.Query)
	}
}

// Start launches the drain loop. The loop exits when ctx is cancelled
// or Stop is called, flushing whatever is still queued.
func (w *AnalyticsWorker) Start(ctx context.Context) {
	w.startOnce.Do(func() {
		w.wg.Add(1)
		go w.run(ctx)
	})
}

// Stop signals the drain loop and waits for it to flush and exit.
func (w *AnalyticsWorker) Stop() {
	w.stopOnce.Do(func() {
		close(w.done)
	})
	w.wg.Wait()
}

func (w *AnalyticsWorker) run(ctx context.Context) {
	defer w.wg.Done()

	for {
		select {
		case event := <-w.queue:
			w.record(ctx, event)
		case <-ctx.Done():
			w.flush()
			return
		case <-w.done:
			w.flush()
			return
		}
	}
}

// flush drains queued events with a fresh short-lived context, so a
// shutdown does not silently discard what was already accepted.
func (w *AnalyticsWorker) flush() {
	ctx, cancel := context.WithTimeout(context.Background(), drainGracePeriod)
	defer cancel()

	for {
		select {
		case event := <-w.queue:
			w.record(ctx, event)
		default:
			return
		}
	}
}

func (w *AnalyticsWorker) record(ctx context.Context, event search_analytics_port.Event) {
	recordCtx, cancel := context.WithTimeout(ctx, recordTimeout)
	defer cancel()

	if err := w.recordPort.RecordSearch(recordCtx, event); err != nil {
		// Analytics failures never propagate anywhere; the log line is
		// the only trace.
		logger.SafeError("failed to record search event", "query", event.Query, "error", err)
	}
}
