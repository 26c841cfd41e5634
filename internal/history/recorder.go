// Package history persists query events to ClickHouse. Writes are decoupled
// from request handling through a buffered channel and flushed in batches,
// so a slow or unreachable ClickHouse never delays a report response.
package history

import (
	"context"
	"sync"
	"time"

	"github.com/ClickHouse/clickhouse-go/v2/lib/driver"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.uber.org/zap"

	"github.com/BayHyn/battlefield-tool/internal/models"
)

var (
	eventsRecorded = promauto.NewCounter(prometheus.CounterOpts{
		Name: "bftool_query_events_recorded_total",
		Help: "Total number of query events accepted for recording",
	})

	eventsDropped = promauto.NewCounter(prometheus.CounterOpts{
		Name: "bftool_query_events_dropped_total",
		Help: "Total number of query events dropped because the queue was full or closed",
	})

	eventsFailed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "bftool_query_events_failed_total",
		Help: "Total number of query events lost to failed batch inserts",
	})

	queueDepth = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "bftool_history_queue_depth",
		Help: "Current depth of the history write queue",
	})

	batchInsertDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "bftool_history_batch_insert_duration_seconds",
		Help:    "Duration of batch inserts to ClickHouse",
		Buckets: prometheus.DefBuckets,
	})
)

const insertQuery = `
	INSERT INTO bftool.query_events (
		id, chat_id, game, data_type, player, outcome, latency_ms, at
	)
`

// Config configures the recorder.
type Config struct {
	QueueSize     int
	BatchSize     int
	FlushInterval time.Duration
	ClickHouse    driver.Conn
	Logger        *zap.SugaredLogger
}

// Recorder buffers query events and writes them to ClickHouse in batches.
type Recorder struct {
	cfg    Config
	queue  chan models.QueryEvent
	wg     sync.WaitGroup
	ctx    context.Context
	cancel context.CancelFunc
	log    *zap.SugaredLogger
}

// NewRecorder creates a recorder with defaults applied for zero config values.
func NewRecorder(cfg Config) *Recorder {
	if cfg.QueueSize <= 0 {
		cfg.QueueSize = 10000
	}
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = 500
	}
	if cfg.FlushInterval <= 0 {
		cfg.FlushInterval = time.Second
	}

	return &Recorder{
		cfg:   cfg,
		queue: make(chan models.QueryEvent, cfg.QueueSize),
		log:   cfg.Logger,
	}
}

// Start launches the writer goroutine and the queue depth reporter.
func (r *Recorder) Start(ctx context.Context) {
	r.ctx, r.cancel = context.WithCancel(ctx)

	r.wg.Add(1)
	go r.writer()
	go r.reportQueueDepth()

	r.log.Infow("History recorder started",
		"queueSize", r.cfg.QueueSize,
		"batchSize", r.cfg.BatchSize,
		"flushInterval", r.cfg.FlushInterval,
	)
}

// Stop shuts down the recorder, flushing any buffered events first.
func (r *Recorder) Stop() {
	r.cancel()
	close(r.queue)
	r.wg.Wait()
	r.log.Info("History recorder stopped")
}

// Record enqueues one query event. Events are dropped, never blocked on,
// when the queue is full or the recorder has stopped.
func (r *Recorder) Record(event models.QueryEvent) bool {
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	if event.At.IsZero() {
		event.At = time.Now().UTC()
	}

	// Protect against sending on closed channel
	defer func() {
		if rec := recover(); rec != nil {
			r.log.Warnw("Failed to record query event (recorder stopped)", "error", rec)
			eventsDropped.Inc()
		}
	}()

	select {
	case r.queue <- event:
		eventsRecorded.Inc()
		return true
	default:
		r.log.Warnw("History queue full, dropping query event", "game", event.Game, "dataType", event.DataType)
		eventsDropped.Inc()
		return false
	}
}

// QueueDepth returns the current queue size.
func (r *Recorder) QueueDepth() int {
	return len(r.queue)
}

func (r *Recorder) writer() {
	defer r.wg.Done()

	batch := make([]models.QueryEvent, 0, r.cfg.BatchSize)
	ticker := time.NewTicker(r.cfg.FlushInterval)
	defer ticker.Stop()

	flush := func() {
		if len(batch) == 0 {
			return
		}

		start := time.Now()
		if err := r.insertBatch(batch); err != nil {
			r.log.Errorw("History batch insert failed", "batchSize", len(batch), "error", err)
			eventsFailed.Add(float64(len(batch)))
		}
		batchInsertDuration.Observe(time.Since(start).Seconds())

		batch = batch[:0]
	}

	for {
		select {
		case event, ok := <-r.queue:
			if !ok {
				flush()
				return
			}

			batch = append(batch, event)
			if len(batch) >= r.cfg.BatchSize {
				flush()
			}

		case <-ticker.C:
			flush()

		case <-r.ctx.Done():
			flush()
			return
		}
	}
}

func (r *Recorder) insertBatch(batch []models.QueryEvent) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	chBatch, err := r.cfg.ClickHouse.PrepareBatch(ctx, insertQuery)
	if err != nil {
		return err
	}

	for _, event := range batch {
		err := chBatch.Append(
			event.ID,
			event.ChatID,
			event.Game,
			event.DataType,
			event.Player,
			event.Outcome,
			event.LatencyMs,
			event.At,
		)
		if err != nil {
			r.log.Warnw("Failed to append query event to batch", "error", err, "id", event.ID)
		}
	}

	return chBatch.Send()
}

func (r *Recorder) reportQueueDepth() {
	ticker := time.NewTicker(5 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			queueDepth.Set(float64(len(r.queue)))
		case <-r.ctx.Done():
			return
		}
	}
}
