package middleware

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/guttosm/mapsim/internal/domain/model"
	"github.com/guttosm/mapsim/internal/logger"
	"github.com/guttosm/mapsim/internal/metrics"
	"github.com/guttosm/mapsim/internal/service"
)

// AsyncLoggerConfig holds configuration for the async logger.
type AsyncLoggerConfig struct {
	// BufferSize is the size of the log entry channel buffer.
	BufferSize int
	// NumWorkers is the number of worker goroutines writing entries.
	NumWorkers int
	// BatchSize caps how many queued entries a worker writes in one call.
	BatchSize int
	// WriteTimeout bounds a single write to the logging service.
	WriteTimeout time.Duration
}

// DefaultAsyncLoggerConfig returns the defaults used by the server.
func DefaultAsyncLoggerConfig() AsyncLoggerConfig {
	return AsyncLoggerConfig{
		BufferSize:   1000,
		NumWorkers:   4,
		BatchSize:    50,
		WriteTimeout: 5 * time.Second,
	}
}

// AsyncLogger queues audit entries for a fixed pool of workers. A worker that
// wakes up takes whatever is already queued, up to BatchSize, and writes it in
// one call. When the queue is full entries are dropped rather than blocking the request.
// A nil *AsyncLogger is valid and discards everything.
type AsyncLogger struct {
	loggingService service.LoggingService
	entryCh        chan *model.LogEntry
	wg             sync.WaitGroup
	stopCh         chan struct{}
	stopOnce       sync.Once
	batchSize      int
	writeTimeout   time.Duration

	enqueued atomic.Int64
	dropped  atomic.Int64
	written  atomic.Int64
	errors   atomic.Int64
}

// NewAsyncLogger starts the worker pool. It returns nil when loggingService is nil.
func NewAsyncLogger(loggingService service.LoggingService, cfg AsyncLoggerConfig) *AsyncLogger {
	if loggingService == nil {
		return nil
	}
	if cfg.NumWorkers <= 0 {
		cfg.NumWorkers = 1
	}
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = 1
	}

	al := &AsyncLogger{
		loggingService: loggingService,
		entryCh:        make(chan *model.LogEntry, cfg.BufferSize),
		stopCh:         make(chan struct{}),
		batchSize:      cfg.BatchSize,
		writeTimeout:   cfg.WriteTimeout,
	}

	for i := 0; i < cfg.NumWorkers; i++ {
		al.wg.Add(1)
		go al.worker()
	}
	return al
}

func (al *AsyncLogger) worker() {
	defer al.wg.Done()

	batch := make([]*model.LogEntry, 0, al.batchSize)
	for {
		select {
		case entry := <-al.entryCh:
			batch = al.collect(append(batch[:0], entry))
			al.write(batch)
		case <-al.stopCh:
			for {
				batch = al.collect(batch[:0])
				if len(batch) == 0 {
					return
				}
				al.write(batch)
			}
		}
	}
}

// collect appends queued entries to batch without blocking.
func (al *AsyncLogger) collect(batch []*model.LogEntry) []*model.LogEntry {
	for len(batch) < al.batchSize {
		select {
		case entry := <-al.entryCh:
			batch = append(batch, entry)
		default:
			return batch
		}
	}
	return batch
}

func (al *AsyncLogger) write(batch []*model.LogEntry) {
	ctx, cancel := context.WithTimeout(context.Background(), al.writeTimeout)
	defer cancel()

	var err error
	if len(batch) == 1 {
		err = al.loggingService.CreateLog(ctx, batch[0])
	} else {
		err = al.loggingService.CreateLogs(ctx, batch)
	}

	n := int64(len(batch))
	if err != nil {
		al.errors.Add(n)
		log := logger.Logger()
		log.Warn().Err(err).Int("entries", len(batch)).Str("request_id", batch[0].RequestID).
			Msg("Failed to write audit entries")
		return
	}
	al.written.Add(n)
}

// Log enqueues an entry. It reports false when the entry was dropped.
func (al *AsyncLogger) Log(entry *model.LogEntry) bool {
	if al == nil {
		return false
	}

	select {
	case <-al.stopCh:
		al.drop()
		return false
	default:
	}

	select {
	case al.entryCh <- entry:
		al.enqueued.Add(1)
		return true
	default:
		al.drop()
		return false
	}
}

func (al *AsyncLogger) drop() {
	al.dropped.Add(1)
	metrics.AuditLogDropped.Inc()
}

// Stop drains queued entries and waits for the workers to exit.
// Entries logged after Stop are dropped.
func (al *AsyncLogger) Stop() {
	if al == nil {
		return
	}
	al.stopOnce.Do(func() {
		close(al.stopCh)
		al.wg.Wait()
	})
}

// Stats returns counters since creation.
func (al *AsyncLogger) Stats() (enqueued, dropped, written, errors int64) {
	if al == nil {
		return 0, 0, 0, 0
	}
	return al.enqueued.Load(), al.dropped.Load(), al.written.Load(), al.errors.Load()
}
