package middleware

import (
	"errors"
	"testing"
	"time"

	"github.com/guttosm/mapsim/internal/domain/model"
	"github.com/guttosm/mapsim/internal/metrics"
	"github.com/guttosm/mapsim/internal/mocks"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestDefaultAsyncLoggerConfig(t *testing.T) {
	cfg := DefaultAsyncLoggerConfig()

	assert.Equal(t, 1000, cfg.BufferSize)
	assert.Equal(t, 4, cfg.NumWorkers)
	assert.Equal(t, 50, cfg.BatchSize)
	assert.Equal(t, 5*time.Second, cfg.WriteTimeout)
}

func TestNewAsyncLogger_NilService(t *testing.T) {
	al := NewAsyncLogger(nil, DefaultAsyncLoggerConfig())
	assert.Nil(t, al)

	assert.False(t, al.Log(&model.LogEntry{}), "nil logger discards")
	assert.NotPanics(t, al.Stop)
	enqueued, dropped, written, errs := al.Stats()
	assert.Zero(t, enqueued+dropped+written+errs)
}

func TestAsyncLogger_WritesEntries(t *testing.T) {
	svc := new(mocks.MockLoggingService)
	svc.On("CreateLog", mock.Anything, mock.AnythingOfType("*model.LogEntry")).Return(nil).Maybe()
	svc.On("CreateLogs", mock.Anything, mock.AnythingOfType("[]*model.LogEntry")).Return(nil).Maybe()

	al := NewAsyncLogger(svc, AsyncLoggerConfig{BufferSize: 10, NumWorkers: 2, BatchSize: 4, WriteTimeout: time.Second})
	for i := 0; i < 5; i++ {
		assert.True(t, al.Log(&model.LogEntry{Message: "simulation completed"}))
	}
	al.Stop()

	enqueued, dropped, written, errs := al.Stats()
	assert.Equal(t, int64(5), enqueued)
	assert.Zero(t, dropped)
	assert.Equal(t, int64(5), written)
	assert.Zero(t, errs)
}

func TestAsyncLogger_BatchesQueuedEntries(t *testing.T) {
	release := make(chan struct{})
	started := make(chan struct{}, 1)
	batches := make(chan int, 4)
	svc := new(mocks.MockLoggingService)
	svc.On("CreateLog", mock.Anything, mock.Anything).Run(func(mock.Arguments) {
		started <- struct{}{}
		<-release
	}).Return(nil).Once()
	svc.On("CreateLogs", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		batches <- len(args.Get(1).([]*model.LogEntry))
	}).Return(nil)

	al := NewAsyncLogger(svc, AsyncLoggerConfig{BufferSize: 8, NumWorkers: 1, BatchSize: 3, WriteTimeout: time.Second})
	require.True(t, al.Log(&model.LogEntry{Message: "first"}))
	<-started
	for i := 0; i < 5; i++ {
		require.True(t, al.Log(&model.LogEntry{Message: "queued"}))
	}
	close(release)
	al.Stop()
	close(batches)

	var sizes []int
	for n := range batches {
		sizes = append(sizes, n)
	}
	assert.Equal(t, []int{3, 2}, sizes)

	_, _, written, _ := al.Stats()
	assert.Equal(t, int64(6), written)
}

func TestAsyncLogger_DropsWhenFull(t *testing.T) {
	release := make(chan struct{})
	started := make(chan struct{}, 1)
	svc := new(mocks.MockLoggingService)
	svc.On("CreateLog", mock.Anything, mock.Anything).Run(func(mock.Arguments) {
		select {
		case started <- struct{}{}:
		default:
		}
		<-release
	}).Return(nil)

	before := testutil.ToFloat64(metrics.AuditLogDropped)

	al := NewAsyncLogger(svc, AsyncLoggerConfig{BufferSize: 1, NumWorkers: 1, WriteTimeout: time.Second})
	require.True(t, al.Log(&model.LogEntry{Message: "first"}))
	<-started // worker is busy with the first entry
	require.True(t, al.Log(&model.LogEntry{Message: "queued"}))
	assert.False(t, al.Log(&model.LogEntry{Message: "dropped"}))

	close(release)
	al.Stop()

	_, dropped, written, _ := al.Stats()
	assert.Equal(t, int64(1), dropped)
	assert.Equal(t, int64(2), written)
	assert.Equal(t, before+1, testutil.ToFloat64(metrics.AuditLogDropped))
}

func TestAsyncLogger_CountsErrors(t *testing.T) {
	svc := new(mocks.MockLoggingService)
	svc.On("CreateLog", mock.Anything, mock.Anything).Return(errors.New("circuit open")).Maybe()
	svc.On("CreateLogs", mock.Anything, mock.Anything).Return(errors.New("circuit open")).Maybe()

	al := NewAsyncLogger(svc, AsyncLoggerConfig{BufferSize: 4, NumWorkers: 1, BatchSize: 2, WriteTimeout: time.Second})
	al.Log(&model.LogEntry{})
	al.Log(&model.LogEntry{})
	al.Stop()

	_, _, written, errs := al.Stats()
	assert.Zero(t, written)
	assert.Equal(t, int64(2), errs)
}

func TestAsyncLogger_LogAfterStop(t *testing.T) {
	svc := new(mocks.MockLoggingService)
	al := NewAsyncLogger(svc, AsyncLoggerConfig{BufferSize: 4, NumWorkers: 1, WriteTimeout: time.Second})
	al.Stop()
	al.Stop()

	assert.False(t, al.Log(&model.LogEntry{}))
	svc.AssertNotCalled(t, "CreateLog", mock.Anything, mock.Anything)
	svc.AssertNotCalled(t, "CreateLogs", mock.Anything, mock.Anything)
}
