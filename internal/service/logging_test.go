//go:build !integration

package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/guttosm/mapsim/internal/domain/model"
	"github.com/guttosm/mapsim/internal/mocks"
	"github.com/guttosm/mapsim/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestLoggingService_CreateLog(t *testing.T) {
	tests := []struct {
		name      string
		entry     *model.LogEntry
		setupMock func(*mocks.MockLogsRepositoryInterface)
		wantError bool
	}{
		{
			name:  "assigns id and timestamp",
			entry: &model.LogEntry{Level: "info", Message: "simulation completed"},
			setupMock: func(m *mocks.MockLogsRepositoryInterface) {
				m.On("Create", mock.Anything, mock.MatchedBy(func(doc *repository.LogEntryDocument) bool {
					return !doc.ID.IsZero() && !doc.Timestamp.IsZero()
				})).Return(nil)
			},
		},
		{
			name: "keeps existing id",
			entry: &model.LogEntry{
				ID:      primitive.NewObjectID(),
				Level:   "info",
				Message: "preset saved",
			},
			setupMock: func(m *mocks.MockLogsRepositoryInterface) {
				m.On("Create", mock.Anything, mock.Anything).Return(nil)
			},
		},
		{
			name:  "repository error",
			entry: &model.LogEntry{Level: "error", Message: "simulation failed"},
			setupMock: func(m *mocks.MockLogsRepositoryInterface) {
				m.On("Create", mock.Anything, mock.Anything).Return(errors.New("database error"))
			},
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(mocks.MockLogsRepositoryInterface)
			tt.setupMock(repo)
			svc := NewLoggingService(repo)

			err := svc.CreateLog(context.Background(), tt.entry)

			if tt.wantError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.False(t, tt.entry.ID.IsZero())
				assert.False(t, tt.entry.Timestamp.IsZero())
			}
			repo.AssertExpectations(t)
		})
	}
}

func TestLoggingService_CreateLogs(t *testing.T) {
	t.Run("empty batch skips the repository", func(t *testing.T) {
		repo := new(mocks.MockLogsRepositoryInterface)
		svc := NewLoggingService(repo)

		assert.NoError(t, svc.CreateLogs(context.Background(), nil))
		repo.AssertNotCalled(t, "CreateMany", mock.Anything, mock.Anything)
	})

	t.Run("converts every entry", func(t *testing.T) {
		repo := new(mocks.MockLogsRepositoryInterface)
		repo.On("CreateMany", mock.Anything, mock.MatchedBy(func(docs []*repository.LogEntryDocument) bool {
			return len(docs) == 2 && docs[0].Principal == "api-key:ci" && docs[1].ActionType == model.ActionDeletePreset
		})).Return(nil)
		svc := NewLoggingService(repo)

		err := svc.CreateLogs(context.Background(), []*model.LogEntry{
			{Level: "info", Message: "a", Principal: "api-key:ci"},
			{Level: "info", Message: "b", ActionType: model.ActionDeletePreset},
		})
		assert.NoError(t, err)
		repo.AssertExpectations(t)
	})
}

func TestLoggingService_Search(t *testing.T) {
	start := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	opts := model.LogQueryOptions{ActionType: model.ActionSimulate, StartTime: &start, Limit: 10}
	repoOpts := repository.LogQueryOptions{ActionType: model.ActionSimulate, StartTime: &start, Limit: 10}

	tests := []struct {
		name      string
		setupMock func(*mocks.MockLogsRepositoryInterface)
		wantErr   bool
		validate  func(*testing.T, *model.LogPage)
	}{
		{
			name: "returns entries and total",
			setupMock: func(m *mocks.MockLogsRepositoryInterface) {
				m.On("Query", mock.Anything, repoOpts).Return([]*repository.LogEntryDocument{
					{Level: "info", Message: "simulation completed", Principal: "jwt:alice", ActionType: model.ActionSimulate,
						Fields: map[string]interface{}{"run_id": "r-1"}},
				}, nil)
				m.On("Count", mock.Anything, repoOpts).Return(int64(12), nil)
			},
			validate: func(t *testing.T, page *model.LogPage) {
				require.Len(t, page.Entries, 1)
				assert.Equal(t, "jwt:alice", page.Entries[0].Principal)
				assert.Equal(t, "r-1", page.Entries[0].Fields["run_id"])
				assert.Equal(t, int64(12), page.Total)
			},
		},
		{
			name: "no matches gives an empty page",
			setupMock: func(m *mocks.MockLogsRepositoryInterface) {
				m.On("Query", mock.Anything, repoOpts).Return(nil, nil)
				m.On("Count", mock.Anything, repoOpts).Return(int64(0), nil)
			},
			validate: func(t *testing.T, page *model.LogPage) {
				assert.NotNil(t, page.Entries)
				assert.Empty(t, page.Entries)
				assert.Zero(t, page.Total)
			},
		},
		{
			name: "query error",
			setupMock: func(m *mocks.MockLogsRepositoryInterface) {
				m.On("Query", mock.Anything, repoOpts).Return(nil, errors.New("timeout"))
				m.On("Count", mock.Anything, repoOpts).Return(int64(0), nil).Maybe()
			},
			wantErr: true,
		},
		{
			name: "count error",
			setupMock: func(m *mocks.MockLogsRepositoryInterface) {
				m.On("Query", mock.Anything, repoOpts).Return(nil, nil).Maybe()
				m.On("Count", mock.Anything, repoOpts).Return(int64(0), errors.New("timeout"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(mocks.MockLogsRepositoryInterface)
			tt.setupMock(repo)
			svc := NewLoggingService(repo)

			page, err := svc.Search(context.Background(), opts)
			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, page)
				return
			}
			require.NoError(t, err)
			tt.validate(t, page)
			repo.AssertExpectations(t)
		})
	}
}
