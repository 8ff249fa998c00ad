package service

import (
	"context"
	"time"

	"github.com/guttosm/mapsim/internal/domain/model"
	"github.com/guttosm/mapsim/internal/repository"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/sync/errgroup"
)

// LoggingService persists audit entries and searches them.
type LoggingService interface {
	// CreateLog stores a single entry, assigning its ID and timestamp if unset.
	CreateLog(ctx context.Context, entry *model.LogEntry) error

	// CreateLogs stores a batch of entries in one round trip.
	CreateLogs(ctx context.Context, entries []*model.LogEntry) error

	// Search returns the newest entries matching opts and the total match count.
	Search(ctx context.Context, opts model.LogQueryOptions) (*model.LogPage, error)
}

// LoggingServiceImpl implements LoggingService on top of the logs repository.
type LoggingServiceImpl struct {
	repo repository.LogsRepositoryInterface
	now  func() time.Time
}

// NewLoggingService creates a logging service backed by repo.
func NewLoggingService(repo repository.LogsRepositoryInterface) LoggingService {
	return &LoggingServiceImpl{repo: repo, now: time.Now}
}

// CreateLog implements LoggingService.
func (s *LoggingServiceImpl) CreateLog(ctx context.Context, entry *model.LogEntry) error {
	return s.repo.Create(ctx, s.toDocument(entry))
}

// CreateLogs implements LoggingService.
func (s *LoggingServiceImpl) CreateLogs(ctx context.Context, entries []*model.LogEntry) error {
	if len(entries) == 0 {
		return nil
	}

	docs := make([]*repository.LogEntryDocument, 0, len(entries))
	for _, entry := range entries {
		docs = append(docs, s.toDocument(entry))
	}
	return s.repo.CreateMany(ctx, docs)
}

// Search implements LoggingService. The page and the count are fetched concurrently;
// the first error cancels the other query.
func (s *LoggingServiceImpl) Search(ctx context.Context, opts model.LogQueryOptions) (*model.LogPage, error) {
	filter := repository.LogQueryOptions(opts)

	var (
		docs  []*repository.LogEntryDocument
		total int64
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		docs, err = s.repo.Query(gctx, filter)
		return err
	})
	g.Go(func() error {
		var err error
		total, err = s.repo.Count(gctx, filter)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	page := &model.LogPage{Entries: make([]model.LogEntry, 0, len(docs)), Total: total}
	for _, doc := range docs {
		page.Entries = append(page.Entries, fromDocument(doc))
	}
	return page, nil
}

func (s *LoggingServiceImpl) toDocument(entry *model.LogEntry) *repository.LogEntryDocument {
	if entry.ID.IsZero() {
		entry.ID = primitive.NewObjectID()
	}
	if entry.Timestamp.IsZero() {
		entry.Timestamp = s.now().UTC()
	}

	doc := repository.LogEntryDocument(*entry)
	return &doc
}

func fromDocument(doc *repository.LogEntryDocument) model.LogEntry {
	return model.LogEntry(*doc)
}
