package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"github.com/xilidan/interview/services/interview/entity"
	"github.com/xilidan/interview/services/interview/storage/postgres/ent"
)

var ErrNotFound = errors.New("meeting not found")

type storage struct {
	*ent.Client
}

type Storage interface {
	CreateMeeting(ctx context.Context, m *entity.Meeting) (*entity.Meeting, error)
	ListMeetings(ctx context.Context) ([]*entity.Meeting, error)
	GetMeeting(ctx context.Context, id int64) (*entity.Meeting, error)

	UpdateStatus(ctx context.Context, id int64, status entity.MeetingStatus) error
	UpdateTranscript(ctx context.Context, id int64, transcript string) error
	UpdateExpectedQuestions(ctx context.Context, id int64, questions string) error
	UpdateAudio(ctx context.Context, id int64, audioURL string) error
	SaveReview(ctx context.Context, id int64, review entity.Analysis, ready bool) error

	Close() error
}

func New(client *ent.Client) Storage {
	client.Meeting.Use(logMutations)

	return &storage{
		Client: client,
	}
}

// Open connects to driver ("postgres" or "sqlite"), pings it and migrates the
// meetings table.
func Open(ctx context.Context, driver, dsn string) (Storage, error) {
	var (
		db  *sql.DB
		drv *entsql.Driver
		err error
	)

	switch driver {
	case "postgres":
		if db, err = sql.Open("postgres", dsn); err != nil {
			return nil, fmt.Errorf("failed to open database: %w", err)
		}
		drv = entsql.OpenDB(dialect.Postgres, db)
	case "sqlite":
		if db, err = sql.Open("sqlite", sqliteDSN(dsn)); err != nil {
			return nil, fmt.Errorf("failed to open database: %w", err)
		}
		// One connection keeps an in-memory database alive and serializes writers.
		db.SetMaxOpenConns(1)
		drv = entsql.OpenDB(dialect.SQLite, db)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	client := ent.NewClient(ent.Driver(drv))
	if err := client.Schema.Create(ctx); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}

	return New(client), nil
}

// sqliteDSN turns a path or ":memory:" into a URI with foreign keys on,
// which the migration engine requires.
func sqliteDSN(dsn string) string {
	if dsn == ":memory:" || dsn == "" {
		return "file::memory:?_pragma=foreign_keys(1)"
	}
	if strings.Contains(dsn, "foreign_keys") {
		return dsn
	}
	if !strings.HasPrefix(dsn, "file:") {
		dsn = "file:" + dsn
	}
	sep := "?"
	if strings.Contains(dsn, "?") {
		sep = "&"
	}
	return dsn + sep + "_pragma=foreign_keys(1)"
}
