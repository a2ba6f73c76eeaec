package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/rs/zerolog"
	_ "modernc.org/sqlite"
)

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db  *sql.DB
	log zerolog.Logger

	mu      sync.Mutex
	entropy *rand.Rand
}

// Option configures a SQLiteStore.
type Option func(*SQLiteStore)

// WithLogger sets the store logger. The default discards output.
func WithLogger(l zerolog.Logger) Option {
	return func(s *SQLiteStore) { s.log = l }
}

// NewSQLiteStore opens or creates a SQLite database at the given path.
func NewSQLiteStore(dbPath string, opts ...Option) (*SQLiteStore, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	// SQLite allows one writer at a time.
	db.SetMaxOpenConns(1)

	s := &SQLiteStore{
		db:      db,
		log:     zerolog.Nop(),
		entropy: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	for _, opt := range opts {
		opt(s)
	}

	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	s.log.Debug().Str("path", dbPath).Msg("store opened")
	return s, nil
}

// newAddress returns a fresh ULID. rand.Rand is not safe for concurrent use.
func (s *SQLiteStore) newAddress() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return ulid.MustNew(ulid.Timestamp(time.Now()), s.entropy).String()
}

func (s *SQLiteStore) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS accounts (
		address     TEXT PRIMARY KEY,
		tag         BLOB NOT NULL,
		space       INTEGER NOT NULL,
		data        BLOB NOT NULL,
		created_at  TEXT NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_accounts_tag ON accounts(tag);
	`
	_, err := s.db.Exec(schema)
	return err
}

func (s *SQLiteStore) CreateAccount(ctx context.Context, p CreateAccountParams) (*Account, error) {
	if p.Space <= 0 {
		return nil, ErrInvalidSpace
	}
	if len(p.Data) > p.Space {
		return nil, fmt.Errorf("%w: %d > %d", ErrDataTooLarge, len(p.Data), p.Space)
	}
	if len(p.Data) < TagLength {
		return nil, ErrShortTagPrefix
	}

	now := time.Now().UTC()
	address := s.newAddress()

	data := make([]byte, p.Space)
	copy(data, p.Data)
	tag := append([]byte(nil), data[:TagLength]...)

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO accounts (address, tag, space, data, created_at)
		 VALUES (?, ?, ?, ?, ?)`,
		address, tag, p.Space, data, now.Format(time.RFC3339))
	if err != nil {
		return nil, fmt.Errorf("insert account: %w", err)
	}

	s.log.Debug().Str("address", address).Int("space", p.Space).Msg("account created")

	return &Account{
		Address:   address,
		Tag:       tag,
		Space:     p.Space,
		Data:      data,
		CreatedAt: now.Truncate(time.Second),
	}, nil
}

func (s *SQLiteStore) GetAccount(ctx context.Context, address string) (*Account, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT address, tag, space, data, created_at FROM accounts WHERE address = ?`, address)

	a, err := scanAccount(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, address)
	}
	if err != nil {
		return nil, err
	}
	return a, nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanAccount(row scanner) (*Account, error) {
	var a Account
	var createdAt string

	err := row.Scan(&a.Address, &a.Tag, &a.Space, &a.Data, &createdAt)
	if err != nil {
		return nil, err
	}

	a.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
	return &a, nil
}
