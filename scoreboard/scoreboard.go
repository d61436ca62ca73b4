package scoreboard

import (
	"fmt"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// RunRecord is one finished run in the local results table
type RunRecord struct {
	ID         uint      `gorm:"primarykey"`
	PlayedAt   time.Time `gorm:"index:idx_played_at"`
	Won        bool
	Score      uint32
	Progress   float64
	Difficulty string `gorm:"size:16"`
	Duration   time.Duration
	Seed       uint64
}

// Store wraps the local results database. A nil Store is valid and drops
// every operation, so a failed open degrades to unrecorded runs.
type Store struct {
	db  *gorm.DB
	log zerolog.Logger
}

// Open connects to the results database at path and migrates the schema.
// An empty path opens a private in-memory database, used by tests.
func Open(path string, log zerolog.Logger) (*Store, error) {
	dsn := path
	if dsn == "" {
		dsn = ":memory:"
	}

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		PrepareStmt:            true,
		SkipDefaultTransaction: true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open results database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to access sql interface: %w", err)
	}
	if path == "" {
		// One connection keeps the pool on the same in-memory database
		sqlDB.SetMaxOpenConns(1)
	}

	if err := db.AutoMigrate(&RunRecord{}); err != nil {
		return nil, fmt.Errorf("failed to migrate results schema: %w", err)
	}

	log.Info().Str("path", dsn).Msg("Scoreboard open")
	return &Store{db: db, log: log}, nil
}

// Close releases the underlying connection
func (s *Store) Close() error {
	if s == nil {
		return nil
	}
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Insert records a finished run, stamping PlayedAt when unset
func (s *Store) Insert(rec RunRecord) error {
	if s == nil {
		return nil
	}
	if rec.PlayedAt.IsZero() {
		rec.PlayedAt = time.Now()
	}

	if err := s.db.Create(&rec).Error; err != nil {
		return fmt.Errorf("failed to record run: %w", err)
	}

	s.log.Debug().Uint32("score", rec.Score).Bool("won", rec.Won).Msg("Run recorded")
	return nil
}

// Top returns the best runs: score first, then progress, earliest run
// winning ties
func (s *Store) Top(n int) ([]RunRecord, error) {
	if s == nil {
		return nil, nil
	}

	var rows []RunRecord
	err := s.db.
		Order("score DESC").
		Order("progress DESC").
		Order("played_at ASC").
		Limit(n).
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to query results: %w", err)
	}
	return rows, nil
}
