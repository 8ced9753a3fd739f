package storage

import (
	"encoding/json"
	"fmt"
	"time"

	"rogue-soccer/pkg/api"
	"rogue-soccer/pkg/logger"

	"github.com/glebarez/sqlite"
	"github.com/sirupsen/logrus"
	"gorm.io/datatypes"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// Journal drivers.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// JournalEntry is one persisted match log line.
type JournalEntry struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	MatchSeed int64          `gorm:"index:idx_journal_match_type" json:"matchSeed"`
	Tick      int            `json:"tick"`
	Type      string         `gorm:"index:idx_journal_match_type;size:16" json:"type"`
	Text      string         `json:"text"`
	Fields    datatypes.JSON `json:"fields"`
	CreatedAt time.Time      `json:"createdAt"`
}

func (JournalEntry) TableName() string { return "journal_entries" }

// Journal writes the match log to a database.
type Journal struct {
	DB   *gorm.DB
	Seed int64
}

// OpenJournal connects to driver (sqlite or postgres) and migrates the schema.
// An empty sqlite DSN opens a shared in-memory database.
func OpenJournal(driver, dsn string, seed int64) (*Journal, error) {
	cfg := &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 gormlogger.Default.LogMode(gormlogger.Silent),
	}

	var (
		db  *gorm.DB
		err error
	)
	switch driver {
	case DriverSQLite, "":
		if dsn == "" {
			dsn = "file::memory:?cache=shared"
		}
		db, err = gorm.Open(sqlite.Open(dsn), cfg)
	case DriverPostgres:
		db, err = gorm.Open(postgres.New(postgres.Config{
			DSN:                  dsn,
			PreferSimpleProtocol: true,
		}), cfg)
	default:
		return nil, fmt.Errorf("unknown journal driver %q", driver)
	}
	if err != nil {
		return nil, fmt.Errorf("opening %s journal: %w", driver, err)
	}

	if err := db.AutoMigrate(&JournalEntry{}); err != nil {
		return nil, fmt.Errorf("migrating journal: %w", err)
	}

	logger.Log.WithFields(logrus.Fields{
		"component": "journal",
		"driver":    db.Dialector.Name(),
		"seed":      seed,
	}).Info("match journal ready")

	return &Journal{DB: db, Seed: seed}, nil
}

// Record stores one log line.
func (j *Journal) Record(entry api.LogEntry) error {
	fields, err := json.Marshal(map[string]interface{}{
		"id":        entry.ID,
		"timestamp": entry.Timestamp,
	})
	if err != nil {
		return fmt.Errorf("encoding journal fields: %w", err)
	}

	row := JournalEntry{
		MatchSeed: j.Seed,
		Tick:      entry.Tick,
		Type:      entry.Type,
		Text:      entry.Text,
		Fields:    datatypes.JSON(fields),
	}
	if err := j.DB.Create(&row).Error; err != nil {
		return fmt.Errorf("writing journal entry: %w", err)
	}
	return nil
}

// Observe lets the journal subscribe to a match log. Write failures are
// logged and never stop the match.
func (j *Journal) Observe(entry api.LogEntry) {
	if err := j.Record(entry); err != nil {
		logger.Log.WithFields(logrus.Fields{
			"component": "journal",
			"tick":      entry.Tick,
		}).WithError(err).Warn("journal write failed")
	}
}

// ListByType returns this match's entries of logType in tick order.
func (j *Journal) ListByType(logType string) ([]JournalEntry, error) {
	var out []JournalEntry
	err := j.DB.
		Where("match_seed = ? AND type = ?", j.Seed, logType).
		Order("tick, id").
		Find(&out).Error
	if err != nil {
		return nil, fmt.Errorf("listing journal: %w", err)
	}
	return out, nil
}

// Close releases the connection pool.
func (j *Journal) Close() error {
	sqlDB, err := j.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
