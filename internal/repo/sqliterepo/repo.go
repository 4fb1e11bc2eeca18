package sqliterepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/milad/meterreader/internal/domain"
	"github.com/milad/meterreader/internal/repo"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

var _ repo.ReadingRepository = (*Repo)(nil)

var errShortWrite = errors.New("short write")

// MeterReading is the gorm model for a persisted reading.
type MeterReading struct {
	ID          int64     `gorm:"primaryKey;autoIncrement"`
	CustomerID  int32     `gorm:"not null;index:idx_meter_readings_customer_date,priority:1"`
	Value       int32     `gorm:"not null"`
	ReadingDate time.Time `gorm:"not null;index:idx_meter_readings_customer_date,priority:2"`
	CreatedAt   time.Time
}

func (MeterReading) TableName() string { return "meter_readings" }

// Repo stores readings through gorm. Each batch is inserted inside one transaction.
type Repo struct {
	db *gorm.DB
}

// Open opens (or creates) a sqlite database at dsn and migrates the readings table.
func Open(dsn string) (*Repo, error) {
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("open sqlite %q: %w", dsn, err)
	}
	return New(db)
}

func New(db *gorm.DB) (*Repo, error) {
	if err := db.AutoMigrate(&MeterReading{}); err != nil {
		return nil, fmt.Errorf("migrate meter_readings: %w", err)
	}
	return &Repo{db: db}, nil
}

func (r *Repo) SaveBatch(ctx context.Context, records []domain.ReadingRecord) (bool, error) {
	if len(records) == 0 {
		return true, nil
	}
	rows := make([]MeterReading, 0, len(records))
	for _, rec := range records {
		rows = append(rows, MeterReading{
			CustomerID:  rec.CustomerID,
			Value:       rec.Value,
			ReadingDate: rec.Date.UTC(),
		})
	}

	saved := false
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Create(&rows)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected != int64(len(rows)) {
			return errShortWrite
		}
		saved = true
		return nil
	})
	if errors.Is(err, errShortWrite) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("insert readings: %w", err)
	}
	return saved, nil
}

// Records returns every stored reading in insertion order.
func (r *Repo) Records(ctx context.Context) ([]domain.ReadingRecord, error) {
	var rows []MeterReading
	if err := r.db.WithContext(ctx).Order("id").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]domain.ReadingRecord, 0, len(rows))
	for _, row := range rows {
		out = append(out, domain.ReadingRecord{
			CustomerID: row.CustomerID,
			Value:      row.Value,
			Date:       row.ReadingDate.UTC(),
		})
	}
	return out, nil
}

// Close releases the underlying connection pool.
func (r *Repo) Close() error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
