package repository

import (
	"context"
	"errors"

	"github.com/go-sql-driver/mysql"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	// ErrNotFound is returned when a lookup by id matches no row
	ErrNotFound = errors.New("record not found")
	// ErrInUse is returned when a delete is rejected because other rows still reference the record
	ErrInUse = errors.New("record is still referenced")
	// ErrMissingReference is returned when a write points at a row that does not exist
	ErrMissingReference = errors.New("referenced record does not exist")
)

// MySQL server error numbers for foreign key violations
const (
	mysqlRowIsReferenced = 1451
	mysqlNoReferencedRow = 1452
)

// isForeignKeyViolation reports whether err is a foreign key failure, either
// translated by gorm or raw from the MySQL driver.
func isForeignKeyViolation(err error) bool {
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return true
	}
	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) {
		return myErr.Number == mysqlRowIsReferenced || myErr.Number == mysqlNoReferencedRow
	}
	return false
}

func writeError(err error) error {
	if isForeignKeyViolation(err) {
		return ErrMissingReference
	}
	return err
}

func deleteError(err error) error {
	if isForeignKeyViolation(err) {
		return ErrInUse
	}
	return err
}

// RecordRepository provides the read, write and bulk-save operations shared by
// every hospital record table.
type RecordRepository[T any] struct {
	db       *gorm.DB
	preloads []string
	order    string
}

// NewRecordRepo creates a repository for T. Preloads are applied to reads so
// related rows are returned alongside each record.
func NewRecordRepo[T any](db *gorm.DB, order string, preloads ...string) *RecordRepository[T] {
	return &RecordRepository[T]{db: db, order: order, preloads: preloads}
}

func (r *RecordRepository[T]) query(ctx context.Context) *gorm.DB {
	q := r.db.WithContext(ctx)
	for _, p := range r.preloads {
		q = q.Preload(p)
	}
	return q
}

// FindAll returns a page of records. A limit of zero or less returns everything.
func (r *RecordRepository[T]) FindAll(ctx context.Context, limit, offset int) ([]T, error) {
	var records []T
	q := r.query(ctx)
	if r.order != "" {
		q = q.Order(r.order)
	}
	if limit > 0 {
		q = q.Limit(limit).Offset(offset)
	}
	err := q.Find(&records).Error
	return records, err
}

// FindByID retrieves a single record by its primary key
func (r *RecordRepository[T]) FindByID(ctx context.Context, id uuid.UUID) (*T, error) {
	var record T
	err := r.query(ctx).Where("id = ?", id).First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &record, nil
}

// Count returns the number of rows in the table
func (r *RecordRepository[T]) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(new(T)).Count(&count).Error
	return count, err
}

// SaveAll inserts records in batches without touching their associations
func (r *RecordRepository[T]) SaveAll(ctx context.Context, records []T, batchSize int) error {
	if len(records) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Omit(clause.Associations).CreateInBatches(records, batchSize).Error
}

// Create inserts one record without touching its associations
func (r *RecordRepository[T]) Create(ctx context.Context, record *T) error {
	return createRecord(r.db.WithContext(ctx), record)
}

// Update overwrites every column of the record with the given id except id and created_at
func (r *RecordRepository[T]) Update(ctx context.Context, id uuid.UUID, record *T) error {
	return updateRecord(r.db.WithContext(ctx), id, record)
}

// Delete removes the record with the given id
func (r *RecordRepository[T]) Delete(ctx context.Context, id uuid.UUID) error {
	return deleteRecord[T](r.db.WithContext(ctx), id)
}

func createRecord[T any](db *gorm.DB, record *T) error {
	return writeError(db.Omit(clause.Associations).Create(record).Error)
}

func updateRecord[T any](db *gorm.DB, id uuid.UUID, record *T) error {
	result := db.Model(new(T)).
		Where("id = ?", id).
		Select("*").
		Omit(clause.Associations, "id", "created_at").
		Updates(record)
	if result.Error != nil {
		return writeError(result.Error)
	}
	return nil
}

func deleteRecord[T any](db *gorm.DB, id uuid.UUID) error {
	result := db.Delete(new(T), "id = ?", id)
	if result.Error != nil {
		return deleteError(result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
