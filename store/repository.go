package store

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/mazrooa/fatoora/apperr"
	"github.com/mazrooa/fatoora/models"
)

// Repository is the persistence surface handlers depend on. One instantiation
// per resource; nothing above this layer touches gorm directly.
type Repository[T any, PT models.Entity[T]] interface {
	FindAll(ctx context.Context) ([]T, error)
	FindByID(ctx context.Context, id uint) (*T, error)
	Create(ctx context.Context, rec *T) error
	Replace(ctx context.Context, id uint, rec *T) error
	Delete(ctx context.Context, id uint) error
}

// NewRepository returns a gorm-backed Repository for one resource.
func NewRepository[T any, PT models.Entity[T]](db *gorm.DB) Repository[T, PT] {
	return &gormRepository[T, PT]{db: db}
}

type gormRepository[T any, PT models.Entity[T]] struct {
	db *gorm.DB
}

func (r *gormRepository[T, PT]) FindAll(ctx context.Context) ([]T, error) {
	records := []T{}
	if err := r.db.WithContext(ctx).Find(&records).Error; err != nil {
		return nil, apperr.Wrap(err, apperr.ErrDatabase, "")
	}
	return records, nil
}

func (r *gormRepository[T, PT]) FindByID(ctx context.Context, id uint) (*T, error) {
	var record T
	if err := r.db.WithContext(ctx).First(&record, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.ErrNotFound
		}
		return nil, apperr.Wrap(err, apperr.ErrDatabase, "")
	}
	return &record, nil
}

func (r *gormRepository[T, PT]) Create(ctx context.Context, rec *T) error {
	// a client-supplied id must never survive into the insert
	PT(rec).Meta().ID = 0
	if err := r.db.WithContext(ctx).Create(rec).Error; err != nil {
		return apperr.Wrap(err, apperr.ErrDatabase, "")
	}
	return nil
}

// Replace overwrites every mutable field of the stored record with rec's
// values. Identity and creation time are carried over from the existing row.
func (r *gormRepository[T, PT]) Replace(ctx context.Context, id uint, rec *T) error {
	var existing T
	if err := r.db.WithContext(ctx).First(&existing, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.ErrNotFound
		}
		return apperr.Wrap(err, apperr.ErrDatabase, "")
	}

	meta := PT(rec).Meta()
	meta.ID = id
	meta.CreatedAt = PT(&existing).Meta().CreatedAt
	if err := r.db.WithContext(ctx).Save(rec).Error; err != nil {
		return apperr.Wrap(err, apperr.ErrDatabase, "")
	}
	return nil
}

func (r *gormRepository[T, PT]) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(new(T), "id = ?", id)
	if result.Error != nil {
		return apperr.Wrap(result.Error, apperr.ErrDatabase, "")
	}
	if result.RowsAffected == 0 {
		return apperr.ErrNotFound
	}
	return nil
}
