package store

import (
	"context"
	"errors"
	"time"

	"github.com/localnerve/innohub/internal/models"
	"gorm.io/gorm"
)

type gormRepository[T any, P entity[T]] struct {
	db *gorm.DB
}

// NewGormRepository returns a repository over a relational database
func NewGormRepository[T any, P entity[T]](db *gorm.DB) Repository[T] {
	return &gormRepository[T, P]{db: db}
}

func translateGormError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return ErrDuplicate
	}
	return err
}

func (r *gormRepository[T, P]) Create(ctx context.Context, item *T) error {
	P(item).Prepare(time.Now().UTC())
	return translateGormError(r.db.WithContext(ctx).Create(item).Error)
}

func (r *gormRepository[T, P]) Get(ctx context.Context, id string) (*T, error) {
	return r.First(ctx, Where{"id": id})
}

func (r *gormRepository[T, P]) First(ctx context.Context, where Where) (*T, error) {
	var item T
	err := r.db.WithContext(ctx).Where(map[string]interface{}(where)).First(&item).Error
	if err != nil {
		return nil, translateGormError(err)
	}
	return &item, nil
}

func (r *gormRepository[T, P]) Find(ctx context.Context, q Query) ([]T, error) {
	tx := r.db.WithContext(ctx).Model(new(T))

	if len(q.Where) > 0 {
		tx = tx.Where(map[string]interface{}(q.Where))
	}
	if len(q.Any) > 0 {
		group := r.db.Where(map[string]interface{}(q.Any[0]))
		for _, w := range q.Any[1:] {
			group = group.Or(map[string]interface{}(w))
		}
		tx = tx.Where(group)
	}
	if q.After != "" {
		tx = tx.Where("id > ?", q.After)
	}
	if q.Desc {
		tx = tx.Order("id desc")
	} else {
		tx = tx.Order("id asc")
	}
	if q.Limit > 0 {
		tx = tx.Limit(q.Limit)
	}

	items := []T{}
	if err := tx.Find(&items).Error; err != nil {
		return nil, translateGormError(err)
	}
	return items, nil
}

func (r *gormRepository[T, P]) Count(ctx context.Context, where Where) (int64, error) {
	var n int64
	tx := r.db.WithContext(ctx).Model(new(T))
	if len(where) > 0 {
		tx = tx.Where(map[string]interface{}(where))
	}
	err := tx.Count(&n).Error
	return n, translateGormError(err)
}

func (r *gormRepository[T, P]) Update(ctx context.Context, item *T) error {
	P(item).Prepare(time.Now().UTC())
	res := r.db.WithContext(ctx).Model(item).Select("*").Updates(item)
	if res.Error != nil {
		return translateGormError(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *gormRepository[T, P]) Patch(ctx context.Context, id string, fields Fields) error {
	res := r.db.WithContext(ctx).Model(new(T)).
		Where("id = ?", id).
		Updates(patchFields(fields, time.Now().UTC()))
	if res.Error != nil {
		return translateGormError(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Transition moves a record from one status to another in a single conditional update
func (r *gormRepository[T, P]) Transition(ctx context.Context, id string, from, to models.Status, fields Fields) error {
	res := r.db.WithContext(ctx).Model(new(T)).
		Where("id = ? AND status = ?", id, from).
		Updates(transitionFields(to, fields, time.Now().UTC()))
	if res.Error != nil {
		return translateGormError(res.Error)
	}
	if res.RowsAffected == 1 {
		return nil
	}

	if _, err := r.Get(ctx, id); err != nil {
		return err
	}
	return ErrStatusConflict
}

func (r *gormRepository[T, P]) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(new(T))
	if res.Error != nil {
		return translateGormError(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
