package ourwork

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	Create(ctx context.Context, item *WorkItem) error
	Update(ctx context.Context, item *WorkItem) error
	Delete(ctx context.Context, id uint) error
	FindByID(ctx context.Context, id uint) (*WorkItem, error)
	ListPublished(ctx context.Context) ([]WorkItem, error)
	ListAll(ctx context.Context) ([]WorkItem, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, item *WorkItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *repository) Update(ctx context.Context, item *WorkItem) error {
	return r.db.WithContext(ctx).Save(item).Error
}

func (r *repository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&WorkItem{}, id).Error
}

func (r *repository) FindByID(ctx context.Context, id uint) (*WorkItem, error) {
	var item WorkItem
	err := r.db.WithContext(ctx).First(&item, id).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *repository) ListPublished(ctx context.Context) ([]WorkItem, error) {
	var items []WorkItem
	err := r.db.WithContext(ctx).
		Where("is_published = ?", true).
		Order("display_date DESC").
		Find(&items).Error
	return items, err
}

func (r *repository) ListAll(ctx context.Context) ([]WorkItem, error) {
	var items []WorkItem
	err := r.db.WithContext(ctx).
		Order("display_date DESC").
		Find(&items).Error
	return items, err
}
