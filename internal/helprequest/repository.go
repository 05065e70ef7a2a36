package helprequest

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	Create(ctx context.Context, req *HelpRequest) error
	FindByID(ctx context.Context, id uint) (*HelpRequest, error)
	List(ctx context.Context, status string) ([]HelpRequest, error)
	Update(ctx context.Context, req *HelpRequest) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, req *HelpRequest) error {
	return r.db.WithContext(ctx).Create(req).Error
}

func (r *repository) FindByID(ctx context.Context, id uint) (*HelpRequest, error) {
	var req HelpRequest
	err := r.db.WithContext(ctx).First(&req, id).Error
	if err != nil {
		return nil, err
	}
	return &req, nil
}

func (r *repository) List(ctx context.Context, status string) ([]HelpRequest, error) {
	var requests []HelpRequest
	query := r.db.WithContext(ctx)
	if status != "" {
		query = query.Where("status = ?", status)
	}
	err := query.Order("created_at DESC").Find(&requests).Error
	return requests, err
}

func (r *repository) Update(ctx context.Context, req *HelpRequest) error {
	return r.db.WithContext(ctx).Save(req).Error
}
