package paymentmethod

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	Create(ctx context.Context, method *PaymentMethod) error
	Update(ctx context.Context, method *PaymentMethod) error
	FindByID(ctx context.Context, id uint) (*PaymentMethod, error)
	FindActiveByName(ctx context.Context, name string) (*PaymentMethod, error)
	ListAll(ctx context.Context) ([]PaymentMethod, error)
	ListActive(ctx context.Context) ([]PaymentMethod, error)
	Delete(ctx context.Context, id uint) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, method *PaymentMethod) error {
	return r.db.WithContext(ctx).Create(method).Error
}

func (r *repository) Update(ctx context.Context, method *PaymentMethod) error {
	return r.db.WithContext(ctx).Save(method).Error
}

func (r *repository) FindByID(ctx context.Context, id uint) (*PaymentMethod, error) {
	var method PaymentMethod
	err := r.db.WithContext(ctx).First(&method, id).Error
	if err != nil {
		return nil, err
	}
	return &method, nil
}

func (r *repository) FindActiveByName(ctx context.Context, name string) (*PaymentMethod, error) {
	var method PaymentMethod
	err := r.db.WithContext(ctx).
		Where("method_name = ? AND is_active = ?", name, true).
		First(&method).Error
	if err != nil {
		return nil, err
	}
	return &method, nil
}

func (r *repository) ListAll(ctx context.Context) ([]PaymentMethod, error) {
	var methods []PaymentMethod
	err := r.db.WithContext(ctx).
		Order("display_order ASC, id ASC").
		Find(&methods).Error
	return methods, err
}

func (r *repository) ListActive(ctx context.Context) ([]PaymentMethod, error) {
	var methods []PaymentMethod
	err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("display_order ASC, id ASC").
		Find(&methods).Error
	return methods, err
}

func (r *repository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&PaymentMethod{}, id).Error
}
