package donation

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ListFilter struct {
	Status string
	Page   int
	Limit  int
}

type Repository interface {
	Create(ctx context.Context, d *Donation) error
	FindByID(ctx context.Context, id uint) (*Donation, error)
	List(ctx context.Context, filter ListFilter) ([]Donation, int64, error)
	ListPending(ctx context.Context) ([]Donation, error)
	ListVerified(ctx context.Context) ([]Donation, error)
	ListByUser(ctx context.Context, userID uint) ([]Donation, error)
	// Transition atomically moves a pending donation to newStatus,
	// setting verified_by and verified_at in the same update, and
	// maintains the donor's rollup inside the same transaction. It
	// reports false when the row was not pending anymore.
	Transition(ctx context.Context, id uint, newStatus string, adminID uint) (bool, error)
	DashboardStats(ctx context.Context) (*DashboardStats, error)
	UserStats(ctx context.Context, userID uint) (*UserDonationStats, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, d *Donation) error {
	return r.db.WithContext(ctx).Create(d).Error
}

func (r *repository) FindByID(ctx context.Context, id uint) (*Donation, error) {
	var d Donation
	err := r.db.WithContext(ctx).First(&d, id).Error
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *repository) List(ctx context.Context, filter ListFilter) ([]Donation, int64, error) {
	var donations []Donation
	var total int64

	query := r.db.WithContext(ctx).Model(&Donation{})
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if filter.Page > 0 && filter.Limit > 0 {
		query = query.Offset((filter.Page - 1) * filter.Limit).Limit(filter.Limit)
	}

	err := query.Order("created_at DESC").Find(&donations).Error
	return donations, total, err
}

func (r *repository) ListPending(ctx context.Context) ([]Donation, error) {
	var donations []Donation
	err := r.db.WithContext(ctx).
		Where("status = ?", StatusPending).
		Order("created_at DESC").
		Find(&donations).Error
	return donations, err
}

func (r *repository) ListVerified(ctx context.Context) ([]Donation, error) {
	var donations []Donation
	err := r.db.WithContext(ctx).
		Where("status = ?", StatusVerified).
		Order("created_at ASC").
		Find(&donations).Error
	return donations, err
}

func (r *repository) ListByUser(ctx context.Context, userID uint) ([]Donation, error) {
	var donations []Donation
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&donations).Error
	return donations, err
}

func (r *repository) Transition(ctx context.Context, id uint, newStatus string, adminID uint) (bool, error) {
	transitioned := false

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		now := time.Now()
		result := tx.Model(&Donation{}).
			Where("id = ? AND status = ?", id, StatusPending).
			Updates(map[string]interface{}{
				"status":      newStatus,
				"verified_by": adminID,
				"verified_at": now,
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return nil
		}
		transitioned = true

		if newStatus != StatusVerified {
			return nil
		}

		var d Donation
		if err := tx.First(&d, id).Error; err != nil {
			return err
		}
		if d.UserID == nil {
			return nil
		}

		return tx.Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.Assignments(map[string]interface{}{
				"total_donated":    gorm.Expr("user_donation_stats.total_donated + ?", d.Amount),
				"donation_count":   gorm.Expr("user_donation_stats.donation_count + 1"),
				"last_donation_at": now,
				"updated_at":       now,
			}),
		}).Create(&UserDonationStats{
			UserID:         *d.UserID,
			TotalDonated:   d.Amount,
			DonationCount:  1,
			LastDonationAt: &now,
		}).Error
	})

	return transitioned, err
}

func (r *repository) DashboardStats(ctx context.Context) (*DashboardStats, error) {
	var stats DashboardStats

	db := r.db.WithContext(ctx).Model(&Donation{})

	row := struct {
		Total float64
		Count int64
	}{}
	if err := db.Session(&gorm.Session{}).
		Select("COALESCE(SUM(amount), 0) AS total, COUNT(*) AS count").
		Where("status = ?", StatusVerified).
		Scan(&row).Error; err != nil {
		return nil, err
	}
	stats.TotalVerifiedAmount = row.Total
	stats.VerifiedCount = row.Count

	if err := db.Session(&gorm.Session{}).
		Where("status = ?", StatusPending).
		Count(&stats.PendingCount).Error; err != nil {
		return nil, err
	}
	if err := db.Session(&gorm.Session{}).
		Where("status = ?", StatusRejected).
		Count(&stats.RejectedCount).Error; err != nil {
		return nil, err
	}
	if err := db.Session(&gorm.Session{}).
		Where("status = ?", StatusVerified).
		Distinct("donor_email").
		Count(&stats.DonorCount).Error; err != nil {
		return nil, err
	}

	return &stats, nil
}

func (r *repository) UserStats(ctx context.Context, userID uint) (*UserDonationStats, error) {
	var stats UserDonationStats
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&stats).Error
	if err != nil {
		return nil, err
	}
	return &stats, nil
}
