package donation

import (
	"time"

	"gorm.io/gorm"

	"github.com/sahayognepal/charity-backend/internal/auth"
)

const (
	StatusPending  = "pending"
	StatusVerified = "verified"
	StatusRejected = "rejected"
)

const DefaultCurrency = "NPR"

type Donation struct {
	ID            uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	Amount        float64        `gorm:"not null" json:"amount"`
	Currency      string         `gorm:"size:10;not null;default:NPR" json:"currency"`
	DonorName     string         `gorm:"size:200;not null" json:"donor_name"`
	DonorEmail    string         `gorm:"size:255;not null;index" json:"donor_email"`
	DonorCountry  string         `gorm:"size:100;not null" json:"donor_country"`
	PaymentMethod string         `gorm:"size:100;not null" json:"payment_method"`
	Notes         string         `gorm:"type:text" json:"notes,omitempty"`
	ReceiptURL    string         `gorm:"size:500" json:"receipt_url,omitempty"`
	Status        string         `gorm:"size:20;not null;default:pending;index" json:"status"`
	UserID        *uint          `gorm:"index" json:"user_id,omitempty"`
	User          *auth.User     `gorm:"foreignKey:UserID" json:"-"`
	VerifiedBy    *uint          `json:"verified_by,omitempty"`
	VerifiedAt    *time.Time     `json:"verified_at,omitempty"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Donation) TableName() string {
	return "donations"
}

// UserDonationStats is a per-user rollup maintained inside the same
// transaction that verifies a donation.
type UserDonationStats struct {
	UserID         uint       `gorm:"primaryKey" json:"user_id"`
	TotalDonated   float64    `gorm:"not null;default:0" json:"total_donated"`
	DonationCount  int        `gorm:"not null;default:0" json:"donation_count"`
	LastDonationAt *time.Time `json:"last_donation_at,omitempty"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

func (UserDonationStats) TableName() string {
	return "user_donation_stats"
}

// DashboardStats backs the admin overview cards.
type DashboardStats struct {
	TotalVerifiedAmount float64 `json:"total_verified_amount"`
	VerifiedCount       int64   `json:"verified_count"`
	PendingCount        int64   `json:"pending_count"`
	RejectedCount       int64   `json:"rejected_count"`
	DonorCount          int64   `json:"donor_count"`
}
