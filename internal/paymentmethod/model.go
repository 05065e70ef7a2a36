package paymentmethod

import (
	"time"

	"gorm.io/datatypes"
)

// Known method types. Unknown types are tolerated for display with a
// generic fallback but get only loose account-detail validation.
const (
	TypeBank   = "bank"
	TypeESewa  = "esewa"
	TypeKhalti = "khalti"
	TypeUPI    = "upi"
)

type PaymentMethod struct {
	ID             uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	MethodName     string         `gorm:"size:100;not null;uniqueIndex" json:"method_name"`
	MethodType     string         `gorm:"size:50;not null" json:"method_type"`
	AccountDetails datatypes.JSON `gorm:"type:jsonb;not null" json:"account_details"`
	QRCodeURL      string         `gorm:"size:500" json:"qr_code_url,omitempty"`
	// No column default: gorm drops zero-value fields from the INSERT
	// when one is set, which would silently turn is_active=false into
	// the default. The service always assigns the field explicitly.
	IsActive       bool           `gorm:"not null" json:"is_active"`
	DisplayOrder   int            `gorm:"default:0" json:"display_order"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
}

func (PaymentMethod) TableName() string {
	return "payment_methods"
}

// PublicPaymentMethod is the donor-facing view of an active method.
type PublicPaymentMethod struct {
	ID             uint           `json:"id"`
	MethodName     string         `json:"method_name"`
	MethodType     string         `json:"method_type"`
	AccountDetails datatypes.JSON `json:"account_details"`
	QRCodeURL      string         `json:"qr_code_url,omitempty"`
	DisplayOrder   int            `json:"display_order"`
	Instructions   string         `json:"instructions"`
}
