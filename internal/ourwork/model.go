package ourwork

import (
	"time"

	"gorm.io/gorm"
)

// WorkItem is a published report of a project or relief effort, shown
// on the public site.
type WorkItem struct {
	ID          uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	Title       string         `gorm:"size:200;not null" json:"title"`
	Description string         `gorm:"type:text;not null" json:"description"`
	Location    string         `gorm:"size:200" json:"location,omitempty"`
	ImageURL    string         `gorm:"size:500" json:"image_url,omitempty"`
	IsPublished bool           `gorm:"not null;index" json:"is_published"`
	DisplayDate time.Time      `json:"display_date"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

func (WorkItem) TableName() string {
	return "our_work"
}
