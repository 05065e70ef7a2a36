package auth

import (
	"time"

	"gorm.io/gorm"
)

// User is one authenticated identity together with its profile fields.
type User struct {
	ID           uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	FullName     string         `gorm:"size:255" json:"full_name"`
	Email        string         `gorm:"size:255;uniqueIndex;not null" json:"email"`
	PasswordHash string         `gorm:"size:255;not null" json:"-"`
	Country      string         `gorm:"size:100" json:"country"`
	RoleID       uint           `gorm:"not null" json:"role_id"`
	Role         UserRole       `gorm:"foreignKey:RoleID;references:ID" json:"role"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
}

func (User) TableName() string {
	return "users"
}

// UserRole is an authorization tier gating administrative operations.
type UserRole struct {
	ID          uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	RoleName    string    `gorm:"size:50;uniqueIndex;not null" json:"role_name"`
	Description string    `gorm:"size:255" json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

func (UserRole) TableName() string {
	return "user_roles"
}

// IsAdmin reports whether the user's freshly loaded role is admin.
func (u *User) IsAdmin() bool {
	return u.Role.RoleName == RoleAdmin
}

const (
	RoleAdmin     = "admin"
	RoleModerator = "moderator"
	RoleUser      = "user"
)
