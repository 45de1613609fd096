package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel merepresentasikan tabel users (hanya kolom yang dipakai pipeline submission).
type UserModel struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserName  string    `gorm:"size:50;not null" json:"user_name"`
	FullName  *string   `gorm:"size:255" json:"full_name,omitempty"`
	Email     string    `gorm:"size:255;unique;not null" json:"email"`
	Role      string    `gorm:"type:varchar(20);not null;default:'user'" json:"role"`
	IsActive  bool      `gorm:"not null;default:true" json:"is_active"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName memastikan nama tabel sesuai dengan skema database
func (UserModel) TableName() string {
	return "users"
}

// DisplayName: full_name kalau ada, selain itu user_name.
func (u *UserModel) DisplayName() string {
	if u.FullName != nil && *u.FullName != "" {
		return *u.FullName
	}
	return u.UserName
}
