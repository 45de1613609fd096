package model

import (
	"time"

	"github.com/google/uuid"
)

// Event is read-only here: forms hang off events, events off programs.
type Event struct {
	EventID        uuid.UUID  `gorm:"column:event_id;type:uuid;default:gen_random_uuid();primaryKey" json:"event_id"`
	EventTitle     string     `gorm:"column:event_title;type:varchar(255);not null" json:"event_title"`
	EventDate      *time.Time `gorm:"column:event_date" json:"event_date,omitempty"`
	EventLocation  *string    `gorm:"column:event_location;type:varchar(255)" json:"event_location,omitempty"`
	EventProgramID *uuid.UUID `gorm:"column:event_program_id;type:uuid;index" json:"event_program_id,omitempty"`

	CreatedAt time.Time `gorm:"column:event_created_at;autoCreateTime" json:"event_created_at"`
	UpdatedAt time.Time `gorm:"column:event_updated_at;autoUpdateTime" json:"event_updated_at"`
}

func (Event) TableName() string { return "events" }
