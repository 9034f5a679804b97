package postgres

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// userModel is the persistence shape of a portal agent. The (name, team)
// pair is indexed for the login lookup but deliberately not unique; the
// find-or-create at login is the only duplicate guard.
type userModel struct {
	ID        string `gorm:"type:uuid;primaryKey"`
	Name      string `gorm:"not null;index:idx_users_name_team"`
	Team      string `gorm:"not null;index:idx_users_name_team"`
	Email     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (userModel) TableName() string { return "users" }

func (m *userModel) BeforeCreate(*gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return nil
}

// auditModel stores one immutable sales audit. Data is the archetype payload
// as an opaque jsonb object.
type auditModel struct {
	ID        string         `gorm:"type:uuid;primaryKey"`
	UserID    string         `gorm:"type:uuid;not null;index"`
	Type      string         `gorm:"type:varchar(20);not null"`
	Data      datatypes.JSON `gorm:"type:jsonb;not null"`
	Summary   string         `gorm:"type:text;not null"`
	CreatedAt time.Time      `gorm:"index"`
}

func (auditModel) TableName() string { return "audits" }

func (m *auditModel) BeforeCreate(*gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return nil
}

// weeklyMetricsModel holds the six per-user counters, one row per user.
type weeklyMetricsModel struct {
	ID                 string `gorm:"type:uuid;primaryKey"`
	UserID             string `gorm:"type:uuid;not null;uniqueIndex"`
	DealerAudits       int    `gorm:"not null;default:0"`
	HoaSurveys         int    `gorm:"not null;default:0"`
	IndustrialMeetings int    `gorm:"not null;default:0"`
	DealerConversions  int    `gorm:"not null;default:0"`
	NewRefillStations  int    `gorm:"not null;default:0"`
	BulkContracts      int    `gorm:"not null;default:0"`
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

func (weeklyMetricsModel) TableName() string { return "weekly_metrics" }

func (m *weeklyMetricsModel) BeforeCreate(*gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return nil
}
