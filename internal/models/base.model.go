package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BaseUUIDModel struct {
	ID        uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt time.Time      `gorm:"autoCreateTime"       json:"createdAt"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime"       json:"updatedAt"`
	DeletedAt gorm.DeletedAt `                            json:"deletedAt"`
}

// BeforeCreate assigns the ID application-side so the schema carries no
// database function default and migrates on any driver.
func (m *BaseUUIDModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		id, err := uuid.NewV7()
		if err != nil {
			id = uuid.New()
		}
		m.ID = id
	}
	return nil
}
