package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Base: campos comuns de todas as entidades. Os ids são uuid em formato texto,
// igual ao sistema antigo, então os registros migrados continuam válidos.
type Base struct {
	ID        string    `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (b *Base) BeforeCreate(tx *gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	return nil
}
