package models

import "time"

type PalletSize string

const (
	PalletSize120x100 PalletSize = "120x100"
	PalletSize120x80  PalletSize = "120x80"
	PalletSize100x100 PalletSize = "100x100"
	PalletSizeOther   PalletSize = "Outro"
)

func (s PalletSize) Valid() bool {
	switch s {
	case PalletSize120x100, PalletSize120x80, PalletSize100x100, PalletSizeOther:
		return true
	}
	return false
}

// PalletProduction: produção diária de paletes. A madeira consumida é só
// informativa, não abate do estoque (comportamento herdado do sistema antigo).
type PalletProduction struct {
	Base
	Quantity       int        `gorm:"not null"` // paletes produzidos
	PalletSize     PalletSize `gorm:"size:20;not null"`
	WoodConsumed   float64    `gorm:"not null"` // m³
	OperatorName   string     `gorm:"size:100"`
	ProductionDate time.Time  `gorm:"index;not null"` // dia
	Notes          string     `gorm:"size:500"`
	CreatedBy      string     `gorm:"type:uuid"`
}
