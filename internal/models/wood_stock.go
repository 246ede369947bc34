package models

import "time"

// WoodStock: entrada de estoque de madeira em m³.
// SupplierID é referência solta (sem foreign key): excluir um fornecedor
// não apaga nem altera as entradas antigas, o nome é resolvido na leitura.
type WoodStock struct {
	Base
	WoodType   string    `gorm:"size:100;not null"`
	Quantity   float64   `gorm:"not null"` // m³, nunca negativo
	SupplierID *string   `gorm:"type:uuid;index"`
	EntryDate  time.Time `gorm:"index;not null"` // data da entrada (dia)
	Notes      string    `gorm:"size:500"`
	CreatedBy  string    `gorm:"type:uuid"`
}
