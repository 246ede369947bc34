package models

import "time"

// TruckDelivery: registro de entrega de caminhão. Ao criar uma entrega o
// sistema também cria a entrada de estoque correspondente (ver inventory).
// Depois disso os dois registros vivem separados: editar ou excluir a
// entrega não mexe no estoque derivado.
type TruckDelivery struct {
	Base
	LicensePlate string    `gorm:"size:20;not null"`
	DriverName   string    `gorm:"size:100;not null"`
	SupplierID   *string   `gorm:"type:uuid;index"`
	WoodType     string    `gorm:"size:100;not null"`
	Quantity     float64   `gorm:"not null"` // m³
	DeliveryDate time.Time `gorm:"index;not null"` // data e hora da chegada
	Notes        string    `gorm:"size:500"`
	CreatedBy    string    `gorm:"type:uuid"`
}
