package models

import "time"

type PaymentMethod string

const (
	PaymentCash     PaymentMethod = "dinheiro"
	PaymentPix      PaymentMethod = "pix"
	PaymentBoleto   PaymentMethod = "boleto"
	PaymentCard     PaymentMethod = "cartao"
	PaymentTransfer PaymentMethod = "transferencia"
)

func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentCash, PaymentPix, PaymentBoleto, PaymentCard, PaymentTransfer:
		return true
	}
	return false
}

type PaymentStatus string

const (
	PaymentPending PaymentStatus = "pending"
	PaymentPaid    PaymentStatus = "paid"
)

func (s PaymentStatus) Valid() bool {
	return s == PaymentPending || s == PaymentPaid
}

// Sale: venda de paletes ou madeira. TotalAmount é calculado e gravado no
// momento da escrita (quantidade × preço unitário), não é recalculado na leitura.
type Sale struct {
	Base
	BuyerName     string        `gorm:"size:200;not null"`
	BuyerContact  string        `gorm:"size:200"`
	ProductType   string        `gorm:"size:100;not null"`
	Quantity      int           `gorm:"not null"`
	UnitPrice     float64       `gorm:"not null"`
	TotalAmount   float64       `gorm:"not null"`
	PaymentMethod PaymentMethod `gorm:"size:20;not null"`
	PaymentStatus PaymentStatus `gorm:"size:20;not null"`
	SaleDate      time.Time     `gorm:"index;not null"` // dia
	Notes         string        `gorm:"size:500"`
	CreatedBy     string        `gorm:"type:uuid"`
}
