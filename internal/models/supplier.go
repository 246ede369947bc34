package models

// Supplier - Fornecedor de madeira
type Supplier struct {
	Base
	Name      string `gorm:"size:200;not null"`
	Contact   string `gorm:"size:200"` // pessoa de contato (opcional)
	Phone     string `gorm:"size:50"`
	Address   string `gorm:"size:255"`
	CreatedBy string `gorm:"type:uuid"` // usuário que criou o registro
}
