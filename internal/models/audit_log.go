package models

type AuditAction string

const (
	AuditActionCreate AuditAction = "create"
	AuditActionUpdate AuditAction = "update"
	AuditActionDelete AuditAction = "delete"
)

// AuditLog: trilha de quem fez o quê. Preenchido pelos handlers após cada
// comando bem sucedido; nunca bloqueia a operação principal.
type AuditLog struct {
	Base

	UserID   string `gorm:"type:uuid" json:"user_id"`
	UserName string `gorm:"size:100" json:"user_name"` // nome denormalizado

	// Entidade afetada (ex: "supplier", "truck_delivery", "sale")
	EntityType string `gorm:"size:50;index" json:"entity_type"`
	EntityID   string `gorm:"type:uuid;index" json:"entity_id"`

	Action      AuditAction `gorm:"size:20" json:"action"`
	Description string      `gorm:"size:255" json:"description"`

	// Estado antes e depois (JSON)
	BeforeData string `gorm:"type:jsonb" json:"before_data"`
	AfterData  string `gorm:"type:jsonb" json:"after_data"`
}
