package audit

import (
	"encoding/json"
	"fmt"

	"serraria-backend/internal/database"
	"serraria-backend/internal/models"
)

type LogOptions struct {
	UserID      string
	UserName    string
	EntityType  string
	EntityID    string
	Action      models.AuditAction
	Description string
	Before      any
	After       any
}

func WriteLog(opts LogOptions) error {
	// jsonb não aceita string vazia, o default precisa ser o literal null
	beforeStr := "null"
	afterStr := "null"

	if opts.Before != nil {
		if b, err := json.Marshal(opts.Before); err == nil {
			beforeStr = string(b)
		}
	}
	if opts.After != nil {
		if b, err := json.Marshal(opts.After); err == nil {
			afterStr = string(b)
		}
	}

	log := models.AuditLog{
		UserID:      opts.UserID,
		UserName:    opts.UserName,
		EntityType:  opts.EntityType,
		EntityID:    opts.EntityID,
		Action:      opts.Action,
		Description: opts.Description,
		BeforeData:  beforeStr,
		AfterData:   afterStr,
	}

	if err := database.DB.Create(&log).Error; err != nil {
		return fmt.Errorf("audit log não gravado: %w", err)
	}

	return nil
}

// UserName: nome do usuário para denormalizar no log. Se o usuário sumiu do
// banco devolve o próprio id, o log não pode falhar por isso.
func UserName(userID string) string {
	var user models.User
	if err := database.DB.First(&user, "id = ?", userID).Error; err != nil {
		return userID
	}
	return user.Name
}
