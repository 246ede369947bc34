package admin

import (
	"fmt"

	"serraria-backend/internal/audit"
	"serraria-backend/internal/auth"
	"serraria-backend/internal/database"
	"serraria-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

type UserResponse struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Email     string          `json:"email"`
	Role      models.UserRole `json:"role"`
	CreatedAt string          `json:"created_at"`
}

type UpdateUserRoleRequest struct {
	Role models.UserRole `json:"role"`
}

// GET /api/admin/users
func ListUsersHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var users []models.User
		if err := database.DB.Order("created_at ASC").Find(&users).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Não foi possível listar os usuários")
		}

		resp := make([]UserResponse, 0, len(users))
		for _, u := range users {
			resp = append(resp, UserResponse{
				ID:        u.ID,
				Name:      u.Name,
				Email:     u.Email,
				Role:      u.Role,
				CreatedAt: u.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
			})
		}

		return c.JSON(resp)
	}
}

// PUT /api/admin/users/:id/role
func UpdateUserRoleHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		adminID, err := auth.Identity(c)
		if err != nil {
			return err
		}

		var body UpdateUserRoleRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Corpo da requisição inválido")
		}

		if body.Role != models.RoleAdmin && body.Role != models.RoleOperator {
			return fiber.NewError(fiber.StatusBadRequest, "Papel deve ser 'admin' ou 'operator'")
		}

		var user models.User
		if err := database.DB.First(&user, "id = ?", c.Params("id")).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Usuário não encontrado")
		}

		oldRole := user.Role
		user.Role = body.Role
		if err := database.DB.Save(&user).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Não foi possível atualizar o papel")
		}

		_ = audit.WriteLog(audit.LogOptions{
			UserID:      adminID,
			UserName:    audit.UserName(adminID),
			EntityType:  "user",
			EntityID:    user.ID,
			Action:      models.AuditActionUpdate,
			Description: fmt.Sprintf("Papel de %s alterado de %s para %s", user.Email, oldRole, user.Role),
		})

		return c.JSON(UserResponse{
			ID:        user.ID,
			Name:      user.Name,
			Email:     user.Email,
			Role:      user.Role,
			CreatedAt: user.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		})
	}
}
