package admin

import (
	"fmt"
	"strings"

	"serraria-backend/internal/audit"
	"serraria-backend/internal/auth"
	"serraria-backend/internal/ledger"
	"serraria-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

type SupplierRequest struct {
	Name    string `json:"name"`
	Contact string `json:"contact"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

type SupplierResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Contact   string `json:"contact"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`
	CreatedAt string `json:"created_at"`
}

func validateSupplier(s *models.Supplier) error {
	s.Name = strings.TrimSpace(s.Name)
	if s.Name == "" {
		return ledger.Invalid("name", "nome é obrigatório")
	}
	return nil
}

var supplierStore = ledger.NewStore(validateSupplier)

func supplierResponse(s *models.Supplier) SupplierResponse {
	return SupplierResponse{
		ID:        s.ID,
		Name:      s.Name,
		Contact:   s.Contact,
		Phone:     s.Phone,
		Address:   s.Address,
		CreatedAt: s.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}

// POST /api/suppliers
func CreateSupplierHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := auth.Identity(c)
		if err != nil {
			return err
		}

		var body SupplierRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Corpo da requisição inválido")
		}

		supplier := models.Supplier{
			Name:      body.Name,
			Contact:   strings.TrimSpace(body.Contact),
			Phone:     strings.TrimSpace(body.Phone),
			Address:   strings.TrimSpace(body.Address),
			CreatedBy: userID,
		}

		if err := supplierStore.Create(&supplier); err != nil {
			return err
		}

		_ = audit.WriteLog(audit.LogOptions{
			UserID:      userID,
			UserName:    audit.UserName(userID),
			EntityType:  "supplier",
			EntityID:    supplier.ID,
			Action:      models.AuditActionCreate,
			Description: fmt.Sprintf("Fornecedor adicionado: %s", supplier.Name),
			After:       supplier,
		})

		return c.Status(fiber.StatusCreated).JSON(supplierResponse(&supplier))
	}
}

// GET /api/suppliers
func ListSuppliersHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		suppliers, err := supplierStore.List("name ASC")
		if err != nil {
			return err
		}

		resp := make([]SupplierResponse, 0, len(suppliers))
		for i := range suppliers {
			resp = append(resp, supplierResponse(&suppliers[i]))
		}

		return c.JSON(resp)
	}
}

// PUT /api/suppliers/:id
func UpdateSupplierHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := auth.Identity(c)
		if err != nil {
			return err
		}

		supplier, err := supplierStore.Get(c.Params("id"))
		if err != nil {
			return err
		}

		var body SupplierRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Corpo da requisição inválido")
		}

		before := *supplier

		supplier.Name = body.Name
		supplier.Contact = strings.TrimSpace(body.Contact)
		supplier.Phone = strings.TrimSpace(body.Phone)
		supplier.Address = strings.TrimSpace(body.Address)

		if err := supplierStore.Update(supplier); err != nil {
			return err
		}

		_ = audit.WriteLog(audit.LogOptions{
			UserID:      userID,
			UserName:    audit.UserName(userID),
			EntityType:  "supplier",
			EntityID:    supplier.ID,
			Action:      models.AuditActionUpdate,
			Description: fmt.Sprintf("Fornecedor atualizado: %s", supplier.Name),
			Before:      before,
			After:       supplier,
		})

		return c.JSON(supplierResponse(supplier))
	}
}

// DELETE /api/suppliers/:id
// Excluir um fornecedor não apaga as entradas de estoque nem as entregas que
// apontam para ele; a referência fica pendurada e resolve para "-" na leitura.
func DeleteSupplierHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := auth.Identity(c)
		if err != nil {
			return err
		}

		supplier, err := supplierStore.Get(c.Params("id"))
		if err != nil {
			return err
		}

		if err := supplierStore.Delete(supplier.ID); err != nil {
			return err
		}

		_ = audit.WriteLog(audit.LogOptions{
			UserID:      userID,
			UserName:    audit.UserName(userID),
			EntityType:  "supplier",
			EntityID:    supplier.ID,
			Action:      models.AuditActionDelete,
			Description: fmt.Sprintf("Fornecedor removido: %s", supplier.Name),
			Before:      supplier,
		})

		return c.SendStatus(fiber.StatusNoContent)
	}
}
